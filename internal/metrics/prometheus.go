package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/changedi/impala/types"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
//
// Counter names mirror the scheduler's externally documented metrics:
// assignments_total, local_assignments_total and the initialized gauge are
// the three monitoring-visible values; the membership counters exist for
// diagnosing feed quality.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	assignments      prometheus.Counter
	localAssignments prometheus.Counter
	initialized      prometheus.Gauge

	membershipUpdates prometheus.Counter
	hostsCurrent      prometheus.Gauge
	backendsCurrent   prometheus.Gauge
	skippedEntries    *prometheus.CounterVec
	rejectedUpdates   *prometheus.CounterVec
	selfAnnouncements prometheus.Counter
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer interface (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Prometheus metrics namespace (defaults to "impala" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "impala"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.assignments = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "scheduler",
			Name:      "assignments_total",
			Help:      "Total backend assignments handed out.",
		})
		p.localAssignments = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "scheduler",
			Name:      "local_assignments_total",
			Help:      "Assignments whose data location matched a known host key.",
		})
		p.initialized = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "scheduler",
			Name:      "initialized",
			Help:      "Whether the scheduler has been initialized (1=yes).",
		})
		p.membershipUpdates = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "scheduler",
			Name:      "membership_updates_total",
			Help:      "Accepted membership snapshot replacements.",
		})
		p.hostsCurrent = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "scheduler",
			Name:      "hosts_current",
			Help:      "Distinct host keys in the current membership view.",
		})
		p.backendsCurrent = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "scheduler",
			Name:      "backends_current",
			Help:      "Backends in the current membership view.",
		})
		p.skippedEntries = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "scheduler",
			Name:      "skipped_entries_total",
			Help:      "Membership entries skipped during processing by reason (decode,resolve).",
		}, []string{"reason"})
		p.rejectedUpdates = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "scheduler",
			Name:      "rejected_updates_total",
			Help:      "Whole membership rounds rejected by reason (delta,topic_mismatch).",
		}, []string{"reason"})
		p.selfAnnouncements = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "scheduler",
			Name:      "self_announcements_total",
			Help:      "Self-registration announcements emitted to the membership feed.",
		})

		p.reg.MustRegister(p.assignments)
		p.reg.MustRegister(p.localAssignments)
		p.reg.MustRegister(p.initialized)
		p.reg.MustRegister(p.membershipUpdates)
		p.reg.MustRegister(p.hostsCurrent)
		p.reg.MustRegister(p.backendsCurrent)
		p.reg.MustRegister(p.skippedEntries)
		p.reg.MustRegister(p.rejectedUpdates)
		p.reg.MustRegister(p.selfAnnouncements)
	})
}

// AssignmentMetrics implementation

// IncrementAssignment increments the assignment counters.
func (p *PrometheusCollector) IncrementAssignment(local bool) {
	p.ensureRegistered()
	p.assignments.Inc()
	if local {
		p.localAssignments.Inc()
	}
}

// SetInitialized sets the initialization gauge (1 initialized, 0 not).
func (p *PrometheusCollector) SetInitialized(initialized bool) {
	p.ensureRegistered()
	if initialized {
		p.initialized.Set(1)
	} else {
		p.initialized.Set(0)
	}
}

// MembershipMetrics implementation

// RecordMembershipUpdate records an accepted membership replacement.
func (p *PrometheusCollector) RecordMembershipUpdate(hosts, backends int) {
	p.ensureRegistered()
	p.membershipUpdates.Inc()
	p.hostsCurrent.Set(float64(hosts))
	p.backendsCurrent.Set(float64(backends))
}

// IncrementSkippedEntry increments skipped entries by reason.
func (p *PrometheusCollector) IncrementSkippedEntry(reason string) {
	p.ensureRegistered()
	p.skippedEntries.WithLabelValues(reason).Inc()
}

// IncrementRejectedUpdate increments rejected rounds by reason.
func (p *PrometheusCollector) IncrementRejectedUpdate(reason string) {
	p.ensureRegistered()
	p.rejectedUpdates.WithLabelValues(reason).Inc()
}

// IncrementSelfAnnouncement increments the self-announcement counter.
func (p *PrometheusCollector) IncrementSelfAnnouncement() {
	p.ensureRegistered()
	p.selfAnnouncements.Inc()
}
