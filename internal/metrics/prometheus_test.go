package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPrometheusCollector(t *testing.T) {
	t.Run("records assignment counters", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		collector := NewPrometheus(reg, "impala")

		collector.IncrementAssignment(true)
		collector.IncrementAssignment(false)
		collector.IncrementAssignment(false)

		assert.InDelta(t, 3, testutil.ToFloat64(collector.assignments), 0)
		assert.InDelta(t, 1, testutil.ToFloat64(collector.localAssignments), 0)
	})

	t.Run("records initialization flag", func(t *testing.T) {
		collector := NewPrometheus(prometheus.NewRegistry(), "impala")

		collector.SetInitialized(true)
		assert.InDelta(t, 1, testutil.ToFloat64(collector.initialized), 0)

		collector.SetInitialized(false)
		assert.InDelta(t, 0, testutil.ToFloat64(collector.initialized), 0)
	})

	t.Run("records membership view size", func(t *testing.T) {
		collector := NewPrometheus(prometheus.NewRegistry(), "impala")

		collector.RecordMembershipUpdate(2, 5)
		collector.RecordMembershipUpdate(3, 6)

		assert.InDelta(t, 2, testutil.ToFloat64(collector.membershipUpdates), 0)
		assert.InDelta(t, 3, testutil.ToFloat64(collector.hostsCurrent), 0)
		assert.InDelta(t, 6, testutil.ToFloat64(collector.backendsCurrent), 0)
	})

	t.Run("records skipped entries by reason", func(t *testing.T) {
		collector := NewPrometheus(prometheus.NewRegistry(), "impala")

		collector.IncrementSkippedEntry("decode")
		collector.IncrementSkippedEntry("decode")
		collector.IncrementSkippedEntry("resolve")
		collector.IncrementRejectedUpdate("delta")
		collector.IncrementSelfAnnouncement()

		assert.InDelta(t, 2, testutil.ToFloat64(collector.skippedEntries.WithLabelValues("decode")), 0)
		assert.InDelta(t, 1, testutil.ToFloat64(collector.skippedEntries.WithLabelValues("resolve")), 0)
		assert.InDelta(t, 1, testutil.ToFloat64(collector.rejectedUpdates.WithLabelValues("delta")), 0)
		assert.InDelta(t, 1, testutil.ToFloat64(collector.selfAnnouncements), 0)
	})

	t.Run("registers metrics once", func(t *testing.T) {
		collector := NewPrometheus(prometheus.NewRegistry(), "impala")

		// A second registration through any entry point must not panic.
		collector.IncrementAssignment(true)
		collector.SetInitialized(true)
		collector.RecordMembershipUpdate(1, 1)
	})
}
