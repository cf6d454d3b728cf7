// Package metrics provides MetricsCollector implementations for the
// scheduler library.
package metrics

import "github.com/changedi/impala/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. Useful for testing or when external
// metrics collection is used.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Returns:
//   - *NopMetrics: A new no-op metrics collector instance
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// AssignmentMetrics implementation

// IncrementAssignment discards the assignment counter update.
func (n *NopMetrics) IncrementAssignment(_ /* local */ bool) {
	// No-op
}

// SetInitialized discards the initialization flag.
func (n *NopMetrics) SetInitialized(_ /* initialized */ bool) {
	// No-op
}

// MembershipMetrics implementation

// RecordMembershipUpdate discards the membership update metric.
func (n *NopMetrics) RecordMembershipUpdate(_ /* hosts */, _ /* backends */ int) {
	// No-op
}

// IncrementSkippedEntry discards the skipped entry counter update.
func (n *NopMetrics) IncrementSkippedEntry(_ /* reason */ string) {
	// No-op
}

// IncrementRejectedUpdate discards the rejected update counter update.
func (n *NopMetrics) IncrementRejectedUpdate(_ /* reason */ string) {
	// No-op
}

// IncrementSelfAnnouncement discards the self-announcement counter update.
func (n *NopMetrics) IncrementSelfAnnouncement() {
	// No-op
}
