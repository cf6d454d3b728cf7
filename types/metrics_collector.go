package types

// MetricsCollector defines methods for recording scheduler metrics.
//
// Implementations must be non-blocking and safe for concurrent use: the
// assignment methods are invoked from an unbounded number of scheduling
// goroutines, inside the scheduler's critical section.
type MetricsCollector interface {
	AssignmentMetrics
	MembershipMetrics
}

// AssignmentMetrics defines metrics for the assignment path.
type AssignmentMetrics interface {
	// IncrementAssignment records one completed assignment.
	//
	// Parameters:
	//   - local: true when the data location's host matched a known host key
	IncrementAssignment(local bool)

	// SetInitialized records whether the scheduler finished initialization.
	SetInitialized(initialized bool)
}

// MembershipMetrics defines metrics for the membership-update path.
type MembershipMetrics interface {
	// RecordMembershipUpdate records an accepted membership replacement.
	//
	// Parameters:
	//   - hosts: Number of distinct host keys in the new view
	//   - backends: Total number of backends in the new view
	RecordMembershipUpdate(hosts, backends int)

	// IncrementSkippedEntry records a membership entry dropped during
	// processing ("decode", "resolve").
	IncrementSkippedEntry(reason string)

	// IncrementRejectedUpdate records a whole membership round dropped
	// ("delta", "topic_mismatch").
	IncrementRejectedUpdate(reason string)

	// IncrementSelfAnnouncement records an emitted self-registration.
	IncrementSelfAnnouncement()
}
