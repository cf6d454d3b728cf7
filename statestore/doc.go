// Package statestore implements the membership feed over plain NATS
// publish/subscribe.
//
// A statestore service (external to this library) periodically publishes
// full membership snapshots for each topic. The Subscriber receives those
// rounds on "<prefix>.delta.<topic>", fans them out to registered
// callbacks, and publishes any updates the callbacks return (typically
// self-announcements) to "<prefix>.update.<topic>", where the service folds
// them into the next snapshot.
//
// The Subscriber owns all network I/O; consumers such as the scheduler stay
// purely in-memory and interact with it through types.MembershipFeed.
package statestore
