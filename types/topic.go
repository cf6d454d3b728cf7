package types

import "context"

// TopicItem is one (key, value) entry of a membership topic round.
//
// The key is a backend identity and the value is the backend's network
// address encoded with the cluster's shared AddressCodec.
type TopicItem struct {
	// Key is the publishing backend's identity.
	Key string `json:"key"`

	// Value is the opaque encoded BackendAddress.
	Value []byte `json:"value"`
}

// TopicDelta is one round of a membership topic as delivered by the feed.
//
// The scheduler only supports full snapshots: every accepted round replaces
// the previous membership view wholesale. Rounds with IsDelta set are
// recognized but rejected, since incremental updates cannot be merged into
// an always-replace model.
type TopicDelta struct {
	// Topic names the membership topic this round belongs to.
	Topic string `json:"topic"`

	// IsDelta indicates an incremental round. Unsupported; such rounds are
	// logged and ignored.
	IsDelta bool `json:"is_delta"`

	// Items lists all backends known to the feed this round.
	Items []TopicItem `json:"items"`
}

// TopicUpdate is an outgoing entry to re-publish through the feed, used for
// best-effort self-registration when the local backend is absent from a
// snapshot.
type TopicUpdate struct {
	// Topic names the membership topic the update is addressed to.
	Topic string `json:"topic"`

	// Items carries the entries to publish.
	Items []TopicItem `json:"items"`
}

// UpdateCallback handles one membership round and returns zero or more
// updates the feed should publish on the subscriber's behalf.
//
// Callbacks for a given subscription are invoked serially; the feed never
// delivers two rounds to the same callback concurrently.
type UpdateCallback func(ctx context.Context, delta TopicDelta) []TopicUpdate

// MembershipFeed is the publish/subscribe substrate that delivers membership
// rounds. The scheduler consumes it purely at this boundary; the feed owns
// all network I/O.
type MembershipFeed interface {
	// Subscribe registers cb for rounds of the named topic. The feed
	// publishes any TopicUpdates returned by cb back to the same topic.
	Subscribe(ctx context.Context, topic string, cb UpdateCallback) error
}
