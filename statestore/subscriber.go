package statestore

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/puzpuzpuz/xsync/v4"

	"github.com/changedi/impala/internal/natsutil"
	"github.com/changedi/impala/types"
)

// Subscriber is a NATS-backed implementation of types.MembershipFeed.
//
// One NATS subscription is created per topic regardless of how many
// callbacks register for it. NATS dispatches a subscription's messages from
// a single goroutine, so callbacks observe rounds serially; different topics
// may deliver concurrently.
type Subscriber struct {
	conn   *nats.Conn
	cfg    Config
	logger types.Logger

	topics *xsync.Map[string, *topicState]
}

// topicState tracks the callbacks and NATS subscription for one topic.
type topicState struct {
	mu        sync.Mutex
	callbacks []types.UpdateCallback
	sub       *nats.Subscription
}

// Compile-time assertion that Subscriber implements MembershipFeed.
var _ types.MembershipFeed = (*Subscriber)(nil)

// NewSubscriber creates a membership feed subscriber on an established NATS
// connection.
//
// Parameters:
//   - conn: Connected NATS client; the subscriber does not own it
//   - cfg: Feed configuration; zero values are replaced by defaults
//
// Returns:
//   - *Subscriber: Initialized subscriber; Subscribe attaches topics
//
// Example:
//
//	nc, _ := nats.Connect(url)
//	feed := statestore.NewSubscriber(nc, statestore.Config{})
//	sched, _ := impala.New(&cfg, feed)
func NewSubscriber(conn *nats.Conn, cfg Config) *Subscriber {
	cfg.applyDefaults()

	return &Subscriber{
		conn:   conn,
		cfg:    cfg,
		logger: cfg.Logger,
		topics: xsync.NewMap[string, *topicState](),
	}
}

// DeltaSubject returns the NATS subject carrying rounds of topic.
func (s *Subscriber) DeltaSubject(topic string) string {
	return fmt.Sprintf("%s.delta.%s", s.cfg.SubjectPrefix, topic)
}

// UpdateSubject returns the NATS subject carrying outgoing updates for topic.
func (s *Subscriber) UpdateSubject(topic string) string {
	return fmt.Sprintf("%s.update.%s", s.cfg.SubjectPrefix, topic)
}

// Subscribe registers cb for rounds of the named topic.
//
// The first registration for a topic creates the underlying NATS
// subscription; later registrations share it. Updates returned by callbacks
// are published on the topic's update subject with bounded retries.
//
// Returns:
//   - error: NATS subscription failure
func (s *Subscriber) Subscribe(_ context.Context, topic string, cb types.UpdateCallback) error {
	state, _ := s.topics.LoadOrStore(topic, &topicState{})

	state.mu.Lock()
	defer state.mu.Unlock()

	state.callbacks = append(state.callbacks, cb)

	if state.sub == nil {
		sub, err := s.conn.Subscribe(s.DeltaSubject(topic), func(msg *nats.Msg) {
			s.dispatch(topic, state, msg)
		})
		if err != nil {
			state.callbacks = state.callbacks[:len(state.callbacks)-1]

			return fmt.Errorf("failed to subscribe to %s: %w", s.DeltaSubject(topic), err)
		}
		state.sub = sub
		s.logger.Info("subscribed to membership topic", "topic", topic, "subject", s.DeltaSubject(topic))
	}

	return nil
}

// Close drains all topic subscriptions. Registered callbacks receive no
// further rounds. The NATS connection itself is left open for the owner.
func (s *Subscriber) Close() error {
	var firstErr error
	s.topics.Range(func(topic string, state *topicState) bool {
		state.mu.Lock()
		defer state.mu.Unlock()

		if state.sub != nil {
			if err := state.sub.Unsubscribe(); err != nil && firstErr == nil {
				firstErr = fmt.Errorf("failed to unsubscribe from topic %s: %w", topic, err)
			}
			state.sub = nil
		}

		return true
	})

	return firstErr
}

// dispatch decodes one feed frame and fans it out to the topic's callbacks.
// Malformed frames are dropped with a log; a frame labeled for a different
// topic than its subject is passed through and left to callbacks to reject.
func (s *Subscriber) dispatch(topic string, state *topicState, msg *nats.Msg) {
	var delta types.TopicDelta
	if err := json.Unmarshal(msg.Data, &delta); err != nil {
		s.logger.Warn("dropping malformed membership frame", "topic", topic, "error", err)

		return
	}
	if delta.Topic == "" {
		delta.Topic = topic
	}

	// Callback slice is copied so a concurrent Subscribe cannot race the
	// iteration; delivery order within the topic is still serial because
	// NATS invokes this handler from one goroutine.
	state.mu.Lock()
	callbacks := make([]types.UpdateCallback, len(state.callbacks))
	copy(callbacks, state.callbacks)
	state.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.DeliverTimeout)
	defer cancel()

	for _, cb := range callbacks {
		for _, update := range cb(ctx, delta) {
			s.publishUpdate(ctx, update)
		}
	}
}

// publishUpdate publishes one outgoing update with jittered retries.
// Exhausting retries only logs: updates are best-effort and the producing
// callback re-emits on the next round.
func (s *Subscriber) publishUpdate(ctx context.Context, update types.TopicUpdate) {
	data, err := json.Marshal(update)
	if err != nil {
		s.logger.Error("failed to marshal topic update", "topic", update.Topic, "error", err)

		return
	}

	subject := s.UpdateSubject(update.Topic)
	backoff := newRetryBackoff(s.cfg.RetryBaseDelay, s.cfg.RetryMultiplier, s.cfg.RetryMaxDelay, s.cfg.RetrySeed)

	for attempt := 0; ; attempt++ {
		if err = s.conn.Publish(subject, data); err == nil {
			return
		}
		if !natsutil.IsConnectivityError(err) {
			s.logger.Error("topic update publish failed permanently", "subject", subject, "error", err)

			return
		}
		if attempt >= s.cfg.PublishRetries {
			break
		}

		delay := backoff.next()
		s.logger.Warn("retrying topic update publish",
			"subject", subject, "attempt", attempt+1, "delay", delay, "error", err)

		select {
		case <-ctx.Done():
			s.logger.Error("gave up publishing topic update", "subject", subject, "error", ctx.Err())

			return
		case <-time.After(delay):
		}
	}

	s.logger.Error("gave up publishing topic update", "subject", subject, "error", err)
}
