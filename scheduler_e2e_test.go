package impala

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/changedi/impala/statestore"
	impalatest "github.com/changedi/impala/testing"
	"github.com/changedi/impala/types"
)

// Exercises the full path: snapshot frames over NATS, membership
// replacement, self-registration publish, and assignment.
func TestScheduler_EndToEnd(t *testing.T) {
	_, nc := impalatest.StartEmbeddedNATS(t)

	feed := statestore.NewSubscriber(nc, statestore.Config{Logger: impalatest.NewTestLogger(t)})
	t.Cleanup(func() { _ = feed.Close() })

	sched, err := New(testConfig(), feed,
		WithResolver(clusterResolver()),
		WithLogger(impalatest.NewTestLogger(t)))
	require.NoError(t, err)
	require.NoError(t, sched.Init(context.Background()))

	// Capture self-announcements the scheduler asks the feed to publish.
	announcements := make(chan types.TopicUpdate, 4)
	rawSub, err := nc.Subscribe(feed.UpdateSubject(DefaultMembershipTopic), func(msg *nats.Msg) {
		var update types.TopicUpdate
		if err := json.Unmarshal(msg.Data, &update); err == nil {
			announcements <- update
		}
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = rawSub.Unsubscribe() })

	backendA := types.BackendAddress{Hostname: "host-1", Port: 100}
	backendB := types.BackendAddress{Hostname: "host-2", Port: 200}
	frame, err := json.Marshal(snapshot(t, backendA, backendB))
	require.NoError(t, err)
	require.NoError(t, nc.Publish(feed.DeltaSubject(DefaultMembershipTopic), frame))

	require.Eventually(t, func() bool {
		return len(sched.AllKnownBackends()) == 2
	}, 2*time.Second, 10*time.Millisecond)
	assert.ElementsMatch(t,
		[]types.BackendAddress{backendA, backendB}, sched.AllKnownBackends())

	// The snapshot omitted this process, so a self-announcement must have
	// been republished on the update subject.
	select {
	case update := <-announcements:
		require.Len(t, update.Items, 1)
		assert.Equal(t, "backend-self", update.Items[0].Key)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for self announcement")
	}

	got, err := sched.AssignOne(types.BackendAddress{Hostname: "10.0.0.1"})
	require.NoError(t, err)
	assert.Equal(t, backendA, got)
}
