package impala

import (
	"context"
	"sort"

	"github.com/changedi/impala/internal/netutil"
	"github.com/changedi/impala/types"
)

// loopbackLogSample throttles the only-loopback diagnostic to one log line
// per N membership rounds; single-node test deployments hit this condition
// on every update.
const loopbackLogSample = 100

// UpdateMembership applies one membership round to the scheduler's view.
//
// It is the types.UpdateCallback registered by Init. The feed invokes it
// serially relative to itself, but concurrently with assignment calls; the
// replacement view is built without the lock and swapped in atomically.
//
// Rounds with IsDelta set are rejected wholesale: the view is rebuilt from
// scratch on every accepted round, and incremental updates cannot be merged
// into an always-replace model. Entries that fail to decode or resolve are
// skipped individually; neither condition aborts the round or propagates an
// error.
//
// When no entry carries this process's backend id, exactly one
// self-announcement is returned for the feed to publish. Encoding failures
// drop the announcement with a log only; self-registration is best-effort
// and retried implicitly on the next round.
//
// Parameters:
//   - ctx: Context bounding hostname resolution
//   - delta: The membership round to apply
//
// Returns:
//   - []types.TopicUpdate: Zero or one self-announcement to publish
func (s *Scheduler) UpdateMembership(ctx context.Context, delta types.TopicDelta) []types.TopicUpdate {
	if delta.Topic != s.cfg.MembershipTopic {
		s.logger.Warn("membership update for unexpected topic", "topic", delta.Topic)
		s.metrics.IncrementRejectedUpdate("topic_mismatch")

		return nil
	}

	count := s.updateCount.Add(1)

	if delta.IsDelta {
		s.logger.Warn("ignoring delta membership update, scheduler requires full snapshots",
			"topic", delta.Topic)
		s.metrics.IncrementRejectedUpdate("delta")

		return nil
	}

	// Build the replacement view without holding the lock; resolution may
	// take a while for large clusters.
	hostMap := make(map[string][]types.BackendAddress, len(delta.Items))
	foundSelf := false
	for _, item := range delta.Items {
		if item.Key == s.backendID {
			foundSelf = true
		}

		addr, err := s.codec.Decode(item.Value)
		if err != nil {
			s.logger.Debug("skipping undecodable membership entry", "key", item.Key, "error", err)
			s.metrics.IncrementSkippedEntry("decode")

			continue
		}

		key, ok := s.hostKey(ctx, addr.Hostname, count)
		if !ok {
			s.metrics.IncrementSkippedEntry("resolve")

			continue
		}

		hostMap[key] = append(hostMap[key], addr)
	}

	var updates []types.TopicUpdate
	if !foundSelf {
		if update, ok := s.selfAnnouncement(); ok {
			updates = append(updates, update)
		}
	}

	s.replaceHostMap(hostMap)

	return updates
}

// seedStatic populates the host map from a fixed backend list at
// construction time, bypassing the snapshot path. Backends are stored
// re-keyed to their resolved address.
func (s *Scheduler) seedStatic(ctx context.Context, backends []types.BackendAddress) {
	hostMap := make(map[string][]types.BackendAddress, len(backends))
	for _, backend := range backends {
		key, ok := s.hostKey(ctx, backend.Hostname, 0)
		if !ok {
			continue
		}
		hostMap[key] = append(hostMap[key], types.BackendAddress{Hostname: key, Port: backend.Port})
	}

	s.replaceHostMap(hostMap)
}

// hostKey resolves hostname and chooses the canonical host key: the first
// non-loopback resolved address, or the first address when only loopback
// addresses exist (degraded mode for single-node deployments).
func (s *Scheduler) hostKey(ctx context.Context, hostname string, round uint64) (string, bool) {
	ipaddrs, err := s.resolver.LookupHost(ctx, hostname)
	if err != nil || len(ipaddrs) == 0 {
		s.logger.Warn("failed to resolve backend hostname", "hostname", hostname, "error", err)

		return "", false
	}

	key, ok := netutil.FirstNonLoopback(ipaddrs)
	if !ok {
		// Someone might be running this on localhost with no external
		// interface (for debugging); keep going.
		key = ipaddrs[0]
		if round%loopbackLogSample == 0 {
			s.logger.Warn("only loopback addresses found", "hostname", hostname, "round", round)
		}
	}

	return key, true
}

// selfAnnouncement encodes the local backend address for re-publication on
// the membership topic.
func (s *Scheduler) selfAnnouncement() (types.TopicUpdate, bool) {
	value, err := s.codec.Encode(s.backendAddr)
	if err != nil {
		s.logger.Error("failed to encode local backend address for membership topic",
			"backendId", s.backendID, "error", err)

		return types.TopicUpdate{}, false
	}

	s.logger.Debug("registering local backend with membership feed", "backendId", s.backendID)
	s.metrics.IncrementSelfAnnouncement()

	return types.TopicUpdate{
		Topic: s.cfg.MembershipTopic,
		Items: []types.TopicItem{{Key: s.backendID, Value: value}},
	}, true
}

// replaceHostMap atomically swaps in a freshly built view and resets the
// round-robin cursor to the first key. Concurrent assignment calls see
// either the fully-old or fully-new map, never a partial one.
func (s *Scheduler) replaceHostMap(hostMap map[string][]types.BackendAddress) {
	keys := make([]string, 0, len(hostMap))
	backends := 0
	for key, seq := range hostMap {
		keys = append(keys, key)
		backends += len(seq)
	}
	sort.Strings(keys)

	s.mu.Lock()
	s.hostMap = hostMap
	s.hostKeys = keys
	s.nextHostIdx = 0
	s.mu.Unlock()

	s.metrics.RecordMembershipUpdate(len(keys), backends)
	s.logger.Debug("membership view replaced", "hosts", len(keys), "backends", backends)
}
