package impala

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/changedi/impala/internal/logger"
	"github.com/changedi/impala/internal/metrics"
	"github.com/changedi/impala/internal/netutil"
	"github.com/changedi/impala/types"
	"github.com/changedi/impala/wire"
)

// Scheduler assigns data locations to backends, preferring locality.
//
// It owns the authoritative host map built from membership snapshots: a
// mapping from canonical host key (resolved, non-loopback-preferred IP
// string) to the ordered backends sharing that host. Assignment consults the
// map under an exclusive lock and rotates state, so reads and writes share
// the same mutex.
//
// Thread Safety:
//   - All public methods are safe for concurrent use
//   - Membership replacement is atomic with respect to assignment
//
// Lifecycle:
//   - Create with New (live feed) or NewStatic (fixed cluster description)
//   - Call Init() to subscribe to the membership topic and mark readiness
//   - Tear down with the process; there is no shutdown protocol
type Scheduler struct {
	cfg  Config
	feed MembershipFeed // nil in static mode

	backendID   string
	backendAddr types.BackendAddress

	codec    AddressCodec
	resolver HostResolver
	metrics  MetricsCollector
	logger   Logger

	initialized atomic.Bool
	updateCount atomic.Uint64

	// mu guards the membership view, the round-robin cursor and the
	// assignment counters. Assignment rotates state, so there is no
	// reader/writer distinction.
	mu               sync.Mutex
	hostMap          map[string][]types.BackendAddress
	hostKeys         []string // sorted at the last replacement
	nextHostIdx      int
	totalAssignments int64
	localAssignments int64
}

// Stats is a point-in-time snapshot of the scheduler's counters.
type Stats struct {
	// TotalAssignments counts successful AssignOne calls.
	TotalAssignments int64 `json:"totalAssignments"`

	// LocalAssignments counts assignments that matched a known host key.
	LocalAssignments int64 `json:"localAssignments"`

	// MembershipUpdates counts membership rounds received, including
	// rejected deltas.
	MembershipUpdates uint64 `json:"membershipUpdates"`

	// Hosts is the number of distinct host keys in the current view.
	Hosts int `json:"hosts"`

	// Backends is the total number of backends in the current view.
	Backends int `json:"backends"`
}

// New creates a Scheduler fed by a live membership feed.
//
// The scheduler does not subscribe until Init is called, so membership stays
// empty (and assignment fails with ErrNoBackendsAvailable) until the first
// snapshot arrives.
//
// Parameters:
//   - cfg: Runtime configuration; defaults are filled in, then validated
//   - feed: Membership feed delivering snapshot rounds
//   - opts: Optional dependencies (codec, resolver, metrics, logger)
//
// Returns:
//   - *Scheduler: Initialized scheduler instance
//   - error: Validation error if the configuration is invalid
//
// Example:
//
//	feed := statestore.NewSubscriber(natsConn, statestore.Config{})
//	sched, err := impala.New(&cfg, feed, impala.WithLogger(log))
func New(cfg *Config, feed MembershipFeed, opts ...Option) (*Scheduler, error) {
	if cfg == nil {
		return nil, ErrInvalidConfig
	}
	if feed == nil {
		return nil, ErrMembershipFeedRequired
	}

	s, err := newScheduler(cfg, opts)
	if err != nil {
		return nil, err
	}
	s.feed = feed

	return s, nil
}

// NewStatic creates a Scheduler seeded from a fixed cluster description,
// used when no membership feed is configured.
//
// Each backend is resolved at construction the same way membership entries
// are, and stored re-keyed to its resolved address. Unresolvable entries are
// skipped with a diagnostic, not fatal.
//
// Parameters:
//   - ctx: Context bounding hostname resolution
//   - cfg: Runtime configuration; defaults are filled in, then validated
//   - src: Static cluster description
//   - opts: Optional dependencies (codec, resolver, metrics, logger)
//
// Returns:
//   - *Scheduler: Scheduler with a pre-populated membership view
//   - error: Validation error, or the source's listing error
func NewStatic(ctx context.Context, cfg *Config, src ClusterSource, opts ...Option) (*Scheduler, error) {
	if cfg == nil {
		return nil, ErrInvalidConfig
	}
	if src == nil {
		return nil, ErrClusterSourceRequired
	}

	s, err := newScheduler(cfg, opts)
	if err != nil {
		return nil, err
	}

	backends, err := src.ListBackends(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list static backends: %w", err)
	}
	s.seedStatic(ctx, backends)

	return s, nil
}

func newScheduler(cfg *Config, opts []Option) (*Scheduler, error) {
	SetDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	options := &schedulerOptions{}
	for _, opt := range opts {
		opt(options)
	}

	// Safe defaults for optional dependencies avoid nil checks everywhere.
	if options.codec == nil {
		options.codec = wire.NewJSONCodec()
	}
	if options.resolver == nil {
		options.resolver = netutil.NewSystemResolver()
	}
	if options.metrics == nil {
		options.metrics = metrics.NewNop()
	}
	if options.logger == nil {
		options.logger = logger.NewNop()
	}

	return &Scheduler{
		cfg:         *cfg,
		backendID:   cfg.BackendID,
		backendAddr: cfg.AdvertiseAddress(),
		codec:       options.codec,
		resolver:    options.resolver,
		metrics:     options.metrics,
		logger:      options.logger,
		hostMap:     make(map[string][]types.BackendAddress),
	}, nil
}

// Init subscribes the scheduler to the membership topic (when a feed is
// configured) and marks it initialized for external monitoring.
//
// Returns:
//   - error: ErrAlreadyInitialized on repeated calls, or the feed's
//     subscription error
func (s *Scheduler) Init(ctx context.Context) error {
	if !s.initialized.CompareAndSwap(false, true) {
		return ErrAlreadyInitialized
	}

	s.logger.Info("starting scheduler", "backendId", s.backendID, "topic", s.cfg.MembershipTopic)

	if s.feed != nil {
		if err := s.feed.Subscribe(ctx, s.cfg.MembershipTopic, s.UpdateMembership); err != nil {
			s.initialized.Store(false)
			return fmt.Errorf("failed to subscribe to membership topic %s: %w", s.cfg.MembershipTopic, err)
		}
	}

	s.metrics.SetInitialized(true)

	return nil
}

// AssignOne maps a data location to exactly one backend.
//
// When the location's host identifier matches a known host key the
// assignment is local; otherwise the round-robin cursor selects the next
// host key in the stable order fixed at the last membership replacement.
// Within the chosen host the first backend is returned and rotated to the
// back of the sequence, so colocated backends share load fairly.
//
// The location's host identifier is matched literally against host keys
// produced by membership resolution: callers must supply data locations in
// that resolved key space, the scheduler does not re-resolve them.
//
// Parameters:
//   - location: Data location; only the Hostname participates in matching
//
// Returns:
//   - BackendAddress: The assigned backend
//   - error: ErrNoBackendsAvailable when the membership view is empty
func (s *Scheduler) AssignOne(location BackendAddress) (BackendAddress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.hostKeys) == 0 {
		return BackendAddress{}, ErrNoBackendsAvailable
	}

	key := location.Hostname
	seq, local := s.hostMap[key]
	if !local {
		// Round-robin across host keys for non-local locations.
		key = s.hostKeys[s.nextHostIdx]
		s.nextHostIdx++
		if s.nextHostIdx == len(s.hostKeys) {
			s.nextHostIdx = 0
		}
		seq = s.hostMap[key]
	}

	// Round-robin between backends on the same host: pick the first one,
	// then move it to the back of the sequence.
	backend := seq[0]
	copy(seq, seq[1:])
	seq[len(seq)-1] = backend

	s.totalAssignments++
	if local {
		s.localAssignments++
	}
	s.metrics.IncrementAssignment(local)

	s.logger.Debug("assignment (data -> backend)",
		"location", location.String(), "backend", backend.String(), "local", local)

	return backend, nil
}

// AssignMany maps each data location to a backend via AssignOne.
//
// The result has the same length and order as locations; element i is the
// assignment for locations[i].
//
// Returns:
//   - []BackendAddress: Positionally correlated assignments
//   - error: ErrNoBackendsAvailable when the membership view is empty
func (s *Scheduler) AssignMany(locations []BackendAddress) ([]BackendAddress, error) {
	backends := make([]BackendAddress, 0, len(locations))
	for _, location := range locations {
		backend, err := s.AssignOne(location)
		if err != nil {
			return nil, err
		}
		backends = append(backends, backend)
	}

	return backends, nil
}

// AllKnownBackends returns every backend in the current membership view,
// flattening all per-host sequences. The result reflects membership only,
// not assignment, and is safe for the caller to retain.
func (s *Scheduler) AllKnownBackends() []BackendAddress {
	s.mu.Lock()
	defer s.mu.Unlock()

	backends := make([]BackendAddress, 0, len(s.hostKeys))
	for _, key := range s.hostKeys {
		backends = append(backends, s.hostMap[key]...)
	}

	return backends
}

// Stats returns a snapshot of the scheduler's counters.
func (s *Scheduler) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	backends := 0
	for _, seq := range s.hostMap {
		backends += len(seq)
	}

	return Stats{
		TotalAssignments:  s.totalAssignments,
		LocalAssignments:  s.localAssignments,
		MembershipUpdates: s.updateCount.Load(),
		Hosts:             len(s.hostKeys),
		Backends:          backends,
	}
}

// IsInitialized reports whether Init completed successfully.
func (s *Scheduler) IsInitialized() bool {
	return s.initialized.Load()
}

// BackendID returns this process's identity on the membership topic.
func (s *Scheduler) BackendID() string {
	return s.backendID
}
