// Package impala provides the backend scheduler of a distributed query
// execution engine: given a data location, it assigns one of the currently
// known worker backends to execute the work, preferring locality.
//
// The scheduler keeps a live view of cluster membership by consuming full
// snapshots from a publish/subscribe membership feed, and re-announces the
// local backend whenever a snapshot omits it. Assignment balances load both
// across hosts (a round-robin cursor over host keys for non-local requests)
// and within a host (rotate-to-back over the backends colocated there).
//
// # Quick Start
//
// With a live membership feed backed by NATS:
//
//	cfg := impala.Config{
//	    BackendID:     "backend-1",
//	    AdvertiseHost: "host-1.example.com",
//	    AdvertisePort: 22000,
//	}
//
//	feed := statestore.NewSubscriber(natsConn, statestore.Config{})
//	sched, err := impala.New(&cfg, feed)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := sched.Init(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
//	backend, err := sched.AssignOne(impala.BackendAddress{Hostname: "10.0.0.7", Port: 0})
//
// Without a feed, a static cluster description seeds the membership view at
// construction:
//
//	src := source.NewStatic(backends)
//	sched, err := impala.NewStatic(ctx, &cfg, src)
//
// # Concurrency
//
// All public methods are safe for concurrent use. Membership replacement is
// atomic with respect to assignment: a concurrent caller observes either the
// fully-old or fully-new view, never a partial one.
//
// See the examples/ directory for a complete daemon wiring.
package impala
