package impala

// Option configures a Scheduler with optional dependencies.
type Option func(*schedulerOptions)

// schedulerOptions holds optional Scheduler configuration.
type schedulerOptions struct {
	codec    AddressCodec
	resolver HostResolver
	metrics  MetricsCollector
	logger   Logger
}

// WithCodec sets a custom address codec.
//
// The codec must match the one used by every other cluster participant on
// the membership topic. Defaults to wire.NewJSONCodec().
//
// Parameters:
//   - codec: AddressCodec implementation
//
// Returns:
//   - Option: Functional option for New / NewStatic
func WithCodec(codec AddressCodec) Option {
	return func(o *schedulerOptions) {
		o.codec = codec
	}
}

// WithResolver sets a custom hostname resolver.
//
// Defaults to the system resolver. Tests typically supply a static table.
//
// Parameters:
//   - resolver: HostResolver implementation
//
// Returns:
//   - Option: Functional option for New / NewStatic
func WithResolver(resolver HostResolver) Option {
	return func(o *schedulerOptions) {
		o.resolver = resolver
	}
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - metrics: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for New / NewStatic
//
// Example:
//
//	collector := metrics.NewPrometheus(nil, "impala")
//	sched, err := impala.New(&cfg, feed, impala.WithMetrics(collector))
func WithMetrics(metrics MetricsCollector) Option {
	return func(o *schedulerOptions) {
		o.metrics = metrics
	}
}

// WithLogger sets a logger.
//
// Parameters:
//   - logger: Logger implementation (compatible with zap.SugaredLogger)
//
// Returns:
//   - Option: Functional option for New / NewStatic
//
// Example:
//
//	logger := logging.NewZap(zap.NewExample().Sugar())
//	sched, err := impala.New(&cfg, feed, impala.WithLogger(logger))
func WithLogger(logger Logger) Option {
	return func(o *schedulerOptions) {
		o.logger = logger
	}
}
