package decimate

// Option configures Decimate/Apply.
type Option func(*config)

type config struct {
	continueOnCallbackError bool
}

func newConfig(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithContinueOnCallbackError makes Apply collect every callback error
// with go.uber.org/multierr instead of aborting on the first one. Groups
// whose callback failed are inserted with no payload rather than being
// dropped, so the topology of the collapse is still fully applied; the
// aggregated error is returned alongside the new vertex's handle.
//
// The base contract (spec.md §7: mutating operations either complete or
// leave the complex untouched) is what the default (off) behavior
// upholds — this option is a documented escape hatch for callers who
// would rather have best-effort payload synthesis than an all-or-nothing
// collapse.
func WithContinueOnCallbackError() Option {
	return func(c *config) { c.continueOnCallbackError = true }
}
