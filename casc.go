package casc

import "github.com/katalvlaran/casc/core"

// Complex is a dimension-indexed Hasse diagram of fixed top dimension D.
// See core.Complex for the full method set.
type Complex = core.Complex

// SimplexId is an opaque, copyable, hashable reference to a single
// simplex of a Complex.
type SimplexId = core.SimplexId

// EdgeId names a single boundary/coboundary incidence between two
// simplices one dimension apart.
type EdgeId = core.EdgeId

// Key is the vertex-identifier type.
type Key = core.Key

// Option configures a Complex at construction time.
type Option = core.Option

// New constructs an empty Complex with top dimension dim (dim >= 1).
func New(dim int, opts ...Option) *Complex {
	return core.New(dim, opts...)
}

// WithLogger installs a structured logger for diagnostic tracing of
// mutating operations.
func WithLogger(l core.Logger) Option {
	return core.WithLogger(l)
}

// WithMaxKey overrides the default vertex-key space bound.
func WithMaxKey(max Key) Option {
	return core.WithMaxKey(max)
}

// WithNodeUUIDs stamps every created node with a random UUID, visible via
// Complex.Tag, for correlating log lines and DOT export ids with an
// external system.
func WithNodeUUIDs() Option {
	return core.WithNodeUUIDs()
}
