package decimate

import "errors"

// ErrRootCollapse is returned when Decimate is asked to collapse the
// root (dimension 0) — a precondition violation per spec.md §7.
var ErrRootCollapse = errors.New("decimate: cannot collapse the root simplex")

// ErrCallback is the sentinel wrapped around the first (or, under
// WithContinueOnCallbackError, the aggregated) user-callback error.
var ErrCallback = errors.New("decimate: callback failed")
