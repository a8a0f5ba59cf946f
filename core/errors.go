package core

import (
	"errors"

	pkgerrors "github.com/pkg/errors"
)

// Sentinel errors for Complex operations. ErrExhausted is the only one
// returned for an expected condition; the rest mark programmer
// preconditions and should not be recovered from at the call site that
// triggered them.
var (
	// ErrExhausted surfaces from AddVertex, AddVertexPayload and
	// AllocateKey when the key allocator has no free key left.
	ErrExhausted = errors.New("core: index allocator exhausted")

	// ErrNotFound names the not-found condition. The lookups in this
	// package (Get, GetUp, GetDown, Exists) do not return it: they report
	// a miss as ok=false, and RemoveName reports one as (0, nil).
	ErrNotFound = errors.New("core: simplex not found")

	// ErrDimensionOverflow is returned when an insert names more vertices
	// than the complex's top dimension allows.
	ErrDimensionOverflow = errors.New("core: dimension exceeds complex top dimension")

	// ErrUnsortedKeys is returned when Insert receives keys that are not
	// strictly ascending and pairwise distinct.
	ErrUnsortedKeys = errors.New("core: keys must be strictly ascending and distinct")

	// ErrEmptyKeys is returned when Insert receives zero keys.
	ErrEmptyKeys = errors.New("core: insert requires at least one key")

	// ErrRootOperation is returned when a caller attempts an operation
	// that is only meaningful above the root (dimension 0): Remove on the
	// root returns it. (decimate reports a root collapse with its own
	// ErrRootCollapse.)
	ErrRootOperation = errors.New("core: operation not valid on the root simplex")

	// ErrWrongComplex names the condition of a handle from one Complex
	// being presented to another. Handles carry no owner, so no operation
	// in this package detects that condition or returns this error.
	ErrWrongComplex = errors.New("core: handle does not belong to this complex")
)

// errInvariant wraps an internal consistency failure with a stack trace
// via github.com/pkg/errors, mirroring fine-structures/lib2x3's use of
// the same library for its own internal-consistency failures. These are
// library bugs, not recoverable conditions — see spec §7.
func errInvariant(msg string) error {
	return pkgerrors.New("core: invariant violation: " + msg)
}
