// Package decimate implements the metadata-aware decimation kernel of
// spec.md §4.8: collapsing a simplex to a single fresh vertex while user
// callbacks synthesize the payloads of every surviving merged simplex.
//
// The kernel has no direct analogue anywhere in the retrieved corpus —
// it is built directly from spec.md's algorithm description — but its
// two-phase compute/apply split follows original_source/include/decimate.h's
// decimateFirstHalf/decimateBackHalf shape (see SPEC_FULL.md), and its
// optional aggregate-error handling under WithContinueOnCallbackError uses
// go.uber.org/multierr the way birdayz/streamz combines independent
// per-partition errors.
package decimate
