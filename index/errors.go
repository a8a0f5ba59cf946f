package index

import "errors"

// ErrExhausted is returned by Pop when no free key remains in [0, Max).
var ErrExhausted = errors.New("index: allocator exhausted")

// ErrInvalidKey is returned when a key falls outside [0, Max).
var ErrInvalidKey = errors.New("index: key out of range")
