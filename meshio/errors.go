package meshio

import "errors"

// ErrFormat is returned when the input does not parse as a well-formed
// OFF stream.
var ErrFormat = errors.New("meshio: malformed OFF input")
