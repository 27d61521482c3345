package graphio

import "errors"

// ErrMalformedInput indicates that the input does not follow the legacy
// graph format. The wrapping error names the offending line.
var ErrMalformedInput = errors.New("graphio: malformed input")
