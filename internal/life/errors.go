package life

import "github.com/pkg/errors"

// Sentinel errors for board construction and pattern decoding. Call
// sites wrap these with context; match them with errors.Is.
var (
	ErrInvalidDimensions  = errors.New("width and height must be positive")
	ErrMalformedPattern   = errors.New("malformed pattern")
	ErrInvalidProbability = errors.New("alive probability must be within [0, 1]")
	ErrOutOfBounds        = errors.New("cell position out of bounds")
)
