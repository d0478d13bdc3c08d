package matrix

import "errors"

// ErrInvalidDimensions indicates that requested matrix dimensions are
// non-positive.
var ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

// ErrIndexOutOfBounds indicates that a row or column index is outside the
// matrix's extent.
var ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")
