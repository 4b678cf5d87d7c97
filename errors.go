package spooky

import "errors"

// Sentinel errors for construction-time and codec failures. Rule
// violations during play are never reported this way; they are
// queryable (IsLegalMove) and silent (MakeMove returns false).
var (
	ErrInvalidDimension = errors.New("spooky: board dimension out of range [2,32]")
	ErrInvalidAction    = errors.New("spooky: action out of range [0, width*height]")
	ErrOutOfBounds      = errors.New("spooky: coordinate out of bounds")
)
