package textview

import (
	"errors"
	"fmt"
)

// Errors returned by slicing and splitting operations. When several
// violations hold at once, the first failing check in this order wins:
// start out of bounds, end before start, end out of bounds, start not
// aligned, end not aligned.
var (
	ErrStartOutOfBounds = errors.New("slice start out of bounds")
	ErrEndBeforeStart   = errors.New("slice end before start")
	ErrEndOutOfBounds   = errors.New("slice end out of bounds")
	ErrStartNotAligned  = errors.New("slice start not on a code-point boundary")
	ErrEndNotAligned    = errors.New("slice end not on a code-point boundary")
)

// InvalidUTF8Error reports malformed UTF-8 encountered while validating raw
// input. Callers may retry with FromBytesLossy or propagate.
type InvalidUTF8Error struct {
	// Offset is the byte offset of the first invalid sequence.
	Offset int
}

// Error implements the error interface.
func (e *InvalidUTF8Error) Error() string {
	return fmt.Sprintf("invalid UTF-8 sequence at byte %d", e.Offset)
}
