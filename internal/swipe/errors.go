package swipe

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange indicates a gesture referenced a row outside the current items.
var ErrIndexOutOfRange = errors.New("index out of range")

// IndexError reports the offending index and the item count at the time of the call.
type IndexError struct {
	Op    string // gesture entry point, e.g. "pan_end"
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("swipe: %s: index %d out of range [0,%d)", e.Op, e.Index, e.Len)
}

func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}
