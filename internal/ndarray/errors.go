package ndarray

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrConstruction      = errors.New("invalid array construction")
	ErrDimensionMismatch = errors.New("dimension mismatch")
	ErrOutOfRange        = errors.New("index out of range")
	ErrShapeMismatch     = errors.New("shape mismatch")
	ErrInvalidStep       = errors.New("step cannot be 0")
	ErrUnhandledRank     = errors.New("unhandled rank")
	ErrReleased          = errors.New("storage already released")
)

// IndexError provides detailed information about an out-of-range index.
type IndexError struct {
	Axis  int // Axis the index was applied to
	Index int // Index as given by the caller (before negative adjustment)
	Size  int // Length of the axis
}

// Error implements the error interface.
func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range for axis %d with size %d", e.Index, e.Axis, e.Size)
}

// Unwrap makes IndexError match ErrOutOfRange with errors.Is.
func (e *IndexError) Unwrap() error {
	return ErrOutOfRange
}
