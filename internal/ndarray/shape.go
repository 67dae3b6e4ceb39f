package ndarray

import (
	"fmt"
	"math"

	"golang.org/x/exp/slices"
)

// MaxRank is the largest number of axes an array may have.
const MaxRank = 64

// Shape represents the dimensions of an array.
type Shape []int

// NumElements returns the total number of elements in the array.
// The result is only meaningful for shapes that pass Validate.
func (s Shape) NumElements() int {
	n := 1 // a scalar has one element
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that every dimension is > 0, the rank is at most MaxRank
// and the element count fits in an int.
func (s Shape) Validate() error {
	if len(s) > MaxRank {
		return fmt.Errorf("rank %d exceeds maximum %d: %w", len(s), MaxRank, ErrUnhandledRank)
	}
	n := 1
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("invalid dimension at index %d: %d (must be > 0): %w", i, dim, ErrConstruction)
		}
		if n > math.MaxInt/dim {
			return fmt.Errorf("shape %v has too many elements: %w", s, ErrConstruction)
		}
		n *= dim
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	return slices.Equal(s, other)
}

// Clone returns a copy of the shape. The copy is never nil.
func (s Shape) Clone() Shape {
	if s == nil {
		return Shape{}
	}
	return slices.Clone(s)
}

// ComputeStrides returns row-major strides: the last axis moves fastest and
// each stride is the product of the sizes of the axes after it.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	step := 1
	for k := len(s) - 1; k >= 0; k-- {
		strides[k] = step
		step *= s[k]
	}
	return strides
}
