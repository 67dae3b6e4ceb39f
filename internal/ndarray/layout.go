package ndarray

import "fmt"

// Layout describes a logical view over a Storage: per-axis sizes, per-axis
// strides (in elements) and a base offset (in elements).
//
// Every offset reachable through a valid Layout, offset + Σ idx[k]*strides[k]
// with 0 <= idx[k] < shape[k], lies inside the Storage it was derived for.
type Layout struct {
	shape   Shape
	strides []int
	offset  int
	empty   bool // canonical rank-0 array with no elements
}

// NewLayout returns a contiguous row-major layout for shape.
func NewLayout(shape Shape) Layout {
	return Layout{
		shape:   shape.Clone(),
		strides: shape.ComputeStrides(),
	}
}

// emptyLayout is the layout of the canonical empty array.
func emptyLayout() Layout {
	return Layout{shape: Shape{}, strides: []int{}, empty: true}
}

// Shape returns a copy of the per-axis sizes.
func (l Layout) Shape() Shape {
	return l.shape.Clone()
}

// Strides returns a copy of the per-axis strides.
func (l Layout) Strides() []int {
	return append([]int(nil), l.strides...)
}

// Offset returns the base offset into Storage.
func (l Layout) Offset() int {
	return l.offset
}

// Rank returns the number of axes.
func (l Layout) Rank() int {
	return len(l.shape)
}

// NumElements returns the logical element count.
func (l Layout) NumElements() int {
	if l.empty {
		return 0
	}
	return l.shape.NumElements()
}

// IsContiguous reports whether the layout walks its elements in row-major
// order with no gaps. Axes of length 1 never affect contiguity.
func (l Layout) IsContiguous() bool {
	expected := 1
	for k := len(l.shape) - 1; k >= 0; k-- {
		if l.shape[k] == 1 {
			continue
		}
		if l.strides[k] != expected {
			return false
		}
		expected *= l.shape[k]
	}
	return true
}

// SliceAxis narrows one axis to length elements starting at start, advancing
// by step. All other axes are unchanged; rank is preserved.
func (l Layout) SliceAxis(axis, start, length, step int) Layout {
	out := l.clone()
	out.shape[axis] = length
	out.strides[axis] = l.strides[axis] * step
	if length > 0 {
		out.offset += l.strides[axis] * start
	}
	return out
}

// Reshape returns a layout with newShape over the same elements.
// The element count must match and the layout must be contiguous.
func (l Layout) Reshape(newShape Shape) (Layout, error) {
	if err := newShape.Validate(); err != nil {
		return Layout{}, fmt.Errorf("reshape to %v: %w", newShape, err)
	}
	if newShape.NumElements() != l.NumElements() {
		return Layout{}, fmt.Errorf("cannot reshape %d elements %v into %v: %w",
			l.NumElements(), l.shape, newShape, ErrDimensionMismatch)
	}
	if !l.IsContiguous() {
		return Layout{}, fmt.Errorf("cannot reshape non-contiguous view %v (strides %v): %w",
			l.shape, l.strides, ErrDimensionMismatch)
	}
	out := NewLayout(newShape)
	out.offset = l.offset
	return out, nil
}

func (l Layout) clone() Layout {
	return Layout{
		shape:   l.shape.Clone(),
		strides: append([]int(nil), l.strides...),
		offset:  l.offset,
		empty:   l.empty,
	}
}

// String returns the layout as shape, strides and offset.
func (l Layout) String() string {
	return fmt.Sprintf("shape=%v strides=%v offset=%d", l.shape, l.strides, l.offset)
}
