package ndarray

import (
	"fmt"
	"math"
)

// New creates a 1-D array holding a copy of values.
// An empty argument list yields the canonical empty array.
//
// Example:
//
//	a := ndarray.New[int32](1, 2, 3, 4) // shape [4]
func New[T DType](values ...T) *Array[T] {
	if len(values) == 0 {
		return Empty[T]()
	}
	a := newArray(newStorage[T](len(values)), NewLayout(Shape{len(values)}))
	copy(a.storage.data, values)
	return a
}

// Empty returns the canonical empty array: rank 0 and no elements.
func Empty[T DType]() *Array[T] {
	return newArray(newStorage[T](0), emptyLayout())
}

// Scalar returns a rank-0 array holding value.
func Scalar[T DType](value T) *Array[T] {
	a := newArray(newStorage[T](1), NewLayout(Shape{}))
	a.storage.data[0] = value
	return a
}

// FromSlice creates an array with the given shape from a row-major slice.
// The slice is copied into the array's storage.
func FromSlice[T DType](data []T, shape Shape) (*Array[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d: %w",
			shape, shape.NumElements(), len(data), ErrConstruction)
	}
	a := newArray(newStorage[T](len(data)), NewLayout(shape))
	copy(a.storage.data, data)
	return a, nil
}

// Zeros creates an array filled with zero values.
//
// Example:
//
//	a, err := ndarray.Zeros[float32](ndarray.Shape{3, 4})
func Zeros[T DType](shape Shape) (*Array[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	// Storage is already zero-initialized by make()
	return newArray(newStorage[T](shape.NumElements()), NewLayout(shape)), nil
}

// Full creates an array filled with a specific value.
//
// Example:
//
//	a, err := ndarray.Full[float32](ndarray.Shape{3}, 3.14)
func Full[T DType](shape Shape, value T) (*Array[T], error) {
	a, err := Zeros[T](shape)
	if err != nil {
		return nil, err
	}
	for i := range a.storage.data {
		a.storage.data[i] = value
	}
	return a, nil
}

// Ones creates a numeric array filled with ones.
func Ones[T Numeric](shape Shape) (*Array[T], error) {
	return Full[T](shape, 1)
}

// Arange returns [0, stop) with step 1.
func Arange[T Numeric](stop int) (*Array[T], error) {
	return ArangeStep[T](0, stop, 1)
}

// ArangeFrom returns [start, stop) with step 1.
func ArangeFrom[T Numeric](start, stop int) (*Array[T], error) {
	return ArangeStep[T](start, stop, 1)
}

// ArangeStep returns a 1-D array of start, start+step, ... stopping before
// stop. An interval that selects nothing yields the canonical empty array.
//
// Values are converted to T with a plain Go conversion, so integers outside
// the range of a narrow or unsigned T wrap: ArangeStep[uint8](-3, 3, 1) is
// [253 254 255 0 1 2].
//
// Example:
//
//	a, _ := ndarray.ArangeStep[int32](10, 0, -3) // [10 7 4 1]
func ArangeStep[T Numeric](start, stop, step int) (*Array[T], error) {
	if step == 0 {
		return nil, fmt.Errorf("arange(%d, %d, %d): %w", start, stop, step, ErrInvalidStep)
	}

	n, ok := rangeLen(start, stop, step)
	if !ok {
		return nil, fmt.Errorf("arange(%d, %d, %d) has too many elements: %w", start, stop, step, ErrConstruction)
	}
	if n == 0 {
		return Empty[T](), nil
	}

	a := newArray(newStorage[T](n), NewLayout(Shape{n}))
	data := a.storage.data
	for i := range n {
		// start+i*step lies between start and stop, so the wrapped product still lands on it.
		data[i] = T(start + i*step)
	}
	return a, nil
}

// rangeLen returns ceil((stop-start)/step) clamped at 0. The distance is
// computed in unsigned arithmetic; ok is false when the count exceeds MaxInt.
func rangeLen(start, stop, step int) (n int, ok bool) {
	var span, stride uint
	switch {
	case step > 0 && stop > start:
		span, stride = uint(stop)-uint(start), uint(step)
	case step < 0 && start > stop:
		span, stride = uint(start)-uint(stop), -uint(step)
	default:
		return 0, true
	}
	count := (span-1)/stride + 1
	if count > math.MaxInt {
		return 0, false
	}
	return int(count), true
}
