// Copyright 2025 The numcpp Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

import (
	"github.com/Jsemko/numcpp/internal/ndarray"
)

// Type aliases for public API

// DType is a constraint for array element types: integers, floats and bool.
type DType = ndarray.DType

// Numeric is a constraint for element types usable with Arange and Ones.
type Numeric = ndarray.Numeric

// DataType represents the runtime element type of an array.
type DataType = ndarray.DataType

// Data type constants.
const (
	Int8    DataType = ndarray.Int8
	Int16   DataType = ndarray.Int16
	Int32   DataType = ndarray.Int32
	Int64   DataType = ndarray.Int64
	Int     DataType = ndarray.Int
	Uint8   DataType = ndarray.Uint8
	Uint16  DataType = ndarray.Uint16
	Uint32  DataType = ndarray.Uint32
	Uint64  DataType = ndarray.Uint64
	Uint    DataType = ndarray.Uint
	Uintptr DataType = ndarray.Uintptr
	Float32 DataType = ndarray.Float32
	Float64 DataType = ndarray.Float64
	Bool    DataType = ndarray.Bool
)

// MaxRank is the largest number of axes an array may have.
const MaxRank = ndarray.MaxRank

// Shape represents the dimensions of an array.
// Example: Shape{2, 3, 4} represents a 3D array with dimensions 2×3×4.
type Shape = ndarray.Shape

// Layout describes a view over storage: shape, strides and base offset.
type Layout = ndarray.Layout

// Storage is the reference-counted buffer shared by an array and its views.
type Storage[T DType] = ndarray.Storage[T]

// Array is a dense N-dimensional array.
//
// Example:
//
//	a, _ := ndarray.Arange[float64](6)
//	m, _ := a.Reshape(2, 3)
//	v, _ := m.At(-1, 0) // 3
type Array[T DType] = ndarray.Array[T]

// Ref is a mutable reference to one array element.
type Ref[T DType] = ndarray.Ref[T]

// Selector picks part of one axis in Array.Select.
type Selector = ndarray.Selector

// Slice selects a strided range of an axis and keeps the axis.
type Slice = ndarray.Slice

// Index selects one position of an axis and drops the axis.
type Index = ndarray.Index

// IndexError describes an out-of-range index.
type IndexError = ndarray.IndexError

// Errors returned by array operations.
var (
	ErrConstruction      = ndarray.ErrConstruction
	ErrDimensionMismatch = ndarray.ErrDimensionMismatch
	ErrOutOfRange        = ndarray.ErrOutOfRange
	ErrShapeMismatch     = ndarray.ErrShapeMismatch
	ErrInvalidStep       = ndarray.ErrInvalidStep
	ErrUnhandledRank     = ndarray.ErrUnhandledRank
	ErrReleased          = ndarray.ErrReleased
)

// Whole selects a whole axis unchanged.
var Whole = ndarray.Whole

// Selector constructors

// Range returns the slice [start, stop). Negative bounds count from the end.
func Range(start, stop int) Slice {
	return ndarray.Range(start, stop)
}

// RangeStep returns the slice [start, stop) advancing by step.
//
// Example:
//
//	d, _ := a.Select(ndarray.RangeStep(6, 3, -2)) // a[6], a[4]
func RangeStep(start, stop, step int) Slice {
	return ndarray.RangeStep(start, stop, step)
}

// From returns the slice from start to the end of the axis.
func From(start int) Slice {
	return ndarray.From(start)
}

// To returns the slice from the beginning of the axis up to stop.
func To(stop int) Slice {
	return ndarray.To(stop)
}

// Creation functions

// New creates a 1-D array from values. No values yields the empty array.
//
// Example:
//
//	a := ndarray.New[int32](1, 2, 3, 4)
func New[T DType](values ...T) *Array[T] {
	return ndarray.New(values...)
}

// Empty returns the canonical empty array.
func Empty[T DType]() *Array[T] {
	return ndarray.Empty[T]()
}

// Scalar returns a rank-0 array holding value.
func Scalar[T DType](value T) *Array[T] {
	return ndarray.Scalar(value)
}

// FromSlice creates an array from row-major data.
//
// Example:
//
//	data := []float32{1, 2, 3, 4, 5, 6}
//	x, err := ndarray.FromSlice(data, ndarray.Shape{2, 3})
func FromSlice[T DType](data []T, shape Shape) (*Array[T], error) {
	return ndarray.FromSlice(data, shape)
}

// Zeros creates an array filled with zeros.
func Zeros[T DType](shape Shape) (*Array[T], error) {
	return ndarray.Zeros[T](shape)
}

// Ones creates an array filled with ones.
func Ones[T Numeric](shape Shape) (*Array[T], error) {
	return ndarray.Ones[T](shape)
}

// Full creates an array filled with value.
//
// Example:
//
//	x, err := ndarray.Full[float32](ndarray.Shape{2, 3}, 3.14)
func Full[T DType](shape Shape, value T) (*Array[T], error) {
	return ndarray.Full(shape, value)
}

// Arange creates the 1-D array [0, stop).
//
// Example:
//
//	x, _ := ndarray.Arange[float32](10) // [0, 1, 2, ..., 9]
func Arange[T Numeric](stop int) (*Array[T], error) {
	return ndarray.Arange[T](stop)
}

// ArangeFrom creates the 1-D array [start, stop).
func ArangeFrom[T Numeric](start, stop int) (*Array[T], error) {
	return ndarray.ArangeFrom[T](start, stop)
}

// ArangeStep creates the 1-D array start, start+step, ... before stop.
// A zero step fails with ErrInvalidStep.
func ArangeStep[T Numeric](start, stop, step int) (*Array[T], error) {
	return ndarray.ArangeStep[T](start, stop, step)
}

// Boolean functions

// Not computes element-wise logical NOT into a new array.
func Not[T ~bool](x *Array[T]) (*Array[T], error) {
	return ndarray.Not(x)
}

// Any reports whether any element of a is true.
func Any[T ~bool](a *Array[T]) (bool, error) {
	return ndarray.Any(a)
}

// All reports whether every element of a is true.
func All[T ~bool](a *Array[T]) (bool, error) {
	return ndarray.All(a)
}

// ArrayEqual reports whether a and b have equal shapes and elements.
func ArrayEqual[T DType](a, b *Array[T]) bool {
	return ndarray.ArrayEqual(a, b)
}

// NewLayout returns a contiguous row-major layout for shape.
func NewLayout(shape Shape) Layout {
	return ndarray.NewLayout(shape)
}
