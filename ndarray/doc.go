// Copyright 2025 The numcpp Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ndarray provides dense N-dimensional arrays with NumPy-style views.
//
// # Overview
//
// An Array pairs a reference-counted Storage with a Layout (shape, strides
// and base offset). This package provides:
//   - Generic element types (Array[T])
//   - Negative indices counted from the end of an axis
//   - Python-style slicing with start, stop and step
//   - Zero-copy Reshape, Index and Select views
//   - Elementwise Equal, NotEqual and Not producing fresh bool arrays
//   - Any and All reductions over arrays of any rank
//
// # Basic Usage
//
//	a, _ := ndarray.Arange[int32](12)
//	m, _ := a.Reshape(3, 4)
//
//	row, _ := m.Index(-2)                                   // [4 5 6 7]
//	inner, _ := m.Select(ndarray.Range(1, -1), ndarray.From(1)) // shape [1 3]
//	evens, _ := a.Select(ndarray.RangeStep(0, 10, 2))         // [0 2 4 6 8]
//
// # Views and Aliasing
//
// Reshape, Index and Select never copy. The returned array shares storage
// with its source, so a write through either is visible through both:
//
//	row, _ := m.Index(1)
//	_ = row.Set(100, 0)
//	v, _ := a.At(4) // 100
//
// Use Clone to obtain an independent contiguous copy. Reshape requires a
// contiguous array; Clone a strided view first to reshape it.
//
// # Selectors
//
// Select takes one Selector per leading axis:
//   - Index(i) picks one position and drops the axis
//   - Range, RangeStep, From and To keep the axis
//   - Whole keeps the axis unchanged
//
// Selectors are applied left to right and axes without a selector are kept
// whole.
//
// # Errors
//
// Operations return errors wrapping ErrConstruction, ErrDimensionMismatch,
// ErrOutOfRange, ErrShapeMismatch, ErrInvalidStep, ErrUnhandledRank or
// ErrReleased. Use errors.Is to test for them.
//
// # Concurrency
//
// Arrays are not safe for concurrent mutation. Callers sharing storage
// between goroutines must synchronize access themselves.
package ndarray
