// Copyright 2025 The numcpp Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray_test

import (
	"fmt"

	"github.com/Jsemko/numcpp/ndarray"
)

func Example() {
	a, _ := ndarray.Arange[int32](12)
	m, _ := a.Reshape(3, 4)

	row, _ := m.Index(-2)
	fmt.Println(row.Shape(), row.ToSlice())

	evens, _ := a.Select(ndarray.RangeStep(0, 10, 2))
	fmt.Println(evens.ToSlice())

	inner, _ := evens.Select(ndarray.Range(1, -1))
	fmt.Println(inner.ToSlice())

	rev, _ := a.Select(ndarray.RangeStep(6, 3, -2))
	fmt.Println(rev.ToSlice())
	// Output:
	// [4] [4 5 6 7]
	// [0 2 4 6 8]
	// [2 4 6]
	// [6 4]
}

func ExampleArray_Select() {
	a, _ := ndarray.Arange[int](20)
	m, _ := a.Reshape(4, 5)

	b, _ := m.Select(ndarray.Range(1, -1), ndarray.Range(1, -1))
	fmt.Println(b.Shape(), b.ToSlice())

	c, _ := m.Select(ndarray.Whole, ndarray.Index(0))
	fmt.Println(c.Shape(), c.ToSlice())
	// Output:
	// [2 3] [6 7 8 11 12 13]
	// [4] [0 5 10 15]
}

func ExampleArray_Set() {
	a, _ := ndarray.Arange[int](6)
	m, _ := a.Reshape(2, 3)

	_ = m.Set(100, 1, 0)
	fmt.Println(a.ToSlice())
	// Output:
	// [0 1 2 100 4 5]
}

func ExampleAny() {
	c := ndarray.New(false, false, false, false)
	found, _ := ndarray.Any(c)
	fmt.Println(found)

	_ = c.Set(true, 2)
	found, _ = ndarray.Any(c)
	fmt.Println(found)
	// Output:
	// false
	// true
}
