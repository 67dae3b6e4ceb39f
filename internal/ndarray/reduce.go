package ndarray

import "fmt"

// Reduction operations over bool arrays.
//
// Both walk the array in row-major logical order, so views with any strides
// and any rank are supported, and stop at the first deciding element.

// Any reports whether at least one element is true.
// It returns false for an array with no elements.
func Any[T ~bool](a *Array[T]) (bool, error) {
	if err := a.check(); err != nil {
		return false, fmt.Errorf("any: %w", err)
	}
	for v := range a.Values() {
		if bool(v) {
			return true, nil
		}
	}
	return false, nil
}

// All reports whether every element is true.
// It returns true for an array with no elements.
func All[T ~bool](a *Array[T]) (bool, error) {
	if err := a.check(); err != nil {
		return false, fmt.Errorf("all: %w", err)
	}
	for v := range a.Values() {
		if !bool(v) {
			return false, nil
		}
	}
	return true, nil
}
