package ndarray

import "fmt"

// Comparison operations - return freshly allocated bool arrays.

// Equal returns a == other element-wise.
// Both arrays must have the same shape.
func (a *Array[T]) Equal(other *Array[T]) (*Array[bool], error) {
	return compare(a, other, "equal", func(x, y T) bool { return x == y })
}

// NotEqual returns a != other element-wise.
// Both arrays must have the same shape.
func (a *Array[T]) NotEqual(other *Array[T]) (*Array[bool], error) {
	return compare(a, other, "notEqual", func(x, y T) bool { return x != y })
}

func compare[T DType](a, b *Array[T], op string, f func(x, y T) bool) (*Array[bool], error) {
	if err := a.check(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := b.check(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !a.layout.shape.Equal(b.layout.shape) || a.layout.empty != b.layout.empty {
		return nil, fmt.Errorf("%s: shapes %v and %v differ: %w",
			op, a.layout.shape, b.layout.shape, ErrShapeMismatch)
	}

	result := allocLike[bool](a.layout)
	dst := result.storage.data
	ia, ib := newIndexer(a.layout), newIndexer(b.layout)
	for i := 0; ia.next() && ib.next(); i++ {
		dst[i] = f(a.storage.data[ia.offset], b.storage.data[ib.offset])
	}
	return result, nil
}

// Boolean operations - work on bool arrays.

// Not computes element-wise logical NOT.
func Not[T ~bool](x *Array[T]) (*Array[T], error) {
	if err := x.check(); err != nil {
		return nil, fmt.Errorf("not: %w", err)
	}
	result := x.allocLike()
	dst := result.storage.data
	i := 0
	for v := range x.Values() {
		dst[i] = !v
		i++
	}
	return result, nil
}

// ArrayEqual reports whether a and b have the same shape and equal elements.
func ArrayEqual[T DType](a, b *Array[T]) bool {
	eq, err := a.Equal(b)
	if err != nil {
		return false
	}
	ok, err := All(eq)
	return err == nil && ok
}
