package ndarray

import "fmt"

// normalizeIndex resolves a possibly negative index against an axis of the given size.
func normalizeIndex(axis, index, size int) (int, error) {
	i := index
	if i < 0 {
		i += size
	}
	if i < 0 || i >= size {
		return 0, &IndexError{Axis: axis, Index: index, Size: size}
	}
	return i, nil
}

// Resolve converts one index per axis into a linear Storage offset.
// Negative indices count from the end of their axis.
func (l Layout) Resolve(indices ...int) (int, error) {
	if len(indices) != l.Rank() {
		return 0, fmt.Errorf("expected %d indices, got %d: %w", l.Rank(), len(indices), ErrOutOfRange)
	}
	if l.empty {
		return 0, fmt.Errorf("empty array has no elements: %w", ErrOutOfRange)
	}
	offset := l.offset
	for k, idx := range indices {
		i, err := normalizeIndex(k, idx, l.shape[k])
		if err != nil {
			return 0, err
		}
		offset += i * l.strides[k]
	}
	return offset, nil
}

// Index consumes the leading len(indices) axes and returns the layout of the
// remaining trailing axes. Supplying Rank() indices yields a rank-0 layout
// addressing a single element.
func (l Layout) Index(indices ...int) (Layout, error) {
	if len(indices) > l.Rank() {
		return Layout{}, fmt.Errorf("too many indices for array of rank %d: got %d: %w",
			l.Rank(), len(indices), ErrOutOfRange)
	}
	if l.empty {
		return Layout{}, fmt.Errorf("empty array has no elements: %w", ErrOutOfRange)
	}
	offset := l.offset
	for k, idx := range indices {
		i, err := normalizeIndex(k, idx, l.shape[k])
		if err != nil {
			return Layout{}, err
		}
		offset += i * l.strides[k]
	}
	n := len(indices)
	return Layout{
		shape:   l.shape[n:].Clone(),
		strides: append([]int(nil), l.strides[n:]...),
		offset:  offset,
	}, nil
}
