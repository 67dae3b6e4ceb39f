package ndarray

import (
	"fmt"
	"iter"
)

// Array is a dense N-dimensional array of T.
//
// An Array pairs a shared Storage with a Layout. Reshape, Index and Select
// return views that reference the same Storage, so writes through a view are
// visible through every array sharing that Storage. Owning arrays and views
// behave identically through every method.
//
// Arrays are not safe for concurrent mutation.
//
// Example:
//
//	a, _ := ndarray.Arange[int32](12)
//	m, _ := a.Reshape(3, 4)
//	row, _ := m.Index(2) // [8 9 10 11], shares storage with a
type Array[T DType] struct {
	storage  *Storage[T]
	layout   Layout
	released bool
}

// newArray wraps storage and layout. The caller transfers one reference.
func newArray[T DType](s *Storage[T], l Layout) *Array[T] {
	return &Array[T]{storage: s, layout: l}
}

// view returns a new array sharing a's storage with a different layout.
func (a *Array[T]) view(l Layout) *Array[T] {
	return newArray(a.storage.retain(), l)
}

// Shape returns the array's shape.
func (a *Array[T]) Shape() Shape {
	return a.layout.Shape()
}

// NDim returns the number of axes.
func (a *Array[T]) NDim() int {
	return a.layout.Rank()
}

// Size returns the total number of elements described by the shape.
// It keeps reporting that count after Release; use At, Clone or the
// reductions to detect a released array, which fail with ErrReleased.
func (a *Array[T]) Size() int {
	return a.layout.NumElements()
}

// Strides returns the per-axis strides in elements.
func (a *Array[T]) Strides() []int {
	return a.layout.Strides()
}

// Offset returns the position of the first element inside the shared storage.
func (a *Array[T]) Offset() int {
	return a.layout.Offset()
}

// Layout returns the array's descriptor.
func (a *Array[T]) Layout() Layout {
	return a.layout.clone()
}

// DType returns the array's element type.
func (a *Array[T]) DType() DataType {
	return inferDataType[T]()
}

// IsContiguous reports whether elements are laid out row-major without gaps.
func (a *Array[T]) IsContiguous() bool {
	return a.layout.IsContiguous()
}

// IsView reports whether a shares its storage with another live array.
func (a *Array[T]) IsView() bool {
	return !a.storage.IsUnique()
}

// SharesStorage reports whether a and other reference the same storage.
func (a *Array[T]) SharesStorage(other *Array[T]) bool {
	return a.storage == other.storage
}

// Storage returns the shared buffer backing the array.
func (a *Array[T]) Storage() *Storage[T] {
	return a.storage
}

// Release drops this array's reference to its storage. The storage is freed
// when its last array is released. Using a released array fails with
// ErrReleased. Releasing twice is a no-op.
func (a *Array[T]) Release() {
	if a.released {
		return
	}
	a.released = true
	a.storage.release()
}

func (a *Array[T]) check() error {
	if a.released || a.storage.Released() {
		return ErrReleased
	}
	return nil
}

// At returns the element at the given indices, one per axis.
// Negative indices count from the end of their axis.
func (a *Array[T]) At(indices ...int) (T, error) {
	var zero T
	off, err := a.offsetOf(indices)
	if err != nil {
		return zero, err
	}
	return a.storage.data[off], nil
}

// Set stores value at the given indices, one per axis.
func (a *Array[T]) Set(value T, indices ...int) error {
	off, err := a.offsetOf(indices)
	if err != nil {
		return err
	}
	a.storage.data[off] = value
	return nil
}

// Ref returns a mutable reference to the element at the given indices.
func (a *Array[T]) Ref(indices ...int) (Ref[T], error) {
	off, err := a.offsetOf(indices)
	if err != nil {
		return Ref[T]{}, err
	}
	return Ref[T]{storage: a.storage, offset: off}, nil
}

// Item returns the only element of a single-element array.
func (a *Array[T]) Item() (T, error) {
	var zero T
	off, err := a.itemOffset()
	if err != nil {
		return zero, err
	}
	return a.storage.data[off], nil
}

// SetItem stores value into the only element of a single-element array.
func (a *Array[T]) SetItem(value T) error {
	off, err := a.itemOffset()
	if err != nil {
		return err
	}
	a.storage.data[off] = value
	return nil
}

func (a *Array[T]) offsetOf(indices []int) (int, error) {
	if err := a.check(); err != nil {
		return 0, err
	}
	return a.layout.Resolve(indices...)
}

func (a *Array[T]) itemOffset() (int, error) {
	if err := a.check(); err != nil {
		return 0, err
	}
	if a.Size() != 1 {
		return 0, fmt.Errorf("item requires a single-element array, got shape %v: %w",
			a.layout.shape, ErrShapeMismatch)
	}
	return a.layout.offset, nil
}

// Index fixes the leading axes to the given indices and returns a view of
// the remaining axes. Indexing every axis yields a rank-0 view of one element.
//
// Example:
//
//	m, _ := a.Reshape(3, 4)
//	row, _ := m.Index(-2) // second-to-last row, shape [4]
func (a *Array[T]) Index(indices ...int) (*Array[T], error) {
	if err := a.check(); err != nil {
		return nil, err
	}
	l, err := a.layout.Index(indices...)
	if err != nil {
		return nil, err
	}
	return a.view(l), nil
}

// Select applies one Selector per leading axis and returns a view.
// Slices keep their axis, Index selectors drop theirs.
//
// Example:
//
//	inner, _ := m.Select(ndarray.Range(1, -1), ndarray.Range(1, -1))
//	col, _ := m.Select(ndarray.Whole, ndarray.Index(0))
func (a *Array[T]) Select(selectors ...Selector) (*Array[T], error) {
	if err := a.check(); err != nil {
		return nil, err
	}
	l, err := a.layout.Select(selectors...)
	if err != nil {
		return nil, err
	}
	return a.view(l), nil
}

// Reshape returns a view with a new shape over the same elements.
// The element count must be unchanged and a must be contiguous.
func (a *Array[T]) Reshape(shape ...int) (*Array[T], error) {
	if err := a.check(); err != nil {
		return nil, err
	}
	l, err := a.layout.Reshape(Shape(shape))
	if err != nil {
		return nil, err
	}
	return a.view(l), nil
}

// Clone returns a contiguous owning copy of a.
func (a *Array[T]) Clone() (*Array[T], error) {
	if err := a.check(); err != nil {
		return nil, err
	}
	out := a.allocLike()
	i := 0
	for v := range a.Values() {
		out.storage.data[i] = v
		i++
	}
	return out, nil
}

// allocLike allocates a fresh owning array with a's shape.
func (a *Array[T]) allocLike() *Array[T] {
	return allocLike[T](a.layout)
}

func allocLike[T DType](l Layout) *Array[T] {
	if l.empty {
		return newArray(newStorage[T](0), emptyLayout())
	}
	return newArray(newStorage[T](l.NumElements()), NewLayout(l.shape))
}

// Values iterates over the elements in row-major logical order.
// Nothing is yielded for a released array, even though Size still reports
// the shape's count. Callers that must tell the two apart use Clone, which
// fails with ErrReleased.
func (a *Array[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		if a.check() != nil {
			return
		}
		it := newIndexer(a.layout)
		for it.next() {
			if !yield(a.storage.data[it.offset]) {
				return
			}
		}
	}
}

// All iterates over multi-indices and elements in row-major logical order.
// The yielded index slice is reused and must not be retained.
func (a *Array[T]) All() iter.Seq2[[]int, T] {
	return func(yield func([]int, T) bool) {
		if a.check() != nil {
			return
		}
		it := newIndexer(a.layout)
		for it.next() {
			if !yield(it.index(), a.storage.data[it.offset]) {
				return
			}
		}
	}
}

// ToSlice copies the elements into a new slice in row-major logical order.
// A released array yields an empty slice, as with Values.
func (a *Array[T]) ToSlice() []T {
	out := make([]T, 0, a.Size())
	for v := range a.Values() {
		out = append(out, v)
	}
	return out
}

// String returns a human-readable summary of the array.
func (a *Array[T]) String() string {
	return fmt.Sprintf("Array[%s]%v", a.DType(), a.layout.shape)
}

// Ref is a mutable reference to one element of a Storage.
// A Ref must not be used after the storage has been released.
type Ref[T DType] struct {
	storage *Storage[T]
	offset  int
}

// Get returns the referenced element.
func (r Ref[T]) Get() T {
	return r.storage.data[r.offset]
}

// Set overwrites the referenced element.
func (r Ref[T]) Set(value T) {
	r.storage.data[r.offset] = value
}
