package ndarray

// Storage is a reference-counted, fixed-size element buffer shared by an
// owning array and all of its views.
//
// Storage never grows or shrinks. Element writes through any array that
// shares a Storage are visible through all of them. There is no internal
// locking: concurrent mutation from several goroutines must be synchronized
// by the caller.
type Storage[T DType] struct {
	data     []T
	refCount int
}

// newStorage allocates n zero-valued elements with refCount = 1.
func newStorage[T DType](n int) *Storage[T] {
	return &Storage[T]{
		data:     make([]T, n),
		refCount: 1,
	}
}

// retain increments the reference count (for views).
func (s *Storage[T]) retain() *Storage[T] {
	s.refCount++
	return s
}

// release decrements the reference count and frees the buffer when it reaches 0.
// Releasing an already freed Storage is a no-op.
func (s *Storage[T]) release() {
	if s.refCount == 0 {
		return
	}
	s.refCount--
	if s.refCount == 0 {
		s.data = nil
	}
}

// Len returns the number of elements the Storage was allocated with,
// or 0 once it has been freed.
func (s *Storage[T]) Len() int {
	return len(s.data)
}

// RefCount returns the number of live arrays referencing this Storage.
func (s *Storage[T]) RefCount() int {
	return s.refCount
}

// IsUnique returns true if exactly one array references this Storage.
func (s *Storage[T]) IsUnique() bool {
	return s.refCount == 1
}

// Released reports whether the buffer has been freed.
func (s *Storage[T]) Released() bool {
	return s.refCount == 0
}
