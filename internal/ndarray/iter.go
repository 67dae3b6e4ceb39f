package ndarray

// indexer walks a Layout in row-major logical order. It keeps one counter
// per axis and carries into the next slower axis when a counter wraps, so
// views with arbitrary strides are visited without materializing them.
type indexer struct {
	layout  Layout
	idx     []int
	offset  int
	started bool
	done    bool
}

func newIndexer(l Layout) *indexer {
	return &indexer{
		layout: l,
		idx:    make([]int, l.Rank()),
		offset: l.offset,
		done:   l.NumElements() == 0,
	}
}

// next advances to the following element and reports whether one exists.
func (it *indexer) next() bool {
	if it.done {
		return false
	}
	if !it.started {
		it.started = true
		return true
	}
	shape, strides := it.layout.shape, it.layout.strides
	for k := len(it.idx) - 1; k >= 0; k-- {
		it.idx[k]++
		it.offset += strides[k]
		if it.idx[k] < shape[k] {
			return true
		}
		it.offset -= it.idx[k] * strides[k]
		it.idx[k] = 0
	}
	it.done = true
	return false
}

// index returns the current multi-index. The slice is reused between calls.
func (it *indexer) index() []int {
	return it.idx
}
