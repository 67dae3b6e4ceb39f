package ndarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEqualEmpty(t *testing.T) {
	a := New[int32]()
	b := New[int32]()

	c, err := a.Equal(b)
	require.NoError(t, err)
	d, err := a.NotEqual(b)
	require.NoError(t, err)

	assert.Equal(t, 0, c.Size())
	assert.Equal(t, 0, d.Size())
}

func TestEqualSelf(t *testing.T) {
	a := mustArange[int32](t, 20, 4, 5)
	view, err := a.Select(Range(1, -1), Whole.WithStep(-2))
	require.NoError(t, err)

	for _, arr := range []*Array[int32]{a, view} {
		eq, err := arr.Equal(arr)
		require.NoError(t, err)
		assert.Equal(t, arr.Shape(), eq.Shape())
		assert.False(t, eq.IsView(), "comparison allocates a fresh result")

		ok, err := All(eq)
		require.NoError(t, err)
		assert.True(t, ok)

		ne, err := arr.NotEqual(arr)
		require.NoError(t, err)
		ok, err = Any(ne)
		require.NoError(t, err)
		assert.False(t, ok)
	}
}

func TestEqualShapeMismatch(t *testing.T) {
	a := mustArange[int32](t, 12, 3, 4)
	b := mustArange[int32](t, 12, 4, 3)

	_, err := a.Equal(b)
	require.ErrorIs(t, err, ErrShapeMismatch)
	_, err = a.NotEqual(New[int32]())
	require.ErrorIs(t, err, ErrShapeMismatch)

	assert.False(t, ArrayEqual(a, b))
}

func TestEqualViewAgainstOwning(t *testing.T) {
	a := mustArange[int32](t, 12, 3, 4)
	col, err := a.Select(Whole, Index(1))
	require.NoError(t, err)

	eq, err := col.Equal(New[int32](1, 5, 0))
	require.NoError(t, err)
	assert.Equal(t, []bool{true, true, false}, eq.ToSlice())

	ne, err := col.NotEqual(New[int32](1, 5, 0))
	require.NoError(t, err)
	assert.Equal(t, []bool{false, false, true}, ne.ToSlice())
}

func TestBoolOperators(t *testing.T) {
	a := mustArange[int32](t, 12, 3, 4)

	b, err := a.Index(2)
	require.NoError(t, err)
	assert.True(t, ArrayEqual(b, New[int32](8, 9, 10, 11)))

	c := New(false, false, true, false)
	ok, err := Any(c)
	require.NoError(t, err)
	assert.True(t, ok)

	c = New(false, false, false, false)
	ok, err = Any(c)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(true, 2))
	ok, err = Any(c)
	require.NoError(t, err)
	assert.True(t, ok)

	d, err := c.At(2)
	require.NoError(t, err)
	assert.True(t, d)
	d, err = c.At(0)
	require.NoError(t, err)
	assert.False(t, d)

	notC, err := Not(c)
	require.NoError(t, err)
	assert.False(t, notC.SharesStorage(c))
	assert.True(t, ArrayEqual(notC, New(true, true, false, true)))

	falses, err := Full[bool](Shape{4}, false)
	require.NoError(t, err)
	viaEqual, err := c.Equal(falses)
	require.NoError(t, err)
	assert.True(t, ArrayEqual(notC, viaEqual))
}

func TestNotView(t *testing.T) {
	m, err := FromSlice([]bool{true, false, true, true, false, false}, Shape{2, 3})
	require.NoError(t, err)
	col, err := m.Select(Whole, Index(1))
	require.NoError(t, err)

	n, err := Not(col)
	require.NoError(t, err)
	assert.Equal(t, Shape{2}, n.Shape())
	assert.Equal(t, []bool{true, true}, n.ToSlice())
	assert.True(t, n.IsContiguous())
}

func TestReduceRanks(t *testing.T) {
	tests := []struct {
		name    string
		shape   Shape
		trueAt  []int
		wantAny bool
		wantAll bool
	}{
		{"scalar false", Shape{}, nil, false, false},
		{"1d one true", Shape{5}, []int{3}, true, false},
		{"2d one true", Shape{3, 4}, []int{2, 3}, true, false},
		{"3d one true", Shape{2, 3, 4}, []int{1, 0, 2}, true, false},
		{"4d none", Shape{2, 2, 2, 2}, nil, false, false},
		{"5d one true", Shape{1, 2, 1, 2, 3}, []int{0, 1, 0, 1, 2}, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := Full[bool](tt.shape, false)
			require.NoError(t, err)
			if tt.trueAt != nil {
				require.NoError(t, a.Set(true, tt.trueAt...))
			}

			gotAny, err := Any(a)
			require.NoError(t, err)
			assert.Equal(t, tt.wantAny, gotAny)

			gotAll, err := All(a)
			require.NoError(t, err)
			assert.Equal(t, tt.wantAll, gotAll)

			inv, err := Not(a)
			require.NoError(t, err)
			gotAll, err = All(inv)
			require.NoError(t, err)
			assert.Equal(t, !tt.wantAny, gotAll)
		})
	}
}

func TestReduceEmpty(t *testing.T) {
	e := New[bool]()
	ok, err := Any(e)
	require.NoError(t, err)
	assert.False(t, ok)
	ok, err = All(e)
	require.NoError(t, err)
	assert.True(t, ok)

	zero, err := New(true, false).Select(Range(1, 1))
	require.NoError(t, err)
	ok, err = All(zero)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestReduceStridedView(t *testing.T) {
	m, err := Full[bool](Shape{4, 4}, false)
	require.NoError(t, err)
	require.NoError(t, m.Set(true, 1, 1))

	// every other row and column starting at 0 never touches (1, 1)
	even, err := m.Select(Whole.WithStep(2), Whole.WithStep(2))
	require.NoError(t, err)
	ok, err := Any(even)
	require.NoError(t, err)
	assert.False(t, ok)

	odd, err := m.Select(From(1).WithStep(2), From(1).WithStep(2))
	require.NoError(t, err)
	ok, err = Any(odd)
	require.NoError(t, err)
	assert.True(t, ok)
}
