package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOffset(t *testing.T) {
	strides := Strides{12, 4, 1}

	assert.Equal(t, 0, Offset(strides))
	assert.Equal(t, 1*12+2*4+3, Offset(strides, 1, 2, 3))
	// Fewer indices are right-aligned.
	assert.Equal(t, 2*4+3, Offset(strides, 2, 3))
	assert.Equal(t, 3, Offset(strides, 3))
	// Excess leading indices are dropped.
	assert.Equal(t, 1*12+2*4+3, Offset(strides, 9, 9, 1, 2, 3))
}

func TestUncheckedOffset(t *testing.T) {
	assert.Equal(t, 23, UncheckedOffset(Strides{12, 4, 1}, 1, 2, 3))
	assert.Equal(t, 23, ElementOffset(Strides{12, 4, 1}, []int{1, 2, 3}))
	assert.Equal(t, 23, Ravel([]int{1, 2, 3}, Strides{12, 4, 1}))
}

func TestRavelIndex(t *testing.T) {
	assert.Equal(t, 6, RavelIndex([]int{1, 2}, Shape{3, 4}, RowMajor))
	assert.Equal(t, 7, RavelIndex([]int{1, 2}, Shape{3, 4}, ColumnMajor))
}

func TestUnravel(t *testing.T) {
	idx, err := Unravel(23, Strides{12, 4, 1}, RowMajor)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, idx)

	idx, err = UnravelIndex(7, Shape{3, 4}, ColumnMajor)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, idx)

	// Broadcast axes unravel to 0.
	idx, err = Unravel(5, Strides{4, 0, 1}, RowMajor)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0, 1}, idx)
}

func TestUnravelDynamicLayout(t *testing.T) {
	_, err := Unravel(3, Strides{4, 1}, DynamicLayout)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedLayout)

	var se *ShapeError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "unravel", se.Op)
}

func TestStrideRoundTrip(t *testing.T) {
	shapes := []Shape{{5}, {3, 4}, {2, 3, 4}, {3, 1, 4}, {2, 2, 1, 3}}
	for _, shape := range shapes {
		for _, layout := range []Layout{RowMajor, ColumnMajor} {
			strides, _, _ := ComputeStrides(shape, layout)
			for flat := 0; flat < shape.NumElements(); flat++ {
				idx, err := UnravelIndex(flat, shape, layout)
				require.NoError(t, err)
				assert.Equal(t, flat, Ravel(idx, strides), "shape %v %s", shape, layout)

				back, err := Unravel(Ravel(idx, strides), strides, layout)
				require.NoError(t, err)
				assert.Equal(t, idx, back, "shape %v %s", shape, layout)
			}
		}
	}
}

func TestInBounds(t *testing.T) {
	shape := Shape{3, 4}
	assert.True(t, InBounds(shape, 2, 3))
	assert.True(t, InBounds(shape, 3))
	assert.False(t, InBounds(shape, 3, 0))
	assert.False(t, InBounds(shape, 0, -1))
	assert.True(t, InBounds(shape, 7, 1, 1))
}

func TestCheckIndex(t *testing.T) {
	shape := Shape{3, 4}
	assert.NoError(t, checkIndex("at", shape, []int{2, 3}))
	assert.ErrorIs(t, checkIndex("at", shape, []int{2}), ErrDimensionMismatch)
	assert.ErrorIs(t, checkIndex("at", shape, []int{1, 2, 3}), ErrDimensionMismatch)
	assert.ErrorIs(t, checkIndex("at", shape, []int{3, 0}), ErrIndexOutOfRange)
	assert.ErrorIs(t, checkIndex("at", shape, []int{0, -1}), ErrIndexOutOfRange)
}
