package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroadcastShape(t *testing.T) {
	tests := []struct {
		name    string
		input   Shape
		output  Shape
		want    Shape
		trivial bool
		wantErr bool
	}{
		{"identity", Shape{3, 4}, Shape{3, 4}, Shape{3, 4}, true, false},
		{"unset adopts input", Shape{3, 4}, UninitializedShape(2), Shape{3, 4}, true, false},
		{"output one grows", Shape{3, 4}, Shape{3, 1}, Shape{3, 4}, false, false},
		{"input one broadcasts", Shape{3, 1}, Shape{3, 4}, Shape{3, 4}, false, false},
		{"lower rank input", Shape{4}, Shape{3, 4}, Shape{3, 4}, false, false},
		{"both one", Shape{1}, Shape{1}, Shape{1}, true, false},
		{"mismatch", Shape{3, 4}, Shape{3, 5}, nil, false, true},
		{"too many axes", Shape{2, 3, 4}, Shape{3, 4}, nil, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := tt.output.Clone()
			trivial, err := BroadcastShape(tt.input, out)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrShapeMismatch)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
			assert.Equal(t, tt.trivial, trivial)
		})
	}
}

func TestBroadcastIdempotence(t *testing.T) {
	for _, s := range []Shape{{}, {1}, {5}, {3, 4}, {2, 1, 3}, {0, 2}} {
		out := s.Clone()
		trivial, err := BroadcastShape(s, out)
		require.NoError(t, err)
		assert.True(t, trivial, "shape %v", s)
		assert.Equal(t, s, out)
	}
}

func TestBroadcastShapes(t *testing.T) {
	tests := []struct {
		a, b      Shape
		expected  Shape
		broadcast bool
		shouldErr bool
	}{
		{Shape{3, 1}, Shape{3, 5}, Shape{3, 5}, true, false},
		{Shape{1, 5}, Shape{3, 5}, Shape{3, 5}, true, false},
		{Shape{3, 4}, Shape{3, 4}, Shape{3, 4}, false, false},
		{Shape{1}, Shape{3, 4}, Shape{3, 4}, true, false},
		{Shape{3, 4}, Shape{1}, Shape{3, 4}, true, false},
		{Shape{3, 4}, Shape{3, 5}, nil, false, true},
		{Shape{2, 3}, Shape{3, 3}, nil, false, true},
	}

	for _, tt := range tests {
		got, broadcast, err := BroadcastShapes(tt.a, tt.b)
		if tt.shouldErr {
			assert.Error(t, err, "BroadcastShapes(%v, %v)", tt.a, tt.b)
			continue
		}
		require.NoError(t, err)
		assertEqualShape(t, tt.expected, got, "BroadcastShapes")
		assert.Equal(t, tt.broadcast, broadcast, "BroadcastShapes(%v, %v)", tt.a, tt.b)
	}
}

func TestBroadcastable(t *testing.T) {
	assert.True(t, Broadcastable(Shape{4}, Shape{3, 4}))
	assert.True(t, Broadcastable(Shape{3, 1}, Shape{3, 4}))
	assert.True(t, Broadcastable(Shape{}, Shape{3, 4}))
	assert.False(t, Broadcastable(Shape{3}, Shape{3, 4}))
	assert.False(t, Broadcastable(Shape{2, 3, 4}, Shape{3, 4}))
}

func TestBroadcastTo(t *testing.T) {
	row := MustFromSlice([]int32{1, 2, 3}, Shape{3}, RowMajor)
	b, err := BroadcastTo[int32](row, Shape{2, 3})
	require.NoError(t, err)

	assert.Equal(t, Shape{2, 3}, b.Shape())
	assert.Equal(t, 6, b.Size())
	assert.Equal(t, DynamicLayout, b.Layout())
	assert.Equal(t, []int32{1, 2, 3, 1, 2, 3}, ToSlice[int32](b, RowMajor))
	assert.Equal(t, []int32{1, 1, 2, 2, 3, 3}, ToSlice[int32](b, ColumnMajor))

	_, err = BroadcastTo[int32](row, Shape{2, 4})
	assert.ErrorIs(t, err, ErrShapeMismatch)
}
