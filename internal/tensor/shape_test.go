package tensor

import (
	"testing"
)

func assertEqualShape(t *testing.T, expected, actual Shape, msg string) {
	t.Helper()
	if !expected.Equal(actual) {
		t.Errorf("%s: expected shape %v, got %v", msg, expected, actual)
	}
}

func TestDataTypeSize(t *testing.T) {
	tests := []struct {
		dtype DataType
		size  int
	}{
		{Float32, 4},
		{Float64, 8},
		{Int32, 4},
		{Int64, 8},
		{Uint8, 1},
		{Bool, 1},
	}

	for _, tt := range tests {
		if got := tt.dtype.Size(); got != tt.size {
			t.Errorf("%s.Size() = %d, want %d", tt.dtype, got, tt.size)
		}
	}
}

func TestDataTypeOf(t *testing.T) {
	if dt := DataTypeOf[float32](); dt != Float32 {
		t.Errorf("DataTypeOf[float32]() = %v, want float32", dt)
	}
	if dt := DataTypeOf[float64](); dt != Float64 {
		t.Errorf("DataTypeOf[float64]() = %v, want float64", dt)
	}
	if dt := DataTypeOf[int64](); dt != Int64 {
		t.Errorf("DataTypeOf[int64]() = %v, want int64", dt)
	}
	if dt := DataTypeOf[bool](); dt != Bool {
		t.Errorf("DataTypeOf[bool]() = %v, want bool", dt)
	}
}

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		shape    Shape
		expected int
	}{
		{Shape{}, 1},         // Scalar
		{Shape{5}, 5},        // 1D
		{Shape{3, 4}, 12},    // 2D
		{Shape{2, 3, 4}, 24}, // 3D
		{Shape{1, 1, 1}, 1},  // Ones
		{Shape{3, 0, 2}, 0},  // Empty axis
	}

	for _, tt := range tests {
		if got := tt.shape.NumElements(); got != tt.expected {
			t.Errorf("Shape%v.NumElements() = %d, want %d", tt.shape, got, tt.expected)
		}
	}
}

func TestShapeValidation(t *testing.T) {
	for _, s := range []Shape{{}, {0}, {1}, {3, 0}, {2, 3, 4}} {
		if err := s.Validate(); err != nil {
			t.Errorf("Shape%v.Validate() failed: %v", s, err)
		}
	}
	for _, s := range []Shape{{-1}, {3, -4}} {
		if err := s.Validate(); err == nil {
			t.Errorf("Shape%v.Validate() should fail but didn't", s)
		}
	}
}

func TestShapeEqual(t *testing.T) {
	tests := []struct {
		a, b  Shape
		equal bool
	}{
		{Shape{3, 4}, Shape{3, 4}, true},
		{Shape{3, 4}, Shape{4, 3}, false},
		{Shape{3}, Shape{3, 1}, false},
		{Shape{}, Shape{}, true},
	}

	for _, tt := range tests {
		if got := tt.a.Equal(tt.b); got != tt.equal {
			t.Errorf("Shape%v.Equal(%v) = %v, want %v", tt.a, tt.b, got, tt.equal)
		}
	}
}

func TestShapeString(t *testing.T) {
	if got := (Shape{3, 4}).String(); got != "(3, 4)" {
		t.Errorf("String() = %q", got)
	}
	if got := UninitializedShape(2).String(); got != "(?, ?)" {
		t.Errorf("String() = %q", got)
	}
}

func TestComputeStrides(t *testing.T) {
	tests := []struct {
		shape       Shape
		layout      Layout
		strides     Strides
		backstrides Strides
		size        int
	}{
		{Shape{4}, RowMajor, Strides{1}, Strides{3}, 4},
		{Shape{3, 4}, RowMajor, Strides{4, 1}, Strides{8, 3}, 12},
		{Shape{2, 3, 4}, RowMajor, Strides{12, 4, 1}, Strides{12, 8, 3}, 24},
		{Shape{2, 3, 4}, ColumnMajor, Strides{1, 2, 6}, Strides{1, 4, 18}, 24},
		{Shape{3, 1, 4}, RowMajor, Strides{4, 0, 1}, Strides{8, 0, 3}, 12},
		{Shape{3, 1, 4}, ColumnMajor, Strides{1, 0, 3}, Strides{2, 0, 9}, 12},
		{Shape{2, 0}, RowMajor, Strides{0, 1}, Strides{0, 0}, 0},
		{Shape{}, RowMajor, Strides{}, Strides{}, 1},
		{Shape{3, 4}, DynamicLayout, Strides{4, 1}, Strides{8, 3}, 12},
	}

	for _, tt := range tests {
		strides, backstrides, size := ComputeStrides(tt.shape, tt.layout)
		if !strides.Equal(tt.strides) {
			t.Errorf("ComputeStrides(%v, %s) strides = %v, want %v", tt.shape, tt.layout, strides, tt.strides)
		}
		if !backstrides.Equal(tt.backstrides) {
			t.Errorf("ComputeStrides(%v, %s) backstrides = %v, want %v", tt.shape, tt.layout, backstrides, tt.backstrides)
		}
		if size != tt.size {
			t.Errorf("ComputeStrides(%v, %s) size = %d, want %d", tt.shape, tt.layout, size, tt.size)
		}
	}
}

func TestAdaptStrides(t *testing.T) {
	strides := Strides{8, 4, 1}
	backstrides := AdaptStrides(Shape{2, 1, 3}, strides)
	if !strides.Equal(Strides{8, 0, 1}) {
		t.Errorf("strides = %v, want [8 0 1]", strides)
	}
	if !backstrides.Equal(Strides{8, 0, 2}) {
		t.Errorf("backstrides = %v, want [8 0 2]", backstrides)
	}
}

func TestStridesMatch(t *testing.T) {
	tests := []struct {
		shape   Shape
		strides Strides
		layout  Layout
		zero    bool
		match   bool
	}{
		{Shape{3, 4}, Strides{4, 1}, RowMajor, false, true},
		{Shape{3, 4}, Strides{1, 3}, ColumnMajor, false, true},
		{Shape{3, 4}, Strides{1, 3}, RowMajor, false, false},
		{Shape{3, 1}, Strides{1, 0}, RowMajor, true, true},
		{Shape{3, 1}, Strides{1, 0}, RowMajor, false, false},
		{Shape{3, 4}, Strides{8, 2}, RowMajor, true, false},
		{Shape{3, 4}, Strides{4, 1}, DynamicLayout, true, false},
	}

	for _, tt := range tests {
		if got := StridesMatch(tt.shape, tt.strides, tt.layout, tt.zero); got != tt.match {
			t.Errorf("StridesMatch(%v, %v, %s, %v) = %v, want %v",
				tt.shape, tt.strides, tt.layout, tt.zero, got, tt.match)
		}
	}
}

func TestContiguousLayout(t *testing.T) {
	if l := ContiguousLayout(Shape{3, 4}, Strides{4, 1}); l != RowMajor {
		t.Errorf("ContiguousLayout = %s, want row-major", l)
	}
	if l := ContiguousLayout(Shape{3, 4}, Strides{1, 3}); l != ColumnMajor {
		t.Errorf("ContiguousLayout = %s, want column-major", l)
	}
	if l := ContiguousLayout(Shape{3, 4}, Strides{8, 2}); l != DynamicLayout {
		t.Errorf("ContiguousLayout = %s, want dynamic", l)
	}
}
