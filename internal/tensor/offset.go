package tensor

// Offset returns the flat offset of idx for strides.
//
// With as many indices as axes it is the dot product of idx and strides.
// Fewer indices are right-aligned (missing leading indices count as 0), and
// excess leading indices are dropped rather than rejected.
func Offset(strides Strides, idx ...int) int {
	if len(idx) > len(strides) {
		idx = idx[len(idx)-len(strides):]
	}
	tail := strides[len(strides)-len(idx):]
	off := 0
	for i, v := range idx {
		off += v * tail[i]
	}
	return off
}

// UncheckedOffset is the hot-loop offset variant: idx must have exactly one
// entry per axis, nothing is validated.
func UncheckedOffset(strides Strides, idx ...int) int {
	off := 0
	for i, v := range idx {
		off += v * strides[i]
	}
	return off
}

// ElementOffset is Offset for a caller-built index sequence.
func ElementOffset(strides Strides, idx []int) int {
	return Offset(strides, idx...)
}

// Ravel is ElementOffset under its conventional name.
func Ravel(idx []int, strides Strides) int {
	return Offset(strides, idx...)
}

// RavelIndex computes the flat index of idx in a dense array of shape.
func RavelIndex(idx []int, shape Shape, layout Layout) int {
	strides, _, _ := ComputeStrides(shape, layout)
	return Ravel(idx, strides)
}

// Unravel converts a flat index back to a multi-index by repeated division
// against strides in traversal order. Zero strides (broadcast axes) yield 0.
func Unravel(flat int, strides Strides, layout Layout) ([]int, error) {
	if !layout.Static() {
		return nil, shapeError("unravel", ErrUnsupportedLayout, nil, nil,
			"layout %s must be resolved to row- or column-major first", layout)
	}
	return unravel(flat, strides, layout), nil
}

func unravel(flat int, strides Strides, layout Layout) []int {
	idx := make([]int, len(strides))
	step := func(i int) {
		if s := strides[i]; s != 0 {
			idx[i] = flat / s
			flat %= s
		}
	}
	if layout == RowMajor {
		for i := 0; i < len(strides); i++ {
			step(i)
		}
	} else {
		for i := len(strides) - 1; i >= 0; i-- {
			step(i)
		}
	}
	return idx
}

// UnravelIndex converts a flat index into a multi-index of a dense array of shape.
func UnravelIndex(flat int, shape Shape, layout Layout) ([]int, error) {
	strides, _, _ := ComputeStrides(shape, layout)
	return Unravel(flat, strides, layout)
}

// InBounds reports whether idx addresses an element of shape. Indices are
// aligned like Offset: excess leading entries are ignored.
func InBounds(shape Shape, idx ...int) bool {
	if len(idx) > len(shape) {
		idx = idx[len(idx)-len(shape):]
	}
	tail := shape[len(shape)-len(idx):]
	for i, v := range idx {
		if v < 0 || v >= tail[i] {
			return false
		}
	}
	return true
}

// checkIndex validates a full-rank index for the checked accessors.
func checkIndex(op string, shape Shape, idx []int) error {
	if len(idx) != len(shape) {
		return shapeError(op, ErrDimensionMismatch, idx, shape,
			"expected %d indices, got %d", len(shape), len(idx))
	}
	for i, v := range idx {
		if v < 0 || v >= shape[i] {
			return shapeError(op, ErrIndexOutOfRange, idx, shape,
				"index %d out of bounds for axis %d (size %d)", v, i, shape[i])
		}
	}
	return nil
}
