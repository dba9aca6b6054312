package tensor

import (
	"fmt"
	"math"
	"strings"
)

// Shape represents the extents of an array, one per axis.
// A shape of rank 0 describes a scalar.
type Shape []int

// unsetExtent marks an axis that has not been through broadcasting yet.
const unsetExtent = math.MaxInt

// Rank returns the number of axes.
func (s Shape) Rank() int {
	return len(s)
}

// NumElements returns the total number of elements.
// Empty axes yield 0, a scalar has 1 element.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks if the shape is valid (all extents >= 0).
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim < 0 {
			return fmt.Errorf("invalid extent at axis %d: %d (must be >= 0)", i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// String formats the shape as (d0, d1, ...).
func (s Shape) String() string {
	parts := make([]string, len(s))
	for i, d := range s {
		if d == unsetExtent {
			parts[i] = "?"
			continue
		}
		parts[i] = fmt.Sprintf("%d", d)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// Strides holds the signed per-axis element offsets of an array.
type Strides []int

// Clone returns a copy of the strides.
func (s Strides) Clone() Strides {
	if s == nil {
		return nil
	}
	clone := make(Strides, len(s))
	copy(clone, s)
	return clone
}

// Equal checks if two stride vectors are equal.
func (s Strides) Equal(other Strides) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Layout is the memory traversal order of an array.
type Layout int

// Supported layouts.
const (
	RowMajor Layout = iota
	ColumnMajor
	// DynamicLayout means the order must be inspected at run time,
	// e.g. after transposition or explicit strides.
	DynamicLayout
)

// String returns a human-readable layout name.
func (l Layout) String() string {
	switch l {
	case RowMajor:
		return "row-major"
	case ColumnMajor:
		return "column-major"
	case DynamicLayout:
		return "dynamic"
	default:
		return "unknown"
	}
}

// Static reports whether l is a concrete traversal order.
func (l Layout) Static() bool {
	return l == RowMajor || l == ColumnMajor
}

// ComputeStrides calculates strides and backstrides of shape for the given
// layout and returns them with the element count.
//
// Row-major strides are computed right to left (last axis has stride 1),
// column-major left to right. Any axis of extent 1 gets stride 0 so it can be
// broadcast. DynamicLayout is computed as row-major.
func ComputeStrides(shape Shape, layout Layout) (Strides, Strides, int) {
	strides := make(Strides, len(shape))
	backstrides := make(Strides, len(shape))
	size := 1

	if layout == ColumnMajor {
		for i := 0; i < len(shape); i++ {
			strides[i] = size
			size *= shape[i]
			adaptStride(shape, strides, backstrides, i)
		}
		return strides, backstrides, size
	}

	for i := len(shape) - 1; i >= 0; i-- {
		strides[i] = size
		size *= shape[i]
		adaptStride(shape, strides, backstrides, i)
	}
	return strides, backstrides, size
}

// AdaptStrides normalizes strides of extent-1 axes to 0 in place and returns
// the matching backstrides.
func AdaptStrides(shape Shape, strides Strides) Strides {
	backstrides := make(Strides, len(shape))
	for i := range shape {
		adaptStride(shape, strides, backstrides, i)
	}
	return backstrides
}

func adaptStride(shape Shape, strides, backstrides Strides, i int) {
	if shape[i] == 1 {
		strides[i] = 0
	}
	if shape[i] > 0 {
		backstrides[i] = strides[i] * (shape[i] - 1)
	} else {
		backstrides[i] = 0
	}
}

// StridesMatch reports whether strides describe a dense array of shape in the
// given layout. With zeroStrides, extent-1 axes may carry stride 0.
func StridesMatch(shape Shape, strides Strides, layout Layout, zeroStrides bool) bool {
	if len(shape) != len(strides) {
		return false
	}
	match := func(stride, extent, size int) bool {
		return (extent == 1 && stride == 0 && zeroStrides) || stride == size
	}

	size := 1
	switch layout {
	case RowMajor:
		for i := len(strides) - 1; i >= 0; i-- {
			if !match(strides[i], shape[i], size) {
				return false
			}
			size *= shape[i]
		}
		return true
	case ColumnMajor:
		for i := 0; i < len(strides); i++ {
			if !match(strides[i], shape[i], size) {
				return false
			}
			size *= shape[i]
		}
		return true
	default:
		return false
	}
}

// ContiguousLayout returns the static layout that strides are dense in, or
// DynamicLayout when they are dense in neither order.
func ContiguousLayout(shape Shape, strides Strides) Layout {
	switch {
	case StridesMatch(shape, strides, RowMajor, true):
		return RowMajor
	case StridesMatch(shape, strides, ColumnMajor, true):
		return ColumnMajor
	default:
		return DynamicLayout
	}
}
