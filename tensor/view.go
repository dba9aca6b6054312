// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/ndview/internal/tensor"
)

// Slice describes how one axis of a base expression is selected.
type Slice = tensor.Slice

// SliceKind identifies a slice variant.
type SliceKind = tensor.SliceKind

// Slice kinds.
const (
	SliceAll      SliceKind = tensor.SliceAll
	SliceRange    SliceKind = tensor.SliceRange
	SliceIndex    SliceKind = tensor.SliceIndex
	SliceNewAxis  SliceKind = tensor.SliceNewAxis
	SliceKeep     SliceKind = tensor.SliceKeep
	SliceDrop     SliceKind = tensor.SliceDrop
	SliceEllipsis SliceKind = tensor.SliceEllipsis
)

// Open marks an absent range bound.
const Open = tensor.Open

// View is a lazy reslicing of a base expression.
type View[T DType] = tensor.View[T]

// StridedView is a view described by data, offset, shape and strides.
type StridedView[T DType] = tensor.StridedView[T]

// All selects a whole axis.
func All() Slice { return tensor.All() }

// Range selects [start, stop) with step 1. Negative bounds count from the end.
func Range(start, stop int) Slice { return tensor.Range(start, stop) }

// StepRange selects [start, stop) with the given non-zero step.
//
// Example:
//
//	rev := tensor.StepRange(tensor.Open, tensor.Open, -1) // "::-1"
func StepRange(start, stop, step int) Slice { return tensor.StepRange(start, stop, step) }

// Index selects one position and removes the axis.
func Index(i int) Slice { return tensor.Index(i) }

// NewAxis inserts an extent-1 axis.
func NewAxis() Slice { return tensor.NewAxis() }

// Keep selects the listed positions in order.
func Keep(idx ...int) Slice { return tensor.Keep(idx...) }

// Drop selects every position except the listed ones.
func Drop(idx ...int) Slice { return tensor.Drop(idx...) }

// Ellipsis expands to as many All slices as the base rank leaves.
func Ellipsis() Slice { return tensor.Ellipsis() }

// ParseSlices parses a NumPy-style slice list such as "1:4, ::-1, newaxis".
func ParseSlices(src string) ([]Slice, error) {
	return tensor.ParseSlices(src)
}

// MustParseSlices is ParseSlices that panics on error.
func MustParseSlices(src string) []Slice {
	return tensor.MustParseSlices(src)
}

// NewView creates a view of base that borrows it.
//
// Example:
//
//	a := tensor.Arange[float64](12).MustReshape(3, 4)
//	v, err := tensor.NewView[float64](a, tensor.Index(1), tensor.Range(1, 4))
func NewView[T DType](base Expression[T], slices ...Slice) (*View[T], error) {
	return tensor.NewView(base, slices...)
}

// MustView is NewView that panics on error.
func MustView[T DType](base Expression[T], slices ...Slice) *View[T] {
	return tensor.MustView(base, slices...)
}

// NewOwnedView evaluates base into a private array and views it.
func NewOwnedView[T DType](base Expression[T], slices ...Slice) (*View[T], error) {
	return tensor.NewOwnedView(base, slices...)
}

// NewStridedView creates a strided view from a runtime slice list.
// Only affine slices are accepted.
func NewStridedView[T DType](base Expression[T], slices []Slice) (*StridedView[T], error) {
	return tensor.NewStridedView(base, slices)
}

// Transpose permutes the axes of base. With no perm the axes are reversed.
func Transpose[T DType](base Expression[T], perm ...int) (*StridedView[T], error) {
	return tensor.Transpose(base, perm...)
}

// ReshapeView presents a dense base under a new shape without copying.
func ReshapeView[T DType](base Expression[T], shape ...int) (*StridedView[T], error) {
	return tensor.ReshapeView(base, shape...)
}
