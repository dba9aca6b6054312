// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/ndview/internal/tensor"
)

// Type aliases for public API

// DType is a constraint for array element types.
// Supported types: float32, float64, int32, int64, uint8, bool.
type DType = tensor.DType

// Numeric is the subset of DType that supports arithmetic.
type Numeric = tensor.Numeric

// DataType represents the runtime element type of an array.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
	Uint8   DataType = tensor.Uint8
	Bool    DataType = tensor.Bool
)

// Shape represents the extents of an array.
// Example: Shape{2, 3, 4} represents a 3D array with dimensions 2×3×4.
type Shape = tensor.Shape

// Strides holds the per-axis element step in a flat buffer.
type Strides = tensor.Strides

// Layout is the memory traversal order of an array.
type Layout = tensor.Layout

// Layout constants.
const (
	RowMajor      Layout = tensor.RowMajor
	ColumnMajor   Layout = tensor.ColumnMajor
	DynamicLayout Layout = tensor.DynamicLayout
)

// Traversal is the access strategy an expression supports.
type Traversal = tensor.Traversal

// Traversal constants.
const (
	TraversalLinear  Traversal = tensor.TraversalLinear
	TraversalStrided Traversal = tensor.TraversalStrided
	TraversalGeneric Traversal = tensor.TraversalGeneric
)

// Expression is anything that can be traversed with a stepper.
type Expression[T DType] = tensor.Expression[T]

// Writable is an expression whose elements can be assigned.
type Writable[T DType] = tensor.Writable[T]

// Resizable is a writable container that may adopt a new shape on assignment.
type Resizable[T DType] = tensor.Resizable[T]

// StridedExpression exposes its buffer through a data/offset/strides triple.
type StridedExpression[T DType] = tensor.StridedExpression[T]

// Indexable provides random access by multi-index.
type Indexable[T DType] = tensor.Indexable[T]

// Stepper is a cursor moving one axis step at a time.
type Stepper[T DType] = tensor.Stepper[T]

// WritableStepper is a stepper that can store through its position.
type WritableStepper[T DType] = tensor.WritableStepper[T]

// Array is an n-dimensional container over a flat buffer.
type Array[T DType] = tensor.Array[T]

// ScalarExpr is a rank-0 expression broadcasting one value.
type ScalarExpr[T DType] = tensor.ScalarExpr[T]

// Broadcast presents an expression under a larger broadcast shape.
type Broadcast[T DType] = tensor.Broadcast[T]

// Function is a lazy element-wise expression over broadcast arguments.
type Function[T DType] = tensor.Function[T]

// ShapeError provides detailed information about shape and index failures.
type ShapeError = tensor.ShapeError

// Common errors.
var (
	ErrShapeMismatch       = tensor.ErrShapeMismatch
	ErrIndexOutOfRange     = tensor.ErrIndexOutOfRange
	ErrDimensionMismatch   = tensor.ErrDimensionMismatch
	ErrUnsupportedLayout   = tensor.ErrUnsupportedLayout
	ErrInvalidReshape      = tensor.ErrInvalidReshape
	ErrInvalidSlice        = tensor.ErrInvalidSlice
	ErrStrategyUnavailable = tensor.ErrStrategyUnavailable
	ErrReadOnly            = tensor.ErrReadOnly
)

// DataTypeOf returns the runtime tag of T.
func DataTypeOf[T DType]() DataType {
	return tensor.DataTypeOf[T]()
}

// Creation functions

// NewArray creates a zero-filled array in the given layout.
func NewArray[T DType](shape Shape, layout Layout) (*Array[T], error) {
	return tensor.NewArray[T](shape, layout)
}

// Zeros creates a row-major array filled with zeros.
//
// Example:
//
//	x := tensor.Zeros[float32](tensor.Shape{2, 3})
func Zeros[T DType](shape Shape) *Array[T] {
	return tensor.Zeros[T](shape)
}

// Full creates a row-major array filled with value.
//
// Example:
//
//	x := tensor.Full[float32](tensor.Shape{2, 3}, 3.14)
func Full[T DType](shape Shape, value T) *Array[T] {
	return tensor.Full(shape, value)
}

// FromSlice creates an array from a copy of data, laid out in layout.
//
// Example:
//
//	data := []float32{1, 2, 3, 4, 5, 6}
//	x, err := tensor.FromSlice(data, tensor.Shape{2, 3}, tensor.RowMajor)
func FromSlice[T DType](data []T, shape Shape, layout Layout) (*Array[T], error) {
	return tensor.FromSlice(data, shape, layout)
}

// MustFromSlice is FromSlice that panics on error.
func MustFromSlice[T DType](data []T, shape Shape, layout Layout) *Array[T] {
	return tensor.MustFromSlice(data, shape, layout)
}

// Arange creates a 1D array holding 0, 1, ..., n-1.
//
// Example:
//
//	x := tensor.Arange[float32](10).MustReshape(2, 5)
func Arange[T Numeric](n int) *Array[T] {
	return tensor.Arange[T](n)
}

// Adapt wraps a caller-owned buffer as an array without copying.
func Adapt[T DType](data []T, shape Shape, layout Layout) (*Array[T], error) {
	return tensor.Adapt(data, shape, layout)
}

// AdaptStrided wraps a caller-owned buffer with explicit strides.
func AdaptStrided[T DType](data []T, shape Shape, strides Strides) (*Array[T], error) {
	return tensor.AdaptStrided(data, shape, strides)
}

// Scalar returns a rank-0 expression holding v.
func Scalar[T DType](v T) *ScalarExpr[T] {
	return tensor.Scalar(v)
}

// BroadcastTo presents e under shape without copying.
func BroadcastTo[T DType](e Expression[T], shape Shape) (*Broadcast[T], error) {
	return tensor.BroadcastTo(e, shape)
}

// Utility functions

// ComputeStrides returns the strides, backstrides and element count of shape
// laid out in layout.
func ComputeStrides(shape Shape, layout Layout) (Strides, Strides, int) {
	return tensor.ComputeStrides(shape, layout)
}

// Offset returns the flat offset of idx, aligned to the trailing axes.
func Offset(strides Strides, idx ...int) int {
	return tensor.Offset(strides, idx...)
}

// UnravelIndex converts a flat position into a multi-index.
func UnravelIndex(flat int, shape Shape, layout Layout) ([]int, error) {
	return tensor.UnravelIndex(flat, shape, layout)
}

// RavelIndex converts a multi-index into a flat position.
func RavelIndex(idx []int, shape Shape, layout Layout) int {
	return tensor.RavelIndex(idx, shape, layout)
}

// BroadcastShapes computes the broadcast shape for two shapes following NumPy broadcasting rules.
// Returns the resulting shape and a flag indicating if broadcasting is needed.
//
// Example:
//
//	resultShape, needsBroadcast, err := tensor.BroadcastShapes(
//	    tensor.Shape{3, 1},
//	    tensor.Shape{3, 4},
//	)
//	// resultShape = [3, 4], needsBroadcast = true
func BroadcastShapes(a, b Shape) (Shape, bool, error) {
	return tensor.BroadcastShapes(a, b)
}

// Broadcastable reports whether src can be broadcast to dst.
func Broadcastable(src, dst Shape) bool {
	return tensor.Broadcastable(src, dst)
}
