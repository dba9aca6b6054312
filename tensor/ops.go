// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"iter"

	"github.com/born-ml/ndview/internal/tensor"
)

// Element-wise functions

// Map applies f lazily to every element of e.
func Map[T DType](f func(T) T, e Expression[T]) *Function[T] {
	return tensor.Map(f, e)
}

// Zip applies f lazily to the broadcast element pairs of a and b.
func Zip[T DType](f func(T, T) T, a, b Expression[T]) (*Function[T], error) {
	return tensor.Zip(f, a, b)
}

// Add returns the lazy element-wise sum a + b.
func Add[T Numeric](a, b Expression[T]) (*Function[T], error) { return tensor.Add(a, b) }

// Sub returns the lazy element-wise difference a - b.
func Sub[T Numeric](a, b Expression[T]) (*Function[T], error) { return tensor.Sub(a, b) }

// Mul returns the lazy element-wise product a * b.
func Mul[T Numeric](a, b Expression[T]) (*Function[T], error) { return tensor.Mul(a, b) }

// Div returns the lazy element-wise quotient a / b.
func Div[T Numeric](a, b Expression[T]) (*Function[T], error) { return tensor.Div(a, b) }

// Neg returns the lazy element-wise negation -e.
func Neg[T Numeric](e Expression[T]) *Function[T] { return tensor.Neg(e) }

// Assignment

// Strategy selects the copy algorithm used by assignment.
type Strategy = tensor.Strategy

// Strategy constants.
const (
	StrategyAuto    Strategy = tensor.StrategyAuto
	StrategyLinear  Strategy = tensor.StrategyLinear
	StrategyStrided Strategy = tensor.StrategyStrided
	StrategyStepper Strategy = tensor.StrategyStepper
)

// AssignConfig controls an assignment.
type AssignConfig = tensor.AssignConfig

// DefaultAssignConfig returns the automatic, no-alias configuration.
func DefaultAssignConfig() AssignConfig {
	return tensor.DefaultAssignConfig()
}

// Assign copies src into dst, broadcasting src or resizing a container dst.
// src and dst must not overlap; see AssignAliasSafe.
//
// Example:
//
//	dst := tensor.Zeros[float64](tensor.Shape{2, 3})
//	err := tensor.Assign[float64](dst, tensor.Arange[float64](3))
func Assign[T DType](dst Writable[T], src Expression[T]) error {
	return tensor.Assign(dst, src)
}

// AssignAliasSafe is Assign through a temporary, safe when src reads dst.
func AssignAliasSafe[T DType](dst Writable[T], src Expression[T]) error {
	return tensor.AssignAliasSafe(dst, src)
}

// AssignWith is Assign with an explicit configuration.
func AssignWith[T DType](dst Writable[T], src Expression[T], cfg AssignConfig) error {
	return tensor.AssignWith(dst, src, cfg)
}

// SelectStrategy reports the strategy Assign would use.
func SelectStrategy[T DType](dst Writable[T], src Expression[T]) Strategy {
	return tensor.SelectStrategy(dst, src)
}

// Fill sets every element of dst to v.
func Fill[T DType](dst Writable[T], v T) error { return tensor.Fill(dst, v) }

// CompoundOp is an operator for CompoundAssignWith.
type CompoundOp = tensor.CompoundOp

// Compound assignment operators.
const (
	OpAdd CompoundOp = tensor.OpAdd
	OpSub CompoundOp = tensor.OpSub
	OpMul CompoundOp = tensor.OpMul
	OpDiv CompoundOp = tensor.OpDiv
)

// CompoundAssignWith computes dst = dst op src as configured. Set
// cfg.AliasSafe when src reads dst at other positions.
func CompoundAssignWith[T Numeric](dst Writable[T], src Expression[T], op CompoundOp, cfg AssignConfig) error {
	return tensor.CompoundAssignWith(dst, src, op, cfg)
}

// AddAssign computes dst += src.
func AddAssign[T Numeric](dst Writable[T], src Expression[T]) error {
	return tensor.AddAssign(dst, src)
}

// SubAssign computes dst -= src.
func SubAssign[T Numeric](dst Writable[T], src Expression[T]) error {
	return tensor.SubAssign(dst, src)
}

// MulAssign computes dst *= src.
func MulAssign[T Numeric](dst Writable[T], src Expression[T]) error {
	return tensor.MulAssign(dst, src)
}

// DivAssign computes dst /= src.
func DivAssign[T Numeric](dst Writable[T], src Expression[T]) error {
	return tensor.DivAssign(dst, src)
}

// AddScalar computes dst += v.
func AddScalar[T Numeric](dst Writable[T], v T) error { return tensor.AddScalar(dst, v) }

// SubScalar computes dst -= v.
func SubScalar[T Numeric](dst Writable[T], v T) error { return tensor.SubScalar(dst, v) }

// MulScalar computes dst *= v.
func MulScalar[T Numeric](dst Writable[T], v T) error { return tensor.MulScalar(dst, v) }

// DivScalar computes dst /= v.
func DivScalar[T Numeric](dst Writable[T], v T) error { return tensor.DivScalar(dst, v) }

// Evaluation and traversal

// Iterator walks an expression in row- or column-major order.
type Iterator[T DType] = tensor.Iterator[T]

// ReverseIterator walks an expression from its last element backwards.
type ReverseIterator[T DType] = tensor.ReverseIterator[T]

// Begin returns an iterator at the first element of e.
func Begin[T DType](e Expression[T], layout Layout) *Iterator[T] { return tensor.Begin(e, layout) }

// End returns an iterator one past the last element of e.
func End[T DType](e Expression[T], layout Layout) *Iterator[T] { return tensor.End(e, layout) }

// BeginWritable returns an iterator that can store through its position.
func BeginWritable[T DType](e Writable[T], layout Layout) *Iterator[T] {
	return tensor.BeginWritable(e, layout)
}

// RBegin returns a reverse iterator at the last element of e.
func RBegin[T DType](e Expression[T], layout Layout) *ReverseIterator[T] {
	return tensor.RBegin(e, layout)
}

// REnd returns a reverse iterator one before the first element of e.
func REnd[T DType](e Expression[T], layout Layout) *ReverseIterator[T] {
	return tensor.REnd(e, layout)
}

// Elements yields every index and element of e in layout order.
//
// Example:
//
//	for idx, v := range tensor.Elements[float64](a, tensor.RowMajor) {
//	    fmt.Println(idx, v)
//	}
func Elements[T DType](e Expression[T], layout Layout) iter.Seq2[[]int, T] {
	return tensor.Elements(e, layout)
}

// Backward yields every index and element of e in reverse layout order.
func Backward[T DType](e Expression[T], layout Layout) iter.Seq2[[]int, T] {
	return tensor.Backward(e, layout)
}

// Eval materializes e into a new array in the given layout.
func Eval[T DType](e Expression[T], layout Layout) (*Array[T], error) {
	return tensor.Eval(e, layout)
}

// MustEval is Eval that panics on error.
func MustEval[T DType](e Expression[T], layout Layout) *Array[T] {
	return tensor.MustEval(e, layout)
}

// ToSlice returns the elements of e in layout order.
func ToSlice[T DType](e Expression[T], layout Layout) []T { return tensor.ToSlice(e, layout) }

// Equal reports whether a and b have the same shape and elements.
func Equal[T DType](a, b Expression[T]) bool { return tensor.Equal(a, b) }

// AllClose reports whether a and b are element-wise equal within tolerance.
func AllClose[T Numeric](a, b Expression[T], rtol, atol float64) bool {
	return tensor.AllClose(a, b, rtol, atol)
}

// Reduce folds every element of e in row-major order.
func Reduce[T DType, A any](e Expression[T], init A, f func(A, T) A) A {
	return tensor.Reduce(e, init, f)
}

// Sum returns the sum of every element of e.
func Sum[T Numeric](e Expression[T]) T { return tensor.Sum(e) }
