// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package interop converts between ndview expressions, gonum matrices and
// gorgonia dense tensors.
//
// Adaptors share memory where the foreign layout allows it:
//
//	d := mat.NewDense(3, 3, nil)
//	a, err := interop.FromMatrix(d) // a and d share data
//
//	m, err := interop.NewMatrix[float64](view) // view read as a mat.Matrix
package interop

import (
	"github.com/born-ml/ndview/internal/interop"
	"github.com/born-ml/ndview/tensor"
	"gonum.org/v1/gonum/mat"
	gtensor "gorgonia.org/tensor"
)

// ErrDataType is returned when a foreign tensor's element type does not
// match the requested one.
var ErrDataType = interop.ErrDataType

// Matrix exposes a rank-2 expression as a gonum mat.Matrix.
type Matrix[T tensor.Numeric] = interop.Matrix[T]

// NewMatrix wraps a rank-2 expression as a mat.Matrix.
func NewMatrix[T tensor.Numeric](e tensor.Expression[T]) (*Matrix[T], error) {
	return interop.NewMatrix(e)
}

// FromMatrix returns a float64 array over m, sharing memory with a *mat.Dense.
func FromMatrix(m mat.Matrix) (*tensor.Array[float64], error) {
	return interop.FromMatrix(m)
}

// ToMatDense copies a rank-2 expression into a new *mat.Dense.
func ToMatDense[T tensor.Numeric](e tensor.Expression[T]) (*mat.Dense, error) {
	return interop.ToMatDense(e)
}

// ToDense evaluates e into a new gorgonia dense tensor.
func ToDense[T tensor.DType](e tensor.Expression[T]) (*gtensor.Dense, error) {
	return interop.ToDense(e)
}

// FromDense adapts the backing data of a gorgonia dense tensor as an array.
func FromDense[T tensor.DType](d *gtensor.Dense) (*tensor.Array[T], error) {
	return interop.FromDense[T](d)
}
