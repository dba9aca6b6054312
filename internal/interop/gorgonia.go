package interop

import (
	"errors"
	"fmt"

	"github.com/born-ml/ndview/internal/tensor"
	gtensor "gorgonia.org/tensor"
)

// ErrDataType is returned when a foreign tensor's element type does not
// match the requested one.
var ErrDataType = errors.New("data type mismatch")

// ToDense evaluates e into a new row-major gorgonia dense tensor. A rank-0
// expression becomes a gorgonia scalar.
func ToDense[T tensor.DType](e tensor.Expression[T]) (*gtensor.Dense, error) {
	a, err := tensor.Eval(e, tensor.RowMajor)
	if err != nil {
		return nil, fmt.Errorf("interop: to dense: %w", err)
	}
	if a.Dim() == 0 {
		return gtensor.New(gtensor.FromScalar(a.Flat(0))), nil
	}
	if a.Size() == 0 {
		return nil, fmt.Errorf("interop: to dense: %w: gorgonia tensors cannot be empty", tensor.ErrShapeMismatch)
	}
	return gtensor.New(
		gtensor.WithShape(a.Shape()...),
		gtensor.WithBacking(a.Data()),
	), nil
}

// FromDense adapts the backing data of d as an array, sharing memory and
// keeping d's strides. Views are materialized first and therefore copied.
func FromDense[T tensor.DType](d *gtensor.Dense) (*tensor.Array[T], error) {
	if d.IsScalar() {
		v, ok := d.ScalarValue().(T)
		if !ok {
			return nil, fmt.Errorf("interop: from dense: %w: %v", ErrDataType, d.Dtype())
		}
		return tensor.Full(tensor.Shape{}, v), nil
	}
	if d.IsView() {
		m, ok := d.Materialize().(*gtensor.Dense)
		if !ok {
			return nil, fmt.Errorf("interop: from dense: cannot materialize %T", d.Materialize())
		}
		d = m
	}
	data, ok := d.Data().([]T)
	if !ok {
		return nil, fmt.Errorf("interop: from dense: %w: %v", ErrDataType, d.Dtype())
	}
	a, err := tensor.AdaptStrided(data, tensor.Shape(d.Shape().Clone()), tensor.Strides(d.Strides()))
	if err != nil {
		return nil, fmt.Errorf("interop: from dense: %w", err)
	}
	return a, nil
}
