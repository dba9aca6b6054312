// Package interop connects ndview expressions to gonum matrices and gorgonia
// dense tensors.
package interop

import (
	"fmt"

	"github.com/born-ml/ndview/internal/tensor"
	"gonum.org/v1/gonum/mat"
)

// Matrix exposes a rank-2 expression as a gonum mat.Matrix. Elements are
// converted to float64 on read; nothing is copied.
type Matrix[T tensor.Numeric] struct {
	e          tensor.Indexable[T]
	rows, cols int
}

var _ mat.Matrix = (*Matrix[float64])(nil)

// NewMatrix wraps e. Expressions without random access (lazy functions,
// broadcasts) are evaluated once into a row-major array first.
func NewMatrix[T tensor.Numeric](e tensor.Expression[T]) (*Matrix[T], error) {
	if e.Dim() != 2 {
		return nil, fmt.Errorf("interop: matrix: %w: rank %d, want 2", tensor.ErrDimensionMismatch, e.Dim())
	}
	ix, ok := e.(tensor.Indexable[T])
	if !ok {
		a, err := tensor.Eval(e, tensor.RowMajor)
		if err != nil {
			return nil, fmt.Errorf("interop: matrix: %w", err)
		}
		ix = a
	}
	shape := e.Shape()
	return &Matrix[T]{e: ix, rows: shape[0], cols: shape[1]}, nil
}

// Dims returns the number of rows and columns.
func (m *Matrix[T]) Dims() (r, c int) { return m.rows, m.cols }

// At returns element (i, j). It panics like gonum matrices on out-of-range
// access.
func (m *Matrix[T]) At(i, j int) float64 {
	if uint(i) >= uint(m.rows) {
		panic(mat.ErrRowAccess)
	}
	if uint(j) >= uint(m.cols) {
		panic(mat.ErrColAccess)
	}
	return float64(m.e.Get(i, j))
}

// T returns the implicit transpose.
func (m *Matrix[T]) T() mat.Matrix { return mat.Transpose{Matrix: m} }

// FromMatrix returns a float64 array over m. A *mat.Dense is adapted in
// place, sharing its backing data; any other matrix is copied.
func FromMatrix(m mat.Matrix) (*tensor.Array[float64], error) {
	r, c := m.Dims()
	if d, ok := m.(*mat.Dense); ok && !d.IsEmpty() {
		raw := d.RawMatrix()
		a, err := tensor.AdaptStrided(raw.Data, tensor.Shape{raw.Rows, raw.Cols}, tensor.Strides{raw.Stride, 1})
		if err != nil {
			return nil, fmt.Errorf("interop: from matrix: %w", err)
		}
		return a, nil
	}
	out := tensor.Zeros[float64](tensor.Shape{r, c})
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.SetFlat(i*c+j, m.At(i, j))
		}
	}
	return out, nil
}

// ToMatDense copies a rank-2 expression into a new *mat.Dense.
func ToMatDense[T tensor.Numeric](e tensor.Expression[T]) (*mat.Dense, error) {
	if e.Dim() != 2 {
		return nil, fmt.Errorf("interop: to mat dense: %w: rank %d, want 2", tensor.ErrDimensionMismatch, e.Dim())
	}
	if e.Size() == 0 {
		return nil, fmt.Errorf("interop: to mat dense: %w: gonum matrices cannot be empty", tensor.ErrShapeMismatch)
	}
	shape := e.Shape()
	data := make([]float64, 0, e.Size())
	for _, v := range tensor.Elements(e, tensor.RowMajor) {
		data = append(data, float64(v))
	}
	return mat.NewDense(shape[0], shape[1], data), nil
}
