package interop

import (
	"testing"

	"github.com/born-ml/ndview/internal/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestMatrix(t *testing.T) {
	a := tensor.Arange[float64](12).MustReshape(3, 4)
	v := tensor.MustView[float64](a, tensor.StepRange(tensor.Open, tensor.Open, -1), tensor.Keep(0, 3))

	m, err := NewMatrix[float64](v)
	require.NoError(t, err)
	r, c := m.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 2, c)
	assert.True(t, mat.Equal(m, mat.NewDense(3, 2, []float64{8, 11, 4, 7, 0, 3})))
	assert.Equal(t, 7.0, m.T().At(1, 1))
	assert.Panics(t, func() { m.At(3, 0) })
	assert.Panics(t, func() { m.At(0, -1) })

	var prod mat.Dense
	prod.Mul(m.T(), m)
	assert.Equal(t, 8.0*11+4*7+0*3, prod.At(0, 1))

	_, err = NewMatrix[float64](tensor.Arange[float64](3))
	assert.ErrorIs(t, err, tensor.ErrDimensionMismatch)
}

func TestMatrixFromFunction(t *testing.T) {
	row := tensor.MustFromSlice([]int32{1, 2}, tensor.Shape{2}, tensor.RowMajor)
	col := tensor.MustFromSlice([]int32{10, 20}, tensor.Shape{2, 1}, tensor.RowMajor)
	f, err := tensor.Mul[int32](row, col)
	require.NoError(t, err)

	m, err := NewMatrix[int32](f)
	require.NoError(t, err)
	assert.True(t, mat.Equal(m, mat.NewDense(2, 2, []float64{10, 20, 20, 40})))
}

func TestFromMatrix(t *testing.T) {
	d := mat.NewDense(4, 4, nil)
	for i := 0; i < 16; i++ {
		d.Set(i/4, i%4, float64(i))
	}

	sub := d.Slice(1, 3, 1, 4).(*mat.Dense)
	a, err := FromMatrix(sub)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{2, 3}, a.Shape())
	assert.True(t, a.Borrowed())
	assert.Equal(t, []float64{5, 6, 7, 9, 10, 11}, tensor.ToSlice[float64](a, tensor.RowMajor))

	// Writes are shared with the gonum matrix.
	require.NoError(t, tensor.Fill[float64](tensor.MustView[float64](a, tensor.Index(1)), -1))
	assert.Equal(t, -1.0, d.At(2, 3))
	assert.Equal(t, 8.0, d.At(2, 0))

	tr, err := FromMatrix(d.T())
	require.NoError(t, err)
	assert.False(t, tr.Borrowed())
	assert.Equal(t, d.At(1, 2), tr.Get(2, 1))
}

func TestToMatDense(t *testing.T) {
	a := tensor.Arange[uint8](6).MustReshape(2, 3)
	tr, err := tensor.Transpose[uint8](a)
	require.NoError(t, err)

	d, err := ToMatDense[uint8](tr)
	require.NoError(t, err)
	assert.True(t, mat.Equal(d, mat.NewDense(3, 2, []float64{0, 3, 1, 4, 2, 5})))

	_, err = ToMatDense[uint8](tensor.Zeros[uint8](tensor.Shape{0, 3}))
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)
	_, err = ToMatDense[uint8](a.MustReshape(6))
	assert.ErrorIs(t, err, tensor.ErrDimensionMismatch)
}
