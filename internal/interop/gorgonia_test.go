package interop

import (
	"testing"

	"github.com/born-ml/ndview/internal/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gtensor "gorgonia.org/tensor"
)

func TestToDense(t *testing.T) {
	a := tensor.Arange[float32](12).MustReshape(3, 4)
	v := tensor.MustView[float32](a, tensor.Range(1, 3), tensor.StepRange(tensor.Open, tensor.Open, 2))

	d, err := ToDense[float32](v)
	require.NoError(t, err)
	assert.Equal(t, gtensor.Shape{2, 2}, d.Shape())
	assert.Equal(t, gtensor.Float32, d.Dtype())
	assert.Equal(t, []float32{4, 6, 8, 10}, d.Data())

	s, err := ToDense[int64](tensor.Scalar[int64](7))
	require.NoError(t, err)
	assert.True(t, s.IsScalar())
	assert.Equal(t, int64(7), s.ScalarValue())

	_, err = ToDense[float32](tensor.Zeros[float32](tensor.Shape{2, 0}))
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)
}

func TestFromDense(t *testing.T) {
	backing := []float64{0, 1, 2, 3, 4, 5}
	d := gtensor.New(gtensor.WithShape(2, 3), gtensor.WithBacking(backing))

	a, err := FromDense[float64](d)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{2, 3}, a.Shape())
	assert.Equal(t, 5.0, a.Get(1, 2))

	a.SetFlat(0, 42)
	assert.Equal(t, 42.0, backing[0], "memory is shared")

	_, err = FromDense[float32](d)
	assert.ErrorIs(t, err, ErrDataType)

	s, err := FromDense[float64](gtensor.New(gtensor.FromScalar(2.5)))
	require.NoError(t, err)
	assert.Equal(t, 0, s.Dim())
	assert.Equal(t, 2.5, s.Flat(0))
}

func TestDenseRoundTrip(t *testing.T) {
	a := tensor.Arange[int32](24).MustReshape(2, 3, 4)
	tr, err := tensor.Transpose[int32](a, 2, 0, 1)
	require.NoError(t, err)

	d, err := ToDense[int32](tr)
	require.NoError(t, err)
	back, err := FromDense[int32](d)
	require.NoError(t, err)
	assert.True(t, tensor.Equal[int32](tr, back))
}
