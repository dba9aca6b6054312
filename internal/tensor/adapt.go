package tensor

import "fmt"

// Adapt wraps a caller-owned buffer as an array without copying. data must
// hold exactly shape.NumElements() elements laid out in layout.
func Adapt[T DType](data []T, shape Shape, layout Layout) (*Array[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("adapt: %w", err)
	}
	if len(data) != shape.NumElements() {
		return nil, shapeError("adapt", ErrShapeMismatch, shape, nil,
			"buffer holds %d elements, shape needs %d", len(data), shape.NumElements())
	}
	a := &Array[T]{data: data, layout: layout, borrowed: true}
	a.setShape(shape.Clone(), layout)
	return a, nil
}

// AdaptStrided wraps a caller-owned buffer with explicit strides. The result
// has a dynamic layout. Negative strides are not supported.
func AdaptStrided[T DType](data []T, shape Shape, strides Strides) (*Array[T], error) {
	a := &Array[T]{data: data, layout: DynamicLayout, borrowed: true}
	if err := a.ResizeStrides(shape, strides); err != nil {
		return nil, fmt.Errorf("adapt: %w", err)
	}
	return a, nil
}
