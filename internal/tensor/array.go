package tensor

import (
	"fmt"
)

// Array is a dense n-dimensional container of T.
//
// Row- and column-major arrays derive their strides from the shape.
// DynamicLayout arrays may additionally carry explicit strides set through
// ResizeStrides. An Array built by Adapt borrows the caller's buffer and
// cannot change its element count.
//
// Example:
//
//	a := tensor.Arange[float64](12).MustReshape(3, 4)
//	v := tensor.MustView(a, tensor.Index(1), tensor.Range(1, 4))
//	_ = tensor.Fill(v, -1)
type Array[T DType] struct {
	data        []T
	shape       Shape
	strides     Strides
	backstrides Strides
	layout      Layout
	borrowed    bool
}

// NewArray creates a zero-filled array of the given shape and layout.
func NewArray[T DType](shape Shape, layout Layout) (*Array[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("new array: %w", err)
	}
	a := &Array[T]{layout: layout}
	a.setShape(shape.Clone(), layout)
	a.data = make([]T, shape.NumElements())
	return a, nil
}

// Zeros creates a row-major array filled with zeros.
//
// Example:
//
//	a := tensor.Zeros[float32](Shape{3, 4})
func Zeros[T DType](shape Shape) *Array[T] {
	return must(NewArray[T](shape, RowMajor))
}

// Full creates a row-major array filled with value.
func Full[T DType](shape Shape, value T) *Array[T] {
	a := Zeros[T](shape)
	for i := range a.data {
		a.data[i] = value
	}
	return a
}

// FromSlice creates an array from a Go slice laid out in the given layout.
// The slice is copied.
func FromSlice[T DType](data []T, shape Shape, layout Layout) (*Array[T], error) {
	if shape.NumElements() != len(data) {
		return nil, shapeError("from slice", ErrShapeMismatch, shape, nil,
			"shape requires %d elements, but got %d", shape.NumElements(), len(data))
	}
	a, err := NewArray[T](shape, layout)
	if err != nil {
		return nil, err
	}
	copy(a.data, data)
	return a, nil
}

// MustFromSlice is FromSlice that panics on error.
func MustFromSlice[T DType](data []T, shape Shape, layout Layout) *Array[T] {
	return must(FromSlice(data, shape, layout))
}

// Arange returns the 1-D array 0, 1, ..., n-1.
func Arange[T Numeric](n int) *Array[T] {
	a := Zeros[T](Shape{n})
	for i := range a.data {
		a.data[i] = T(i)
	}
	return a
}

func (a *Array[T]) setShape(shape Shape, layout Layout) {
	a.shape = shape
	a.strides, a.backstrides, _ = ComputeStrides(shape, layout)
}

// Shape returns the array's shape.
func (a *Array[T]) Shape() Shape { return a.shape }

// Dim returns the rank.
func (a *Array[T]) Dim() int { return len(a.shape) }

// Size returns the number of elements.
func (a *Array[T]) Size() int { return a.shape.NumElements() }

// Strides returns the array's strides.
func (a *Array[T]) Strides() Strides { return a.strides }

// Backstrides returns the array's backstrides.
func (a *Array[T]) Backstrides() Strides { return a.backstrides }

// Data returns the underlying buffer (zero-copy).
//
// WARNING: Modifications to the returned slice will modify the array.
func (a *Array[T]) Data() []T { return a.data }

// DataOffset returns the flat position of the first element (always 0).
func (a *Array[T]) DataOffset() int { return 0 }

// Borrowed reports whether the array adapts a caller-owned buffer.
func (a *Array[T]) Borrowed() bool { return a.borrowed }

// Layout returns the static layout, or the layout explicit strides happen to
// be dense in when the array is dynamic.
func (a *Array[T]) Layout() Layout {
	if a.layout.Static() {
		return a.layout
	}
	return ContiguousLayout(a.shape, a.strides)
}

// Traversal reports how the array's buffer may be walked.
func (a *Array[T]) Traversal() Traversal {
	if a.Layout().Static() {
		return TraversalLinear
	}
	return TraversalStrided
}

// Resize changes the shape, keeping the array's layout. Data is reallocated
// (zero-filled) when the element count changes.
func (a *Array[T]) Resize(shape Shape) error {
	layout := a.layout
	if !layout.Static() {
		layout = RowMajor
	}
	return a.resize("resize", shape, layout)
}

// ResizeLayout changes the shape and the layout.
func (a *Array[T]) ResizeLayout(shape Shape, layout Layout) error {
	if a.layout.Static() && layout != a.layout {
		return shapeError("resize", ErrUnsupportedLayout, shape, nil,
			"cannot change static %s array to %s", a.layout, layout)
	}
	return a.resize("resize", shape, layout)
}

func (a *Array[T]) resize(op string, shape Shape, layout Layout) error {
	if err := shape.Validate(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	n := shape.NumElements()
	if n != len(a.data) {
		if a.borrowed {
			return shapeError(op, ErrShapeMismatch, shape, a.shape,
				"adapted buffer holds %d elements, shape needs %d", len(a.data), n)
		}
		a.data = make([]T, n)
	}
	a.setShape(shape.Clone(), layout)
	return nil
}

// ResizeStrides sets the shape with explicit strides, bypassing the layout
// computation. Only legal for DynamicLayout arrays. Strides of extent-1 axes
// are normalized to 0. Arrays always start at offset 0, so negative strides
// are rejected; use a reversed view instead.
func (a *Array[T]) ResizeStrides(shape Shape, strides Strides) error {
	if a.layout != DynamicLayout {
		return shapeError("resize strides", ErrUnsupportedLayout, shape, nil,
			"explicit strides need a dynamic layout, array is %s", a.layout)
	}
	if len(strides) != len(shape) {
		return shapeError("resize strides", ErrDimensionMismatch, strides, shape,
			"%d strides for %d axes", len(strides), len(shape))
	}
	if err := shape.Validate(); err != nil {
		return fmt.Errorf("resize strides: %w", err)
	}
	for i, s := range strides {
		if s < 0 {
			return shapeError("resize strides", ErrInvalidSlice, strides, nil,
				"negative stride %d on axis %d", s, i)
		}
	}
	st := strides.Clone()
	bs := AdaptStrides(shape, st)
	need := spanOf(shape, st)
	if need > len(a.data) {
		if a.borrowed {
			return shapeError("resize strides", ErrShapeMismatch, shape, nil,
				"strides address %d elements, adapted buffer holds %d", need, len(a.data))
		}
		a.data = make([]T, need)
	}
	a.shape = shape.Clone()
	a.strides = st
	a.backstrides = bs
	return nil
}

// spanOf returns the buffer length needed to hold every element addressed by
// strides, which must be non-negative.
func spanOf(shape Shape, strides Strides) int {
	if shape.NumElements() == 0 {
		return 0
	}
	last := 0
	for i, d := range shape {
		if strides[i] > 0 {
			last += strides[i] * (d - 1)
		}
	}
	return last + 1
}

// Reshape changes the shape without changing the element count. At most one
// extent may be -1; it is inferred from the others. Storage past the last
// element, left behind by ResizeStrides, is cut off.
func (a *Array[T]) Reshape(shape ...int) error {
	n := a.Size()
	resolved, err := inferShape("reshape", shape, n)
	if err != nil {
		return err
	}
	if !a.layout.Static() && !a.Layout().Static() {
		return shapeError("reshape", ErrUnsupportedLayout, shape, nil,
			"array with explicit non-dense strides cannot be reshaped in place")
	}
	a.data = a.data[:n]
	a.setShape(resolved, a.Layout())
	return nil
}

// MustReshape is Reshape that panics on error and returns the array.
func (a *Array[T]) MustReshape(shape ...int) *Array[T] {
	if err := a.Reshape(shape...); err != nil {
		panic(err)
	}
	return a
}

func inferShape(op string, shape []int, size int) (Shape, error) {
	resolved := make(Shape, len(shape))
	infer := -1
	known := 1
	for i, d := range shape {
		switch {
		case d == -1 && infer >= 0:
			return nil, shapeError(op, ErrInvalidReshape, shape, nil, "more than one -1 placeholder")
		case d == -1:
			infer = i
		case d < 0:
			return nil, shapeError(op, ErrInvalidReshape, shape, nil, "negative extent %d", d)
		default:
			known *= d
		}
		resolved[i] = d
	}
	if infer >= 0 {
		if known == 0 || size%known != 0 {
			return nil, shapeError(op, ErrInvalidReshape, shape, nil,
				"cannot infer axis %d for %d elements", infer, size)
		}
		resolved[infer] = size / known
	}
	if resolved.NumElements() != size {
		return nil, shapeError(op, ErrInvalidReshape, shape, nil,
			"element count changes from %d to %d", size, resolved.NumElements())
	}
	return resolved, nil
}

// Get returns the element at idx with Offset semantics: fewer indices are
// right-aligned, extra leading ones are dropped. Nothing is bounds checked.
func (a *Array[T]) Get(idx ...int) T {
	return a.data[Offset(a.strides, idx...)]
}

// Unchecked returns the element at a full-rank idx without any adjustment.
func (a *Array[T]) Unchecked(idx ...int) T {
	return a.data[UncheckedOffset(a.strides, idx...)]
}

// Flat returns the i-th element of the storage.
func (a *Array[T]) Flat(i int) T { return a.data[i] }

// SetFlat stores v as the i-th element of the storage.
func (a *Array[T]) SetFlat(i int, v T) { a.data[i] = v }

// At returns the element at idx, checking rank and bounds.
func (a *Array[T]) At(idx ...int) (T, error) {
	if err := checkIndex("at", a.shape, idx); err != nil {
		var zero T
		return zero, err
	}
	return a.data[UncheckedOffset(a.strides, idx...)], nil
}

// SetAt stores v at idx, checking rank and bounds.
func (a *Array[T]) SetAt(v T, idx ...int) error {
	if err := checkIndex("set at", a.shape, idx); err != nil {
		return err
	}
	a.data[UncheckedOffset(a.strides, idx...)] = v
	return nil
}

// Element returns the element at a caller-built index, checking bounds.
func (a *Array[T]) Element(idx []int) (T, error) {
	return a.At(idx...)
}

// Stepper returns a cursor at the first element, broadcast to shape.
func (a *Array[T]) Stepper(shape Shape) Stepper[T] {
	return newDataStepper(a.data, 0, a.shape, a.strides, a.backstrides, shape)
}

// WritableStepper returns a storing cursor at the first element.
func (a *Array[T]) WritableStepper(shape Shape) WritableStepper[T] {
	return newDataStepper(a.data, 0, a.shape, a.strides, a.backstrides, shape)
}

// StepperEnd returns a cursor past the last element in layout order.
func (a *Array[T]) StepperEnd(shape Shape, layout Layout) Stepper[T] {
	return newDataStepperEnd(a.data, 0, a.shape, a.strides, a.backstrides, shape, layout)
}

func (a *Array[T]) hasLinearAssign(strides Strides) bool {
	return a.Traversal() == TraversalLinear && a.strides.Equal(strides)
}

func (a *Array[T]) linearValue(i int) T { return a.data[i] }

// Clone returns a deep copy with the same shape, strides and layout.
func (a *Array[T]) Clone() *Array[T] {
	return &Array[T]{
		data:        append([]T(nil), a.data...),
		shape:       a.shape.Clone(),
		strides:     a.strides.Clone(),
		backstrides: a.backstrides.Clone(),
		layout:      a.layout,
	}
}

// String returns a short description of the array.
func (a *Array[T]) String() string {
	return fmt.Sprintf("Array[%s]%v %s", DataTypeOf[T](), a.shape, a.Layout())
}
