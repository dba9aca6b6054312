package tensor

import (
	"fmt"
)

// StridedView is a view described only by shape, strides and an offset into
// a base buffer. It is the run-time counterpart of View for slice lists whose
// composition is not known in advance, and the result type of Transpose and
// ReshapeView. Like a borrowing View, it must not outlive its base.
type StridedView[T DType] struct {
	base        StridedExpression[T]
	data        []T
	offset      int
	shape       Shape
	strides     Strides
	backstrides Strides
	layout      Layout
}

func stridedBase[T DType](op string, base Expression[T]) (StridedExpression[T], error) {
	sb, ok := base.(StridedExpression[T])
	if !ok || sb.Traversal() == TraversalGeneric {
		return nil, shapeError(op, ErrUnsupportedLayout, base.Shape(), nil,
			"base has no strided data interface")
	}
	return sb, nil
}

func newStridedView[T DType](base StridedExpression[T], offset int, shape Shape, strides Strides) *StridedView[T] {
	sv := &StridedView[T]{
		base:    base,
		data:    base.Data(),
		offset:  offset,
		shape:   shape,
		strides: strides,
	}
	sv.backstrides = AdaptStrides(shape, sv.strides)
	sv.layout = ContiguousLayout(shape, sv.strides)
	return sv
}

// NewStridedView applies a run-time slice list to a strided base. Only affine
// slices are accepted; Keep and Drop fail with ErrInvalidSlice.
func NewStridedView[T DType](base Expression[T], sl []Slice) (*StridedView[T], error) {
	sb, err := stridedBase("strided view", base)
	if err != nil {
		return nil, err
	}
	for _, s := range sl {
		if !s.Affine() {
			return nil, shapeError("strided view", ErrInvalidSlice, nil, nil,
				"%s slices have no stride", s.kind)
		}
	}
	expanded, err := expandSlices(sl, sb.Dim())
	if err != nil {
		return nil, err
	}

	baseShape, baseStrides := sb.Shape(), sb.Strides()
	offset := sb.DataOffset()
	var shape Shape
	var strides Strides
	bd := 0
	for _, s := range expanded {
		if s.kind == SliceNewAxis {
			shape = append(shape, 1)
			strides = append(strides, 0)
			continue
		}
		m, err := s.resolve(bd, baseShape[bd])
		if err != nil {
			return nil, err
		}
		offset += m.start * baseStrides[bd]
		if s.kind != SliceIndex {
			shape = append(shape, m.size)
			strides = append(strides, baseStrides[bd]*m.step)
		}
		bd++
	}
	return newStridedView(sb, offset, shape, strides), nil
}

// Transpose permutes the axes of a strided base without copying. With no
// permutation the axes are reversed.
func Transpose[T DType](base Expression[T], perm ...int) (*StridedView[T], error) {
	sb, err := stridedBase("transpose", base)
	if err != nil {
		return nil, err
	}
	n := sb.Dim()
	if len(perm) == 0 {
		perm = make([]int, n)
		for i := range perm {
			perm[i] = n - 1 - i
		}
	}
	if len(perm) != n {
		return nil, shapeError("transpose", ErrDimensionMismatch, perm, sb.Shape(),
			"permutation of %d axes for rank %d", len(perm), n)
	}
	seen := make([]bool, n)
	shape := make(Shape, n)
	strides := make(Strides, n)
	for i, p := range perm {
		if p < 0 || p >= n || seen[p] {
			return nil, shapeError("transpose", ErrInvalidSlice, perm, nil, "not a permutation")
		}
		seen[p] = true
		shape[i] = sb.Shape()[p]
		strides[i] = sb.Strides()[p]
	}
	return newStridedView(sb, sb.DataOffset(), shape, strides), nil
}

// ReshapeView reinterprets a contiguous base with a new shape of the same
// size. At most one extent may be -1.
func ReshapeView[T DType](base Expression[T], shape ...int) (*StridedView[T], error) {
	sb, err := stridedBase("reshape view", base)
	if err != nil {
		return nil, err
	}
	if sb.Traversal() != TraversalLinear {
		return nil, shapeError("reshape view", ErrUnsupportedLayout, sb.Shape(), nil,
			"base is not contiguous")
	}
	resolved, err := inferShape("reshape view", shape, sb.Size())
	if err != nil {
		return nil, err
	}
	strides, _, _ := ComputeStrides(resolved, sb.Layout())
	return newStridedView(sb, sb.DataOffset(), resolved, strides), nil
}

// Shape returns the view's shape.
func (sv *StridedView[T]) Shape() Shape { return sv.shape }

// Dim returns the view's rank.
func (sv *StridedView[T]) Dim() int { return len(sv.shape) }

// Size returns the number of elements.
func (sv *StridedView[T]) Size() int { return sv.shape.NumElements() }

// Layout returns the order the strides are dense in, or DynamicLayout.
func (sv *StridedView[T]) Layout() Layout { return sv.layout }

// Traversal is linear when the strides are dense, strided otherwise.
func (sv *StridedView[T]) Traversal() Traversal {
	if sv.layout.Static() {
		return TraversalLinear
	}
	return TraversalStrided
}

// Data returns the base buffer.
func (sv *StridedView[T]) Data() []T { return sv.data }

// DataOffset returns the flat position of the first element.
func (sv *StridedView[T]) DataOffset() int { return sv.offset }

// Strides returns the view's strides.
func (sv *StridedView[T]) Strides() Strides { return sv.strides }

// Backstrides returns the view's backstrides.
func (sv *StridedView[T]) Backstrides() Strides { return sv.backstrides }

// Stepper returns a cursor at the first element.
func (sv *StridedView[T]) Stepper(shape Shape) Stepper[T] {
	return newDataStepper(sv.data, sv.offset, sv.shape, sv.strides, sv.backstrides, shape)
}

// WritableStepper returns a storing cursor.
func (sv *StridedView[T]) WritableStepper(shape Shape) WritableStepper[T] {
	return newDataStepper(sv.data, sv.offset, sv.shape, sv.strides, sv.backstrides, shape)
}

// StepperEnd returns a cursor past the last element.
func (sv *StridedView[T]) StepperEnd(shape Shape, layout Layout) Stepper[T] {
	return newDataStepperEnd(sv.data, sv.offset, sv.shape, sv.strides, sv.backstrides, shape, layout)
}

func (sv *StridedView[T]) hasLinearAssign(strides Strides) bool {
	return sv.Traversal() == TraversalLinear && sv.strides.Equal(strides)
}

func (sv *StridedView[T]) linearValue(i int) T { return sv.data[sv.offset+i] }

// Get returns the element at idx with Offset semantics.
func (sv *StridedView[T]) Get(idx ...int) T {
	return sv.data[sv.offset+Offset(sv.strides, idx...)]
}

// At returns the element at idx, checking rank and bounds.
func (sv *StridedView[T]) At(idx ...int) (T, error) {
	if err := checkIndex("strided view at", sv.shape, idx); err != nil {
		var zero T
		return zero, err
	}
	return sv.data[sv.offset+UncheckedOffset(sv.strides, idx...)], nil
}

// String returns a short description of the view.
func (sv *StridedView[T]) String() string {
	return fmt.Sprintf("StridedView[%s]%v strides%v", DataTypeOf[T](), sv.shape, []int(sv.strides))
}
