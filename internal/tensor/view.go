package tensor

import (
	"fmt"
)

// viewAxis links one axis of a view to its base.
type viewAxis struct {
	baseDim int // -1 for newaxis
	m       axisMap
}

// View is a window over a base expression selected by a list of slices.
// Its shape, strides and offset are computed once at construction; the base
// is never copied or reshaped.
//
// A view built by NewView borrows its base: the base must outlive the view
// and changes to either are visible through the other. NewOwnedView evaluates
// the base into a private array first.
type View[T DType] struct {
	base  Expression[T]
	owned bool

	slices []Slice    // expanded, one per base axis plus newaxis entries
	maps   []axisMap  // resolved, parallel to slices (zero for newaxis)
	axes   []viewAxis // one per view axis
	ints   []viewAxis // integer-collapsed base axes

	shape       Shape
	traversal   Traversal
	layout      Layout
	data        []T
	offset      int
	strides     Strides
	backstrides Strides
	writable    bool
}

// NewView creates a view borrowing base.
//
// Slices shorter than the base rank leave the trailing axes whole. A single
// Ellipsis expands to as many All slices as needed.
//
// Example:
//
//	a := tensor.Arange[int64](12).MustReshape(3, 4)
//	v, err := tensor.NewView(a, tensor.Index(1), tensor.Range(1, 4))
//	// v holds 5, 6, 7
func NewView[T DType](base Expression[T], slices ...Slice) (*View[T], error) {
	v := &View[T]{base: base}
	if err := v.build(slices); err != nil {
		return nil, err
	}
	return v, nil
}

// MustView is NewView that panics on error.
func MustView[T DType](base Expression[T], slices ...Slice) *View[T] {
	return must(NewView(base, slices...))
}

// NewOwnedView evaluates base into a private array and views it. Writes
// through the view never reach the original base.
func NewOwnedView[T DType](base Expression[T], slices ...Slice) (*View[T], error) {
	owned, err := Eval(base, RowMajor)
	if err != nil {
		return nil, fmt.Errorf("owned view: %w", err)
	}
	v := &View[T]{base: owned, owned: true}
	if err := v.build(slices); err != nil {
		return nil, err
	}
	return v, nil
}

// expandSlices validates the slice list against rank and replaces the
// ellipsis (or the missing tail) with All slices.
func expandSlices(slices []Slice, rank int) ([]Slice, error) {
	consumed, ellipsis := 0, 0
	for _, s := range slices {
		switch {
		case s.kind == SliceEllipsis:
			ellipsis++
		case s.consumesAxis():
			consumed++
		}
	}
	if ellipsis > 1 {
		return nil, shapeError("view", ErrDimensionMismatch, nil, nil, "ellipsis can only appear once")
	}
	if consumed > rank {
		return nil, shapeError("view", ErrDimensionMismatch, nil, []int{rank},
			"%d slices for an expression of rank %d", consumed, rank)
	}

	fill := rank - consumed
	out := make([]Slice, 0, len(slices)+fill)
	for _, s := range slices {
		if s.kind != SliceEllipsis {
			out = append(out, s)
			continue
		}
		for range fill {
			out = append(out, All())
		}
		fill = 0
	}
	for range fill {
		out = append(out, All())
	}
	return out, nil
}

func (v *View[T]) build(slices []Slice) error {
	baseShape := v.base.Shape()
	expanded, err := expandSlices(slices, len(baseShape))
	if err != nil {
		return err
	}
	v.slices = expanded
	v.maps = make([]axisMap, len(expanded))

	affine := true
	bd := 0
	for i, s := range expanded {
		if s.kind == SliceNewAxis {
			v.axes = append(v.axes, viewAxis{baseDim: -1, m: axisMap{kind: SliceNewAxis, size: 1}})
			continue
		}
		m, err := s.resolve(bd, baseShape[bd])
		if err != nil {
			return err
		}
		v.maps[i] = m
		if s.kind == SliceIndex {
			v.ints = append(v.ints, viewAxis{baseDim: bd, m: m})
		} else {
			v.axes = append(v.axes, viewAxis{baseDim: bd, m: m})
		}
		affine = affine && s.Affine()
		bd++
	}

	v.shape = make(Shape, len(v.axes))
	for i, ax := range v.axes {
		v.shape[i] = ax.m.size
	}

	v.classify(affine)
	return nil
}

// classify decides the traversal once. Non-affine slices or a base without a
// data interface force generic traversal. Affine slices over a strided base
// yield a strided view, which is linear over a linear base when the slice
// pattern keeps the base's contiguity or the resulting strides are dense.
func (v *View[T]) classify(affine bool) {
	_, v.writable = v.base.(Writable[T])
	v.traversal = TraversalGeneric
	v.layout = DynamicLayout

	sb, ok := v.base.(StridedExpression[T])
	if !affine || !ok || sb.Traversal() == TraversalGeneric {
		return
	}
	baseStrides := sb.Strides()
	v.data = sb.Data()
	v.offset = sb.DataOffset()
	for _, ax := range v.ints {
		v.offset += ax.m.start * baseStrides[ax.baseDim]
	}
	v.strides = make(Strides, len(v.axes))
	for i, ax := range v.axes {
		if ax.baseDim < 0 {
			continue
		}
		v.offset += ax.m.start * baseStrides[ax.baseDim]
		v.strides[i] = baseStrides[ax.baseDim] * ax.m.step
	}
	v.backstrides = AdaptStrides(v.shape, v.strides)
	v.traversal = TraversalStrided

	if sb.Traversal() != TraversalLinear {
		v.layout = ContiguousLayout(v.shape, v.strides)
		return
	}
	if contiguousSlices(v.slices, v.maps, sb.Layout()) {
		v.traversal = TraversalLinear
		v.layout = sb.Layout()
		return
	}
	// Patterns the predicate misses, such as a range followed by a
	// full-extent range, are still dense when the strides say so.
	v.layout = ContiguousLayout(v.shape, v.strides)
	if v.layout.Static() && v.Size() > 0 {
		v.traversal = TraversalLinear
	}
}

// contiguousSlices is the view contiguity predicate. In row-major order it
// accepts any number of indices, then at most one unit-step range, then only
// All; column-major is the mirror image. New axes are ignored.
func contiguousSlices(slices []Slice, maps []axisMap, layout Layout) bool {
	order := make([]int, 0, len(slices))
	for i, s := range slices {
		if s.kind != SliceNewAxis {
			order = append(order, i)
		}
	}
	switch layout {
	case RowMajor:
	case ColumnMajor:
		for l, r := 0, len(order)-1; l < r; l, r = l+1, r-1 {
			order[l], order[r] = order[r], order[l]
		}
	default:
		return false
	}

	allSeen, rangeSeen := false, false
	for _, i := range order {
		switch slices[i].kind {
		case SliceAll:
			allSeen = true
		case SliceIndex:
			if allSeen || rangeSeen {
				return false
			}
		case SliceRange:
			if allSeen || rangeSeen || !maps[i].unitStep() {
				return false
			}
			rangeSeen = true
		default:
			return false
		}
	}
	return true
}

// Shape returns the view's shape.
func (v *View[T]) Shape() Shape { return v.shape }

// Dim returns the view's rank.
func (v *View[T]) Dim() int { return len(v.shape) }

// Size returns the number of elements in the view.
func (v *View[T]) Size() int { return v.shape.NumElements() }

// Layout returns the order the view's elements are dense in, or DynamicLayout.
func (v *View[T]) Layout() Layout { return v.layout }

// Traversal returns the access strategy decided at construction.
func (v *View[T]) Traversal() Traversal { return v.traversal }

// Owned reports whether the view owns a private copy of its base.
func (v *View[T]) Owned() bool { return v.owned }

// Base returns the viewed expression.
func (v *View[T]) Base() Expression[T] { return v.base }

// Slices returns the expanded slice list.
func (v *View[T]) Slices() []Slice { return v.slices }

// Data returns the base buffer, nil for generic views.
func (v *View[T]) Data() []T { return v.data }

// DataOffset returns the flat position of the view's first element.
func (v *View[T]) DataOffset() int { return v.offset }

// Strides returns the view's strides, nil for generic views.
func (v *View[T]) Strides() Strides { return v.strides }

// Backstrides returns the view's backstrides, nil for generic views.
func (v *View[T]) Backstrides() Strides { return v.backstrides }

// Stepper returns a cursor at the view's first element.
func (v *View[T]) Stepper(shape Shape) Stepper[T] {
	if v.traversal != TraversalGeneric {
		return newDataStepper(v.data, v.offset, v.shape, v.strides, v.backstrides, shape)
	}
	return newViewStepper[T](v, v.base.Stepper(v.base.Shape()), shape)
}

// WritableStepper returns a storing cursor. It panics with ErrReadOnly when
// the base is not writable.
func (v *View[T]) WritableStepper(shape Shape) WritableStepper[T] {
	if !v.writable {
		panic(fmt.Errorf("view: %w", ErrReadOnly))
	}
	if v.traversal != TraversalGeneric {
		return newDataStepper(v.data, v.offset, v.shape, v.strides, v.backstrides, shape)
	}
	wb := v.base.(Writable[T])
	return newViewStepper[T](v, wb.WritableStepper(wb.Shape()), shape)
}

// StepperEnd returns a cursor past the view's last element.
func (v *View[T]) StepperEnd(shape Shape, layout Layout) Stepper[T] {
	s := v.Stepper(shape)
	s.ToEnd(layout)
	return s
}

func (v *View[T]) isWritable() bool { return v.writable }

func (v *View[T]) hasLinearAssign(strides Strides) bool {
	return v.traversal == TraversalLinear && v.strides.Equal(strides)
}

func (v *View[T]) linearValue(i int) T { return v.data[v.offset+i] }

// Get returns the element at idx with Offset semantics. Nothing is checked.
func (v *View[T]) Get(idx ...int) T {
	if v.traversal != TraversalGeneric {
		return v.data[v.offset+Offset(v.strides, idx...)]
	}
	s := v.Stepper(v.shape)
	moveTo(s, len(v.shape), idx)
	return s.Value()
}

// At returns the element at idx, checking rank and bounds.
func (v *View[T]) At(idx ...int) (T, error) {
	if err := checkIndex("view at", v.shape, idx); err != nil {
		var zero T
		return zero, err
	}
	return v.Get(idx...), nil
}

// SetAt stores val at idx, checking rank and bounds.
func (v *View[T]) SetAt(val T, idx ...int) error {
	if err := checkIndex("view set at", v.shape, idx); err != nil {
		return err
	}
	if !v.writable {
		return fmt.Errorf("view set at: %w", ErrReadOnly)
	}
	if v.traversal != TraversalGeneric {
		v.data[v.offset+UncheckedOffset(v.strides, idx...)] = val
		return nil
	}
	s := v.WritableStepper(v.shape)
	moveTo[T](s, len(v.shape), idx)
	s.Set(val)
	return nil
}

// Element returns the element at a caller-built index, checking bounds.
func (v *View[T]) Element(idx []int) (T, error) { return v.At(idx...) }

// String returns a short description of the view.
func (v *View[T]) String() string {
	return fmt.Sprintf("View[%s]%v %s", DataTypeOf[T](), v.shape, v.traversal)
}

// moveTo steps a fresh cursor of a rank-n expression to idx, aligned like Offset.
func moveTo[T DType](s Stepper[T], n int, idx []int) {
	if len(idx) > n {
		idx = idx[len(idx)-n:]
	}
	off := n - len(idx)
	for i, v := range idx {
		if v != 0 {
			s.StepN(off+i, v)
		}
	}
}
