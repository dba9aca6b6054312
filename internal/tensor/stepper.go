package tensor

// Stepper is a rank-agnostic cursor over an expression. It owns no data, only
// a traversal position.
//
// Axis numbers are given in the coordinates of the (possibly broadcast) shape
// the stepper was created for; axes an expression does not have are ignored.
type Stepper[T DType] interface {
	// Step moves one unit forward along dim.
	Step(dim int)
	// StepN moves n units forward along dim.
	StepN(dim, n int)
	// StepBack moves one unit backward along dim.
	StepBack(dim int)
	// StepBackN moves n units backward along dim.
	StepBackN(dim, n int)
	// Reset moves from the last to the first element of dim.
	Reset(dim int)
	// ResetBack moves from the first to the last element of dim.
	ResetBack(dim int)
	// ToBegin positions the cursor at the first element.
	ToBegin()
	// ToEnd positions the cursor one step past the last element in layout order.
	ToEnd(layout Layout)
	// Value returns the current element.
	Value() T
}

// WritableStepper can also store the current element.
type WritableStepper[T DType] interface {
	Stepper[T]
	Set(v T)
}

// dataStepper walks a strided buffer: data[pos] with pos moved by strides.
type dataStepper[T DType] struct {
	data        []T
	strides     Strides
	backstrides Strides
	shape       Shape
	begin       int // flat position of the first element
	pos         int
	dimOffset   int // target rank minus own rank
}

func newDataStepper[T DType](data []T, offset int, shape Shape, strides, backstrides Strides,
	target Shape) *dataStepper[T] {
	return &dataStepper[T]{
		data:        data,
		strides:     strides,
		backstrides: backstrides,
		shape:       shape,
		begin:       offset,
		pos:         offset,
		dimOffset:   len(target) - len(shape),
	}
}

func newDataStepperEnd[T DType](data []T, offset int, shape Shape, strides, backstrides Strides,
	target Shape, layout Layout) *dataStepper[T] {
	s := newDataStepper(data, offset, shape, strides, backstrides, target)
	s.ToEnd(layout)
	return s
}

func (s *dataStepper[T]) Step(dim int) {
	if dim >= s.dimOffset {
		s.pos += s.strides[dim-s.dimOffset]
	}
}

func (s *dataStepper[T]) StepN(dim, n int) {
	if dim >= s.dimOffset {
		s.pos += n * s.strides[dim-s.dimOffset]
	}
}

func (s *dataStepper[T]) StepBack(dim int) {
	if dim >= s.dimOffset {
		s.pos -= s.strides[dim-s.dimOffset]
	}
}

func (s *dataStepper[T]) StepBackN(dim, n int) {
	if dim >= s.dimOffset {
		s.pos -= n * s.strides[dim-s.dimOffset]
	}
}

func (s *dataStepper[T]) Reset(dim int) {
	if dim >= s.dimOffset {
		s.pos -= s.backstrides[dim-s.dimOffset]
	}
}

func (s *dataStepper[T]) ResetBack(dim int) {
	if dim >= s.dimOffset {
		s.pos += s.backstrides[dim-s.dimOffset]
	}
}

func (s *dataStepper[T]) ToBegin() {
	s.pos = s.begin
}

func (s *dataStepper[T]) ToEnd(layout Layout) {
	s.pos = s.begin
	if s.shape.NumElements() == 0 {
		return
	}
	for _, b := range s.backstrides {
		s.pos += b
	}
	s.stepPastEnd(layout)
}

// stepPastEnd moves one unit along the fastest target axis so that StepBack
// on that axis returns to the last element.
func (s *dataStepper[T]) stepPastEnd(layout Layout) {
	target := len(s.shape) + s.dimOffset
	if target == 0 {
		s.pos++
		return
	}
	s.Step(innerDim(target, layout))
}

func (s *dataStepper[T]) Value() T {
	return s.data[s.pos]
}

func (s *dataStepper[T]) Set(v T) {
	s.data[s.pos] = v
}
