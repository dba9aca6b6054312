package tensor

// viewStepper walks a generic view by moving a cursor of its base. Each view
// axis keeps its own position so index-mapped slices can compute the base
// distance of every move; new axes never move the base.
type viewStepper[T DType] struct {
	view      *View[T]
	base      Stepper[T]
	index     []int
	dimOffset int
}

func newViewStepper[T DType](v *View[T], base Stepper[T], target Shape) *viewStepper[T] {
	s := &viewStepper[T]{
		view:      v,
		base:      base,
		index:     make([]int, len(v.shape)),
		dimOffset: len(target) - len(v.shape),
	}
	s.ToBegin()
	return s
}

// move shifts the base along its axis by delta positions.
func (s *viewStepper[T]) move(baseDim, delta int) {
	switch {
	case delta > 0:
		s.base.StepN(baseDim, delta)
	case delta < 0:
		s.base.StepBackN(baseDim, -delta)
	}
}

// moveTo places view axis d at position i. Extent-1 axes never move so they
// can be broadcast.
func (s *viewStepper[T]) moveTo(d, i int) {
	if s.view.shape[d] == 1 {
		return
	}
	ax := s.view.axes[d]
	if ax.baseDim >= 0 {
		s.move(ax.baseDim, ax.m.pos(i)-ax.m.pos(s.index[d]))
	}
	s.index[d] = i
}

func (s *viewStepper[T]) Step(dim int) { s.StepN(dim, 1) }

func (s *viewStepper[T]) StepN(dim, n int) {
	if d := dim - s.dimOffset; d >= 0 {
		s.moveTo(d, s.index[d]+n)
	}
}

func (s *viewStepper[T]) StepBack(dim int) { s.StepBackN(dim, 1) }

func (s *viewStepper[T]) StepBackN(dim, n int) {
	if d := dim - s.dimOffset; d >= 0 {
		s.moveTo(d, s.index[d]-n)
	}
}

func (s *viewStepper[T]) Reset(dim int) {
	if d := dim - s.dimOffset; d >= 0 {
		s.moveTo(d, 0)
	}
}

func (s *viewStepper[T]) ResetBack(dim int) {
	if d := dim - s.dimOffset; d >= 0 {
		s.moveTo(d, max(s.view.shape[d]-1, 0))
	}
}

// ToBegin rewinds the base and applies the fixed positions of collapsed axes
// and the first position of every mapped axis.
func (s *viewStepper[T]) ToBegin() {
	s.base.ToBegin()
	for _, ax := range s.view.ints {
		s.move(ax.baseDim, ax.m.start)
	}
	for d, ax := range s.view.axes {
		s.index[d] = 0
		if ax.baseDim >= 0 {
			s.move(ax.baseDim, ax.m.pos(0))
		}
	}
}

// ToEnd parks the cursor one step past the last element along the fastest
// axis of layout.
func (s *viewStepper[T]) ToEnd(layout Layout) {
	s.ToBegin()
	if s.view.Size() == 0 {
		return
	}
	for d, n := range s.view.shape {
		s.moveTo(d, n-1)
	}
	if n := len(s.view.shape); n > 0 {
		target := n + s.dimOffset
		if inner := innerDim(target, layout) - s.dimOffset; inner >= 0 {
			s.moveTo(inner, s.index[inner]+1)
		}
	}
}

func (s *viewStepper[T]) Value() T { return s.base.Value() }

func (s *viewStepper[T]) Set(v T) {
	ws, ok := s.base.(WritableStepper[T])
	if !ok {
		panic(ErrReadOnly)
	}
	ws.Set(v)
}
