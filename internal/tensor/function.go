package tensor

import "fmt"

// Function is a lazy element-wise expression over broadcast arguments.
// Nothing is computed until it is assigned or evaluated.
type Function[T DType] struct {
	args  []Expression[T]
	apply func(vals []T) T
	shape Shape
}

func newFunction[T DType](op string, apply func([]T) T, args ...Expression[T]) (*Function[T], error) {
	rank := 0
	for _, a := range args {
		rank = max(rank, a.Dim())
	}
	shape := UninitializedShape(rank)
	for _, a := range args {
		if _, err := BroadcastShape(a.Shape(), shape); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}
	fillUnset(shape)
	return &Function[T]{args: args, apply: apply, shape: shape}, nil
}

// Map applies f to every element of e.
func Map[T DType](f func(T) T, e Expression[T]) *Function[T] {
	return must(newFunction("map", func(v []T) T { return f(v[0]) }, e))
}

// Zip applies f to the broadcast element pairs of a and b.
func Zip[T DType](f func(T, T) T, a, b Expression[T]) (*Function[T], error) {
	return newFunction("zip", func(v []T) T { return f(v[0], v[1]) }, a, b)
}

// Add returns the lazy element-wise sum a + b.
func Add[T Numeric](a, b Expression[T]) (*Function[T], error) {
	return newFunction("add", func(v []T) T { return v[0] + v[1] }, a, b)
}

// Sub returns the lazy element-wise difference a - b.
func Sub[T Numeric](a, b Expression[T]) (*Function[T], error) {
	return newFunction("sub", func(v []T) T { return v[0] - v[1] }, a, b)
}

// Mul returns the lazy element-wise product a * b.
func Mul[T Numeric](a, b Expression[T]) (*Function[T], error) {
	return newFunction("mul", func(v []T) T { return v[0] * v[1] }, a, b)
}

// Div returns the lazy element-wise quotient a / b.
func Div[T Numeric](a, b Expression[T]) (*Function[T], error) {
	return newFunction("div", func(v []T) T { return v[0] / v[1] }, a, b)
}

// Neg returns the lazy element-wise negation -e.
func Neg[T Numeric](e Expression[T]) *Function[T] {
	return must(newFunction("neg", func(v []T) T { return -v[0] }, e))
}

// Shape returns the broadcast shape of the arguments.
func (f *Function[T]) Shape() Shape { return f.shape }

// Dim returns the rank.
func (f *Function[T]) Dim() int { return len(f.shape) }

// Size returns the number of elements.
func (f *Function[T]) Size() int { return f.shape.NumElements() }

// Layout returns the arguments' common layout when every argument is dense
// in it without broadcasting, DynamicLayout otherwise.
func (f *Function[T]) Layout() Layout {
	layout := DynamicLayout
	for _, a := range f.args {
		if _, ok := a.(*ScalarExpr[T]); ok {
			continue
		}
		l := a.Layout()
		if !l.Static() || !a.Shape().Equal(f.shape) || (layout.Static() && l != layout) {
			return DynamicLayout
		}
		layout = l
	}
	if !layout.Static() {
		return RowMajor
	}
	return layout
}

// Stepper returns a cursor computing elements on the fly.
func (f *Function[T]) Stepper(shape Shape) Stepper[T] {
	s := &functionStepper[T]{
		steppers: make([]Stepper[T], len(f.args)),
		vals:     make([]T, len(f.args)),
		apply:    f.apply,
	}
	for i, a := range f.args {
		s.steppers[i] = a.Stepper(shape)
	}
	return s
}

// StepperEnd returns a cursor past the last element.
func (f *Function[T]) StepperEnd(shape Shape, layout Layout) Stepper[T] {
	s := f.Stepper(shape)
	s.ToEnd(layout)
	return s
}

// hasLinearAssign holds when every argument can be read in flat order
// against strides.
func (f *Function[T]) hasLinearAssign(strides Strides) bool {
	for _, a := range f.args {
		ls, ok := a.(linearSource[T])
		if !ok || !ls.hasLinearAssign(strides) {
			return false
		}
	}
	return true
}

func (f *Function[T]) linearValue(i int) T {
	vals := make([]T, len(f.args))
	for j, a := range f.args {
		vals[j] = a.(linearSource[T]).linearValue(i)
	}
	return f.apply(vals)
}

// linearEval writes every element into dst in flat order. The caller has
// checked hasLinearAssign.
func (f *Function[T]) linearEval(dst []T) {
	srcs := make([]linearSource[T], len(f.args))
	for j, a := range f.args {
		srcs[j] = a.(linearSource[T])
	}
	vals := make([]T, len(f.args))
	for i := range dst {
		for j, s := range srcs {
			vals[j] = s.linearValue(i)
		}
		dst[i] = f.apply(vals)
	}
}

type functionStepper[T DType] struct {
	steppers []Stepper[T]
	vals     []T
	apply    func([]T) T
}

func (s *functionStepper[T]) Step(dim int) {
	for _, st := range s.steppers {
		st.Step(dim)
	}
}

func (s *functionStepper[T]) StepN(dim, n int) {
	for _, st := range s.steppers {
		st.StepN(dim, n)
	}
}

func (s *functionStepper[T]) StepBack(dim int) {
	for _, st := range s.steppers {
		st.StepBack(dim)
	}
}

func (s *functionStepper[T]) StepBackN(dim, n int) {
	for _, st := range s.steppers {
		st.StepBackN(dim, n)
	}
}

func (s *functionStepper[T]) Reset(dim int) {
	for _, st := range s.steppers {
		st.Reset(dim)
	}
}

func (s *functionStepper[T]) ResetBack(dim int) {
	for _, st := range s.steppers {
		st.ResetBack(dim)
	}
}

func (s *functionStepper[T]) ToBegin() {
	for _, st := range s.steppers {
		st.ToBegin()
	}
}

func (s *functionStepper[T]) ToEnd(layout Layout) {
	for _, st := range s.steppers {
		st.ToEnd(layout)
	}
}

func (s *functionStepper[T]) Value() T {
	for i, st := range s.steppers {
		s.vals[i] = st.Value()
	}
	return s.apply(s.vals)
}
