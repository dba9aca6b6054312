package tensor

import "fmt"

// ScalarExpr is a rank-0 expression holding a single value. It broadcasts to
// any shape.
type ScalarExpr[T DType] struct {
	value T
}

// Scalar wraps v as an expression.
func Scalar[T DType](v T) *ScalarExpr[T] {
	return &ScalarExpr[T]{value: v}
}

// Value returns the wrapped value.
func (s *ScalarExpr[T]) Value() T { return s.value }

// Shape returns the empty shape.
func (s *ScalarExpr[T]) Shape() Shape { return Shape{} }

// Dim returns 0.
func (s *ScalarExpr[T]) Dim() int { return 0 }

// Size returns 1.
func (s *ScalarExpr[T]) Size() int { return 1 }

// Layout returns RowMajor; a scalar is dense in any order.
func (s *ScalarExpr[T]) Layout() Layout { return RowMajor }

// Stepper returns a cursor that ignores every motion.
func (s *ScalarExpr[T]) Stepper(Shape) Stepper[T] {
	return scalarStepper[T]{value: s.value}
}

// StepperEnd returns the same cursor as Stepper.
func (s *ScalarExpr[T]) StepperEnd(Shape, Layout) Stepper[T] {
	return scalarStepper[T]{value: s.value}
}

func (s *ScalarExpr[T]) hasLinearAssign(Strides) bool { return true }

func (s *ScalarExpr[T]) linearValue(int) T { return s.value }

// Get returns the value for any index.
func (s *ScalarExpr[T]) Get(...int) T { return s.value }

// String formats the value.
func (s *ScalarExpr[T]) String() string { return fmt.Sprint(s.value) }

type scalarStepper[T DType] struct {
	value T
}

func (scalarStepper[T]) Step(int) {}
func (scalarStepper[T]) StepN(int, int) {}
func (scalarStepper[T]) StepBack(int) {}
func (scalarStepper[T]) StepBackN(int, int) {}
func (scalarStepper[T]) Reset(int) {}
func (scalarStepper[T]) ResetBack(int) {}
func (scalarStepper[T]) ToBegin() {}
func (scalarStepper[T]) ToEnd(Layout) {}
func (s scalarStepper[T]) Value() T { return s.value }
