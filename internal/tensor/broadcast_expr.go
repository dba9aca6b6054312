package tensor

import "fmt"

// Broadcast presents an expression under a larger, broadcast-compatible
// shape without copying.
type Broadcast[T DType] struct {
	expr  Expression[T]
	shape Shape
}

// BroadcastTo broadcasts e to shape following NumPy rules. e's extents must
// be 1 or equal to the matching trailing extent of shape.
func BroadcastTo[T DType](e Expression[T], shape Shape) (*Broadcast[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("broadcast to: %w", err)
	}
	if !Broadcastable(e.Shape(), shape) {
		return nil, shapeError("broadcast to", ErrShapeMismatch, e.Shape(), shape,
			"extents must be 1 or match")
	}
	return &Broadcast[T]{expr: e, shape: shape.Clone()}, nil
}

// Shape returns the broadcast shape.
func (b *Broadcast[T]) Shape() Shape { return b.shape }

// Dim returns the broadcast rank.
func (b *Broadcast[T]) Dim() int { return len(b.shape) }

// Size returns the number of broadcast elements.
func (b *Broadcast[T]) Size() int { return b.shape.NumElements() }

// Layout returns DynamicLayout unless nothing is repeated.
func (b *Broadcast[T]) Layout() Layout {
	if b.expr.Shape().Equal(b.shape) {
		return b.expr.Layout()
	}
	return DynamicLayout
}

// Stepper returns a cursor over the broadcast expression.
func (b *Broadcast[T]) Stepper(shape Shape) Stepper[T] {
	return b.expr.Stepper(shape)
}

// StepperEnd returns a cursor past the last broadcast element.
func (b *Broadcast[T]) StepperEnd(shape Shape, layout Layout) Stepper[T] {
	s := b.expr.Stepper(shape)
	s.ToEnd(layout)
	return s
}

func (b *Broadcast[T]) hasLinearAssign(strides Strides) bool {
	ls, ok := b.expr.(linearSource[T])
	return ok && b.expr.Shape().Equal(b.shape) && ls.hasLinearAssign(strides)
}

func (b *Broadcast[T]) linearValue(i int) T {
	return b.expr.(linearSource[T]).linearValue(i)
}
