package tensor

import (
	"fmt"
)

// Strategy is the copy algorithm used by an assignment.
type Strategy int

// Assignment strategies, from fastest to most general.
const (
	// StrategyAuto picks the fastest legal strategy.
	StrategyAuto Strategy = iota
	// StrategyLinear is a single forward pass over both flat buffers.
	StrategyLinear
	// StrategyStrided is a collapsed nested loop over two strided buffers.
	StrategyStrided
	// StrategyStepper advances one stepper per side in lock-step.
	StrategyStepper
)

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case StrategyAuto:
		return "auto"
	case StrategyLinear:
		return "linear"
	case StrategyStrided:
		return "strided"
	case StrategyStepper:
		return "stepper"
	default:
		return "unknown"
	}
}

// AssignConfig controls an assignment.
type AssignConfig struct {
	// Strategy forces a copy algorithm. Forcing one whose precondition does
	// not hold fails with ErrStrategyUnavailable.
	Strategy Strategy
	// AliasSafe evaluates the source into a temporary before writing, for
	// sources that read the destination's buffer at other positions.
	AliasSafe bool
	// Layout is the traversal order of the stepper strategy. DynamicLayout
	// follows the destination's own layout.
	Layout Layout
}

// DefaultAssignConfig returns the no-alias automatic configuration.
func DefaultAssignConfig() AssignConfig {
	return AssignConfig{
		Strategy: StrategyAuto,
		Layout:   RowMajor,
	}
}

// Assign copies src into dst with the default configuration. dst and src
// must not overlap unless each element only reads its own position.
//
// A Resizable destination that owns its storage adopts the shape of a
// differently shaped source. Any other destination, adapted arrays included,
// requires src to broadcast to its shape.
//
// Example:
//
//	v := tensor.MustView(a, tensor.Index(1), tensor.Range(1, 4))
//	err := tensor.Assign[float64](v, tensor.Scalar(-1.0))
func Assign[T DType](dst Writable[T], src Expression[T]) error {
	return AssignWith(dst, src, DefaultAssignConfig())
}

// AssignAliasSafe copies src into dst through a temporary buffer.
func AssignAliasSafe[T DType](dst Writable[T], src Expression[T]) error {
	cfg := DefaultAssignConfig()
	cfg.AliasSafe = true
	return AssignWith(dst, src, cfg)
}

// AssignWith copies src into dst as configured. Shape errors are reported
// before anything is written.
func AssignWith[T DType](dst Writable[T], src Expression[T], cfg AssignConfig) error {
	if err := checkWritable(dst); err != nil {
		return fmt.Errorf("assign: %w", err)
	}

	if cfg.AliasSafe {
		tmp, err := Eval(src, RowMajor)
		if err != nil {
			return fmt.Errorf("assign: %w", err)
		}
		src = tmp
	}

	if err := reconcileShapes(dst, &src); err != nil {
		return fmt.Errorf("assign: %w", err)
	}

	strategy := cfg.Strategy
	if strategy == StrategyAuto {
		strategy = SelectStrategy(dst, src)
	} else if err := checkStrategy(strategy, dst, src); err != nil {
		return fmt.Errorf("assign: %w", err)
	}

	switch strategy {
	case StrategyLinear:
		linearAssign(dst.(StridedExpression[T]), src)
	case StrategyStrided:
		stridedAssign(dst.(StridedExpression[T]), src)
	default:
		stepperAssign(dst, src, traversalLayout[T](cfg.Layout, dst))
	}
	return nil
}

type writability interface {
	isWritable() bool
}

func checkWritable[T DType](dst Writable[T]) error {
	if w, ok := dst.(writability); ok && !w.isWritable() {
		return ErrReadOnly
	}
	return nil
}

type borrower interface {
	Borrowed() bool
}

// resizableOwner returns dst as a Resizable when it owns its storage.
func resizableOwner[T DType](dst Writable[T]) (Resizable[T], bool) {
	r, ok := dst.(Resizable[T])
	if !ok {
		return nil, false
	}
	if b, ok := dst.(borrower); ok && b.Borrowed() {
		return nil, false
	}
	return r, true
}

// reconcileShapes validates src against dst and resizes a resizable dst that
// owns its storage. A source that must be evaluated before a resize is
// replaced by its value. Rank-0 sources broadcast and never resize.
func reconcileShapes[T DType](dst Writable[T], src *Expression[T]) error {
	ds, ss := dst.Shape(), (*src).Shape()
	if ss.Equal(ds) || len(ss) == 0 {
		return nil
	}
	if r, ok := resizableOwner(dst); ok {
		tmp, err := Eval(*src, RowMajor)
		if err != nil {
			return err
		}
		if err := r.Resize(ss); err != nil {
			return err
		}
		*src = tmp
		return nil
	}
	if !Broadcastable(ss, ds) {
		return shapeError("broadcast", ErrShapeMismatch, ss, ds, "source does not broadcast to destination")
	}
	return nil
}

// SelectStrategy returns the fastest strategy legal for dst and src, which
// must already have reconciled shapes.
func SelectStrategy[T DType](dst Writable[T], src Expression[T]) Strategy {
	switch {
	case canLinearAssign(dst, src):
		return StrategyLinear
	case canStridedAssign(dst, src):
		return StrategyStrided
	default:
		return StrategyStepper
	}
}

func checkStrategy[T DType](s Strategy, dst Writable[T], src Expression[T]) error {
	ok := true
	switch s {
	case StrategyLinear:
		ok = canLinearAssign(dst, src)
	case StrategyStrided:
		ok = canStridedAssign(dst, src)
	case StrategyStepper:
	default:
		return fmt.Errorf("%w: unknown strategy %d", ErrStrategyUnavailable, int(s))
	}
	if !ok {
		return fmt.Errorf("%w: %s for %v <- %v", ErrStrategyUnavailable, s, dst.Shape(), src.Shape())
	}
	return nil
}

func isScalar[T DType](e Expression[T]) bool {
	_, ok := e.(*ScalarExpr[T])
	return ok
}

// canLinearAssign: dst is dense and src reads in the same flat order.
func canLinearAssign[T DType](dst Writable[T], src Expression[T]) bool {
	sd, ok := dst.(StridedExpression[T])
	if !ok || sd.Traversal() != TraversalLinear {
		return false
	}
	if !isScalar(src) && !src.Shape().Equal(dst.Shape()) {
		return false
	}
	ls, ok := src.(linearSource[T])
	return ok && ls.hasLinearAssign(sd.Strides())
}

// canStridedAssign: both sides expose a data/strides pair over one shape.
func canStridedAssign[T DType](dst Writable[T], src Expression[T]) bool {
	if traversalOf[T](dst) == TraversalGeneric {
		return false
	}
	if isScalar(src) {
		return true
	}
	return traversalOf(src) != TraversalGeneric && src.Shape().Equal(dst.Shape())
}

func linearAssign[T DType](dst StridedExpression[T], src Expression[T]) {
	off := dst.DataOffset()
	out := dst.Data()[off : off+dst.Size()]
	switch s := src.(type) {
	case *ScalarExpr[T]:
		for i := range out {
			out[i] = s.value
		}
	case *Function[T]:
		s.linearEval(out)
	case StridedExpression[T]:
		so := s.DataOffset()
		copy(out, s.Data()[so:so+len(out)])
	default:
		ls := src.(linearSource[T])
		for i := range out {
			out[i] = ls.linearValue(i)
		}
	}
}

func stridedAssign[T DType](dst StridedExpression[T], src Expression[T]) {
	if s, ok := src.(*ScalarExpr[T]); ok {
		v := s.value
		stridedApply(dst.Data(), dst.DataOffset(), dst.Strides(), dst.Shape(), func(T) T { return v })
		return
	}
	ss := src.(StridedExpression[T])
	stridedCopy(dst.Data(), dst.DataOffset(), dst.Strides(), ss.Data(), ss.DataOffset(), ss.Strides(), dst.Shape())
}

// traversalLayout resolves the configured stepper order.
func traversalLayout[T DType](l Layout, dst Expression[T]) Layout {
	if l.Static() {
		return l
	}
	if dl := dst.Layout(); dl.Static() {
		return dl
	}
	return RowMajor
}

func stepperAssign[T DType](dst Writable[T], src Expression[T], layout Layout) {
	shape := dst.Shape()
	if shape.NumElements() == 0 {
		return
	}
	ds := dst.WritableStepper(shape)
	ss := src.Stepper(shape)
	odo := newOdometer(shape, layout)
	for {
		ds.Set(ss.Value())
		if !odo.next(ds, ss) {
			return
		}
	}
}

// Fill sets every element of dst to v, using the fastest traversal the
// destination alone allows.
func Fill[T DType](dst Writable[T], v T) error {
	return applyInPlace(dst, func(T) T { return v })
}

// applyInPlace replaces every element of dst with f of itself.
func applyInPlace[T DType](dst Writable[T], f func(T) T) error {
	if err := checkWritable(dst); err != nil {
		return fmt.Errorf("assign: %w", err)
	}
	sd, ok := dst.(StridedExpression[T])
	switch {
	case ok && sd.Traversal() == TraversalLinear:
		off := sd.DataOffset()
		out := sd.Data()[off : off+sd.Size()]
		for i := range out {
			out[i] = f(out[i])
		}
	case ok && sd.Traversal() == TraversalStrided:
		stridedApply(sd.Data(), sd.DataOffset(), sd.Strides(), sd.Shape(), f)
	default:
		shape := dst.Shape()
		if shape.NumElements() == 0 {
			return nil
		}
		ws := dst.WritableStepper(shape)
		odo := newOdometer(shape, traversalLayout[T](DynamicLayout, dst))
		for {
			ws.Set(f(ws.Value()))
			if !odo.next(ws) {
				return nil
			}
		}
	}
	return nil
}

// CompoundOp is an element-wise operator usable in compound assignment.
type CompoundOp int

// Compound assignment operators.
const (
	OpAdd CompoundOp = iota
	OpSub
	OpMul
	OpDiv
)

// String returns the operator name.
func (op CompoundOp) String() string {
	switch op {
	case OpAdd:
		return "add"
	case OpSub:
		return "sub"
	case OpMul:
		return "mul"
	case OpDiv:
		return "div"
	default:
		return "unknown"
	}
}

func compoundBuilder[T Numeric](op CompoundOp) func(a, b Expression[T]) (*Function[T], error) {
	switch op {
	case OpAdd:
		return Add[T]
	case OpSub:
		return Sub[T]
	case OpMul:
		return Mul[T]
	case OpDiv:
		return Div[T]
	default:
		return nil
	}
}

// CompoundAssignWith computes dst = dst op src lazily and assigns the result
// back to dst as configured. Set cfg.AliasSafe when src reads dst's buffer at
// positions other than the one being written, e.g. a reversed view of dst.
//
// Example:
//
//	cfg := tensor.DefaultAssignConfig()
//	cfg.AliasSafe = true
//	err := tensor.CompoundAssignWith[float64](a, rev, tensor.OpAdd, cfg)
func CompoundAssignWith[T Numeric](dst Writable[T], src Expression[T], op CompoundOp, cfg AssignConfig) error {
	name := op.String() + " assign"
	build := compoundBuilder[T](op)
	if build == nil {
		return fmt.Errorf("%s: unknown operator %d", name, int(op))
	}
	f, err := build(dst, src)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if err := AssignWith[T](dst, f, cfg); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// AddAssign computes dst += src.
func AddAssign[T Numeric](dst Writable[T], src Expression[T]) error {
	return CompoundAssignWith(dst, src, OpAdd, DefaultAssignConfig())
}

// SubAssign computes dst -= src.
func SubAssign[T Numeric](dst Writable[T], src Expression[T]) error {
	return CompoundAssignWith(dst, src, OpSub, DefaultAssignConfig())
}

// MulAssign computes dst *= src.
func MulAssign[T Numeric](dst Writable[T], src Expression[T]) error {
	return CompoundAssignWith(dst, src, OpMul, DefaultAssignConfig())
}

// DivAssign computes dst /= src.
func DivAssign[T Numeric](dst Writable[T], src Expression[T]) error {
	return CompoundAssignWith(dst, src, OpDiv, DefaultAssignConfig())
}

// AddScalar computes dst += v.
func AddScalar[T Numeric](dst Writable[T], v T) error {
	return applyInPlace(dst, func(x T) T { return x + v })
}

// SubScalar computes dst -= v.
func SubScalar[T Numeric](dst Writable[T], v T) error {
	return applyInPlace(dst, func(x T) T { return x - v })
}

// MulScalar computes dst *= v.
func MulScalar[T Numeric](dst Writable[T], v T) error {
	return applyInPlace(dst, func(x T) T { return x * v })
}

// DivScalar computes dst /= v.
func DivScalar[T Numeric](dst Writable[T], v T) error {
	return applyInPlace(dst, func(x T) T { return x / v })
}
