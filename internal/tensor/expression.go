package tensor

// Expression is anything that can be traversed with a stepper: containers,
// views, scalars, broadcasts and lazy element-wise functions.
type Expression[T DType] interface {
	// Shape returns the logical extents. Callers must not modify it.
	Shape() Shape
	// Dim returns the rank.
	Dim() int
	// Size returns the number of elements.
	Size() int
	// Layout returns the traversal order the data is dense in, or DynamicLayout.
	Layout() Layout
	// Stepper returns a cursor at the first element, broadcast to shape.
	// shape must be at least as long as Shape() and compatible with it.
	Stepper(shape Shape) Stepper[T]
	// StepperEnd returns a cursor one step past the last element in layout order.
	StepperEnd(shape Shape, layout Layout) Stepper[T]
}

// Writable is an expression whose elements can be assigned.
type Writable[T DType] interface {
	Expression[T]
	WritableStepper(shape Shape) WritableStepper[T]
}

// Resizable is a writable container that may adopt a new shape on assignment.
type Resizable[T DType] interface {
	Writable[T]
	Resize(shape Shape) error
}

// Traversal is the access strategy an expression supports, decided once when
// the expression is built.
type Traversal int

// Supported traversals, from fastest to slowest.
const (
	// TraversalLinear: elements occupy data[offset : offset+size] densely.
	TraversalLinear Traversal = iota
	// TraversalStrided: element idx sits at data[offset + Σ idx·strides].
	TraversalStrided
	// TraversalGeneric: only stepper traversal is legal.
	TraversalGeneric
)

// String returns a human-readable traversal name.
func (t Traversal) String() string {
	switch t {
	case TraversalLinear:
		return "linear"
	case TraversalStrided:
		return "strided"
	case TraversalGeneric:
		return "generic"
	default:
		return "unknown"
	}
}

// StridedExpression exposes its buffer through a data/offset/strides triple.
// Data, Strides and Backstrides are only meaningful when Traversal is not
// TraversalGeneric.
type StridedExpression[T DType] interface {
	Writable[T]
	Traversal() Traversal
	Data() []T
	DataOffset() int
	Strides() Strides
	Backstrides() Strides
}

// Indexable provides random access by multi-index with Offset semantics.
type Indexable[T DType] interface {
	Expression[T]
	Get(idx ...int) T
}

// linearSource is implemented by expressions that can be read in flat order
// against a destination's strides.
type linearSource[T DType] interface {
	// hasLinearAssign reports whether element i of the source, in flat order,
	// lands on element i of a dense destination with the given strides.
	hasLinearAssign(strides Strides) bool
	// linearValue returns the i-th element in flat order.
	linearValue(i int) T
}

// traversalOf returns the traversal of e, TraversalGeneric for non-strided
// expressions.
func traversalOf[T DType](e Expression[T]) Traversal {
	if s, ok := e.(StridedExpression[T]); ok {
		return s.Traversal()
	}
	return TraversalGeneric
}

// innerDim returns the axis that moves fastest in layout for a rank-n shape.
func innerDim(n int, layout Layout) int {
	if layout == ColumnMajor {
		return 0
	}
	return n - 1
}
