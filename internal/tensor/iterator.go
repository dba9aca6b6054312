package tensor

import "iter"

// cursor is the motion part of Stepper, independent of the element type.
type cursor interface {
	Step(dim int)
	StepBack(dim int)
	Reset(dim int)
	ResetBack(dim int)
	ToEnd(layout Layout)
	ToBegin()
}

// odometer is the multi-dimensional counter driving steppers: the fastest
// axis increments until it exhausts, then resets and carries into the next.
type odometer struct {
	shape  Shape
	index  []int
	layout Layout
}

func newOdometer(shape Shape, layout Layout) *odometer {
	if !layout.Static() {
		layout = RowMajor
	}
	return &odometer{shape: shape, index: make([]int, len(shape)), layout: layout}
}

// toEnd sets the index to the past-the-end state and moves cursors there.
func (o *odometer) toEnd(cs ...cursor) {
	for i, d := range o.shape {
		o.index[i] = d - 1
	}
	if n := len(o.shape); n > 0 {
		inner := innerDim(n, o.layout)
		o.index[inner] = o.shape[inner]
	}
	for _, c := range cs {
		c.ToEnd(o.layout)
	}
}

// next advances to the following element. When the last element is passed,
// the cursors are moved to the end position and next returns false.
func (o *odometer) next(cs ...cursor) bool {
	n := len(o.shape)
	advance := func(i int) bool {
		if o.index[i] != o.shape[i]-1 {
			o.index[i]++
			for _, c := range cs {
				c.Step(i)
			}
			return true
		}
		o.index[i] = 0
		for _, c := range cs {
			c.Reset(i)
		}
		return false
	}

	if o.layout == ColumnMajor {
		for i := 0; i < n; i++ {
			if advance(i) {
				return true
			}
		}
	} else {
		for i := n - 1; i >= 0; i-- {
			if advance(i) {
				return true
			}
		}
	}
	o.toEnd(cs...)
	return false
}

// prev moves to the preceding element. From the end position it lands on
// the last element.
func (o *odometer) prev(cs ...cursor) {
	n := len(o.shape)
	if n == 0 {
		for _, c := range cs {
			c.ToBegin()
		}
		return
	}
	retreat := func(i int) bool {
		if o.index[i] != 0 {
			o.index[i]--
			for _, c := range cs {
				c.StepBack(i)
			}
			return true
		}
		o.index[i] = o.shape[i] - 1
		for _, c := range cs {
			c.ResetBack(i)
		}
		return false
	}

	if o.layout == ColumnMajor {
		for i := 0; i < n; i++ {
			if retreat(i) {
				return
			}
		}
	} else {
		for i := n - 1; i >= 0; i-- {
			if retreat(i) {
				return
			}
		}
	}
}

// Iterator walks an expression in row- or column-major order, independent
// of the expression's own layout.
type Iterator[T DType] struct {
	stepper Stepper[T]
	odo     *odometer
	pos     int
	size    int
}

// Begin returns an iterator at the first element of e in layout order.
func Begin[T DType](e Expression[T], layout Layout) *Iterator[T] {
	return newIterator(e.Stepper(e.Shape()), e.Shape(), layout)
}

// End returns an iterator one step past the last element of e.
func End[T DType](e Expression[T], layout Layout) *Iterator[T] {
	it := newIterator(e.Stepper(e.Shape()), e.Shape(), layout)
	it.toEnd()
	return it
}

// BeginWritable returns an iterator whose Set stores into e.
func BeginWritable[T DType](e Writable[T], layout Layout) *Iterator[T] {
	return newIterator[T](e.WritableStepper(e.Shape()), e.Shape(), layout)
}

func newIterator[T DType](s Stepper[T], shape Shape, layout Layout) *Iterator[T] {
	return &Iterator[T]{
		stepper: s,
		odo:     newOdometer(shape, layout),
		size:    shape.NumElements(),
	}
}

func (it *Iterator[T]) toEnd() {
	it.pos = it.size
	if it.size > 0 {
		it.odo.toEnd(it.stepper)
	}
}

// Done reports whether the iterator is past the last element.
func (it *Iterator[T]) Done() bool {
	return it.pos >= it.size
}

// Next advances to the next element. It is a no-op at the end.
func (it *Iterator[T]) Next() {
	if it.pos >= it.size {
		return
	}
	it.pos++
	if it.pos == it.size {
		it.toEnd()
		return
	}
	it.odo.next(it.stepper)
}

// Prev moves to the previous element. It is a no-op at the first element.
func (it *Iterator[T]) Prev() {
	if it.pos == 0 {
		return
	}
	it.pos--
	it.odo.prev(it.stepper)
}

// Value returns the current element. Calling it when Done is undefined.
func (it *Iterator[T]) Value() T {
	return it.stepper.Value()
}

// Set stores v at the current element. It panics if the iterator was not
// created over a writable expression.
func (it *Iterator[T]) Set(v T) {
	ws, ok := it.stepper.(WritableStepper[T])
	if !ok {
		panic(ErrReadOnly)
	}
	ws.Set(v)
}

// Index returns the current multi-index. The slice is owned by the iterator.
func (it *Iterator[T]) Index() []int {
	return it.odo.index
}

// Position returns the number of elements visited so far.
func (it *Iterator[T]) Position() int {
	return it.pos
}

// Equal reports whether both iterators are at the same position.
func (it *Iterator[T]) Equal(other *Iterator[T]) bool {
	return it.pos == other.pos
}

// ReverseIterator walks an expression from its last element to its first.
type ReverseIterator[T DType] struct {
	it   *Iterator[T]
	done bool
}

// RBegin returns a reverse iterator at the last element of e.
func RBegin[T DType](e Expression[T], layout Layout) *ReverseIterator[T] {
	it := End(e, layout)
	r := &ReverseIterator[T]{it: it, done: it.size == 0}
	it.Prev()
	return r
}

// REnd returns a reverse iterator one step before the first element of e.
func REnd[T DType](e Expression[T], layout Layout) *ReverseIterator[T] {
	return &ReverseIterator[T]{it: Begin(e, layout), done: true}
}

// Done reports whether the iterator has passed the first element.
func (r *ReverseIterator[T]) Done() bool {
	return r.done
}

// Next moves towards the first element.
func (r *ReverseIterator[T]) Next() {
	if r.done {
		return
	}
	if r.it.pos == 0 {
		r.done = true
		return
	}
	r.it.Prev()
}

// Value returns the current element.
func (r *ReverseIterator[T]) Value() T {
	return r.it.Value()
}

// Index returns the current multi-index.
func (r *ReverseIterator[T]) Index() []int {
	return r.it.Index()
}

// Elements yields every multi-index and element of e in layout order.
// The yielded index slice is owned by the iteration: don't change it.
func Elements[T DType](e Expression[T], layout Layout) iter.Seq2[[]int, T] {
	return func(yield func([]int, T) bool) {
		for it := Begin(e, layout); !it.Done(); it.Next() {
			if !yield(it.Index(), it.Value()) {
				return
			}
		}
	}
}

// Backward yields every multi-index and element of e in reverse layout order.
func Backward[T DType](e Expression[T], layout Layout) iter.Seq2[[]int, T] {
	return func(yield func([]int, T) bool) {
		for it := RBegin(e, layout); !it.Done(); it.Next() {
			if !yield(it.Index(), it.Value()) {
				return
			}
		}
	}
}
