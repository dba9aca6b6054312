package tensor

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// SliceKind identifies a slice variant.
type SliceKind int

// Slice kinds.
const (
	SliceAll SliceKind = iota
	SliceRange
	SliceIndex
	SliceNewAxis
	SliceKeep
	SliceDrop
	SliceEllipsis
)

// String returns the slice kind name.
func (k SliceKind) String() string {
	switch k {
	case SliceAll:
		return "all"
	case SliceRange:
		return "range"
	case SliceIndex:
		return "index"
	case SliceNewAxis:
		return "newaxis"
	case SliceKeep:
		return "keep"
	case SliceDrop:
		return "drop"
	case SliceEllipsis:
		return "ellipsis"
	default:
		return "unknown"
	}
}

// Open marks an absent range bound, like an empty side of NumPy's "a:b".
const Open = math.MinInt

// Slice describes how one axis of a base expression is selected.
// Build it with All, Range, StepRange, Index, NewAxis, Keep, Drop or Ellipsis.
type Slice struct {
	kind    SliceKind
	start   int
	stop    int
	step    int
	indices []int
}

// All selects the whole axis.
func All() Slice { return Slice{kind: SliceAll, step: 1} }

// Range selects [start, stop) with unit step. Negative bounds count from the end.
func Range(start, stop int) Slice { return StepRange(start, stop, 1) }

// StepRange selects start, start+step, ... up to but excluding stop.
// step may be negative for reverse views; use Open for absent bounds.
func StepRange(start, stop, step int) Slice {
	return Slice{kind: SliceRange, start: start, stop: stop, step: step}
}

// Index selects a single position and removes the axis.
func Index(i int) Slice { return Slice{kind: SliceIndex, start: i} }

// NewAxis inserts an axis of extent 1 that has no base axis.
func NewAxis() Slice { return Slice{kind: SliceNewAxis} }

// Keep selects the listed positions in the given order.
func Keep(idx ...int) Slice {
	return Slice{kind: SliceKeep, indices: slices.Clone(idx)}
}

// Drop selects every position except the listed ones, in ascending order.
func Drop(idx ...int) Slice {
	return Slice{kind: SliceDrop, indices: slices.Clone(idx)}
}

// Ellipsis stands for as many All slices as needed to cover the base rank.
func Ellipsis() Slice { return Slice{kind: SliceEllipsis} }

// Kind returns the slice variant.
func (s Slice) Kind() SliceKind { return s.kind }

// Affine reports whether the slice maps positions with a single stride.
func (s Slice) Affine() bool {
	return s.kind != SliceKeep && s.kind != SliceDrop
}

// consumesAxis reports whether the slice is applied to a base axis.
func (s Slice) consumesAxis() bool {
	return s.kind != SliceNewAxis && s.kind != SliceEllipsis
}

// String formats the slice in NumPy syntax.
func (s Slice) String() string {
	bound := func(v int) string {
		if v == Open {
			return ""
		}
		return fmt.Sprint(v)
	}
	switch s.kind {
	case SliceAll:
		return ":"
	case SliceRange:
		if s.step == 1 {
			return bound(s.start) + ":" + bound(s.stop)
		}
		return bound(s.start) + ":" + bound(s.stop) + ":" + fmt.Sprint(s.step)
	case SliceIndex:
		return fmt.Sprint(s.start)
	case SliceNewAxis:
		return "newaxis"
	case SliceKeep, SliceDrop:
		parts := make([]string, len(s.indices))
		for i, v := range s.indices {
			parts[i] = fmt.Sprint(v)
		}
		return s.kind.String() + "(" + strings.Join(parts, ", ") + ")"
	case SliceEllipsis:
		return "..."
	default:
		return "?"
	}
}

// axisMap is a slice resolved against one base axis of a known extent.
// Position i of the derived axis lands on base position pos(i).
type axisMap struct {
	kind  SliceKind
	size  int
	start int
	step  int
	table []int // keep/drop only
}

// resolve normalizes s against a base axis of extent n.
func (s Slice) resolve(axis, n int) (axisMap, error) {
	switch s.kind {
	case SliceAll:
		return axisMap{kind: SliceAll, size: n, step: 1}, nil
	case SliceRange:
		if s.step == 0 {
			return axisMap{}, shapeError("view", ErrInvalidSlice, nil, nil, "axis %d: zero range step", axis)
		}
		start, stop := normalizeRange(s.start, s.stop, s.step, n)
		return axisMap{kind: SliceRange, size: rangeSize(start, stop, s.step), start: start, step: s.step}, nil
	case SliceIndex:
		i := s.start
		if i < 0 {
			i += n
		}
		if i < 0 || i >= n {
			return axisMap{}, shapeError("view", ErrIndexOutOfRange, []int{s.start}, []int{n},
				"index %d out of bounds for axis %d (size %d)", s.start, axis, n)
		}
		return axisMap{kind: SliceIndex, size: 1, start: i, step: 1}, nil
	case SliceKeep:
		table := make([]int, len(s.indices))
		for j, v := range s.indices {
			w, err := wrapIndex(v, axis, n)
			if err != nil {
				return axisMap{}, err
			}
			table[j] = w
		}
		return axisMap{kind: SliceKeep, size: len(table), table: table}, nil
	case SliceDrop:
		dropped := make([]bool, n)
		for _, v := range s.indices {
			w, err := wrapIndex(v, axis, n)
			if err != nil {
				return axisMap{}, err
			}
			dropped[w] = true
		}
		table := make([]int, 0, n)
		for j, d := range dropped {
			if !d {
				table = append(table, j)
			}
		}
		return axisMap{kind: SliceDrop, size: len(table), table: table}, nil
	default:
		return axisMap{}, shapeError("view", ErrInvalidSlice, nil, nil, "%s does not select a base axis", s.kind)
	}
}

func wrapIndex(v, axis, n int) (int, error) {
	w := v
	if w < 0 {
		w += n
	}
	if w < 0 || w >= n {
		return 0, shapeError("view", ErrIndexOutOfRange, []int{v}, []int{n},
			"index %d out of bounds for axis %d (size %d)", v, axis, n)
	}
	return w, nil
}

// normalizeRange resolves open and negative bounds. With a positive step the
// bounds are clamped to [0, n]; with a negative step to [-1, n-1], where -1
// means "before the first element".
func normalizeRange(start, stop, step, n int) (int, int) {
	lo, hi := 0, n
	if step < 0 {
		lo, hi = -1, n-1
	}
	clamp := func(v int) int { return min(max(v, lo), hi) }

	switch {
	case start == Open && step > 0:
		start = 0
	case start == Open:
		start = n - 1
	case start < 0:
		start = clamp(start + n)
	default:
		start = clamp(start)
	}
	switch {
	case stop == Open && step > 0:
		stop = n
	case stop == Open:
		stop = -1
	case stop < 0:
		stop = clamp(stop + n)
	default:
		stop = clamp(stop)
	}
	return start, stop
}

// rangeSize is ceil((stop-start)/step), 0 when the range is empty.
func rangeSize(start, stop, step int) int {
	d := stop - start
	size := d / step
	if (d < 0) != (step > 0) && d%step != 0 {
		size++
	}
	return max(size, 0)
}

// pos returns the base position of derived position i. Positions outside
// [0, size) extrapolate so cursors may park one step past either end.
func (m axisMap) pos(i int) int {
	if m.table == nil {
		return m.start + i*m.step
	}
	switch {
	case len(m.table) == 0:
		return i
	case i < 0:
		return m.table[0] + i
	case i >= len(m.table):
		return m.table[len(m.table)-1] + i - len(m.table) + 1
	default:
		return m.table[i]
	}
}

// contains reports whether base position p is selected.
func (m axisMap) contains(p int) bool {
	if m.table != nil {
		return slices.Contains(m.table, p)
	}
	if m.size == 0 {
		return false
	}
	d := p - m.start
	if d%m.step != 0 {
		return false
	}
	i := d / m.step
	return i >= 0 && i < m.size
}

// unitStep reports whether the slice walks its base axis densely forward.
func (m axisMap) unitStep() bool {
	return m.table == nil && m.step == 1
}
