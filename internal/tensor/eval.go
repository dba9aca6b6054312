package tensor

import (
	"fmt"
	"math"
)

// Eval materializes e into a new array in the given layout.
// DynamicLayout evaluates in row-major order.
func Eval[T DType](e Expression[T], layout Layout) (*Array[T], error) {
	if !layout.Static() {
		layout = RowMajor
	}
	out, err := NewArray[T](e.Shape(), layout)
	if err != nil {
		return nil, fmt.Errorf("eval: %w", err)
	}
	cfg := DefaultAssignConfig()
	cfg.Layout = layout
	if err := AssignWith[T](out, e, cfg); err != nil {
		return nil, fmt.Errorf("eval: %w", err)
	}
	return out, nil
}

// MustEval is Eval that panics on error.
func MustEval[T DType](e Expression[T], layout Layout) *Array[T] {
	return must(Eval(e, layout))
}

// ToSlice returns the elements of e in layout order.
func ToSlice[T DType](e Expression[T], layout Layout) []T {
	out := make([]T, 0, e.Size())
	for it := Begin(e, layout); !it.Done(); it.Next() {
		out = append(out, it.Value())
	}
	return out
}

// Equal reports whether a and b have the same shape and elements.
func Equal[T DType](a, b Expression[T]) bool {
	if !a.Shape().Equal(b.Shape()) {
		return false
	}
	ia, ib := Begin(a, RowMajor), Begin(b, RowMajor)
	for ; !ia.Done(); ia.Next() {
		if ia.Value() != ib.Value() {
			return false
		}
		ib.Next()
	}
	return true
}

// AllClose reports whether a and b have the same shape and every pair of
// elements satisfies |a-b| <= atol + rtol*|b|. NaNs compare unequal.
func AllClose[T Numeric](a, b Expression[T], rtol, atol float64) bool {
	if !a.Shape().Equal(b.Shape()) {
		return false
	}
	ia, ib := Begin(a, RowMajor), Begin(b, RowMajor)
	for ; !ia.Done(); ia.Next() {
		x, y := float64(ia.Value()), float64(ib.Value())
		if math.IsNaN(x) || math.IsNaN(y) || math.Abs(x-y) > atol+rtol*math.Abs(y) {
			return false
		}
		ib.Next()
	}
	return true
}

// Reduce folds every element of e in row-major order, starting from init.
func Reduce[T DType, A any](e Expression[T], init A, f func(A, T) A) A {
	acc := init
	for it := Begin(e, RowMajor); !it.Done(); it.Next() {
		acc = f(acc, it.Value())
	}
	return acc
}

// Sum returns the sum of every element of e.
func Sum[T Numeric](e Expression[T]) T {
	return Reduce(e, T(0), func(acc, v T) T { return acc + v })
}
