package tensor

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrShapeMismatch       = errors.New("shape mismatch")
	ErrIndexOutOfRange     = errors.New("index out of range")
	ErrDimensionMismatch   = errors.New("dimension mismatch")
	ErrUnsupportedLayout   = errors.New("unsupported layout")
	ErrInvalidReshape      = errors.New("invalid reshape")
	ErrInvalidSlice        = errors.New("invalid slice")
	ErrStrategyUnavailable = errors.New("assignment strategy unavailable")
	ErrReadOnly            = errors.New("expression is not writable")
)

// ShapeError provides detailed information about shape and index failures.
type ShapeError struct {
	Op      string // Operation that failed (e.g., "broadcast", "at")
	Kind    error  // One of the sentinel errors above
	Got     []int  // Offending shape or index
	Want    []int  // Expected shape, if any
	Details string // Additional details
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	msg := fmt.Sprintf("%s: %v", e.Op, e.Kind)
	if e.Got != nil {
		msg += fmt.Sprintf(": got %v", e.Got)
	}
	if e.Want != nil {
		msg += fmt.Sprintf(", want %v", e.Want)
	}
	if e.Details != "" {
		msg += " (" + e.Details + ")"
	}
	return msg
}

// Unwrap returns the sentinel so callers can use errors.Is.
func (e *ShapeError) Unwrap() error {
	return e.Kind
}

func shapeError(op string, kind error, got, want []int, format string, args ...any) error {
	return &ShapeError{
		Op:      op,
		Kind:    kind,
		Got:     cloneInts(got),
		Want:    cloneInts(want),
		Details: fmt.Sprintf(format, args...),
	}
}

func cloneInts(s []int) []int {
	if s == nil {
		return nil
	}
	return append([]int{}, s...)
}

// must panics on err. Used by the Must* helpers.
func must[V any](v V, err error) V {
	if err != nil {
		panic(err)
	}
	return v
}
