package tensor

// UninitializedShape returns a shape of the given rank whose extents are all
// unset, ready to be grown by BroadcastShape.
func UninitializedShape(rank int) Shape {
	s := make(Shape, rank)
	for i := range s {
		s[i] = unsetExtent
	}
	return s
}

// BroadcastShape right-aligns input under output and grows output in place,
// following NumPy broadcasting rules.
//
// For each axis pair from the trailing end:
//   - an unset output extent adopts the input extent;
//   - an output extent of 1 adopts the input extent (non-trivial unless input is 1);
//   - an input extent of 1 leaves output unchanged (non-trivial);
//   - otherwise the extents must match.
//
// It returns whether the broadcast was the identity. Input with more axes
// than output cannot be broadcast.
func BroadcastShape(input, output Shape) (bool, error) {
	trivial := len(input) == len(output)
	if len(output) < len(input) {
		return false, shapeError("broadcast", ErrShapeMismatch, input, output,
			"cannot broadcast %d axes to %d", len(input), len(output))
	}

	o := len(output)
	for i := len(input); i > 0; i, o = i-1, o-1 {
		in := input[i-1]
		switch out := output[o-1]; {
		case out == unsetExtent:
			output[o-1] = in
		case out == 1:
			output[o-1] = in
			trivial = trivial && in == 1
		case in == 1:
			trivial = false
		case in != out:
			return false, shapeError("broadcast", ErrShapeMismatch, input, output,
				"axis %d: %d vs %d", o-1, in, out)
		}
	}
	return trivial, nil
}

// Broadcastable reports whether src can be broadcast to dst without growing dst.
func Broadcastable(src, dst Shape) bool {
	if len(dst) < len(src) {
		return false
	}
	off := len(dst) - len(src)
	for i, d := range src {
		if d != 1 && d != dst[off+i] {
			return false
		}
	}
	return true
}

// BroadcastShapes implements NumPy-style broadcasting of two shapes.
//
// Returns the broadcasted shape, a flag indicating if broadcasting is needed, and an error if incompatible.
//
// Examples:
//
//	(3, 1) + (3, 5) → (3, 5), true, nil
//	(3, 5) + (3, 5) → (3, 5), false, nil
//	(3, 4) + (3, 5) → nil, false, Error
func BroadcastShapes(a, b Shape) (Shape, bool, error) {
	out := UninitializedShape(max(len(a), len(b)))
	ta, err := BroadcastShape(a, out)
	if err != nil {
		return nil, false, err
	}
	tb, err := BroadcastShape(b, out)
	if err != nil {
		return nil, false, err
	}
	fillUnset(out)
	return out, !(ta && tb), nil
}

// fillUnset replaces extents no operand touched with 1.
func fillUnset(s Shape) {
	for i, d := range s {
		if d == unsetExtent {
			s[i] = 1
		}
	}
}
