package tensor

import (
	"strconv"
	"strings"
)

// ParseSlices parses a NumPy-style slice list such as "1, ::2, ..., newaxis".
//
// Accepted items: an integer, "start:stop[:step]" with any part empty,
// ":", "...", "newaxis" (or "None"), "keep(i, j, ...)" and "drop(i, j, ...)".
// An empty string yields an empty list.
func ParseSlices(src string) ([]Slice, error) {
	items, err := splitSliceList(src)
	if err != nil {
		return nil, err
	}
	out := make([]Slice, 0, len(items))
	for _, item := range items {
		s, err := parseSlice(item)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// MustParseSlices is ParseSlices that panics on error.
func MustParseSlices(src string) []Slice {
	return must(ParseSlices(src))
}

// splitSliceList splits on top-level commas.
func splitSliceList(src string) ([]string, error) {
	if strings.TrimSpace(src) == "" {
		return nil, nil
	}
	var items []string
	depth, last := 0, 0
	for i, r := range src {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return nil, parseError(src, "unbalanced ')'")
			}
		case ',':
			if depth == 0 {
				items = append(items, strings.TrimSpace(src[last:i]))
				last = i + 1
			}
		}
	}
	if depth != 0 {
		return nil, parseError(src, "unbalanced '('")
	}
	return append(items, strings.TrimSpace(src[last:])), nil
}

func parseSlice(item string) (Slice, error) {
	switch {
	case item == "":
		return Slice{}, parseError(item, "empty slice")
	case item == "...":
		return Ellipsis(), nil
	case item == "newaxis" || item == "None":
		return NewAxis(), nil
	case item == ":":
		return All(), nil
	case strings.HasPrefix(item, "keep(") && strings.HasSuffix(item, ")"):
		idx, err := parseIndexList(item[len("keep(") : len(item)-1])
		if err != nil {
			return Slice{}, err
		}
		return Keep(idx...), nil
	case strings.HasPrefix(item, "drop(") && strings.HasSuffix(item, ")"):
		idx, err := parseIndexList(item[len("drop(") : len(item)-1])
		if err != nil {
			return Slice{}, err
		}
		return Drop(idx...), nil
	case strings.Contains(item, ":"):
		return parseRange(item)
	default:
		i, err := strconv.Atoi(item)
		if err != nil {
			return Slice{}, parseError(item, "not an index")
		}
		return Index(i), nil
	}
}

func parseRange(item string) (Slice, error) {
	parts := strings.Split(item, ":")
	if len(parts) > 3 {
		return Slice{}, parseError(item, "too many ':'")
	}
	bounds := [3]int{Open, Open, 1}
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.Atoi(p)
		if err != nil {
			return Slice{}, parseError(item, "bad range bound "+strconv.Quote(p))
		}
		bounds[i] = v
	}
	if bounds[2] == 0 {
		return Slice{}, parseError(item, "zero step")
	}
	return StepRange(bounds[0], bounds[1], bounds[2]), nil
}

func parseIndexList(src string) ([]int, error) {
	if strings.TrimSpace(src) == "" {
		return []int{}, nil
	}
	fields := strings.Split(src, ",")
	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, parseError(src, "bad index "+strconv.Quote(f))
		}
		out[i] = v
	}
	return out, nil
}

func parseError(src, details string) error {
	return &ShapeError{Op: "parse slices", Kind: ErrInvalidSlice, Details: strconv.Quote(src) + ": " + details}
}
