package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// positions lists the base positions selected by m.
func positions(m axisMap) []int {
	out := make([]int, m.size)
	for i := range out {
		out[i] = m.pos(i)
	}
	return out
}

func TestSliceResolve(t *testing.T) {
	tests := []struct {
		name  string
		slice Slice
		n     int
		want  []int
	}{
		{"all", All(), 4, []int{0, 1, 2, 3}},
		{"range", Range(1, 4), 5, []int{1, 2, 3}},
		{"open stop", Range(2, Open), 5, []int{2, 3, 4}},
		{"open start", Range(Open, 2), 5, []int{0, 1}},
		{"negative bounds", Range(-3, -1), 5, []int{2, 3}},
		{"clamped", Range(-10, 10), 3, []int{0, 1, 2}},
		{"empty", Range(3, 1), 5, []int{}},
		{"stepped", StepRange(0, 7, 3), 7, []int{0, 3, 6}},
		{"stepped ceil", StepRange(1, 6, 2), 7, []int{1, 3, 5}},
		{"reverse open", StepRange(Open, Open, -1), 4, []int{3, 2, 1, 0}},
		{"reverse", StepRange(-1, -4, -1), 5, []int{4, 3, 2}},
		{"reverse stepped", StepRange(Open, Open, -2), 5, []int{4, 2, 0}},
		{"reverse to start", StepRange(3, Open, -1), 5, []int{3, 2, 1, 0}},
		{"reverse empty", StepRange(1, 3, -1), 5, []int{}},
		{"keep", Keep(3, 0, -1), 5, []int{3, 0, 4}},
		{"drop", Drop(1, -1), 5, []int{0, 2, 3}},
		{"drop nothing", Drop(), 3, []int{0, 1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := tt.slice.resolve(0, tt.n)
			require.NoError(t, err)
			assert.Equal(t, tt.want, positions(m))
			for _, p := range tt.want {
				assert.True(t, m.contains(p), "contains %d", p)
			}
		})
	}
}

func TestSliceResolveErrors(t *testing.T) {
	_, err := Index(5).resolve(0, 5)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = Index(-6).resolve(0, 5)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = Keep(0, 7).resolve(0, 5)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = StepRange(0, 3, 0).resolve(0, 5)
	assert.ErrorIs(t, err, ErrInvalidSlice)

	m, err := Index(-1).resolve(0, 5)
	require.NoError(t, err)
	assert.Equal(t, 4, m.start)
}

func TestRangeSize(t *testing.T) {
	assert.Equal(t, 3, rangeSize(0, 3, 1))
	assert.Equal(t, 2, rangeSize(0, 3, 2))
	assert.Equal(t, 0, rangeSize(3, 0, 1))
	assert.Equal(t, 3, rangeSize(4, 1, -1))
	assert.Equal(t, 2, rangeSize(4, 1, -2))
	assert.Equal(t, 0, rangeSize(1, 4, -1))
}

func TestAxisMapContains(t *testing.T) {
	m, err := StepRange(1, 8, 3).resolve(0, 10)
	require.NoError(t, err)
	assert.True(t, m.contains(4))
	assert.False(t, m.contains(5))
	assert.False(t, m.contains(10))

	k, err := Keep(2, 5).resolve(0, 6)
	require.NoError(t, err)
	assert.True(t, k.contains(5))
	assert.False(t, k.contains(3))
}

func TestAxisMapExtrapolates(t *testing.T) {
	k, err := Keep(1, 3).resolve(0, 5)
	require.NoError(t, err)
	assert.Equal(t, 4, k.pos(2), "one past the end")
	assert.Equal(t, 0, k.pos(-1), "one before the start")
}

func TestKeepDropComplement(t *testing.T) {
	const n = 7
	sets := [][]int{{0}, {1, 3, 5}, {0, 6}, {2, 3, 4, 5}, {}}
	for _, set := range sets {
		in := make(map[int]bool)
		for _, i := range set {
			in[i] = true
		}
		var complement []int
		for i := 0; i < n; i++ {
			if !in[i] {
				complement = append(complement, i)
			}
		}

		kept, err := Keep(set...).resolve(0, n)
		require.NoError(t, err)
		dropped, err := Drop(complement...).resolve(0, n)
		require.NoError(t, err)
		assert.Equal(t, positions(kept), positions(dropped), "set %v", set)
	}
}

func TestSliceString(t *testing.T) {
	assert.Equal(t, ":", All().String())
	assert.Equal(t, "1:4", Range(1, 4).String())
	assert.Equal(t, "::-1", StepRange(Open, Open, -1).String())
	assert.Equal(t, "2", Index(2).String())
	assert.Equal(t, "newaxis", NewAxis().String())
	assert.Equal(t, "keep(1, 2)", Keep(1, 2).String())
	assert.Equal(t, "drop(0)", Drop(0).String())
	assert.Equal(t, "...", Ellipsis().String())
	assert.False(t, Keep(1).Affine())
	assert.True(t, StepRange(0, 4, 2).Affine())
}

func TestParseSlices(t *testing.T) {
	tests := []struct {
		src  string
		want []Slice
	}{
		{"", []Slice{}},
		{"1, ::2, ..., newaxis", []Slice{Index(1), StepRange(Open, Open, 2), Ellipsis(), NewAxis()}},
		{":, 1:4, -1", []Slice{All(), Range(1, 4), Index(-1)}},
		{"::-1, None", []Slice{StepRange(Open, Open, -1), NewAxis()}},
		{"keep(0, 2), drop(1)", []Slice{Keep(0, 2), Drop(1)}},
		{"2:", []Slice{Range(2, Open)}},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			got, err := ParseSlices(tt.src)
			require.NoError(t, err)
			require.Len(t, got, len(tt.want))
			for i := range got {
				assert.Equal(t, tt.want[i].String(), got[i].String())
				assert.Equal(t, tt.want[i].Kind(), got[i].Kind())
			}
		})
	}
}

func TestParseSlicesErrors(t *testing.T) {
	for _, src := range []string{"1,,2", "a", "1:2:3:4", "::0", "keep(1,", "keep(x)", "1)"} {
		_, err := ParseSlices(src)
		assert.ErrorIs(t, err, ErrInvalidSlice, "source %q", src)
	}
	assert.Panics(t, func() { MustParseSlices("?") })
}
