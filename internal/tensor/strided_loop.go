package tensor

import "sort"

// loopPlan is a nested loop over two strided operands sharing a shape.
// Axes are ordered outer to inner, the innermost having the smallest
// destination stride, and adjacent axes that walk both operands as one
// wider axis are fused.
type loopPlan struct {
	shape Shape
	dst   Strides
	src   Strides
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// planLoop drops extent-1 axes, orders the rest by decreasing absolute
// stride and collapses fusable neighbours.
func planLoop(shape Shape, dst, src Strides) loopPlan {
	axes := make([]int, 0, len(shape))
	for i, d := range shape {
		if d != 1 {
			axes = append(axes, i)
		}
	}
	sort.SliceStable(axes, func(a, b int) bool {
		da, db := abs(dst[axes[a]]), abs(dst[axes[b]])
		if da != db {
			return da > db
		}
		return abs(src[axes[a]]) > abs(src[axes[b]])
	})

	p := loopPlan{}
	for _, ax := range axes {
		n := len(p.shape)
		if n > 0 {
			// Previous (outer) axis absorbs this one when both strides nest.
			if p.dst[n-1] == dst[ax]*shape[ax] && p.src[n-1] == src[ax]*shape[ax] {
				p.shape[n-1] *= shape[ax]
				p.dst[n-1] = dst[ax]
				p.src[n-1] = src[ax]
				continue
			}
		}
		p.shape = append(p.shape, shape[ax])
		p.dst = append(p.dst, dst[ax])
		p.src = append(p.src, src[ax])
	}
	return p
}

// run calls body once per innermost run with the starting offsets, the run
// length and the inner strides of both operands.
func (p loopPlan) run(dstOff, srcOff int, body func(d, s, n, ds, ss int)) {
	if p.shape.NumElements() == 0 {
		return
	}
	rank := len(p.shape)
	if rank == 0 {
		body(dstOff, srcOff, 1, 0, 0)
		return
	}
	inner := rank - 1
	outer := p.shape[:inner]
	idx := make([]int, inner)
	for {
		body(dstOff, srcOff, p.shape[inner], p.dst[inner], p.src[inner])

		i := inner - 1
		for ; i >= 0; i-- {
			if idx[i] < outer[i]-1 {
				idx[i]++
				dstOff += p.dst[i]
				srcOff += p.src[i]
				break
			}
			idx[i] = 0
			dstOff -= p.dst[i] * (outer[i] - 1)
			srcOff -= p.src[i] * (outer[i] - 1)
		}
		if i < 0 {
			return
		}
	}
}

// stridedCopy copies src into dst over a shared shape.
func stridedCopy[T DType](dst []T, dstOff int, dstStrides Strides, src []T, srcOff int, srcStrides Strides, shape Shape) {
	planLoop(shape, dstStrides, srcStrides).run(dstOff, srcOff, func(d, s, n, ds, ss int) {
		if ds == 1 && ss == 1 {
			copy(dst[d:d+n], src[s:s+n])
			return
		}
		for k := 0; k < n; k++ {
			dst[d] = src[s]
			d += ds
			s += ss
		}
	})
}

// stridedApply replaces every element of a strided region with f of itself.
func stridedApply[T DType](data []T, off int, strides Strides, shape Shape, f func(T) T) {
	planLoop(shape, strides, strides).run(off, off, func(d, _, n, ds, _ int) {
		for k := 0; k < n; k++ {
			data[d] = f(data[d])
			d += ds
		}
	})
}
