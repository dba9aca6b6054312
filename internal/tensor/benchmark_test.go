package tensor

import (
	"fmt"
	"testing"
)

func BenchmarkShapeOperations(b *testing.B) {
	shape1 := Shape{100, 100}
	shape2 := Shape{1, 100}

	b.Run("NumElements", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = shape1.NumElements()
		}
	})

	b.Run("ComputeStrides", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _, _ = ComputeStrides(shape1, RowMajor)
		}
	})

	b.Run("BroadcastShapes", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _, _ = BroadcastShapes(shape1, shape2)
		}
	})

	b.Run("UnravelIndex", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = UnravelIndex(i%10000, shape1, RowMajor)
		}
	})
}

func BenchmarkAssignStrategies(b *testing.B) {
	sizes := []int{64, 256, 1024}

	for _, n := range sizes {
		src := Arange[float32](n * n).MustReshape(n, n)
		dst := Zeros[float32](Shape{n, n})

		for _, s := range []Strategy{StrategyLinear, StrategyStrided, StrategyStepper} {
			cfg := DefaultAssignConfig()
			cfg.Strategy = s
			b.Run(fmt.Sprintf("%s_%dx%d", s, n, n), func(b *testing.B) {
				b.SetBytes(int64(n * n * 4))
				for i := 0; i < b.N; i++ {
					if err := AssignWith[float32](dst, src, cfg); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

func BenchmarkAssignViews(b *testing.B) {
	a := Arange[float64](512 * 512).MustReshape(512, 512)
	dst := Zeros[float64](Shape{256, 256})

	views := map[string]*View[float64]{
		"linear":  MustView[float64](a, Range(0, 256), Range(0, 256)),
		"stepped": MustView[float64](a, StepRange(Open, Open, 2), StepRange(Open, Open, 2)),
		"reverse": MustView[float64](a, StepRange(255, Open, -1), StepRange(255, Open, -1)),
		"keep":    MustView[float64](a, Range(0, 256), Keep(evenIndices(256)...)),
	}

	for name, v := range views {
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if err := Assign[float64](dst, v); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkAssignBroadcast(b *testing.B) {
	row := Arange[float32](1000)
	dst := Zeros[float32](Shape{1000, 1000})

	b.Run("Row", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = Assign[float32](dst, row)
		}
	})

	b.Run("Scalar", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = Fill[float32](dst, 1)
		}
	})

	b.Run("AddAssign", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = AddAssign[float32](dst, row)
		}
	})
}

func BenchmarkIteration(b *testing.B) {
	a := Arange[float64](100 * 100).MustReshape(100, 100)
	tr := must(Transpose[float64](a))

	for _, layout := range []Layout{RowMajor, ColumnMajor} {
		for name, e := range map[string]Expression[float64]{"Array": a, "Transpose": tr} {
			b.Run(name+"_"+layout.String(), func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					var s float64
					for it := Begin(e, layout); !it.Done(); it.Next() {
						s += it.Value()
					}
					_ = s
				}
			})
		}
	}
}

func BenchmarkParseSlices(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = ParseSlices("1:4, ::-2, newaxis, ..., keep(0, 2, 5)")
	}
}

func evenIndices(n int) []int {
	out := make([]int, 0, n)
	for i := 0; i < 2*n; i += 2 {
		out = append(out, i)
	}
	return out
}
