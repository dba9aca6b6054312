// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides lazy multidimensional array views for Go.
//
// # Overview
//
// The package is built around a small set of concepts:
//   - Arrays (Array[T]) owning or adapting a flat buffer with shape and strides
//   - Expressions (Expression[T]) that can be traversed with a stepper
//   - Views (View[T], StridedView[T]) reslicing a base without copying
//   - NumPy-style broadcasting for lazy element-wise functions
//   - An assignment dispatcher picking the fastest legal copy strategy
//
// # Basic Usage
//
//	import "github.com/born-ml/ndview/tensor"
//
//	func main() {
//	    a := tensor.Arange[float64](12).MustReshape(3, 4)
//
//	    // Row 1, columns 1..3
//	    v := tensor.MustView[float64](a, tensor.Index(1), tensor.Range(1, 4))
//
//	    // Writes go through to a
//	    _ = tensor.Fill[float64](v, -1)
//	}
//
// # Slices
//
// Each axis of a view is selected by a Slice:
//
//	tensor.All()                      // ":"
//	tensor.Range(1, 4)                // "1:4"
//	tensor.StepRange(tensor.Open, tensor.Open, -1) // "::-1"
//	tensor.Index(2)                   // "2", removes the axis
//	tensor.NewAxis()                  // inserts an extent-1 axis
//	tensor.Ellipsis()                 // "...", as many All as needed
//	tensor.Keep(0, 2), tensor.Drop(1) // explicit index lists
//
// Slice lists can also be parsed at run time:
//
//	sl, err := tensor.ParseSlices("1:, ::2, newaxis")
//
// Views built only from affine slices over a strided base keep raw
// data/offset/strides access. Keep and Drop force generic stepper traversal.
//
// # Broadcasting
//
// Element-wise functions follow NumPy broadcasting rules:
//
//	a := tensor.Zeros[float32](tensor.Shape{3, 1})   // (3, 1)
//	b := tensor.Zeros[float32](tensor.Shape{4})      // (4)
//	c, err := tensor.Add[float32](a, b)               // (3, 4), lazy
//
// # Assignment
//
// Assign copies any expression into a writable destination using the
// linear, strided or stepper strategy, whichever is the fastest legal one.
// AssignWith forces a strategy through AssignConfig.
//
// # Supported Data Types
//
// The DType constraint covers float32, float64, int32, int64, uint8 and bool.
// Arithmetic is restricted to the Numeric subset.
package tensor
