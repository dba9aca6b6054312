// Package main provides the ndview CLI.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/born-ml/ndview/tensor"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	var err error
	switch os.Args[1] {
	case "version":
		fmt.Printf("ndview %s\n", version)
	case "demo":
		err = demo()
	case "slice":
		if len(os.Args) != 4 {
			usage()
			os.Exit(2)
		}
		err = slice(os.Args[2], os.Args[3])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "ndview: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("ndview - lazy multidimensional array views for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version               Show version")
	fmt.Println("  demo                  Walk through views and assignment")
	fmt.Println("  slice SHAPE SLICES    View arange(SHAPE) through SLICES")
	fmt.Println("")
	fmt.Println("Example:")
	fmt.Println(`  ndview slice 3,4 "1, 1:"`)
}

// slice prints the view of an arange array of the given shape.
func slice(shapeArg, slicesArg string) error {
	shape, err := parseShape(shapeArg)
	if err != nil {
		return err
	}
	sl, err := tensor.ParseSlices(slicesArg)
	if err != nil {
		return err
	}
	a := tensor.Arange[int64](shape.NumElements())
	if err := a.Reshape(shape...); err != nil {
		return err
	}
	v, err := tensor.NewView[int64](a, sl...)
	if err != nil {
		return err
	}

	fmt.Printf("base:      %v\n", a.Shape())
	fmt.Printf("slices:    %v\n", v.Slices())
	fmt.Printf("shape:     %v\n", v.Shape())
	fmt.Printf("traversal: %s\n", v.Traversal())
	if v.Traversal() != tensor.TraversalGeneric {
		fmt.Printf("offset:    %d\n", v.DataOffset())
		fmt.Printf("strides:   %v\n", v.Strides())
	}
	fmt.Printf("elements:  %v\n", tensor.ToSlice[int64](v, tensor.RowMajor))
	return nil
}

func parseShape(s string) (tensor.Shape, error) {
	if strings.TrimSpace(s) == "" {
		return tensor.Shape{}, nil
	}
	fields := strings.Split(s, ",")
	shape := make(tensor.Shape, len(fields))
	for i, f := range fields {
		d, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("bad extent %q: %w", f, err)
		}
		shape[i] = d
	}
	return shape, shape.Validate()
}

func demo() error {
	a := tensor.Arange[float64](12).MustReshape(3, 4)
	fmt.Printf("a = %v\n", tensor.ToSlice[float64](a, tensor.RowMajor))

	row, err := tensor.NewView[float64](a, tensor.Index(1), tensor.Range(1, 4))
	if err != nil {
		return err
	}
	fmt.Printf("a[1, 1:4] = %v (%s)\n", tensor.ToSlice[float64](row, tensor.RowMajor), row.Traversal())

	src := tensor.Full[float64](tensor.Shape{3}, -1)
	fmt.Printf("strategy: %s\n", tensor.SelectStrategy[float64](row, src))
	if err := tensor.Assign[float64](row, src); err != nil {
		return err
	}
	fmt.Printf("after a[1, 1:4] = -1: %v\n", a.Data())

	rev := tensor.MustView[float64](a, tensor.StepRange(tensor.Open, tensor.Open, -1), tensor.Keep(0, 3))
	fmt.Printf("a[::-1, keep(0, 3)] = %v (%s)\n", tensor.ToSlice[float64](rev, tensor.RowMajor), rev.Traversal())

	col := tensor.MustView[float64](a, tensor.All(), tensor.Index(0), tensor.NewAxis())
	sum, err := tensor.Add[float64](col, tensor.Arange[float64](4))
	if err != nil {
		return err
	}
	fmt.Printf("a[:, 0, newaxis] + arange(4) = %v, shape %v\n", tensor.ToSlice[float64](sum, tensor.RowMajor), sum.Shape())
	return nil
}
