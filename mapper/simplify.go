package mapper

import (
	"shape-mapper/container"
	"shape-mapper/shape"
)

//go:generate go tool stringer -type=ResultEnum -output=result_string.go

type ResultEnum int

const (
	ResultUnknown ResultEnum = iota
	ResultList
	ResultVector
	ResultGrid

	// ResultTotal is a constant that represents the total number of result kinds defined
	ResultTotal = int(iota)
)

// Result is the tagged union the simplifying mappers produce. Kind selects
// which of the three fields is set; the other two are nil.
type Result struct {
	Kind   ResultEnum
	List   *container.List
	Vector *container.Vector[any]
	Grid   *container.Grid[any]
}

// Len returns the number of per-element results, regardless of Kind.
func (r *Result) Len() int {
	switch r.Kind {
	case ResultList:
		return r.List.Len()
	case ResultVector:
		return r.Vector.Len()
	case ResultGrid:
		return r.Grid.Cols()
	default:
		return 0
	}
}

// MapSimplify applies fn to every element of src and collapses the results
// when they share a shape: all scalars of one kind become a Vector, all
// equal-length vectors become a Grid with one column per element. Anything
// else stays a plain List. Length-1 vector results count as scalars.
func MapSimplify[T any](src *container.Vector[T], fn Func[T, any]) (*Result, error) {
	mapped, err := Map(src, fn)
	if err != nil {
		return nil, err
	}

	list, err := container.NewList(mapped.Items(), mapped.Labels())
	if err != nil {
		return nil, err
	}

	return collapse(list)
}

// collapse applies the simplification rules to an already-collected list.
func collapse(list *container.List) (*Result, error) {
	n := list.Len()
	if n == 0 {
		return &Result{Kind: ResultList, List: list}, nil
	}

	descs := make([]shape.Descriptor, n)
	for i := range descs {
		descs[i] = shape.Of(list.Value(i))
	}

	if kind, ok := commonScalarKind(descs); ok && kind != shape.KindInvalid {
		items := make([]any, n)
		for i := range items {
			items[i] = scalarValue(list.Value(i), descs[i])
		}

		vec, err := container.NewLabeled(items, list.Labels())
		if err != nil {
			return nil, err
		}

		return &Result{Kind: ResultVector, Vector: vec}, nil
	}

	if _, ok := commonVectorLength(descs); ok {
		grid, err := assembleGrid(list)
		if err != nil {
			return nil, err
		}

		return &Result{Kind: ResultGrid, Grid: grid}, nil
	}

	return &Result{Kind: ResultList, List: list}, nil
}

// commonScalarKind reports the single kind shared by all scalar-like
// results, or false when any result is not scalar-like or kinds differ.
func commonScalarKind(descs []shape.Descriptor) (shape.KindEnum, bool) {
	kind := descs[0].Kind

	for _, d := range descs {
		if !d.IsScalarLike() || d.Kind != kind {
			return shape.KindInvalid, false
		}
	}

	return kind, true
}

// commonVectorLength reports the single length k > 1 shared by all vector
// results, or false otherwise.
func commonVectorLength(descs []shape.Descriptor) (int, bool) {
	k := descs[0].Length
	if k <= 1 {
		return 0, false
	}

	for _, d := range descs {
		if d.Shape != shape.ShapeVector || d.Length != k {
			return 0, false
		}
	}

	return k, true
}

// scalarValue unwraps a length-1 vector result into its sole element.
func scalarValue(v any, d shape.Descriptor) any {
	if d.Shape == shape.ShapeVector {
		return shape.Elements(v)[0]
	}

	return v
}

// assembleGrid turns a list of equal-length vector results into a k x n
// grid: column j holds result j. Row labels come from the first result's
// inner labels, column labels from the list's own labels.
func assembleGrid(list *container.List) (*container.Grid[any], error) {
	cols := make([][]any, list.Len())
	for j := range cols {
		cols[j] = shape.Elements(list.Value(j))
	}

	grid, err := container.FromColumns(cols)
	if err != nil {
		return nil, err
	}

	if err := grid.SetRowLabels(shape.InnerLabels(list.Value(0))); err != nil {
		return nil, err
	}

	if err := grid.SetColLabels(list.Labels()); err != nil {
		return nil, err
	}

	return grid, nil
}
