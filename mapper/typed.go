package mapper

import (
	"shape-mapper/container"
	"shape-mapper/shape"
)

// MapTyped applies fn to every element of src and checks each result
// against the declared template. The first non-conforming result fails the
// call with a TypeMismatchError; unlike MapSimplify there is no List
// fallback. A length-1 template yields a Vector, a length-k template a
// k x n Grid.
func MapTyped[T any](src *container.Vector[T], fn Func[T, any], tmpl shape.Template) (*Result, error) {
	if tmpl.Kind == shape.KindInvalid || tmpl.Length < 1 {
		return nil, ErrBadTemplate
	}

	mapped, err := Map(src, fn)
	if err != nil {
		return nil, err
	}

	list, err := container.NewList(mapped.Items(), mapped.Labels())
	if err != nil {
		return nil, err
	}

	descs := make([]shape.Descriptor, list.Len())
	for i := range descs {
		descs[i] = shape.Of(list.Value(i))
		if !tmpl.Matches(descs[i]) {
			return nil, &TypeMismatchError{Index: i, Expected: tmpl, Actual: descs[i]}
		}
	}

	if tmpl.Length == 1 {
		items := make([]any, list.Len())
		for i := range items {
			items[i] = scalarValue(list.Value(i), descs[i])
		}

		vec, err := container.NewLabeled(items, list.Labels())
		if err != nil {
			return nil, err
		}

		return &Result{Kind: ResultVector, Vector: vec}, nil
	}

	grid, err := assembleGrid(list)
	if err != nil {
		return nil, err
	}

	return &Result{Kind: ResultGrid, Grid: grid}, nil
}
