package shape

import (
	"fmt"
	"reflect"

	"shape-mapper/container"
)

//go:generate go tool stringer -type=ShapeEnum -output=shape_string.go

type ShapeEnum int

const (
	ShapeUnknown ShapeEnum = iota
	ShapeScalar
	ShapeVector
	ShapeIrregular

	// ShapeTotal is a constant that represents the total number of shapes defined
	ShapeTotal = int(iota)
)

// Descriptor describes the observed shape of one mapped result: a scalar,
// a vector of uniformly kinded scalars, or anything else (irregular).
type Descriptor struct {
	Shape  ShapeEnum
	Kind   KindEnum // element kind; KindInvalid when irregular
	Length int      // 1 for scalars
}

func (d Descriptor) String() string {
	switch d.Shape {
	case ShapeScalar:
		return d.Kind.String()
	case ShapeVector:
		return fmt.Sprintf("%s[%d]", d.Kind, d.Length)
	default:
		return d.Shape.String()
	}
}

// IsScalarLike reports whether the descriptor counts as a scalar for
// simplification: a true scalar or a length-1 vector.
func (d Descriptor) IsScalarLike() bool {
	return d.Shape == ShapeScalar || (d.Shape == ShapeVector && d.Length == 1)
}

// Of computes the Descriptor of a single value. Labeled containers
// (anything satisfying container.Sequence) and plain slices or arrays of
// uniform scalar kind classify as vectors; recognizable scalars as scalars;
// everything else as irregular.
func Of(v any) Descriptor {
	if seq, ok := v.(container.Sequence); ok {
		return ofElements(Elements(seq))
	}

	if k := KindOf(v); k != KindInvalid {
		return Descriptor{Shape: ShapeScalar, Kind: k, Length: 1}
	}

	if v != nil {
		rv := reflect.ValueOf(v)
		if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
			return ofElements(Elements(v))
		}
	}

	return Descriptor{Shape: ShapeIrregular}
}

// Elements extracts the element values of a vector-shaped result. It
// returns nil when v is neither a container.Sequence nor a slice or array.
func Elements(v any) []any {
	if seq, ok := v.(container.Sequence); ok {
		elems := make([]any, seq.Len())
		for i := range elems {
			elems[i] = seq.Value(i)
		}

		return elems
	}

	if v == nil {
		return nil
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil
	}

	elems := make([]any, rv.Len())
	for i := range elems {
		elems[i] = rv.Index(i).Interface()
	}

	return elems
}

// InnerLabels returns the labels a vector-shaped result carries internally,
// or nil when it has none.
func InnerLabels(v any) []string {
	if seq, ok := v.(container.Sequence); ok {
		return seq.Labels()
	}

	return nil
}

func ofElements(elems []any) Descriptor {
	if len(elems) == 0 {
		return Descriptor{Shape: ShapeVector, Kind: KindInvalid, Length: 0}
	}

	kind := KindOf(elems[0])
	if kind == KindInvalid {
		return Descriptor{Shape: ShapeIrregular}
	}

	for _, e := range elems[1:] {
		if KindOf(e) != kind {
			return Descriptor{Shape: ShapeIrregular}
		}
	}

	return Descriptor{Shape: ShapeVector, Kind: kind, Length: len(elems)}
}
