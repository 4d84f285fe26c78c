package shape

import "fmt"

// Template declares the shape every mapped result must satisfy under the
// typed mapper: an element kind and a fixed length. Length 1 means scalar.
type Template struct {
	Kind   KindEnum
	Length int
}

// Scalar declares a length-1 template of the given kind.
func Scalar(kind KindEnum) Template {
	return Template{Kind: kind, Length: 1}
}

// VectorOf declares a fixed-length vector template of the given kind.
func VectorOf(kind KindEnum, length int) Template {
	return Template{Kind: kind, Length: length}
}

func (t Template) String() string {
	if t.Length == 1 {
		return t.Kind.String()
	}

	return fmt.Sprintf("%s[%d]", t.Kind, t.Length)
}

// Matches reports whether an observed result shape conforms to the
// template. A length-1 template accepts a bare scalar or a one-element
// vector of the declared kind.
func (t Template) Matches(d Descriptor) bool {
	if d.Kind != t.Kind {
		return false
	}

	if t.Length == 1 {
		return d.IsScalarLike()
	}

	return d.Shape == ShapeVector && d.Length == t.Length
}
