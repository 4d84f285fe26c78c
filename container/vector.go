// Package container holds the labeled ordered value types the mappers
// operate on: Vector (homogeneous), List (heterogeneous) and Grid
// (rectangular 2-D).
package container

import "errors"

var ErrLabelCount = errors.New("label count does not match element count")

// Sequence is the read-only view of an ordered, optionally labeled container.
// Vector and List both satisfy it; the multi-container mapper accepts any
// mix of implementations.
type Sequence interface {
	Len() int
	Value(i int) any
	Labels() []string // nil when the container is unlabeled
}

// Vector is an ordered sequence of values of one type, optionally paired
// with labels of equal count. Labels need not be unique.
type Vector[T any] struct {
	items  []T
	labels []string
}

// New creates an unlabeled Vector from the given items.
func New[T any](items ...T) *Vector[T] {
	return &Vector[T]{items: append([]T(nil), items...)}
}

// NewLabeled creates a Vector with the given labels. A nil labels slice
// produces an unlabeled vector; otherwise the counts must match.
func NewLabeled[T any](items []T, labels []string) (*Vector[T], error) {
	if labels != nil && len(labels) != len(items) {
		return nil, ErrLabelCount
	}

	return &Vector[T]{
		items:  append([]T(nil), items...),
		labels: append([]string(nil), labels...),
	}, nil
}

func (v *Vector[T]) Len() int { return len(v.items) }

// At returns the i-th element.
func (v *Vector[T]) At(i int) T { return v.items[i] }

// Value returns the i-th element as any, satisfying Sequence.
func (v *Vector[T]) Value(i int) any { return v.items[i] }

// Items returns a copy of the underlying elements.
func (v *Vector[T]) Items() []T { return append([]T(nil), v.items...) }

// Labels returns the label slice, or nil for an unlabeled vector.
// Callers must not modify the returned slice.
func (v *Vector[T]) Labels() []string { return v.labels }

// Label returns the i-th label, or "" when the vector is unlabeled.
func (v *Vector[T]) Label(i int) string {
	if v.labels == nil {
		return ""
	}

	return v.labels[i]
}

// ByLabel returns the first element carrying the given label.
func (v *Vector[T]) ByLabel(label string) (T, bool) {
	for i, l := range v.labels {
		if l == label {
			return v.items[i], true
		}
	}

	var zero T
	return zero, false
}
