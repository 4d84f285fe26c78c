package container

// List is an ordered sequence of arbitrarily shaped values, optionally
// labeled. It is the fallback result of the simplifying mappers when the
// per-element outputs have no common shape.
type List struct {
	items  []any
	labels []string
}

// NewList creates a List. A nil labels slice produces an unlabeled list;
// otherwise the counts must match.
func NewList(items []any, labels []string) (*List, error) {
	if labels != nil && len(labels) != len(items) {
		return nil, ErrLabelCount
	}

	return &List{
		items:  append([]any(nil), items...),
		labels: append([]string(nil), labels...),
	}, nil
}

func (l *List) Len() int { return len(l.items) }

func (l *List) Value(i int) any { return l.items[i] }

// Labels returns the label slice, or nil for an unlabeled list.
// Callers must not modify the returned slice.
func (l *List) Labels() []string { return l.labels }

// Label returns the i-th label, or "" when the list is unlabeled.
func (l *List) Label(i int) string {
	if l.labels == nil {
		return ""
	}

	return l.labels[i]
}

// ByLabel returns the first value carrying the given label.
func (l *List) ByLabel(label string) (any, bool) {
	for i, lb := range l.labels {
		if lb == label {
			return l.items[i], true
		}
	}

	return nil, false
}
