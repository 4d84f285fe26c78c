package mapper

import (
	"fmt"

	"shape-mapper/container"
	"shape-mapper/diagnostic"
	"shape-mapper/utils"
)

// MultiFunc transforms one aligned tuple of elements, passed positionally
// in container order.
type MultiFunc func(args ...any) (any, error)

// WarnRecycling is the diagnostic code emitted when a shorter container is
// recycled and the longest length is not an exact multiple of its length.
const WarnRecycling = "recycling-length"

// MapMulti applies fn across N containers element-wise. Shorter containers
// are recycled cyclically to the longest length; any empty container makes
// the output empty. Labels come from the first labeled container, recycled
// with it. With simplify set, results collapse under the MapSimplify rules.
// Recycling over a non-divisor length is permitted and surfaced as a
// warning in the returned diagnostics.
func MapMulti(seqs []container.Sequence, fn MultiFunc, simplify bool) (*Result, *diagnostic.Diagnostics, error) {
	diags := &diagnostic.Diagnostics{}

	if len(seqs) == 0 {
		return nil, diags, ErrNoContainers
	}

	for _, s := range seqs {
		if s == nil {
			return nil, diags, ErrNilContainer
		}
	}

	if fn == nil {
		return nil, diags, ErrNilFunc
	}

	length := utils.MaxBy(seqs, container.Sequence.Len)
	for _, s := range seqs {
		if s.Len() == 0 {
			length = 0
		}
	}

	for i, s := range seqs {
		if 0 < s.Len() && s.Len() < length && length%s.Len() != 0 {
			diags.AddWarning(WarnRecycling,
				fmt.Sprintf("container %d has length %d, not a divisor of %d", i, s.Len(), length), i)
		}
	}

	labels := recycledLabels(seqs, length)

	items := make([]any, length)
	args := make([]any, len(seqs))

	for i := 0; i < length; i++ {
		for j, s := range seqs {
			args[j] = s.Value(i % s.Len())
		}

		r, err := fn(args...)
		if err != nil {
			return nil, diags, &ElementError{Index: i, Label: labelAt(labels, i), Err: err}
		}

		items[i] = r
	}

	list, err := container.NewList(items, labels)
	if err != nil {
		return nil, diags, err
	}

	if !simplify {
		return &Result{Kind: ResultList, List: list}, diags, nil
	}

	res, err := collapse(list)
	return res, diags, err
}

// recycledLabels builds the output labels from the first labeled container,
// repeating them cyclically alongside its values.
func recycledLabels(seqs []container.Sequence, length int) []string {
	for _, s := range seqs {
		src := s.Labels()
		if src == nil {
			continue
		}

		labels := make([]string, length)
		for i := range labels {
			labels[i] = src[i%len(src)]
		}

		return labels
	}

	return nil
}

func labelAt(labels []string, i int) string {
	if labels == nil {
		return ""
	}

	return labels[i]
}
