package mapper

import (
	"fmt"

	"shape-mapper/container"
)

//go:generate go tool stringer -type=AxisEnum -output=axis_string.go

type AxisEnum int

const (
	AxisUnknown AxisEnum = iota
	AxisRows
	AxisColumns

	// AxisTotal is a constant that represents the total number of axes defined
	AxisTotal = int(iota)
)

// MapAxis slices the grid along the chosen axis into vectors, applies fn to
// each slice in order, and collapses the results under the MapSimplify
// rules. Row slices carry the grid's column labels and vice versa; the
// outputs are labeled by the sliced axis. An unrecognized axis fails with
// an InvalidShapeError.
func MapAxis[T any](g *container.Grid[T], axis AxisEnum, fn Func[*container.Vector[T], any]) (*Result, error) {
	if g == nil {
		return nil, ErrNilContainer
	}

	if fn == nil {
		return nil, ErrNilFunc
	}

	var slices []*container.Vector[T]
	var labels []string

	switch axis {
	default:
		return nil, &container.InvalidShapeError{Reason: fmt.Sprintf("unknown axis %v", axis)}
	case AxisRows:
		slices = make([]*container.Vector[T], g.Rows())
		for r := range slices {
			slices[r] = g.Row(r)
		}

		labels = g.RowLabels()
	case AxisColumns:
		slices = make([]*container.Vector[T], g.Cols())
		for c := range slices {
			slices[c] = g.Column(c)
		}

		labels = g.ColLabels()
	}

	items := make([]any, len(slices))
	for i, s := range slices {
		r, err := fn(s)
		if err != nil {
			return nil, &ElementError{Index: i, Label: labelAt(labels, i), Err: err}
		}

		items[i] = r
	}

	list, err := container.NewList(items, labels)
	if err != nil {
		return nil, err
	}

	return collapse(list)
}
