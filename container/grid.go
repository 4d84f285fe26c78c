package container

import "fmt"

// InvalidShapeError reports a container whose shape cannot be worked with:
// ragged row input, mismatched label counts on a grid axis, or an unknown
// axis selector.
type InvalidShapeError struct {
	Reason string
}

func (e *InvalidShapeError) Error() string { return "invalid shape: " + e.Reason }

// Grid is a rectangular 2-D array with optional row and column labels.
// The rectangular invariant is enforced at construction; a Grid can never
// hold ragged data.
type Grid[T any] struct {
	rows, cols int
	cells      []T // row-major
	rowLabels  []string
	colLabels  []string
}

// FromRows builds a Grid from row slices. All rows must have equal length.
func FromRows[T any](rows [][]T) (*Grid[T], error) {
	g := &Grid[T]{rows: len(rows)}
	if len(rows) == 0 {
		return g, nil
	}

	g.cols = len(rows[0])
	g.cells = make([]T, 0, g.rows*g.cols)

	for r, row := range rows {
		if len(row) != g.cols {
			return nil, &InvalidShapeError{
				Reason: fmt.Sprintf("row %d has length %d, want %d", r, len(row), g.cols),
			}
		}

		g.cells = append(g.cells, row...)
	}

	return g, nil
}

// FromColumns builds a Grid from column slices. All columns must have
// equal length.
func FromColumns[T any](cols [][]T) (*Grid[T], error) {
	g := &Grid[T]{cols: len(cols)}
	if len(cols) == 0 {
		return g, nil
	}

	g.rows = len(cols[0])
	g.cells = make([]T, g.rows*g.cols)

	for c, col := range cols {
		if len(col) != g.rows {
			return nil, &InvalidShapeError{
				Reason: fmt.Sprintf("column %d has length %d, want %d", c, len(col), g.rows),
			}
		}

		for r, v := range col {
			g.cells[r*g.cols+c] = v
		}
	}

	return g, nil
}

func (g *Grid[T]) Rows() int { return g.rows }

func (g *Grid[T]) Cols() int { return g.cols }

// At returns the cell at row r, column c.
func (g *Grid[T]) At(r, c int) T { return g.cells[r*g.cols+c] }

// Row returns row r as a Vector labeled with the grid's column labels.
func (g *Grid[T]) Row(r int) *Vector[T] {
	items := make([]T, g.cols)
	for c := range items {
		items[c] = g.cells[r*g.cols+c]
	}

	return &Vector[T]{items: items, labels: g.colLabels}
}

// Column returns column c as a Vector labeled with the grid's row labels.
func (g *Grid[T]) Column(c int) *Vector[T] {
	items := make([]T, g.rows)
	for r := range items {
		items[r] = g.cells[r*g.cols+c]
	}

	return &Vector[T]{items: items, labels: g.rowLabels}
}

// SetRowLabels labels the rows. A nil slice clears the labels.
func (g *Grid[T]) SetRowLabels(labels []string) error {
	if labels != nil && len(labels) != g.rows {
		return &InvalidShapeError{
			Reason: fmt.Sprintf("%d row labels for %d rows", len(labels), g.rows),
		}
	}

	g.rowLabels = append([]string(nil), labels...)
	return nil
}

// SetColLabels labels the columns. A nil slice clears the labels.
func (g *Grid[T]) SetColLabels(labels []string) error {
	if labels != nil && len(labels) != g.cols {
		return &InvalidShapeError{
			Reason: fmt.Sprintf("%d column labels for %d columns", len(labels), g.cols),
		}
	}

	g.colLabels = append([]string(nil), labels...)
	return nil
}

// RowLabels returns the row labels, or nil when unlabeled.
func (g *Grid[T]) RowLabels() []string { return g.rowLabels }

// ColLabels returns the column labels, or nil when unlabeled.
func (g *Grid[T]) ColLabels() []string { return g.colLabels }
