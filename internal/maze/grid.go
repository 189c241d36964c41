// Package maze holds the cell grid of a rectangular maze and the randomized
// depth-first carver that opens passages between its cells.
package maze

import "mazeball/internal/core"

// Grid is an R×C cell grid plus the two gap matrices between adjacent cells.
// A true gap is an open passage; a false gap is a wall.
type Grid struct {
	rows, cols int

	visited *core.BoolGrid
	// verticals[r][c] opens cell(r,c) to cell(r,c+1); rows × (cols-1).
	verticals *core.BoolGrid
	// horizontals[r][c] opens cell(r,c) to cell(r+1,c); (rows-1) × cols.
	horizontals *core.BoolGrid
}

// NewGrid allocates a grid of unvisited cells with every gap closed. The
// dimensions are trusted to be positive.
func NewGrid(rows, cols int) *Grid {
	return &Grid{
		rows:        rows,
		cols:        cols,
		visited:     core.NewBoolGrid(rows, cols),
		verticals:   core.NewBoolGrid(rows, cols-1),
		horizontals: core.NewBoolGrid(rows-1, cols),
	}
}

// Rows returns the number of cell rows.
func (g *Grid) Rows() int { return g.rows }

// Columns returns the number of cell columns.
func (g *Grid) Columns() int { return g.cols }

// InBounds reports whether (row, col) is a cell of the grid.
func (g *Grid) InBounds(row, col int) bool { return g.visited.InBounds(row, col) }

// Visited reports whether the carver has stepped onto the cell.
func (g *Grid) Visited(row, col int) bool { return g.visited.Get(row, col) }

// VerticalGap reports whether cell(row,col) and cell(row,col+1) are connected.
func (g *Grid) VerticalGap(row, col int) bool { return g.verticals.Get(row, col) }

// HorizontalGap reports whether cell(row,col) and cell(row+1,col) are connected.
func (g *Grid) HorizontalGap(row, col int) bool { return g.horizontals.Get(row, col) }

// Passable reports whether a step from (row, col) in direction d stays inside
// the grid and crosses an open gap.
func (g *Grid) Passable(row, col int, d Direction) bool {
	nr, nc := d.Step(row, col)
	if !g.InBounds(row, col) || !g.InBounds(nr, nc) {
		return false
	}
	switch d {
	case Left:
		return g.VerticalGap(row, nc)
	case Right:
		return g.VerticalGap(row, col)
	case Up:
		return g.HorizontalGap(nr, col)
	default:
		return g.HorizontalGap(row, col)
	}
}

// AllVisited reports whether every cell has been visited.
func (g *Grid) AllVisited() bool { return g.visited.Count(false) == 0 }

// OpenGaps returns the number of open vertical plus horizontal gaps.
func (g *Grid) OpenGaps() int {
	return g.verticals.Count(true) + g.horizontals.Count(true)
}

// ClosedVerticalGaps returns the number of walls between horizontally adjacent cells.
func (g *Grid) ClosedVerticalGaps() int { return g.verticals.Count(false) }

// ClosedHorizontalGaps returns the number of walls between vertically adjacent cells.
func (g *Grid) ClosedHorizontalGaps() int { return g.horizontals.Count(false) }

// EachVerticalGap calls fn for every vertical gap in row-major order.
func (g *Grid) EachVerticalGap(fn func(row, col int, open bool)) {
	for r := 0; r < g.verticals.Rows; r++ {
		for c := 0; c < g.verticals.Cols; c++ {
			fn(r, c, g.verticals.Get(r, c))
		}
	}
}

// EachHorizontalGap calls fn for every horizontal gap in row-major order.
func (g *Grid) EachHorizontalGap(fn func(row, col int, open bool)) {
	for r := 0; r < g.horizontals.Rows; r++ {
		for c := 0; c < g.horizontals.Cols; c++ {
			fn(r, c, g.horizontals.Get(r, c))
		}
	}
}

// Equal reports whether two grids have the same dimensions and gap matrices.
func (g *Grid) Equal(o *Grid) bool {
	if g.rows != o.rows || g.cols != o.cols {
		return false
	}
	for i, v := range g.verticals.Cells() {
		if o.verticals.Cells()[i] != v {
			return false
		}
	}
	for i, v := range g.horizontals.Cells() {
		if o.horizontals.Cells()[i] != v {
			return false
		}
	}
	return true
}

// open connects cell(row,col) with its neighbour in direction d.
func (g *Grid) open(row, col int, d Direction) {
	switch d {
	case Left:
		g.verticals.Set(row, col-1, true)
	case Right:
		g.verticals.Set(row, col, true)
	case Up:
		g.horizontals.Set(row-1, col, true)
	case Down:
		g.horizontals.Set(row, col, true)
	}
}
