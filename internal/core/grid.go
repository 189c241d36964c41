package core

// BoolGrid stores a 2D grid of flags in row-major order. Rows and columns may
// be zero, in which case the grid is empty.
type BoolGrid struct {
	Rows, Cols int
	data       []bool
}

// NewBoolGrid allocates a grid with the given dimensions, every flag false.
func NewBoolGrid(rows, cols int) *BoolGrid {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	return &BoolGrid{Rows: rows, Cols: cols, data: make([]bool, rows*cols)}
}

// Cells exposes the backing slice so callers can read values directly.
func (g *BoolGrid) Cells() []bool { return g.data }

// Index returns the linear slice index for (row, col).
func (g *BoolGrid) Index(row, col int) int { return row*g.Cols + col }

// InBounds reports whether (row, col) addresses a stored flag.
func (g *BoolGrid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

// Get returns the flag at (row, col).
func (g *BoolGrid) Get(row, col int) bool { return g.data[g.Index(row, col)] }

// Set stores v at (row, col).
func (g *BoolGrid) Set(row, col int, v bool) { g.data[g.Index(row, col)] = v }

// Count returns how many flags equal v.
func (g *BoolGrid) Count(v bool) int {
	n := 0
	for _, b := range g.data {
		if b == v {
			n++
		}
	}
	return n
}
