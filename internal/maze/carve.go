package maze

import "mazeball/pkg/core"

// frame is one level of the carve: a cell, its shuffled neighbours and the
// index of the next neighbour to try.
type frame struct {
	row, col int
	next     int
	order    [4]Direction
}

// Carve runs a randomized depth-first traversal from (startRow, startCol),
// opening a gap each time it steps into an unvisited neighbour. Neighbours
// are shuffled on first entry to a cell and each neighbour's subtree is
// finished before the next one is tried, so the result is the same spanning
// tree native recursion would produce for the same RNG sequence. A visited
// start cell is a no-op.
func Carve(g *Grid, startRow, startCol int, rng *core.RNG) {
	if g.visited.Get(startRow, startCol) {
		return
	}
	stack := make([]frame, 0, g.rows*g.cols)
	stack = append(stack, enter(g, startRow, startCol, rng))

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.order) {
			stack = stack[:len(stack)-1]
			continue
		}
		d := top.order[top.next]
		top.next++

		nr, nc := d.Step(top.row, top.col)
		if !g.InBounds(nr, nc) || g.visited.Get(nr, nc) {
			continue
		}
		g.open(top.row, top.col, d)
		// top is invalid once append grows the stack.
		stack = append(stack, enter(g, nr, nc, rng))
	}
}

// enter marks a cell visited and shuffles its candidate neighbours.
func enter(g *Grid, row, col int, rng *core.RNG) frame {
	g.visited.Set(row, col, true)
	f := frame{row: row, col: col, order: Directions}
	rng.Shuffle(len(f.order), func(i, j int) { f.order[i], f.order[j] = f.order[j], f.order[i] })
	return f
}

// RandomStart picks a start cell uniformly from the grid.
func RandomStart(g *Grid, rng *core.RNG) (row, col int) {
	return rng.IntN(g.rows), rng.IntN(g.cols)
}

// Generate allocates a rows×cols grid and carves it from a random start cell.
func Generate(rows, cols int, rng *core.RNG) (g *Grid, startRow, startCol int) {
	g = NewGrid(rows, cols)
	startRow, startCol = RandomStart(g, rng)
	Carve(g, startRow, startCol, rng)
	return g, startRow, startCol
}
