package maze

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

var (
	// ErrUnvisited is returned when the carve left a cell untouched.
	ErrUnvisited = errors.New("maze: unvisited cell")
	// ErrGapCount is returned when the number of open gaps is not R·C−1.
	ErrGapCount = errors.New("maze: open gap count is not cells-1")
	// ErrDisconnected is returned when some cell cannot be reached over open gaps.
	ErrDisconnected = errors.New("maze: cells unreachable from origin")
)

type cell struct{ row, col int }

// Reachable flood-fills over open gaps from (row, col) and returns how many
// cells it reaches and how many gaps it crossed to get there.
func Reachable(g *Grid, row, col int) (cells, edges int) {
	if !g.InBounds(row, col) {
		return 0, 0
	}
	seen := mapset.New[cell]()
	seen.Put(cell{row, col})
	queue := []cell{{row, col}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range Directions {
			if !g.Passable(cur.row, cur.col, d) {
				continue
			}
			nr, nc := d.Step(cur.row, cur.col)
			next := cell{nr, nc}
			if seen.Has(next) {
				continue
			}
			seen.Put(next)
			edges++
			queue = append(queue, next)
		}
	}
	return seen.Size(), edges
}

// Validate checks that the open gaps form a spanning tree of the grid: every
// cell visited, exactly R·C−1 gaps open and every cell reachable from (0,0).
// A connected graph with V−1 edges has no cycles.
func Validate(g *Grid) error {
	total := g.rows * g.cols
	if unvisited := g.visited.Count(false); unvisited > 0 {
		return fmt.Errorf("%w: %d of %d cells", ErrUnvisited, unvisited, total)
	}
	if open := g.OpenGaps(); open != total-1 {
		return fmt.Errorf("%w: %d open, want %d", ErrGapCount, open, total-1)
	}
	if reached, _ := Reachable(g, 0, 0); reached != total {
		return fmt.Errorf("%w: reached %d of %d", ErrDisconnected, reached, total)
	}
	return nil
}
