package maze

import (
	"fmt"
	"testing"

	"mazeball/pkg/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGridAllClosed(t *testing.T) {
	g := NewGrid(3, 4)
	assert.Equal(t, 3, g.Rows())
	assert.Equal(t, 4, g.Columns())
	assert.Zero(t, g.OpenGaps())
	assert.Equal(t, 3*3, g.ClosedVerticalGaps())
	assert.Equal(t, 2*4, g.ClosedHorizontalGaps())
	assert.False(t, g.AllVisited())
	for r := 0; r < 3; r++ {
		for c := 0; c < 4; c++ {
			assert.False(t, g.Visited(r, c))
		}
	}
}

func TestCarveSpanningTree(t *testing.T) {
	dims := [][2]int{{1, 1}, {1, 2}, {2, 1}, {1, 7}, {6, 1}, {2, 2}, {3, 3}, {5, 8}, {8, 12}, {17, 3}, {40, 40}}
	for _, d := range dims {
		for seed := int64(1); seed <= 5; seed++ {
			rows, cols := d[0], d[1]
			t.Run(fmt.Sprintf("%dx%d/seed%d", rows, cols, seed), func(t *testing.T) {
				g, sr, sc := Generate(rows, cols, core.NewRNG(seed))

				assert.True(t, g.AllVisited(), "every cell must be visited")
				assert.Equal(t, rows*cols-1, g.OpenGaps())

				cells, edges := Reachable(g, sr, sc)
				assert.Equal(t, rows*cols, cells)
				assert.Equal(t, rows*cols-1, edges)
				require.NoError(t, Validate(g))
			})
		}
	}
}

func TestCarveThreeByThreeFromCentre(t *testing.T) {
	g := NewGrid(3, 3)
	Carve(g, 1, 1, core.NewRNG(2024))

	assert.Equal(t, 8, g.OpenGaps())
	assert.True(t, g.AllVisited())
	cells, edges := Reachable(g, 1, 1)
	assert.Equal(t, 9, cells)
	assert.Equal(t, 8, edges, "no cycle: flood fill crosses exactly cells-1 gaps")
	assert.Equal(t, 12-8, g.ClosedVerticalGaps()+g.ClosedHorizontalGaps())
}

func TestCarveDeterministic(t *testing.T) {
	a := NewGrid(12, 9)
	b := NewGrid(12, 9)
	Carve(a, 4, 4, core.NewRNG(77))
	Carve(b, 4, 4, core.NewRNG(77))
	assert.True(t, a.Equal(b), "same seed must produce the same gap matrices")
	assert.Equal(t, a.String(), b.String())

	c := NewGrid(12, 9)
	Carve(c, 4, 4, core.NewRNG(78))
	assert.False(t, a.Equal(c), "different seeds should produce different mazes")
}

func TestCarveVisitedStartIsNoop(t *testing.T) {
	g := NewGrid(4, 4)
	rng := core.NewRNG(5)
	Carve(g, 0, 0, rng)
	before := NewGrid(4, 4)
	Carve(before, 0, 0, core.NewRNG(5))

	Carve(g, 2, 3, rng)
	assert.True(t, g.Equal(before), "carving from a visited cell must not change the grid")
}

// recursiveCarve is the textbook recursive formulation used as an oracle for
// the explicit-stack carver.
func recursiveCarve(g *Grid, row, col int, rng *core.RNG) {
	if g.Visited(row, col) {
		return
	}
	g.visited.Set(row, col, true)
	order := Directions
	rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
	for _, d := range order {
		nr, nc := d.Step(row, col)
		if !g.InBounds(nr, nc) || g.Visited(nr, nc) {
			continue
		}
		g.open(row, col, d)
		recursiveCarve(g, nr, nc, rng)
	}
}

func TestCarveMatchesRecursion(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		a := NewGrid(9, 13)
		b := NewGrid(9, 13)
		Carve(a, 3, 5, core.NewRNG(seed))
		recursiveCarve(b, 3, 5, core.NewRNG(seed))
		require.True(t, a.Equal(b), "seed %d: explicit stack diverged from recursion", seed)
	}
}

func TestCarveLongCorridorDepth(t *testing.T) {
	g := NewGrid(1, 20000)
	Carve(g, 0, 0, core.NewRNG(1))
	assert.Equal(t, 19999, g.OpenGaps())
	require.NoError(t, Validate(g))
}

func TestValidateDetectsBrokenMazes(t *testing.T) {
	g := NewGrid(2, 2)
	assert.ErrorIs(t, Validate(g), ErrUnvisited)

	g.visited.Set(0, 0, true)
	g.visited.Set(0, 1, true)
	g.visited.Set(1, 0, true)
	g.visited.Set(1, 1, true)
	g.open(0, 0, Right)
	g.open(0, 0, Down)
	assert.ErrorIs(t, Validate(g), ErrGapCount)

	g.open(0, 1, Down)
	g.open(1, 0, Right)
	assert.ErrorIs(t, Validate(g), ErrGapCount, "a cycle opens one gap too many")

	// A 2×3 grid with a cycle on the left and an island on the right has the
	// right number of gaps but is not connected.
	d := NewGrid(2, 3)
	for r := 0; r < 2; r++ {
		for c := 0; c < 3; c++ {
			d.visited.Set(r, c, true)
		}
	}
	d.open(0, 0, Right)
	d.open(0, 0, Down)
	d.open(0, 1, Down)
	d.open(1, 0, Right)
	d.open(0, 2, Down)
	assert.Equal(t, 5, d.OpenGaps())
	assert.ErrorIs(t, Validate(d), ErrDisconnected)
}

func TestPassable(t *testing.T) {
	g := NewGrid(2, 2)
	g.open(0, 0, Right)
	g.open(0, 1, Down)

	assert.True(t, g.Passable(0, 0, Right))
	assert.True(t, g.Passable(0, 1, Left))
	assert.True(t, g.Passable(0, 1, Down))
	assert.True(t, g.Passable(1, 1, Up))
	assert.False(t, g.Passable(0, 0, Down))
	assert.False(t, g.Passable(0, 0, Up), "stepping off the grid is never passable")
	assert.False(t, g.Passable(1, 1, Right))
}

func TestString(t *testing.T) {
	g := NewGrid(1, 1)
	Carve(g, 0, 0, core.NewRNG(1))
	assert.Equal(t, "+---+\n|   |\n+---+\n", g.String())

	g = NewGrid(1, 2)
	Carve(g, 0, 0, core.NewRNG(1))
	assert.Equal(t, "+---+---+\n|       |\n+---+---+\n", g.String())

	g = NewGrid(2, 1)
	Carve(g, 1, 0, core.NewRNG(1))
	assert.Equal(t, "+---+\n|   |\n+   +\n|   |\n+---+\n", g.String())
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "up", Up.String())
	assert.Equal(t, "down", Down.String())
	assert.Equal(t, "direction(9)", Direction(9).String())
}
