package geometry

import (
	"testing"

	"mazeball/internal/maze"
	"mazeball/pkg/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslateWallCount(t *testing.T) {
	for seed := int64(1); seed <= 8; seed++ {
		g, _, _ := maze.Generate(8, 12, core.NewRNG(seed))
		l := Translate(g, 80, 60, Options{})

		want := g.ClosedVerticalGaps() + g.ClosedHorizontalGaps()
		require.Len(t, l.Walls, want, "seed %d", seed)
		for _, w := range l.Walls {
			assert.Equal(t, RoleWall, w.Role)
			assert.True(t, w.Static)
		}
	}
}

func TestTranslateClosedGridEmitsEveryWall(t *testing.T) {
	g := maze.NewGrid(3, 4)
	l := Translate(g, 10, 10, Options{})
	assert.Len(t, l.Walls, 3*3+2*4)
}

func TestTranslateSkipsOpenGaps(t *testing.T) {
	g := maze.NewGrid(1, 2)
	maze.Carve(g, 0, 0, core.NewRNG(1))
	l := Translate(g, 50, 40, Options{})
	assert.Empty(t, l.Walls, "a carved 1×2 grid has no interior walls")
}

func TestDefaultWallThickness(t *testing.T) {
	g := maze.NewGrid(8, 12)
	l := Translate(g, 960.0/12, 640.0/8, Options{})
	assert.InDelta(t, 5.0, l.WallThickness, 1e-9)

	l = Translate(g, 80, 40, Options{})
	assert.InDelta(t, 2.5, l.WallThickness, 1e-9, "the smaller unit sets the thickness")
}

func TestTranslatePositions(t *testing.T) {
	g := maze.NewGrid(2, 2)
	l := Translate(g, 100, 50, Options{WallRatio: 0.1})

	assert.InDelta(t, 5.0, l.WallThickness, 1e-9)
	assert.Equal(t, 200.0, l.Width)
	assert.Equal(t, 100.0, l.Height)

	// Vertical gaps come first in row-major order, then horizontal gaps.
	require.Len(t, l.Walls, 4)
	v := l.Walls[0]
	assert.Equal(t, Descriptor{Role: RoleWall, Shape: Rect, CenterX: 100, CenterY: 25, Width: 5, Height: 50, Static: true}, v)
	v = l.Walls[1]
	assert.Equal(t, 100.0, v.CenterX)
	assert.Equal(t, 75.0, v.CenterY)

	h := l.Walls[2]
	assert.Equal(t, Descriptor{Role: RoleWall, Shape: Rect, CenterX: 50, CenterY: 50, Width: 100, Height: 5, Static: true}, h)
	h = l.Walls[3]
	assert.Equal(t, 150.0, h.CenterX)
}

func TestTranslateBallAndGoal(t *testing.T) {
	g := maze.NewGrid(8, 12)
	l := Translate(g, 80, 60, Options{})

	assert.Equal(t, RoleBall, l.Ball.Role)
	assert.Equal(t, Circle, l.Ball.Shape)
	assert.False(t, l.Ball.Static)
	assert.InDelta(t, 40.0, l.Ball.CenterX, 1e-9)
	assert.InDelta(t, 30.0, l.Ball.CenterY, 1e-9)
	assert.InDelta(t, 24.0, l.Ball.Radius, 1e-9)

	assert.Equal(t, RoleGoal, l.Goal.Role)
	assert.True(t, l.Goal.Static)
	assert.InDelta(t, 960-40.0, l.Goal.CenterX, 1e-9)
	assert.InDelta(t, 480-30.0, l.Goal.CenterY, 1e-9)
	assert.InDelta(t, 56.0, l.Goal.Width, 1e-9)
	assert.InDelta(t, 42.0, l.Goal.Height, 1e-9)
}

func TestDescriptorsOrder(t *testing.T) {
	g := maze.NewGrid(2, 2)
	l := Translate(g, 10, 10, Options{})
	all := l.Descriptors()
	require.Len(t, all, 4+4+2)
	for _, d := range all[:4] {
		assert.Equal(t, RoleBorder, d.Role)
	}
	assert.Equal(t, RoleGoal, all[len(all)-2].Role)
	assert.Equal(t, RoleBall, all[len(all)-1].Role)
}

func TestBounds(t *testing.T) {
	x, y, w, h := Descriptor{Shape: Circle, CenterX: 10, CenterY: 20, Radius: 3}.Bounds()
	assert.Equal(t, []float64{7, 17, 6, 6}, []float64{x, y, w, h})

	x, y, w, h = Descriptor{Shape: Rect, CenterX: 10, CenterY: 20, Width: 4, Height: 8}.Bounds()
	assert.Equal(t, []float64{8, 16, 4, 8}, []float64{x, y, w, h})
}
