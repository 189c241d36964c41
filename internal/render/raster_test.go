package render

import (
	"testing"

	"mazeball/internal/geometry"
	"mazeball/internal/physics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWorld() *physics.World {
	w := physics.NewWorld(100, 100, physics.DefaultOptions())
	w.AddBodies(
		geometry.Descriptor{Role: geometry.RoleWall, Shape: geometry.Rect, CenterX: 50, CenterY: 50, Width: 20, Height: 4, Static: true},
		geometry.Descriptor{Role: geometry.RoleGoal, Shape: geometry.Rect, CenterX: 85, CenterY: 85, Width: 10, Height: 10, Static: true},
		geometry.Descriptor{Role: geometry.RoleBall, Shape: geometry.Circle, CenterX: 15, CenterY: 15, Radius: 5},
	)
	return w
}

func TestRasterFill(t *testing.T) {
	w := testWorld()
	r := NewRaster(10, 10)
	r.Fill(w.Bodies(), 100, 100)

	for _, c := range [][2]int{{4, 4}, {5, 4}, {4, 5}, {5, 5}} {
		g, role := r.At(c[0], c[1])
		assert.Equal(t, GlyphWall, g, "cell %v", c)
		assert.Equal(t, geometry.RoleWall, role)
	}
	g, _ := r.At(3, 4)
	assert.Equal(t, GlyphEmpty, g)

	g, role := r.At(8, 8)
	assert.Equal(t, GlyphGoal, g)
	assert.Equal(t, geometry.RoleGoal, role)

	g, role = r.At(1, 1)
	assert.Equal(t, GlyphBall, g)
	assert.Equal(t, geometry.RoleBall, role)

	g, role = r.At(9, 0)
	assert.Equal(t, GlyphEmpty, g)
	assert.Empty(t, role)
}

func TestRasterSmallBodiesCoverOneCell(t *testing.T) {
	w := physics.NewWorld(1000, 1000, physics.DefaultOptions())
	w.AddBodies(geometry.Descriptor{Role: geometry.RoleBall, Shape: geometry.Circle, CenterX: 505, CenterY: 505, Radius: 1})
	r := NewRaster(10, 10)
	r.Fill(w.Bodies(), 1000, 1000)

	count := 0
	for row := 0; row < r.Rows; row++ {
		for col := 0; col < r.Cols; col++ {
			if g, _ := r.At(col, row); g != GlyphEmpty {
				count++
			}
		}
	}
	assert.Equal(t, 1, count)
	g, _ := r.At(5, 5)
	assert.Equal(t, GlyphBall, g)
}

func TestRasterClipsBodiesOutsideWorld(t *testing.T) {
	w := physics.NewWorld(100, 100, physics.DefaultOptions())
	w.AddBodies(geometry.Descriptor{Role: geometry.RoleWall, Shape: geometry.Rect, CenterX: 50, CenterY: 250, Width: 20, Height: 4})
	r := NewRaster(10, 10)
	require.NotPanics(t, func() { r.Fill(w.Bodies(), 100, 100) })
	for row := 0; row < r.Rows; row++ {
		for col := 0; col < r.Cols; col++ {
			g, _ := r.At(col, row)
			assert.Equal(t, GlyphEmpty, g)
		}
	}
}

func TestRasterResize(t *testing.T) {
	r := NewRaster(-1, 4)
	assert.Equal(t, 0, r.Cols)
	r.Fill(testWorld().Bodies(), 100, 100)

	r.Resize(20, 5)
	assert.Equal(t, 20, r.Cols)
	assert.Equal(t, 5, r.Rows)
	g, _ := r.At(19, 4)
	assert.Equal(t, GlyphEmpty, g)
	g, _ = r.At(20, 0)
	assert.Equal(t, GlyphEmpty, g)
}

func TestPaletteAndGlyphs(t *testing.T) {
	p := DefaultPalette()
	assert.Equal(t, p.Ball, p.Color(geometry.RoleBall))
	assert.Equal(t, p.Border, p.Color(geometry.RoleBorder))
	assert.Equal(t, p.Background, p.Color("unknown"))
	assert.Equal(t, GlyphWall, Glyph(geometry.RoleBorder))
	assert.Equal(t, GlyphEmpty, Glyph(""))
}
