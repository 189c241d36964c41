//go:build ebiten

package render

import (
	"mazeball/internal/geometry"
	"mazeball/internal/physics"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// WorldPainter draws physics bodies with vector primitives, scaled from world
// units to screen pixels.
type WorldPainter struct {
	palette Palette
	scale   float32
}

// NewWorldPainter returns a painter using p at the given scale.
func NewWorldPainter(p Palette, scale float64) *WorldPainter {
	if scale <= 0 {
		scale = 1
	}
	return &WorldPainter{palette: p, scale: float32(scale)}
}

// Draw fills the screen with the background and paints every body.
func (wp *WorldPainter) Draw(screen *ebiten.Image, bodies []*physics.Body) {
	screen.Fill(wp.palette.Background)
	s := wp.scale
	for _, b := range bodies {
		col := wp.palette.Color(b.Role)
		if b.Shape == geometry.Circle {
			x, y := b.Position()
			vector.DrawFilledCircle(screen, float32(x)*s, float32(y)*s, float32(b.Radius())*s, col, true)
			continue
		}
		x, y, w, h := b.Bounds()
		vector.DrawFilledRect(screen, float32(x)*s, float32(y)*s, float32(w)*s, float32(h)*s, col, false)
	}
}
