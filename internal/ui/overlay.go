//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws the win banner centred over the maze view.
type Overlay struct {
	banner *Banner
	rise   float64
}

// NewOverlay constructs an overlay for banner.
func NewOverlay(banner *Banner) *Overlay {
	return &Overlay{banner: banner, rise: 24}
}

// Draw renders the banner onto the view of the given size.
func (o *Overlay) Draw(screen *ebiten.Image, viewW, viewH int) {
	if o == nil || o.banner == nil || !o.banner.Visible() {
		return
	}
	alpha := o.banner.Alpha()
	face := basicfont.Face7x13
	msg := o.banner.Text()
	bounds := text.BoundString(face, msg)

	const pad = 10
	w := bounds.Dx() + 2*pad
	h := bounds.Dy() + 2*pad
	x := (viewW - w) / 2
	y := (viewH-h)/2 - int(math.Round(o.banner.Offset(o.rise)))

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), fade(color.RGBA{R: 10, G: 10, B: 14, A: 220}, alpha), false)
	text.Draw(screen, msg, face, x+pad, y+pad+bounds.Dy(), fade(color.RGBA{R: 250, G: 230, B: 120, A: 255}, alpha))
}

// fade scales a premultiplied colour by alpha.
func fade(c color.RGBA, alpha float64) color.RGBA {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	scale := func(v uint8) uint8 { return uint8(math.Round(float64(v) * alpha)) }
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: scale(c.A)}
}
