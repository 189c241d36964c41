//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the status panel to the right of the maze view.
type HUD struct {
	width      int
	panel      *ebiten.Image
	lastHeight int
	lines      func() []string
	help       []string
}

// NewHUD constructs a HUD of the given panel width. lines is polled on every
// draw for the status text.
func NewHUD(width int, lines func() []string) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{
		width: width,
		lines: lines,
		help: []string{
			"WASD / arrows  steer",
			"R  restart",
			"N  new maze",
			"Q  quit",
		},
	}
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Draw paints the panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 24, G: 24, B: 30, A: 255})

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, "mazeball", face, panelPadding, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	y += infoSpacing
	if h.lines != nil {
		for _, line := range h.lines() {
			text.Draw(h.panel, line, face, panelPadding, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
			y += lineHeight
		}
	}
	y += lineHeight
	for _, line := range h.help {
		text.Draw(h.panel, line, face, panelPadding, y, color.RGBA{R: 140, G: 140, B: 150, A: 255})
		y += lineHeight
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

const (
	panelPadding   = 12
	lineHeight     = 18
	headerBaseline = 18
	infoSpacing    = 28
)
