package render

import (
	"image/color"
	"math"

	"mazeball/internal/geometry"
	"mazeball/internal/physics"
)

// Glyphs used by the character raster.
const (
	GlyphEmpty = ' '
	GlyphWall  = '█'
	GlyphGoal  = '▒'
	GlyphBall  = '●'
)

// Palette assigns a colour to each body role.
type Palette struct {
	Background color.RGBA
	Wall       color.RGBA
	Border     color.RGBA
	Goal       color.RGBA
	Ball       color.RGBA
}

// DefaultPalette returns the colours shared by both frontends.
func DefaultPalette() Palette {
	return Palette{
		Background: color.RGBA{R: 16, G: 16, B: 20, A: 255},
		Wall:       color.RGBA{R: 200, G: 200, B: 210, A: 255},
		Border:     color.RGBA{R: 110, G: 110, B: 125, A: 255},
		Goal:       color.RGBA{R: 70, G: 200, B: 110, A: 255},
		Ball:       color.RGBA{R: 240, G: 90, B: 60, A: 255},
	}
}

// Color returns the colour for role, or the background for unknown roles.
func (p Palette) Color(role geometry.Role) color.RGBA {
	switch role {
	case geometry.RoleWall:
		return p.Wall
	case geometry.RoleBorder:
		return p.Border
	case geometry.RoleGoal:
		return p.Goal
	case geometry.RoleBall:
		return p.Ball
	}
	return p.Background
}

// Glyph returns the character drawn for role.
func Glyph(role geometry.Role) rune {
	switch role {
	case geometry.RoleWall, geometry.RoleBorder:
		return GlyphWall
	case geometry.RoleGoal:
		return GlyphGoal
	case geometry.RoleBall:
		return GlyphBall
	}
	return GlyphEmpty
}

// Raster is a character-cell image of the world. Each cell keeps the role of
// the last body drawn over it.
type Raster struct {
	Cols, Rows int
	glyphs     []rune
	roles      []geometry.Role
}

// NewRaster allocates a cols × rows raster. Negative sizes become empty.
func NewRaster(cols, rows int) *Raster {
	r := &Raster{}
	r.Resize(cols, rows)
	return r
}

// Resize reallocates the raster when the dimensions change.
func (r *Raster) Resize(cols, rows int) {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	if cols == r.Cols && rows == r.Rows && r.glyphs != nil {
		return
	}
	r.Cols, r.Rows = cols, rows
	r.glyphs = make([]rune, cols*rows)
	r.roles = make([]geometry.Role, cols*rows)
	r.Clear()
}

// Clear resets every cell to empty.
func (r *Raster) Clear() {
	for i := range r.glyphs {
		r.glyphs[i] = GlyphEmpty
		r.roles[i] = ""
	}
}

// At returns the glyph and role at (col, row). Out-of-range cells are empty.
func (r *Raster) At(col, row int) (rune, geometry.Role) {
	if col < 0 || row < 0 || col >= r.Cols || row >= r.Rows {
		return GlyphEmpty, ""
	}
	i := row*r.Cols + col
	return r.glyphs[i], r.roles[i]
}

// Fill clears the raster and draws bodies scaled from a worldW × worldH world
// onto the full raster. Later bodies overwrite earlier ones.
func (r *Raster) Fill(bodies []*physics.Body, worldW, worldH float64) {
	r.Clear()
	if r.Cols == 0 || r.Rows == 0 || worldW <= 0 || worldH <= 0 {
		return
	}
	sx := float64(r.Cols) / worldW
	sy := float64(r.Rows) / worldH
	for _, b := range bodies {
		if b.Shape == geometry.Circle {
			r.fillCircle(b, sx, sy)
			continue
		}
		r.fillRect(b, sx, sy)
	}
}

func (r *Raster) set(col, row int, role geometry.Role) {
	if col < 0 || row < 0 || col >= r.Cols || row >= r.Rows {
		return
	}
	i := row*r.Cols + col
	r.glyphs[i] = Glyph(role)
	r.roles[i] = role
}

func (r *Raster) fillRect(b *physics.Body, sx, sy float64) {
	x, y, w, h := b.Bounds()
	c0, c1 := span(x*sx, (x+w)*sx)
	r0, r1 := span(y*sy, (y+h)*sy)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			r.set(col, row, b.Role)
		}
	}
}

func (r *Raster) fillCircle(b *physics.Body, sx, sy float64) {
	cx, cy := b.Position()
	rad := b.Radius()
	rx, ry := rad*sx, rad*sy
	ccx, ccy := cx*sx, cy*sy
	c0, c1 := span(ccx-rx, ccx+rx)
	r0, r1 := span(ccy-ry, ccy+ry)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			dx := (float64(col) + 0.5 - ccx) / rx
			dy := (float64(row) + 0.5 - ccy) / ry
			if dx*dx+dy*dy <= 1 {
				r.set(col, row, b.Role)
			}
		}
	}
	r.set(int(math.Floor(ccx)), int(math.Floor(ccy)), b.Role)
}

// span converts a scaled extent into an inclusive cell range covering at
// least one cell.
func span(lo, hi float64) (int, int) {
	a := int(math.Floor(lo))
	b := int(math.Ceil(hi)) - 1
	if b < a {
		b = a
	}
	return a, b
}
