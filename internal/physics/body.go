package physics

import (
	"math"

	"mazeball/internal/geometry"

	"github.com/google/uuid"
	"github.com/solarlune/resolv"
)

// Body is a rigid, non-rotating shape in the world. Static bodies never move;
// dynamic bodies integrate velocity and gravity every tick.
type Body struct {
	ID    uuid.UUID
	Role  geometry.Role
	Shape geometry.Shape

	x, y   float64
	w, h   float64
	radius float64
	vx, vy float64
	static bool

	seq int
	obj *resolv.Object
}

func newBody(seq int, d geometry.Descriptor) *Body {
	b := &Body{
		ID:     uuid.New(),
		Role:   d.Role,
		Shape:  d.Shape,
		x:      d.CenterX,
		y:      d.CenterY,
		w:      d.Width,
		h:      d.Height,
		radius: d.Radius,
		static: d.Static,
		seq:    seq,
	}
	if d.Shape == geometry.Circle {
		b.w, b.h = 2*d.Radius, 2*d.Radius
	}
	bx, by, bw, bh := b.Bounds()
	b.obj = resolv.NewObject(bx, by, bw, bh, string(d.Role))
	b.obj.Data = b
	return b
}

// Position returns the centre of the body.
func (b *Body) Position() (x, y float64) { return b.x, b.y }

// Velocity returns the velocity in units per tick.
func (b *Body) Velocity() (vx, vy float64) { return b.vx, b.vy }

// Size returns the extent of the bounding box.
func (b *Body) Size() (w, h float64) { return b.w, b.h }

// Radius returns the radius of a circular body, zero for rectangles.
func (b *Body) Radius() float64 { return b.radius }

// Static reports whether the body is pinned in place.
func (b *Body) Static() bool { return b.static }

// Bounds returns the axis-aligned box as min x, min y, width, height.
func (b *Body) Bounds() (x, y, w, h float64) {
	return b.x - b.w/2, b.y - b.h/2, b.w, b.h
}

// HasRole reports whether the body carries the role tag.
func (b *Body) HasRole(r geometry.Role) bool { return b.obj.HasTags(string(r)) }

func (b *Body) translate(dx, dy float64) {
	b.x += dx
	b.y += dy
	b.obj.Position.X = b.x - b.w/2
	b.obj.Position.Y = b.y - b.h/2
	b.obj.Update()
}

// overlaps reports whether b shifted by (dx, dy) strictly intersects o.
// Bodies that merely share an edge do not overlap.
func (b *Body) overlaps(dx, dy float64, o *Body) bool {
	bx, by := b.x+dx, b.y+dy
	switch {
	case b.Shape == geometry.Circle && o.Shape == geometry.Circle:
		ddx, ddy := bx-o.x, by-o.y
		r := b.radius + o.radius
		return ddx*ddx+ddy*ddy < r*r
	case b.Shape == geometry.Circle:
		return circleRect(bx, by, b.radius, o.x, o.y, o.w, o.h)
	case o.Shape == geometry.Circle:
		return circleRect(o.x, o.y, o.radius, bx, by, b.w, b.h)
	default:
		return math.Abs(bx-o.x) < (b.w+o.w)/2 && math.Abs(by-o.y) < (b.h+o.h)/2
	}
}

// circleRect tests a circle at (cx, cy) against a rectangle centred on (rx, ry).
func circleRect(cx, cy, r, rx, ry, rw, rh float64) bool {
	nx := math.Max(rx-rw/2, math.Min(cx, rx+rw/2))
	ny := math.Max(ry-rh/2, math.Min(cy, ry+rh/2))
	dx, dy := cx-nx, cy-ny
	return dx*dx+dy*dy < r*r
}
