// Package physics is a small rigid-body world: axis-aligned rectangles and
// circles, gravity, air friction and blocking collisions. A resolv spatial
// hash provides the broadphase; shape overlap is resolved here.
package physics

import (
	"math"

	"mazeball/internal/geometry"

	"github.com/solarlune/resolv"
	"github.com/zyedidia/generic/mapset"
)

// bisectSteps is how many halvings close the gap to a blocking body.
const bisectSteps = 8

// Options configures a World.
type Options struct {
	// GravityX and GravityY are accelerations in units per tick².
	GravityX, GravityY float64
	// AirFriction removes this fraction of a dynamic body's velocity every tick.
	AirFriction float64
	// Restitution scales the reflected velocity on the blocked axis.
	Restitution float64
	// MaxSpeed clamps the velocity magnitude of dynamic bodies.
	MaxSpeed float64
	// MaxStep is the longest distance a body travels in one sub-step. It must
	// stay below the thinnest body or fast bodies tunnel through walls.
	MaxStep float64
	// CellSize is the broadphase cell edge in units.
	CellSize int
}

// DefaultOptions returns zero gravity and Matter-like damping.
func DefaultOptions() Options {
	return Options{
		AirFriction: 0.01,
		Restitution: 0.2,
		MaxSpeed:    40,
		MaxStep:     1.5,
		CellSize:    32,
	}
}

// Pair is two bodies that started touching during a tick. A is the body that
// moved into B.
type Pair struct {
	A, B *Body
}

// Roles returns the role markers of both bodies.
func (p Pair) Roles() (geometry.Role, geometry.Role) { return p.A.Role, p.B.Role }

type pairKey struct{ lo, hi int }

func keyOf(a, b *Body) pairKey {
	if a.seq > b.seq {
		a, b = b, a
	}
	return pairKey{a.seq, b.seq}
}

// World owns every body and advances them in fixed ticks.
type World struct {
	width, height float64
	opts          Options

	space    *resolv.Space
	bodies   []*Body
	contacts mapset.Set[pairKey]

	onCollisionStart []func([]Pair)
}

// NewWorld creates an empty world covering width × height units.
func NewWorld(width, height float64, opts Options) *World {
	if opts.CellSize <= 0 {
		opts.CellSize = DefaultOptions().CellSize
	}
	if opts.MaxStep <= 0 {
		opts.MaxStep = DefaultOptions().MaxStep
	}
	return &World{
		width:    width,
		height:   height,
		opts:     opts,
		space:    resolv.NewSpace(int(math.Ceil(width))+opts.CellSize, int(math.Ceil(height))+opts.CellSize, opts.CellSize, opts.CellSize),
		contacts: mapset.New[pairKey](),
	}
}

// Size returns the extent of the world.
func (w *World) Size() (width, height float64) { return w.width, w.height }

// AddBodies creates one body per descriptor, in order.
func (w *World) AddBodies(descs ...geometry.Descriptor) []*Body {
	out := make([]*Body, 0, len(descs))
	for _, d := range descs {
		b := newBody(len(w.bodies), d)
		w.bodies = append(w.bodies, b)
		w.space.Add(b.obj)
		out = append(out, b)
	}
	return out
}

// Bodies returns every body in insertion order.
func (w *World) Bodies() []*Body { return w.bodies }

// BodiesWithRole returns the bodies tagged with role.
func (w *World) BodiesWithRole(role geometry.Role) []*Body {
	var out []*Body
	for _, b := range w.bodies {
		if b.HasRole(role) {
			out = append(out, b)
		}
	}
	return out
}

// Gravity returns the current gravity vector.
func (w *World) Gravity() (x, y float64) { return w.opts.GravityX, w.opts.GravityY }

// SetGravity replaces the gravity vector.
func (w *World) SetGravity(x, y float64) {
	w.opts.GravityX, w.opts.GravityY = x, y
}

// SetVelocity replaces a body's velocity. Static bodies ignore it.
func (w *World) SetVelocity(b *Body, vx, vy float64) {
	if b.static {
		return
	}
	b.vx, b.vy = vx, vy
}

// SetStatic pins or releases a body. Either way it starts from rest.
func (w *World) SetStatic(b *Body, static bool) {
	b.static = static
	b.vx, b.vy = 0, 0
}

// OnCollisionStart registers fn to receive the pairs that begin touching in
// each tick. It is not called for ticks without new contacts.
func (w *World) OnCollisionStart(fn func([]Pair)) {
	w.onCollisionStart = append(w.onCollisionStart, fn)
}

// Step advances the world by one tick and dispatches collision-start events
// after every body has moved.
func (w *World) Step() {
	current := mapset.New[pairKey]()
	var started []Pair
	touch := func(a, b *Body) {
		k := keyOf(a, b)
		if current.Has(k) {
			return
		}
		current.Put(k)
		if !w.contacts.Has(k) {
			started = append(started, Pair{A: a, B: b})
		}
	}

	for _, b := range w.bodies {
		if b.static {
			continue
		}
		w.accelerate(b)
		w.integrate(b, touch)
	}
	w.contacts = current

	if len(started) == 0 {
		return
	}
	for _, fn := range w.onCollisionStart {
		fn(started)
	}
}

func (w *World) accelerate(b *Body) {
	b.vx += w.opts.GravityX
	b.vy += w.opts.GravityY
	damp := 1 - w.opts.AirFriction
	b.vx *= damp
	b.vy *= damp
	if limit := w.opts.MaxSpeed; limit > 0 {
		if s := math.Hypot(b.vx, b.vy); s > limit {
			b.vx *= limit / s
			b.vy *= limit / s
		}
	}
}

// integrate moves b along its velocity in sub-steps, x then y, reflecting the
// blocked component.
func (w *World) integrate(b *Body, touch func(a, b *Body)) {
	dist := math.Max(math.Abs(b.vx), math.Abs(b.vy))
	n := int(math.Ceil(dist / w.opts.MaxStep))
	for i := 0; i < n; i++ {
		if hit := w.move(b, b.vx/float64(n), 0); hit != nil {
			b.vx = -b.vx * w.opts.Restitution
			touch(b, hit)
		}
		if hit := w.move(b, 0, b.vy/float64(n)); hit != nil {
			b.vy = -b.vy * w.opts.Restitution
			touch(b, hit)
		}
	}
	w.confine(b)
	if col := b.obj.Check(0, 0); col != nil {
		for _, o := range col.Objects {
			other := o.Data.(*Body)
			if other != b && b.overlaps(0, 0, other) {
				touch(b, other)
			}
		}
	}
}

// move translates b by (dx, dy), stopping just short of the first body it
// would start to overlap, and returns that body. Bodies already overlapping b
// do not block it, so tangled bodies can separate.
func (w *World) move(b *Body, dx, dy float64) *Body {
	if dx == 0 && dy == 0 {
		return nil
	}
	col := b.obj.Check(dx, dy)
	if col == nil {
		b.translate(dx, dy)
		return nil
	}
	others := make([]*Body, 0, len(col.Objects))
	for _, o := range col.Objects {
		if other := o.Data.(*Body); other != b && !b.overlaps(0, 0, other) {
			others = append(others, other)
		}
	}
	hit := blocker(b, dx, dy, others)
	if hit == nil {
		b.translate(dx, dy)
		return nil
	}
	lo, hi := 0.0, 1.0
	for i := 0; i < bisectSteps; i++ {
		mid := (lo + hi) / 2
		if blocker(b, dx*mid, dy*mid, others) != nil {
			hi = mid
		} else {
			lo = mid
		}
	}
	b.translate(dx*lo, dy*lo)
	return hit
}

// confine keeps a dynamic body's box inside the world and stops it on every
// axis it would have left by. A body wider than the world is centred.
func (w *World) confine(b *Body) {
	bx, by, bw, bh := b.Bounds()
	dx := shiftInto(bx, bw, w.width)
	dy := shiftInto(by, bh, w.height)
	if dx == 0 && dy == 0 {
		return
	}
	if dx != 0 {
		b.vx = 0
	}
	if dy != 0 {
		b.vy = 0
	}
	b.translate(dx, dy)
}

// shiftInto returns how far a span starting at lo with the given size must
// move to lie within [0, extent].
func shiftInto(lo, size, extent float64) float64 {
	switch {
	case size >= extent:
		return (extent-size)/2 - lo
	case lo < 0:
		return -lo
	case lo+size > extent:
		return extent - lo - size
	}
	return 0
}

func blocker(b *Body, dx, dy float64, others []*Body) *Body {
	for _, o := range others {
		if b.overlaps(dx, dy, o) {
			return o
		}
	}
	return nil
}
