package game

import (
	"mazeball/internal/geometry"
	"mazeball/internal/physics"
)

// WinState is the play state of a session.
type WinState uint8

const (
	Playing WinState = iota
	Won
)

func (s WinState) String() string {
	if s == Won {
		return "won"
	}
	return "playing"
}

// WinDetector watches collision-start events for the ball reaching the goal.
// The first such contact switches gravity on, releases every maze wall and
// notifies the solved listeners. Later contacts are ignored.
type WinDetector struct {
	world   *physics.World
	gravity float64
	state   WinState

	listeners []func()
}

// NewWinDetector returns a detector in the Playing state. gravity is the
// downward acceleration applied on the win.
func NewWinDetector(w *physics.World, gravity float64) *WinDetector {
	return &WinDetector{world: w, gravity: gravity}
}

// State returns the current play state.
func (d *WinDetector) State() WinState { return d.state }

// OnSolved registers fn to run on the win transition.
func (d *WinDetector) OnSolved(fn func()) {
	d.listeners = append(d.listeners, fn)
}

// IsGoalContact reports whether the pair is exactly the ball and the goal, in
// either order.
func IsGoalContact(p physics.Pair) bool {
	a, b := p.Roles()
	return (a == geometry.RoleBall && b == geometry.RoleGoal) ||
		(a == geometry.RoleGoal && b == geometry.RoleBall)
}

// HandleCollisions consumes one tick's collision-start pairs.
func (d *WinDetector) HandleCollisions(pairs []physics.Pair) {
	if d.state == Won {
		return
	}
	for _, p := range pairs {
		if IsGoalContact(p) {
			d.win()
			return
		}
	}
}

func (d *WinDetector) win() {
	d.state = Won
	d.world.SetGravity(0, d.gravity)
	for _, b := range d.world.BodiesWithRole(geometry.RoleWall) {
		d.world.SetStatic(b, false)
	}
	for _, fn := range d.listeners {
		fn()
	}
}
