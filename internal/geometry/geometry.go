// Package geometry turns a carved maze into static body descriptors: one thin
// wall per closed gap, the viewport border, the ball and the goal.
package geometry

import (
	"math"

	"mazeball/internal/maze"
)

// Role marks the game-semantic kind of a body.
type Role string

const (
	RoleBall   Role = "ball"
	RoleGoal   Role = "goal"
	RoleWall   Role = "wall"
	RoleBorder Role = "border"
)

// Shape selects how a descriptor's extent is interpreted.
type Shape uint8

const (
	// Rect uses Width and Height.
	Rect Shape = iota
	// Circle uses Radius.
	Circle
)

// Descriptor is an immutable description of one body, positioned by its centre.
type Descriptor struct {
	Role             Role
	Shape            Shape
	CenterX, CenterY float64
	Width, Height    float64
	Radius           float64
	Static           bool
}

// Bounds returns the axis-aligned box of the descriptor as min x, min y, width, height.
func (d Descriptor) Bounds() (x, y, w, h float64) {
	if d.Shape == Circle {
		return d.CenterX - d.Radius, d.CenterY - d.Radius, 2 * d.Radius, 2 * d.Radius
	}
	return d.CenterX - d.Width/2, d.CenterY - d.Height/2, d.Width, d.Height
}

const (
	// DefaultWallRatio is the wall thickness as a fraction of the smaller
	// unit: a 5px wall on the default 80px cell.
	DefaultWallRatio = 1.0 / 16
	// DefaultBorderThickness is the thickness of the viewport frame.
	DefaultBorderThickness = 2.0

	ballRatio = 0.4
	goalRatio = 0.7
)

// Options tunes the emitted geometry. Zero values select the defaults.
type Options struct {
	WallRatio       float64
	BorderThickness float64
}

func (o Options) withDefaults() Options {
	if o.WallRatio <= 0 {
		o.WallRatio = DefaultWallRatio
	}
	if o.BorderThickness <= 0 {
		o.BorderThickness = DefaultBorderThickness
	}
	return o
}

// Layout is the translated scene for one maze.
type Layout struct {
	Width, Height         float64
	UnitWidth, UnitHeight float64
	WallThickness         float64

	Borders []Descriptor
	Walls   []Descriptor
	Goal    Descriptor
	Ball    Descriptor
}

// Descriptors returns every body in insertion order: borders, walls, goal, ball.
func (l Layout) Descriptors() []Descriptor {
	out := make([]Descriptor, 0, len(l.Borders)+len(l.Walls)+2)
	out = append(out, l.Borders...)
	out = append(out, l.Walls...)
	return append(out, l.Goal, l.Ball)
}

// Translate converts the gap matrices of g into wall segments sized to a
// unitWidth × unitHeight cell, plus the border frame, ball and goal.
func Translate(g *maze.Grid, unitWidth, unitHeight float64, opts Options) Layout {
	opts = opts.withDefaults()
	unit := math.Min(unitWidth, unitHeight)
	l := Layout{
		Width:         unitWidth * float64(g.Columns()),
		Height:        unitHeight * float64(g.Rows()),
		UnitWidth:     unitWidth,
		UnitHeight:    unitHeight,
		WallThickness: opts.WallRatio * unit,
	}
	l.Walls = make([]Descriptor, 0, g.ClosedVerticalGaps()+g.ClosedHorizontalGaps())

	g.EachVerticalGap(func(row, col int, open bool) {
		if open {
			return
		}
		l.Walls = append(l.Walls, Descriptor{
			Role:    RoleWall,
			Shape:   Rect,
			CenterX: float64(col+1) * unitWidth,
			CenterY: (float64(row) + 0.5) * unitHeight,
			Width:   l.WallThickness,
			Height:  unitHeight,
			Static:  true,
		})
	})
	g.EachHorizontalGap(func(row, col int, open bool) {
		if open {
			return
		}
		l.Walls = append(l.Walls, Descriptor{
			Role:    RoleWall,
			Shape:   Rect,
			CenterX: (float64(col) + 0.5) * unitWidth,
			CenterY: float64(row+1) * unitHeight,
			Width:   unitWidth,
			Height:  l.WallThickness,
			Static:  true,
		})
	})

	t := opts.BorderThickness
	l.Borders = []Descriptor{
		{Role: RoleBorder, Shape: Rect, CenterX: l.Width / 2, CenterY: 0, Width: l.Width, Height: t, Static: true},
		{Role: RoleBorder, Shape: Rect, CenterX: l.Width / 2, CenterY: l.Height, Width: l.Width, Height: t, Static: true},
		{Role: RoleBorder, Shape: Rect, CenterX: 0, CenterY: l.Height / 2, Width: t, Height: l.Height, Static: true},
		{Role: RoleBorder, Shape: Rect, CenterX: l.Width, CenterY: l.Height / 2, Width: t, Height: l.Height, Static: true},
	}

	l.Goal = Descriptor{
		Role:    RoleGoal,
		Shape:   Rect,
		CenterX: l.Width - 0.5*unitWidth,
		CenterY: l.Height - 0.5*unitHeight,
		Width:   goalRatio * unitWidth,
		Height:  goalRatio * unitHeight,
		Static:  true,
	}
	l.Ball = Descriptor{
		Role:    RoleBall,
		Shape:   Circle,
		CenterX: 0.5 * unitWidth,
		CenterY: 0.5 * unitHeight,
		Radius:  ballRatio * unit,
	}
	return l
}
