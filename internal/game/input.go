package game

import (
	"unicode"

	"mazeball/internal/maze"
)

// Direction is a steering direction for the ball.
type Direction = maze.Direction

const (
	Up    = maze.Up
	Left  = maze.Left
	Right = maze.Right
	Down  = maze.Down
)

// DirectionForRune maps the WASD keys, in either case.
func DirectionForRune(r rune) (Direction, bool) {
	switch unicode.ToLower(r) {
	case 'w':
		return Up, true
	case 'a':
		return Left, true
	case 's':
		return Down, true
	case 'd':
		return Right, true
	}
	return 0, false
}

// Input adds the configured impulse to one axis of the ball's velocity. The
// other axis is left unchanged. Screen coordinates grow downward.
func (s *Session) Input(d Direction) {
	vx, vy := s.ball.Velocity()
	imp := s.cfg.Impulse
	switch d {
	case Up:
		vy -= imp
	case Down:
		vy += imp
	case Left:
		vx -= imp
	case Right:
		vx += imp
	default:
		return
	}
	s.world.SetVelocity(s.ball, vx, vy)
	s.moves++
}
