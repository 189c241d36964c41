// Package game wires a carved maze into a physics world and owns the play
// state: player impulses, the win transition and the listeners told about it.
package game

import (
	"errors"
	"fmt"
	"io"

	"mazeball/internal/geometry"
	"mazeball/internal/maze"
	"mazeball/internal/physics"
	"mazeball/pkg/core"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	// ErrInvalidDimensions reports a maze with no cells or a viewport with no area.
	ErrInvalidDimensions = errors.New("invalid dimensions")
)

const (
	// DefaultImpulse is the velocity change applied per key press.
	DefaultImpulse = 5.0
	// DefaultWonGravity is the downward gravity switched on by the win.
	DefaultWonGravity = 0.3
)

// Config describes one maze session.
type Config struct {
	Rows, Columns int
	Width, Height float64
	// Seed drives the carve. Zero picks a time-based seed.
	Seed       int64
	Impulse    float64
	WonGravity float64

	Geometry geometry.Options
	Physics  physics.Options
}

// DefaultConfig returns an 8×12 maze in a 960×640 viewport.
func DefaultConfig() Config {
	return Config{
		Rows:       8,
		Columns:    12,
		Width:      960,
		Height:     640,
		Impulse:    DefaultImpulse,
		WonGravity: DefaultWonGravity,
		Physics:    physics.DefaultOptions(),
	}
}

// Validate rejects configurations the carver cannot lay out.
func (c Config) Validate() error {
	if c.Rows <= 0 || c.Columns <= 0 {
		return fmt.Errorf("%w: maze must have at least one row and column, got %d×%d", ErrInvalidDimensions, c.Rows, c.Columns)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: viewport %gx%g", ErrInvalidDimensions, c.Width, c.Height)
	}
	return nil
}

// Session is one generated maze and the world simulating it.
type Session struct {
	id  uuid.UUID
	cfg Config
	log logrus.FieldLogger

	grid               *maze.Grid
	startRow, startCol int
	layout             geometry.Layout

	world      *physics.World
	ball, goal *physics.Body
	detector   *WinDetector

	moves int
}

// NewSession generates the maze synchronously and builds its world. The
// returned session is in the Playing state.
func NewSession(cfg Config, log logrus.FieldLogger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Impulse == 0 {
		cfg.Impulse = DefaultImpulse
	}
	if cfg.WonGravity == 0 {
		cfg.WonGravity = DefaultWonGravity
	}
	if cfg.Physics == (physics.Options{}) {
		cfg.Physics = physics.DefaultOptions()
	}
	cfg.Seed = core.ResolveSeed(cfg.Seed)
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}

	s := &Session{id: uuid.New(), cfg: cfg}
	s.log = log.WithField("session", s.id.String())

	rng := core.NewRNG(cfg.Seed)
	s.grid, s.startRow, s.startCol = maze.Generate(cfg.Rows, cfg.Columns, rng)

	unitW := cfg.Width / float64(cfg.Columns)
	unitH := cfg.Height / float64(cfg.Rows)
	s.layout = geometry.Translate(s.grid, unitW, unitH, cfg.Geometry)

	s.world = physics.NewWorld(s.layout.Width, s.layout.Height, cfg.Physics)
	s.world.SetGravity(0, 0)
	bodies := s.world.AddBodies(s.layout.Descriptors()...)
	s.ball = bodies[len(bodies)-1]
	s.goal = bodies[len(bodies)-2]

	s.detector = NewWinDetector(s.world, cfg.WonGravity)
	s.world.OnCollisionStart(s.detector.HandleCollisions)
	s.detector.OnSolved(func() {
		s.log.WithField("moves", s.moves).Info("maze solved")
	})

	s.log.WithFields(logrus.Fields{
		"rows":    cfg.Rows,
		"columns": cfg.Columns,
		"seed":    cfg.Seed,
		"start":   fmt.Sprintf("%d,%d", s.startRow, s.startCol),
		"walls":   len(s.layout.Walls),
	}).Debug("maze generated")
	return s, nil
}

// ID identifies the session in logs.
func (s *Session) ID() uuid.UUID { return s.id }

// Config returns the effective configuration, including the resolved seed.
func (s *Session) Config() Config { return s.cfg }

// Seed returns the seed the maze was carved with.
func (s *Session) Seed() int64 { return s.cfg.Seed }

// Grid returns the carved maze. It must not be modified.
func (s *Session) Grid() *maze.Grid { return s.grid }

// Start returns the cell the carve began from.
func (s *Session) Start() (row, col int) { return s.startRow, s.startCol }

// Layout returns the translated geometry.
func (s *Session) Layout() geometry.Layout { return s.layout }

// World returns the physics world.
func (s *Session) World() *physics.World { return s.world }

// Ball returns the player-controlled body.
func (s *Session) Ball() *physics.Body { return s.ball }

// Goal returns the target body.
func (s *Session) Goal() *physics.Body { return s.goal }

// Moves counts the impulses applied so far.
func (s *Session) Moves() int { return s.moves }

// State reports whether the maze has been solved.
func (s *Session) State() WinState { return s.detector.State() }

// Detector exposes the win detector feeding on the world's collisions.
func (s *Session) Detector() *WinDetector { return s.detector }

// OnSolved registers fn to run once when the ball first reaches the goal.
func (s *Session) OnSolved(fn func()) { s.detector.OnSolved(fn) }

// Step advances the world by one tick.
func (s *Session) Step() { s.world.Step() }
