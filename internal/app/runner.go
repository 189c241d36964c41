package app

import (
	"fmt"

	"mazeball/internal/game"

	"github.com/sirupsen/logrus"
)

// Runner holds the live session for a frontend and rebuilds it on reset.
type Runner struct {
	Config  *Config
	Log     logrus.FieldLogger
	Session *game.Session

	onSolved []func()
}

// NewRunner generates the first session from cfg. Every listener in onSolved
// is attached to this and every later session.
func NewRunner(cfg *Config, log logrus.FieldLogger, onSolved ...func()) (*Runner, error) {
	r := &Runner{Config: cfg, Log: log, onSolved: onSolved}
	if err := r.start(cfg.Seed); err != nil {
		return nil, err
	}
	return r, nil
}

// Reset regenerates the maze. With fresh set a new seed is drawn, otherwise
// the current maze is rebuilt from its own seed.
func (r *Runner) Reset(fresh bool) error {
	seed := r.Session.Seed()
	if fresh {
		seed = 0
	}
	return r.start(seed)
}

func (r *Runner) start(seed int64) error {
	s, err := game.NewSession(r.Config.Session(seed), r.Log)
	if err != nil {
		return fmt.Errorf("new session: %w", err)
	}
	for _, fn := range r.onSolved {
		s.OnSolved(fn)
	}
	r.Session = s
	return nil
}

// Status is the one-line summary shown by the frontends.
func (r *Runner) Status() string {
	s := r.Session
	return fmt.Sprintf("seed %d  %dx%d  moves %d  %s", s.Seed(), s.Config().Rows, s.Config().Columns, s.Moves(), s.State())
}
