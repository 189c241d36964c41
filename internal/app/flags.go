package app

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"mazeball/internal/game"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var (
	// ErrInvalidDimensions reports a maze or viewport with no area.
	ErrInvalidDimensions = game.ErrInvalidDimensions
	// ErrInvalidConfig reports any other unusable setting.
	ErrInvalidConfig = errors.New("invalid config")
)

// EnvPrefix prefixes every environment variable read by LoadEnv.
const EnvPrefix = "MAZEBALL_"

// Config represents the command-line parameters for the application.
type Config struct {
	Rows     int
	Columns  int
	Width    int
	Height   int
	Seed     int64
	TPS      int
	Impulse  float64
	Frontend string
	Sound    bool
	LogLevel string
	LogFile  string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Rows:     8,
		Columns:  12,
		Width:    960,
		Height:   640,
		TPS:      60,
		Impulse:  game.DefaultImpulse,
		Sound:    true,
		LogLevel: "info",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Rows, "rows", c.Rows, "maze rows")
	fs.IntVar(&c.Columns, "cols", c.Columns, "maze columns")
	fs.IntVar(&c.Width, "width", c.Width, "viewport width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "viewport height in pixels")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "maze seed (0 picks one from the clock)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Float64Var(&c.Impulse, "impulse", c.Impulse, "velocity added per key press")
	fs.StringVar(&c.Frontend, "frontend", c.Frontend, "frontend to run (window or terminal)")
	fs.BoolVar(&c.Sound, "sound", c.Sound, "play a chime when the maze is solved")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level")
	fs.StringVar(&c.LogFile, "log-file", c.LogFile, "append logs to this file")
}

// LoadEnv applies MAZEBALL_* environment variables over the current values.
// Variables are first loaded from the given .env files, or ".env" when none
// are named; a missing file is not an error. Call it before parsing flags so
// flags take precedence.
func (c *Config) LoadEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load env: %w", err)
	}
	return errors.Join(
		envInt("ROWS", &c.Rows),
		envInt("COLS", &c.Columns),
		envInt("WIDTH", &c.Width),
		envInt("HEIGHT", &c.Height),
		envInt64("SEED", &c.Seed),
		envInt("TPS", &c.TPS),
		envFloat("IMPULSE", &c.Impulse),
		envString("FRONTEND", &c.Frontend),
		envBool("SOUND", &c.Sound),
		envString("LOG_LEVEL", &c.LogLevel),
		envString("LOG_FILE", &c.LogFile),
	)
}

// Validate rejects configurations the game cannot start with.
func (c *Config) Validate() error {
	if c.Rows <= 0 || c.Columns <= 0 {
		return fmt.Errorf("%w: rows and cols must be positive, got %d and %d", ErrInvalidDimensions, c.Rows, c.Columns)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: viewport %dx%d", ErrInvalidDimensions, c.Width, c.Height)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("%w: tps must be positive, got %d", ErrInvalidConfig, c.TPS)
	}
	if c.Impulse <= 0 {
		return fmt.Errorf("%w: impulse must be positive, got %g", ErrInvalidConfig, c.Impulse)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Frontend != "" {
		if _, ok := Frontends()[c.Frontend]; !ok {
			return fmt.Errorf("%w: unknown frontend %q", ErrInvalidConfig, c.Frontend)
		}
	}
	return nil
}

// Session returns the game configuration for the given seed.
func (c *Config) Session(seed int64) game.Config {
	gc := game.DefaultConfig()
	gc.Rows = c.Rows
	gc.Columns = c.Columns
	gc.Width = float64(c.Width)
	gc.Height = float64(c.Height)
	gc.Seed = seed
	gc.Impulse = c.Impulse
	return gc
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(EnvPrefix + key)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

func envString(key string, dst *string) error {
	if v, ok := lookup(key); ok {
		*dst = v
	}
	return nil
}

func envInt(key string, dst *int) error {
	v, ok := lookup(key)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%w: %s%s must be an integer: %v", ErrInvalidConfig, EnvPrefix, key, err)
	}
	*dst = n
	return nil
}

func envInt64(key string, dst *int64) error {
	v, ok := lookup(key)
	if !ok {
		return nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: %s%s must be an integer: %v", ErrInvalidConfig, EnvPrefix, key, err)
	}
	*dst = n
	return nil
}

func envFloat(key string, dst *float64) error {
	v, ok := lookup(key)
	if !ok {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("%w: %s%s must be a number: %v", ErrInvalidConfig, EnvPrefix, key, err)
	}
	*dst = f
	return nil
}

func envBool(key string, dst *bool) error {
	v, ok := lookup(key)
	if !ok {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("%w: %s%s must be a boolean: %v", ErrInvalidConfig, EnvPrefix, key, err)
	}
	*dst = b
	return nil
}
