package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"mazeball/internal/app"
	"mazeball/internal/audio"
	_ "mazeball/internal/term"

	log "github.com/sirupsen/logrus"
)

func main() {
	cfg := app.NewConfig()
	if err := cfg.LoadEnv(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if cfg.Frontend == "" {
		cfg.Frontend = app.DefaultFrontend()
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "%v (frontends: %v)\n", err, app.FrontendNames())
		os.Exit(2)
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer closeLog()

	player := audio.NewPlayer()
	if cfg.Sound {
		if err := player.Initialize(); err != nil {
			logger.WithError(err).Warn("sound disabled")
		}
	}
	defer player.Close()

	runner, err := app.NewRunner(cfg, logger, player.PlaySolved)
	if err != nil {
		logger.WithError(err).Fatal("could not start")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.WithFields(log.Fields{
		"frontend": cfg.Frontend,
		"seed":     runner.Session.Seed(),
	}).Info("starting")
	if err := app.Frontends()[cfg.Frontend](ctx, runner); err != nil {
		logger.WithError(err).Error("frontend stopped")
		closeLog()
		os.Exit(1)
	}
}

// newLogger writes to the log file when one is set. Without one the terminal
// frontend discards logs so they cannot corrupt the screen.
func newLogger(cfg *app.Config) (*log.Logger, func(), error) {
	logger := log.New()
	logger.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	logger.SetLevel(level)

	switch {
	case cfg.LogFile != "":
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		logger.SetOutput(f)
		return logger, func() { f.Close() }, nil
	case cfg.Frontend == "terminal":
		logger.SetOutput(io.Discard)
	default:
		logger.SetOutput(os.Stderr)
	}
	return logger, func() {}, nil
}
