package app

import (
	"context"
	"sort"
)

// Frontend runs the game until the player quits or ctx is cancelled. It owns
// input capture and drawing for the runner's session.
type Frontend func(ctx context.Context, r *Runner) error

var frontends = map[string]Frontend{}

// Register adds a frontend under the provided name.
func Register(name string, f Frontend) {
	if name == "" || f == nil {
		return
	}
	frontends[name] = f
}

// Frontends exposes the registry of available frontends.
func Frontends() map[string]Frontend {
	return frontends
}

// FrontendNames lists the registered frontends in sorted order.
func FrontendNames() []string {
	names := make([]string, 0, len(frontends))
	for name := range frontends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultFrontend prefers the window when it was compiled in.
func DefaultFrontend() string {
	if _, ok := frontends["window"]; ok {
		return "window"
	}
	return "terminal"
}
