//go:build !sound

package audio

import "errors"

// ErrNoSound is returned by Initialize when built without the sound tag.
var ErrNoSound = errors.New("audio playback requires building with the 'sound' tag")

// Player is a silent placeholder for builds without speaker support.
type Player struct{}

// NewPlayer returns a silent player.
func NewPlayer() *Player { return &Player{} }

// Initialize always reports that the sound build tag is missing.
func (p *Player) Initialize() error { return ErrNoSound }

// PlaySolved is a no-op.
func (p *Player) PlaySolved() {}

// Close is a no-op.
func (p *Player) Close() {}
