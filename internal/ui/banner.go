// Package ui holds the on-screen text shared by the frontends: the win banner
// animation and, in ebiten builds, the HUD and banner drawing.
package ui

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// DefaultBannerDuration is how long the banner takes to fade in.
const DefaultBannerDuration = 600 * time.Millisecond

// Banner is a message that fades in once shown and then stays.
type Banner struct {
	duration time.Duration
	text     string
	tween    *gween.Tween
	alpha    float32
	visible  bool
}

// NewBanner returns a hidden banner with the given fade-in duration.
func NewBanner(duration time.Duration) *Banner {
	if duration <= 0 {
		duration = DefaultBannerDuration
	}
	return &Banner{duration: duration}
}

// Show starts fading text in from transparent.
func (b *Banner) Show(text string) {
	b.text = text
	b.visible = true
	b.alpha = 0
	b.tween = gween.New(0, 1, float32(b.duration.Seconds()), ease.OutCubic)
}

// Hide removes the banner immediately.
func (b *Banner) Hide() {
	b.visible = false
	b.alpha = 0
	b.tween = nil
}

// Update advances the fade by dt.
func (b *Banner) Update(dt time.Duration) {
	if b.tween == nil {
		return
	}
	cur, finished := b.tween.Update(float32(dt.Seconds()))
	b.alpha = cur
	if finished {
		b.alpha = 1
		b.tween = nil
	}
}

// Text returns the message.
func (b *Banner) Text() string { return b.text }

// Visible reports whether the banner is shown.
func (b *Banner) Visible() bool { return b.visible }

// Alpha returns the opacity in [0, 1].
func (b *Banner) Alpha() float64 { return float64(b.alpha) }

// Settled reports whether the fade has finished.
func (b *Banner) Settled() bool { return b.visible && b.tween == nil }

// Offset returns how far above its resting place the banner is drawn, sliding
// from rise down to zero as it fades in.
func (b *Banner) Offset(rise float64) float64 {
	return (1 - b.Alpha()) * rise
}
