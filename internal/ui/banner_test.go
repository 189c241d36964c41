package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBannerFadesIn(t *testing.T) {
	b := NewBanner(500 * time.Millisecond)
	assert.False(t, b.Visible())
	assert.Zero(t, b.Alpha())

	b.Update(time.Second)
	assert.False(t, b.Visible(), "updating a hidden banner does nothing")

	b.Show("maze solved")
	assert.True(t, b.Visible())
	assert.False(t, b.Settled())
	assert.Equal(t, "maze solved", b.Text())
	assert.Zero(t, b.Alpha())
	assert.Equal(t, 20.0, b.Offset(20))

	b.Update(250 * time.Millisecond)
	assert.InDelta(t, 0.875, b.Alpha(), 1e-4)
	assert.InDelta(t, 2.5, b.Offset(20), 1e-3)

	b.Update(300 * time.Millisecond)
	assert.Equal(t, 1.0, b.Alpha())
	assert.True(t, b.Settled())
	assert.Zero(t, b.Offset(20))

	b.Update(time.Second)
	assert.Equal(t, 1.0, b.Alpha())
}

func TestBannerHide(t *testing.T) {
	b := NewBanner(0)
	b.Show("x")
	b.Update(DefaultBannerDuration / 2)
	b.Hide()
	assert.False(t, b.Visible())
	assert.False(t, b.Settled())
	assert.Zero(t, b.Alpha())
}

func TestBannerShowRestarts(t *testing.T) {
	b := NewBanner(100 * time.Millisecond)
	b.Show("first")
	b.Update(time.Second)
	assert.True(t, b.Settled())

	b.Show("second")
	assert.Zero(t, b.Alpha())
	assert.Equal(t, "second", b.Text())
}
