package core

import "time"

// maxCatchUp bounds how many ticks a single Advance may report after a stall.
const maxCatchUp = 5

// Ticker accumulates wall-clock time and reports how many fixed simulation
// ticks are due. The terminal frontend drives the world with it since tcell
// has no frame loop of its own.
type Ticker struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewTicker constructs a Ticker targeting tps ticks per second. Non-positive
// rates fall back to 60.
func NewTicker(tps int) *Ticker {
	t := &Ticker{}
	t.SetTPS(tps)
	return t
}

// SetTPS changes the tick rate.
func (t *Ticker) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	t.step = time.Second / time.Duration(tps)
}

// Step returns the duration of one tick.
func (t *Ticker) Step() time.Duration { return t.step }

// Advance records the passage of time up to now and returns the number of
// ticks that should run. The first call only primes the clock.
func (t *Ticker) Advance(now time.Time) int {
	if t.last.IsZero() {
		t.last = now
		return 0
	}
	delta := now.Sub(t.last)
	t.last = now
	if delta < 0 {
		return 0
	}
	t.accumulator += delta
	n := 0
	for t.accumulator >= t.step {
		t.accumulator -= t.step
		n++
	}
	if n > maxCatchUp {
		n = maxCatchUp
		t.accumulator = 0
	}
	return n
}

// Reset forgets accumulated time.
func (t *Ticker) Reset() {
	t.accumulator = 0
	t.last = time.Time{}
}
