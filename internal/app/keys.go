package app

// Held keys fire once, then repeat every repeatInterval ticks after repeatDelay.
const (
	repeatDelay    = 15
	repeatInterval = 4
)

// repeating reports whether a key held for d ticks fires this tick.
func repeating(d int) bool {
	if d == 1 {
		return true
	}
	return d >= repeatDelay && (d-repeatDelay)%repeatInterval == 0
}
