package sprite

// Timer is a repeating countdown driven by frame deltas.
type Timer struct {
	Duration float64 // Seconds
	elapsed  float64
}

// NewTimer creates a repeating timer.
func NewTimer(seconds float64) *Timer {
	return &Timer{Duration: seconds}
}

// Tick advances the timer by dt seconds and reports whether it fired. A long
// frame fires at most once.
func (t *Timer) Tick(dt float64) bool {
	if t.Duration <= 0 {
		return true
	}
	t.elapsed += dt
	if t.elapsed < t.Duration {
		return false
	}
	for t.elapsed >= t.Duration {
		t.elapsed -= t.Duration
	}
	return true
}
