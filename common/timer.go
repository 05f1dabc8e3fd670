package common

import "time"

// Timer accumulates frame time toward a fixed duration. A zero duration timer
// is finished from the start.
type Timer struct {
	Duration time.Duration
	Elapsed  time.Duration
}

func NewTimer(d time.Duration) Timer {
	return Timer{Duration: d}
}

// Tick advances the timer, clamping at Duration.
func (t *Timer) Tick(dt time.Duration) {
	if dt <= 0 {
		return
	}
	t.Elapsed += dt
	if t.Elapsed > t.Duration {
		t.Elapsed = t.Duration
	}
}

func (t Timer) Finished() bool {
	return t.Elapsed >= t.Duration
}

// Fraction returns Elapsed/Duration in [0,1].
func (t Timer) Fraction() float64 {
	if t.Duration <= 0 {
		return 1
	}
	return Clamp(float64(t.Elapsed)/float64(t.Duration), 0, 1)
}

func (t *Timer) Reset() {
	t.Elapsed = 0
}
