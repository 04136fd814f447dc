package core

import "time"

// FixedStep helps run game updates at a steady ticks-per-second rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	return NewFixedStepClock(tps, time.Now)
}

// NewFixedStepClock is NewFixedStep with an explicit time source. Elapsed time
// is measured from the moment of construction.
func NewFixedStepClock(tps int, now func() time.Time) *FixedStep {
	if now == nil {
		now = time.Now
	}
	fs := &FixedStep{now: now}
	fs.SetTPS(tps)
	fs.last = now()
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 5
	}
	f.step = time.Second / time.Duration(tps)
}

// Step returns the configured tick interval.
func (f *FixedStep) Step() time.Duration { return f.step }

// ShouldStep reports whether the game should advance by one tick. Only one
// interval is consumed per call so leftover time carries into later polls.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	delta := now.Sub(f.last)
	f.last = now
	if delta > 0 {
		f.accumulator += delta
	}
	if f.accumulator > f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}
