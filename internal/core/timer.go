package core

import "time"

// FixedStep helps run simulation updates at a steady period while the host
// loop (ebiten's Update) runs at its own, faster rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep that fires once per period. The first
// call to ShouldStep fires immediately.
func NewFixedStep(period time.Duration) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetPeriod(period)
	fs.accumulator = fs.step
	return fs
}

// SetPeriod changes the tick period. It is safe to call from the main loop.
func (f *FixedStep) SetPeriod(period time.Duration) {
	if period <= 0 {
		period = 100 * time.Millisecond
	}
	f.step = period
}

// Period returns the current tick period.
func (f *FixedStep) Period() time.Duration { return f.step }

// ShouldStep reports whether the simulation should advance by one tick.
// At most one tick is reported per call; missed ticks are not replayed in a
// burst, the accumulator is capped at one period instead.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		if f.accumulator > f.step {
			f.accumulator = f.step
		}
		return true
	}
	return false
}
