package core

import "time"

// FixedStep paces simulation updates at a steady steps-per-second rate,
// independent of how often the render loop runs. The accumulator is clamped
// to a single step so a late frame slows the simulation down instead of
// bursting to catch up.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given rate.
func NewFixedStep(stepsPerSecond int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetRate(stepsPerSecond)
	fs.accumulator = fs.step
	return fs
}

// SetRate changes the step rate. It is safe to call from the main loop.
func (f *FixedStep) SetRate(stepsPerSecond int) {
	if stepsPerSecond <= 0 {
		stepsPerSecond = 1
	}
	f.step = time.Second / time.Duration(stepsPerSecond)
}

// ShouldStep reports whether the simulation should advance by one step.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator > f.step {
		f.accumulator = f.step
	}
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}
