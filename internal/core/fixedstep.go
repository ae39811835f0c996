package core

import "time"

// DefaultMaxSteps bounds catch-up work after a stall: 30 ticks is a quarter
// second of simulation at 120 Hz.
const DefaultMaxSteps = 30

// Stepper is advanced by the frame driver with a constant dt in seconds.
type Stepper interface {
	Advance(dt float64)
	// Halted reports whether the simulation must not be advanced
	// (game over or paused).
	Halted() bool
}

// FixedStep accumulates wall-clock time and converts it into a whole number of
// constant-size simulation ticks per rendered frame.
type FixedStep struct {
	step        time.Duration
	maxSteps    int
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a driver running tps ticks per second.
// maxSteps <= 0 lets a frame run an unbounded number of ticks.
func NewFixedStep(tps, maxSteps int) *FixedStep {
	f := &FixedStep{maxSteps: maxSteps}
	f.SetTPS(tps)
	return f
}

// SetTPS changes the tick rate.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = DefaultTickRate
	}
	f.step = time.Second / time.Duration(tps)
}

// DT returns the tick length in seconds.
func (f *FixedStep) DT() float64 {
	return f.step.Seconds()
}

// Reset forgets accumulated time; the next Frame starts a new measurement.
func (f *FixedStep) Reset() {
	f.accumulator = 0
	f.last = time.Time{}
}

// Frame measures the time since the previous frame and runs as many ticks as
// fit into the accumulated bucket. It returns the number of ticks consumed.
// The bucket is drained even while s is halted.
func (f *FixedStep) Frame(now time.Time, s Stepper) int {
	if f.last.IsZero() {
		f.last = now
		return 0
	}
	delta := now.Sub(f.last)
	f.last = now
	if delta < 0 {
		delta = 0
	}
	f.accumulator += delta

	dt := f.DT()
	steps := 0
	for f.accumulator >= f.step {
		if f.maxSteps > 0 && steps >= f.maxSteps {
			// Drop the backlog instead of spiralling.
			f.accumulator = 0
			break
		}
		if !s.Halted() {
			s.Advance(dt)
		}
		f.accumulator -= f.step
		steps++
	}
	return steps
}

// Pending returns the unconsumed time in the bucket.
func (f *FixedStep) Pending() time.Duration {
	return f.accumulator
}
