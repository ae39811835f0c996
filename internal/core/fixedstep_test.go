package core

import (
	"testing"
	"time"
)

type countingStepper struct {
	calls  int
	dts    []float64
	halted bool
}

func (c *countingStepper) Advance(dt float64) {
	c.calls++
	c.dts = append(c.dts, dt)
}

func (c *countingStepper) Halted() bool {
	return c.halted
}

func TestFixedStepFirstFrameOnlyMeasures(t *testing.T) {
	clock := NewManualClock()
	fs := NewFixedStep(120, 0)
	s := &countingStepper{}

	if n := fs.Frame(clock.Now(), s); n != 0 {
		t.Errorf("first frame should not step, got %d", n)
	}
	if s.calls != 0 {
		t.Errorf("Advance called %d times on first frame", s.calls)
	}
}

func TestFixedStepConstantDT(t *testing.T) {
	clock := NewManualClock()
	fs := NewFixedStep(100, 0)
	s := &countingStepper{}

	fs.Frame(clock.Now(), s)
	clock.Advance(35 * time.Millisecond)
	if n := fs.Frame(clock.Now(), s); n != 3 {
		t.Fatalf("35ms at 100Hz should run 3 ticks, got %d", n)
	}
	for i, dt := range s.dts {
		if dt != 0.01 {
			t.Errorf("tick %d dt = %v, expected 0.01", i, dt)
		}
	}
	if fs.Pending() != 5*time.Millisecond {
		t.Errorf("Pending() = %v, expected 5ms", fs.Pending())
	}

	// Remainder carries into the next frame.
	clock.Advance(5 * time.Millisecond)
	if n := fs.Frame(clock.Now(), s); n != 1 {
		t.Errorf("carried remainder should complete one tick, got %d", n)
	}
}

func TestFixedStepCapDropsBacklog(t *testing.T) {
	clock := NewManualClock()
	fs := NewFixedStep(100, 4)
	s := &countingStepper{}

	fs.Frame(clock.Now(), s)
	clock.Advance(2 * time.Second)
	if n := fs.Frame(clock.Now(), s); n != 4 {
		t.Errorf("capped frame should run 4 ticks, got %d", n)
	}
	if fs.Pending() != 0 {
		t.Errorf("backlog should be dropped, pending %v", fs.Pending())
	}
}

func TestFixedStepUncapped(t *testing.T) {
	clock := NewManualClock()
	fs := NewFixedStep(100, 0)
	s := &countingStepper{}

	fs.Frame(clock.Now(), s)
	clock.Advance(2 * time.Second)
	if n := fs.Frame(clock.Now(), s); n != 200 {
		t.Errorf("uncapped frame should catch up fully, got %d", n)
	}
}

func TestFixedStepHaltedDrains(t *testing.T) {
	clock := NewManualClock()
	fs := NewFixedStep(100, 0)
	s := &countingStepper{halted: true}

	fs.Frame(clock.Now(), s)
	clock.Advance(50 * time.Millisecond)
	if n := fs.Frame(clock.Now(), s); n != 5 {
		t.Errorf("halted stepper should still drain 5 ticks, got %d", n)
	}
	if s.calls != 0 {
		t.Errorf("Advance must not be called while halted, got %d calls", s.calls)
	}
}
