package core

import (
	"testing"
	"time"
)

func TestFixedStepPacing(t *testing.T) {
	fs := NewFixedStep(10) // 100ms per step

	clock := time.Unix(0, 0)
	fs.now = func() time.Time { return clock }

	// The accumulator starts primed so the first query steps immediately.
	if !fs.ShouldStep() {
		t.Fatal("first query should step")
	}
	if fs.ShouldStep() {
		t.Fatal("no time elapsed, should not step again")
	}

	clock = clock.Add(50 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("half a step budget elapsed, should not step")
	}

	clock = clock.Add(60 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("full step budget elapsed, should step")
	}
}

func TestFixedStepNeverBursts(t *testing.T) {
	fs := NewFixedStep(10)
	clock := time.Unix(0, 0)
	fs.now = func() time.Time { return clock }
	fs.ShouldStep()

	// A long stall accumulates at most one step: the simulation runs
	// slower rather than replaying the missed interval.
	clock = clock.Add(3 * time.Second)
	if !fs.ShouldStep() {
		t.Fatal("expected a step after the stall")
	}
	if fs.ShouldStep() {
		t.Fatal("stall must not be replayed as a burst of steps")
	}
}

func TestFixedStepRateGuard(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.step != time.Second {
		t.Fatalf("non-positive rate should fall back to 1 step/s, got %v", fs.step)
	}
	fs.SetRate(20)
	if fs.step != 50*time.Millisecond {
		t.Fatalf("SetRate(20) should yield 50ms, got %v", fs.step)
	}
}
