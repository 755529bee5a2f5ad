package anim

import "testing"

func TestFrameCounts(t *testing.T) {
	tests := []struct {
		name string
		got  uint64
		want uint64
	}{
		{"idle", IdleFrames, 62},
		{"pausing", PausingFrames, 187},
		{"slowing", SlowingFrames, 6},
		{"shifting", ShiftingFrames, 125},
	}
	for _, test := range tests {
		if test.got != test.want {
			t.Errorf("%s frames = %d, want %d", test.name, test.got, test.want)
		}
	}
}

func TestInitialStep(t *testing.T) {
	s := InitialStep()
	if s.Kind != StepShifting || s.Left != ShiftingFrames {
		t.Errorf("InitialStep() = %v, want Shifting(%d)", s, ShiftingFrames)
	}
}

// The full cycle scenario: starting at Shifting(F), F+1 ticks land on
// Idle(I); I+1 more land on Scaling, which holds until scalingDone, and
// then Slowing(S) begins.
func TestCycle(t *testing.T) {
	s := InitialStep()
	for i := uint64(0); i <= ShiftingFrames; i++ {
		s = s.Advance(false, false)
	}
	if s.Kind != StepIdle || s.Left != IdleFrames {
		t.Fatalf("after Shifting ran out: %v, want Idle(%d)", s, IdleFrames)
	}

	for i := uint64(0); i <= IdleFrames; i++ {
		s = s.Advance(false, false)
	}
	if s.Kind != StepScaling {
		t.Fatalf("after Idle ran out: %v, want Scaling", s)
	}

	// Scaling holds indefinitely without the predicate.
	for i := 0; i < 1000; i++ {
		s = s.Advance(false, false)
	}
	if s.Kind != StepScaling {
		t.Fatalf("Scaling did not hold: %v", s)
	}

	s = s.Advance(true, false)
	if s.Kind != StepSlowing || s.Left != SlowingFrames {
		t.Fatalf("after scalingDone: %v, want Slowing(%d)", s, SlowingFrames)
	}
}

func TestSlowingEndsEarly(t *testing.T) {
	s := Step{Kind: StepSlowing, Left: SlowingFrames}
	s = s.Advance(false, true)
	if s.Kind != StepPausing || s.Left != PausingFrames {
		t.Fatalf("slowingDone ignored: %v", s)
	}

	// Without the predicate it counts down and then moves on.
	s = Step{Kind: StepSlowing, Left: 1}
	s = s.Advance(false, false)
	if s.Kind != StepSlowing || s.Left != 0 {
		t.Fatalf("countdown step: %v, want Slowing(0)", s)
	}
	s = s.Advance(false, false)
	if s.Kind != StepPausing {
		t.Fatalf("countdown exhausted: %v, want Pausing", s)
	}
}

func TestPausingLeadsToShifting(t *testing.T) {
	s := Step{Kind: StepPausing, Left: 0}
	s = s.Advance(false, false)
	if s.Kind != StepShifting || s.Left != ShiftingFrames {
		t.Fatalf("after Pausing: %v, want Shifting(%d)", s, ShiftingFrames)
	}
}

func TestStepString(t *testing.T) {
	tests := []struct {
		s    Step
		want string
	}{
		{Step{Kind: StepShifting, Left: 112}, "Shifting(112)"},
		{Step{Kind: StepScaling}, "Scaling"},
		{Step{Kind: StepIdle, Left: 0}, "Idle(0)"},
	}
	for _, test := range tests {
		if got := test.s.String(); got != test.want {
			t.Errorf("String() = %q, want %q", got, test.want)
		}
	}
}

func TestAnimationTickAndInfo(t *testing.T) {
	a := New()
	if got := a.Info(); got != "" {
		t.Errorf("Info() before first frame = %q, want empty", got)
	}

	a.Active = true
	for i := 0; i < 125; i++ {
		a.Tick(false, false)
	}
	if a.Frame != 125 {
		t.Errorf("Frame = %d, want 125", a.Frame)
	}
	if got, want := a.Info(), " | frame: 125, time: 2.0 s"; got != want {
		t.Errorf("Info() = %q, want %q", got, want)
	}

	a.Active = false
	if got, want := a.Info(), " | frame: 125, time: 2.0 s [paused]"; got != want {
		t.Errorf("Info() = %q, want %q", got, want)
	}
}
