// Package anim drives the camera's motion cycle: a finite-state machine
// over Idle, Scaling, Slowing, Pausing and Shifting phases, advanced one
// step per 16 ms tick.
package anim

import "fmt"

// FrameMillis is the fixed timestep of the animation in milliseconds.
const FrameMillis = 16

// FPS is the resulting tick rate (62.5 ticks per second).
const FPS = 1000.0 / FrameMillis

// Nominal phase durations in seconds, converted to frame counts below.
const (
	idleTime     = 1.0
	pausingTime  = 3.0
	slowingTime  = 0.1
	shiftingTime = 2.0
)

// Nominal durations as whole frame counts at 62.5 ticks per second.
const (
	IdleFrames     = uint64(idleTime*1000) / FrameMillis
	PausingFrames  = uint64(pausingTime*1000) / FrameMillis
	SlowingFrames  = uint64(slowingTime*1000) / FrameMillis
	ShiftingFrames = uint64(shiftingTime*1000) / FrameMillis
)

// StepKind identifies a phase of the motion cycle.
type StepKind uint8

const (
	StepIdle StepKind = iota
	StepScaling
	StepSlowing
	StepPausing
	StepShifting
)

func (k StepKind) String() string {
	switch k {
	case StepIdle:
		return "Idle"
	case StepScaling:
		return "Scaling"
	case StepSlowing:
		return "Slowing"
	case StepPausing:
		return "Pausing"
	case StepShifting:
		return "Shifting"
	default:
		return "Unknown"
	}
}

// Step is one phase of the cycle together with its remaining frame
// countdown. It is an immutable value: Advance returns the successor
// instead of mutating in place, so no countdown state is ever aliased.
type Step struct {
	Kind StepKind
	Left uint64
}

// InitialStep returns the state a fresh session starts in: a full
// Shifting countdown. The cycle deliberately begins mid-cycle with a
// shift rather than an idle pause.
func InitialStep() Step {
	return Step{Kind: StepShifting, Left: ShiftingFrames}
}

// next returns the following phase re-seeded with its nominal countdown.
// Cycle order: Idle -> Scaling -> Slowing -> Pausing -> Shifting -> Idle.
func (s Step) next() Step {
	switch s.Kind {
	case StepIdle:
		return Step{Kind: StepScaling}
	case StepScaling:
		return Step{Kind: StepSlowing, Left: SlowingFrames}
	case StepSlowing:
		return Step{Kind: StepPausing, Left: PausingFrames}
	case StepPausing:
		return Step{Kind: StepShifting, Left: ShiftingFrames}
	default:
		return Step{Kind: StepIdle, Left: IdleFrames}
	}
}

// Advance is the pure transition function, evaluated once per tick.
// Scaling has no countdown and holds until scalingDone; Slowing can end
// early once slowingDone reports the speed is back at baseline.
func (s Step) Advance(scalingDone, slowingDone bool) Step {
	switch s.Kind {
	case StepScaling:
		if scalingDone {
			return s.next()
		}
		return s
	case StepSlowing:
		if slowingDone || s.Left == 0 {
			return s.next()
		}
		return Step{Kind: s.Kind, Left: s.Left - 1}
	default:
		if s.Left > 0 {
			return Step{Kind: s.Kind, Left: s.Left - 1}
		}
		return s.next()
	}
}

// String names the step for the debug overlay, e.g. "Shifting(112)".
func (s Step) String() string {
	if s.Kind == StepScaling {
		return s.Kind.String()
	}
	return fmt.Sprintf("%s(%d)", s.Kind, s.Left)
}

// Animation owns the current step and a monotonically increasing frame
// counter. Active gates whether ticks are delivered at all; the host
// flips it on play/pause and simply stops calling Tick while paused.
type Animation struct {
	Active bool
	Frame  uint64
	Step   Step
}

func New() Animation {
	return Animation{Step: InitialStep()}
}

// Tick advances the frame counter and replaces the step via the
// transition function.
func (a *Animation) Tick(scalingDone, slowingDone bool) {
	a.Frame++
	a.Step = a.Step.Advance(scalingDone, slowingDone)
}

// Secs reports elapsed animation time.
func (a Animation) Secs() float64 {
	return float64(a.Frame) / FPS
}

// Info renders the status suffix, empty before the first frame.
func (a Animation) Info() string {
	if a.Frame == 0 {
		return ""
	}
	suffix := ""
	if !a.Active {
		suffix = " [paused]"
	}
	return fmt.Sprintf(" | frame: %d, time: %.1f s%s", a.Frame, a.Secs(), suffix)
}
