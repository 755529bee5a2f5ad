// Package viewport composes the ordered item list with the animation
// driver to produce a continuously updated logarithmic scale, per-item
// visibility and camera transform.
package viewport

import (
	"math"

	"github.com/darajkong/scale-comparison/internal/anim"
	"github.com/darajkong/scale-comparison/internal/ease"
	"github.com/darajkong/scale-comparison/internal/emath"
	"github.com/darajkong/scale-comparison/internal/thing"
)

const (
	// MaxHeight clamps bar heights and grid positions in pixels.
	MaxHeight = 1000.0
	// MinorLines is the number of minor grid lines between majors.
	MinorLines = 3
	// MinorOffset is the exponent spacing of minor grid lines.
	MinorOffset = 1.0 / (MinorLines + 1)
	// ScalePadding keeps the scale this far below an item's magnitude
	// before the scaling phase is allowed to end.
	ScalePadding = 2.85
	// IdleScaleSpeed is the baseline cruising speed in decades/second.
	IdleScaleSpeed = 0.025
	// ScaleAcceleration ramps the speed while scaling, per second.
	ScaleAcceleration = 0.25
	// InitialSlowScaleSpeed caps the captured peak when slowing begins.
	InitialSlowScaleSpeed = 3.0
)

// Initial camera translation.
const (
	InitialCameraX = 0.0
	InitialCameraY = 350.0
)

// Camera is a translation-only 2D transform from world to screen space.
type Camera struct {
	X, Y float64
}

// Viewport owns its Animation; the item list is borrowed read-only for
// the duration of each tick.
type Viewport struct {
	Animation anim.Animation

	// Scale is the current log10 camera position.
	Scale float64
	// ScaleSpeed is the current scale velocity in decades/second.
	ScaleSpeed float64
	// Shift is the continuous index pointer into the item list.
	Shift float64

	slowScaleSpeed float64
	prevShift      float64

	Camera Camera
}

// Init builds a Viewport for the given list, seeding the scale a fixed
// padding below the first item's magnitude.
func Init(things []thing.Thing) *Viewport {
	scale := 0.0
	if len(things) > 0 {
		scale = things[0].LogScale() - ScalePadding
	}
	return &Viewport{
		Animation:  anim.New(),
		Scale:      scale,
		ScaleSpeed: IdleScaleSpeed,
		Camera:     Camera{X: InitialCameraX, Y: InitialCameraY},
	}
}

// PrevShift is the last settled (integral) shift value.
func (v *Viewport) PrevShift() float64 {
	return v.prevShift
}

// Alpha is the fade-in opacity of the item at index for the current
// shift.
func (v *Viewport) Alpha(index int) float64 {
	return thing.Alpha(index, v.Shift)
}

// scalingDone reports whether the scale has caught up enough to the
// item the shift pointer is heading past to justify ending the scaling
// phase.
func (v *Viewport) scalingDone(things []thing.Thing) bool {
	i := math.Floor(v.Shift)
	if i <= 0 {
		return true
	}
	idx := int(i) - 1
	if idx >= len(things) {
		return false
	}
	return things[idx].LogScale()-v.Scale <= ScalePadding
}

// Update runs one 16 ms tick: advance the animation with the two
// predicates, apply the per-state speed and shift effects, integrate
// the scale and recompute the camera.
func (v *Viewport) Update(things []thing.Thing) {
	scalingDone := v.scalingDone(things)
	slowingDone := v.ScaleSpeed <= IdleScaleSpeed

	v.Animation.Tick(scalingDone, slowingDone)

	switch step := v.Animation.Step; step.Kind {
	case anim.StepIdle, anim.StepPausing:
		v.ScaleSpeed = IdleScaleSpeed

	case anim.StepScaling:
		v.ScaleSpeed += ScaleAcceleration / anim.FPS

	case anim.StepSlowing:
		if step.Left == anim.SlowingFrames {
			// Capture the peak speed on entry.
			v.slowScaleSpeed = math.Min(v.ScaleSpeed, InitialSlowScaleSpeed)
		}
		if step.Left > 0 {
			progress := float64(step.Left) / float64(anim.SlowingFrames)
			v.ScaleSpeed = IdleScaleSpeed + (v.slowScaleSpeed-IdleScaleSpeed)*ease.OutCubic(progress)
		} else {
			v.ScaleSpeed = IdleScaleSpeed
		}

	case anim.StepShifting:
		if step.Left > 0 {
			progress := 1 - float64(step.Left)/float64(anim.ShiftingFrames)
			v.Shift = v.prevShift + ease.InOutCubic(progress)
		} else {
			v.prevShift++
			v.Shift = v.prevShift
		}
	}

	v.Scale += v.ScaleSpeed / anim.FPS
	v.Camera = Camera{
		X: InitialCameraX - thing.BarOffset*v.Shift,
		Y: InitialCameraY,
	}
}

// MajorLine is one horizontal grid line of the logarithmic scale.
type MajorLine struct {
	Exponent float64
	// Y is the line's height above the axis in pixels, clamped.
	Y float64
	// Alpha fades lines out as they sink into the axis.
	Alpha float64
}

// GridLines returns the visible major grid lines for exponent offsets
// around the current scale.
func (v *Viewport) GridLines(lowOffset, highOffset int) []MajorLine {
	lines := make([]MajorLine, 0, highOffset-lowOffset+1)
	for offset := lowOffset; offset <= highOffset; offset++ {
		exp := math.Floor(v.Scale + float64(offset))
		y := emath.FromExp(exp).ToScale(v.Scale, MaxHeight)
		lines = append(lines, MajorLine{
			Exponent: exp,
			Y:        y,
			Alpha:    ease.Clamp01(y),
		})
	}
	return lines
}

// MinorLineY returns the height of the i-th minor line above the major
// line at the given exponent, with its fade alpha.
func (v *Viewport) MinorLineY(exponent float64, i int) (y, alpha float64) {
	y = emath.FromExp(exponent + MinorOffset*float64(i)).ToScale(v.Scale, MaxHeight)
	return y, ease.Clamp01(y)
}
