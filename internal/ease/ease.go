// Package ease provides the cubic easing curves used by the animation
// cycle: acceleration ramps out, shifts ease in and out, and item
// fade-ins ease in.
package ease

// InCubic maps t in [0, 1] onto a slow-start cubic curve.
func InCubic(t float64) float64 {
	return t * t * t
}

// OutCubic maps t in [0, 1] onto a fast-start, slow-end cubic curve.
func OutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

// InOutCubic accelerates through the first half and decelerates through
// the second.
func InOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}

// Clamp01 clamps v to [0, 1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
