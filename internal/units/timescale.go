// Package units renders ENumber magnitudes as human time durations.
package units

import (
	"math"

	"github.com/darajkong/scale-comparison/internal/emath"
)

// JulianYear is the length of a Julian year in seconds.
const JulianYear = 31556952.0

// Exponents within this symmetric range render as plain decimals.
const expBreak = 3

// TimeScale wraps an ENumber interpreted as a count of seconds.
type TimeScale struct {
	n emath.ENumber
}

func New(n emath.ENumber) TimeScale {
	return TimeScale{n: n}
}

// FromSeconds wraps a plain float64 seconds value.
func FromSeconds(v float64) TimeScale {
	return TimeScale{n: emath.FromFloat(v)}
}

// Num returns the wrapped ENumber.
func (t TimeScale) Num() emath.ENumber { return t.n }

// Seconds collapses the duration to a plain float64 count of seconds.
// The second return is false when the value does not fit.
func (t TimeScale) Seconds() (float64, bool) {
	return t.n.Collapse()
}

// LogScale returns the continuous log10 magnitude of the duration,
// used to place it on the logarithmic axis.
func (t TimeScale) LogScale() float64 {
	_, mag := t.n.Erect()
	return mag
}

// String cascades through units: seconds, minutes, hours, days, then
// years with metric prefixes. Durations whose collapsed value is not
// finite fall back to scientific notation in seconds or years, chosen
// by the sign of the exponent.
func (t TimeScale) String() string {
	if v, ok := t.Seconds(); ok {
		switch {
		case v <= 60:
			return t.n.FormatExpBreak(expBreak) + " s"
		case v <= 3600:
			mins := math.Floor(v / 60)
			secs := v - mins*60
			s := emath.TrimDecimals(mins, 0) + " m"
			if secs != 0 {
				s += " " + emath.TrimDecimals(secs, 0) + " s"
			}
			return s
		case v <= 86400:
			hrs := math.Floor(v / 3600)
			mins := (v - hrs*3600) / 60
			s := emath.TrimDecimals(hrs, 0) + " h"
			if mins != 0 {
				s += " " + emath.TrimDecimals(mins, 0) + " m"
			}
			return s
		case v <= JulianYear:
			return emath.TrimDecimals(v/86400, 2) + " d"
		default:
			yrs := v / JulianYear
			switch {
			case yrs < 1e6:
				return emath.TrimDecimals(yrs, 2) + " y"
			case yrs < 1e9:
				return emath.TrimDecimals(yrs/1e6, 2) + " My"
			case yrs < 1e12:
				return emath.TrimDecimals(yrs/1e9, 2) + " Gy"
			case yrs < 1e15:
				return emath.TrimDecimals(yrs/1e12, 2) + " Ty"
			}
		}
	}
	if t.n.Exponent() > 0 {
		return t.n.Div(emath.FromFloat(JulianYear)).String() + " y"
	}
	return t.n.String() + " s"
}
