// Package emath implements ENumber, a normalized significand/exponent pair
// representing significand * 10^exponent. It stays exact enough for
// comparison and positioning across exponents far beyond the float64 range.
package emath

import (
	"math"
	"strconv"
	"strings"
)

// ENumber is an immutable value type. Either both fields are zero, or
// 1 <= |significand| < 10. The exponent is a real number rather than an
// integer so that scale positions can be interpolated continuously.
type ENumber struct {
	significand float64
	exponent    float64
}

// Normalize is the sole constructor path: it restores the significand
// invariant by folding the excess order of magnitude into the exponent.
// A zero significand always yields the canonical zero value.
func Normalize(significand, exponent float64) ENumber {
	if significand == 0 {
		return ENumber{}
	}
	adjustment := math.Floor(math.Log10(math.Abs(significand)))
	return ENumber{
		significand: significand / math.Pow(10, adjustment),
		exponent:    exponent + adjustment,
	}
}

// New builds an ENumber from a significand and an integer exponent.
func New(significand float64, exponent int) ENumber {
	return Normalize(significand, float64(exponent))
}

// FromFloat converts an ordinary float64.
func FromFloat(v float64) ENumber {
	return Normalize(v, 0)
}

// FromExp returns 10^exponent.
func FromExp(exponent float64) ENumber {
	return Normalize(1, exponent)
}

func (n ENumber) Significand() float64 { return n.significand }
func (n ENumber) Exponent() float64    { return n.exponent }

// Mul multiplies two ENumbers: significands multiply, exponents add.
func (n ENumber) Mul(o ENumber) ENumber {
	return Normalize(n.significand*o.significand, n.exponent+o.exponent)
}

// Div divides two ENumbers: significands divide, exponents subtract.
// Dividing by the zero value is not guarded and produces a non-finite
// significand, same as plain float64 division.
func (n ENumber) Div(o ENumber) ENumber {
	return Normalize(n.significand/o.significand, n.exponent-o.exponent)
}

// MulFloat scales the significand by a plain float64.
func (n ENumber) MulFloat(v float64) ENumber {
	return Normalize(n.significand*v, n.exponent)
}

// DivFloat divides the significand by a plain float64.
func (n ENumber) DivFloat(v float64) ENumber {
	return Normalize(n.significand/v, n.exponent)
}

// Erect decomposes the number into its sign and a single continuous
// log10 magnitude, usable for ordering and camera placement without
// any further normalization.
func (n ENumber) Erect() (sign, magnitude float64) {
	return signum(n.significand), n.exponent + math.Log10(math.Abs(n.significand))
}

// Collapse converts back to an ordinary float64. The second return is
// false when the result would not be finite, which guards display code
// from overflow at extreme exponents.
func (n ENumber) Collapse() (float64, bool) {
	result := n.significand * math.Pow(10, n.exponent)
	if math.IsInf(result, 0) || math.IsNaN(result) {
		return 0, false
	}
	return result, true
}

// LimitCollapse collapses without an absence case: out-of-range values
// clamp to max instead. Used for pixel-space heights.
func (n ENumber) LimitCollapse(max float64) float64 {
	return math.Min(n.significand*math.Pow(10, n.exponent), max)
}

// ToScale converts an absolute magnitude into a camera-relative, clamped
// coordinate. This is the single bridge between ENumber space and
// on-screen positioning.
func (n ENumber) ToScale(scale, max float64) float64 {
	return n.Div(FromExp(scale)).LimitCollapse(max)
}

// String renders scientific notation, e.g. "5.39e-44".
func (n ENumber) String() string {
	return FormatFloat(n.significand) + "e" + strconv.FormatFloat(n.exponent, 'f', -1, 64)
}

// FormatExpBreak renders as an ordinary decimal while the exponent lies
// within [-expBreak, expBreak], falling back to scientific notation
// outside that range. Low exponents are always collapsible.
func (n ENumber) FormatExpBreak(expBreak float64) string {
	if n.exponent >= -expBreak && n.exponent <= expBreak {
		if v, ok := n.Collapse(); ok {
			return FormatFloat(v)
		}
	}
	return n.String()
}

// Parse builds an ENumber from textual significand and exponent parts.
// Malformed input returns the zero value and an error so callers can
// discard the edit and keep the previously committed value.
func Parse(significand, exponent string) (ENumber, error) {
	sig, err := strconv.ParseFloat(strings.TrimSpace(significand), 64)
	if err != nil {
		return ENumber{}, err
	}
	exp, err := strconv.ParseFloat(strings.TrimSpace(exponent), 64)
	if err != nil {
		return ENumber{}, err
	}
	return Normalize(sig, exp), nil
}

const sigDigits = 4

// FormatFloat renders v trimmed to a few significant digits, without
// trailing zeros: 5.39 -> "5.39", 60.00 -> "60".
func FormatFloat(v float64) string {
	if v == 0 {
		return "0"
	}
	decimals := sigDigits - 1 - int(math.Floor(math.Log10(math.Abs(v))))
	if decimals < 0 {
		decimals = 0
	}
	return TrimDecimals(v, decimals)
}

// TrimDecimals formats v with at most the given number of decimals and
// strips trailing zeros, so 365.2425 at 2 becomes "365.24" while 1.00
// becomes "1".
func TrimDecimals(v float64, decimals int) string {
	s := strconv.FormatFloat(v, 'f', decimals, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	return s
}

func signum(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return v
	}
}
