// Package thing holds the named entries being compared: a label plus a
// time magnitude.
package thing

import (
	"github.com/darajkong/scale-comparison/internal/ease"
	"github.com/darajkong/scale-comparison/internal/emath"
	"github.com/darajkong/scale-comparison/internal/units"
)

// Bar geometry in world pixels.
const (
	BarWidth  = 40.0
	BarHalf   = BarWidth / 2
	BarGap    = 100.0
	BarOffset = BarWidth + BarGap
)

// Thing is one entry of the comparison: a name and its duration.
type Thing struct {
	Name  string
	Value units.TimeScale
}

func New(name string, value units.TimeScale) Thing {
	return Thing{Name: name, Value: value}
}

// LogScale is the continuous log10 magnitude used to order and place
// the entry on the axis.
func (t Thing) LogScale() float64 {
	return t.Value.LogScale()
}

// Height is the bar height in pixels for the given camera scale,
// clamped to max.
func (t Thing) Height(scale, max float64) float64 {
	return t.Value.Num().ToScale(scale, max)
}

// XPosition is the entry's world x coordinate. Entries extend in the
// negative direction so the camera's shift moves them past a fixed
// anchor column.
func XPosition(index int) float64 {
	return -BarOffset * float64(index)
}

// Alpha fades an entry in as the shift pointer passes its index.
func Alpha(index int, shift float64) float64 {
	return ease.InCubic(ease.Clamp01(shift - float64(index)))
}

// Defaults is the built-in list used when no data file exists yet.
func Defaults() []Thing {
	return []Thing{
		New("Hydrogen-7 half-life", units.New(emath.New(2.3, -23))),
		New("Time for sunlight to reach earth", units.FromSeconds(8*60+20)),
		New("Week", units.New(emath.New(6.048, 5))),
		New("Sun's lifespan", units.New(emath.New(3.1556952, 17))),
	}
}
