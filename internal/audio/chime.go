// Package audio plays a short chime when the camera commits to the
// next item. The speaker is initialised lazily on first use so that a
// disabled chime never touches the audio device.
package audio

import (
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/generators"
	"github.com/faiface/beep/speaker"

	"github.com/darajkong/scale-comparison/internal/config"
)

type Chime struct {
	freq     int
	sr       beep.SampleRate
	initDone bool
	lastErr  error
}

func NewChime(freq int) *Chime {
	if freq <= 0 {
		freq = config.ChimeFreq
	}
	return &Chime{freq: freq, sr: beep.SampleRate(config.ChimeSampleHz)}
}

// Play fires the chime. Errors are remembered rather than returned: a
// missing audio device should never interrupt the animation.
func (c *Chime) Play() {
	if !c.initDone {
		if err := speaker.Init(c.sr, c.sr.N(time.Second/20)); err != nil {
			c.lastErr = err
			return
		}
		c.initDone = true
	}
	tone, err := generators.SinTone(c.sr, c.freq)
	if err != nil {
		c.lastErr = err
		return
	}
	speaker.Play(beep.Take(c.sr.N(config.ChimeMillis*time.Millisecond), tone))
}

// Err reports the last playback error, if any.
func (c *Chime) Err() error { return c.lastErr }
