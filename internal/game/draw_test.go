package game

import (
	"image/color"
	"testing"

	"github.com/darajkong/scale-comparison/internal/config"
	"github.com/darajkong/scale-comparison/internal/thing"
	"github.com/darajkong/scale-comparison/internal/viewport"
)

func TestWithAlpha(t *testing.T) {
	c := color.RGBA{R: 60, G: 179, B: 113, A: 255}
	if got := withAlpha(c, 1); got != c {
		t.Errorf("withAlpha(c, 1) = %v, want unchanged", got)
	}
	if got := withAlpha(c, 0); got != (color.RGBA{}) {
		t.Errorf("withAlpha(c, 0) = %v, want zero", got)
	}
	half := withAlpha(c, 0.5)
	if half.A != 127 || half.R != 30 {
		t.Errorf("withAlpha(c, 0.5) = %v, want premultiplied half", half)
	}
	if got := withAlpha(c, -1); got != (color.RGBA{}) {
		t.Errorf("withAlpha(c, -1) = %v, want zero", got)
	}
}

func TestScreenXAnchorsCurrentItem(t *testing.T) {
	a := &App{cfg: config.Default()}

	// With the camera settled on index 2, that item's bar sits on the
	// anchor column and its neighbors are one offset away.
	cam := viewport.Camera{X: viewport.InitialCameraX - thing.BarOffset*2}
	if got := a.screenX(cam, thing.XPosition(2)); got != config.CameraMarginX {
		t.Errorf("screenX(current) = %v, want %v", got, config.CameraMarginX)
	}
	if got := a.screenX(cam, thing.XPosition(3)); got != config.CameraMarginX-thing.BarOffset {
		t.Errorf("screenX(next) = %v, want %v", got, config.CameraMarginX-thing.BarOffset)
	}
	if got := a.screenX(cam, thing.XPosition(1)); got != config.CameraMarginX+thing.BarOffset {
		t.Errorf("screenX(previous) = %v, want %v", got, config.CameraMarginX+thing.BarOffset)
	}
}
