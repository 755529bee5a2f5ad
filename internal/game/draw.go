package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tinne26/etxt"

	"github.com/darajkong/scale-comparison/internal/config"
	"github.com/darajkong/scale-comparison/internal/emath"
	"github.com/darajkong/scale-comparison/internal/thing"
	"github.com/darajkong/scale-comparison/internal/units"
	"github.com/darajkong/scale-comparison/internal/viewport"
)

var (
	backgroundColor = color.RGBA{R: 15, G: 15, B: 15, A: 255}
	footerColor     = color.RGBA{R: 25, G: 25, B: 25, A: 255}
	majorColor      = color.RGBA{R: 211, G: 211, B: 211, A: 255}
	minorColor      = color.RGBA{R: 85, G: 85, B: 85, A: 255}
	barColor        = color.RGBA{R: 60, G: 179, B: 113, A: 255}
	nameColor       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	valueColor      = color.RGBA{R: 0, G: 250, B: 154, A: 255}
)

// Grid lines span exponent offsets around the current scale.
const (
	gridLowOffset  = -1
	gridHighOffset = 3
	gridLineStartX = 130
)

func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	width := float64(a.cfg.WindowWidth)
	axisY := float64(a.cfg.WindowHeight - config.FooterHeight)
	cam := a.view.Camera

	// Bars and names, camera-relative.
	for i, th := range a.things {
		sx := a.screenX(cam, thing.XPosition(i))
		if sx < -thing.BarOffset || sx > width+thing.BarOffset {
			continue
		}
		alpha := a.view.Alpha(i)
		if alpha <= 0 {
			continue
		}
		height := th.Height(a.view.Scale, viewport.MaxHeight)
		if height > 0 {
			vector.DrawFilledRect(screen,
				float32(sx-thing.BarHalf), float32(axisY-height),
				float32(thing.BarWidth), float32(height),
				withAlpha(barColor, alpha), false)
		}
		nameY := axisY - height - 24
		a.text.draw(screen, th.Name, int(sx), int(nameY),
			a.text.regular, config.NameTextSize,
			withAlpha(nameColor, alpha), etxt.YCenter, etxt.XCenter)
	}

	// Logarithmic grid: one major line per integer exponent in view,
	// with minor lines between.
	for _, line := range a.view.GridLines(gridLowOffset, gridHighOffset) {
		y := float32(axisY - line.Y)
		vector.StrokeLine(screen, gridLineStartX, y, float32(width), y, 0.8,
			withAlpha(majorColor, line.Alpha), false)

		label := units.New(emath.FromExp(line.Exponent)).String()
		a.text.draw(screen, label, 15, int(axisY-line.Y),
			a.text.regular, config.LabelTextSize,
			withAlpha(majorColor, line.Alpha), etxt.YCenter, etxt.Left)

		for i := 1; i <= viewport.MinorLines; i++ {
			minorY, minorAlpha := a.view.MinorLineY(line.Exponent, i)
			my := float32(axisY - minorY)
			vector.StrokeLine(screen, 0, my, float32(width), my, 0.2,
				withAlpha(minorColor, minorAlpha), false)
		}
	}

	// Footer band and axis line.
	vector.DrawFilledRect(screen, 0, float32(axisY), float32(width),
		float32(config.FooterHeight), footerColor, false)
	vector.StrokeLine(screen, 0, float32(axisY), float32(width), float32(axisY),
		0.8, valueColor, false)

	// Values beneath the axis, on top of the footer.
	for i, th := range a.things {
		sx := a.screenX(cam, thing.XPosition(i))
		if sx < -thing.BarOffset || sx > width+thing.BarOffset {
			continue
		}
		alpha := a.view.Alpha(i)
		if alpha <= 0 {
			continue
		}
		a.text.draw(screen, th.Value.String(), int(sx), int(axisY)+24,
			a.text.mono, config.ValueTextSize,
			withAlpha(valueColor, alpha), etxt.YCenter, etxt.XCenter)
	}

	a.drawButton(screen)
	a.drawHUD(screen)
}

// screenX maps a world x coordinate through the camera translation to
// screen space, anchored at the current-item column.
func (a *App) screenX(cam viewport.Camera, wx float64) float64 {
	return config.CameraMarginX + (wx - cam.X - viewport.InitialCameraX)
}

func (a *App) drawButton(screen *ebiten.Image) {
	var bg color.Color
	switch {
	case a.buttonPressed:
		bg = color.RGBA{R: 60, G: 80, B: 120, A: 255}
	case a.buttonHovered:
		bg = color.RGBA{R: 80, G: 100, B: 140, A: 255}
	default:
		bg = color.RGBA{R: 100, G: 120, B: 160, A: 255}
	}
	vector.DrawFilledRect(screen, buttonX, buttonY, buttonWidth, buttonHeight, bg, false)
	vector.StrokeRect(screen, buttonX, buttonY, buttonWidth, buttonHeight, 2,
		color.RGBA{R: 150, G: 170, B: 200, A: 255}, false)

	label := "Play"
	if a.view.Animation.Active {
		label = "Pause"
	}
	textWidth := len(label) * 8
	ebitenutil.DebugPrintAt(screen, label,
		buttonX+(buttonWidth-textWidth)/2, buttonY+(buttonHeight-16)/2)
}

func (a *App) drawHUD(screen *ebiten.Image) {
	status := "Playing - Space or button to pause"
	if !a.view.Animation.Active {
		status = "Paused - Space or button to play"
	}
	status += " | N: add, E: edit, O: open, S: save as, R: replay, D: debug"
	if a.lastErr != nil {
		status += " | Error: " + a.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)

	bottom := a.cfg.WindowHeight - 20
	ebitenutil.DebugPrintAt(screen, a.view.Animation.Step.String(), 15, bottom-16)
	if !a.showDebug {
		return
	}
	debug := fmt.Sprintf("scale: %.3f, speed: %.3f, shift: %.3f%s",
		a.view.Scale, a.view.ScaleSpeed, a.view.Shift, a.view.Animation.Info())
	ebitenutil.DebugPrintAt(screen, debug, 15, bottom-32)
	if a.stats != nil {
		ebitenutil.DebugPrintAt(screen, a.stats.Line(), 15, bottom-48)
	}
}

// withAlpha premultiplies a color by the given opacity.
func withAlpha(c color.RGBA, alpha float64) color.RGBA {
	if alpha >= 1 {
		return c
	}
	if alpha < 0 {
		alpha = 0
	}
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}
