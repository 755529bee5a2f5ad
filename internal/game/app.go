// Package game hosts the ebiten application: input handling, the fixed
// 16 ms tick feed into the viewport, and all drawing.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/darajkong/scale-comparison/internal/anim"
	"github.com/darajkong/scale-comparison/internal/audio"
	"github.com/darajkong/scale-comparison/internal/config"
	"github.com/darajkong/scale-comparison/internal/diag"
	"github.com/darajkong/scale-comparison/internal/thing"
	"github.com/darajkong/scale-comparison/internal/viewport"
)

// Play/pause button geometry, top-left corner.
const (
	buttonWidth  = 120
	buttonHeight = 40
	buttonX      = 20
	buttonY      = 50
)

type App struct {
	cfg      config.Settings
	dataPath string

	things []thing.Thing
	view   *viewport.Viewport

	text  *textRenderer
	chime *audio.Chime
	stats *diag.Stats

	// Milliseconds owed to the animation core. The display loop runs at
	// whatever TPS ebiten settles on; the core always steps 16 ms.
	accMillis  float64
	lastCommit float64

	showDebug bool
	lastErr   error

	// button state
	buttonHovered bool
	buttonPressed bool
}

func New(cfg config.Settings, things []thing.Thing, dataPath string) (*App, error) {
	text, err := newTextRenderer()
	if err != nil {
		return nil, err
	}
	stats, err := diag.New()
	if err != nil {
		// Overlay stats are best-effort.
		stats = nil
	}
	return &App{
		cfg:       cfg,
		dataPath:  dataPath,
		things:    things,
		view:      viewport.Init(things),
		text:      text,
		chime:     audio.NewChime(cfg.ChimeFreq),
		stats:     stats,
		showDebug: cfg.Debug,
	}, nil
}

func (a *App) Update() error {
	a.handleButton()

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		a.togglePlayback()
	case inpututil.IsKeyJustPressed(ebiten.KeyD):
		a.showDebug = !a.showDebug
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		a.replay()
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		a.addItemDialog()
	case inpututil.IsKeyJustPressed(ebiten.KeyE):
		a.editItemDialog()
	case inpututil.IsKeyJustPressed(ebiten.KeyO):
		a.openDialog()
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		a.saveAsDialog()
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		inpututil.IsKeyJustPressed(ebiten.KeyQ):
		return ebiten.Termination
	}

	if a.view.Animation.Active {
		a.accMillis += 1000 / float64(ebiten.TPS())
		for a.accMillis >= anim.FrameMillis {
			a.accMillis -= anim.FrameMillis
			a.tick()
		}
	}

	ebiten.SetWindowTitle("Scale Comparison" + a.view.Animation.Info())
	return nil
}

// tick runs one core step and fires the reveal chime whenever the
// shift pointer commits to the next item.
func (a *App) tick() {
	a.view.Update(a.things)
	if committed := a.view.PrevShift(); committed > a.lastCommit {
		a.lastCommit = committed
		if a.cfg.Chime {
			a.chime.Play()
		}
	}
}

func (a *App) togglePlayback() {
	a.view.Animation.Active = !a.view.Animation.Active
	// Drop any partial frame so resuming does not burst.
	a.accMillis = 0
}

// replay rebuilds the viewport from the current item list and starts
// the cycle over.
func (a *App) replay() {
	active := a.view.Animation.Active
	a.view = viewport.Init(a.things)
	a.view.Animation.Active = active
	a.lastCommit = 0
	a.accMillis = 0
}

func (a *App) handleButton() {
	mouseX, mouseY := ebiten.CursorPosition()
	a.buttonHovered = mouseX >= buttonX && mouseX <= buttonX+buttonWidth &&
		mouseY >= buttonY && mouseY <= buttonY+buttonHeight

	if a.buttonHovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		a.buttonPressed = true
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if a.buttonPressed && a.buttonHovered {
			a.togglePlayback()
		}
		a.buttonPressed = false
	}
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.cfg.WindowWidth, a.cfg.WindowHeight
}
