package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tinne26/etxt"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// textRenderer wraps a single etxt renderer and the two embedded fonts
// used for world text: goregular for names and axis labels, gomono for
// values.
type textRenderer struct {
	renderer *etxt.Renderer
	regular  *etxt.Font
	mono     *etxt.Font
}

func newTextRenderer() (*textRenderer, error) {
	regular, _, err := etxt.ParseFontBytes(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse regular font: %w", err)
	}
	mono, _, err := etxt.ParseFontBytes(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse mono font: %w", err)
	}
	return &textRenderer{
		renderer: etxt.NewStdRenderer(),
		regular:  regular,
		mono:     mono,
	}, nil
}

func (t *textRenderer) draw(screen *ebiten.Image, str string, x, y int, font *etxt.Font, sizePx int, clr color.Color, vert etxt.VertAlign, horz etxt.HorzAlign) {
	t.renderer.SetTarget(screen)
	t.renderer.SetFont(font)
	t.renderer.SetSizePx(sizePx)
	t.renderer.SetColor(clr)
	t.renderer.SetAlign(vert, horz)
	t.renderer.Draw(str, x, y)
}
