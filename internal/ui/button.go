// internal/ui/button.go
package ui

import (
	"image"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"tower-defense-client/internal/config"
	"tower-defense-client/pkg/render"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	*Actor
	Lines         []string
	BgColor       color.RGBA
	TextColor     color.Color
	Active        bool
	LastClickTime time.Time
}

// NewButton создает новую кнопку и её актёра.
func NewButton(name string, rect image.Rectangle, lines ...string) *Button {
	return &Button{
		Actor:     NewActor(name, rect),
		Lines:     lines,
		BgColor:   config.ButtonColor,
		TextColor: config.TextLightColor,
	}
}

// Pressed запоминает момент нажатия для анимации.
func (b *Button) Pressed() {
	b.LastClickTime = time.Now()
}

// Draw отрисовывает кнопку. Неактивная кнопка рисуется затемнённой.
func (b *Button) Draw(screen *ebiten.Image) {
	bg := b.BgColor
	if !b.Active {
		bg = render.DarkenColor(bg)
	}
	// короткая «пульсация» после нажатия
	elapsed := time.Since(b.LastClickTime).Seconds()
	inset := float32(4 * (1 - math.Exp(-elapsed*8)))

	r := b.Rect
	x, y := float32(r.Min.X)+inset, float32(r.Min.Y)+inset
	w, h := float32(r.Dx())-2*inset, float32(r.Dy())-2*inset
	vector.DrawFilledRect(screen, x, y, w, h, bg, true)
	vector.StrokeRect(screen, x, y, w, h, 2, config.ButtonStrokeColor, true)

	if len(b.Lines) == 0 {
		return
	}
	cx := (r.Min.X + r.Max.X) / 2
	lineHeight := config.TextHeight + 4
	top := (r.Min.Y+r.Max.Y)/2 - lineHeight*(len(b.Lines)-1)/2
	for i, line := range b.Lines {
		DrawCentered(screen, line, cx, top+i*lineHeight, b.TextColor)
	}
}
