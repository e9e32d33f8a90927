package ui

import (
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"

	"tower-defense-client/internal/config"
)

// ResourceIndicator отображает иконку и число (здоровье или деньги).
type ResourceIndicator struct {
	X, Y int // центр блока
}

func NewResourceIndicator(x, y int) *ResourceIndicator {
	return &ResourceIndicator{X: x, Y: y}
}

// Draw рисует значение. Если значения нет, ничего не рисуется.
func (i *ResourceIndicator) Draw(screen *ebiten.Image, icon *ebiten.Image, value int, ok bool) {
	if !ok {
		return
	}
	s := strconv.Itoa(value)
	textWidth := TextWidth(s)
	if icon != nil {
		op := &ebiten.DrawImageOptions{}
		w, h := icon.Bounds().Dx(), icon.Bounds().Dy()
		op.GeoM.Scale(float64(config.SmallIconSize)/float64(w), float64(config.SmallIconSize)/float64(h))
		op.GeoM.Translate(
			float64(i.X-textWidth/2-config.SmallIconSize-config.SmallIconSpacing),
			float64(i.Y-config.SmallIconSize/2),
		)
		screen.DrawImage(icon, op)
	}
	DrawCentered(screen, s, i.X+config.SmallIconSpacing, i.Y, config.TextLightColor)
}
