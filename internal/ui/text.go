package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

var face = text.NewGoXFace(basicfont.Face7x13)

// TextWidth — ширина строки в пикселях.
func TextWidth(s string) int {
	w, _ := text.Measure(s, face, 0)
	return int(math.Ceil(w))
}

// DrawCentered рисует строку с центром в (cx, cy).
func DrawCentered(screen *ebiten.Image, s string, cx, cy int, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(cx), float64(cy))
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, face, op)
}
