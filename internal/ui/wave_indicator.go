package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"tower-defense-client/internal/config"
)

// WaveIndicator отображает номер волны римскими цифрами.
type WaveIndicator struct {
	X, Y             int
	Color            color.Color
	OutlineColor     color.Color
	OutlineThickness int
}

func NewWaveIndicator(x, y int) *WaveIndicator {
	return &WaveIndicator{
		X:                x,
		Y:                y,
		Color:            config.ButtonColor,
		OutlineColor:     config.TextLightColor,
		OutlineThickness: 1,
	}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Draw рисует номер волны с обводкой. Каждая десятая волна красная.
func (i *WaveIndicator) Draw(screen *ebiten.Image, wave int) {
	if wave <= 0 {
		return
	}
	s := toRoman(wave)
	textColor := i.Color
	if wave%10 == 0 {
		textColor = config.HeartColor
	}

	for dy := -i.OutlineThickness; dy <= i.OutlineThickness; dy++ {
		for dx := -i.OutlineThickness; dx <= i.OutlineThickness; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			DrawCentered(screen, s, i.X+dx, i.Y+dy, i.OutlineColor)
		}
	}
	DrawCentered(screen, s, i.X, i.Y, textColor)
}
