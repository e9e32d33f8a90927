package render

import (
	"image/color"
	"testing"
)

func TestDarkenColor(t *testing.T) {
	got := DarkenColor(color.RGBA{200, 100, 51, 220})
	want := color.RGBA{100, 50, 25, 220}
	if got != want {
		t.Errorf("DarkenColor = %v, want %v", got, want)
	}
}

func TestScaleColorClamps(t *testing.T) {
	got := ScaleColor(color.RGBA{200, 10, 0, 255}, 2)
	want := color.RGBA{255, 20, 0, 255}
	if got != want {
		t.Errorf("ScaleColor = %v, want %v", got, want)
	}
}
