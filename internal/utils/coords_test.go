package utils

import (
	"image"
	"testing"

	"tower-defense-client/internal/types"
)

func TestPixelToCell(t *testing.T) {
	tile := types.TileSize{Width: 64, Height: 64}
	tests := []struct {
		name string
		x, y float64
		tile types.TileSize
		want types.Cell
	}{
		{"origin", 0, 0, tile, types.Cell{X: 0, Y: 0}},
		{"inside", 130, 65, tile, types.Cell{X: 2, Y: 1}},
		{"edge", 63.999, 64, tile, types.Cell{X: 0, Y: 1}},
		{"negative x", -1, 0, tile, types.Cell{X: -1, Y: 0}},
		{"negative both", -65, -128, tile, types.Cell{X: -2, Y: -2}},
		{"non square", 100, 100, types.TileSize{Width: 40, Height: 30}, types.Cell{X: 2, Y: 3}},
		{"fractional tile", 10, 10, types.TileSize{Width: 2.5, Height: 3.3}, types.Cell{X: 4, Y: 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PixelToCell(tt.x, tt.y, tt.tile); got != tt.want {
				t.Errorf("PixelToCell(%v, %v) = %+v, want %+v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestCellToRect(t *testing.T) {
	tile := types.TileSize{Width: 32, Height: 16}
	got := CellToRect(types.Cell{X: 3, Y: 4}, tile)
	want := image.Rect(96, 64, 128, 80)
	if got != want {
		t.Errorf("CellToRect = %v, want %v", got, want)
	}

	// Клетка, полученная из точки внутри прямоугольника, совпадает с исходной.
	c := PixelToCell(float64(got.Min.X)+1, float64(got.Min.Y)+1, tile)
	if c != (types.Cell{X: 3, Y: 4}) {
		t.Errorf("round trip = %+v", c)
	}
}
