package utils

import (
	"image"
	"math"

	"tower-defense-client/internal/types"
)

// PixelToCell преобразует координаты сцены в клетку сетки.
// Границы карты здесь не проверяются: клетку за пределами карты отклонит сервер.
func PixelToCell(x, y float64, tile types.TileSize) types.Cell {
	return types.Cell{
		X: int(math.Floor(x / tile.Width)),
		Y: int(math.Floor(y / tile.Height)),
	}
}

// CellToRect возвращает прямоугольник клетки в пикселях сцены.
func CellToRect(c types.Cell, tile types.TileSize) image.Rectangle {
	x0 := int(math.Round(float64(c.X) * tile.Width))
	y0 := int(math.Round(float64(c.Y) * tile.Height))
	x1 := int(math.Round(float64(c.X+1) * tile.Width))
	y1 := int(math.Round(float64(c.Y+1) * tile.Height))
	return image.Rect(x0, y0, x1, y1)
}
