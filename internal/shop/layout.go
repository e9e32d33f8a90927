package shop

import (
	"image"

	"tower-defense-client/internal/config"
)

const (
	ButtonWidth  = config.SidebarWidth / 2
	ButtonHeight = config.ShopTowerSize + config.SidebarSpacing + config.ShopTowerPadding

	// Первые две строки панели заняты заголовком и ресурсами.
	shopTop = config.SidebarSpacing * 2
)

// Row — строка кнопки: по две кнопки в строке.
func Row(i int) int { return i / 2 }

// Column — столбец кнопки (0 — левый, 1 — правый).
func Column(i int) int { return i % 2 }

// ButtonRect — прямоугольник кнопки i в координатах экрана.
func ButtonRect(i int) image.Rectangle {
	x := config.ScreenWidth - config.SidebarWidth + Column(i)*ButtonWidth
	y := shopTop + Row(i)*ButtonHeight
	return image.Rect(x, y, x+ButtonWidth, y+ButtonHeight)
}

// IconRect — место текстуры башни внутри кнопки i.
func IconRect(i int) image.Rectangle {
	b := ButtonRect(i)
	cx := (b.Min.X + b.Max.X) / 2
	y := b.Min.Y + config.ShopTowerPadding
	return image.Rect(cx-config.ShopTowerSize/2, y, cx+config.ShopTowerSize/2, y+config.ShopTowerSize)
}

// PriceOrigin — точка, от которой рисуется цена под иконкой.
func PriceOrigin(i int) image.Point {
	b := ButtonRect(i)
	return image.Pt((b.Min.X+b.Max.X)/2, b.Max.Y-config.SidebarSpacing/2)
}

// StartWaveRect — кнопка начала волны внизу панели.
func StartWaveRect() image.Rectangle {
	y := config.ScreenHeight - config.ListItemHeight - config.MenuButtonHeight
	return image.Rect(config.ScreenWidth-config.SidebarWidth, y, config.ScreenWidth, y+config.MenuButtonHeight)
}

// MapRect — игровое поле слева от панели.
func MapRect() image.Rectangle {
	return image.Rect(0, 0, config.MapWidth, config.ScreenHeight)
}
