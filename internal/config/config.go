// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
	MaxDeltaTime = 0.06

	// Боковая панель магазина справа от карты.
	SidebarWidth     = 320
	SidebarSpacing   = 48
	ShopTowerSize    = 64
	ShopTowerPadding = 16
	SmallIconSize    = 20
	SmallIconSpacing = 6
	MenuButtonHeight = 96
	ListItemHeight   = 48

	// Ширина игрового поля (без панели).
	MapWidth = ScreenWidth - SidebarWidth

	NoticeDuration = 3.0 // секунды
	TextHeight     = 13
)

var (
	BackgroundColor     = color.RGBA{20, 20, 30, 255}
	MapColor            = color.RGBA{70, 100, 120, 255}
	SidebarColor        = color.RGBA{40, 44, 60, 255}
	ButtonColor         = color.RGBA{70, 130, 180, 230}
	ButtonStrokeColor   = color.RGBA{240, 240, 240, 255}
	TextLightColor      = color.RGBA{240, 240, 240, 255}
	HeartColor          = color.RGBA{220, 60, 60, 255}
	MoneyColor          = color.RGBA{255, 215, 0, 255}
	NoticeColor         = color.RGBA{150, 70, 70, 230}
	InfoColor           = color.RGBA{60, 120, 80, 230}
	StartWaveColor      = color.RGBA{220, 60, 60, 230}
	TowerPlaceholderSet = []color.RGBA{
		{255, 50, 50, 255},
		{50, 255, 50, 255},
		{50, 100, 255, 255},
		{180, 50, 230, 255},
		{255, 215, 0, 255},
		{128, 128, 128, 255},
	}
)
