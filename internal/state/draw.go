package state

import (
	"errors"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"tower-defense-client/internal/api"
	"tower-defense-client/internal/config"
	"tower-defense-client/internal/interfaces"
	"tower-defense-client/internal/shop"
	"tower-defense-client/internal/ui"
	"tower-defense-client/internal/utils"
)

func drawMap(screen *ebiten.Image) {
	r := shop.MapRect()
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), config.MapColor, false)
}

func drawSidebar(screen *ebiten.Image, title string) {
	x := float32(config.ScreenWidth - config.SidebarWidth)
	vector.DrawFilledRect(screen, x, 0, config.SidebarWidth, config.ScreenHeight, config.SidebarColor, false)
	ui.DrawCentered(screen, title, config.ScreenWidth-config.SidebarWidth/2, config.SidebarSpacing/2, config.TextLightColor)
}

// drawPlacedTowers рисует башни из снимка. Пока размер клетки неизвестен, ничего не рисует.
func drawPlacedTowers(screen *ebiten.Image, snapshot interfaces.Snapshot, textures shop.TextureSource) {
	tile, ok := snapshot.TileSize()
	if !ok {
		return
	}
	// PlacedTowers возвращает копию: фоновая синхронизация может дописывать башни во время кадра
	for _, tower := range snapshot.PlacedTowers() {
		img, err := textures.TowerTexture(tower.Type)
		if err != nil {
			continue
		}
		drawImageIn(screen, img, utils.CellToRect(tower.Position, tile))
	}
}

// drawImageIn масштабирует img в прямоугольник r.
func drawImageIn(screen, img *ebiten.Image, r image.Rectangle) {
	if img == nil || r.Empty() {
		return
	}
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.Dx())/float64(b.Dx()), float64(r.Dy())/float64(b.Dy()))
	op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
	screen.DrawImage(img, op)
}

// noticeText — короткое сообщение для игрока.
func noticeText(prefix string, err error) string {
	var reqErr *api.RequestError
	if errors.As(err, &reqErr) && reqErr.Message != "" {
		return prefix + ": " + reqErr.Message
	}
	if errors.Is(err, api.ErrRejected) {
		return prefix + ": rejected by server"
	}
	return prefix + ": server unreachable"
}
