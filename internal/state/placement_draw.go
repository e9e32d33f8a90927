package state

import (
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"tower-defense-client/internal/config"
	"tower-defense-client/internal/shop"
	"tower-defense-client/internal/ui"
)

// Draw рисует карту, башни, панель магазина и ресурсы.
// Только чтение: состояние игры здесь не меняется.
func (s *PlacementState) Draw(screen *ebiten.Image) {
	if s.disposed {
		return
	}
	screen.Fill(config.BackgroundColor)
	drawMap(screen)
	drawPlacedTowers(screen, s.session.Snapshot, s.textures)
	drawSidebar(screen, "SHOP")

	health, hasHealth := s.session.Snapshot.Health()
	s.healthIndicator.Draw(screen, s.textures.Heart(), health, hasHealth)
	money, hasMoney := s.session.Snapshot.Money()
	s.moneyIndicator.Draw(screen, s.textures.Coin(), money, hasMoney)

	for i, button := range s.towerButtons {
		button.Draw(screen)
		drawImageIn(screen, s.catalog.Texture(i), shop.IconRect(i))

		price := strconv.Itoa(s.catalog.Tower(i).MediumCost)
		origin := shop.PriceOrigin(i)
		coin := s.textures.Coin()
		if coin != nil {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(
				float64(origin.X-ui.TextWidth(price)/2-config.SmallIconSize-config.SmallIconSpacing),
				float64(origin.Y-config.SmallIconSize/2),
			)
			screen.DrawImage(coin, op)
		}
		ui.DrawCentered(screen, price, origin.X+config.SmallIconSpacing, origin.Y, config.TextLightColor)
	}
	s.startWaveButton.Draw(screen)

	if s.selectedTower != nil {
		// подсветка карты в режиме расстановки
		r := s.mapSurface.Rect
		vector.StrokeRect(screen, float32(r.Min.X)+1, float32(r.Min.Y)+1, float32(r.Dx())-2, float32(r.Dy())-2, 2, config.ButtonStrokeColor, true)
	}
	s.notice.Draw(screen)
}
