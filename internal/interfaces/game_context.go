// internal/interfaces/game_context.go
package interfaces

import (
	"context"

	"tower-defense-client/internal/types"
)

// Gateway — удалённый игровой сервер. Сетевые детали скрыты за реализацией.
// requestKey один на жест игрока: повторы с тем же ключом сервер отбрасывает.
type Gateway interface {
	FetchTowerCatalog(ctx context.Context) ([]types.TowerDefinition, error)
	PlaceTower(ctx context.Context, lobbyID, accessToken, requestKey string, typeID int, cell types.Cell) error
	StartRound(ctx context.Context, lobbyID, accessToken, requestKey string) error
}

// Snapshot — постоянно обновляемое представление состояния сервера.
// Каждый вызов возвращает свежие данные; два вызова подряд могут различаться.
type Snapshot interface {
	Phase() types.Phase
	Health() (int, bool)
	Money() (int, bool)
	// PlacedTowers всегда возвращает копию.
	PlacedTowers() []types.PlacedTower
	LobbyID() string
	AccessToken() string
	// TileSize отсутствует, пока карта не готова.
	TileSize() (types.TileSize, bool)
}
