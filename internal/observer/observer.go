// internal/observer/observer.go
package observer

import (
	"sync"

	"tower-defense-client/internal/interfaces"
	"tower-defense-client/internal/types"
)

var _ interfaces.Snapshot = (*GameObserver)(nil)

// GameObserver хранит последнее известное состояние сервера.
// Пишет в него процесс синхронизации, читают контроллеры фаз.
type GameObserver struct {
	mu           sync.RWMutex
	lobbyID      string
	accessToken  string
	phase        types.Phase
	health       *int
	money        *int
	placedTowers []types.PlacedTower
	tileSize     *types.TileSize
}

// NewGameObserver создаёт наблюдателя для лобби lobbyID.
// Начальная фаза — лобби: сервер ещё ничего не сообщил.
func NewGameObserver(lobbyID, accessToken string) *GameObserver {
	return &GameObserver{
		lobbyID:     lobbyID,
		accessToken: accessToken,
		phase:       types.PhaseLobby,
	}
}

func (o *GameObserver) LobbyID() string {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.lobbyID
}

func (o *GameObserver) AccessToken() string {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.accessToken
}

func (o *GameObserver) Phase() types.Phase {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.phase
}

func (o *GameObserver) Health() (int, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	if o.health == nil {
		return 0, false
	}
	return *o.health, true
}

func (o *GameObserver) Money() (int, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	if o.money == nil {
		return 0, false
	}
	return *o.money, true
}

// PlacedTowers возвращает копию списка башен.
func (o *GameObserver) PlacedTowers() []types.PlacedTower {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return append([]types.PlacedTower(nil), o.placedTowers...)
}

func (o *GameObserver) TileSize() (types.TileSize, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	if o.tileSize == nil {
		return types.TileSize{}, false
	}
	return *o.tileSize, true
}

// SetTileSize задаёт размер клетки, когда карта готова к отрисовке.
// Неположительные размеры игнорируются.
func (o *GameObserver) SetTileSize(size types.TileSize) {
	if size.Width <= 0 || size.Height <= 0 {
		return
	}
	o.mu.Lock()
	o.tileSize = &size
	o.mu.Unlock()
}

// Apply применяет одно обновление от сервера.
// Возвращает false, если обновление не распознано.
func (o *GameObserver) Apply(u Update) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	switch u.Type {
	case UpdateGameState:
		p, ok := types.ParsePhase(u.GameState)
		if !ok {
			return false
		}
		o.phase = p
	case UpdateHealth:
		if u.Health == nil {
			return false
		}
		v := *u.Health
		o.health = &v
	case UpdateMoney:
		if u.Money == nil {
			return false
		}
		v := *u.Money
		o.money = &v
	case UpdateTowerPlaced:
		if u.Tower == nil {
			return false
		}
		o.placedTowers = append(o.placedTowers, *u.Tower)
	case UpdateTowers:
		o.placedTowers = append([]types.PlacedTower(nil), u.Towers...)
	case UpdateGameStage:
		if u.Stage == nil || u.Stage.TileWidth <= 0 || u.Stage.TileHeight <= 0 {
			return false
		}
		o.tileSize = &types.TileSize{Width: u.Stage.TileWidth, Height: u.Stage.TileHeight}
	default:
		return false
	}
	return true
}
