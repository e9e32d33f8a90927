// internal/types/types.go
package types

// Cell — координата клетки сетки (столбец, строка).
type Cell struct {
	X, Y int
}

// TileSize — размер одной клетки карты в пикселях сцены.
type TileSize struct {
	Width, Height float64
}

// Phase — фаза игры, которую сообщает сервер.
type Phase int

const (
	PhasePlacement Phase = iota
	PhaseCombat
	PhaseLobby
)

func (p Phase) String() string {
	switch p {
	case PhasePlacement:
		return "placement"
	case PhaseCombat:
		return "combat"
	case PhaseLobby:
		return "lobby"
	}
	return "unknown"
}

// ParsePhase переводит строку сервера в Phase.
// Сервер исторически называет бой "fight".
func ParsePhase(s string) (Phase, bool) {
	switch s {
	case "placement":
		return PhasePlacement, true
	case "fight", "combat":
		return PhaseCombat, true
	case "lobby":
		return PhaseLobby, true
	}
	return PhasePlacement, false
}

// TowerDefinition — покупаемый тип башни из каталога сервера.
type TowerDefinition struct {
	TypeNumber int    `json:"TypeNumber" msgpack:"TypeNumber"`
	MediumCost int    `json:"MediumCost" msgpack:"MediumCost"`
	Name       string `json:"Name,omitempty" msgpack:"Name,omitempty"`
}

// PlacedTower — башня, уже стоящая на карте.
type PlacedTower struct {
	Type     int  `json:"type" msgpack:"type"`
	Position Cell `json:"position" msgpack:"position"`
}
