package observer

import (
	"sync"
	"testing"

	"tower-defense-client/internal/types"
)

func intPtr(v int) *int { return &v }

func TestNewGameObserverDefaults(t *testing.T) {
	o := NewGameObserver("7", "tok")
	if o.LobbyID() != "7" || o.AccessToken() != "tok" {
		t.Errorf("session = %q/%q", o.LobbyID(), o.AccessToken())
	}
	if o.Phase() != types.PhaseLobby {
		t.Errorf("Phase = %v, want lobby", o.Phase())
	}
	if _, ok := o.Health(); ok {
		t.Error("health must be absent")
	}
	if _, ok := o.Money(); ok {
		t.Error("money must be absent")
	}
	if _, ok := o.TileSize(); ok {
		t.Error("tile size must be absent")
	}
}

func TestApply(t *testing.T) {
	o := NewGameObserver("7", "tok")

	steps := []struct {
		u    Update
		want bool
	}{
		{Update{Type: UpdateGameState, GameState: "placement"}, true},
		{Update{Type: UpdateHealth, Health: intPtr(20)}, true},
		{Update{Type: UpdateMoney, Money: intPtr(150)}, true},
		{Update{Type: UpdateTowerPlaced, Tower: &types.PlacedTower{Type: 1, Position: types.Cell{X: 3, Y: 4}}}, true},
		{Update{Type: UpdateGameStage, Stage: &Stage{TileWidth: 64, TileHeight: 48}}, true},
		{Update{Type: UpdateGameState, GameState: "banana"}, false},
		{Update{Type: UpdateHealth}, false},
		{Update{Type: UpdateGameStage, Stage: &Stage{TileWidth: 0, TileHeight: 48}}, false},
		{Update{Type: "chat"}, false},
	}
	for i, s := range steps {
		if got := o.Apply(s.u); got != s.want {
			t.Errorf("step %d: Apply(%v) = %v, want %v", i, s.u.Type, got, s.want)
		}
	}

	if o.Phase() != types.PhasePlacement {
		t.Errorf("Phase = %v", o.Phase())
	}
	if h, ok := o.Health(); !ok || h != 20 {
		t.Errorf("Health = %d, %v", h, ok)
	}
	if m, ok := o.Money(); !ok || m != 150 {
		t.Errorf("Money = %d, %v", m, ok)
	}
	if ts, ok := o.TileSize(); !ok || ts != (types.TileSize{Width: 64, Height: 48}) {
		t.Errorf("TileSize = %+v, %v", ts, ok)
	}
	towers := o.PlacedTowers()
	if len(towers) != 1 || towers[0].Position != (types.Cell{X: 3, Y: 4}) {
		t.Errorf("PlacedTowers = %+v", towers)
	}

	o.Apply(Update{Type: UpdateGameState, GameState: "fight"})
	if o.Phase() != types.PhaseCombat {
		t.Errorf("fight must map to combat, got %v", o.Phase())
	}
	o.Apply(Update{Type: UpdateTowers})
	if len(o.PlacedTowers()) != 0 {
		t.Error("empty towers update must clear the list")
	}
}

func TestPlacedTowersReturnsCopy(t *testing.T) {
	o := NewGameObserver("1", "t")
	o.Apply(Update{Type: UpdateTowerPlaced, Tower: &types.PlacedTower{Type: 1}})

	towers := o.PlacedTowers()
	towers[0].Type = 99
	_ = append(towers, types.PlacedTower{Type: 5})

	if got := o.PlacedTowers(); len(got) != 1 || got[0].Type != 1 {
		t.Errorf("observer state changed through copy: %+v", got)
	}
}

func TestConcurrentAppendWhileReading(t *testing.T) {
	o := NewGameObserver("1", "t")
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			o.Apply(Update{Type: UpdateTowerPlaced, Tower: &types.PlacedTower{Type: i}})
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			for range o.PlacedTowers() {
			}
		}
	}()
	wg.Wait()
	if n := len(o.PlacedTowers()); n != 500 {
		t.Errorf("got %d towers, want 500", n)
	}
}

func TestSetTileSizeIgnoresInvalid(t *testing.T) {
	o := NewGameObserver("1", "t")
	o.SetTileSize(types.TileSize{Width: -1, Height: 10})
	if _, ok := o.TileSize(); ok {
		t.Fatal("invalid size must be ignored")
	}
	o.SetTileSize(types.TileSize{Width: 32, Height: 32})
	if ts, ok := o.TileSize(); !ok || ts.Width != 32 {
		t.Errorf("TileSize = %+v, %v", ts, ok)
	}
}
