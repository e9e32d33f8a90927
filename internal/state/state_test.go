package state

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"tower-defense-client/internal/types"
)

type recordingState struct {
	name string
	log  *[]string
}

func (r *recordingState) Enter() { *r.log = append(*r.log, r.name+".enter") }
func (r *recordingState) Update(float64) { *r.log = append(*r.log, r.name+".update") }
func (r *recordingState) Draw(*ebiten.Image) {}
func (r *recordingState) Exit() { *r.log = append(*r.log, r.name+".exit") }

func TestStateMachine(t *testing.T) {
	var log []string
	sm := NewStateMachine()
	sm.Update(0) // без состояния ничего не происходит

	a := &recordingState{name: "a", log: &log}
	b := &recordingState{name: "b", log: &log}
	sm.SetState(a)
	sm.Update(0)
	sm.SetState(b)
	sm.Shutdown()

	want := []string{"a.enter", "a.update", "a.exit", "b.enter", "b.exit"}
	if len(log) != len(want) {
		t.Fatalf("log = %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("log = %v, want %v", log, want)
		}
	}
	if sm.Current() != nil {
		t.Error("Shutdown must leave no current state")
	}
}

func TestLobbyEntersPlacement(t *testing.T) {
	h := newHarness()
	h.snapshot.setPhase(types.PhaseLobby)
	h.sm.SetState(NewLobbyState(h.sm, h.session))

	h.tick()
	if _, ok := h.sm.Current().(*LobbyState); !ok {
		t.Fatalf("current state = %T, want *LobbyState", h.sm.Current())
	}

	h.snapshot.setPhase(types.PhasePlacement)
	h.tick()
	if _, ok := h.sm.Current().(*PlacementState); !ok {
		t.Fatalf("current state = %T, want *PlacementState", h.sm.Current())
	}
}

func TestLobbyRetriesCatalogLoad(t *testing.T) {
	h := newHarness()
	h.gateway.catalogErr = errors.New("down")
	h.snapshot.setPhase(types.PhasePlacement)
	h.sm.SetState(NewLobbyState(h.sm, h.session))

	h.tick()
	h.tick()
	if n := h.gateway.catalogFetches(); n != 1 {
		t.Fatalf("catalog fetched %d times, want 1 before the retry delay", n)
	}
	if _, ok := h.sm.Current().(*LobbyState); !ok {
		t.Fatalf("current state = %T, want *LobbyState", h.sm.Current())
	}

	h.gateway.mu.Lock()
	h.gateway.catalogErr = nil
	h.gateway.mu.Unlock()
	h.sm.Update(catalogRetryDelay.Seconds())
	h.tick()
	if _, ok := h.sm.Current().(*PlacementState); !ok {
		t.Fatalf("current state = %T, want *PlacementState after retry", h.sm.Current())
	}
	if n := h.gateway.catalogFetches(); n != 2 {
		t.Errorf("catalog fetched %d times, want 2", n)
	}
}

func TestLobbyGoesToCombat(t *testing.T) {
	h := newHarness()
	h.snapshot.setPhase(types.PhaseCombat)
	h.sm.SetState(NewLobbyState(h.sm, h.session))
	h.tick()
	if _, ok := h.sm.Current().(*WaveState); !ok {
		t.Fatalf("current state = %T, want *WaveState", h.sm.Current())
	}
	if h.session.Wave != 1 {
		t.Errorf("wave = %d, want 1", h.session.Wave)
	}
}

func TestWaveStateTransitions(t *testing.T) {
	h := newHarness()
	h.snapshot.setPhase(types.PhaseCombat)
	w := NewWaveState(h.sm, h.session)
	h.sm.SetState(w)

	h.tick()
	if h.sm.Current() != w {
		t.Fatal("wave must continue while the snapshot says combat")
	}

	h.snapshot.setPhase(types.PhasePlacement)
	h.tick()
	if _, ok := h.sm.Current().(*PlacementState); !ok {
		t.Fatalf("current state = %T, want *PlacementState", h.sm.Current())
	}
	if h.textures[0].disposed != 1 {
		t.Error("wave textures must be released on exit")
	}

	h.snapshot.setPhase(types.PhaseLobby)
	h.tick()
	if _, ok := h.sm.Current().(*LobbyState); !ok {
		t.Fatalf("current state = %T, want *LobbyState", h.sm.Current())
	}
}

func TestWaveExitTwice(t *testing.T) {
	h := newHarness()
	w := NewWaveState(h.sm, h.session)
	w.Exit()
	w.Exit()
	if h.textures[0].disposed != 1 {
		t.Errorf("textures disposed %d times, want 1", h.textures[0].disposed)
	}
}
