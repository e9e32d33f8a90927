package state

import (
	"context"
	"image"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"tower-defense-client/internal/shop"
	"tower-defense-client/internal/types"
)

type fakeSnapshot struct {
	mu     sync.Mutex
	phase  types.Phase
	health *int
	money  *int
	towers []types.PlacedTower
	tile   *types.TileSize
}

func (f *fakeSnapshot) Phase() types.Phase {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.phase
}

func (f *fakeSnapshot) setPhase(p types.Phase) {
	f.mu.Lock()
	f.phase = p
	f.mu.Unlock()
}

func (f *fakeSnapshot) Health() (int, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.health == nil {
		return 0, false
	}
	return *f.health, true
}

func (f *fakeSnapshot) Money() (int, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.money == nil {
		return 0, false
	}
	return *f.money, true
}

func (f *fakeSnapshot) PlacedTowers() []types.PlacedTower {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]types.PlacedTower(nil), f.towers...)
}

func (f *fakeSnapshot) LobbyID() string { return "lobby-7" }
func (f *fakeSnapshot) AccessToken() string { return "token" }

func (f *fakeSnapshot) TileSize() (types.TileSize, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.tile == nil {
		return types.TileSize{}, false
	}
	return *f.tile, true
}

func (f *fakeSnapshot) setTile(w, h float64) {
	f.mu.Lock()
	f.tile = &types.TileSize{Width: w, Height: h}
	f.mu.Unlock()
}

type placeCall struct {
	lobbyID, token, key string
	typeID              int
	cell                types.Cell
	ctx                 context.Context
}

type fakeGateway struct {
	mu           sync.Mutex
	catalog      []types.TowerDefinition
	catalogErr   error
	catalogCalls int
	places       []placeCall
	placeErr     error
	starts       []string
	startErr     error

	// если задан, запросы ждут закрытия канала
	gate chan struct{}
}

func (g *fakeGateway) FetchTowerCatalog(context.Context) ([]types.TowerDefinition, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.catalogCalls++
	return g.catalog, g.catalogErr
}

func (g *fakeGateway) PlaceTower(ctx context.Context, lobbyID, token, key string, typeID int, cell types.Cell) error {
	g.mu.Lock()
	g.places = append(g.places, placeCall{lobbyID: lobbyID, token: token, key: key, typeID: typeID, cell: cell, ctx: ctx})
	gate, err := g.gate, g.placeErr
	g.mu.Unlock()
	if gate != nil {
		<-gate
	}
	return err
}

func (g *fakeGateway) StartRound(ctx context.Context, lobbyID, token, key string) error {
	g.mu.Lock()
	g.starts = append(g.starts, key)
	gate, err := g.gate, g.startErr
	g.mu.Unlock()
	if gate != nil {
		<-gate
	}
	return err
}

func (g *fakeGateway) placeCalls() []placeCall {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]placeCall(nil), g.places...)
}

func (g *fakeGateway) startCalls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.starts)
}

func (g *fakeGateway) startKeys() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]string(nil), g.starts...)
}

func (g *fakeGateway) catalogFetches() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.catalogCalls
}

type fakePointer struct {
	clicks []image.Point
}

func (p *fakePointer) click(pt image.Point) {
	p.clicks = append(p.clicks, pt)
}

func (p *fakePointer) JustClicked() (int, int, bool) {
	if len(p.clicks) == 0 {
		return 0, 0, false
	}
	pt := p.clicks[0]
	p.clicks = p.clicks[1:]
	return pt.X, pt.Y, true
}

type fakeTextures struct {
	disposed int
}

func (f *fakeTextures) TowerTexture(int) (*ebiten.Image, error) { return nil, nil }
func (f *fakeTextures) Heart() *ebiten.Image { return nil }
func (f *fakeTextures) Coin() *ebiten.Image { return nil }
func (f *fakeTextures) Dispose() { f.disposed++ }

type harness struct {
	sm       *StateMachine
	session  *Session
	snapshot *fakeSnapshot
	gateway  *fakeGateway
	pointer  *fakePointer
	textures []*fakeTextures
}

func newHarness() *harness {
	h := &harness{
		sm:       NewStateMachine(),
		snapshot: &fakeSnapshot{phase: types.PhasePlacement},
		gateway: &fakeGateway{catalog: []types.TowerDefinition{
			{TypeNumber: 1, MediumCost: 50},
			{TypeNumber: 2, MediumCost: 100},
		}},
		pointer: &fakePointer{},
	}
	h.session = &Session{
		Snapshot: h.snapshot,
		Gateway:  h.gateway,
		Pointer:  h.pointer,
		NewTextures: func() Textures {
			t := &fakeTextures{}
			h.textures = append(h.textures, t)
			return t
		},
		Logger: log.New(io.Discard),
	}
	return h
}

// enterPlacement создаёт фазу расстановки с готовой картой 64x64.
func (h *harness) enterPlacement(t *testing.T) *PlacementState {
	t.Helper()
	h.snapshot.setTile(64, 64)
	s, err := NewPlacementState(h.sm, h.session)
	if err != nil {
		t.Fatalf("NewPlacementState: %v", err)
	}
	h.sm.SetState(s)
	return s
}

func (h *harness) tick() {
	h.sm.Update(1.0 / 60)
}

// tickUntil крутит кадры, пока cond не выполнится.
func (h *harness) tickUntil(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not met in time")
		}
		h.tick()
		time.Sleep(time.Millisecond)
	}
}

func center(r image.Rectangle) image.Point {
	return image.Pt((r.Min.X+r.Max.X)/2, (r.Min.Y+r.Max.Y)/2)
}

func shopButton(i int) image.Point { return center(shop.ButtonRect(i)) }

func startWaveButton() image.Point { return center(shop.StartWaveRect()) }
