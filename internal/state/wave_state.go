package state

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"tower-defense-client/internal/config"
	"tower-defense-client/internal/types"
	"tower-defense-client/internal/ui"
)

var _ State = (*WaveState)(nil)

// WaveState — фаза боя. Бой считает сервер, клиент только показывает башни и ресурсы.
type WaveState struct {
	sm       *StateMachine
	session  *Session
	logger   *log.Logger
	textures Textures
	health   *ui.ResourceIndicator
	money    *ui.ResourceIndicator
	wave     *ui.WaveIndicator
	entry    placementEntry
	disposed bool
}

func NewWaveState(sm *StateMachine, session *Session) *WaveState {
	resourceY := config.SidebarSpacing * 3 / 2
	return &WaveState{
		sm:       sm,
		session:  session,
		logger:   session.Logger.WithPrefix("wave"),
		textures: session.NewTextures(),
		health:   ui.NewResourceIndicator(config.ScreenWidth-config.SidebarWidth*3/4, resourceY),
		money:    ui.NewResourceIndicator(config.ScreenWidth-config.SidebarWidth/4, resourceY),
		wave:     ui.NewWaveIndicator(config.ScreenWidth-config.SidebarWidth/2, config.SidebarSpacing*3),
	}
}

func (w *WaveState) Enter() {
	w.session.Wave++
	w.logger.Info("wave started", "wave", w.session.Wave)
}

func (w *WaveState) Update(deltaTime float64) {
	if w.disposed {
		return
	}
	switch w.session.Snapshot.Phase() {
	case types.PhasePlacement:
		w.entry.try(w.sm, w.session, deltaTime)
	case types.PhaseLobby:
		w.logger.Info("phase changed", "to", types.PhaseLobby)
		w.sm.SetState(NewLobbyState(w.sm, w.session))
	}
}

func (w *WaveState) Draw(screen *ebiten.Image) {
	if w.disposed {
		return
	}
	screen.Fill(config.BackgroundColor)
	drawMap(screen)
	drawPlacedTowers(screen, w.session.Snapshot, w.textures)
	drawSidebar(screen, "WAVE")
	health, ok := w.session.Snapshot.Health()
	w.health.Draw(screen, w.textures.Heart(), health, ok)
	money, ok := w.session.Snapshot.Money()
	w.money.Draw(screen, w.textures.Coin(), money, ok)
	w.wave.Draw(screen, w.session.Wave)
}

func (w *WaveState) Exit() {
	if w.disposed {
		return
	}
	w.disposed = true
	w.textures.Dispose()
}
