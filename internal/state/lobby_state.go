package state

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"tower-defense-client/internal/config"
	"tower-defense-client/internal/types"
	"tower-defense-client/internal/ui"
)

var _ State = (*LobbyState)(nil)

// LobbyState — ожидание начала игры.
type LobbyState struct {
	sm      *StateMachine
	session *Session
	logger  *log.Logger
	entry   placementEntry
	elapsed float64
}

func NewLobbyState(sm *StateMachine, session *Session) *LobbyState {
	return &LobbyState{sm: sm, session: session, logger: session.Logger.WithPrefix("lobby")}
}

func (l *LobbyState) Enter() {
	l.logger.Info("waiting for game", "lobby", l.session.Snapshot.LobbyID())
}

func (l *LobbyState) Update(deltaTime float64) {
	l.elapsed += deltaTime
	switch l.session.Snapshot.Phase() {
	case types.PhasePlacement:
		l.entry.try(l.sm, l.session, deltaTime)
	case types.PhaseCombat:
		l.logger.Info("phase changed", "to", types.PhaseCombat)
		l.sm.SetState(NewWaveState(l.sm, l.session))
	}
}

func (l *LobbyState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	dots := int(l.elapsed*2) % 4
	msg := "WAITING FOR PLAYERS"
	for i := 0; i < dots; i++ {
		msg += "."
	}
	ui.DrawCentered(screen, msg, config.ScreenWidth/2, config.ScreenHeight/2, config.TextLightColor)
}

func (l *LobbyState) Exit() {}
