package state

import (
	"errors"
	"time"
)

// catalogRetryDelay — пауза между попытками войти в фазу расстановки.
const catalogRetryDelay = 2 * time.Second

// placementEntry пытается войти в фазу расстановки и не повторяет попытку чаще catalogRetryDelay.
type placementEntry struct {
	wait float64
}

// try возвращает true, если фаза расстановки установлена.
func (e *placementEntry) try(sm *StateMachine, session *Session, deltaTime float64) bool {
	if e.wait > 0 {
		e.wait -= deltaTime
		return false
	}
	next, err := NewPlacementState(sm, session)
	if err != nil {
		e.wait = catalogRetryDelay.Seconds()
		session.Logger.Error("cannot enter placement phase", "err", err, "catalog", errors.Is(err, ErrCatalogLoad))
		return false
	}
	session.Logger.Info("phase changed", "to", "placement")
	sm.SetState(next)
	return true
}
