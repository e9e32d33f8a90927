// internal/state/placement_state.go
package state

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"tower-defense-client/internal/config"
	"tower-defense-client/internal/event"
	"tower-defense-client/internal/shop"
	"tower-defense-client/internal/types"
	"tower-defense-client/internal/ui"
	"tower-defense-client/internal/utils"
)

// ErrCatalogLoad — каталог башен не загрузился, фаза расстановки невозможна.
var ErrCatalogLoad = errors.New("tower catalog load failed")

var _ State = (*PlacementState)(nil)

type clickPoint struct {
	x, y float64
}

// PlacementState — фаза расстановки башен.
// Игрок выбирает башню в магазине и кликает по карте, сервер решает остальное.
type PlacementState struct {
	sm      *StateMachine
	session *Session
	logger  *log.Logger

	ctx    context.Context
	cancel context.CancelFunc

	textures Textures
	catalog  *shop.Catalog
	events   *event.Dispatcher

	stage           *ui.Stage
	mapSurface      *ui.Actor
	towerButtons    []*ui.Button
	startWaveButton *ui.Button
	healthIndicator *ui.ResourceIndicator
	moneyIndicator  *ui.ResourceIndicator
	notice          *ui.NoticeBanner

	// Выбранный тип башни; nil — режим магазина.
	selectedTower *int
	// Растёт при каждом выборе в магазине.
	selection uint64
	// Слушатели только выставляют флаги, применяются они в Update.
	changeMode   bool
	startWave    bool
	pendingClick *clickPoint

	placing  *request
	starting *request

	phase    types.Phase
	disposed bool
}

// NewPlacementState загружает каталог и строит интерфейс магазина.
// Ошибка оборачивает ErrCatalogLoad: без каталога фаза не начинается.
func NewPlacementState(sm *StateMachine, session *Session) (*PlacementState, error) {
	logger := session.Logger.WithPrefix("placement")
	textures := session.NewTextures()
	ctx, cancel := context.WithCancel(context.Background())

	catalog, err := shop.LoadCatalog(ctx, session.Gateway, textures)
	if err != nil {
		cancel()
		textures.Dispose()
		return nil, fmt.Errorf("%w: %w", ErrCatalogLoad, err)
	}
	logger.Info("tower catalog loaded", "towers", catalog.Len())

	s := &PlacementState{
		sm:       sm,
		session:  session,
		logger:   logger,
		ctx:      ctx,
		cancel:   cancel,
		textures: textures,
		catalog:  catalog,
		events:   event.NewDispatcher(),
		stage:    ui.NewStage(),
		phase:    types.PhasePlacement,
	}
	s.buildUI()
	return s, nil
}

func (s *PlacementState) buildUI() {
	resourceY := config.SidebarSpacing * 3 / 2
	s.healthIndicator = ui.NewResourceIndicator(config.ScreenWidth-config.SidebarWidth*3/4, resourceY)
	s.moneyIndicator = ui.NewResourceIndicator(config.ScreenWidth-config.SidebarWidth/4, resourceY)
	s.notice = ui.NewNoticeBanner(0, config.ScreenHeight-config.ListItemHeight, config.MapWidth)
	for _, t := range []event.EventType{event.TowerPlaced, event.PlacementRejected, event.StartRoundRequested, event.StartRoundRejected} {
		s.events.Subscribe(t, s.notice)
	}

	// Карта добавляется первой: кнопки панели лежат поверх неё и не пересекаются с ней.
	s.mapSurface = ui.NewActor("map", shop.MapRect())
	s.stage.AddActor(s.mapSurface)

	for i := 0; i < s.catalog.Len(); i++ {
		tower := s.catalog.Tower(i)
		button := ui.NewButton(fmt.Sprintf("tower-%d", tower.TypeNumber), shop.ButtonRect(i))
		typeID := tower.TypeNumber
		button.AddListener(func(x, y float64) {
			s.selectTower(typeID)
			button.Pressed()
		})
		s.towerButtons = append(s.towerButtons, button)
		s.stage.AddActor(button.Actor)
	}

	s.startWaveButton = ui.NewButton("start-wave", shop.StartWaveRect(), "RELEASE", "THE VIRUS")
	s.startWaveButton.BgColor = config.StartWaveColor
	s.startWaveButton.Active = true
	s.startWaveButton.AddListener(func(x, y float64) {
		s.startWave = true
		s.startWaveButton.Pressed()
	})
	s.stage.AddActor(s.startWaveButton.Actor)
}

func (s *PlacementState) Enter() {
	s.logger.Debug("entered")
}

// Update выполняет один кадр в строгом порядке:
// снимок -> смена фазы -> начало волны -> установка башни -> смена режима.
func (s *PlacementState) Update(deltaTime float64) {
	if s.disposed {
		return
	}
	s.notice.Update(deltaTime)

	s.phase = s.session.Snapshot.Phase()
	if s.transition(s.phase) {
		return
	}

	if x, y, ok := s.session.Pointer.JustClicked(); ok {
		s.stage.Dispatch(x, y)
	}

	s.flushStartWave()
	s.flushPlacement()
	s.flushMode()
}

// transition заменяет фазу, если сервер уже перешёл в другую.
func (s *PlacementState) transition(phase types.Phase) bool {
	switch phase {
	case types.PhaseCombat:
		s.logger.Info("phase changed", "to", phase)
		s.sm.SetState(NewWaveState(s.sm, s.session))
		return true
	case types.PhaseLobby:
		s.logger.Info("phase changed", "to", phase)
		s.sm.SetState(NewLobbyState(s.sm, s.session))
		return true
	}
	return false
}

// selectTower — слушатель кнопки магазина.
func (s *PlacementState) selectTower(typeID int) {
	s.selectedTower = &typeID
	s.selection++
	s.changeMode = true
	s.logger.Debug("tower selected", "type", typeID)
}

// onMapClick — слушатель карты в режиме расстановки. Побеждает первый клик жеста.
func (s *PlacementState) onMapClick(x, y float64) {
	if s.pendingClick != nil || s.placing != nil {
		return
	}
	s.pendingClick = &clickPoint{x: x, y: y}
}

func (s *PlacementState) flushStartWave() {
	if s.starting != nil {
		if finished, err := s.starting.poll(); finished {
			s.starting = nil
			if err != nil {
				s.logger.Warn("start round rejected", "err", err)
				s.events.Dispatch(event.Event{Type: event.StartRoundRejected, Data: event.Notice{Message: noticeText("Cannot start the wave", err)}})
			} else {
				s.logger.Info("start round acknowledged")
			}
		}
	}

	if !s.startWave {
		return
	}
	// Как и установка, старт ждёт готовности карты.
	if _, ok := s.session.Snapshot.TileSize(); !ok {
		return
	}
	s.startWave = false
	if s.starting != nil || s.phase != types.PhasePlacement {
		return
	}

	lobbyID, token := s.session.Snapshot.LobbyID(), s.session.Snapshot.AccessToken()
	key := uuid.NewString()
	s.starting = startRequest(s.ctx, func(ctx context.Context) error {
		return s.session.Gateway.StartRound(ctx, lobbyID, token, key)
	})
	s.logger.Info("start round requested", "key", key)
	s.events.Dispatch(event.Event{Type: event.StartRoundRequested, Data: event.Notice{Message: "Wave requested", Info: true}})
}

func (s *PlacementState) flushPlacement() {
	if s.placing != nil {
		finished, err := s.placing.poll()
		if !finished {
			s.pendingClick = nil
			return
		}
		sent := s.placing.selection
		s.placing = nil
		// новый выбор, сделанный во время запроса, остаётся в силе
		if s.selection == sent {
			s.selectedTower = nil
			s.changeMode = true
		}
		if err != nil {
			s.logger.Warn("placement rejected", "err", err)
			s.events.Dispatch(event.Event{Type: event.PlacementRejected, Data: event.Notice{Message: noticeText("Cannot place tower", err)}})
		} else {
			s.logger.Info("placement acknowledged")
			s.events.Dispatch(event.Event{Type: event.TowerPlaced, Data: event.Notice{Message: "Tower placed", Info: true}})
		}
	}

	if s.pendingClick == nil {
		return
	}
	click := *s.pendingClick
	s.pendingClick = nil

	if s.selectedTower == nil || s.phase != types.PhasePlacement {
		return
	}
	tile, ok := s.session.Snapshot.TileSize()
	if !ok {
		return
	}
	cell := utils.PixelToCell(click.x, click.y, tile)
	typeID := *s.selectedTower
	lobbyID, token := s.session.Snapshot.LobbyID(), s.session.Snapshot.AccessToken()
	key := uuid.NewString()
	s.placing = startRequest(s.ctx, func(ctx context.Context) error {
		return s.session.Gateway.PlaceTower(ctx, lobbyID, token, key, typeID, cell)
	})
	s.placing.selection = s.selection
	s.logger.Info("placement requested", "type", typeID, "x", cell.X, "y", cell.Y, "key", key)
}

// flushMode включает слушатель карты для выбранной башни или снимает его.
func (s *PlacementState) flushMode() {
	if !s.changeMode {
		return
	}
	if s.selectedTower == nil {
		s.shopMode()
	} else if !s.placementMode() {
		// карта ещё не готова, попробуем в следующем кадре
		return
	}
	s.changeMode = false

	for i, b := range s.towerButtons {
		b.Active = s.selectedTower != nil && s.catalog.Tower(i).TypeNumber == *s.selectedTower
	}
}

func (s *PlacementState) shopMode() {
	s.mapSurface.ClearListeners()
}

func (s *PlacementState) placementMode() bool {
	s.mapSurface.ClearListeners()
	if _, ok := s.session.Snapshot.TileSize(); !ok {
		return false
	}
	s.mapSurface.AddListener(s.onMapClick)
	return true
}

// Selection возвращает выбранный тип башни.
func (s *PlacementState) Selection() (int, bool) {
	if s.selectedTower == nil {
		return 0, false
	}
	return *s.selectedTower, true
}

// Placing сообщает, что выбрана башня (режим расстановки).
func (s *PlacementState) Placing() bool {
	return s.selectedTower != nil
}

// Exit вызывается машиной состояний при смене фазы.
func (s *PlacementState) Exit() {
	s.Dispose()
}

// Dispose снимает слушатели, отменяет запросы и освобождает текстуры.
// Повторный вызов ничего не делает.
func (s *PlacementState) Dispose() {
	if s.disposed {
		return
	}
	s.disposed = true
	s.cancel()
	s.stage.Clear()
	s.events.UnsubscribeAll()
	s.textures.Dispose()
	s.placing, s.starting, s.pendingClick = nil, nil, nil
	s.logger.Debug("disposed")
}
