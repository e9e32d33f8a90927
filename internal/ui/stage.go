package ui

import "image"

// ClickListener получает координаты клика относительно актёра.
type ClickListener func(x, y float64)

// Actor — прямоугольная область экрана со слушателями кликов.
type Actor struct {
	Name      string
	Rect      image.Rectangle
	listeners []ClickListener
}

func NewActor(name string, rect image.Rectangle) *Actor {
	return &Actor{Name: name, Rect: rect}
}

func (a *Actor) AddListener(l ClickListener) {
	a.listeners = append(a.listeners, l)
}

func (a *Actor) ClearListeners() {
	a.listeners = nil
}

func (a *Actor) ListenerCount() int {
	return len(a.listeners)
}

// Contains проверяет, попадает ли точка экрана в актёра.
func (a *Actor) Contains(x, y int) bool {
	return image.Pt(x, y).In(a.Rect)
}

// Stage раздаёт клики актёрам. Клик получает только верхний актёр под курсором.
type Stage struct {
	actors []*Actor
}

func NewStage() *Stage {
	return &Stage{}
}

// AddActor добавляет актёра поверх уже добавленных.
func (s *Stage) AddActor(a *Actor) {
	s.actors = append(s.actors, a)
}

// Dispatch передаёт клик верхнему актёру под точкой.
// Возвращает true, если у этого актёра были слушатели.
// Слушатель может менять список слушателей: вызываются слушатели, которые были на момент клика.
func (s *Stage) Dispatch(x, y int) bool {
	for i := len(s.actors) - 1; i >= 0; i-- {
		a := s.actors[i]
		if !a.Contains(x, y) {
			continue
		}
		listeners := append([]ClickListener(nil), a.listeners...)
		lx := float64(x - a.Rect.Min.X)
		ly := float64(y - a.Rect.Min.Y)
		for _, l := range listeners {
			l(lx, ly)
		}
		return len(listeners) > 0
	}
	return false
}

// Clear снимает всех слушателей и убирает актёров.
func (s *Stage) Clear() {
	for _, a := range s.actors {
		a.ClearListeners()
	}
	s.actors = nil
}
