package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"tower-defense-client/internal/config"
	"tower-defense-client/internal/event"
)

// NoticeBanner показывает игроку короткое сообщение.
type NoticeBanner struct {
	X, Y, Width int
	message     string
	info        bool
	remaining   float64
}

func NewNoticeBanner(x, y, width int) *NoticeBanner {
	return &NoticeBanner{X: x, Y: y, Width: width}
}

// OnEvent принимает события с event.Notice в данных.
func (n *NoticeBanner) OnEvent(e event.Event) {
	if notice, ok := e.Data.(event.Notice); ok {
		n.show(notice)
	}
}

func (n *NoticeBanner) show(notice event.Notice) {
	n.message = notice.Message
	n.info = notice.Info
	n.remaining = config.NoticeDuration
}

// Message возвращает текущее сообщение или "", если баннер скрыт.
func (n *NoticeBanner) Message() string {
	if n.remaining <= 0 {
		return ""
	}
	return n.message
}

func (n *NoticeBanner) Update(deltaTime float64) {
	if n.remaining > 0 {
		n.remaining -= deltaTime
	}
}

func (n *NoticeBanner) Draw(screen *ebiten.Image) {
	msg := n.Message()
	if msg == "" {
		return
	}
	height := config.TextHeight + 16
	bg := config.NoticeColor
	if n.info {
		bg = config.InfoColor
	}
	vector.DrawFilledRect(screen, float32(n.X), float32(n.Y), float32(n.Width), float32(height), bg, true)
	DrawCentered(screen, msg, n.X+n.Width/2, n.Y+height/2, config.TextLightColor)
}
