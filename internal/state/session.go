package state

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"tower-defense-client/internal/interfaces"
	"tower-defense-client/internal/shop"
	"tower-defense-client/internal/ui"
)

// Textures — текстуры, которыми владеет одна фаза.
type Textures interface {
	shop.TextureSource
	Heart() *ebiten.Image
	Coin() *ebiten.Image
	Dispose()
}

// Session — общий контекст, который фазы передают друг другу.
type Session struct {
	Snapshot    interfaces.Snapshot
	Gateway     interfaces.Gateway
	Pointer     ui.Pointer
	NewTextures func() Textures
	Logger      *log.Logger

	// Номер текущей волны, считается на клиенте.
	Wave int
}
