package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Pointer — источник кликов. Опрашивается раз за кадр.
type Pointer interface {
	JustClicked() (x, y int, ok bool)
}

// MousePointer читает левую кнопку мыши и касания экрана.
type MousePointer struct {
	touches []ebiten.TouchID
}

func (p *MousePointer) JustClicked() (int, int, bool) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return x, y, true
	}
	p.touches = inpututil.AppendJustPressedTouchIDs(p.touches[:0])
	if len(p.touches) > 0 {
		x, y := ebiten.TouchPosition(p.touches[0])
		return x, y, true
	}
	return 0, 0, false
}
