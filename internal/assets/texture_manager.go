package assets

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"tower-defense-client/internal/config"
)

const placeholderSize = 64

// TextureManager загружает, кэширует и освобождает текстуры одной фазы.
type TextureManager struct {
	dir      string
	towers   map[int]*ebiten.Image
	icons    map[string]*ebiten.Image
	disposed bool
	logger   *log.Logger
}

// NewTextureManager создаёт менеджер, который ищет PNG в каталоге dir.
// Изображения создаются лениво, при первом запросе.
func NewTextureManager(dir string, logger *log.Logger) *TextureManager {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &TextureManager{
		dir:    dir,
		towers: make(map[int]*ebiten.Image),
		icons:  make(map[string]*ebiten.Image),
		logger: logger.WithPrefix("assets"),
	}
}

// TowerTexture возвращает текстуру башни. Если файла нет, рисуется заглушка.
func (m *TextureManager) TowerTexture(typeID int) (*ebiten.Image, error) {
	if m.disposed {
		return nil, fmt.Errorf("texture manager disposed")
	}
	if img, ok := m.towers[typeID]; ok {
		return img, nil
	}

	path := filepath.Join(m.dir, "towers", fmt.Sprintf("%d.png", typeID))
	var img *ebiten.Image
	if _, err := os.Stat(path); err == nil {
		img, _, err = ebitenutil.NewImageFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
		m.logger.Debug("tower texture loaded", "type", typeID, "path", path)
	} else {
		img = towerPlaceholder(typeID)
	}
	m.towers[typeID] = img
	return img, nil
}

// Heart — иконка здоровья.
func (m *TextureManager) Heart() *ebiten.Image {
	return m.icon("heart", config.HeartColor)
}

// Coin — иконка денег.
func (m *TextureManager) Coin() *ebiten.Image {
	return m.icon("coin", config.MoneyColor)
}

func (m *TextureManager) icon(name string, c color.RGBA) *ebiten.Image {
	if m.disposed {
		return nil
	}
	if img, ok := m.icons[name]; ok {
		return img
	}
	img := ebiten.NewImage(config.SmallIconSize, config.SmallIconSize)
	r := float32(config.SmallIconSize) / 2
	vector.DrawFilledCircle(img, r, r, r, c, true)
	m.icons[name] = img
	return img
}

// Dispose освобождает все изображения. Повторный вызов ничего не делает.
func (m *TextureManager) Dispose() {
	if m.disposed {
		return
	}
	m.disposed = true
	for id, img := range m.towers {
		img.Deallocate()
		delete(m.towers, id)
	}
	for name, img := range m.icons {
		img.Deallocate()
		delete(m.icons, name)
	}
	m.logger.Debug("textures released")
}

func towerPlaceholder(typeID int) *ebiten.Image {
	palette := config.TowerPlaceholderSet
	c := palette[((typeID%len(palette))+len(palette))%len(palette)]
	img := ebiten.NewImage(placeholderSize, placeholderSize)
	half := float32(placeholderSize) / 2
	vector.DrawFilledCircle(img, half, half, half*0.8, c, true)
	vector.StrokeCircle(img, half, half, half*0.8, 2, config.ButtonStrokeColor, true)
	return img
}
