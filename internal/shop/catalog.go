package shop

import (
	"context"
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"tower-defense-client/internal/types"
)

// ErrEmptyCatalog — сервер вернул пустой каталог.
var ErrEmptyCatalog = errors.New("tower catalog is empty")

// CatalogFetcher — часть шлюза, нужная каталогу.
type CatalogFetcher interface {
	FetchTowerCatalog(ctx context.Context) ([]types.TowerDefinition, error)
}

// TextureSource выдаёт текстуру башни по её типу.
type TextureSource interface {
	TowerTexture(typeID int) (*ebiten.Image, error)
}

// Catalog — башни магазина в порядке сервера и их текстуры.
// После загрузки не меняется.
type Catalog struct {
	towers   []types.TowerDefinition
	textures []*ebiten.Image
}

// LoadCatalog один раз запрашивает каталог и заранее получает текстуры.
func LoadCatalog(ctx context.Context, gw CatalogFetcher, textures TextureSource) (*Catalog, error) {
	towers, err := gw.FetchTowerCatalog(ctx)
	if err != nil {
		return nil, err
	}
	if len(towers) == 0 {
		return nil, ErrEmptyCatalog
	}
	c := &Catalog{
		towers:   append([]types.TowerDefinition(nil), towers...),
		textures: make([]*ebiten.Image, len(towers)),
	}
	for i, t := range c.towers {
		img, err := textures.TowerTexture(t.TypeNumber)
		if err != nil {
			return nil, fmt.Errorf("texture for tower %d: %w", t.TypeNumber, err)
		}
		c.textures[i] = img
	}
	return c, nil
}

func (c *Catalog) Len() int { return len(c.towers) }

func (c *Catalog) Tower(i int) types.TowerDefinition { return c.towers[i] }

func (c *Catalog) Texture(i int) *ebiten.Image { return c.textures[i] }
