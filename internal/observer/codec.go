package observer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/pierrec/lz4/v4"
	"github.com/vmihailenco/msgpack/v5"

	"tower-defense-client/internal/types"
)

// UpdateType — тип сообщения от сервера.
type UpdateType string

const (
	UpdateGameState   UpdateType = "gameState"
	UpdateHealth      UpdateType = "health"
	UpdateMoney       UpdateType = "money"
	UpdateTowerPlaced UpdateType = "towerPlaced"
	UpdateTowers      UpdateType = "towers"
	UpdateGameStage   UpdateType = "gameStage"
)

// Stage — параметры карты, которые сообщает сервер.
type Stage struct {
	TileWidth  float64 `json:"tileWidth" msgpack:"tileWidth"`
	TileHeight float64 `json:"tileHeight" msgpack:"tileHeight"`
}

// Update — одно сообщение синхронизации.
type Update struct {
	Type      UpdateType          `json:"type" msgpack:"type"`
	GameState string              `json:"gameState,omitempty" msgpack:"gameState,omitempty"`
	Health    *int                `json:"health,omitempty" msgpack:"health,omitempty"`
	Money     *int                `json:"money,omitempty" msgpack:"money,omitempty"`
	Tower     *types.PlacedTower  `json:"tower,omitempty" msgpack:"tower,omitempty"`
	Towers    []types.PlacedTower `json:"towers,omitempty" msgpack:"towers,omitempty"`
	Stage     *Stage              `json:"stage,omitempty" msgpack:"stage,omitempty"`
}

// DecodeText разбирает текстовый кадр (JSON).
func DecodeText(data []byte) (Update, error) {
	var u Update
	if err := json.Unmarshal(data, &u); err != nil {
		return u, fmt.Errorf("decode json update: %w", err)
	}
	return u, nil
}

// MaxFrameSize — предел распакованного кадра.
const MaxFrameSize = 1 << 20

// ErrFrameTooLarge — распакованный кадр больше MaxFrameSize.
var ErrFrameTooLarge = errors.New("update frame too large")

// DecodeBinary разбирает бинарный кадр: msgpack, сжатый lz4.
func DecodeBinary(data []byte) (Update, error) {
	var u Update
	raw, err := io.ReadAll(io.LimitReader(lz4.NewReader(bytes.NewReader(data)), MaxFrameSize+1))
	if err != nil {
		return u, fmt.Errorf("decompress update: %w", err)
	}
	if len(raw) > MaxFrameSize {
		return u, ErrFrameTooLarge
	}
	if err := msgpack.Unmarshal(raw, &u); err != nil {
		return u, fmt.Errorf("decode msgpack update: %w", err)
	}
	return u, nil
}

// EncodeBinary — обратная операция к DecodeBinary.
func EncodeBinary(u Update) ([]byte, error) {
	raw, err := msgpack.Marshal(u)
	if err != nil {
		return nil, fmt.Errorf("encode msgpack update: %w", err)
	}
	var buf bytes.Buffer
	zw := lz4.NewWriter(&buf)
	if _, err := zw.Write(raw); err != nil {
		return nil, fmt.Errorf("compress update: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("compress update: %w", err)
	}
	return buf.Bytes(), nil
}
