package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultSettingsYAML []byte

// Settings — настройки клиента, загружаемые из YAML.
type Settings struct {
	Server  ServerSettings  `yaml:"server"`
	Session SessionSettings `yaml:"session"`
	Sync    SyncSettings    `yaml:"sync"`
	Log     LogSettings     `yaml:"log"`
	Window  WindowSettings  `yaml:"window"`
	Map     MapSettings     `yaml:"map"`
}

type ServerSettings struct {
	BaseURL        string        `yaml:"base_url"`
	SyncURL        string        `yaml:"sync_url"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
	RatePerSecond  float64       `yaml:"rate_per_second"`
	Burst          int           `yaml:"burst"`
}

type SessionSettings struct {
	LobbyID     string `yaml:"lobby_id"`
	AccessToken string `yaml:"access_token"`
}

type SyncSettings struct {
	RetryDelay time.Duration `yaml:"retry_delay"`
}

type LogSettings struct {
	Level string `yaml:"level"`
}

type WindowSettings struct {
	Title string `yaml:"title"`
}

// MapSettings — размер клетки для серверов, которые не присылают gameStage.
// Ноль означает «ждать сервер».
type MapSettings struct {
	TileWidth  float64 `yaml:"tile_width"`
	TileHeight float64 `yaml:"tile_height"`
}

// DefaultSettings возвращает встроенные настройки.
func DefaultSettings() Settings {
	var s Settings
	if err := yaml.Unmarshal(defaultSettingsYAML, &s); err != nil {
		// встроенный файл всегда корректен
		panic(fmt.Sprintf("embedded default settings: %v", err))
	}
	return s
}

// Load загружает настройки.
// Порядок поиска: customPath -> ~/.towerdefense/client.yaml -> ./configs/client.yaml -> встроенные.
// Файл накладывается поверх встроенных значений, поэтому может быть неполным.
func Load(customPath string) (Settings, error) {
	cfg := DefaultSettings()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	for _, path := range []string{userConfigPath("client.yaml"), filepath.Join("configs", "client.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		break
	}
	return cfg, cfg.Validate()
}

// Validate проверяет значения, без которых клиент не может работать.
func (s Settings) Validate() error {
	var errs []error
	if s.Server.BaseURL == "" {
		errs = append(errs, errors.New("server.base_url is empty"))
	}
	if s.Server.RequestTimeout <= 0 {
		errs = append(errs, fmt.Errorf("server.request_timeout must be positive, got %s", s.Server.RequestTimeout))
	}
	if s.Server.RatePerSecond <= 0 {
		errs = append(errs, fmt.Errorf("server.rate_per_second must be positive, got %v", s.Server.RatePerSecond))
	}
	if s.Server.Burst < 1 {
		errs = append(errs, fmt.Errorf("server.burst must be at least 1, got %d", s.Server.Burst))
	}
	return errors.Join(errs...)
}

// ValidateSession проверяет данные лобби. Вызывается после флагов командной строки:
// во встроенных настройках лобби не задано.
func (s Settings) ValidateSession() error {
	if strings.TrimSpace(s.Session.LobbyID) == "" {
		return errors.New("session.lobby_id is empty (set it in the config or pass --lobby)")
	}
	return nil
}

// userConfigPath возвращает путь к пользовательскому файлу или "", если домашний каталог недоступен.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".towerdefense", filename)
}
