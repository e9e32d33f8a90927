package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"tower-defense-client/internal/api"
	"tower-defense-client/internal/assets"
	"tower-defense-client/internal/config"
	"tower-defense-client/internal/observer"
	"tower-defense-client/internal/state"
	"tower-defense-client/internal/types"
	"tower-defense-client/internal/ui"
)

type flags struct {
	configPath string
	server     string
	sync       string
	lobby      string
	token      string
	logLevel   string
	assetsDir  string
}

func newRootCommand() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:           "game",
		Short:         "Tower defense client",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings(cmd, f)
			if err != nil {
				return err
			}
			logger := newLogger(settings.Log.Level)
			if err := run(cmd.Context(), settings, f.assetsDir, logger); err != nil {
				logger.Error("client stopped", "err", err)
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "path to client.yaml")
	cmd.Flags().StringVar(&f.server, "server", "", "game server base URL")
	cmd.Flags().StringVar(&f.sync, "sync", "", "game server websocket URL")
	cmd.Flags().StringVar(&f.lobby, "lobby", "", "lobby id")
	cmd.Flags().StringVar(&f.token, "token", "", "access token")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "", "debug, info, warn or error")
	cmd.Flags().StringVar(&f.assetsDir, "assets", "assets", "directory with tower textures")
	return cmd
}

// loadSettings читает YAML и накладывает явно заданные флаги.
func loadSettings(cmd *cobra.Command, f flags) (config.Settings, error) {
	settings, err := config.Load(f.configPath)
	if err != nil {
		return settings, err
	}
	overrides := []struct {
		name  string
		value string
		dst   *string
	}{
		{"server", f.server, &settings.Server.BaseURL},
		{"sync", f.sync, &settings.Server.SyncURL},
		{"lobby", f.lobby, &settings.Session.LobbyID},
		{"token", f.token, &settings.Session.AccessToken},
		{"log-level", f.logLevel, &settings.Log.Level},
	}
	for _, o := range overrides {
		if cmd.Flags().Changed(o.name) {
			*o.dst = o.value
		}
	}
	if err := errors.Join(settings.Validate(), settings.ValidateSession()); err != nil {
		return settings, fmt.Errorf("invalid settings: %w", err)
	}
	return settings, nil
}

func newLogger(level string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
	})
	if lvl, err := log.ParseLevel(level); err == nil {
		logger.SetLevel(lvl)
	} else {
		logger.Warn("unknown log level, using info", "level", level)
	}

	styles := log.DefaultStyles()
	styles.Levels[log.WarnLevel] = lipgloss.NewStyle().SetString("WARN").Bold(true).Foreground(lipgloss.Color("214"))
	styles.Levels[log.ErrorLevel] = lipgloss.NewStyle().SetString("ERROR").Bold(true).Foreground(lipgloss.Color("204"))
	styles.Prefix = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))
	logger.SetStyles(styles)
	return logger
}

func run(parent context.Context, settings config.Settings, assetsDir string, logger *log.Logger) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	client, err := api.NewClient(api.Options{
		BaseURL:       settings.Server.BaseURL,
		Timeout:       settings.Server.RequestTimeout,
		RatePerSecond: settings.Server.RatePerSecond,
		Burst:         settings.Server.Burst,
		Logger:        logger,
	})
	if err != nil {
		return err
	}

	game := observer.NewGameObserver(settings.Session.LobbyID, settings.Session.AccessToken)
	if settings.Map.TileWidth > 0 && settings.Map.TileHeight > 0 {
		game.SetTileSize(types.TileSize{Width: settings.Map.TileWidth, Height: settings.Map.TileHeight})
	}
	syncer := &observer.Syncer{
		URL:        settings.Server.SyncURL,
		Observer:   game,
		RetryDelay: settings.Sync.RetryDelay,
		Logger:     logger,
	}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return syncer.Run(gctx) })

	session := &state.Session{
		Snapshot: game,
		Gateway:  client,
		Pointer:  &ui.MousePointer{},
		NewTextures: func() state.Textures {
			return assets.NewTextureManager(assetsDir, logger)
		},
		Logger: logger,
	}
	sm := state.NewStateMachine()
	sm.SetState(state.NewLobbyState(sm, session))

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(settings.Window.Title)
	logger.Info("starting client", "server", settings.Server.BaseURL, "lobby", settings.Session.LobbyID)
	runErr := ebiten.RunGame(app)

	sm.Shutdown()
	cancel()
	if err := g.Wait(); err != nil && runErr == nil {
		runErr = err
	}
	return runErr
}
