package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/jaskwallet/internal/bridge"
	"github.com/jask/jaskwallet/internal/config"
	"github.com/jask/jaskwallet/internal/database"
	"github.com/jask/jaskwallet/internal/i18n"
	"github.com/jask/jaskwallet/internal/logging"
	"github.com/jask/jaskwallet/internal/tui"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	level := slog.LevelInfo
	if os.Getenv("JASKWALLET_DEBUG") != "" {
		level = slog.LevelDebug
	}
	logger := logging.New(level)

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		log.Fatalf("mkdir db dir: %v", err)
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	if err := database.SeedDemo(ctx, db); err != nil {
		log.Fatalf("seed demo data: %v", err)
	}

	// Language files: user directory layered over the built-in set.
	provider := i18n.Provider(i18n.Builtin())
	if cfg.I18n.Dir != "" {
		provider = i18n.Layered{i18n.NewFSProvider(os.DirFS(cfg.I18n.Dir)), provider}
	}
	store := i18n.NewStore(provider, logger)
	if cfg.UI.Language != "" {
		// Untranslated mode is a valid start state; the error is already
		// logged by the store.
		_ = store.Load(cfg.UI.Language)
	}

	model := tui.New(tui.Options{
		Config:   cfg,
		DB:       db,
		Log:      logger,
		Store:    store,
		Overlay:  i18n.NewOverlay(store),
		Opener:   bridge.SystemOpener(),
		Menu:     bridge.MenuSinkFunc(func([]byte) error { return nil }),
		Settings: watchSettings(logger),
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("tui: %v", err)
	}
}

// watchSettings turns on-disk config changes into settings payloads for the
// model. A missing config file just means no live reload.
func watchSettings(logger *slog.Logger) <-chan []byte {
	ch := make(chan []byte, 1)
	err := config.Watch(func(cfg config.Config) {
		payload, err := bridge.EncodeSettings(bridge.SettingsPayload{
			Lang:     cfg.UI.Language,
			Currency: cfg.UI.Currency,
		})
		if err != nil {
			return
		}
		select {
		case ch <- payload:
		default:
		}
	})
	if err != nil {
		logger.Warn("config watch disabled", "err", err)
	}
	return ch
}
