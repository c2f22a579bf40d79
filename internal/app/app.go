package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hance08/wallet/internal/config"
	"github.com/hance08/wallet/internal/logger"
	"github.com/hance08/wallet/internal/service"
	"github.com/hance08/wallet/internal/store"
	"github.com/rs/zerolog"
)

type App struct {
	Service *service.Service
	Source  store.Source
	Log     zerolog.Logger
}

// NewApp wires config, snapshot source and core logic, then returns the App.
func NewApp(cfg *config.Config) (*App, error) {
	log := logger.New(cfg.Log.Level)

	src, err := store.NewSource(cfg.Snapshot.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize snapshot source: %w", err)
	}

	svc, err := service.NewService(src, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	log.Debug().Str("source", src.Location()).Msg("application initialized")

	return &App{
		Service: svc,
		Source:  src,
		Log:     log,
	}, nil
}

func GetAppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, ".wallet"), nil
	}

	return filepath.Join(configDir, "wallet"), nil
}
