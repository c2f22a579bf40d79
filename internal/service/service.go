package service

import (
	"fmt"

	"github.com/hance08/wallet/internal/config"
	"github.com/hance08/wallet/internal/logic/points"
	"github.com/hance08/wallet/internal/store"
	"github.com/rs/zerolog"
)

type Service struct {
	Wallet *WalletService
	Points *points.Engine
	Config *config.Config
}

func NewService(src store.Source, cfg *config.Config, log zerolog.Logger) (*Service, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	start, err := cfg.SeasonStart()
	if err != nil {
		return nil, err
	}

	engine, err := points.NewEngine(start, cfg.Season.Overrides)
	if err != nil {
		return nil, fmt.Errorf("invalid season.overrides: %w", err)
	}

	return &Service{
		Wallet: NewWalletService(src, loc, log),
		Points: engine,
		Config: cfg,
	}, nil
}
