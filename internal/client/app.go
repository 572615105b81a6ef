package client

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/avoronin/scanledger/internal/adapter"
	"github.com/avoronin/scanledger/internal/config"
	"github.com/avoronin/scanledger/internal/logger"
	"github.com/avoronin/scanledger/internal/service"
	"github.com/avoronin/scanledger/internal/store"
	"github.com/avoronin/scanledger/internal/tui"
	"github.com/avoronin/scanledger/internal/workers"
	"github.com/avoronin/scanledger/models"
)

type App struct {
	cfg      *config.ClientConfig
	services *service.ClientServices
	ui       *tui.TUI
	logger   *logger.Logger

	buildInfo models.AppBuildInfo
}

func NewApp(buildInfo models.AppBuildInfo) (*App, error) {
	cfg, err := config.GetClientConfig()
	if err != nil {
		return nil, fmt.Errorf("client config: %w", err)
	}

	log := logger.NewClientLogger("client")

	storages, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("client storage: %w", err)
	}

	serverAdapter := adapter.NewHTTPServerAdapter(adapter.HTTPClientConfig{
		BaseURL: cfg.Adapter.HTTPAddress,
		Timeout: cfg.Adapter.RequestTimeout,
	})
	connectivity := adapter.NewDialConnectivity(cfg.Adapter.HTTPAddress, cfg.Adapter.RequestTimeout)

	decoder := openDecoder(cfg.App.ScannerDevice, log)

	svcs := service.NewClientServices(storages, serverAdapter, connectivity, decoder, *cfg, log)

	ui, err := tui.New(svcs, log)
	if err != nil {
		return nil, fmt.Errorf("tui: %w", err)
	}

	return &App{
		cfg:       cfg,
		services:  svcs,
		ui:        ui,
		logger:    log,
		buildInfo: buildInfo,
	}, nil
}

// openDecoder wires the live decoder to the configured scanner device node.
// Stdin is never used as a capture source: the terminal UI owns it, and two
// readers on one descriptor steal bytes from each other. Without a usable
// device the client runs on manual entry alone.
func openDecoder(devicePath string, log *logger.Logger) adapter.Decoder {
	if devicePath == "" {
		return adapter.NewNoopDecoder()
	}

	f, err := os.Open(devicePath)
	if err != nil {
		log.Warn().
			Err(err).
			Str("device", devicePath).
			Msg("scanner device unavailable, manual entry only")
		return adapter.NewNoopDecoder()
	}

	return adapter.NewReaderDecoder(f)
}

func (a *App) Run() error {
	ctx := context.Background()

	if err := a.services.SessionService.Hydrate(ctx); err != nil {
		a.logger.Warn().
			Err(err).
			Str("func", "App.Run").
			Msg("ledger restore failed, starting with an empty ledger")
	}

	// Offline start is normal: sync will authenticate again when the
	// network comes back.
	if err := a.services.AuthService.EnsureSession(ctx); err != nil {
		a.logger.Warn().
			Err(err).
			Str("func", "App.Run").
			Msg("device session not established")
	}

	// A fresh install pulls the device's last server snapshot, so a
	// re-provisioned client does not start from an empty ledger.
	if a.services.SessionService.Len() == 0 {
		if restored, err := a.services.SyncService.Restore(ctx); err != nil {
			a.logger.Warn().
				Err(err).
				Str("func", "App.Run").
				Msg("server snapshot restore failed")
		} else if restored > 0 {
			a.logger.Info().
				Int("entries", restored).
				Str("func", "App.Run").
				Msg("ledger restored from server snapshot")
		}
	}

	if a.cfg.App.AutoSync {
		workers.NewWorkers(
			workers.NewAutoSyncWorker(a.services.SyncJob, a.cfg.Workers.SyncInterval),
		).Run()
		defer a.services.SyncJob.Stop()
	}

	if err := a.ui.Run(ctx, a.buildInfo); err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		return fmt.Errorf("tui: %w", err)
	}

	return nil
}
