package store

import (
	"context"
	"fmt"

	"github.com/avoronin/scanledger/internal/config"
	"github.com/avoronin/scanledger/internal/logger"
)

// Storages groups the server-side repositories into a single value passed to
// the service layer.
type Storages struct {
	DeviceRepository   DeviceRepository
	SnapshotRepository SnapshotRepository
}

// NewStorages opens the PostgreSQL connection described by cfg, applies
// pending migrations and wires up the server repositories.
func NewStorages(ctx context.Context, cfg config.DB, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		DeviceRepository:   NewDeviceRepository(db, logger),
		SnapshotRepository: NewSnapshotRepository(db, logger),
	}, nil
}
