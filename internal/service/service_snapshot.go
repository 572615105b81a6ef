package service

import (
	"context"
	"fmt"
	"time"

	"github.com/avoronin/scanledger/internal/logger"
	"github.com/avoronin/scanledger/internal/store"
	"github.com/avoronin/scanledger/models"
)

// snapshotService is the concrete implementation of SnapshotService. It
// applies push requests as flat overwrites of the device's stored snapshot.
type snapshotService struct {
	snapshotRepository store.SnapshotRepository
	logger             *logger.Logger
}

// NewSnapshotService constructs a SnapshotService wired to the given
// repository.
func NewSnapshotService(snapshotRepository store.SnapshotRepository, logger *logger.Logger) SnapshotService {
	return &snapshotService{
		snapshotRepository: snapshotRepository,
		logger:             logger,
	}
}

// Push validates the pushed snapshot and overwrites the stored one. Entries
// must each carry an ID, a code and a positive quantity; a request whose
// Length disagrees with the entry count is rejected as malformed.
func (s *snapshotService) Push(ctx context.Context, deviceID string, req models.PushRequest) error {
	log := logger.FromContext(ctx)

	if deviceID == "" {
		return ErrInvalidDataProvided
	}
	if len(req.Entries) == 0 || req.Length != len(req.Entries) {
		return ErrInvalidDataProvided
	}
	for _, entry := range req.Entries {
		if entry.ID == "" || entry.Code == "" || entry.Quantity < 1 {
			return ErrInvalidDataProvided
		}
	}

	if err := s.snapshotRepository.ReplaceSnapshot(ctx, deviceID, req.Entries, time.Now()); err != nil {
		return fmt.Errorf("replace snapshot: %w", err)
	}

	log.Info().
		Str("func", "snapshotService.Push").
		Str("device_id", deviceID).
		Int("entries", len(req.Entries)).
		Msg("snapshot stored")
	return nil
}

// Get returns the device's stored snapshot in pushed order.
func (s *snapshotService) Get(ctx context.Context, deviceID string) (models.SnapshotResponse, error) {
	if deviceID == "" {
		return models.SnapshotResponse{}, ErrInvalidDataProvided
	}

	entries, storedAt, err := s.snapshotRepository.GetSnapshot(ctx, deviceID)
	if err != nil {
		return models.SnapshotResponse{}, fmt.Errorf("get snapshot: %w", err)
	}

	return models.SnapshotResponse{
		Entries:  entries,
		Length:   len(entries),
		StoredAt: &storedAt,
		DeviceID: deviceID,
	}, nil
}
