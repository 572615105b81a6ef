package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/avoronin/scanledger/internal/adapter"
	"github.com/avoronin/scanledger/internal/logger"
	"github.com/avoronin/scanledger/models"
)

// clientSyncService pushes full ledger snapshots to the remote target.
// The inFlight flag gives single-flight semantics: concurrent Sync calls
// beyond the first return ErrSyncInFlight immediately instead of queueing.
type clientSyncService struct {
	session      ClientSessionService
	adapter      adapter.ServerAdapter
	connectivity adapter.Connectivity
	logger       *logger.Logger

	mu          sync.Mutex
	inFlight    bool
	lastAttempt *models.SyncAttempt
}

// NewClientSyncService constructs a [ClientSyncService] bound to the session
// service that owns the ledger.
func NewClientSyncService(session ClientSessionService, serverAdapter adapter.ServerAdapter, connectivity adapter.Connectivity, logger *logger.Logger) ClientSyncService {
	return &clientSyncService{
		session:      session,
		adapter:      serverAdapter,
		connectivity: connectivity,
		logger:       logger,
	}
}

// Sync performs one push attempt. The cheap checks run in order before any
// network activity: in-flight, empty ledger, connectivity. The push itself
// is a single transmission of the complete snapshot; no diffing, batching or
// transport-level retry.
//
// The in-flight flag is released on every exit path, including panics in the
// transport, so a failed sync can never wedge the coordinator.
func (s *clientSyncService) Sync(ctx context.Context) (models.SyncAttempt, error) {
	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return models.SyncAttempt{}, ErrSyncInFlight
	}
	s.inFlight = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.inFlight = false
		s.mu.Unlock()
	}()

	if s.session.Len() == 0 {
		return s.record(models.SyncAttempt{Outcome: models.SyncFailed, Err: ErrEmptyLedger}), ErrEmptyLedger
	}

	if !s.connectivity.Online(ctx) {
		return s.record(models.SyncAttempt{Outcome: models.SyncFailed, Err: ErrOffline}), ErrOffline
	}

	snapshot := s.session.Entries()

	if err := s.adapter.PushSnapshot(ctx, snapshot); err != nil {
		wrapped := fmt.Errorf("%w: %w", ErrSyncTransport, err)
		s.logger.Err(err).
			Str("func", "clientSyncService.Sync").
			Int("entries", len(snapshot)).
			Msg("snapshot push failed")
		return s.record(models.SyncAttempt{Outcome: models.SyncFailed, Err: wrapped, EntryCount: len(snapshot)}), wrapped
	}

	marked := s.session.MarkSynced(ctx, snapshot)
	s.logger.Info().
		Str("func", "clientSyncService.Sync").
		Int("entries", len(snapshot)).
		Int("marked", marked).
		Msg("snapshot pushed")

	return s.record(models.SyncAttempt{Outcome: models.SyncSucceeded, EntryCount: len(snapshot)}), nil
}

// Restore pulls the server-side snapshot into an empty local ledger. Local
// state always wins: whenever the ledger holds anything, restore declines
// rather than overwrite work not yet pushed. A device the server holds no
// snapshot for restores zero entries.
func (s *clientSyncService) Restore(ctx context.Context) (int, error) {
	if s.session.Len() > 0 {
		return 0, nil
	}

	if !s.connectivity.Online(ctx) {
		return 0, ErrOffline
	}

	snapshot, err := s.adapter.FetchSnapshot(ctx)
	if err != nil {
		if errors.Is(err, adapter.ErrSnapshotNotFound) {
			return 0, nil
		}
		wrapped := fmt.Errorf("%w: %w", ErrSyncTransport, err)
		s.logger.Err(err).
			Str("func", "clientSyncService.Restore").
			Msg("snapshot fetch failed")
		return 0, wrapped
	}

	// the server state is by definition in sync with itself
	entries := snapshot.Entries
	for i := range entries {
		entries[i].Synced = true
	}

	if err := s.session.RestoreSnapshot(ctx, entries); err != nil {
		return 0, fmt.Errorf("restore snapshot: %w", err)
	}

	s.logger.Info().
		Str("func", "clientSyncService.Restore").
		Int("entries", len(entries)).
		Msg("ledger restored from server")
	return len(entries), nil
}

// LastAttempt returns the most recent completed attempt, if any.
func (s *clientSyncService) LastAttempt() (models.SyncAttempt, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.lastAttempt == nil {
		return models.SyncAttempt{}, false
	}
	return *s.lastAttempt, true
}

func (s *clientSyncService) record(attempt models.SyncAttempt) models.SyncAttempt {
	attempt.CompletedAt = time.Now()

	s.mu.Lock()
	s.lastAttempt = &attempt
	s.mu.Unlock()

	return attempt
}
