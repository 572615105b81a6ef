// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Voronin

package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/avoronin/scanledger/internal/adapter"
	"github.com/avoronin/scanledger/internal/config"
	"github.com/avoronin/scanledger/internal/ledger"
	"github.com/avoronin/scanledger/internal/logger"
	"github.com/avoronin/scanledger/internal/store"
	"github.com/avoronin/scanledger/internal/validators"
	"github.com/avoronin/scanledger/models"
)

// clientSessionService is the concrete implementation of
// [ClientSessionService]. All ledger access is serialized through mu: scans
// arrive from the decoder goroutine while the UI reads entries, and the sync
// coordinator takes snapshots concurrently.
type clientSessionService struct {
	ledgerStore store.LocalLedgerRepository
	decoder     adapter.Decoder
	validator   validators.CodeValidator
	logger      *logger.Logger

	debounceWindow time.Duration

	mu        sync.Mutex
	ledger    *ledger.Ledger
	debouncer *ledger.Debouncer
	mode      models.CaptureMode
	capturing bool
	cancel    adapter.CancelFunc
}

// NewClientSessionService constructs a [ClientSessionService] with an empty
// ledger. Call Hydrate before the first session to restore persisted state.
func NewClientSessionService(ledgerStore store.LocalLedgerRepository, decoder adapter.Decoder, cfg config.ClientApp, logger *logger.Logger) ClientSessionService {
	return &clientSessionService{
		ledgerStore:    ledgerStore,
		decoder:        decoder,
		validator:      validators.NewScanCodeValidator(),
		logger:         logger,
		debounceWindow: cfg.DebounceWindow,
		ledger:         ledger.New(),
		debouncer:      ledger.NewDebouncer(cfg.DebounceWindow),
		mode:           models.CaptureSingle,
	}
}

// Hydrate restores the ledger from the local store. A load failure is logged
// and the ledger stays empty: a corrupt local database must not prevent the
// operator from scanning.
func (s *clientSessionService) Hydrate(ctx context.Context) error {
	entries, err := s.ledgerStore.LoadSnapshot(ctx)
	if err != nil {
		s.logger.Err(err).
			Str("func", "clientSessionService.Hydrate").
			Msg("failed to load persisted ledger, starting empty")
		return fmt.Errorf("load persisted ledger: %w", err)
	}

	s.mu.Lock()
	s.ledger.Replace(entries)
	s.mu.Unlock()

	s.logger.Info().
		Str("func", "clientSessionService.Hydrate").
		Int("entries", len(entries)).
		Msg("ledger hydrated from local store")
	return nil
}

// Start begins a capture session. The debouncer is reset so the first scan
// of a new session is always accepted, and the live decode stream is started
// with scans flowing straight into HandleScan.
func (s *clientSessionService) Start(ctx context.Context, mode models.CaptureMode) error {
	if mode != models.CaptureSingle && mode != models.CaptureSeries {
		return ErrInvalidCaptureMode
	}

	s.mu.Lock()
	if s.capturing {
		s.mu.Unlock()
		return ErrSessionActive
	}
	s.capturing = true
	s.mode = mode
	s.debouncer = ledger.NewDebouncer(s.debounceWindow)
	s.mu.Unlock()

	cancel, err := s.decoder.StartLiveDecode(ctx, func(code string) {
		if _, scanErr := s.HandleScan(code, time.Now()); scanErr != nil {
			s.logger.Debug().
				Str("func", "clientSessionService.Start").
				Str("code", code).
				Err(scanErr).
				Msg("scan not applied")
		}
	})
	if err != nil {
		s.mu.Lock()
		s.capturing = false
		s.mu.Unlock()
		return fmt.Errorf("start live decode: %w", err)
	}

	s.mu.Lock()
	s.cancel = cancel
	s.mu.Unlock()

	s.logger.Info().
		Str("func", "clientSessionService.Start").
		Str("mode", mode.String()).
		Msg("capture session started")
	return nil
}

// Stop ends the capture session. Safe to call repeatedly.
func (s *clientSessionService) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	s.cancel = nil
	wasCapturing := s.capturing
	s.capturing = false
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if wasCapturing {
		s.logger.Info().
			Str("func", "clientSessionService.Stop").
			Msg("capture session stopped")
	}
}

func (s *clientSessionService) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.capturing
}

func (s *clientSessionService) Mode() models.CaptureMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// HandleScan runs a single raw scan through the full capture pipeline:
// normalization, debounce, ledger application, persistence. The debouncer
// only advances on accepted scans, so a suppressed duplicate does not extend
// its own suppression window.
//
// A persistence failure is logged but does not fail the scan: the entry is
// already applied in memory and will be persisted again on the next
// successful write.
func (s *clientSessionService) HandleScan(raw string, now time.Time) (models.LedgerEntry, error) {
	code, err := s.validator.Normalize(raw)
	if err != nil {
		return models.LedgerEntry{}, fmt.Errorf("normalize scan: %w", err)
	}

	s.mu.Lock()
	if !s.capturing {
		s.mu.Unlock()
		return models.LedgerEntry{}, ErrNoActiveSession
	}
	if !s.debouncer.Accept(code, now) {
		s.mu.Unlock()
		return models.LedgerEntry{}, ErrScanRejected
	}
	entry := s.ledger.Apply(models.ScanEvent{Code: code, ObservedAt: now}, s.mode)
	snapshot := s.ledger.Snapshot()
	s.mu.Unlock()

	if persistErr := s.ledgerStore.ReplaceSnapshot(context.Background(), snapshot); persistErr != nil {
		s.logger.Warn().
			Str("func", "clientSessionService.HandleScan").
			Str("code", code).
			Err(persistErr).
			Msg("scan accepted but not persisted, durability degraded")
	}

	return entry, nil
}

// Entries returns a copy of the ledger, most-recently-touched first.
func (s *clientSessionService) Entries() []models.LedgerEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Snapshot()
}

func (s *clientSessionService) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Len()
}

// RestoreSnapshot replaces the in-memory ledger with a server-side snapshot
// and persists it locally. Refused during an active capture session: a
// restore racing live scans would silently drop them.
func (s *clientSessionService) RestoreSnapshot(ctx context.Context, entries []models.LedgerEntry) error {
	s.mu.Lock()
	if s.capturing {
		s.mu.Unlock()
		return ErrSessionActive
	}
	s.ledger.Replace(entries)
	persisted := s.ledger.Snapshot()
	s.mu.Unlock()

	if err := s.ledgerStore.ReplaceSnapshot(ctx, persisted); err != nil {
		s.logger.Warn().
			Str("func", "clientSessionService.RestoreSnapshot").
			Err(err).
			Msg("restored ledger not persisted, durability degraded")
	}

	s.logger.Info().
		Str("func", "clientSessionService.RestoreSnapshot").
		Int("entries", len(entries)).
		Msg("ledger restored from server snapshot")
	return nil
}

// MarkSynced flags entries captured in snapshot as synced and persists the
// result. An entry re-scanned after the snapshot was taken keeps its unsynced
// flag so the next sync picks it up.
func (s *clientSessionService) MarkSynced(ctx context.Context, snapshot []models.LedgerEntry) int {
	s.mu.Lock()
	count := s.ledger.MarkSynced(snapshot)
	persisted := s.ledger.Snapshot()
	s.mu.Unlock()

	if err := s.ledgerStore.ReplaceSnapshot(ctx, persisted); err != nil {
		s.logger.Warn().
			Str("func", "clientSessionService.MarkSynced").
			Err(err).
			Msg("sync flags not persisted, durability degraded")
	}

	return count
}

// Clear removes every ledger entry and persists the empty state. Unlike a
// scan, a clear that cannot be persisted is an error: the operator must not
// believe data is gone while the store still holds it.
func (s *clientSessionService) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.ledger.Clear()
	s.mu.Unlock()

	if err := s.ledgerStore.ReplaceSnapshot(ctx, nil); err != nil {
		s.logger.Err(err).
			Str("func", "clientSessionService.Clear").
			Msg("failed to persist cleared ledger")
		return fmt.Errorf("persist cleared ledger: %w", err)
	}

	s.logger.Info().
		Str("func", "clientSessionService.Clear").
		Msg("ledger cleared")
	return nil
}
