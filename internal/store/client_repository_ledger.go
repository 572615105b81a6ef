package store

import (
	"context"
	"fmt"

	"github.com/avoronin/scanledger/internal/logger"
	"github.com/avoronin/scanledger/models"
)

type localLedgerRepository struct {
	*DB
	logger *logger.Logger
}

// NewLocalLedgerRepository constructs a [LocalLedgerRepository] backed by the
// provided SQLite connection and logger.
func NewLocalLedgerRepository(db *DB, logger *logger.Logger) LocalLedgerRepository {
	logger.Debug().Msg("creating local ledger repository")
	return &localLedgerRepository{
		DB:     db,
		logger: logger,
	}
}

// ReplaceSnapshot persists the full ledger snapshot, replacing whatever was
// stored before. The slice index becomes the position column, so the
// most-recent-first order survives a restart. Delete and inserts run in a
// single transaction: a crash mid-write leaves the previous snapshot intact.
func (r *localLedgerRepository) ReplaceSnapshot(ctx context.Context, entries []models.LedgerEntry) error {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "localLedgerRepository.ReplaceSnapshot").
			Int("count", len(entries)).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deleteAllLedgerEntries); err != nil {
		log.Err(err).
			Str("func", "localLedgerRepository.ReplaceSnapshot").
			Msg("failed to delete previous entries")
		return fmt.Errorf("delete previous entries: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, insertLedgerEntry)
	if err != nil {
		log.Err(err).
			Str("func", "localLedgerRepository.ReplaceSnapshot").
			Msg("failed to prepare insert statement")
		return fmt.Errorf("prepare insert statement: %w", err)
	}
	defer stmt.Close()

	for position, entry := range entries {
		if _, err = stmt.ExecContext(ctx, entry.ID, entry.Code, entry.Quantity, entry.LastSeenAt, entry.Synced, position); err != nil {
			log.Err(err).
				Str("func", "localLedgerRepository.ReplaceSnapshot").
				Str("entry_id", entry.ID).
				Str("code", entry.Code).
				Msg("failed to insert ledger entry")
			return fmt.Errorf("insert ledger entry: %w", err)
		}
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "localLedgerRepository.ReplaceSnapshot").
			Int("count", len(entries)).
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	return nil
}

// LoadSnapshot restores the persisted ledger in stored order. An empty table
// yields a nil slice and no error: a fresh install simply starts with an
// empty ledger.
func (r *localLedgerRepository) LoadSnapshot(ctx context.Context) ([]models.LedgerEntry, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, getAllLedgerEntries)
	if err != nil {
		log.Err(err).
			Str("func", "localLedgerRepository.LoadSnapshot").
			Msg("failed to query ledger entries")
		return nil, fmt.Errorf("query ledger entries: %w", err)
	}
	defer rows.Close()

	var entries []models.LedgerEntry
	for rows.Next() {
		var entry models.LedgerEntry
		if scanErr := rows.Scan(&entry.ID, &entry.Code, &entry.Quantity, &entry.LastSeenAt, &entry.Synced); scanErr != nil {
			log.Err(scanErr).
				Str("func", "localLedgerRepository.LoadSnapshot").
				Msg("error: scanning error")
			return nil, scanErr
		}
		entries = append(entries, entry)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "localLedgerRepository.LoadSnapshot").
			Msg("error iterating ledger rows")
		return nil, rowsErr
	}

	return entries, nil
}
