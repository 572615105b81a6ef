package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/avoronin/scanledger/internal/logger"
	"github.com/avoronin/scanledger/models"
)

// snapshotRepository is the PostgreSQL-backed implementation of
// [SnapshotRepository]. Every push from a device replaces the device's stored
// snapshot wholesale: the old rows are deleted and the new entries inserted
// in the same transaction, so readers never observe a half-applied push.
type snapshotRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSnapshotRepository constructs a [SnapshotRepository] backed by the
// provided database connection and logger.
func NewSnapshotRepository(db *DB, logger *logger.Logger) SnapshotRepository {
	logger.Debug().Msg("creating snapshot repository")
	return &snapshotRepository{
		db:     db,
		logger: logger,
	}
}

// ReplaceSnapshot overwrites the stored ledger snapshot for deviceID with
// entries. Entry order is preserved through the position column, so a later
// [SnapshotRepository.GetSnapshot] returns the entries exactly as pushed.
// An empty entries slice clears the stored snapshot.
//
// Transient database failures (connection loss, deadlock rollback) are
// wrapped with [ErrStorageUnavailable] so callers can signal the device to
// retry later.
func (r *snapshotRepository) ReplaceSnapshot(ctx context.Context, deviceID string, entries []models.LedgerEntry, storedAt time.Time) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "snapshotRepository.ReplaceSnapshot").
			Str("device_id", deviceID).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deleteSnapshotEntries, deviceID); err != nil {
		log.Err(err).
			Str("func", "snapshotRepository.ReplaceSnapshot").
			Str("device_id", deviceID).
			Msg("failed to delete previous snapshot")
		return r.classified(fmt.Errorf("delete previous snapshot: %w", err))
	}

	if len(entries) > 0 {
		insert := sq.Insert("ledger_snapshots").
			Columns("device_id", "entry_id", "code", "quantity", "last_seen_at", "synced", "position", "stored_at").
			PlaceholderFormat(sq.Dollar)
		for position, entry := range entries {
			insert = insert.Values(deviceID, entry.ID, entry.Code, entry.Quantity, entry.LastSeenAt, entry.Synced, position, storedAt)
		}

		query, args, buildErr := insert.ToSql()
		if buildErr != nil {
			log.Err(buildErr).
				Str("func", "snapshotRepository.ReplaceSnapshot").
				Str("device_id", deviceID).
				Msg("failed to build insert query")
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
		}

		result, execErr := tx.ExecContext(ctx, query, args...)
		if execErr != nil {
			log.Err(execErr).
				Str("func", "snapshotRepository.ReplaceSnapshot").
				Str("device_id", deviceID).
				Int("count", len(entries)).
				Msg("failed to insert snapshot entries")
			return r.classified(fmt.Errorf("insert snapshot entries: %w", execErr))
		}

		if affected, raErr := result.RowsAffected(); raErr == nil && affected != int64(len(entries)) {
			log.Error().
				Str("func", "snapshotRepository.ReplaceSnapshot").
				Str("device_id", deviceID).
				Int64("affected", affected).
				Int("expected", len(entries)).
				Msg("unexpected affected row count")
			return ErrSnapshotNotSaved
		}
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "snapshotRepository.ReplaceSnapshot").
			Str("device_id", deviceID).
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	return nil
}

// GetSnapshot returns the stored ledger snapshot for deviceID together with
// the time it was pushed, ordered exactly as the device pushed it.
//
// Returns [ErrSnapshotNotFound] if the device has never pushed a snapshot.
func (r *snapshotRepository) GetSnapshot(ctx context.Context, deviceID string) ([]models.LedgerEntry, time.Time, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getSnapshotEntries, deviceID)
	if err != nil {
		log.Err(err).
			Str("func", "snapshotRepository.GetSnapshot").
			Str("device_id", deviceID).
			Msg("failed to query snapshot entries")
		return nil, time.Time{}, r.classified(fmt.Errorf("query snapshot entries: %w", err))
	}
	defer rows.Close()

	var (
		entries  []models.LedgerEntry
		storedAt time.Time
	)
	for rows.Next() {
		var entry models.LedgerEntry
		if scanErr := rows.Scan(&entry.ID, &entry.Code, &entry.Quantity, &entry.LastSeenAt, &storedAt); scanErr != nil {
			log.Err(scanErr).
				Str("func", "snapshotRepository.GetSnapshot").
				Str("device_id", deviceID).
				Msg("error: scanning error")
			return nil, time.Time{}, scanErr
		}
		// a stored entry is synced by definition: it is the sync result
		entry.Synced = true
		entries = append(entries, entry)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "snapshotRepository.GetSnapshot").
			Str("device_id", deviceID).
			Msg("error iterating snapshot rows")
		return nil, time.Time{}, rowsErr
	}

	if len(entries) == 0 {
		return nil, time.Time{}, ErrSnapshotNotFound
	}

	return entries, storedAt, nil
}

// classified wraps err with [ErrStorageUnavailable] when the underlying
// driver error is retryable, and returns err unchanged otherwise.
func (r *snapshotRepository) classified(err error) error {
	if r.db.errorClassificator != nil && r.db.errorClassificator.Classify(err) == Retryable {
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	return err
}
