package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/avoronin/scanledger/internal/logger"
	"github.com/avoronin/scanledger/models"
)

func newTestLedgerRepo(t *testing.T) (*localLedgerRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &localLedgerRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestLocalReplaceSnapshot_PersistsEntriesInOrder(t *testing.T) {
	repo, mock, db := newTestLedgerRepo(t)
	defer db.Close()

	ctx := context.Background()
	seen := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	entries := []models.LedgerEntry{
		{ID: "e1", Code: "4601234567890", Quantity: 2, LastSeenAt: seen, Synced: false},
		{ID: "e2", Code: "4609876543210", Quantity: 1, LastSeenAt: seen.Add(-time.Minute), Synced: true},
	}

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM ledger_entries").
		WillReturnResult(sqlmock.NewResult(0, 2))
	prepared := mock.ExpectPrepare("INSERT INTO ledger_entries")
	// позиция — это индекс в срезе: MRU-порядок переживает рестарт
	prepared.ExpectExec().
		WithArgs("e1", "4601234567890", int64(2), seen, false, 0).
		WillReturnResult(sqlmock.NewResult(0, 1))
	prepared.ExpectExec().
		WithArgs("e2", "4609876543210", int64(1), seen.Add(-time.Minute), true, 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := repo.ReplaceSnapshot(ctx, entries); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestLocalReplaceSnapshot_RollsBackOnInsertFailure(t *testing.T) {
	repo, mock, db := newTestLedgerRepo(t)
	defer db.Close()

	ctx := context.Background()
	entries := []models.LedgerEntry{{ID: "e1", Code: "123", Quantity: 1, LastSeenAt: time.Now()}}

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM ledger_entries").
		WillReturnResult(sqlmock.NewResult(0, 0))
	prepared := mock.ExpectPrepare("INSERT INTO ledger_entries")
	prepared.ExpectExec().
		WillReturnError(errors.New("disk I/O error"))
	mock.ExpectRollback()

	if err := repo.ReplaceSnapshot(ctx, entries); err == nil {
		t.Fatal("expected an error, got nil")
	}
}

func TestLocalLoadSnapshot_RestoresStoredOrder(t *testing.T) {
	repo, mock, db := newTestLedgerRepo(t)
	defer db.Close()

	ctx := context.Background()
	seen := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	rows := sqlmock.
		NewRows([]string{"id", "code", "quantity", "last_seen_at", "synced"}).
		AddRow("e1", "4601234567890", 2, seen, false).
		AddRow("e2", "4609876543210", 1, seen.Add(-time.Minute), true)

	mock.ExpectQuery("SELECT id, code, quantity, last_seen_at, synced").
		WillReturnRows(rows)

	entries, err := repo.LoadSnapshot(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].ID != "e1" || entries[1].ID != "e2" {
		t.Errorf("entries out of order: %v", entries)
	}
	if entries[0].Synced || !entries[1].Synced {
		t.Errorf("synced flags not restored: %v", entries)
	}
}

func TestLocalLoadSnapshot_EmptyTableYieldsEmptyLedger(t *testing.T) {
	repo, mock, db := newTestLedgerRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id", "code", "quantity", "last_seen_at", "synced"})

	mock.ExpectQuery("SELECT id, code, quantity, last_seen_at, synced").
		WillReturnRows(rows)

	entries, err := repo.LoadSnapshot(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty snapshot, got %d entries", len(entries))
	}
}
