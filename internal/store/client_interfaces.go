package store

import (
	"context"

	"github.com/avoronin/scanledger/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalLedgerRepository is the low-level local ledger store. It persists the
// full in-memory ledger snapshot to SQLite after every mutation and restores
// it on startup, so a restart never loses captured scans.
type LocalLedgerRepository interface {
	ReplaceSnapshot(ctx context.Context, entries []models.LedgerEntry) error
	LoadSnapshot(ctx context.Context) ([]models.LedgerEntry, error)
}
