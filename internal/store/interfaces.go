package store

import (
	"context"
	"time"

	"github.com/avoronin/scanledger/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// DeviceRepository persists device identities on the server side.
type DeviceRepository interface {
	CreateDevice(ctx context.Context, device models.Device) (models.Device, error)
	FindDeviceByDeviceID(ctx context.Context, deviceID string) (models.Device, error)
}

// SnapshotRepository stores the latest full ledger snapshot pushed by each
// device. A push always overwrites whatever was stored before; partial
// updates are never applied.
type SnapshotRepository interface {
	ReplaceSnapshot(ctx context.Context, deviceID string, entries []models.LedgerEntry, storedAt time.Time) error
	GetSnapshot(ctx context.Context, deviceID string) ([]models.LedgerEntry, time.Time, error)
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
