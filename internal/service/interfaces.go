package service

import (
	"context"

	"github.com/avoronin/scanledger/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// DeviceService handles device registration and authentication on the server
// side.
type DeviceService interface {
	// Register creates a new device record and issues a bearer token.
	Register(ctx context.Context, req models.RegisterDeviceRequest) (models.Token, error)

	// Login authenticates an existing device and issues a fresh token.
	Login(ctx context.Context, req models.LoginDeviceRequest) (models.Token, error)

	// ValidateToken verifies a bearer token and returns the device
	// identifier it was issued for.
	ValidateToken(tokenString string) (string, error)
}

// SnapshotService stores and serves per-device ledger snapshots.
type SnapshotService interface {
	// Push overwrites the device's stored snapshot with the pushed one.
	Push(ctx context.Context, deviceID string, req models.PushRequest) error

	// Get returns the device's stored snapshot.
	Get(ctx context.Context, deviceID string) (models.SnapshotResponse, error)
}

// AppInfoService reports application metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
