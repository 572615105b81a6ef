package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avoronin/scanledger/internal/logger"
	"github.com/avoronin/scanledger/models"
	"github.com/jackc/pgerrcode"
)

// deviceRepository is the PostgreSQL-backed implementation of
// [DeviceRepository]. It handles device registration and lookup against the
// "devices" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type deviceRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewDeviceRepository constructs a [DeviceRepository] backed by the provided
// database connection and logger.
func NewDeviceRepository(db *DB, logger *logger.Logger) DeviceRepository {
	logger.Debug().Msg("creating device repository")
	return &deviceRepository{
		db:     db,
		logger: logger,
	}
}

// CreateDevice persists a new device record and returns the fully populated
// [models.Device] with server-assigned fields (ID, RegisteredAt).
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrDeviceAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → returned directly.
func (r *deviceRepository) CreateDevice(ctx context.Context, device models.Device) (models.Device, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createDevice, device.DeviceID, device.Name, device.SecretHash)

	// create device in db
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*deviceRepository.CreateDevice").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Device{}, ErrDeviceAlreadyExists
		default:
			return models.Device{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	// scan saved device from db
	if err := row.Scan(&device.ID, &device.DeviceID, &device.Name, &device.SecretHash, &device.RegisteredAt); err != nil {
		log.Err(err).Str("func", "*deviceRepository.CreateDevice").Msg("error: scanning error")

		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.Device{}, ErrDeviceAlreadyExists
		}
		return models.Device{}, err
	}

	return device, nil
}

// FindDeviceByDeviceID retrieves a device record by its client-assigned
// device_id.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrDeviceNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *deviceRepository) FindDeviceByDeviceID(ctx context.Context, deviceID string) (models.Device, error) {
	log := logger.FromContext(ctx)

	var found models.Device
	row := r.db.QueryRowContext(ctx, findDeviceByDeviceID, deviceID)

	// find device by device_id
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*deviceRepository.FindDeviceByDeviceID").Msg("error: row is nil")
		return models.Device{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	// scan found device from db
	if err := row.Scan(&found.ID, &found.DeviceID, &found.Name, &found.SecretHash, &found.RegisteredAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Device{}, ErrDeviceNotFound
		}
		log.Err(err).Str("func", "*deviceRepository.FindDeviceByDeviceID").Msg("error: scanning error")
		return models.Device{}, err
	}

	return found, nil
}
