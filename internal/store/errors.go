package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrDeviceAlreadyExists is returned when an attempt to register a new
	// device fails because a device with the same device_id is already
	// present in the database.
	ErrDeviceAlreadyExists = errors.New("device already exists")

	// ErrDeviceNotFound is returned when a query expected to match at least
	// one device record produces an empty result set.
	ErrDeviceNotFound = errors.New("device was not found")

	// ErrSnapshotNotFound is returned when a device requests its stored
	// ledger snapshot but no snapshot has ever been pushed for it.
	ErrSnapshotNotFound = errors.New("ledger snapshot was not found")

	// ErrSnapshotNotSaved is returned when a snapshot write completes without
	// a driver error but the expected number of rows was not affected.
	ErrSnapshotNotSaved = errors.New("ledger snapshot was not saved")

	// ErrStorageUnavailable wraps transient database failures (connection
	// loss, deadlock rollback) that may succeed if the operation is retried.
	ErrStorageUnavailable = errors.New("storage temporarily unavailable")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")
)
