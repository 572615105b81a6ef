package service

import "errors"

var (
	// ErrSessionActive is returned by Start when a capture session is
	// already running. The active session must be stopped first.
	ErrSessionActive = errors.New("capture session already active")

	// ErrNoActiveSession is returned by HandleScan when no capture session
	// is running.
	ErrNoActiveSession = errors.New("no active capture session")

	// ErrInvalidCaptureMode is returned by Start for a mode value outside
	// the known set.
	ErrInvalidCaptureMode = errors.New("invalid capture mode")

	// ErrScanRejected is returned by HandleScan when the debouncer
	// suppresses a repeated scan of the same code.
	ErrScanRejected = errors.New("scan rejected by debounce window")

	// ErrSyncInFlight is returned when a sync is requested while a previous
	// sync attempt has not completed yet.
	ErrSyncInFlight = errors.New("sync already in flight")

	// ErrEmptyLedger is returned when a sync is requested for a ledger with
	// no entries. Checked before any network activity.
	ErrEmptyLedger = errors.New("ledger is empty, nothing to sync")

	// ErrOffline is returned when no network path to the remote target
	// exists. Checked before any network activity.
	ErrOffline = errors.New("device is offline")

	// ErrSyncTransport wraps transport failures of the snapshot push.
	ErrSyncTransport = errors.New("sync transport failure")

	// ErrEmptyExport is returned when an export is requested for an empty
	// ledger.
	ErrEmptyExport = errors.New("ledger is empty, nothing to export")

	// ErrInvalidDataProvided is returned by server services when a request
	// is missing required fields.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrWrongSecret is returned by Login when the presented device secret
	// does not match the stored hash.
	ErrWrongSecret = errors.New("wrong device secret")

	// ErrVersionIsNotSpecified is returned when the application version is
	// absent from the build configuration.
	ErrVersionIsNotSpecified = errors.New("application version is not specified")
)
