package adapter

import "errors"

var (
	// ErrUnauthorized indicates the device token was missing, expired, or
	// rejected by the server.
	ErrUnauthorized = errors.New("device unauthorized")

	// ErrDeviceConflict indicates a register attempt for a device_id that
	// already exists.
	ErrDeviceConflict = errors.New("device already registered")

	// ErrSnapshotNotFound indicates the server holds no snapshot for this
	// device yet.
	ErrSnapshotNotFound = errors.New("no snapshot stored for device")

	// ErrRemoteRejected covers 4xx/5xx responses to a snapshot push that
	// do not map to a more specific sentinel.
	ErrRemoteRejected = errors.New("remote rejected request")

	// ErrCodeNotFound is returned by DecodeStatic when the capture
	// contains no decodable value.
	ErrCodeNotFound = errors.New("no code found in capture")
)
