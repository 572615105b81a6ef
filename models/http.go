package models

import "time"

// RegisterDeviceRequest is the body of POST /api/device/register.
type RegisterDeviceRequest struct {
	DeviceID string `json:"device_id"`
	Name     string `json:"name"`
	Secret   string `json:"secret"`
}

// LoginDeviceRequest is the body of POST /api/device/login.
type LoginDeviceRequest struct {
	DeviceID string `json:"device_id"`
	Secret   string `json:"secret"`
}

// PushRequest carries a full ledger snapshot to the server.
// The server treats it as a flat overwrite of the device's stored snapshot,
// never as a diff or an append.
type PushRequest struct {
	Entries []LedgerEntry `json:"entries"`
	Length  int           `json:"length"`
}

// SnapshotResponse returns the server-side snapshot for a device in
// most-recently-touched-first order.
type SnapshotResponse struct {
	Entries  []LedgerEntry `json:"entries"`
	Length   int           `json:"length"`
	StoredAt *time.Time    `json:"stored_at,omitempty"`
	DeviceID string        `json:"device_id"`
}

// VersionResponse reports the running server version.
type VersionResponse struct {
	Version string `json:"version"`
}
