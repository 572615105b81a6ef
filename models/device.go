package models

import "time"

// Device represents a registered scanner device on the server side.
// Each device owns exactly one ledger snapshot on the server.
type Device struct {
	// ID is the database identifier of the device record.
	ID int64 `json:"id"`

	// DeviceID is the client-chosen stable identifier (usually a UUID
	// generated on first start).
	DeviceID string `json:"device_id"`

	// Name is a human-readable device label.
	Name string `json:"name"`

	// SecretHash is the bcrypt hash of the device secret.
	// Never serialized to clients.
	SecretHash string `json:"-"`

	// RegisteredAt is when the device first registered.
	RegisteredAt time.Time `json:"registered_at"`
}

// Token carries a signed bearer token issued to a device.
type Token struct {
	SignedString string `json:"token"`
	DeviceID     string `json:"device_id"`
}
