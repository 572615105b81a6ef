// Package adapter contains the client's external collaborators: the decoder
// that produces raw scan codes, the connectivity probe, and the HTTP
// transport to the reconciliation server. The core never inspects decode or
// transport internals; it consumes the contracts defined here.
package adapter

import (
	"context"

	"github.com/avoronin/scanledger/models"
)

// CancelFunc stops a live decode stream. Safe to call more than once.
type CancelFunc func()

// Decoder produces decoded barcode values from a capture source.
//
// Implementations must serialize their own decode attempts: each decode
// completes, or is cancelled, before the next is issued, so the session
// controller receives results one at a time in capture order.
type Decoder interface {
	// StartLiveDecode begins a lazy, restartable stream of decoded
	// strings. Every decoded value is delivered through onResult on a
	// single goroutine. The returned CancelFunc stops the stream; after
	// it returns no further onResult calls are made.
	StartLiveDecode(ctx context.Context, onResult func(code string)) (CancelFunc, error)

	// DecodeStatic decodes a single value from a static capture (image
	// bytes, buffered reader output). Returns ErrCodeNotFound when the
	// capture contains no decodable value.
	DecodeStatic(data []byte) (string, error)
}

// ServerAdapter is the client-side contract for the reconciliation server.
// The remote is a flat overwrite target: PushSnapshot always carries the
// complete ledger state, never a diff.
type ServerAdapter interface {
	// RegisterDevice creates the device on the server and stores the
	// issued bearer token for subsequent calls.
	RegisterDevice(ctx context.Context, req models.RegisterDeviceRequest) (models.Token, error)

	// Login re-authenticates an already registered device.
	Login(ctx context.Context, req models.LoginDeviceRequest) (models.Token, error)

	// PushSnapshot transmits the full ledger snapshot. Exactly one write
	// attempt per call; no retry or batching inside the transport.
	PushSnapshot(ctx context.Context, entries []models.LedgerEntry) error

	// FetchSnapshot returns the snapshot currently stored on the server
	// for this device.
	FetchSnapshot(ctx context.Context) (models.SnapshotResponse, error)
}

// Connectivity reports whether a network path to the remote target exists.
// The sync coordinator consults it synchronously before issuing a remote
// call so an offline device fails fast without a transport timeout.
type Connectivity interface {
	Online(ctx context.Context) bool
}
