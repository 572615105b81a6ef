package service

import (
	"context"
	"io"
	"time"

	"github.com/avoronin/scanledger/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientSessionService owns the in-memory ledger and the capture session
// lifecycle. A session is either idle or capturing; scans are accepted only
// while capturing. Every accepted scan mutates the ledger and is persisted
// to the local store before the call returns.
type ClientSessionService interface {
	// Hydrate restores the ledger from the local store. A load failure
	// falls back to an empty ledger so the client always starts.
	Hydrate(ctx context.Context) error

	// Start begins a capture session in the given mode and starts the
	// live decode stream. Returns ErrSessionActive if a session is
	// already running and ErrInvalidCaptureMode for an unknown mode.
	Start(ctx context.Context, mode models.CaptureMode) error

	// Stop ends the capture session and halts the decode stream. Safe to
	// call when no session is running.
	Stop()

	// Active reports whether a capture session is running.
	Active() bool

	// Mode returns the capture mode of the current or last session.
	Mode() models.CaptureMode

	// HandleScan runs one raw scan through normalization, debounce and
	// ledger application. Returns the touched entry on acceptance,
	// ErrScanRejected when the debouncer suppresses the scan, or a
	// validation error for a malformed code.
	HandleScan(raw string, now time.Time) (models.LedgerEntry, error)

	// Entries returns a copy of the ledger in most-recently-touched-first
	// order.
	Entries() []models.LedgerEntry

	// Len returns the number of ledger entries.
	Len() int

	// RestoreSnapshot replaces the ledger with entries fetched from the
	// remote target and persists them locally. Returns ErrSessionActive
	// while a capture session is running.
	RestoreSnapshot(ctx context.Context, entries []models.LedgerEntry) error

	// MarkSynced flags the entries captured in snapshot as synced, skipping
	// any entry mutated after the snapshot was taken. Returns the number
	// of entries flagged. The updated ledger is persisted.
	MarkSynced(ctx context.Context, snapshot []models.LedgerEntry) int

	// Clear removes every ledger entry and persists the empty state.
	Clear(ctx context.Context) error
}

// ClientSyncService pushes the full ledger snapshot to the remote target.
// At most one sync attempt runs at a time.
type ClientSyncService interface {
	// Sync performs one push attempt: empty-ledger check, connectivity
	// check, then a single snapshot transmission. Returns the recorded
	// attempt together with ErrSyncInFlight, ErrEmptyLedger, ErrOffline
	// or a wrapped ErrSyncTransport on failure.
	Sync(ctx context.Context) (models.SyncAttempt, error)

	// Restore seeds an empty ledger from the server-side snapshot and
	// returns the number of restored entries. A non-empty ledger and a
	// device without a remote snapshot are both no-ops.
	Restore(ctx context.Context) (int, error)

	// LastAttempt returns the most recent completed attempt, if any.
	LastAttempt() (models.SyncAttempt, bool)
}

// ClientSyncJob is a background worker that periodically calls Sync.
type ClientSyncJob interface {
	// Start launches the background sync goroutine. It syncs every
	// interval, defaulting to 1 minute if interval is zero or negative.
	// Any previously running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it
	// has fully terminated.
	Stop()
}

// ClientAuthService establishes the device identity on the remote target.
type ClientAuthService interface {
	// EnsureSession logs the device in, registering it first if the
	// server does not know it yet. On success the transport adapter
	// holds a valid bearer token.
	EnsureSession(ctx context.Context) error
}

// ClientExportService renders the ledger for hand-off to other systems.
type ClientExportService interface {
	// WriteTSV writes the ledger as tab-separated lines, one entry per
	// line, most-recently-touched first, no header row.
	WriteTSV(w io.Writer) error

	// TSV returns the same rendering as a string.
	TSV() (string, error)

	// CopyTSV places the TSV rendering on the system clipboard.
	CopyTSV() error

	// QRLabel renders a single code as a QR PNG suitable for printing a
	// replacement label.
	QRLabel(code string) ([]byte, error)
}
