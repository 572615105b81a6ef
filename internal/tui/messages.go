package tui

import "github.com/avoronin/scanledger/models"

// syncDoneMsg ends a sync attempt started from the UI.
type syncDoneMsg struct {
	attempt models.SyncAttempt
	err     error
}

// copiedMsg confirms that the ledger TSV landed on the clipboard.
type copiedMsg struct {
	err error
}

// qrSavedMsg reports the result of rendering a QR label to disk.
type qrSavedMsg struct {
	path string
	err  error
}

// clearDoneMsg confirms a ledger wipe.
type clearDoneMsg struct {
	err error
}

// clearFlashMsg removes a transient status line after its timer fires.
type clearFlashMsg struct{}
