// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Voronin

package models

import "time"

// LedgerEntry represents a single scanned item in the ledger.
// It is the primary persistence model for both the local client store and
// the server-side snapshot store.
type LedgerEntry struct {
	// ID is the client-generated unique identifier of the entry.
	// Assigned once at creation and never reused within a ledger.
	ID string `json:"id"`

	// Code is the decoded barcode value. Never empty; equality is exact
	// string match.
	Code string `json:"code"`

	// Quantity is the number of accepted scans aggregated into this entry.
	// Always >= 1. In Single capture mode it is always exactly 1.
	Quantity int64 `json:"quantity"`

	// LastSeenAt is the observation timestamp of the most recent accepted
	// scan applied to this entry.
	LastSeenAt time.Time `json:"last_seen_at"`

	// Synced reports whether the entry state has been confirmed by the
	// remote endpoint. Any mutation of the entry resets it to false.
	Synced bool `json:"synced"`
}

// StateEquals reports whether other describes the same observed state of the
// same entry. Used by sync reconciliation to skip entries that were mutated
// after a snapshot was taken.
func (e LedgerEntry) StateEquals(other LedgerEntry) bool {
	return e.ID == other.ID &&
		e.Quantity == other.Quantity &&
		e.LastSeenAt.Equal(other.LastSeenAt)
}

// SyncOutcome describes how a sync attempt finished.
type SyncOutcome int

const (
	// SyncSucceeded means the remote accepted the full snapshot.
	SyncSucceeded SyncOutcome = 1

	// SyncFailed means the attempt was issued but the remote write failed.
	SyncFailed SyncOutcome = 2
)

// SyncAttempt is an ephemeral record of one reconciliation attempt.
// It is never persisted; the client keeps only the most recent one for
// display purposes.
type SyncAttempt struct {
	// Outcome is the terminal state of the attempt.
	Outcome SyncOutcome

	// Err holds the failure detail when Outcome is SyncFailed.
	Err error

	// EntryCount is the number of entries in the snapshot the attempt
	// carried.
	EntryCount int

	// CompletedAt is when the attempt finished, success or failure.
	CompletedAt time.Time
}
