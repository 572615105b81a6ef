// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Voronin

// Package ledger implements the in-memory scan ledger: an ordered collection
// of scanned items keyed by barcode value, with two insertion policies, and
// the debouncer that suppresses noisy re-reads of a single physical scan.
//
// The package holds pure state transitions only. It performs no I/O and is
// not safe for concurrent use; the session controller owns a Ledger
// exclusively and serializes access to it.
package ledger

import (
	"github.com/google/uuid"

	"github.com/avoronin/scanledger/models"
)

// Ledger is an ordered sequence of scanned items in
// most-recently-touched-first order: an entry that is created or incremented
// moves to the front.
type Ledger struct {
	entries []models.LedgerEntry
	newID   func() string
}

// New returns an empty Ledger. Entry identifiers are UUIDv7 so they stay
// unique and roughly time-ordered within one ledger instance.
func New() *Ledger {
	return &Ledger{newID: newEntryID}
}

func newEntryID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return v7.String()
}

// Apply folds an accepted scan event into the ledger under the given capture
// mode and returns the resulting entry.
//
// In single mode every event creates a fresh entry with quantity 1 at the
// front. In series mode an existing entry with the same code is incremented,
// stamped with the event time, marked unsynced, and moved to the front; a
// code never seen before is created as in single mode.
func (l *Ledger) Apply(event models.ScanEvent, mode models.CaptureMode) models.LedgerEntry {
	if mode == models.CaptureSeries {
		for i, e := range l.entries {
			if e.Code != event.Code {
				continue
			}

			e.Quantity++
			e.LastSeenAt = event.ObservedAt
			e.Synced = false

			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			l.pushFront(e)
			return e
		}
	}

	entry := models.LedgerEntry{
		ID:         l.newID(),
		Code:       event.Code,
		Quantity:   1,
		LastSeenAt: event.ObservedAt,
		Synced:     false,
	}
	l.pushFront(entry)
	return entry
}

func (l *Ledger) pushFront(e models.LedgerEntry) {
	l.entries = append([]models.LedgerEntry{e}, l.entries...)
}

// MarkSynced flips Synced to true for every current entry whose observed
// state still matches the corresponding snapshot entry. An entry that was
// mutated after the snapshot was taken no longer matches (mutation bumps
// quantity or LastSeenAt and clears Synced), so a stale success can never
// mark a since-changed entry. Returns the number of entries marked.
func (l *Ledger) MarkSynced(snapshot []models.LedgerEntry) int {
	byID := make(map[string]models.LedgerEntry, len(snapshot))
	for _, s := range snapshot {
		byID[s.ID] = s
	}

	marked := 0
	for i := range l.entries {
		s, ok := byID[l.entries[i].ID]
		if !ok || !l.entries[i].StateEquals(s) {
			continue
		}
		l.entries[i].Synced = true
		marked++
	}
	return marked
}

// Clear empties the ledger unconditionally. Irreversible.
func (l *Ledger) Clear() {
	l.entries = nil
}

// Snapshot returns a read-only copy of the entries in current ledger order
// for export, display, or sync submission. Mutating the returned slice does
// not affect the ledger.
func (l *Ledger) Snapshot() []models.LedgerEntry {
	out := make([]models.LedgerEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Replace swaps the ledger content with entries, preserving their order.
// Used to hydrate the ledger from the local store at startup.
func (l *Ledger) Replace(entries []models.LedgerEntry) {
	l.entries = make([]models.LedgerEntry, len(entries))
	copy(l.entries, entries)
}

// Len returns the number of entries in the ledger.
func (l *Ledger) Len() int {
	return len(l.entries)
}
