// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Voronin

// Package validators enforces the input rules that sit between raw scan
// events and the ledger. Malformed codes are rejected here, before the
// debouncer, so neither the ledger nor the wire format ever carries them.
//
// Validation is decoupled from the session controller so the same rules
// apply to every input source: camera decodes, keyboard-wedge readers, and
// manual text entry all pass through the identical normalization path.
package validators

// CodeValidator normalizes and validates a raw decoded string into a scan
// code suitable for ledger insertion.
type CodeValidator interface {

	// Normalize trims surrounding whitespace and validates the result.
	// Returns the normalized code, or an error describing why the event
	// must be dropped.
	Normalize(raw string) (string, error)
}
