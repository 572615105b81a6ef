package validators

import "errors"

var (
	// ErrEmptyCode is returned for a code that is empty after trimming
	// surrounding whitespace. Such events are dropped silently at the
	// session boundary; empty codes never reach the ledger.
	ErrEmptyCode = errors.New("scan code is empty")

	// ErrCodeTooLong guards the ledger and the wire format against
	// garbage reads from a misconfigured decoder.
	ErrCodeTooLong = errors.New("scan code exceeds maximum length")

	// ErrCodeNotPrintable is returned when a code contains control
	// characters that cannot have come from a barcode symbology.
	ErrCodeNotPrintable = errors.New("scan code contains control characters")
)
