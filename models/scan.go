package models

import "time"

// CaptureMode defines the aggregation policy applied to accepted scan
// events for the duration of one capture session.
type CaptureMode int

const (
	// CaptureSingle creates a new ledger entry for every accepted scan,
	// even when the code repeats.
	CaptureSingle CaptureMode = 1

	// CaptureSeries aggregates repeated scans of the same code into one
	// entry by incrementing its quantity.
	CaptureSeries CaptureMode = 2
)

// String returns a human-readable mode name for logs and the UI.
func (m CaptureMode) String() string {
	switch m {
	case CaptureSingle:
		return "single"
	case CaptureSeries:
		return "series"
	default:
		return "unknown"
	}
}

// ScanEvent is a transient decoded scan produced by a decoder or manual
// entry. It is consumed immediately by the session controller and never
// stored.
type ScanEvent struct {
	// Code is the decoded barcode value.
	Code string

	// ObservedAt is when the scan was observed.
	ObservedAt time.Time
}
