package ledger

import "time"

// DefaultDebounceWindow matches the duration of the visual "accepted"
// feedback: repeats of the same code inside this window cannot have been a
// deliberate re-presentation of the item.
const DefaultDebounceWindow = 2 * time.Second

// Debouncer suppresses repeated identical decode events arriving faster
// than a human could have re-presented the item. It remembers only the last
// accepted code and its timestamp, independent of ledger content: scanning
// A, then B, then A again restarts acceptance for A immediately.
type Debouncer struct {
	window   time.Duration
	lastCode string
	lastAt   time.Time
}

// NewDebouncer returns a Debouncer with the given suppression window.
// A non-positive window falls back to DefaultDebounceWindow.
func NewDebouncer(window time.Duration) *Debouncer {
	if window <= 0 {
		window = DefaultDebounceWindow
	}
	return &Debouncer{window: window}
}

// Accept reports whether the event should be processed. It returns true,
// and updates the debouncer's memory, when code differs from the last
// accepted code or when at least the suppression window has elapsed since
// the last acceptance. On false the caller must silently drop the event;
// the memory is left untouched.
func (d *Debouncer) Accept(code string, now time.Time) bool {
	if code == d.lastCode && now.Sub(d.lastAt) < d.window {
		return false
	}

	d.lastCode = code
	d.lastAt = now
	return true
}
