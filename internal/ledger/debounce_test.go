package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestDebouncer_RejectsRepeatWithinWindow verifies that scanning the same
// code twice within the suppression window yields exactly one accepted event.
func TestDebouncer_RejectsRepeatWithinWindow(t *testing.T) {
	d := NewDebouncer(2 * time.Second)

	assert.True(t, d.Accept("X", t0))
	assert.False(t, d.Accept("X", t0.Add(500*time.Millisecond)))
}

// TestDebouncer_AcceptsRepeatAfterWindow verifies that the same code is
// accepted again once the window has elapsed.
func TestDebouncer_AcceptsRepeatAfterWindow(t *testing.T) {
	d := NewDebouncer(2 * time.Second)

	assert.True(t, d.Accept("X", t0))
	assert.True(t, d.Accept("X", t0.Add(2*time.Second)))
}

// TestDebouncer_DifferentCodeResetsMemory verifies the A→B→A sequence inside
// one window: all three events are accepted because each differs from the
// last accepted code.
func TestDebouncer_DifferentCodeResetsMemory(t *testing.T) {
	d := NewDebouncer(2 * time.Second)

	assert.True(t, d.Accept("A", t0))
	assert.True(t, d.Accept("B", t0.Add(200*time.Millisecond)))
	assert.True(t, d.Accept("A", t0.Add(400*time.Millisecond)))
}

// TestDebouncer_RejectionKeepsMemory verifies that a rejected event does not
// refresh the stored timestamp: X at 0s, X at 1.9s (dropped), X at 2.1s must
// be accepted because the window is measured from the last acceptance.
func TestDebouncer_RejectionKeepsMemory(t *testing.T) {
	d := NewDebouncer(2 * time.Second)

	assert.True(t, d.Accept("X", t0))
	assert.False(t, d.Accept("X", t0.Add(1900*time.Millisecond)))
	assert.True(t, d.Accept("X", t0.Add(2100*time.Millisecond)))
}

// TestNewDebouncer_DefaultWindow verifies the fallback for a non-positive
// window.
func TestNewDebouncer_DefaultWindow(t *testing.T) {
	d := NewDebouncer(0)

	assert.True(t, d.Accept("X", t0))
	assert.False(t, d.Accept("X", t0.Add(DefaultDebounceWindow-time.Millisecond)))
	assert.True(t, d.Accept("X", t0.Add(DefaultDebounceWindow)))
}
