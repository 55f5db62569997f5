package debounce

import "time"

// Owner is the capability a host object must provide to debounced wrappers.
// An owner hosts single-shot timers whose lifetime is bounded by its own:
// once the owner is destroyed, timers created through it never fire again.
//
// Implementations must hand out a fresh timer on every NewTimer call, as
// each wrapper expects exclusive use of its timer.
type Owner interface {
	// NewTimer returns a stopped single-shot timer that runs fire on the
	// owner's event loop each time the timer elapses.
	NewTimer(fire func()) Timer
}

// Timer is a single-shot, restartable delay primitive. It is a subset of
// *time.Timer created via time.AfterFunc, which satisfies this interface
// directly.
type Timer interface {
	// Reset starts or restarts the countdown. Resetting a running timer
	// replaces the pending firing rather than queuing a second one. It
	// reports whether the timer had been active.
	Reset(d time.Duration) bool

	// Stop prevents the pending firing, if any, and reports whether the
	// timer had been active.
	Stop() bool
}
