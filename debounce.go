// Package debounce wraps callables bound into an event-loop driven object
// system, coalescing rapid repeated invocations into a single delayed one.
//
// Calling a debounced wrapper schedules the wrapped function to run after a
// quiet period with no further calls. Each new call restarts the countdown
// and replaces the previously captured arguments, so a burst of N calls
// results in exactly one invocation, with the arguments of the last call.
//
// The wrapper schedules through its Owner: the timer it uses is created by
// the owner and shares the owner's lifetime. Once the owner is destroyed,
// any pending invocation is silently dropped and the wrapper becomes inert.
//
// Debouncing is useful for signals that fire rapidly, such as text-changed
// or mouse-move notifications, where the reacting operation is expensive
// and only the final state of a burst matters.
package debounce

import "time"

// DefaultWait is the wait duration used when no WithWait option is given.
const DefaultWait = 300 * time.Millisecond

// New returns a debounced wrapper around f. Invoking the wrapper schedules
// f to run on owner's event loop once the wait duration has elapsed since
// the most recent invocation of the wrapper. The wait duration defaults to
// DefaultWait and can be changed with WithWait.
//
// The wrapper never invokes f synchronously; f always runs later, as its
// own turn of the owner's event loop. If owner is destroyed while an
// invocation is pending, the invocation is dropped.
//
// New panics if f or owner is nil, or if the configured wait is negative.
//
// The wrapper must only be invoked from the goroutine driving owner's event
// loop. This is a caller contract and is not enforced internally.
func New(f func(), owner Owner, opts ...Option) func() {
	if f == nil {
		panic("debounce: nil function")
	}
	schedule := newScheduler(owner, opts)

	return func() {
		schedule(f)
	}
}

// newScheduler validates owner and opts, and returns the scheduling core
// shared by New and its generic siblings. The returned function captures
// the pending invocation, replacing any previous one, and (re)starts the
// wrapper's timer.
//
// The timer is created lazily on the first call, through the owner, so its
// lifetime is bounded by the owner's. Each wrapper owns exactly one timer,
// which keeps wrappers on a shared owner independent of each other.
func newScheduler(owner Owner, opts []Option) func(invoke func()) {
	if owner == nil {
		panic("debounce: nil owner")
	}

	cfg := config{wait: DefaultWait}
	cfg.apply(opts)
	if cfg.wait < 0 {
		panic("debounce: negative wait duration")
	}
	wait := cfg.wait

	var timer Timer
	var pending func()

	fire := func() {
		f := pending
		pending = nil
		if f != nil {
			f()
		}
	}

	return func(invoke func()) {
		if timer == nil {
			timer = owner.NewTimer(fire)
		}

		pending = invoke
		timer.Reset(wait)
	}
}
