package eventloop

import (
	"sync"
	"time"
)

// Timer is a single-shot, restartable timer integrated with a Loop. When
// the countdown elapses, the timer's action is posted as a turn on the
// loop, then the timer stops until the next Reset.
type Timer struct {
	loop *Loop
	fire func()

	mu   sync.Mutex
	gen  uint64
	dead bool
	t    *time.Timer
}

// NewTimer returns a stopped timer that runs fire on the loop each time its
// countdown elapses. The returned timer does nothing until Reset is called.
func (l *Loop) NewTimer(fire func()) *Timer {
	return &Timer{loop: l, fire: fire}
}

// Reset starts or restarts the countdown. Restarting replaces the pending
// firing rather than queuing a second one, even when the previous countdown
// has already elapsed and its firing has not yet had its turn on the loop.
// It reports whether the timer had been active.
func (tm *Timer) Reset(d time.Duration) bool {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	// Each arming carries its own generation; a firing posted by a
	// superseded arming is discarded when its turn runs.
	tm.gen++
	gen := tm.gen

	active := tm.t != nil && tm.t.Stop()
	tm.t = time.AfterFunc(d, func() { tm.elapsed(gen) })

	return active
}

// Stop prevents the pending firing, if any, including one whose countdown
// has already elapsed. It reports whether the timer had been active.
func (tm *Timer) Stop() bool {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	tm.gen++

	return tm.t != nil && tm.t.Stop()
}

// Close stops the timer and permanently kills it: a closed timer never runs
// its action again, even if the countdown had already elapsed and the
// resulting turn is still queued on the loop. Close always returns nil.
func (tm *Timer) Close() error {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	tm.dead = true
	tm.gen++
	if tm.t != nil {
		tm.t.Stop()
	}

	return nil
}

func (tm *Timer) elapsed(gen uint64) {
	tm.loop.Post(func() {
		tm.mu.Lock()
		stale := tm.dead || gen != tm.gen
		tm.mu.Unlock()

		if !stale {
			tm.fire()
		}
	})
}
