package debounce

import "time"

// fakeTimer is a deterministic Timer whose countdown is driven manually via
// elapse, so adapter tests do not depend on wall-clock timing.
type fakeTimer struct {
	fire    func()
	wait    time.Duration
	running bool
	dead    bool
	resets  int
}

func (t *fakeTimer) Reset(d time.Duration) bool {
	was := t.running
	t.wait = d
	t.running = true
	t.resets++

	return was
}

func (t *fakeTimer) Stop() bool {
	was := t.running
	t.running = false

	return was
}

// elapse simulates the countdown running out.
func (t *fakeTimer) elapse() {
	if !t.running || t.dead {
		return
	}
	t.running = false
	t.fire()
}

type fakeOwner struct {
	timers []*fakeTimer
}

func (o *fakeOwner) NewTimer(fire func()) Timer {
	t := &fakeTimer{fire: fire}
	o.timers = append(o.timers, t)

	return t
}

// destroy kills all hosted timers, the way a real owner's teardown does.
func (o *fakeOwner) destroy() {
	for _, t := range o.timers {
		t.running = false
		t.dead = true
	}
}

// elapseAll elapses every running timer hosted by the owner.
func (o *fakeOwner) elapseAll() {
	for _, t := range o.timers {
		t.elapse()
	}
}
