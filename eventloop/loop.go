// Package eventloop provides a minimal single-goroutine event loop with
// integrated single-shot timers.
//
// All turns posted to a loop run serialized, in post order, on the loop's
// own goroutine. Timers created from a loop fire by posting a turn, so
// timer callbacks serialize with everything else running on the loop.
package eventloop

import (
	"sync"

	"go.uber.org/zap"
)

// Loop is a FIFO queue of turns drained by a single goroutine.
type Loop struct {
	logger *zap.Logger

	mu     sync.Mutex
	queue  []func()
	closed bool

	wake chan struct{}
	quit chan struct{}
	done chan struct{}

	closeOnce sync.Once
}

// New creates a loop and starts its goroutine.
func New(opts ...Option) *Loop {
	cfg := config{logger: zap.NewNop()}
	cfg.apply(opts)

	l := &Loop{
		logger: cfg.logger,
		wake:   make(chan struct{}, 1),
		quit:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	go l.run()

	return l
}

// Post schedules f to run as a turn on the loop goroutine. It returns
// immediately and reports whether the turn was accepted; turns posted
// after Close are dropped.
func (l *Loop) Post(f func()) bool {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		l.logger.Debug("dropped turn posted to closed loop")

		return false
	}
	l.queue = append(l.queue, f)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}

	return true
}

// Close stops the loop. The turn running at the time of the call completes;
// queued turns that have not started are discarded. Close is idempotent and
// does not return until the loop goroutine has exited.
func (l *Loop) Close() {
	l.closeOnce.Do(func() {
		l.mu.Lock()
		l.closed = true
		l.queue = nil
		l.mu.Unlock()

		close(l.quit)
	})

	<-l.done
}

// Done returns a channel that is closed once the loop has stopped.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

func (l *Loop) run() {
	defer close(l.done)

	for {
		select {
		case <-l.quit:
			return
		case <-l.wake:
			l.drain()
		}
	}
}

func (l *Loop) drain() {
	for {
		l.mu.Lock()
		if l.closed || len(l.queue) == 0 {
			l.mu.Unlock()

			return
		}
		f := l.queue[0]
		l.queue = l.queue[1:]
		l.mu.Unlock()

		l.turn(f)
	}
}

// turn runs a single scheduled callback. A panic raised by the callback is
// recovered and logged so that one misbehaving callback cannot take down
// the loop and every other turn scheduled on it.
func (l *Loop) turn(f func()) {
	defer func() {
		if r := recover(); r != nil {
			l.logger.Error("panic in scheduled callback",
				zap.Any("panic", r),
				zap.Stack("stack"),
			)
		}
	}()

	f()
}
