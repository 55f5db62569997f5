package debounce

import "time"

type config struct {
	wait time.Duration
}

func (c *config) apply(opts []Option) {
	for _, opt := range opts {
		opt(c)
	}
}

// Option is a function that can be used to configure a debounced wrapper.
type Option func(*config)

// WithWait returns an option that sets the quiet period a wrapper waits for
// before invoking the wrapped function. Without this option the wait
// duration is DefaultWait.
//
// A negative wait is a contract violation and causes New to panic. A wait
// of zero is valid: the invocation still happens asynchronously, on the
// next turn of the owner's event loop.
func WithWait(wait time.Duration) Option {
	return func(c *config) {
		c.wait = wait
	}
}
