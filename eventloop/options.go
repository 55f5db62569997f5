package eventloop

import "go.uber.org/zap"

type config struct {
	logger *zap.Logger
}

func (c *config) apply(opts []Option) {
	for _, opt := range opts {
		opt(c)
	}
}

// Option is a function that can be used to configure a loop.
type Option func(*config)

// WithLogger returns an option that sets the logger used by the loop,
// mainly to report panics recovered from scheduled callbacks. Without this
// option the loop does not log.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}
