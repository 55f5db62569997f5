package object

import "go.uber.org/zap"

type config struct {
	logger *zap.Logger
}

func (c *config) apply(opts []Option) {
	for _, opt := range opts {
		opt(c)
	}
}

// Option is a function that can be used to configure a root object.
type Option func(*config)

// WithLogger returns an option that sets the logger used by the object and
// all of its children. Without this option objects do not log.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}
