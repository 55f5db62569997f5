package debounce

// New1 returns a debounced wrapper around a single-argument callable. It
// behaves like New, except that the argument of the most recent call is
// captured and passed to f when the quiet period elapses; arguments from
// earlier calls in the same burst are discarded.
//
// The type parameter fixes f's signature at compile time, so passing a
// callable with a mismatched argument list is a build error rather than a
// runtime failure.
func New1[A any](f func(A), owner Owner, opts ...Option) func(A) {
	if f == nil {
		panic("debounce: nil function")
	}
	schedule := newScheduler(owner, opts)

	return func(a A) {
		schedule(func() {
			f(a)
		})
	}
}

// New2 is New1 for two-argument callables.
func New2[A, B any](f func(A, B), owner Owner, opts ...Option) func(A, B) {
	if f == nil {
		panic("debounce: nil function")
	}
	schedule := newScheduler(owner, opts)

	return func(a A, b B) {
		schedule(func() {
			f(a, b)
		})
	}
}

// New3 is New1 for three-argument callables. Callables with more arguments
// than three can bundle them into a struct and use New1.
func New3[A, B, C any](f func(A, B, C), owner Owner, opts ...Option) func(A, B, C) {
	if f == nil {
		panic("debounce: nil function")
	}
	schedule := newScheduler(owner, opts)

	return func(a A, b B, c C) {
		schedule(func() {
			f(a, b, c)
		})
	}
}
