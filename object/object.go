// Package object provides a reference implementation of the host-object
// contract debounced wrappers rely on: an event-loop bound object with a
// keyed property bag, an ownership tree, and hosted single-shot timers
// whose lifetime is bounded by the object's own.
//
// Values attached to an object are owned by it: any attached value that
// implements io.Closer is closed when the object is destroyed, or when its
// key is overwritten. Destroying an object also destroys its children,
// making teardown of a whole object tree deterministic.
package object

import (
	"io"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/signalkit/go-debounce"
	"github.com/signalkit/go-debounce/eventloop"
)

// Object is a node in an ownership tree, bound to an event loop. It
// satisfies debounce.Owner.
type Object struct {
	id     string
	loop   *eventloop.Loop
	logger *zap.Logger

	mu        sync.Mutex
	parent    *Object
	children  []*Object
	props     map[string]any
	dead      bool
	destroyed chan struct{}
}

// New returns a root object bound to the given loop. It panics if loop is
// nil.
func New(loop *eventloop.Loop, opts ...Option) *Object {
	if loop == nil {
		panic("object: nil loop")
	}

	cfg := config{logger: zap.NewNop()}
	cfg.apply(opts)

	return &Object{
		id:        uuid.NewString(),
		loop:      loop,
		logger:    cfg.logger,
		props:     map[string]any{},
		destroyed: make(chan struct{}),
	}
}

// NewChild returns a new object owned by o, bound to the same loop and
// logger. Destroying o destroys the child first. A child created from an
// already destroyed object is returned already destroyed.
func (o *Object) NewChild() *Object {
	child := &Object{
		id:        uuid.NewString(),
		loop:      o.loop,
		logger:    o.logger,
		parent:    o,
		props:     map[string]any{},
		destroyed: make(chan struct{}),
	}

	o.mu.Lock()
	if o.dead {
		o.mu.Unlock()
		child.Destroy()

		return child
	}
	o.children = append(o.children, child)
	o.mu.Unlock()

	return child
}

// ID returns the object's unique identifier.
func (o *Object) ID() string {
	return o.id
}

// SetProperty attaches value to o under key, transferring ownership: if
// value implements io.Closer it is closed when o is destroyed. Overwriting
// a key closes the previously owned value. Values set on a destroyed
// object are closed immediately and not stored.
func (o *Object) SetProperty(key string, value any) {
	o.mu.Lock()
	if o.dead {
		o.mu.Unlock()
		o.closeOwned(key, value)

		return
	}
	prev, ok := o.props[key]
	o.props[key] = value
	o.mu.Unlock()

	if ok {
		o.closeOwned(key, prev)
	}
}

// Property returns the value attached under key, or nil if the key is
// absent or o has been destroyed.
func (o *Object) Property(key string) any {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.props[key]
}

// NewTimer returns a stopped single-shot timer that runs fire on o's event
// loop. The timer is owned by o via the property bag, so destroying o kills
// it; a timer created from a destroyed object is returned already dead.
func (o *Object) NewTimer(fire func()) debounce.Timer {
	tm := o.loop.NewTimer(fire)
	o.SetProperty("timer/"+uuid.NewString(), tm)

	return tm
}

// Destroy tears the object down: children are destroyed first, then all
// owned property values are closed, then the object detaches from its
// parent. After Destroy the object is inert: the property bag is empty and
// timers created from it are dead. Destroy is idempotent.
func (o *Object) Destroy() {
	o.mu.Lock()
	if o.dead {
		o.mu.Unlock()

		return
	}
	o.dead = true
	children := o.children
	o.children = nil
	props := o.props
	o.props = nil
	parent := o.parent
	o.parent = nil
	o.mu.Unlock()

	for _, child := range children {
		child.Destroy()
	}

	for key, value := range props {
		o.closeOwned(key, value)
	}

	if parent != nil {
		parent.removeChild(o)
	}

	close(o.destroyed)

	o.logger.Debug("object destroyed",
		zap.String("object", o.id),
		zap.Int("children", len(children)),
		zap.Int("owned", len(props)),
	)
}

// Destroyed returns a channel that is closed once the object has been
// destroyed.
func (o *Object) Destroyed() <-chan struct{} {
	return o.destroyed
}

func (o *Object) closeOwned(key string, value any) {
	closer, ok := value.(io.Closer)
	if !ok {
		return
	}

	if err := closer.Close(); err != nil {
		o.logger.Warn("failed to close owned property",
			zap.String("object", o.id),
			zap.String("key", key),
			zap.Error(err),
		)
	}
}

func (o *Object) removeChild(child *Object) {
	o.mu.Lock()
	defer o.mu.Unlock()

	for i, c := range o.children {
		if c == child {
			o.children = append(o.children[:i], o.children[i+1:]...)

			return
		}
	}
}
