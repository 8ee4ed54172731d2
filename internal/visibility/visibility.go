package visibility

import (
	"context"
	"errors"
	"sync"

	slotdeckerrors "github.com/alexisbeaulieu97/slotdeck/pkg/errors"
)

// ErrNoScope is returned when a controller is requested outside a session scope.
var ErrNoScope = slotdeckerrors.NewUsageError("visibility", "no initialized session scope")

// ErrScopeClosed is returned when the enclosing session has ended.
var ErrScopeClosed = slotdeckerrors.NewUsageError("visibility", "session scope already closed")

// Controller is the shared sidebar visibility flag. Mutation happens on the
// UI loop; readers may subscribe for changes.
type Controller struct {
	visible     bool
	subscribers []func(bool)
}

func newController(initial bool) *Controller {
	return &Controller{visible: initial}
}

// IsVisible reports the current flag.
func (c *Controller) IsVisible() bool {
	return c.visible
}

// Show makes the sidebar visible.
func (c *Controller) Show() {
	c.set(true)
}

// Hide hides the sidebar.
func (c *Controller) Hide() {
	c.set(false)
}

// Toggle flips the flag.
func (c *Controller) Toggle() {
	c.set(!c.visible)
}

// Subscribe registers fn to be called with the new value on each change.
func (c *Controller) Subscribe(fn func(visible bool)) {
	if fn != nil {
		c.subscribers = append(c.subscribers, fn)
	}
}

func (c *Controller) set(v bool) {
	if c.visible == v {
		return
	}
	c.visible = v
	for _, fn := range c.subscribers {
		fn(v)
	}
}

// Scope ties a controller's lifetime to one application session.
type Scope struct {
	mu         sync.Mutex
	controller *Controller
	closed     bool
}

// NewScope opens a session scope with the flag set to initial.
func NewScope(initial bool) *Scope {
	return &Scope{controller: newController(initial)}
}

// Controller returns the scope's controller, or an error once closed.
func (s *Scope) Controller() (*Controller, error) {
	if s == nil {
		return nil, ErrNoScope
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, ErrScopeClosed
	}
	return s.controller, nil
}

// Close ends the session. Subscribers are dropped.
func (s *Scope) Close() {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.controller.subscribers = nil
}

type scopeKey struct{}

// WithScope attaches scope to ctx.
func WithScope(ctx context.Context, scope *Scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, scope)
}

// FromContext returns the controller of the scope carried by ctx.
func FromContext(ctx context.Context) (*Controller, error) {
	if ctx == nil {
		return nil, ErrNoScope
	}
	scope, _ := ctx.Value(scopeKey{}).(*Scope)
	if scope == nil {
		return nil, ErrNoScope
	}
	return scope.Controller()
}

// MustFromContext is FromContext for wiring code: a missing scope is a
// programming error and panics.
func MustFromContext(ctx context.Context) *Controller {
	c, err := FromContext(ctx)
	if err != nil {
		panic(err)
	}
	return c
}

// IsUsageError reports whether err is one of the scope wiring errors.
func IsUsageError(err error) bool {
	var usage *slotdeckerrors.UsageError
	return errors.As(err, &usage)
}
