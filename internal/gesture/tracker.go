package gesture

import (
	"github.com/alexisbeaulieu97/slotdeck/internal/logger"
)

const (
	// DefaultThreshold is the downward travel, in rows, that closes the drawer.
	DefaultThreshold = 40
	// DefaultDragSlop is the travel after which a press counts as a drag.
	DefaultDragSlop = 5
)

// Point is a pointer position. ID distinguishes concurrent pointers; the
// terminal has one mouse, so the shell uses the pressed button.
type Point struct {
	ID int
	X  int
	Y  int
}

// Capturer grants exclusive delivery of pointer events to the tracker.
// Both calls are best effort; errors are logged and otherwise ignored.
type Capturer interface {
	Capture(pointerID int) error
	Release(pointerID int) error
}

// Options configures a Tracker.
type Options struct {
	Threshold int
	DragSlop  int
	OnClose   func()
	Capturer  Capturer
}

// Session is the state of one press-to-release interaction.
type Session struct {
	PointerID      int
	StartY         int
	HasStart       bool
	Dragging       bool
	TriggeredClose bool
}

// Tracker turns pointer events into a single close decision per drag.
type Tracker struct {
	opts    Options
	session Session
	log     *logger.Logger
}

// NewTracker applies defaults for zero-valued options.
func NewTracker(opts Options, log *logger.Logger) *Tracker {
	if opts.Threshold <= 0 {
		opts.Threshold = DefaultThreshold
	}
	if opts.DragSlop <= 0 {
		opts.DragSlop = DefaultDragSlop
	}
	return &Tracker{opts: opts, log: log.Component("gesture")}
}

// SetThreshold changes the close distance for subsequent moves.
func (t *Tracker) SetThreshold(rows int) {
	if rows > 0 {
		t.opts.Threshold = rows
	}
}

// Threshold returns the active close distance.
func (t *Tracker) Threshold() int {
	return t.opts.Threshold
}

// Session returns a copy of the current session.
func (t *Tracker) Session() Session {
	return t.session
}

// Active reports whether a press is in progress.
func (t *Tracker) Active() bool {
	return t.session.HasStart
}

// PointerDown starts a new session, discarding anything left by the last one.
func (t *Tracker) PointerDown(p Point) {
	t.session = Session{PointerID: p.ID, StartY: p.Y, HasStart: true}
}

// PointerMove updates the session. Moves without a press, or from another
// pointer, are ignored.
func (t *Tracker) PointerMove(p Point) {
	s := &t.session
	if !s.HasStart || p.ID != s.PointerID {
		return
	}

	deltaY := p.Y - s.StartY
	if abs(deltaY) > t.opts.DragSlop && !s.Dragging {
		s.Dragging = true
		if t.opts.Capturer != nil {
			if err := t.opts.Capturer.Capture(s.PointerID); err != nil {
				t.log.Debugw("pointer capture refused", map[string]any{"pointer": s.PointerID, "error": err.Error()})
			}
		}
	}

	if deltaY > t.opts.Threshold && !s.TriggeredClose {
		s.TriggeredClose = true
		if t.opts.OnClose != nil {
			t.opts.OnClose()
		}
	}
}

// PointerUp ends the press. TriggeredClose survives until the next
// PointerDown.
func (t *Tracker) PointerUp() {
	s := &t.session
	if s.Dragging && t.opts.Capturer != nil {
		if err := t.opts.Capturer.Release(s.PointerID); err != nil {
			t.log.Debugw("pointer release refused", map[string]any{"pointer": s.PointerID, "error": err.Error()})
		}
	}
	s.HasStart = false
	s.StartY = 0
	s.Dragging = false
}

// Cancel drops the session without firing callbacks, releasing capture if held.
func (t *Tracker) Cancel() {
	if t.session.Dragging && t.opts.Capturer != nil {
		if err := t.opts.Capturer.Release(t.session.PointerID); err != nil {
			t.log.Debugw("pointer release refused", map[string]any{"pointer": t.session.PointerID, "error": err.Error()})
		}
	}
	t.session = Session{}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
