package drawer

import (
	"github.com/alexisbeaulieu97/slotdeck/internal/logger"
	"github.com/alexisbeaulieu97/slotdeck/internal/slot"
)

// State is the render state of the bottom drawer.
type State int

const (
	Closed State = iota
	Open
	Minimized
)

func (s State) String() string {
	switch s {
	case Open:
		return "open"
	case Minimized:
		return "minimized"
	default:
		return "closed"
	}
}

// TransitionFunc observes state changes.
type TransitionFunc func(from, to State)

// Machine owns the drawer state. Its methods are the only way to change it.
type Machine struct {
	state     State
	content   []slot.Descriptor
	observers []TransitionFunc
	onClose   func()
	log       *logger.Logger
}

// New returns a closed drawer.
func New(log *logger.Logger) *Machine {
	return &Machine{state: Closed, log: log.Component("drawer")}
}

// State returns the current state.
func (m *Machine) State() State {
	return m.state
}

// Content returns the descriptors the drawer currently hosts.
func (m *Machine) Content() []slot.Descriptor {
	return m.content
}

// OnTransition registers an observer called after every state change.
func (m *Machine) OnTransition(fn TransitionFunc) {
	if fn != nil {
		m.observers = append(m.observers, fn)
	}
}

// OnClose registers a hook run whenever the drawer closes, used to discard
// any gesture in flight.
func (m *Machine) OnClose(fn func()) {
	m.onClose = fn
}

// SetContent applies a new reconciled list for the drawer slot. An empty
// list closes the drawer from any state; new content opens it from closed
// or minimized. Re-sending the ids already hosted is not new content and
// leaves a minimized drawer minimized.
func (m *Machine) SetContent(descriptors []slot.Descriptor) bool {
	unchanged := sameIDs(m.content, descriptors)
	m.content = descriptors
	if len(descriptors) == 0 {
		return m.transition(Closed)
	}
	if m.state == Open || (m.state == Minimized && unchanged) {
		return false
	}
	return m.transition(Open)
}

// GestureClose handles a drag-to-close gesture. The drawer is minimized,
// not closed, so the handle stays available.
func (m *Machine) GestureClose() bool {
	if m.state != Open {
		return false
	}
	return m.transition(Minimized)
}

// Minimize collapses an open drawer to its handle.
func (m *Machine) Minimize() bool {
	if m.state != Open {
		return false
	}
	return m.transition(Minimized)
}

// Maximize restores a minimized drawer.
func (m *Machine) Maximize() bool {
	if m.state != Minimized {
		return false
	}
	return m.transition(Open)
}

// ToggleMinimized flips between open and minimized; closed stays closed.
func (m *Machine) ToggleMinimized() bool {
	switch m.state {
	case Open:
		return m.Minimize()
	case Minimized:
		return m.Maximize()
	default:
		return false
	}
}

func (m *Machine) transition(to State) bool {
	from := m.state
	if from == to {
		return false
	}
	m.state = to
	m.log.Debugw("drawer transition", map[string]any{"from": from.String(), "to": to.String()})
	if to == Closed && m.onClose != nil {
		m.onClose()
	}
	for _, fn := range m.observers {
		fn(from, to)
	}
	return true
}

func sameIDs(a, b []slot.Descriptor) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID {
			return false
		}
	}
	return true
}
