package shell

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/slotdeck/internal/drawer"
	"github.com/alexisbeaulieu97/slotdeck/internal/gesture"
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.viewport.Measure(msg.Width, msg.Height) {
			m.log.WithFields(map[string]any{"variant": m.viewport.Variant().String(), "width": msg.Width}).Debug("layout switched")
			// A drag cannot survive the drawer being swapped out from under it.
			m.tracker.Cancel()
			m.capture.Reset()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case SlotsChangedMsg:
		m.reconcile()
		return m, nil

	case slotsSignalMsg:
		m.reconcile()
		return m, waitForSlots(m.notify)

	case ConfigReloadedMsg:
		m.applyConfig(msg.Config)
		return m, nil

	case ErrorMsg:
		if msg.Err != nil {
			m.errMsg = msg.Err.Error()
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit
	case "b":
		m.sidebar.Toggle()
	case "m":
		m.drawer.ToggleMinimized()
	case "esc":
		m.errMsg = ""
	}
	return m, nil
}

// handleMouse maps terminal mouse events onto the drawer. Only the mobile
// tree has a drawer; on desktop the mouse is ignored.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	if !m.viewport.Classify() {
		return
	}

	pointer := gesture.Point{ID: int(msg.Button), X: msg.X, Y: msg.Y}
	inDrawer := m.drawer.State() != drawer.Closed && msg.Y >= m.drawerTop()

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !inDrawer {
			return
		}
		if m.drawer.State() == drawer.Minimized {
			m.drawer.Maximize()
			return
		}
		m.tracker.PointerDown(pointer)

	case tea.MouseActionMotion:
		if !m.tracker.Active() {
			return
		}
		if inDrawer || m.capture.Holds(pointer.ID) {
			m.tracker.PointerMove(pointer)
		}

	case tea.MouseActionRelease:
		// The shell owns the whole screen, so a release anywhere ends the press.
		m.tracker.PointerUp()
	}
}
