package shell

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/slotdeck/internal/config"
)

// SlotsChangedMsg asks the shell to pull and reconcile every slot.
type SlotsChangedMsg struct{}

// ConfigReloadedMsg carries a freshly validated layout configuration.
type ConfigReloadedMsg struct {
	Config *config.Config
}

// ErrorMsg surfaces a non-fatal problem in the footer.
type ErrorMsg struct {
	Err error
}

// slotsSignalMsg is produced by the registry listener; handling it re-arms
// the listener.
type slotsSignalMsg struct{}

// waitForSlots blocks until the registry signals a change.
func waitForSlots(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return slotsSignalMsg{}
	}
}
