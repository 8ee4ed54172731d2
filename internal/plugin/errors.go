package plugin

import (
	"fmt"
)

// ErrPluginNotFound is returned when the requested plugin is not registered.
type ErrPluginNotFound struct {
	Name string
}

func (e ErrPluginNotFound) Error() string {
	return fmt.Sprintf("plugin '%s' not found in registry\nHint: ensure the plugin is registered before activation", e.Name)
}

// ErrSlotNotSupported is returned when a plugin is activated in a slot it
// did not declare.
type ErrSlotNotSupported struct {
	Plugin string
	Slot   string
}

func (e ErrSlotNotSupported) Error() string {
	return fmt.Sprintf(
		"plugin '%s' cannot be placed in slot '%s'\nHint: add the slot to Metadata.Slots or pick a declared slot",
		e.Plugin,
		e.Slot,
	)
}

// ErrDuplicatePlugin is returned when a name is registered twice.
type ErrDuplicatePlugin struct {
	Name string
}

func (e ErrDuplicatePlugin) Error() string {
	return fmt.Sprintf("plugin '%s' already registered", e.Name)
}

// ErrComponentNotFound is returned when an id does not match any active panel.
type ErrComponentNotFound struct {
	ID string
}

func (e ErrComponentNotFound) Error() string {
	return fmt.Sprintf("no active panel with id '%s'", e.ID)
}
