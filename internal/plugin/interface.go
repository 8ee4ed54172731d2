package plugin

import (
	"github.com/alexisbeaulieu97/slotdeck/internal/slot"
)

// Initializer allows a plugin to receive a reference to the registry during
// startup. Plugins that do not need it simply don't implement it; the
// registry detects it via type assertion.
type Initializer interface {
	Init(registry *Registry) error
}

// Plugin is the contract every panel plugin satisfies: it describes itself
// and renders into whatever box its slot gives it.
type Plugin interface {
	// Metadata returns the plugin's identity and the slots it may occupy.
	Metadata() Metadata

	slot.Renderable
}
