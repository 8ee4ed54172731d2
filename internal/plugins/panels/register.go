package panels

import (
	"fmt"

	"github.com/alexisbeaulieu97/slotdeck/internal/plugin"
	"github.com/alexisbeaulieu97/slotdeck/internal/slot"
)

// Builtins returns a fresh instance of every bundled panel plugin.
func Builtins() []plugin.Plugin {
	return []plugin.Plugin{
		NewOutline(),
		NewFiles(),
		NewSearch(),
		NewActivity(),
		NewNotes(),
		NewMenu(),
		NewLauncher(),
	}
}

// RegisterAll registers the bundled plugins and runs their initializers.
func RegisterAll(registry *plugin.Registry) error {
	for _, p := range Builtins() {
		if err := registry.Register(p); err != nil {
			return fmt.Errorf("register %s: %w", p.Metadata().Name, err)
		}
	}
	return registry.InitializePlugins()
}

// DefaultLayout places one bundled panel in every slot. It is used when a
// layout file names no plugins.
func DefaultLayout() []plugin.Activation {
	return []plugin.Activation{
		{Name: "search", Slot: slot.SearchBar},
		{Name: "outline", Slot: slot.Sidebar, Params: slot.Params{"title": "Outline", "items": []any{"Overview", "Panels", "Drawer"}}},
		{Name: "activity", Slot: slot.MobileBottom},
		{Name: "notes", Slot: slot.MobileBottom, Params: slot.Params{"text": "Drag the handle down to tuck this drawer away."}},
		{Name: "menu", Slot: slot.Trigger, Params: slot.Params{"label": "Menu"}},
		{Name: "launcher", Slot: slot.MainTrigger},
	}
}
