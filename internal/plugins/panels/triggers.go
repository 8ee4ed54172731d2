package panels

import (
	"fmt"

	"github.com/alexisbeaulieu97/slotdeck/internal/plugin"
	"github.com/alexisbeaulieu97/slotdeck/internal/slot"
	"github.com/alexisbeaulieu97/slotdeck/internal/tui/styles"
)

type menuPlugin struct{}

// NewMenu creates a small trigger button labelled by the "label" parameter.
func NewMenu() plugin.Plugin {
	return &menuPlugin{}
}

var _ plugin.Plugin = (*menuPlugin)(nil)

func (p *menuPlugin) Metadata() plugin.Metadata {
	return plugin.Metadata{
		Name:        "menu",
		Version:     "1.0.0",
		Description: "Secondary action trigger.",
		Slots:       []slot.Name{slot.Trigger},
	}
}

func (p *menuPlugin) Render(params slot.Params, _, _ int) string {
	return styles.Trigger.Render(fmt.Sprintf("[%s]", params.String("label", "≡ Menu")))
}

type launcherPlugin struct {
	registry *plugin.Registry
}

// NewLauncher creates the main trigger. It reports how many plugins are
// available, which it learns from the registry at init.
func NewLauncher() plugin.Plugin {
	return &launcherPlugin{}
}

var (
	_ plugin.Plugin      = (*launcherPlugin)(nil)
	_ plugin.Initializer = (*launcherPlugin)(nil)
)

func (p *launcherPlugin) Metadata() plugin.Metadata {
	return plugin.Metadata{
		Name:        "launcher",
		Version:     "1.0.0",
		Description: "Primary trigger that opens the plugin picker.",
		Slots:       []slot.Name{slot.MainTrigger},
	}
}

func (p *launcherPlugin) Init(registry *plugin.Registry) error {
	p.registry = registry
	return nil
}

func (p *launcherPlugin) Render(params slot.Params, _, _ int) string {
	label := params.String("label", "+ Add panel")
	if p.registry != nil {
		label = fmt.Sprintf("%s (%d available)", label, len(p.registry.List()))
	}
	return styles.MainTrigger.Render("[" + label + "]")
}
