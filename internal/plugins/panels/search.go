package panels

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/slotdeck/internal/plugin"
	"github.com/alexisbeaulieu97/slotdeck/internal/slot"
	"github.com/alexisbeaulieu97/slotdeck/internal/tui/styles"
)

type searchPlugin struct{}

// NewSearch creates the search bar panel. It renders an unfocused text
// input showing the "query" parameter or the "placeholder".
func NewSearch() plugin.Plugin {
	return &searchPlugin{}
}

var _ plugin.Plugin = (*searchPlugin)(nil)

func (p *searchPlugin) Metadata() plugin.Metadata {
	return plugin.Metadata{
		Name:        "search",
		Version:     "1.0.0",
		Description: "Search prompt for the top bar.",
		Slots:       []slot.Name{slot.SearchBar},
	}
}

func (p *searchPlugin) Render(params slot.Params, width, _ int) string {
	ti := textinput.New()
	ti.Prompt = params.String("prompt", "/ ")
	ti.Placeholder = params.String("placeholder", "Search…")
	ti.PromptStyle = styles.Title
	ti.PlaceholderStyle = styles.Muted
	if w := width - lipgloss.Width(ti.Prompt) - 1; w > 0 {
		ti.Width = w
	}
	ti.SetValue(params.String("query", ""))
	return ti.View()
}
