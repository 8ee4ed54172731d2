package panels

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/slotdeck/internal/plugin"
	"github.com/alexisbeaulieu97/slotdeck/internal/slot"
	"github.com/alexisbeaulieu97/slotdeck/internal/tui/styles"
)

type notesPlugin struct{}

// NewNotes creates a free-text panel that word-wraps its "text" parameter.
func NewNotes() plugin.Plugin {
	return &notesPlugin{}
}

var _ plugin.Plugin = (*notesPlugin)(nil)

func (p *notesPlugin) Metadata() plugin.Metadata {
	return plugin.Metadata{
		Name:        "notes",
		Version:     "1.0.0",
		Description: "Scratch notes.",
		Slots:       []slot.Name{slot.MobileBottom, slot.Sidebar},
	}
}

func (p *notesPlugin) Render(params slot.Params, width, height int) string {
	body := lipgloss.NewStyle()
	if width > 0 {
		body = body.Width(width)
	}
	if height > 1 {
		body = body.MaxHeight(height - 1)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		styles.Title.Render(params.String("title", "Notes")),
		body.Render(params.String("text", "")),
	)
}
