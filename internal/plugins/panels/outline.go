package panels

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/slotdeck/internal/plugin"
	"github.com/alexisbeaulieu97/slotdeck/internal/slot"
	"github.com/alexisbeaulieu97/slotdeck/internal/tui/styles"
)

type outlinePlugin struct{}

// NewOutline creates the outline panel: a titled bullet list taken from the
// "items" parameter (a list or a comma separated string).
func NewOutline() plugin.Plugin {
	return &outlinePlugin{}
}

var _ plugin.Plugin = (*outlinePlugin)(nil)

func (p *outlinePlugin) Metadata() plugin.Metadata {
	return plugin.Metadata{
		Name:        "outline",
		Version:     "1.0.0",
		Description: "Bullet outline of the current document.",
		Slots:       []slot.Name{slot.Sidebar, slot.MobileBottom},
	}
}

func (p *outlinePlugin) Render(params slot.Params, width, height int) string {
	title := styles.Title.Render(params.String("title", "Outline"))
	items := listParam(params, "items")
	if len(items) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, title, styles.Empty.Render("(empty)"))
	}

	lines := []string{title}
	for _, item := range items {
		if height > 0 && len(lines) >= height {
			break
		}
		lines = append(lines, truncate("• "+item, width))
	}
	return strings.Join(lines, "\n")
}

func listParam(params slot.Params, key string) []string {
	switch v := params[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, slot.Params{"v": item}.String("v", ""))
		}
		return out
	case string:
		var out []string
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
		return out
	default:
		return nil
	}
}

func truncate(s string, width int) string {
	if width <= 0 || lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
