package drawer

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const gripGlyph = "━"

// Style holds the lipgloss styles the drawer draws with.
type Style struct {
	Handle lipgloss.Style
	Panel  lipgloss.Style
	Title  lipgloss.Style
}

// DefaultStyle is used when the caller has no theme of its own.
func DefaultStyle() Style {
	return Style{
		Handle: lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Align(lipgloss.Center),
		Panel:  lipgloss.NewStyle().Padding(0, 1),
		Title:  lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true),
	}
}

// Block is one descriptor's rendered output, keyed by its id.
type Block struct {
	ID   string
	Body string
}

// Blocks renders each hosted descriptor in isolation. A descriptor that
// renders nothing still gets an (empty) block so ids stay stable.
func (m *Machine) Blocks(width, height int) []Block {
	if m.state != Open {
		return nil
	}
	blocks := make([]Block, 0, len(m.content))
	for _, d := range m.content {
		blocks = append(blocks, Block{ID: d.ID, Body: d.Render(width, height)})
	}
	return blocks
}

// Handle renders the fixed-height drag strip.
func Handle(width, height int, st Style) string {
	if height < 1 {
		height = 1
	}
	gripWidth := width / 6
	if gripWidth < 3 {
		gripWidth = 3
	}
	lines := make([]string, height)
	lines[0] = strings.Repeat(gripGlyph, gripWidth)
	return st.Handle.Width(width).Height(height).Render(strings.Join(lines, "\n"))
}

// View renders the drawer for the current state: nothing when closed, only
// the handle when minimized, handle plus every panel block when open.
func (m *Machine) View(width, handleHeight, bodyHeight int, st Style) string {
	switch m.state {
	case Minimized:
		return Handle(width, handleHeight, st)
	case Open:
		parts := []string{Handle(width, handleHeight, st)}
		inner := width - st.Panel.GetHorizontalFrameSize()
		if inner < 1 {
			inner = 1
		}
		for _, b := range m.Blocks(inner, bodyHeight) {
			// Each block is boxed to the panel width so one plugin's output
			// cannot spill into its neighbours.
			parts = append(parts, st.Panel.Width(width).MaxWidth(width).Render(b.Body))
		}
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	default:
		return ""
	}
}
