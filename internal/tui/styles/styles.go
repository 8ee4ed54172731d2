package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/slotdeck/internal/drawer"
)

var (
	// Colors
	PrimaryColor = lipgloss.Color("99")  // Purple
	AccentColor  = lipgloss.Color("212") // Pink
	MutedColor   = lipgloss.Color("245") // Gray
	ErrorColor   = lipgloss.Color("196") // Red
	TextColor    = lipgloss.Color("252")

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(PrimaryColor)

	Muted = lipgloss.NewStyle().
		Foreground(MutedColor)

	Sidebar = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderRight(true).
		BorderForeground(MutedColor).
		PaddingRight(1)

	SearchBar = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(MutedColor)

	Trigger = lipgloss.NewStyle().
		Foreground(AccentColor).
		Bold(true).
		PaddingRight(2)

	MainTrigger = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	Main = lipgloss.NewStyle().
		Padding(1, 2).
		Foreground(TextColor)

	Footer = lipgloss.NewStyle().
		Foreground(MutedColor).
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(MutedColor)

	ErrorBanner = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	Empty = lipgloss.NewStyle().
		Foreground(MutedColor).
		Italic(true)
)

// Drawer returns the drawer styles in the shell palette.
func Drawer() drawer.Style {
	return drawer.Style{
		Handle: lipgloss.NewStyle().Foreground(MutedColor).Align(lipgloss.Center),
		Panel: lipgloss.NewStyle().
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(MutedColor),
		Title: Title,
	}
}
