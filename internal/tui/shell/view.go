package shell

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/slotdeck/internal/slot"
	"github.com/alexisbeaulieu97/slotdeck/internal/tui/styles"
	"github.com/alexisbeaulieu97/slotdeck/internal/viewport"
)

const (
	hints       = "b sidebar • m drawer • q quit"
	searchRows  = 1
	triggerRows = 1
)

// View renders the current model state
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.viewport.Variant() == viewport.Mobile {
		return m.renderMobile()
	}
	return m.renderDesktop()
}

func (m Model) renderDesktop() string {
	var sidebarView string
	mainWidth := m.width
	if m.sidebar.IsVisible() {
		sidebarWidth := m.cfg.Sidebar.Width
		if sidebarWidth > m.width/2 {
			sidebarWidth = m.width / 2
		}
		sidebarView = m.renderSidebar(sidebarWidth)
		mainWidth -= lipgloss.Width(sidebarView)
	}
	if mainWidth < 1 {
		mainWidth = 1
	}

	column := lipgloss.JoinVertical(lipgloss.Left,
		m.renderSearchBar(mainWidth),
		m.renderMain(mainWidth),
	)
	body := column
	if sidebarView != "" {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebarView, column)
	}

	sections := []string{body}
	if m.errMsg != "" {
		sections = append(sections, styles.ErrorBanner.Render("Error: "+m.errMsg))
	}
	sections = append(sections, m.renderFooter(m.width))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderMobile stacks the page and anchors the drawer to the last rows of
// the terminal so mouse rows can be mapped back onto it.
func (m Model) renderMobile() string {
	drawerView := m.drawerView()
	top := lipgloss.JoinVertical(lipgloss.Left,
		m.renderSearchBar(m.width),
		m.renderMain(m.width),
		m.renderFooter(m.width),
	)
	if m.errMsg != "" {
		top = lipgloss.JoinVertical(lipgloss.Left, top, styles.ErrorBanner.Render("Error: "+m.errMsg))
	}
	if drawerView == "" {
		return top
	}

	room := m.height - lipgloss.Height(drawerView)
	lines := strings.Split(top, "\n")
	if room < 0 {
		room = 0
	}
	if len(lines) > room {
		lines = lines[:room]
	}
	for len(lines) < room {
		lines = append(lines, "")
	}
	if len(lines) == 0 {
		return drawerView
	}
	return strings.Join(lines, "\n") + "\n" + drawerView
}

func (m Model) renderSidebar(width int) string {
	descriptors := m.assignment[slot.Sidebar]
	inner := width - styles.Sidebar.GetHorizontalFrameSize()
	if inner < 1 {
		inner = 1
	}
	height := m.height - searchRows - triggerRows - 2
	if height < 1 {
		height = 1
	}

	var content string
	if len(descriptors) == 0 {
		content = styles.Empty.Render("No sidebar panel")
	} else {
		content = renderEach(descriptors, inner, height)
	}
	return styles.Sidebar.Width(inner).Height(height).Render(content)
}

func (m Model) renderSearchBar(width int) string {
	descriptors := m.assignment[slot.SearchBar]
	if len(descriptors) == 0 {
		return styles.SearchBar.Width(width).Render(styles.Title.Render("slotdeck"))
	}
	return styles.SearchBar.Width(width).Render(renderEach(descriptors, width, searchRows))
}

func (m Model) renderMain(width int) string {
	inner := width - styles.Main.GetHorizontalFrameSize()
	if inner < 1 {
		inner = 1
	}
	descriptors := m.assignment[slot.MainTrigger]
	if len(descriptors) == 0 {
		return styles.Main.Render(styles.Empty.Render("Nothing here yet"))
	}
	parts := make([]string, 0, len(descriptors))
	for _, d := range descriptors {
		parts = append(parts, styles.MainTrigger.Render(d.Render(inner, triggerRows)))
	}
	return styles.Main.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m Model) renderFooter(width int) string {
	descriptors := m.assignment[slot.Trigger]
	parts := make([]string, 0, len(descriptors)+1)
	for _, d := range descriptors {
		parts = append(parts, styles.Trigger.Render(d.Render(width, triggerRows)))
	}
	parts = append(parts, styles.Muted.Render(hints))
	return styles.Footer.Width(width).Render(lipgloss.JoinHorizontal(lipgloss.Top, parts...))
}

// drawerView renders the drawer in the shell palette. Empty when closed.
func (m Model) drawerView() string {
	return m.drawer.View(m.width, m.cfg.Drawer.HandleHeight, m.cfg.Drawer.BodyHeight, styles.Drawer())
}

// drawerTop is the first terminal row the drawer occupies.
func (m Model) drawerTop() int {
	view := m.drawerView()
	if view == "" {
		return m.height
	}
	return m.height - lipgloss.Height(view)
}

// renderEach renders every descriptor on its own so one panel cannot
// disturb another's layout.
func renderEach(descriptors []slot.Descriptor, width, height int) string {
	parts := make([]string, 0, len(descriptors))
	for _, d := range descriptors {
		parts = append(parts, d.Render(width, height))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
