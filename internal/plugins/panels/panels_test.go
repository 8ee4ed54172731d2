package panels

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/slotdeck/internal/plugin"
	"github.com/alexisbeaulieu97/slotdeck/internal/slot"
)

func TestBuiltinsHaveValidMetadata(t *testing.T) {
	seen := map[string]bool{}
	covered := map[slot.Name]bool{}
	for _, p := range Builtins() {
		meta := p.Metadata()
		require.NoError(t, meta.Validate(), meta.Name)
		require.False(t, seen[meta.Name], "duplicate %s", meta.Name)
		seen[meta.Name] = true
		for _, s := range meta.Slots {
			covered[s] = true
		}
	}
	for _, s := range slot.All() {
		assert.True(t, covered[s], "no builtin serves %s", s)
	}
}

func TestRegisterAll(t *testing.T) {
	reg := plugin.NewRegistry(&plugin.RegistryConfig{ActivationPolicy: plugin.PolicyStrict}, nil)
	require.NoError(t, RegisterAll(reg))
	require.Len(t, reg.List(), len(Builtins()))

	// Registering twice collides on names.
	require.Error(t, RegisterAll(reg))
}

func TestLauncherCountsRegisteredPlugins(t *testing.T) {
	reg := plugin.NewRegistry(&plugin.RegistryConfig{ActivationPolicy: plugin.PolicyStrict}, nil)
	require.NoError(t, RegisterAll(reg))

	p, err := reg.Get("launcher")
	require.NoError(t, err)
	assert.Contains(t, p.Render(nil, 40, 1), "(7 available)")

	assert.NotContains(t, NewLauncher().Render(nil, 40, 1), "available")
}

func TestOutlineRendersItems(t *testing.T) {
	out := NewOutline().Render(slot.Params{"title": "Doc", "items": []any{"Intro", "Usage", 3}}, 20, 10)
	assert.Contains(t, out, "Doc")
	assert.Contains(t, out, "• Intro")
	assert.Contains(t, out, "• 3")

	out = NewOutline().Render(slot.Params{"items": "a, b,,c"}, 20, 2)
	assert.Equal(t, 2, lipgloss.Height(out), "height caps the list")

	assert.Contains(t, NewOutline().Render(nil, 20, 5), "(empty)")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcd…", truncate("abcdefgh", 5))
	assert.Equal(t, "anything", truncate("anything", 0))
}

func TestFilesListsDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".hidden"), nil, 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "a"), 0o755))

	out := NewFiles().Render(slot.Params{"dir": dir}, 80, 10)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "a/", lines[1])
	assert.Equal(t, "b.txt", lines[2])

	out = NewFiles().Render(slot.Params{"dir": dir, "hidden": true}, 80, 10)
	assert.Contains(t, out, ".hidden")

	out = NewFiles().Render(slot.Params{"dir": filepath.Join(dir, "missing")}, 80, 10)
	assert.Equal(t, 2, lipgloss.Height(out))
}

func TestSearchWidthCountsPromptCells(t *testing.T) {
	out := NewSearch().Render(slot.Params{"prompt": "🔍 ", "placeholder": "find"}, 20, 1)
	assert.Contains(t, out, "find")
	assert.LessOrEqual(t, lipgloss.Width(out), 20)
}

func TestSearchShowsQueryOrPlaceholder(t *testing.T) {
	assert.Contains(t, NewSearch().Render(slot.Params{"query": "needle"}, 40, 1), "needle")
	assert.Contains(t, NewSearch().Render(slot.Params{"placeholder": "Find files"}, 40, 1), "Find files")
}

func TestActivityRendersTasks(t *testing.T) {
	out := NewActivity().Render(slot.Params{"tasks": []string{"sync", "index"}, "tick": 1}, 40, 5)
	assert.Contains(t, out, "Activity (2)")
	assert.Contains(t, out, "sync")
	assert.Contains(t, out, "index")

	assert.Contains(t, NewActivity().Render(nil, 40, 5), "idle")
}

func TestNotesAndMenu(t *testing.T) {
	notes := NewNotes().Render(slot.Params{"text": "remember the milk"}, 30, 4)
	assert.Contains(t, notes, "Notes")
	assert.Contains(t, notes, "remember the milk")

	assert.Contains(t, NewMenu().Render(slot.Params{"label": "Tools"}, 10, 1), "[Tools]")
}

func TestDefaultLayoutActivatesEverySlot(t *testing.T) {
	reg := plugin.NewRegistry(&plugin.RegistryConfig{ActivationPolicy: plugin.PolicyStrict}, nil)
	require.NoError(t, RegisterAll(reg))

	ids, err := reg.ApplyActivations(DefaultLayout())
	require.NoError(t, err)
	assert.Len(t, ids, len(DefaultLayout()))

	for _, s := range slot.All() {
		assert.NotEmpty(t, reg.Components(s), "slot %s", s)
	}
}
