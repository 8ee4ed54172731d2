package panels

import (
	"os"
	"sort"
	"strings"

	"github.com/alexisbeaulieu97/slotdeck/internal/plugin"
	"github.com/alexisbeaulieu97/slotdeck/internal/slot"
	"github.com/alexisbeaulieu97/slotdeck/internal/tui/styles"
)

type filesPlugin struct{}

// NewFiles creates the file browser panel listing the "dir" parameter.
func NewFiles() plugin.Plugin {
	return &filesPlugin{}
}

var _ plugin.Plugin = (*filesPlugin)(nil)

func (p *filesPlugin) Metadata() plugin.Metadata {
	return plugin.Metadata{
		Name:        "files",
		Version:     "1.0.0",
		Description: "Lists the entries of a directory.",
		Slots:       []slot.Name{slot.Sidebar},
	}
}

func (p *filesPlugin) Render(params slot.Params, width, height int) string {
	dir := params.String("dir", ".")
	lines := []string{styles.Title.Render(truncate(dir, width))}

	entries, err := os.ReadDir(dir)
	if err != nil {
		lines = append(lines, styles.ErrorBanner.Render(truncate(err.Error(), width)))
		return strings.Join(lines, "\n")
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if strings.HasPrefix(name, ".") && !params.Bool("hidden", false) {
			continue
		}
		if e.IsDir() {
			name += "/"
		}
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if height > 0 && len(lines) >= height {
			break
		}
		lines = append(lines, truncate(name, width))
	}
	return strings.Join(lines, "\n")
}
