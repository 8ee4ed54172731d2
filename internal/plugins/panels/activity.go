package panels

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"

	"github.com/alexisbeaulieu97/slotdeck/internal/plugin"
	"github.com/alexisbeaulieu97/slotdeck/internal/slot"
	"github.com/alexisbeaulieu97/slotdeck/internal/tui/styles"
)

type activityPlugin struct {
	frames []string
}

// NewActivity creates the activity panel: a progress line per task in the
// "tasks" parameter, prefixed with a spinner frame chosen by "tick".
func NewActivity() plugin.Plugin {
	return &activityPlugin{frames: spinner.Dot.Frames}
}

var _ plugin.Plugin = (*activityPlugin)(nil)

func (p *activityPlugin) Metadata() plugin.Metadata {
	return plugin.Metadata{
		Name:        "activity",
		Version:     "1.0.0",
		Description: "Background task activity.",
		Slots:       []slot.Name{slot.MobileBottom, slot.Sidebar},
	}
}

func (p *activityPlugin) Render(params slot.Params, width, height int) string {
	tasks := listParam(params, "tasks")
	title := styles.Title.Render(fmt.Sprintf("Activity (%d)", len(tasks)))
	if len(tasks) == 0 {
		return title + "\n" + styles.Empty.Render("idle")
	}

	tick := params.Int("tick", 0) % len(p.frames)
	if tick < 0 {
		tick += len(p.frames)
	}
	frame := p.frames[tick]
	lines := []string{title}
	for _, task := range tasks {
		if height > 0 && len(lines) >= height {
			break
		}
		lines = append(lines, truncate(frame+" "+task, width))
	}
	return strings.Join(lines, "\n")
}
