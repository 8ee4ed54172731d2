package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/slotdeck/internal/plugin"
	"github.com/alexisbeaulieu97/slotdeck/internal/plugins/panels"
)

type pluginsOptions struct {
	jsonOutput bool
	active     bool
}

func newPluginsCmd(settings *rootSettings) *cobra.Command {
	opts := &pluginsOptions{}

	cmd := &cobra.Command{
		Use:   "plugins",
		Short: "List registered plugins and the slots they can fill",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlugins(cmd, settings, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")
	cmd.Flags().BoolVar(&opts.active, "active", false, "Show the panels the layout places in each slot")

	return cmd
}

type pluginRow struct {
	Name        string   `json:"name"`
	Version     string   `json:"version"`
	Slots       []string `json:"slots"`
	Description string   `json:"description"`
	Active      []string `json:"active,omitempty"`
}

func runPlugins(cmd *cobra.Command, settings *rootSettings, opts *pluginsOptions) error {
	log, closeLog, err := openLogger(settings, os.Stderr)
	if err != nil {
		return newCommandError("list plugins", "opening log file", err, "Check --log-file points to a writable path.")
	}
	defer closeLog()

	var rows []pluginRow
	if opts.active {
		cfg, err := loadConfig(settings.configPath())
		if err != nil {
			return newCommandError("list plugins", "loading layout", err, "Run 'slotdeck validate <file>' for details.")
		}
		reg, err := newRegistry(cfg, log)
		if err != nil {
			return newCommandError("list plugins", "activating plugins", err, "")
		}
		rows = collectRows(reg, true)
	} else {
		reg := plugin.NewRegistry(plugin.DefaultConfig(), log)
		if err := panels.RegisterAll(reg); err != nil {
			return newCommandError("list plugins", "registering plugins", err, "")
		}
		rows = collectRows(reg, false)
	}

	if opts.jsonOutput {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(rows)
	}
	return renderPluginsTable(cmd, rows, opts.active)
}

func collectRows(reg *plugin.Registry, withActive bool) []pluginRow {
	var assignment map[string][]string
	if withActive {
		assignment = map[string][]string{}
		for name, descriptors := range reg.Assignment() {
			for _, d := range descriptors {
				assignment[d.Plugin] = append(assignment[d.Plugin], string(name))
			}
		}
		for _, slots := range assignment {
			sort.Strings(slots)
		}
	}

	names := reg.List()
	rows := make([]pluginRow, 0, len(names))
	for _, name := range names {
		meta, ok := reg.Metadata(name)
		if !ok {
			continue
		}
		slots := make([]string, 0, len(meta.Slots))
		for _, s := range meta.Slots {
			slots = append(slots, s.String())
		}
		rows = append(rows, pluginRow{
			Name:        meta.Name,
			Version:     meta.Version,
			Slots:       slots,
			Description: meta.Description,
			Active:      assignment[meta.Name],
		})
	}
	return rows
}

func renderPluginsTable(cmd *cobra.Command, rows []pluginRow, withActive bool) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	if withActive {
		fmt.Fprintln(writer, "NAME\tVERSION\tSLOTS\tACTIVE IN\tDESCRIPTION")
	} else {
		fmt.Fprintln(writer, "NAME\tVERSION\tSLOTS\tDESCRIPTION")
	}

	for _, row := range rows {
		if withActive {
			fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\n", row.Name, row.Version, strings.Join(row.Slots, ","), valueOrFallback(strings.Join(row.Active, ","), "-"), row.Description)
			continue
		}
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\n", row.Name, row.Version, strings.Join(row.Slots, ","), row.Description)
	}

	return writer.Flush()
}

func valueOrFallback(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
