package main

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/slotdeck/internal/config"
	"github.com/alexisbeaulieu97/slotdeck/internal/logger"
	"github.com/alexisbeaulieu97/slotdeck/internal/plugin"
	"github.com/alexisbeaulieu97/slotdeck/internal/plugins/panels"
	"github.com/alexisbeaulieu97/slotdeck/internal/slot"
	"github.com/alexisbeaulieu97/slotdeck/internal/tui/shell"
	"github.com/alexisbeaulieu97/slotdeck/internal/visibility"
)

func runShell(cmd *cobra.Command, settings *rootSettings) error {
	// The shell owns the terminal, so logs only go to a file when asked.
	log, closeLog, err := openLogger(settings, nil)
	if err != nil {
		return newCommandError("start", "opening log file", err, "Check --log-file points to a writable path.")
	}
	defer closeLog()

	cfg, err := loadConfig(settings.configPath())
	if err != nil {
		return newCommandError("start", "loading layout", err, "Run 'slotdeck validate <file>' for details.")
	}

	reg, err := newRegistry(cfg, log)
	if err != nil {
		return newCommandError("start", "activating plugins", err, "Run 'slotdeck plugins' to see which slots each plugin supports.")
	}

	scope := visibility.NewScope(cfg.Sidebar.SidebarVisible())
	defer scope.Close()

	model, err := shell.New(shell.Options{Config: cfg, Source: reg, Scope: scope, Logger: log})
	if err != nil {
		return newCommandError("start", "building shell", err, "")
	}
	reg.Subscribe(model.Notify)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	program := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if settings.watch() && settings.configPath() != "" {
		go func() {
			err := config.Watch(ctx, settings.configPath(), log, func(next *config.Config) {
				program.Send(shell.ConfigReloadedMsg{Config: next})
			})
			if err != nil {
				program.Send(shell.ErrorMsg{Err: err})
			}
		}()
	}

	log.WithFields(map[string]any{"plugins": len(reg.List())}).Info("shell starting")
	if _, err := program.Run(); err != nil {
		log.Error(err, "shell exited with error")
		return fmt.Errorf("failed to run shell: %w", err)
	}
	log.Info("shell closed")
	return nil
}

// openLogger builds the command logger. Without --log-file entries go to
// fallback, and a nil fallback discards them.
func openLogger(settings *rootSettings, fallback io.Writer) (*logger.Logger, func(), error) {
	level := "info"
	if settings.verbose() {
		level = "debug"
	}

	if path := settings.logFile(); path != "" {
		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, func() {}, err
		}
		log, err := logger.New(logger.Options{Level: level, Writer: file})
		if err != nil {
			_ = file.Close()
			return nil, func() {}, err
		}
		return log, func() { _ = file.Close() }, nil
	}

	if fallback == nil {
		return logger.Nop(), func() {}, nil
	}
	log, err := logger.New(logger.Options{Level: level, Writer: fallback, HumanReadable: isTerminal(fallback)})
	if err != nil {
		return nil, func() {}, err
	}
	return log, func() {}, nil
}

func isTerminal(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// newRegistry registers the bundled panels and places them as the layout
// asks, or in the stock arrangement when the layout lists no plugins.
func newRegistry(cfg *config.Config, log *logger.Logger) (*plugin.Registry, error) {
	reg := plugin.NewRegistry(plugin.DefaultConfig(), log)
	if err := panels.RegisterAll(reg); err != nil {
		return nil, err
	}

	batch := activations(cfg)
	if len(batch) == 0 {
		batch = panels.DefaultLayout()
	}
	if _, err := reg.ApplyActivations(batch); err != nil {
		return nil, err
	}
	return reg, nil
}

func activations(cfg *config.Config) []plugin.Activation {
	batch := make([]plugin.Activation, 0, len(cfg.Plugins))
	for _, p := range cfg.Plugins {
		batch = append(batch, plugin.Activation{
			Name:   p.Name,
			Slot:   slot.Name(p.Slot),
			Params: slot.Params(p.Params),
		})
	}
	return batch
}
