package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/slotdeck/internal/config"
	"github.com/alexisbeaulieu97/slotdeck/internal/plugin"
	"github.com/alexisbeaulieu97/slotdeck/internal/plugins/panels"
	slotdeckerrors "github.com/alexisbeaulieu97/slotdeck/pkg/errors"
)

func newValidateCmd(settings *rootSettings) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a layout file without starting the shell",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, settings, args[0])
		},
	}
}

func runValidate(cmd *cobra.Command, settings *rootSettings, path string) error {
	log, closeLog, err := openLogger(settings, cmd.ErrOrStderr())
	if err != nil {
		return newCommandError("validate", "opening log file", err, "Check --log-file points to a writable path.")
	}
	defer closeLog()

	cfg, err := config.Load(path)
	if err != nil {
		return newCommandError("validate", path, err, suggestionFor(err))
	}

	// Activations are checked against a strict registry so the first bad
	// placement is reported instead of skipped.
	reg := plugin.NewRegistry(&plugin.RegistryConfig{ActivationPolicy: plugin.PolicyStrict}, log)
	if err := panels.RegisterAll(reg); err != nil {
		return newCommandError("validate", "registering plugins", err, "")
	}
	if _, err := reg.ApplyActivations(activations(cfg)); err != nil {
		return newCommandError("validate", path, err, "Run 'slotdeck plugins' to see which slots each plugin supports.")
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s is valid (version %s, %d plugin placement(s))\n", path, cfg.Version, len(cfg.Plugins))
	return nil
}

func suggestionFor(err error) string {
	var parseErr *slotdeckerrors.ParseError
	var validationErr *slotdeckerrors.ValidationError
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "Check that the file exists and is readable."
	case errors.As(err, &parseErr):
		return "Fix the YAML syntax near the reported line."
	case errors.As(err, &validationErr):
		return fmt.Sprintf("Correct the '%s' field.", validationErr.Field)
	default:
		return "Check that the file exists and is readable."
	}
}
