package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "SLOTDECK"

// rootSettings resolves persistent flags through viper so every flag can
// also come from a SLOTDECK_* environment variable.
type rootSettings struct {
	v *viper.Viper
}

func (s *rootSettings) configPath() string { return strings.TrimSpace(s.v.GetString("config")) }
func (s *rootSettings) verbose() bool      { return s.v.GetBool("verbose") }
func (s *rootSettings) logFile() string    { return strings.TrimSpace(s.v.GetString("log-file")) }
func (s *rootSettings) watch() bool        { return s.v.GetBool("watch") }

func newSettings() *rootSettings {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return &rootSettings{v: v}
}

func newRootCmd() *cobra.Command {
	cmd, _ := newRootCmdWithSettings()
	return cmd
}

func newRootCmdWithSettings() (*cobra.Command, *rootSettings) {
	settings := newSettings()

	cmd := &cobra.Command{
		Use:           "slotdeck",
		Short:         "slotdeck lays out plugin panels in a responsive terminal shell",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd, settings)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringP("config", "c", "", "Path to layout.yaml")
	flags.BoolP("verbose", "v", false, "Enable verbose logging")
	flags.String("log-file", "", "Write logs to this file while the shell is running")
	flags.Bool("watch", false, "Reload the layout file when it changes")
	_ = settings.v.BindPFlags(flags)

	cmd.AddCommand(newPluginsCmd(settings))
	cmd.AddCommand(newValidateCmd(settings))
	cmd.AddCommand(newVersionCmd())

	return cmd, settings
}
