package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tomatobell/pomodoro/internal/config"
)

func newConfigCmd(opts *rootOptions) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect pomodoro configuration",
		Long: `Inspect pomodoro configuration.

Settings are merged from defaults, the user config file, the file given
with --config, and POMODORO_* environment variables, in that order.`,
	}

	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration as YAML",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigShow(cmd, opts)
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show the user config file path",
		Args:  noArgs,
		RunE:  runConfigPath,
	})

	return configCmd
}

func runConfigShow(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	out, err := cfg.ToYAML()
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	path, err := config.UserConfigPath()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}
