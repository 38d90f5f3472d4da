// Package cli provides the Cobra-based pomodoro command line: the timer
// itself (terminal UI or plain console) plus version, config and
// notification utilities.
package cli

import (
	"context"

	"github.com/spf13/cobra"
)

// rootOptions holds the persistent and root-level flags.
type rootOptions struct {
	configPath string
	debug      bool
	logFile    string
	plain      bool
}

// NewRootCmd builds the pomodoro command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "pomodoro",
		Short: "Pomodoro phase timer",
		Long: `Pomodoro phase timer

Counts down a 25 minute work phase followed by a 5 minute break, and
announces every phase change with a desktop notification and sound.`,
		Example: `  # Full-screen timer
  pomodoro

  # Line-oriented console timer (type s, r, w or q and press enter)
  pomodoro --plain

  # Debug logging to a custom file
  pomodoro -d --log-file /tmp/pomodoro.log`,
		Args:          noArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTimer(cmd, opts)
		},
	}

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return NewExitError(ExitInvalidArguments, err)
	})

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Path to a config file that overrides the user config")
	rootCmd.PersistentFlags().BoolVarP(&opts.debug, "debug", "d", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&opts.logFile, "log-file", "", "Write logs to this file")

	rootCmd.Flags().BoolVar(&opts.plain, "plain", false, "Use the line-oriented console instead of the full-screen UI")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd(opts))
	rootCmd.AddCommand(newNotifyCmd(opts))

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	rootCmd := NewRootCmd()
	err := rootCmd.ExecuteContext(context.Background())
	if err != nil {
		rootCmd.PrintErrln("Error:", err)
	}
	return err
}

// noArgs rejects positional arguments with an invalid-arguments exit code.
func noArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.NoArgs(cmd, args); err != nil {
		return NewExitError(ExitInvalidArguments, err)
	}
	return nil
}
