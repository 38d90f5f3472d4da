package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/tomatobell/pomodoro/internal/build"
)

func newVersionCmd() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:     "version",
		Aliases: []string{"v"},
		Short:   "Display version information (v)",
		Long:    "Display version, commit, build date, and Go version information for pomodoro",
		Example: `  # Show version info
  pomodoro version

  # Plain output (for scripts)
  pomodoro version --plain`,
		Args: noArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if plain {
				printPlainVersion(cmd.OutOrStdout())
			} else {
				printPrettyVersion(cmd.OutOrStdout())
			}
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "Plain output without formatting")
	return cmd
}

// printPlainVersion prints a simple version output for scripting
func printPlainVersion(w io.Writer) {
	fmt.Fprintf(w, "pomodoro %s\n", build.Version)
	fmt.Fprintf(w, "commit: %s\n", build.Commit)
	fmt.Fprintf(w, "built: %s\n", build.BuildDate)
	fmt.Fprintf(w, "go: %s\n", runtime.Version())
	fmt.Fprintf(w, "platform: %s\n", build.Platform())
}

// printPrettyVersion prints a labelled, colored version summary
func printPrettyVersion(w io.Writer) {
	title := color.New(color.FgRed, color.Bold).SprintFunc()
	label := color.New(color.FgYellow).SprintFunc()
	value := color.New(color.FgWhite, color.Bold).SprintFunc()

	version := build.Version
	if build.IsDevBuild() {
		version += " (development build)"
	}

	fmt.Fprintln(w, title("🍅 pomodoro"))
	info := []struct {
		label string
		value string
	}{
		{"Version", version},
		{"Commit", truncateCommit(build.Commit)},
		{"Built", build.BuildDate},
		{"Go", runtime.Version()},
		{"Platform", build.Platform()},
	}
	for _, item := range info {
		fmt.Fprintf(w, "  %s  %s\n", label(fmt.Sprintf("%-8s", item.label)), value(item.value))
	}
}

// truncateCommit shortens commit hash if it's too long
func truncateCommit(commit string) string {
	if len(commit) > 8 {
		return commit[:8]
	}
	return commit
}
