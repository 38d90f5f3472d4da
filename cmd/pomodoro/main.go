// pomodoro - 25/5 phase timer for the terminal

package main

import (
	"os"

	"github.com/tomatobell/pomodoro/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
