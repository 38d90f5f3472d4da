package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tomatobell/pomodoro/internal/notify"
	"github.com/tomatobell/pomodoro/internal/timer"
)

func newNotifyCmd(opts *rootOptions) *cobra.Command {
	notifyCmd := &cobra.Command{
		Use:   "notify",
		Short: "Notification utilities",
	}

	notifyCmd.AddCommand(&cobra.Command{
		Use:   "test",
		Short: "Send the phase notifications once",
		Long: `Send the work and break notifications once using the configured backend,
then wait for delivery. Use this to check that notifications and sounds work
before starting a session.`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNotifyTest(cmd, opts)
		},
	})

	return notifyCmd
}

func runNotifyTest(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	logger := newLogger(cmd, cfg, false)
	defer logger.Close()

	handler := notify.NewHandler(cfg.Notifications(), logger.Logger)
	if !handler.RequestPermission() {
		return fmt.Errorf("notifications unavailable: %w", handler.DenyReason())
	}

	out := cmd.OutOrStdout()
	for _, phase := range []timer.Phase{timer.Break, timer.Work} {
		msg := phase.StartMessage()
		fmt.Fprintf(out, "Sending %q\n", msg.Title)
		handler.Notify(msg.Title, msg.Body)
	}
	handler.Wait()

	fmt.Fprintf(out, "Done (backend %s, output %s)\n", cfg.NotifyBackend, cfg.NotifyType)
	return nil
}
