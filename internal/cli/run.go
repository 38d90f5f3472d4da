package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/tomatobell/pomodoro/internal/clock"
	"github.com/tomatobell/pomodoro/internal/config"
	"github.com/tomatobell/pomodoro/internal/logging"
	"github.com/tomatobell/pomodoro/internal/notify"
	"github.com/tomatobell/pomodoro/internal/progress"
	"github.com/tomatobell/pomodoro/internal/timer"
	"github.com/tomatobell/pomodoro/internal/tui"
	"go.uber.org/zap"
)

// loadConfig loads configuration and applies flag overrides. Load and
// validation failures are invalid-configuration errors.
func loadConfig(opts *rootOptions) (*config.Configuration, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, NewExitError(ExitInvalidArguments, err)
	}
	if opts.debug {
		cfg.LogLevel = logging.DebugLevel
	}
	if opts.logFile != "" {
		cfg.LogFile = opts.logFile
	}
	return cfg, nil
}

// newLogger builds the session logger. toFile routes logs away from the
// terminal when no log file is configured. A log file that cannot be opened
// is reported on stderr and logging continues there.
func newLogger(cmd *cobra.Command, cfg *config.Configuration, toFile bool) *logging.Logger {
	logger, err := logging.New(cfg.LogOptions(toFile))
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v; logging to stderr\n", err)
	}
	return logger
}

// runTimer runs one timer session until the user quits or the process is
// signalled.
func runTimer(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	logger := newLogger(cmd, cfg, !opts.plain)
	defer logger.Close()

	handler := notify.NewHandler(cfg.Notifications(), logger.Logger)
	handler.RequestPermission()
	// In-flight notifications finish (or time out) before exit.
	defer handler.Wait()

	ticker := clock.NewTicker()
	defer ticker.Close()

	t := timer.New(ticker, handler, logger.Named("timer"))
	logger.Info("session started",
		zap.Bool("plain", opts.plain),
		zap.String("log_level", cfg.LogLevel),
	)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if opts.plain {
		err = runConsole(ctx, cmd, t, ticker.Ticks(), logger.Named("console"))
	} else {
		err = tui.New(t, ticker.Ticks(), logger.Named("tui"), tuiOptions(cmd, cfg)).Run(ctx)
	}

	if err != nil {
		logger.Error("session failed", zap.Error(err))
		return err
	}
	logger.Info("session ended", zap.Stringer("status", t.Status()))
	return nil
}

func runConsole(ctx context.Context, cmd *cobra.Command, t *timer.Timer, ticks <-chan clock.Tick, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	display := progress.NewDisplay(progress.DetectTerminalCapabilities(), cmd.OutOrStdout())
	return progress.NewRunner(t, ticks, cmd.InOrStdin(), display, logger).Run(ctx)
}

// tuiOptions leaves the process terminal to bubbletea so it can switch it
// to raw mode; redirected streams (tests) are passed through.
func tuiOptions(cmd *cobra.Command, cfg *config.Configuration) tui.Options {
	opts := tui.Options{AltScreen: cfg.AltScreen}
	if in := cmd.InOrStdin(); in != os.Stdin {
		opts.Input = in
	}
	if out := cmd.OutOrStdout(); out != os.Stdout {
		opts.Output = out
	}
	return opts
}
