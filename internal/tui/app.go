package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tomatobell/pomodoro/internal/clock"
	"github.com/tomatobell/pomodoro/internal/timer"
	"go.uber.org/zap"
)

// Options configures the bubbletea program.
type Options struct {
	AltScreen bool
	// Input and Output default to the process terminal when nil.
	Input  io.Reader
	Output io.Writer
}

// App wraps the bubbletea program
type App struct {
	model  Model
	timer  *timer.Timer
	opts   Options
	logger *zap.Logger
}

// New creates the TUI application for t.
func New(t *timer.Timer, ticks <-chan clock.Tick, logger *zap.Logger, opts Options) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &App{
		model:  NewModel(t, ticks, logger),
		timer:  t,
		opts:   opts,
		logger: logger,
	}
}

// Run starts the TUI and blocks until the user quits, a termination signal
// arrives, or ctx is cancelled. The timer's clock subscription is released
// before returning.
func (a *App) Run(ctx context.Context) error {
	defer a.timer.Close()

	programOpts := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithoutSignalHandler(),
	}
	if a.opts.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	if a.opts.Input != nil {
		programOpts = append(programOpts, tea.WithInput(a.opts.Input))
	}
	if a.opts.Output != nil {
		programOpts = append(programOpts, tea.WithOutput(a.opts.Output))
	}
	program := tea.NewProgram(a.model, programOpts...)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case sig := <-sigChan:
			a.logger.Debug("signal received, quitting", zap.Stringer("signal", sig))
			program.Send(tea.Quit())
		case <-done:
		}
	}()

	a.logger.Debug("tui started", zap.Bool("alt_screen", a.opts.AltScreen))
	_, err := program.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			a.logger.Debug("tui cancelled")
			return nil
		}
		return fmt.Errorf("running tui: %w", err)
	}
	a.logger.Debug("tui exited")
	return nil
}
