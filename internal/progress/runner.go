package progress

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/tomatobell/pomodoro/internal/clock"
	"github.com/tomatobell/pomodoro/internal/timer"
	"go.uber.org/zap"
)

// Command is a console instruction for the timer.
type Command int

const (
	CmdToggle Command = iota
	CmdReset
	CmdSwitch
	CmdStatus
	CmdHelp
	CmdQuit
)

var commandWords = map[string]Command{
	"s":      CmdToggle,
	"start":  CmdToggle,
	"stop":   CmdToggle,
	"r":      CmdReset,
	"reset":  CmdReset,
	"w":      CmdSwitch,
	"b":      CmdSwitch,
	"switch": CmdSwitch,
	"":       CmdStatus,
	"status": CmdStatus,
	"h":      CmdHelp,
	"?":      CmdHelp,
	"help":   CmdHelp,
	"q":      CmdQuit,
	"quit":   CmdQuit,
	"exit":   CmdQuit,
}

// ParseCommand maps an input line to a Command. Matching ignores case and
// surrounding whitespace; an empty line asks for the current status.
func ParseCommand(line string) (Command, bool) {
	cmd, ok := commandWords[strings.ToLower(strings.TrimSpace(line))]
	return cmd, ok
}

// HelpText lists the console commands.
const HelpText = "commands: [s]tart/stop  [r]eset  [w] switch phase  [q]uit  (enter shows status)"

// Runner is the console event loop. Every timer command and tick is
// handled on the goroutine that calls Run.
type Runner struct {
	timer   *timer.Timer
	ticks   <-chan clock.Tick
	input   io.Reader
	display *Display
	logger  *zap.Logger
}

// NewRunner wires a timer, its tick channel, a command source, and a display.
func NewRunner(t *timer.Timer, ticks <-chan clock.Tick, input io.Reader, display *Display, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		timer:   t,
		ticks:   ticks,
		input:   input,
		display: display,
		logger:  logger,
	}
}

// Run processes commands and ticks until the quit command or ctx is done.
// The timer's clock subscription is released on every exit path.
func (r *Runner) Run(ctx context.Context) error {
	defer r.display.Close()
	defer r.timer.Close()

	done := make(chan struct{})
	defer close(done)
	commands := r.readCommands(done)
	ticks := r.ticks

	r.display.Message(HelpText)
	r.display.Render(r.timer.Snapshot(), true)

	for {
		select {
		case <-ctx.Done():
			r.logger.Debug("console runner cancelled")
			return nil

		case tick, ok := <-ticks:
			if !ok {
				r.logger.Warn("clock tick stream closed")
				ticks = nil
				continue
			}
			before := r.timer.Snapshot()
			if r.timer.Tick(tick.Handle) {
				r.render(before)
			}

		case line, ok := <-commands:
			if !ok {
				// Input closed: keep counting, stop listening.
				commands = nil
				continue
			}
			cmd, known := ParseCommand(line)
			if !known {
				r.display.Message("unknown command %q; %s", strings.TrimSpace(line), HelpText)
				continue
			}
			if cmd == CmdQuit {
				r.logger.Debug("console runner quit")
				return nil
			}
			r.apply(cmd)
		}
	}
}

func (r *Runner) apply(cmd Command) {
	before := r.timer.Snapshot()

	switch cmd {
	case CmdToggle:
		r.timer.Toggle()
	case CmdReset:
		r.timer.Reset()
	case CmdSwitch:
		r.timer.Switch()
	case CmdHelp:
		r.display.Message(HelpText)
		return
	case CmdStatus:
		r.display.Render(before, true)
		return
	}

	after := r.timer.Snapshot()
	r.display.Render(after, true)
	r.logger.Debug("console command applied", zap.Stringer("status", after.Status()))
}

func (r *Runner) render(before timer.Snapshot) {
	after := r.timer.Snapshot()
	changed := before.Phase != after.Phase || before.Running != after.Running
	r.display.Render(after, changed)
}

// readCommands forwards input lines until EOF or done. The goroutine may
// outlive Run while blocked on a read.
func (r *Runner) readCommands(done <-chan struct{}) <-chan string {
	out := make(chan string)
	go func() {
		defer close(out)
		scanner := bufio.NewScanner(r.input)
		for scanner.Scan() {
			select {
			case out <- scanner.Text():
			case <-done:
				return
			}
		}
		if err := scanner.Err(); err != nil {
			r.logger.Warn("command input failed", zap.Error(err))
		}
	}()
	return out
}
