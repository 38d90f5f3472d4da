package progress

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/tomatobell/pomodoro/internal/timer"
)

// Display renders timer snapshots to the console.
type Display struct {
	capabilities TerminalCapabilities
	symbols      Symbols
	out          io.Writer
	spinner      *spinner.Spinner

	workLabel  *color.Color
	breakLabel *color.Color
	dim        *color.Color
}

// NewDisplay creates a display writing to out with the given terminal capabilities
func NewDisplay(caps TerminalCapabilities, out io.Writer) *Display {
	d := &Display{
		capabilities: caps,
		symbols:      SelectSymbols(caps),
		out:          out,
		workLabel:    color.New(color.FgRed, color.Bold),
		breakLabel:   color.New(color.FgGreen, color.Bold),
		dim:          color.New(color.Faint),
	}
	for _, c := range []*color.Color{d.workLabel, d.breakLabel, d.dim} {
		if caps.SupportsColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return d
}

// Render shows s. changed marks a phase or running-state change; without it,
// non-interactive output only prints on whole minutes.
func (d *Display) Render(s timer.Snapshot, changed bool) {
	if d.capabilities.IsTTY {
		d.renderTTY(s)
		return
	}
	if changed || (s.Running && s.Remaining%60 == 0) {
		fmt.Fprintln(d.out, d.statusLine(s))
	}
}

func (d *Display) renderTTY(s timer.Snapshot) {
	if !s.Running {
		d.StopSpinner()
		fmt.Fprintln(d.out, d.statusLine(s))
		return
	}

	if d.spinner == nil {
		d.spinner = spinner.New(
			spinner.CharSets[d.symbols.SpinnerSet],
			100*time.Millisecond,
			spinner.WithWriter(d.out),
		)
		d.spinner.Suffix = " " + d.statusLine(s)
		d.spinner.Start()
		return
	}

	d.spinner.Lock()
	d.spinner.Suffix = " " + d.statusLine(s)
	d.spinner.Unlock()
}

// Message prints an informational line, clearing the spinner first.
func (d *Display) Message(format string, args ...interface{}) {
	running := d.spinner != nil
	if running {
		d.spinner.Stop()
	}
	fmt.Fprintln(d.out, d.dim.Sprintf(format, args...))
	if running {
		d.spinner.Start()
	}
}

// StopSpinner stops the spinner without printing anything
func (d *Display) StopSpinner() {
	if d.spinner != nil {
		d.spinner.Stop()
		d.spinner = nil
	}
}

// Close releases terminal resources.
func (d *Display) Close() {
	d.StopSpinner()
}

// statusLine formats a snapshot, e.g. "▶ Let's Work 👨‍💻 24:59".
func (d *Display) statusLine(s timer.Snapshot) string {
	mark := d.symbols.Stopped
	if s.Running {
		mark = d.symbols.Running
	}

	label := d.workLabel
	if s.Phase == timer.Break {
		label = d.breakLabel
	}

	headline := s.Phase.Headline()
	if !d.capabilities.SupportsUnicode {
		headline = capitalize(s.Phase.String())
	}

	return fmt.Sprintf("%s %s %s", mark, label.Sprint(headline), timer.FormatSeconds(s.Remaining))
}

// capitalize returns the string with the first letter capitalized
func capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
