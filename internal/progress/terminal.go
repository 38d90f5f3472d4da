package progress

import (
	"os"

	"golang.org/x/term"
)

// TerminalCapabilities describes what the output stream can render.
type TerminalCapabilities struct {
	IsTTY           bool
	SupportsColor   bool
	SupportsUnicode bool
}

// Symbols are the state marks and spinner frames for a capability set.
type Symbols struct {
	Running    string
	Stopped    string
	SpinnerSet int // index into spinner.CharSets
}

// DetectTerminalCapabilities inspects stdout and the environment.
// NO_COLOR disables color; POMODORO_ASCII=1 forces ASCII marks.
func DetectTerminalCapabilities() TerminalCapabilities {
	return detectCapabilities(term.IsTerminal(int(os.Stdout.Fd())), os.Getenv)
}

func detectCapabilities(isTTY bool, getenv func(string) string) TerminalCapabilities {
	if !isTTY {
		return TerminalCapabilities{}
	}
	return TerminalCapabilities{
		IsTTY:           true,
		SupportsColor:   getenv("NO_COLOR") == "",
		SupportsUnicode: getenv("POMODORO_ASCII") != "1",
	}
}

// SelectSymbols picks Unicode or ASCII marks.
func SelectSymbols(caps TerminalCapabilities) Symbols {
	if caps.SupportsUnicode {
		return Symbols{Running: "▶", Stopped: "⏸", SpinnerSet: 14}
	}
	return Symbols{Running: ">", Stopped: "||", SpinnerSet: 9}
}
