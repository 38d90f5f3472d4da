package tui

import "github.com/charmbracelet/lipgloss"

// Button colors follow the desktop app: blue to start, orange to stop,
// red to reset and green to switch.
var (
	colorStart  = lipgloss.Color("#0A84FF")
	colorStop   = lipgloss.Color("#FF9F0A")
	colorReset  = lipgloss.Color("#FF453A")
	colorSwitch = lipgloss.Color("#30D158")
	colorText   = lipgloss.Color("#FFFFFF")
	colorMuted  = lipgloss.Color("#8E8E93")
)

// Styles groups the lipgloss styles used by the view.
type Styles struct {
	Headline lipgloss.Style
	Clock    lipgloss.Style
	Button   lipgloss.Style
	Start    lipgloss.Style
	Stop     lipgloss.Style
	Reset    lipgloss.Style
	Switch   lipgloss.Style
	Status   lipgloss.Style
	Frame    lipgloss.Style
}

// DefaultStyles returns the standard pomodoro palette.
func DefaultStyles() Styles {
	button := lipgloss.NewStyle().
		Foreground(colorText).
		Padding(0, 2).
		MarginRight(2)

	return Styles{
		Headline: lipgloss.NewStyle().Bold(true).MarginBottom(1),
		Clock:    lipgloss.NewStyle().Bold(true).MarginBottom(1),
		Button:   button,
		Start:    button.Background(colorStart),
		Stop:     button.Background(colorStop),
		Reset:    button.Background(colorReset),
		Switch:   button.Background(colorSwitch).MarginTop(1),
		Status:   lipgloss.NewStyle().Foreground(colorMuted).MarginTop(1),
		Frame:    lipgloss.NewStyle().Padding(1, 4),
	}
}
