// Package tui is the interactive terminal front end for the phase timer.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tomatobell/pomodoro/internal/clock"
	"github.com/tomatobell/pomodoro/internal/timer"
	"go.uber.org/zap"
)

// tickMsg carries one clock tick into the update loop.
type tickMsg clock.Tick

// ticksClosedMsg reports that the clock stopped delivering ticks.
type ticksClosedMsg struct{}

// waitForTick returns a command that blocks until the next clock tick.
// It is re-issued after every tick so exactly one listener is pending.
func waitForTick(ticks <-chan clock.Tick) tea.Cmd {
	return func() tea.Msg {
		t, ok := <-ticks
		if !ok {
			return ticksClosedMsg{}
		}
		return tickMsg(t)
	}
}

// Model is the bubbletea model for the timer screen. All timer commands
// and ticks are applied inside Update, on bubbletea's event loop.
type Model struct {
	timer  *timer.Timer
	ticks  <-chan clock.Tick
	keys   keyMap
	help   help.Model
	styles Styles
	logger *zap.Logger
}

// NewModel creates the timer screen for t, fed by ticks.
func NewModel(t *timer.Timer, ticks <-chan clock.Tick, logger *zap.Logger) Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	return Model{
		timer:  t,
		ticks:  ticks,
		keys:   defaultKeyMap(),
		help:   help.New(),
		styles: DefaultStyles(),
		logger: logger,
	}
}

// Init starts listening for clock ticks.
func (m Model) Init() tea.Cmd {
	return waitForTick(m.ticks)
}

// Update handles key presses, ticks and resizes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		m.timer.Tick(msg.Handle)
		return m, waitForTick(m.ticks)

	case ticksClosedMsg:
		m.logger.Warn("clock tick stream closed")
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.timer.Close()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Toggle):
		m.timer.Toggle()
	case key.Matches(msg, m.keys.Reset):
		m.timer.Reset()
	case key.Matches(msg, m.keys.Switch):
		m.timer.Switch()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// View renders the headline, the countdown and the action buttons.
func (m Model) View() string {
	s := m.timer.Snapshot()

	toggle := m.styles.Start
	if s.Running {
		toggle = m.styles.Stop
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		toggle.Render(timer.ToggleLabel(s.Running)),
		m.styles.Reset.Render(timer.ResetLabel),
	)

	body := lipgloss.JoinVertical(lipgloss.Center,
		m.styles.Headline.Render(s.Phase.Headline()),
		m.styles.Clock.Render(timer.FormatSeconds(s.Remaining)),
		buttons,
		m.styles.Switch.Render(s.Phase.SwitchLabel()),
		m.styles.Status.Render(m.help.View(m.keys)),
	)
	return m.styles.Frame.Render(body)
}
