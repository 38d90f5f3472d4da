package timer

// Phase is one of the two alternating timer phases.
type Phase int

const (
	// Work is the focus phase.
	Work Phase = iota
	// Break is the rest phase.
	Break
)

// Fixed phase lengths in seconds.
const (
	WorkSeconds  = 25 * 60
	BreakSeconds = 5 * 60
)

// Duration returns the full length of the phase in seconds.
func (p Phase) Duration() int {
	if p == Break {
		return BreakSeconds
	}
	return WorkSeconds
}

// Next returns the phase that follows p.
func (p Phase) Next() Phase {
	if p == Work {
		return Break
	}
	return Work
}

// String returns the lowercase phase name
func (p Phase) String() string {
	switch p {
	case Work:
		return "work"
	case Break:
		return "break"
	default:
		return "unknown"
	}
}

// Headline is the label shown above the countdown.
func (p Phase) Headline() string {
	if p == Break {
		return "Break ☕️"
	}
	return "Let's Work 👨‍💻"
}

// SwitchLabel is the label of the manual switch action while in phase p.
func (p Phase) SwitchLabel() string {
	if p == Break {
		return "Switch to Work 👨‍💻"
	}
	return "Switch to Break ☕️"
}

// Message is the notification sent when a phase begins.
type Message struct {
	Title string
	Body  string
}

// StartMessage returns the notification announcing the start of p.
func (p Phase) StartMessage() Message {
	if p == Break {
		return Message{
			Title: "Break Time! ☕️",
			Body:  "Nice work! Step away and rest for 5 minutes.",
		}
	}
	return Message{
		Title: "Work Time! 👨‍💻",
		Body:  "Break is over. Time to focus on your next task.",
	}
}

// Status is the composite phase × running state.
type Status int

const (
	// WorkStopped is a paused or fresh work phase.
	WorkStopped Status = iota
	// WorkRunning is a work phase counting down.
	WorkRunning
	// BreakStopped is a paused or fresh break phase.
	BreakStopped
	// BreakRunning is a break phase counting down.
	BreakRunning
)

func statusOf(p Phase, running bool) Status {
	switch {
	case p == Work && running:
		return WorkRunning
	case p == Work:
		return WorkStopped
	case running:
		return BreakRunning
	default:
		return BreakStopped
	}
}

// Phase returns the phase component of s.
func (s Status) Phase() Phase {
	if s == BreakStopped || s == BreakRunning {
		return Break
	}
	return Work
}

// Running reports whether s is a running state.
func (s Status) Running() bool {
	return s == WorkRunning || s == BreakRunning
}

func (s Status) String() string {
	switch s {
	case WorkStopped:
		return "work-stopped"
	case WorkRunning:
		return "work-running"
	case BreakStopped:
		return "break-stopped"
	case BreakRunning:
		return "break-running"
	default:
		return "unknown"
	}
}
