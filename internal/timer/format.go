package timer

import "fmt"

// FormatSeconds renders total seconds as MM:SS. Minutes are not wrapped into
// hours; negative input renders as 00:00.
func FormatSeconds(total int) string {
	if total < 0 {
		total = 0
	}
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// ToggleLabel is the label of the start/stop action.
func ToggleLabel(running bool) string {
	if running {
		return "Stop 🛑"
	}
	return "Start 🏃"
}

// ResetLabel is the label of the reset action.
const ResetLabel = "Reset 🔄"
