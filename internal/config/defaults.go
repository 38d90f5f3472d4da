package config

// GetDefaults returns the default configuration values
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"notify_enabled": true,
		"notify_type":    "both",
		"notify_backend": "native",
		"sound_file":     "",
		"log_level":      "info",
		"log_file":       "",
		"state_dir":      "~/.pomodoro",
		"alt_screen":     true,
	}
}
