// Package config loads pomodoro settings from defaults, config files, and
// the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/tomatobell/pomodoro/internal/logging"
	"github.com/tomatobell/pomodoro/internal/notify"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override, e.g. POMODORO_LOG_LEVEL.
const EnvPrefix = "POMODORO_"

// Configuration represents the pomodoro CLI configuration. Phase durations
// are fixed and deliberately absent.
type Configuration struct {
	NotifyEnabled bool   `koanf:"notify_enabled" yaml:"notify_enabled"`
	NotifyType    string `koanf:"notify_type" yaml:"notify_type" validate:"oneof=sound visual both"`
	NotifyBackend string `koanf:"notify_backend" yaml:"notify_backend" validate:"oneof=native beeep"`
	SoundFile     string `koanf:"sound_file" yaml:"sound_file"`
	LogLevel      string `koanf:"log_level" yaml:"log_level" validate:"oneof=debug info warn error"`
	LogFile       string `koanf:"log_file" yaml:"log_file"`
	StateDir      string `koanf:"state_dir" yaml:"state_dir" validate:"required"`
	AltScreen     bool   `koanf:"alt_screen" yaml:"alt_screen"` // Use the terminal's alternate screen for the TUI
}

// Load loads configuration from user, local, and environment sources
// Priority: Environment variables > Local config > User config > Defaults
func Load(localConfigPath string) (*Configuration, error) {
	k := koanf.New(".")

	for key, value := range GetDefaults() {
		k.Set(key, value)
	}

	if userPath, err := UserConfigPath(); err == nil {
		if _, err := os.Stat(userPath); err == nil {
			if err := k.Load(file.Provider(userPath), json.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load user config: %w", err)
			}
		}
	}

	if localConfigPath != "" {
		if _, err := os.Stat(localConfigPath); err == nil {
			if err := k.Load(file.Provider(localConfigPath), json.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load local config: %w", err)
			}
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.StateDir = expandHomePath(cfg.StateDir)
	cfg.LogFile = expandHomePath(cfg.LogFile)
	cfg.SoundFile = expandHomePath(cfg.SoundFile)

	return &cfg, nil
}

// Validate checks field constraints.
func (c *Configuration) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// envTransform converts environment variable names to config keys
// Example: POMODORO_LOG_LEVEL -> log_level
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
}

// Notifications returns the notifier settings.
func (c *Configuration) Notifications() notify.Config {
	return notify.Config{
		Enabled:   c.NotifyEnabled,
		Output:    notify.Output(c.NotifyType),
		SoundFile: c.SoundFile,
		Backend:   notify.Backend(c.NotifyBackend),
	}
}

// DefaultLogFile is where the TUI logs when no log_file is configured.
func (c *Configuration) DefaultLogFile() string {
	return filepath.Join(c.StateDir, "pomodoro.log")
}

// LogOptions returns logger settings. When toFile is set and no log_file is
// configured, logs go to DefaultLogFile; otherwise an empty file means stderr.
func (c *Configuration) LogOptions(toFile bool) logging.Options {
	path := c.LogFile
	if path == "" && toFile {
		path = c.DefaultLogFile()
	}
	return logging.Options{Level: c.LogLevel, File: path}
}

// ToYAML renders the effective configuration.
func (c *Configuration) ToYAML() ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to render config: %w", err)
	}
	return out, nil
}
