//go:build darwin

package notify

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"go.uber.org/zap"
)

// DefaultMacOSSound is played when no sound_file is configured.
const DefaultMacOSSound = "/System/Library/Sounds/Glass.aiff"

// darwinSender delivers through Notification Center (osascript) and plays
// sounds with afplay.
type darwinSender struct {
	logger    *zap.Logger
	osascript string
	afplay    string
}

func newDarwinSender(logger *zap.Logger) Sender {
	s := &darwinSender{logger: logger}
	if toolAvailable("osascript") {
		s.osascript = "osascript"
	}
	if toolAvailable("afplay") {
		s.afplay = "afplay"
	}
	return s
}

func newLinuxSender(_ *zap.Logger) Sender   { return &noopSender{} }
func newWindowsSender(_ *zap.Logger) Sender { return &noopSender{} }

func (s *darwinSender) SendVisual(ctx context.Context, n Notification) error {
	if s.osascript == "" {
		return nil
	}
	out, err := exec.CommandContext(ctx, s.osascript, "-e", notificationScript(n)).CombinedOutput()
	if err != nil {
		return fmt.Errorf("osascript: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}

func (s *darwinSender) SendSound(ctx context.Context, soundFile string) error {
	if s.afplay == "" {
		return nil
	}
	file := ValidateSoundFile(soundFile, s.logger)
	if file == "" {
		file = DefaultMacOSSound
	}
	if err := exec.CommandContext(ctx, s.afplay, file).Run(); err != nil {
		return fmt.Errorf("afplay %s: %w", file, err)
	}
	return nil
}

func (s *darwinSender) VisualAvailable() bool { return s.osascript != "" }

func (s *darwinSender) SoundAvailable() bool { return s.afplay != "" }
