//go:build linux

package notify

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"go.uber.org/zap"
)

// DefaultLinuxSound is the freedesktop completion sound, used when present
// and no sound_file is configured.
const DefaultLinuxSound = "/usr/share/sounds/freedesktop/stereo/complete.oga"

// linuxSender delivers banners with notify-send and plays sounds with paplay.
type linuxSender struct {
	logger     *zap.Logger
	notifySend string
	paplay     string
}

func newLinuxSender(logger *zap.Logger) Sender {
	s := &linuxSender{logger: logger}
	if toolAvailable("notify-send") && hasDisplay() {
		s.notifySend = "notify-send"
	}
	if toolAvailable("paplay") {
		s.paplay = "paplay"
	}
	return s
}

func newDarwinSender(_ *zap.Logger) Sender  { return &noopSender{} }
func newWindowsSender(_ *zap.Logger) Sender { return &noopSender{} }

// hasDisplay reports whether an X11 or Wayland session is reachable.
func hasDisplay() bool {
	return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
}

func (s *linuxSender) SendVisual(ctx context.Context, n Notification) error {
	if s.notifySend == "" {
		return nil
	}
	args := []string{"--app-name", AppName, "--urgency", "normal", n.Title, n.Body}
	out, err := exec.CommandContext(ctx, s.notifySend, args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("notify-send: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}

// SendSound plays soundFile, or the freedesktop default when it is unset or
// invalid. Nothing is played when neither exists.
func (s *linuxSender) SendSound(ctx context.Context, soundFile string) error {
	if s.paplay == "" {
		return nil
	}
	file := ValidateSoundFile(soundFile, s.logger)
	if file == "" {
		if _, err := os.Stat(DefaultLinuxSound); err != nil {
			return nil
		}
		file = DefaultLinuxSound
	}
	if err := exec.CommandContext(ctx, s.paplay, file).Run(); err != nil {
		return fmt.Errorf("paplay %s: %w", file, err)
	}
	return nil
}

func (s *linuxSender) VisualAvailable() bool { return s.notifySend != "" }

func (s *linuxSender) SoundAvailable() bool { return s.paplay != "" }
