//go:build windows

package notify

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"go.uber.org/zap"
)

// windowsSender delivers toasts and sounds through PowerShell.
type windowsSender struct {
	logger     *zap.Logger
	powershell string
}

func newWindowsSender(logger *zap.Logger) Sender {
	s := &windowsSender{logger: logger}
	if toolAvailable("powershell") {
		s.powershell = "powershell"
	}
	return s
}

func newDarwinSender(_ *zap.Logger) Sender { return &noopSender{} }
func newLinuxSender(_ *zap.Logger) Sender  { return &noopSender{} }

func (s *windowsSender) run(ctx context.Context, script string) error {
	out, err := exec.CommandContext(ctx, s.powershell, "-ExecutionPolicy", "Bypass", "-NoProfile", "-Command", script).CombinedOutput()
	if err != nil {
		return fmt.Errorf("powershell: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}

func (s *windowsSender) SendVisual(ctx context.Context, n Notification) error {
	if s.powershell == "" {
		return nil
	}
	return s.run(ctx, toastCommand(n))
}

func (s *windowsSender) SendSound(ctx context.Context, soundFile string) error {
	if s.powershell == "" {
		return nil
	}
	file := ValidateSoundFile(soundFile, s.logger)
	script, beep := soundCommand(file)
	if beep && file != "" {
		s.logger.Warn("sound file is not wav, beeping instead", zap.String("file", file))
	}
	return s.run(ctx, script)
}

func (s *windowsSender) VisualAvailable() bool { return s.powershell != "" }

func (s *windowsSender) SoundAvailable() bool { return s.powershell != "" }
