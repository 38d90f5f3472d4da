package notify

import (
	"context"

	"github.com/gen2brain/beeep"
	"go.uber.org/zap"
)

// beeepSender implements Sender with the beeep library. beeep calls cannot be
// cancelled, so each call runs on its own goroutine and the context only
// bounds how long the caller waits.
type beeepSender struct {
	logger *zap.Logger
	notify func(title, message string, icon any) error
	beep   func(freq float64, duration int) error
}

func newBeeepSender(logger *zap.Logger) Sender {
	beeep.AppName = AppName
	return &beeepSender{
		logger: logger,
		notify: beeep.Notify,
		beep:   beeep.Beep,
	}
}

// SendVisual shows a desktop notification through beeep
func (s *beeepSender) SendVisual(ctx context.Context, n Notification) error {
	return s.run(ctx, func() error {
		return s.notify(n.Title, n.Body, "")
	})
}

// SendSound plays the default beep. beeep has no file playback, so a
// configured sound file is ignored.
func (s *beeepSender) SendSound(ctx context.Context, soundFile string) error {
	if soundFile != "" {
		s.logger.Debug("beeep backend ignores custom sound file", zap.String("file", soundFile))
	}
	return s.run(ctx, func() error {
		return s.beep(beeep.DefaultFreq, beeep.DefaultDuration)
	})
}

// VisualAvailable always returns true; beeep reports failures at send time
func (s *beeepSender) VisualAvailable() bool { return true }

// SoundAvailable always returns true; beeep reports failures at send time
func (s *beeepSender) SoundAvailable() bool { return true }

func (s *beeepSender) run(ctx context.Context, fn func() error) error {
	done := make(chan error, 1)
	go func() { done <- fn() }()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
