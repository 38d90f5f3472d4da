package notify

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"go.uber.org/zap"
)

// Sender delivers notifications through one backend. Send methods honor ctx
// cancellation; the Available methods are cheap and probed once at startup.
type Sender interface {
	SendVisual(ctx context.Context, n Notification) error
	SendSound(ctx context.Context, soundFile string) error
	VisualAvailable() bool
	SoundAvailable() bool
}

// NewSender returns the sender for backend. The native backend uses the
// tools of the running OS; other platforms get a sender that delivers nothing.
func NewSender(backend Backend, logger *zap.Logger) Sender {
	if logger == nil {
		logger = zap.NewNop()
	}
	if backend == BackendBeeep {
		return newBeeepSender(logger)
	}

	switch runtime.GOOS {
	case "darwin":
		return newDarwinSender(logger)
	case "linux":
		return newLinuxSender(logger)
	case "windows":
		return newWindowsSender(logger)
	}
	return &noopSender{}
}

// Platform returns the current operating system name
func Platform() string {
	return runtime.GOOS
}

func toolAvailable(name string) bool {
	if name == "" {
		return false
	}
	_, err := exec.LookPath(name)
	return err == nil
}

type noopSender struct{}

func (*noopSender) SendVisual(context.Context, Notification) error { return nil }
func (*noopSender) SendSound(context.Context, string) error        { return nil }
func (*noopSender) VisualAvailable() bool                          { return false }
func (*noopSender) SoundAvailable() bool                           { return false }

var soundExtensions = []string{".wav", ".mp3", ".aiff", ".aif", ".ogg", ".oga", ".flac", ".m4a"}

// ValidateSoundFile returns soundFile when it names a readable audio file
// with a known extension, and "" otherwise so the caller falls back to the
// platform sound. Rejections are logged as warnings.
func ValidateSoundFile(soundFile string, logger *zap.Logger) string {
	if soundFile == "" {
		return ""
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	if reason := soundFileProblem(soundFile); reason != "" {
		logger.Warn("custom sound file rejected, using default",
			zap.String("file", soundFile),
			zap.String("reason", reason),
		)
		return ""
	}
	return soundFile
}

func soundFileProblem(path string) string {
	info, err := os.Stat(path)
	switch {
	case os.IsNotExist(err):
		return "not found"
	case err != nil:
		return err.Error()
	case info.IsDir():
		return "is a directory"
	}

	ext := strings.ToLower(filepath.Ext(path))
	for _, known := range soundExtensions {
		if ext == known {
			return ""
		}
	}
	return "unsupported format " + ext
}
