package notify

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tomatobell/pomodoro/internal/timer"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestPlatform(t *testing.T) {
	t.Parallel()
	assert.NotEmpty(t, Platform())
}

func TestNewSender(t *testing.T) {
	t.Parallel()

	// NOTE: SendVisual/SendSound are not called to avoid real OS notifications
	for _, backend := range []Backend{BackendNative, BackendBeeep} {
		sender := NewSender(backend, nil)
		require.NotNil(t, sender, "backend %s", backend)
		_ = sender.VisualAvailable()
		_ = sender.SoundAvailable()
	}

	_, isBeeep := NewSender(BackendBeeep, zap.NewNop()).(*beeepSender)
	assert.True(t, isBeeep)
}

func TestNoopSender(t *testing.T) {
	t.Parallel()
	sender := &noopSender{}
	ctx := context.Background()

	assert.False(t, sender.VisualAvailable())
	assert.False(t, sender.SoundAvailable())
	assert.NoError(t, sender.SendVisual(ctx, Notification{Title: "test", Body: "test"}))
	assert.NoError(t, sender.SendSound(ctx, ""))
}

func TestBeeepSender(t *testing.T) {
	t.Parallel()

	var gotTitle, gotMessage string
	beeps := 0
	s := &beeepSender{
		logger: zap.NewNop(),
		notify: func(title, message string, _ any) error {
			gotTitle, gotMessage = title, message
			return nil
		},
		beep: func(_ float64, _ int) error {
			beeps++
			return errors.New("no audio device")
		},
	}
	ctx := context.Background()

	require.NoError(t, s.SendVisual(ctx, Notification{Title: "Work Time!", Body: "focus"}))
	assert.Equal(t, "Work Time!", gotTitle)
	assert.Equal(t, "focus", gotMessage)

	assert.EqualError(t, s.SendSound(ctx, "/tmp/custom.wav"), "no audio device")
	assert.Equal(t, 1, beeps)
	assert.True(t, s.VisualAvailable())
	assert.True(t, s.SoundAvailable())
}

func TestBeeepSender_ContextBoundsWait(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	defer close(release)
	s := &beeepSender{
		logger: zap.NewNop(),
		notify: func(_, _ string, _ any) error {
			<-release
			return nil
		},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := s.SendVisual(ctx, Notification{Title: "t", Body: "m"})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestValidateSoundFile(t *testing.T) {
	t.Parallel()
	tmpDir := t.TempDir()
	validFile := filepath.Join(tmpDir, "test.wav")
	require.NoError(t, os.WriteFile(validFile, []byte("test"), 0644))
	testDir := filepath.Join(tmpDir, "testdir")
	require.NoError(t, os.Mkdir(testDir, 0755))
	unsupportedFile := filepath.Join(tmpDir, "test.txt")
	require.NoError(t, os.WriteFile(unsupportedFile, []byte("test"), 0644))

	tests := map[string]struct {
		soundFile string
		expected  string
		warned    bool
	}{
		"empty string returns empty": {
			soundFile: "",
			expected:  "",
		},
		"valid wav file returns path": {
			soundFile: validFile,
			expected:  validFile,
		},
		"non-existent file returns empty": {
			soundFile: "/path/to/nonexistent/file.wav",
			expected:  "",
			warned:    true,
		},
		"directory returns empty": {
			soundFile: testDir,
			expected:  "",
			warned:    true,
		},
		"unsupported extension returns empty": {
			soundFile: unsupportedFile,
			expected:  "",
			warned:    true,
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			core, logs := observer.New(zapcore.WarnLevel)

			assert.Equal(t, tt.expected, ValidateSoundFile(tt.soundFile, zap.New(core)))
			assert.Equal(t, tt.warned, logs.Len() > 0)
		})
	}
}

func TestSoundFileProblem(t *testing.T) {
	t.Parallel()
	tmpDir := t.TempDir()

	tests := map[string]struct {
		name   string
		reason string
	}{
		"wav":             {name: "bell.wav"},
		"upper case ext":  {name: "bell.WAV"},
		"aiff":            {name: "bell.Aiff"},
		"freedesktop oga": {name: "complete.oga"},
		"text file":       {name: "notes.txt", reason: "unsupported format .txt"},
		"no extension":    {name: "bell", reason: "unsupported format "},
	}

	for name, tt := range tests {
		name := name
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			dir := filepath.Join(tmpDir, name)
			require.NoError(t, os.MkdirAll(dir, 0755))
			path := filepath.Join(dir, tt.name)
			require.NoError(t, os.WriteFile(path, []byte("test"), 0644))

			assert.Equal(t, tt.reason, soundFileProblem(path))
		})
	}

	assert.Equal(t, "not found", soundFileProblem(filepath.Join(tmpDir, "missing.wav")))
	assert.Equal(t, "is a directory", soundFileProblem(tmpDir))
}

func TestToolAvailable(t *testing.T) {
	t.Parallel()
	assert.False(t, toolAvailable("nonexistent_tool_12345"))
	assert.False(t, toolAvailable(""))
}

func TestNotificationScript(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		phase    timer.Phase
		expected string
	}{
		"work start keeps the joined emoji": {
			phase:    timer.Work,
			expected: `display notification "Break is over. Time to focus on your next task." with title "Work Time! 👨‍💻" subtitle "pomodoro"`,
		},
		"break start": {
			phase:    timer.Break,
			expected: `display notification "Nice work! Step away and rest for 5 minutes." with title "Break Time! ☕️" subtitle "pomodoro"`,
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			msg := tt.phase.StartMessage()
			script := notificationScript(Notification{Title: msg.Title, Body: msg.Body})

			assert.Equal(t, tt.expected, script)
			assert.NotContains(t, script, `\u`)
		})
	}
}

func TestQuoteAppleScript(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		input    string
		expected string
	}{
		"plain":             {input: "rest", expected: `"rest"`},
		"double quote":      {input: `say "hi"`, expected: `"say \"hi\""`},
		"backslash":         {input: `a\b`, expected: `"a\\b"`},
		"zero width joiner": {input: "👨\u200d💻", expected: "\"👨\u200d💻\""},
		"newline untouched": {input: "a\nb", expected: "\"a\nb\""},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, quoteAppleScript(tt.input))
		})
	}
}

func TestSoundCommand(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		file     string
		beep     bool
		contains string
	}{
		"no file beeps":  {file: "", beep: true, contains: "Beep"},
		"wav plays":      {file: `C:\sounds\bell.wav`, contains: `'C:\sounds\bell.wav'`},
		"upper case wav": {file: `C:\sounds\BELL.WAV`, contains: "SoundPlayer"},
		"mp3 beeps":      {file: `C:\sounds\bell.mp3`, beep: true, contains: "Beep"},
		"ogg beeps":      {file: "bell.ogg", beep: true, contains: "Beep"},
		"quote escaped":  {file: `C:\it's\bell.wav`, contains: `'C:\it''s\bell.wav'`},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			script, beep := soundCommand(tt.file)
			assert.Equal(t, tt.beep, beep)
			assert.Contains(t, script, tt.contains)
		})
	}
}

func TestToastCommand(t *testing.T) {
	t.Parallel()
	script := toastCommand(Notification{Title: "Tom's <break>", Body: "a & b"})

	assert.Contains(t, script, "Tom''s &lt;break&gt;")
	assert.Contains(t, script, "a &amp; b")
	assert.Contains(t, script, "CreateToastNotifier('"+AppName+"')")
}
