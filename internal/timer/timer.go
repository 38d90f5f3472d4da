// Package timer implements the Pomodoro phase timer: a countdown that
// alternates between Work and Break and announces every phase change.
//
// A Timer is driven from a single event loop. Commands (Toggle, Reset,
// Switch) and ticks must not be issued concurrently; the Timer holds no
// locks. Ticks are accepted only when they carry the clock handle the Timer
// currently holds, so a tick queued before a stop can never change state.
package timer

import (
	"time"

	"github.com/tomatobell/pomodoro/internal/clock"
	"go.uber.org/zap"
)

// TickInterval is the countdown resolution.
const TickInterval = time.Second

// Notifier announces phase changes. Implementations must not block the
// caller; delivery failures are theirs to log.
type Notifier interface {
	Notify(title, body string)
}

// Snapshot is a read-only copy of the timer state for rendering.
type Snapshot struct {
	Phase     Phase
	Remaining int
	Running   bool
}

// Status returns the composite state of the snapshot.
func (s Snapshot) Status() Status {
	return statusOf(s.Phase, s.Running)
}

// Timer is the phase timer state machine.
type Timer struct {
	clock    clock.Source
	notifier Notifier
	logger   *zap.Logger

	phase     Phase
	remaining int
	// sub is the held clock subscription; running is sub != 0.
	sub clock.Handle
}

// New creates a stopped timer at the start of a Work phase.
// A nil notifier or logger disables that concern.
func New(src clock.Source, notifier Notifier, logger *zap.Logger) *Timer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Timer{
		clock:     src,
		notifier:  notifier,
		logger:    logger,
		phase:     Work,
		remaining: Work.Duration(),
	}
}

// Phase returns the current phase.
func (t *Timer) Phase() Phase { return t.phase }

// Remaining returns the seconds left in the current phase.
func (t *Timer) Remaining() int { return t.remaining }

// Running reports whether the countdown is active.
func (t *Timer) Running() bool { return t.sub != 0 }

// Status returns the composite phase × running state.
func (t *Timer) Status() Status { return statusOf(t.phase, t.Running()) }

// Snapshot returns a copy of the observable state.
func (t *Timer) Snapshot() Snapshot {
	return Snapshot{Phase: t.phase, Remaining: t.remaining, Running: t.Running()}
}

// Handle returns the clock subscription the timer holds, or zero.
func (t *Timer) Handle() clock.Handle { return t.sub }

// Toggle starts a stopped timer and stops a running one. The remaining time
// and phase are untouched.
func (t *Timer) Toggle() {
	if t.Running() {
		t.release()
		t.logger.Debug("timer stopped", t.fields()...)
		return
	}
	t.sub = t.clock.Subscribe(TickInterval)
	t.logger.Debug("timer started", t.fields()...)
}

// Tick applies one elapsed second. Ticks for a handle other than the one
// held are ignored and reported as not applied. Reaching zero stops the
// countdown and switches phase.
func (t *Timer) Tick(h clock.Handle) bool {
	if h == 0 || h != t.sub {
		t.logger.Debug("stale tick ignored", zap.Uint64("handle", uint64(h)), zap.Uint64("held", uint64(t.sub)))
		return false
	}

	if t.remaining > 0 {
		t.remaining--
	}
	if t.remaining == 0 {
		t.release()
		t.logger.Info("phase complete", zap.Stringer("phase", t.phase))
		t.switchPhase()
	}
	return true
}

// Reset stops the countdown and refills the current phase.
func (t *Timer) Reset() {
	t.release()
	t.remaining = t.phase.Duration()
	t.logger.Debug("timer reset", t.fields()...)
}

// Switch stops the countdown and moves to the other phase.
func (t *Timer) Switch() {
	t.release()
	t.logger.Info("phase switched manually", zap.Stringer("from", t.phase))
	t.switchPhase()
}

// Close releases the clock subscription, if any.
func (t *Timer) Close() {
	t.release()
}

func (t *Timer) release() {
	if t.sub == 0 {
		return
	}
	t.clock.Unsubscribe(t.sub)
	t.sub = 0
}

func (t *Timer) switchPhase() {
	t.phase = t.phase.Next()
	t.remaining = t.phase.Duration()
	t.logger.Debug("phase started", t.fields()...)

	if t.notifier != nil {
		msg := t.phase.StartMessage()
		t.notifier.Notify(msg.Title, msg.Body)
	}
}

func (t *Timer) fields() []zap.Field {
	return []zap.Field{
		zap.Stringer("phase", t.phase),
		zap.Int("remaining", t.remaining),
		zap.Bool("running", t.Running()),
	}
}
