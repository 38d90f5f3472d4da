package notify

import (
	"context"
	"errors"
	"sync"
)

// MockSender records every call and returns configured errors.
type MockSender struct {
	mu sync.Mutex

	VisualError     error
	SoundError      error
	visualAvailable bool
	soundAvailable  bool
	// block makes sends wait for ctx cancellation
	block bool

	VisualCalls []Notification
	SoundCalls  []string
}

// NewMockSender creates a new mock sender with default behavior (all available, no errors)
func NewMockSender() *MockSender {
	return &MockSender{
		visualAvailable: true,
		soundAvailable:  true,
	}
}

// WithVisualError configures the mock to return an error on SendVisual
func (m *MockSender) WithVisualError(err error) *MockSender {
	m.VisualError = err
	return m
}

// WithSoundError configures the mock to return an error on SendSound
func (m *MockSender) WithSoundError(err error) *MockSender {
	m.SoundError = err
	return m
}

// WithAvailability configures which outputs report as available
func (m *MockSender) WithAvailability(visual, sound bool) *MockSender {
	m.visualAvailable = visual
	m.soundAvailable = sound
	return m
}

// WithBlocking makes every send block until its context is done
func (m *MockSender) WithBlocking() *MockSender {
	m.block = true
	return m
}

func (m *MockSender) SendVisual(ctx context.Context, n Notification) error {
	m.mu.Lock()
	m.VisualCalls = append(m.VisualCalls, n)
	block, err := m.block, m.VisualError
	m.mu.Unlock()

	if block {
		<-ctx.Done()
		return ctx.Err()
	}
	return err
}

func (m *MockSender) SendSound(ctx context.Context, soundFile string) error {
	m.mu.Lock()
	m.SoundCalls = append(m.SoundCalls, soundFile)
	block, err := m.block, m.SoundError
	m.mu.Unlock()

	if block {
		<-ctx.Done()
		return ctx.Err()
	}
	return err
}

func (m *MockSender) VisualAvailable() bool { return m.visualAvailable }
func (m *MockSender) SoundAvailable() bool  { return m.soundAvailable }

// Counts returns the number of visual and sound sends
func (m *MockSender) Counts() (visual, sound int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.VisualCalls), len(m.SoundCalls)
}

// Common test errors
var (
	ErrMockVisual = errors.New("mock visual notification error")
	ErrMockSound  = errors.New("mock sound notification error")
)
