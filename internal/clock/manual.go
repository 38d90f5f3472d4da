package clock

import (
	"sync"
	"time"
)

// Manual is a Source that only ticks when told to. Tests and scripted runs
// use it to drive the timer deterministically.
type Manual struct {
	mu           sync.Mutex
	last         Handle
	current      Handle
	interval     time.Duration
	now          time.Time
	subscribes   int
	unsubscribes int
}

// NewManual creates a Manual clock reading start. Each Fire advances it by
// the subscription interval, so the first tick is stamped start+interval.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

// Subscribe replaces any current subscription with a new one.
func (m *Manual) Subscribe(interval time.Duration) Handle {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.last++
	m.current = m.last
	m.interval = interval
	m.subscribes++
	return m.current
}

// Unsubscribe releases h if it is the current subscription.
func (m *Manual) Unsubscribe(h Handle) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if h != 0 && h == m.current {
		m.current = 0
		m.unsubscribes++
	}
}

// Fire advances the clock by one interval and returns the tick for the
// current subscription. ok is false when nothing is subscribed.
func (m *Manual) Fire() (tick Tick, ok bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current == 0 {
		return Tick{}, false
	}
	m.now = m.now.Add(m.interval)
	return Tick{Handle: m.current, At: m.now}, true
}

// Current returns the active handle, or zero.
func (m *Manual) Current() Handle {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Counts returns how many times Subscribe and Unsubscribe took effect.
func (m *Manual) Counts() (subscribes, unsubscribes int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.subscribes, m.unsubscribes
}
