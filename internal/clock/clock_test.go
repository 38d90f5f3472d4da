package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTicker_DeliversTicksWithHandle(t *testing.T) {
	t.Parallel()
	tk := NewTicker()
	defer tk.Close()

	h := tk.Subscribe(5 * time.Millisecond)
	require.NotZero(t, h)

	select {
	case tick := <-tk.Ticks():
		assert.Equal(t, h, tick.Handle)
		assert.False(t, tick.At.IsZero())
	case <-time.After(2 * time.Second):
		t.Fatal("no tick delivered")
	}
}

func TestTicker_HandlesAreNotReused(t *testing.T) {
	t.Parallel()
	tk := NewTicker()
	defer tk.Close()

	h1 := tk.Subscribe(time.Hour)
	tk.Unsubscribe(h1)
	h2 := tk.Subscribe(time.Hour)

	assert.NotEqual(t, h1, h2)
	assert.Equal(t, 1, tk.Active())
}

func TestTicker_UnsubscribeStopsDelivery(t *testing.T) {
	t.Parallel()
	tk := NewTicker()
	defer tk.Close()

	h := tk.Subscribe(2 * time.Millisecond)
	<-tk.Ticks()
	tk.Unsubscribe(h)
	assert.Equal(t, 0, tk.Active())

	// Drain anything queued before the stop took effect.
	drain := time.After(20 * time.Millisecond)
	for done := false; !done; {
		select {
		case <-tk.Ticks():
		case <-drain:
			done = true
		}
	}

	select {
	case tick := <-tk.Ticks():
		t.Fatalf("tick delivered after unsubscribe: %+v", tick)
	case <-time.After(30 * time.Millisecond):
	}
}

func TestTicker_UnsubscribeUnknownHandle(t *testing.T) {
	t.Parallel()
	tk := NewTicker()
	defer tk.Close()

	assert.NotPanics(t, func() {
		tk.Unsubscribe(0)
		tk.Unsubscribe(42)
	})
}

func TestTicker_CloseStopsAll(t *testing.T) {
	t.Parallel()
	tk := NewTicker()

	tk.Subscribe(time.Millisecond)
	tk.Subscribe(time.Millisecond)
	tk.Close()

	assert.Equal(t, 0, tk.Active())
}

func TestTicker_CloseClosesTicks(t *testing.T) {
	t.Parallel()
	tk := NewTicker()
	tk.Subscribe(time.Millisecond)
	tk.Close()

	// At most the buffered tick remains, then the channel reports closed.
	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-tk.Ticks():
			if !ok {
				assert.NotPanics(t, tk.Close, "second Close")
				h := tk.Subscribe(time.Millisecond)
				assert.NotZero(t, h)
				assert.Equal(t, 0, tk.Active(), "no goroutine after Close")
				return
			}
		case <-deadline:
			t.Fatal("ticks channel not closed")
		}
	}
}

func TestManual(t *testing.T) {
	t.Parallel()
	start := time.Date(2025, 2, 15, 9, 0, 0, 0, time.UTC)
	m := NewManual(start)

	_, ok := m.Fire()
	assert.False(t, ok, "no subscription yet")

	h := m.Subscribe(time.Second)
	tick, ok := m.Fire()
	require.True(t, ok)
	assert.Equal(t, h, tick.Handle)
	assert.Equal(t, start.Add(time.Second), tick.At)

	m.Unsubscribe(h + 1)
	assert.Equal(t, h, m.Current(), "foreign handle must not release the subscription")

	m.Unsubscribe(h)
	assert.Zero(t, m.Current())
	_, ok = m.Fire()
	assert.False(t, ok)

	subs, unsubs := m.Counts()
	assert.Equal(t, 1, subs)
	assert.Equal(t, 1, unsubs)
}
