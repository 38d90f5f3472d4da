// Package clock provides periodic tick subscriptions for the phase timer.
//
// A subscription is identified by a Handle. Handles are never reused, so a
// consumer that remembers the handle it holds can reject ticks that were
// queued for a subscription it has since released.
package clock

import (
	"sync"
	"time"
)

// Handle identifies a single tick subscription. The zero Handle means
// "no subscription".
type Handle uint64

// Tick is one elapsed-interval event for a subscription.
type Tick struct {
	Handle Handle
	At     time.Time
}

// Source hands out tick subscriptions.
type Source interface {
	// Subscribe starts delivering ticks every interval and returns the
	// handle stamped on each of them.
	Subscribe(interval time.Duration) Handle

	// Unsubscribe stops delivery for h. Unknown or zero handles are ignored.
	Unsubscribe(h Handle)
}

// Ticker is a Source backed by time.Ticker. All subscriptions deliver on the
// single channel returned by Ticks, which the host event loop drains.
type Ticker struct {
	mu     sync.Mutex
	last   Handle
	active map[Handle]chan struct{}
	out    chan Tick
	wg     sync.WaitGroup
	closed bool
}

// NewTicker creates a Ticker with no active subscriptions.
func NewTicker() *Ticker {
	return &Ticker{
		active: make(map[Handle]chan struct{}),
		out:    make(chan Tick, 1),
	}
}

// Ticks returns the channel on which ticks for every subscription arrive.
func (t *Ticker) Ticks() <-chan Tick {
	return t.out
}

// Subscribe starts a ticker goroutine for interval and returns its handle.
// After Close the handle is still fresh but never ticks.
func (t *Ticker) Subscribe(interval time.Duration) Handle {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.last++
	h := t.last
	if t.closed {
		return h
	}
	stop := make(chan struct{})
	t.active[h] = stop

	t.wg.Add(1)
	go t.run(h, interval, stop)
	return h
}

// Unsubscribe stops the goroutine for h.
func (t *Ticker) Unsubscribe(h Handle) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if stop, ok := t.active[h]; ok {
		close(stop)
		delete(t.active, h)
	}
}

// Active reports the number of live subscriptions.
func (t *Ticker) Active() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.active)
}

// Close stops every subscription, waits for the goroutines to exit and then
// closes the Ticks channel. Calling Close again is a no-op.
func (t *Ticker) Close() {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return
	}
	t.closed = true
	for h, stop := range t.active {
		close(stop)
		delete(t.active, h)
	}
	t.mu.Unlock()
	t.wg.Wait()
	close(t.out)
}

func (t *Ticker) run(h Handle, interval time.Duration, stop <-chan struct{}) {
	defer t.wg.Done()

	tk := time.NewTicker(interval)
	defer tk.Stop()

	for {
		select {
		case <-stop:
			return
		case now := <-tk.C:
			select {
			case t.out <- Tick{Handle: h, At: now}:
			case <-stop:
				return
			}
		}
	}
}
