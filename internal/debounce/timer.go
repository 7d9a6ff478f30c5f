package debounce

import (
	"sync"
	"time"
)

// Timer is a cancellable single-shot timer owned by one component.
// A callback whose countdown was cancelled or restarted never runs, even if
// the underlying clock already fired it. After Stop the timer is inert.
type Timer struct {
	clock Clock

	mu      sync.Mutex
	fn      func()
	handle  Stopper
	gen     uint64
	stopped bool
}

// NewTimer creates an idle timer. A nil clock uses the system clock.
func NewTimer(clock Clock) *Timer {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Timer{clock: clock}
}

// Start schedules fn to run after d, replacing any pending countdown
func (t *Timer) Start(d time.Duration, fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped {
		return
	}
	t.fn = fn
	t.scheduleLocked(d)
}

// Reset restarts the countdown for the most recently started callback
func (t *Timer) Reset(d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped || t.fn == nil {
		return
	}
	t.scheduleLocked(d)
}

// Cancel drops the pending countdown. It reports whether one was pending.
func (t *Timer) Cancel() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cancelLocked()
}

// Stop cancels the pending countdown and disables the timer for good
func (t *Timer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cancelLocked()
	t.stopped = true
	t.fn = nil
}

// Pending reports whether a countdown is running
func (t *Timer) Pending() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.handle != nil
}

func (t *Timer) scheduleLocked(d time.Duration) {
	t.cancelLocked()
	gen := t.gen
	t.handle = t.clock.AfterFunc(d, func() { t.fire(gen) })
}

func (t *Timer) cancelLocked() bool {
	t.gen++
	if t.handle == nil {
		return false
	}
	t.handle.Stop()
	t.handle = nil
	return true
}

func (t *Timer) fire(gen uint64) {
	t.mu.Lock()
	if t.stopped || gen != t.gen {
		t.mu.Unlock()
		return
	}
	t.handle = nil
	fn := t.fn
	t.mu.Unlock()

	if fn != nil {
		fn()
	}
}
