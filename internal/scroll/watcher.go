package scroll

import (
	"sync"
	"time"

	"github.com/mmcdole/marquee/internal/debounce"
)

// DefaultQuiet coalesces a burst of scroll events
const DefaultQuiet = 50 * time.Millisecond

// Watcher feeds a Machine from raw scroll events. Events are coalesced and
// only the last offset of a burst is evaluated, once the burst has been
// quiet for the configured period. onChange runs on the clock's goroutine.
type Watcher struct {
	quiet    time.Duration
	timer    *debounce.Timer
	onChange func(State)

	mu      sync.Mutex
	machine *Machine
	latest  int
	closed  bool
}

// NewWatcher creates a watcher with its own timer
func NewWatcher(clock debounce.Clock, quiet time.Duration, th Thresholds, onChange func(State)) *Watcher {
	if quiet <= 0 {
		quiet = DefaultQuiet
	}
	return &Watcher{
		quiet:    quiet,
		timer:    debounce.NewTimer(clock),
		onChange: onChange,
		machine:  NewMachine(th),
	}
}

// Observe records a raw scroll offset
func (w *Watcher) Observe(offset int) {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.latest = offset
	w.mu.Unlock()

	w.timer.Start(w.quiet, w.evaluate)
}

// State returns the current header state
func (w *Watcher) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.machine.State()
}

// Close cancels any pending evaluation
func (w *Watcher) Close() {
	w.mu.Lock()
	w.closed = true
	w.mu.Unlock()
	w.timer.Stop()
}

func (w *Watcher) evaluate() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	state, changed := w.machine.Evaluate(w.latest)
	w.mu.Unlock()

	if changed && w.onChange != nil {
		w.onChange(state)
	}
}
