package debounce

import (
	"strings"
	"sync"
	"time"
	"unicode/utf8"
)

// DefaultQuiet is the input quiet period before a value settles
const DefaultQuiet = 300 * time.Millisecond

// MinQueryLength is the shortest trimmed query forwarded to search
const MinQueryLength = 2

// Kind classifies a settled value
type Kind int

const (
	// Cleared means the trimmed input is empty
	Cleared Kind = iota
	// TooShort means the trimmed input is shorter than MinQueryLength
	TooShort
	// Query means the trimmed input is long enough to search for
	Query
)

func (k Kind) String() string {
	switch k {
	case Cleared:
		return "cleared"
	case TooShort:
		return "too-short"
	case Query:
		return "query"
	default:
		return "unknown"
	}
}

// Settled is a value confirmed not to change within the quiet period
type Settled struct {
	Kind  Kind
	Value string // trimmed input
}

// Classify trims raw input and decides what it settles to
func Classify(raw string) Settled {
	v := strings.TrimSpace(raw)
	switch n := utf8.RuneCountInString(v); {
	case n == 0:
		return Settled{Kind: Cleared}
	case n < MinQueryLength:
		return Settled{Kind: TooShort, Value: v}
	default:
		return Settled{Kind: Query, Value: v}
	}
}

// Input turns a stream of raw text values into settled values.
//
// Every Push restarts the quiet-period countdown; only the value present
// when the countdown elapses settles. Empty input settles at once. A settled
// value equal to the previous one is suppressed, and TooShort values update
// that guard without being emitted.
type Input struct {
	quiet time.Duration
	emit  func(Settled)
	timer *Timer

	// settleMu orders settles so emissions follow the order values settled in
	settleMu sync.Mutex

	mu     sync.Mutex
	latest string
	last   string // trimmed value of the previous settle
	closed bool
}

// NewInput creates a debouncer that calls emit for every forwarded settle.
// emit runs on the clock's goroutine.
func NewInput(clock Clock, quiet time.Duration, emit func(Settled)) *Input {
	if quiet <= 0 {
		quiet = DefaultQuiet
	}
	return &Input{
		quiet: quiet,
		emit:  emit,
		timer: NewTimer(clock),
	}
}

// Push records a raw input value and restarts the countdown
func (in *Input) Push(raw string) {
	in.mu.Lock()
	if in.closed {
		in.mu.Unlock()
		return
	}
	in.latest = raw
	in.mu.Unlock()

	if Classify(raw).Kind == Cleared {
		in.timer.Cancel()
		in.settle()
		return
	}
	in.timer.Start(in.quiet, in.settle)
}

// Flush settles the latest value immediately, as if the countdown elapsed
func (in *Input) Flush() {
	if in.timer.Cancel() {
		in.settle()
	}
}

// Close cancels any pending countdown. Nothing is emitted afterwards.
func (in *Input) Close() {
	in.mu.Lock()
	in.closed = true
	in.mu.Unlock()
	in.timer.Stop()
}

func (in *Input) settle() {
	in.settleMu.Lock()
	defer in.settleMu.Unlock()

	in.mu.Lock()
	if in.closed {
		in.mu.Unlock()
		return
	}
	s := Classify(in.latest)
	if s.Value == in.last {
		in.mu.Unlock()
		return
	}
	in.last = s.Value
	in.mu.Unlock()

	if s.Kind == TooShort || in.emit == nil {
		return
	}
	in.emit(s)
}
