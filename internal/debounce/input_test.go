package debounce

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu  sync.Mutex
	got []Settled
}

func (r *recorder) emit(s Settled) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.got = append(r.got, s)
}

func (r *recorder) values() []Settled {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Settled(nil), r.got...)
}

func newInput(t *testing.T) (*Input, *ManualClock, *recorder) {
	t.Helper()
	clock := NewManualClock()
	rec := &recorder{}
	in := NewInput(clock, DefaultQuiet, rec.emit)
	t.Cleanup(in.Close)
	return in, clock, rec
}

func typeString(in *Input, clock *ManualClock, s string, gap time.Duration) {
	for i := 1; i <= len(s); i++ {
		in.Push(s[:i])
		clock.Advance(gap)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		in   string
		want Settled
	}{
		{"", Settled{Kind: Cleared}},
		{"   ", Settled{Kind: Cleared}},
		{" a ", Settled{Kind: TooShort, Value: "a"}},
		{"é", Settled{Kind: TooShort, Value: "é"}},
		{"ab", Settled{Kind: Query, Value: "ab"}},
		{"  star wars ", Settled{Kind: Query, Value: "star wars"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.in), "%q", tt.in)
	}
}

func TestInput_SettlesAfterQuietPeriod(t *testing.T) {
	in, clock, rec := newInput(t)

	typeString(in, clock, "batman", 100*time.Millisecond)
	assert.Empty(t, rec.values(), "keystrokes closer than the quiet period never settle")

	clock.Advance(200 * time.Millisecond)
	assert.Equal(t, []Settled{{Kind: Query, Value: "batman"}}, rec.values())
}

func TestInput_AtMostOnePerQuietWindow(t *testing.T) {
	in, clock, rec := newInput(t)

	in.Push("he")
	clock.Advance(299 * time.Millisecond)
	in.Push("hea")
	clock.Advance(299 * time.Millisecond)
	in.Push("heat")
	clock.Advance(300 * time.Millisecond)

	assert.Equal(t, []Settled{{Kind: Query, Value: "heat"}}, rec.values())
}

func TestInput_SuppressesConsecutiveDuplicates(t *testing.T) {
	in, clock, rec := newInput(t)

	in.Push("heat")
	clock.Advance(DefaultQuiet)
	in.Push("heat ")
	clock.Advance(DefaultQuiet)
	in.Push("heatx")
	in.Push("heat")
	clock.Advance(DefaultQuiet)

	assert.Equal(t, []Settled{{Kind: Query, Value: "heat"}}, rec.values())

	in.Push("alien")
	clock.Advance(DefaultQuiet)
	in.Push("heat")
	clock.Advance(DefaultQuiet)

	got := rec.values()
	require.Len(t, got, 3)
	assert.Equal(t, "alien", got[1].Value)
	assert.Equal(t, "heat", got[2].Value, "non-consecutive repeats are emitted")
}

func TestInput_EmptySettlesImmediately(t *testing.T) {
	in, clock, rec := newInput(t)

	in.Push("heat")
	clock.Advance(DefaultQuiet)
	in.Push("hea")
	in.Push("")

	assert.Equal(t, []Settled{
		{Kind: Query, Value: "heat"},
		{Kind: Cleared},
	}, rec.values())
	assert.Zero(t, clock.Pending(), "pending countdown was cancelled")

	in.Push("   ")
	assert.Len(t, rec.values(), 2, "repeated clear is suppressed")
}

func TestInput_InitialEmptyIsSuppressed(t *testing.T) {
	in, _, rec := newInput(t)
	in.Push("")
	assert.Empty(t, rec.values())
}

func TestInput_SingleCharacterUpdatesGuardOnly(t *testing.T) {
	in, clock, rec := newInput(t)

	in.Push("ab")
	clock.Advance(DefaultQuiet)
	in.Push("a")
	clock.Advance(DefaultQuiet)
	in.Push("ab")
	clock.Advance(DefaultQuiet)

	assert.Equal(t, []Settled{
		{Kind: Query, Value: "ab"},
		{Kind: Query, Value: "ab"},
	}, rec.values(), "the one-character settle is not forwarded but resets the guard")
}

func TestInput_Flush(t *testing.T) {
	in, _, rec := newInput(t)

	in.Push("dune")
	in.Flush()
	in.Flush()
	assert.Equal(t, []Settled{{Kind: Query, Value: "dune"}}, rec.values())
}

func TestInput_CloseCancelsPending(t *testing.T) {
	in, clock, rec := newInput(t)

	in.Push("heat")
	in.Close()
	clock.Advance(time.Second)
	in.Push("alien")
	clock.Advance(time.Second)

	assert.Empty(t, rec.values())
	assert.Zero(t, clock.Pending())
}

func TestInput_ClearWaitsForInFlightSettle(t *testing.T) {
	clock := NewManualClock()
	rec := &recorder{}
	entered := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once
	in := NewInput(clock, DefaultQuiet, func(s Settled) {
		first := false
		once.Do(func() { first = true })
		if first {
			close(entered)
			<-release
		}
		rec.emit(s)
	})
	t.Cleanup(in.Close)

	in.Push("ab")
	fired := make(chan struct{})
	go func() {
		clock.Advance(DefaultQuiet)
		close(fired)
	}()
	<-entered

	cleared := make(chan struct{})
	go func() {
		in.Push("")
		close(cleared)
	}()

	select {
	case <-cleared:
		t.Fatal("clear was emitted while the earlier settle was still emitting")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	<-fired
	<-cleared
	assert.Equal(t, []Settled{
		{Kind: Query, Value: "ab"},
		{Kind: Cleared},
	}, rec.values(), "the clear always lands last")
}
