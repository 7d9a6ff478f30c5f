package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/marquee/internal/domain"
)

// bridgeBuffer is large enough that timer callbacks fired from inside
// Update never block on a full channel
const bridgeBuffer = 64

// Bridge carries events produced off the update loop (timer callbacks,
// service notifications) into the Bubble Tea program. The model keeps one
// Wait command outstanding at all times.
type Bridge struct {
	ch    chan tea.Msg
	dirty chan struct{}
	done  chan struct{}
	once  sync.Once
}

// NewBridge creates an open bridge
func NewBridge() *Bridge {
	return &Bridge{
		ch:    make(chan tea.Msg, bridgeBuffer),
		dirty: make(chan struct{}, 1),
		done:  make(chan struct{}),
	}
}

// Send queues msg for the program. It blocks only when the buffer is full
// and returns early once the bridge is closed.
func (b *Bridge) Send(msg tea.Msg) {
	select {
	case b.ch <- msg:
	case <-b.done:
	}
}

// Signal marks controller state as changed. Signals coalesce: any number of
// calls before the program reads result in one stateChangedMsg.
func (b *Bridge) Signal() {
	select {
	case b.dirty <- struct{}{}:
	default:
	}
}

// Notify implements domain.Notifier by queueing the toast
func (b *Bridge) Notify(t domain.Toast) {
	b.Send(toastMsg{Toast: t})
}

// Wait returns a command that blocks until the next event. It yields nil
// after Close.
func (b *Bridge) Wait() tea.Cmd {
	return func() tea.Msg {
		select {
		case msg := <-b.ch:
			return msg
		case <-b.dirty:
			return stateChangedMsg{}
		case <-b.done:
			return nil
		}
	}
}

// Close releases blocked senders and waiters. Safe to call more than once.
func (b *Bridge) Close() {
	b.once.Do(func() { close(b.done) })
}
