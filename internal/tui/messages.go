package tui

import (
	"github.com/mmcdole/marquee/internal/debounce"
	"github.com/mmcdole/marquee/internal/domain"
	"github.com/mmcdole/marquee/internal/scroll"
)

// Message types for the TUI

// bridgedMsg is implemented by messages delivered through the Bridge.
// Handling one re-arms the bridge Wait command.
type bridgedMsg interface {
	bridged()
}

// stateChangedMsg signals that controller state changed
type stateChangedMsg struct{}

// querySettledMsg carries a debounced search input value
type querySettledMsg struct {
	Settled debounce.Settled
}

// headerChangedMsg carries a scroll hysteresis transition
type headerChangedMsg struct {
	State scroll.State
}

// toastMsg carries a notification raised by a service
type toastMsg struct {
	Toast domain.Toast
}

func (stateChangedMsg) bridged()  {}
func (querySettledMsg) bridged()  {}
func (headerChangedMsg) bridged() {}
func (toastMsg) bridged()         {}

// searchDoneMsg signals that a triggered search returned
type searchDoneMsg struct {
	Query string
	Page  int
	Err   error
}

// latestLoadedMsg signals that the latest listing request returned
type latestLoadedMsg struct {
	Err error
}

// detailLoadedMsg carries the result of a detail lookup
type detailLoadedMsg struct {
	ID     string
	Detail *domain.MovieDetail
	Err    error
}

// toastExpiredMsg dismisses the toast with the given sequence number
type toastExpiredMsg struct {
	Seq int
}

// carouselTickMsg advances the carousel
type carouselTickMsg struct{}
