package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/marquee/internal/service"
)

// Command factories for async operations. Controller methods block until
// the service answers, so each runs in its own command goroutine; state
// changes reach the model through the bridge.

// SearchCmd routes a settled query to the controller
func SearchCmd(ctx context.Context, ctrl *service.Controller, query string) tea.Cmd {
	return func() tea.Msg {
		err := ctrl.HandleQuery(ctx, query)
		return searchDoneMsg{Query: query, Page: 1, Err: err}
	}
}

// ChangePageCmd re-runs the active query for page
func ChangePageCmd(ctx context.Context, ctrl *service.Controller, page int) tea.Cmd {
	return func() tea.Msg {
		err := ctrl.ChangePage(ctx, page)
		return searchDoneMsg{Page: page, Err: err}
	}
}

// FetchLatestCmd loads the latest listing
func FetchLatestCmd(ctx context.Context, ctrl *service.Controller) tea.Cmd {
	return func() tea.Msg {
		return latestLoadedMsg{Err: ctrl.FetchLatestListing(ctx)}
	}
}

// LookupDetailCmd fetches the full record for id
func LookupDetailCmd(ctx context.Context, details *service.DetailService, id string) tea.Cmd {
	return func() tea.Msg {
		d, err := details.Lookup(ctx, id)
		return detailLoadedMsg{ID: id, Detail: d, Err: err}
	}
}

// ToastExpiryCmd dismisses toast seq after d
func ToastExpiryCmd(d time.Duration, seq int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return toastExpiredMsg{Seq: seq}
	})
}

// CarouselTickCmd advances the carousel after d
func CarouselTickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return carouselTickMsg{}
	})
}
