package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/mmcdole/marquee/internal/domain"
)

// fakeRepo answers searches from a script. A query registered in gates
// blocks until its channel is closed so tests can order responses.
type fakeRepo struct {
	mu         sync.Mutex
	calls      []domain.SearchQuery
	lookups    []string
	pages      map[string]*domain.SearchPage
	errs       map[string]error
	gates      map[string]chan struct{}
	started    chan domain.SearchQuery
	details    map[string]*domain.MovieDetail
	lookupGate chan struct{}
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		pages:   make(map[string]*domain.SearchPage),
		errs:    make(map[string]error),
		gates:   make(map[string]chan struct{}),
		started: make(chan domain.SearchQuery, 16),
		details: make(map[string]*domain.MovieDetail),
	}
}

func (r *fakeRepo) Search(ctx context.Context, q domain.SearchQuery) (*domain.SearchPage, error) {
	r.mu.Lock()
	r.calls = append(r.calls, q)
	gate := r.gates[q.Term]
	page := r.pages[q.Term]
	err := r.errs[q.Term]
	r.mu.Unlock()

	r.started <- q

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if err != nil {
		return nil, err
	}
	if page == nil {
		return nil, &domain.ServiceError{Message: "Movie not found!"}
	}
	out := *page
	out.Page = max(q.Page, 1)
	return &out, nil
}

func (r *fakeRepo) Lookup(ctx context.Context, id string) (*domain.MovieDetail, error) {
	r.mu.Lock()
	r.lookups = append(r.lookups, id)
	gate := r.lookupGate
	d, ok := r.details[id]
	r.mu.Unlock()

	if gate != nil {
		<-gate
	}
	if !ok {
		return nil, &domain.ServiceError{Message: "Incorrect IMDb ID."}
	}
	return d, nil
}

func (r *fakeRepo) searchCalls() []domain.SearchQuery {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.SearchQuery(nil), r.calls...)
}

func (r *fakeRepo) lookupCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.lookups)
}

func movies(prefix string, n int) []domain.Movie {
	out := make([]domain.Movie, n)
	for i := range out {
		out[i] = domain.Movie{
			ID:    fmt.Sprintf("tt%s%02d", prefix, i),
			Title: fmt.Sprintf("%s %d", prefix, i),
			Year:  "2024",
			Type:  domain.MediaTypeMovie,
		}
	}
	return out
}

type toastRecorder struct {
	mu     sync.Mutex
	toasts []domain.Toast
}

func (t *toastRecorder) Notify(toast domain.Toast) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.toasts = append(t.toasts, toast)
}

func (t *toastRecorder) all() []domain.Toast {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]domain.Toast(nil), t.toasts...)
}
