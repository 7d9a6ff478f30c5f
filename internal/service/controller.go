package service

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/mmcdole/marquee/internal/domain"
)

// Fallback subjects for the latest listing
const (
	fallbackUnavailable = "movie"  // first request failed outright
	fallbackNoResults   = "action" // first request answered Response "False"
)

// DefaultSubjects are sampled for the startup listing
var DefaultSubjects = []string{
	"Avengers", "Batman", "Spider", "Marvel", "Star Wars", "Fast", "Mission", "John Wick",
}

// Controller owns the search and latest-listing sessions and is the only
// code that mutates them. Readers take a Snapshot.
type Controller struct {
	repo     domain.MovieRepository
	notifier domain.Notifier
	logger   *slog.Logger

	subjects []string
	pick     func(n int) int
	now      func() time.Time
	newID    func() string

	mu         sync.Mutex
	search     *SearchSession
	latest     ListingSession
	generation uint64 // bumped by every trigger and clear
	latestGen  uint64 // bumped by every latest-listing fetch

	listenMu  sync.Mutex
	listeners map[int]func()
	nextID    int
}

// ControllerOption customises a Controller
type ControllerOption func(*Controller)

// WithSubjects replaces the latest-listing candidate subjects
func WithSubjects(subjects []string) ControllerOption {
	return func(c *Controller) {
		if len(subjects) > 0 {
			c.subjects = append([]string(nil), subjects...)
		}
	}
}

// WithPicker replaces the random subject picker; pick(n) must return [0,n)
func WithPicker(pick func(n int) int) ControllerOption {
	return func(c *Controller) { c.pick = pick }
}

// WithClock replaces the wall clock used for the current year
func WithClock(now func() time.Time) ControllerOption {
	return func(c *Controller) { c.now = now }
}

// WithNotifier sets where error toasts are sent
func WithNotifier(n domain.Notifier) ControllerOption {
	return func(c *Controller) {
		if n != nil {
			c.notifier = n
		}
	}
}

// NewController creates a controller with no active search
func NewController(repo domain.MovieRepository, logger *slog.Logger, opts ...ControllerOption) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Controller{
		repo:      repo,
		notifier:  domain.NoOpNotifier{},
		logger:    logger.With("component", "controller"),
		subjects:  append([]string(nil), DefaultSubjects...),
		pick:      rand.IntN,
		now:       time.Now,
		newID:     func() string { return uuid.NewString() },
		listeners: make(map[int]func()),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Subscribe registers fn to run after every state change. The returned
// function removes it.
func (c *Controller) Subscribe(fn func()) func() {
	c.listenMu.Lock()
	defer c.listenMu.Unlock()
	id := c.nextID
	c.nextID++
	c.listeners[id] = fn
	return func() {
		c.listenMu.Lock()
		defer c.listenMu.Unlock()
		delete(c.listeners, id)
	}
}

func (c *Controller) changed() {
	c.listenMu.Lock()
	fns := make([]func(), 0, len(c.listeners))
	for _, fn := range c.listeners {
		fns = append(fns, fn)
	}
	c.listenMu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

func (c *Controller) fail(msg string) {
	c.notifier.Notify(domain.Toast{
		Title:       "Error",
		Description: msg,
		Severity:    domain.SeverityDestructive,
	})
}

// Snapshot returns a copy of the current state
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{
		Search: c.search.clone(),
		Latest: c.latest.clone(),
	}
}

// HandleQuery routes a settled query: long enough queries search page 1,
// empty ones clear the search, anything else is ignored.
func (c *Controller) HandleQuery(ctx context.Context, query string) error {
	q := strings.TrimSpace(query)
	switch n := utf8.RuneCountInString(q); {
	case n == 0:
		c.ClearSearch()
		return nil
	case n < MinQueryLength:
		return nil
	default:
		return c.TriggerSearch(ctx, q, 1)
	}
}

// TriggerSearch runs a search for query and page and blocks until the
// service answers. Queries shorter than MinQueryLength are ignored.
// Loading is visible to readers before the request is issued. A response
// for a search that has since been superseded or cleared is discarded.
func (c *Controller) TriggerSearch(ctx context.Context, query string, page int) error {
	q := strings.TrimSpace(query)
	if utf8.RuneCountInString(q) < MinQueryLength {
		return nil
	}
	if page < 1 {
		return domain.ErrInvalidPage
	}

	c.mu.Lock()
	c.generation++
	gen := c.generation
	next := &SearchSession{
		Query:         q,
		Page:          page,
		RequestedPage: page,
		Loading:       true,
		RequestID:     c.newID(),
	}
	if prev := c.search; prev != nil {
		next.Results = prev.Results
		// Paging position only carries over within the same query
		if prev.Query == q {
			next.Page = prev.Page
			next.TotalResults = prev.TotalResults
			next.HasMorePages = prev.HasMorePages
		}
	}
	c.search = next
	requestID := next.RequestID
	c.mu.Unlock()
	c.changed()

	logger := c.logger.With("query", q, "page", page, "request_id", requestID)
	logger.Debug("search triggered", "generation", gen)

	result, err := c.repo.Search(ctx, domain.SearchQuery{Term: q, Page: page})

	c.mu.Lock()
	if gen != c.generation {
		c.mu.Unlock()
		logger.Debug("discarding stale search response", "generation", gen)
		return nil
	}

	if err != nil {
		msg := domain.UserMessage(err)
		c.search.Loading = false
		c.search.Error = msg
		c.mu.Unlock()

		logger.Warn("search failed", "error", err)
		if !errors.Is(err, context.Canceled) {
			c.fail(msg)
		}
		c.changed()
		return err
	}

	c.search = &SearchSession{
		Query:         q,
		Page:          page,
		RequestedPage: page,
		Results:       visible(result.Movies),
		TotalResults:  result.TotalResults,
		HasMorePages:  page*UpstreamPageSize < result.TotalResults,
		RequestID:     requestID,
	}
	c.mu.Unlock()

	logger.Info("search complete", "results", len(result.Movies), "total", result.TotalResults)
	c.changed()
	return nil
}

// ClearSearch discards the active search and any in-flight response for it.
// It reports whether there was anything to clear.
func (c *Controller) ClearSearch() bool {
	c.mu.Lock()
	if c.search == nil {
		c.mu.Unlock()
		return false
	}
	c.search = nil
	c.generation++
	c.mu.Unlock()

	c.logger.Debug("search cleared")
	c.changed()
	return true
}

// ChangePage re-runs the active query for another page
func (c *Controller) ChangePage(ctx context.Context, page int) error {
	if page < 1 {
		return domain.ErrInvalidPage
	}

	c.mu.Lock()
	if c.search == nil {
		c.mu.Unlock()
		return domain.ErrNoActiveSearch
	}
	query := c.search.Query
	c.mu.Unlock()

	return c.TriggerSearch(ctx, query, page)
}

// FetchLatestListing fills the latest listing with titles from the current
// year for a randomly chosen subject. If that fails, one broader fallback
// query is tried before the error is surfaced.
func (c *Controller) FetchLatestListing(ctx context.Context) error {
	subject := c.subjects[c.pick(len(c.subjects))]
	year := c.now().Year()

	c.mu.Lock()
	c.latestGen++
	gen := c.latestGen
	c.latest.Subject = subject
	c.latest.Year = year
	c.latest.Loading = true
	c.latest.Error = ""
	c.mu.Unlock()
	c.changed()

	logger := c.logger.With("subject", subject, "year", year)

	page, err := c.repo.Search(ctx, domain.SearchQuery{Term: subject, Year: year})
	if err != nil && ctx.Err() == nil {
		fallback := fallbackUnavailable
		if errors.Is(err, domain.ErrNoResults) {
			fallback = fallbackNoResults
		}
		logger.Warn("latest listing failed, trying fallback", "fallback", fallback, "error", err)

		subject = fallback
		page, err = c.repo.Search(ctx, domain.SearchQuery{Term: fallback, Year: year})
	}

	c.mu.Lock()
	if gen != c.latestGen {
		c.mu.Unlock()
		logger.Debug("discarding stale latest listing", "generation", gen)
		return nil
	}

	if err != nil {
		msg := domain.UserMessage(err)
		c.latest.Loading = false
		c.latest.Error = msg
		c.mu.Unlock()

		logger.Error("latest listing failed", "error", err)
		if !errors.Is(err, context.Canceled) {
			c.fail(msg)
		}
		c.changed()
		return err
	}

	c.latest = ListingSession{
		Subject: subject,
		Year:    year,
		Results: visible(page.Movies),
	}
	c.mu.Unlock()

	logger.Info("latest listing loaded", "results", len(page.Movies), "used", subject)
	c.changed()
	return nil
}
