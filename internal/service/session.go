package service

import (
	"github.com/mmcdole/marquee/internal/domain"
)

const (
	// PageSize is the most results any session exposes
	PageSize = 8

	// UpstreamPageSize is how many results the service pages by
	UpstreamPageSize = 10

	// MinQueryLength is the shortest trimmed query that reaches the network
	MinQueryLength = 2
)

// SearchSession is the active search. There is at most one; a new query or
// page replaces it in place.
type SearchSession struct {
	Query         string
	Page          int // page whose results are in Results
	RequestedPage int // page of the in-flight request while Loading
	Results       []domain.Movie
	TotalResults  int
	HasMorePages  bool
	Loading       bool
	Error         string
	RequestID     string
}

// TotalPages returns the number of upstream pages for the query
func (s SearchSession) TotalPages() int {
	if s.TotalResults <= 0 {
		return 0
	}
	return (s.TotalResults + UpstreamPageSize - 1) / UpstreamPageSize
}

// ListingSession is the startup "latest" listing. It is created once and
// never affected by searches.
type ListingSession struct {
	Subject string
	Year    int
	Results []domain.Movie
	Loading bool
	Error   string
}

// Snapshot is a read-only copy of controller state
type Snapshot struct {
	Search *SearchSession // nil when no search is active
	Latest ListingSession
}

// Query returns the active query, or "" when no search is active
func (s Snapshot) Query() string {
	if s.Search == nil {
		return ""
	}
	return s.Search.Query
}

func (s *SearchSession) clone() *SearchSession {
	if s == nil {
		return nil
	}
	c := *s
	c.Results = cloneMovies(s.Results)
	return &c
}

func (l ListingSession) clone() ListingSession {
	l.Results = cloneMovies(l.Results)
	return l
}

func cloneMovies(in []domain.Movie) []domain.Movie {
	if in == nil {
		return nil
	}
	out := make([]domain.Movie, len(in))
	copy(out, in)
	return out
}

// visible truncates to PageSize and drops repeated identifiers so the
// grid can key on them
func visible(in []domain.Movie) []domain.Movie {
	out := make([]domain.Movie, 0, min(len(in), PageSize))
	seen := make(map[string]bool, len(in))
	for _, m := range in {
		if len(out) == PageSize {
			break
		}
		if seen[m.ID] {
			continue
		}
		seen[m.ID] = true
		out = append(out, m)
	}
	return out
}
