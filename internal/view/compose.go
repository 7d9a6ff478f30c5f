// Package view decides what the results area shows. It holds no state:
// the same input always yields the same layout.
package view

import (
	"fmt"

	"github.com/mmcdole/marquee/internal/domain"
	"github.com/mmcdole/marquee/internal/scroll"
	"github.com/mmcdole/marquee/internal/service"
)

// Branch is the single render branch chosen for the results area
type Branch int

const (
	BranchLoading Branch = iota
	BranchError
	BranchResults
	BranchWelcome
	BranchNoMatches
)

func (b Branch) String() string {
	switch b {
	case BranchLoading:
		return "loading"
	case BranchError:
		return "error"
	case BranchResults:
		return "results"
	case BranchWelcome:
		return "welcome"
	case BranchNoMatches:
		return "no-matches"
	default:
		return "unknown"
	}
}

const (
	// SkeletonCount placeholders are shown while loading
	SkeletonCount = 8

	// CarouselSize is how many latest titles the carousel features
	CarouselSize = 5
)

// Input is everything the composer reads
type Input struct {
	State  service.Snapshot
	Header scroll.State
	Ready  bool // the surface has been sized and mounted
}

// Pagination describes the page controls
type Pagination struct {
	Current    int
	TotalPages int
	HasPrev    bool
	HasMore    bool
	Total      int
}

// Header describes the header layout
type Header struct {
	Compact     bool
	ShowTagline bool
}

// Layout is the derived presentation
type Layout struct {
	Ready  bool
	Header Header
	Branch Branch

	Query   string
	Heading string
	Badge   string

	Skeletons int

	Error     string
	ErrorHint string

	Summary   string
	TotalLine string
	Items     []domain.Movie
	Carousel  []domain.Movie

	ShowPagination bool
	Pagination     Pagination

	EmptyTitle string
	EmptyBody  string
	EmptyHint  string
}

// Compose resolves the layout for in. Branches are chosen in priority
// order: loading, error (only with an active query), results, welcome,
// no matches.
func Compose(in Input) Layout {
	query := in.State.Query()

	layout := Layout{
		Ready: in.Ready,
		Header: Header{
			Compact:     in.Header == scroll.Compact,
			ShowTagline: in.Header != scroll.Compact,
		},
		Query: query,
	}

	var (
		results []domain.Movie
		loading bool
		errMsg  string
	)
	if query != "" {
		s := in.State.Search
		results, loading, errMsg = s.Results, s.Loading, s.Error
		layout.Heading = fmt.Sprintf("Search Results for %q", query)
	} else {
		l := in.State.Latest
		results, loading, errMsg = l.Results, l.Loading, l.Error
		layout.Heading = "Latest Movies"
		layout.Badge = "Recently Released"
	}

	switch {
	case loading:
		layout.Branch = BranchLoading
		layout.Skeletons = SkeletonCount

	case errMsg != "" && query != "":
		layout.Branch = BranchError
		layout.Error = errMsg
		layout.ErrorHint = "Try searching with different keywords or check your spelling."

	case len(results) > 0:
		layout.Branch = BranchResults
		layout.Items = results
		if query == "" {
			layout.Carousel = results[:min(len(results), CarouselSize)]
			break
		}
		s := in.State.Search
		layout.Summary = fmt.Sprintf("Showing %d results for %q", len(results), query)
		if s.TotalResults > 0 {
			layout.TotalLine = fmt.Sprintf("Found %d total results", s.TotalResults)
		}
		layout.ShowPagination = true
		layout.Pagination = Pagination{
			Current:    s.Page,
			TotalPages: s.TotalPages(),
			HasPrev:    s.Page > 1,
			HasMore:    s.HasMorePages,
			Total:      s.TotalResults,
		}

	case query == "":
		layout.Branch = BranchWelcome
		layout.EmptyTitle = "Welcome to Movie Search"
		layout.EmptyBody = "Search for your favorite movies or browse the latest releases"
		layout.EmptyHint = fmt.Sprintf("Enter at least %d characters to search", service.MinQueryLength)

	default:
		layout.Branch = BranchNoMatches
		layout.EmptyTitle = "No movies found"
		layout.EmptyBody = "Try searching with different keywords"
	}

	return layout
}
