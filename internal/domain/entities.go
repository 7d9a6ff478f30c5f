package domain

import (
	"fmt"
	"strings"
)

// MediaType distinguishes the kinds of titles the metadata service returns
type MediaType string

const (
	MediaTypeMovie   MediaType = "movie"
	MediaTypeSeries  MediaType = "series"
	MediaTypeEpisode MediaType = "episode"
	MediaTypeGame    MediaType = "game"
)

// Label returns a short display label for the media type
func (t MediaType) Label() string {
	switch t {
	case MediaTypeMovie:
		return "Movie"
	case MediaTypeSeries:
		return "Series"
	case MediaTypeEpisode:
		return "Episode"
	case MediaTypeGame:
		return "Game"
	default:
		return "Title"
	}
}

// Movie is a search result summary. Values are never mutated after mapping.
type Movie struct {
	ID     string    // IMDb identifier, unique per title
	Title  string    // Display title
	Year   string    // Release year; series may carry a range such as "2019–2022"
	Poster string    // Poster image URL, empty when the service has none
	Type   MediaType // movie, series, episode or game
}

// HasPoster reports whether a poster URL is available
func (m Movie) HasPoster() bool {
	return m.Poster != ""
}

// DisplayTitle returns the title with its year, e.g. "Heat (1995)"
func (m Movie) DisplayTitle() string {
	if m.Year == "" {
		return m.Title
	}
	return fmt.Sprintf("%s (%s)", m.Title, m.Year)
}

// Rating is a single critic or audience score attached to a detail lookup
type Rating struct {
	Source string
	Value  string
}

// MovieDetail is the full metadata record returned by a detail lookup
type MovieDetail struct {
	Movie

	Rated      string
	Released   string
	Runtime    string
	Genre      string
	Director   string
	Writer     string
	Actors     string
	Plot       string // Full plot
	Language   string
	Country    string
	Awards     string
	Ratings    []Rating
	Metascore  string
	IMDbRating string
	IMDbVotes  string
	BoxOffice  string
}

// Genres splits the comma separated genre list
func (d MovieDetail) Genres() []string {
	if d.Genre == "" {
		return nil
	}
	parts := strings.Split(d.Genre, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// SearchQuery describes one title search against the metadata service
type SearchQuery struct {
	Term string
	Page int // 1-based; zero means the first page
	Year int // zero means no year filter
}

// SearchPage is one page of search results
type SearchPage struct {
	Movies       []Movie
	TotalResults int
	Page         int
}
