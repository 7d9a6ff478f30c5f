package omdb

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/mmcdole/marquee/internal/domain"
)

// parseSearch converts a raw search body into a SearchPage or a typed error.
// Unknown shapes are rejected here so nothing loosely typed leaves the package.
func parseSearch(body []byte, page int) (*domain.SearchPage, error) {
	var resp SearchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}

	switch resp.Response {
	case responseTrue:
	case responseFalse:
		return nil, &domain.ServiceError{Message: resp.Error}
	default:
		return nil, fmt.Errorf("%w: Response field is %q", domain.ErrMalformedResponse, resp.Response)
	}

	total, err := strconv.Atoi(strings.TrimSpace(resp.TotalResults))
	if err != nil || total < 0 {
		return nil, fmt.Errorf("%w: totalResults %q", domain.ErrMalformedResponse, resp.TotalResults)
	}

	return &domain.SearchPage{
		Movies:       MapMovies(resp.Search),
		TotalResults: total,
		Page:         page,
	}, nil
}

// parseDetail converts a raw detail body into a MovieDetail or a typed error
func parseDetail(body []byte) (*domain.MovieDetail, error) {
	var resp DetailResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}

	switch resp.Response {
	case responseTrue:
	case responseFalse:
		msg := resp.Error
		if msg == "" {
			msg = "Movie not found!"
		}
		return nil, &domain.ServiceError{Message: msg}
	default:
		return nil, fmt.Errorf("%w: Response field is %q", domain.ErrMalformedResponse, resp.Response)
	}

	if resp.ImdbID == "" {
		return nil, fmt.Errorf("%w: detail without imdbID", domain.ErrMalformedResponse)
	}

	return MapDetail(resp), nil
}

// MapMovies converts search items to domain movies.
// Items without an identifier cannot be keyed in the grid and are dropped.
func MapMovies(items []SearchItem) []domain.Movie {
	movies := make([]domain.Movie, 0, len(items))
	for _, item := range items {
		if item.ImdbID == "" {
			continue
		}
		movies = append(movies, MapMovie(item))
	}
	return movies
}

// MapMovie converts a single search item
func MapMovie(item SearchItem) domain.Movie {
	return domain.Movie{
		ID:     item.ImdbID,
		Title:  item.Title,
		Year:   item.Year,
		Poster: clean(item.Poster),
		Type:   mapType(item.Type),
	}
}

// MapDetail converts a detail response
func MapDetail(resp DetailResponse) *domain.MovieDetail {
	ratings := make([]domain.Rating, 0, len(resp.Ratings))
	for _, r := range resp.Ratings {
		ratings = append(ratings, domain.Rating{Source: r.Source, Value: r.Value})
	}

	return &domain.MovieDetail{
		Movie: domain.Movie{
			ID:     resp.ImdbID,
			Title:  resp.Title,
			Year:   resp.Year,
			Poster: clean(resp.Poster),
			Type:   mapType(resp.Type),
		},
		Rated:      clean(resp.Rated),
		Released:   clean(resp.Released),
		Runtime:    clean(resp.Runtime),
		Genre:      clean(resp.Genre),
		Director:   clean(resp.Director),
		Writer:     clean(resp.Writer),
		Actors:     clean(resp.Actors),
		Plot:       clean(resp.Plot),
		Language:   clean(resp.Language),
		Country:    clean(resp.Country),
		Awards:     clean(resp.Awards),
		Ratings:    ratings,
		Metascore:  clean(resp.Metascore),
		IMDbRating: clean(resp.ImdbRating),
		IMDbVotes:  clean(resp.ImdbVotes),
		BoxOffice:  clean(resp.BoxOffice),
	}
}

// clean turns OMDb's "N/A" placeholder into an empty string
func clean(s string) string {
	s = strings.TrimSpace(s)
	if s == notAvailable {
		return ""
	}
	return s
}

func mapType(t string) domain.MediaType {
	switch strings.ToLower(t) {
	case "series":
		return domain.MediaTypeSeries
	case "episode":
		return domain.MediaTypeEpisode
	case "game":
		return domain.MediaTypeGame
	default:
		return domain.MediaTypeMovie
	}
}
