package view

import (
	"fmt"
	"testing"

	"github.com/mmcdole/marquee/internal/domain"
	"github.com/mmcdole/marquee/internal/scroll"
	"github.com/mmcdole/marquee/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample(n int) []domain.Movie {
	out := make([]domain.Movie, n)
	for i := range out {
		out[i] = domain.Movie{ID: fmt.Sprintf("tt%d", i), Title: fmt.Sprintf("Movie %d", i)}
	}
	return out
}

func TestCompose_Branches(t *testing.T) {
	tests := []struct {
		name  string
		state service.Snapshot
		want  Branch
	}{
		{
			name:  "latest loading",
			state: service.Snapshot{Latest: service.ListingSession{Loading: true}},
			want:  BranchLoading,
		},
		{
			name: "search loading wins over error and results",
			state: service.Snapshot{Search: &service.SearchSession{
				Query: "heat", Loading: true, Results: sample(3),
			}},
			want: BranchLoading,
		},
		{
			name: "search error",
			state: service.Snapshot{Search: &service.SearchSession{
				Query: "heat", Error: "Movie not found!", Results: sample(3),
			}},
			want: BranchError,
		},
		{
			name: "latest error without query is not an error panel",
			state: service.Snapshot{Latest: service.ListingSession{
				Error: "Could not reach the movie service.",
			}},
			want: BranchWelcome,
		},
		{
			name:  "latest results",
			state: service.Snapshot{Latest: service.ListingSession{Results: sample(8)}},
			want:  BranchResults,
		},
		{
			name:  "search results",
			state: service.Snapshot{Search: &service.SearchSession{Query: "heat", Page: 1, Results: sample(2)}},
			want:  BranchResults,
		},
		{
			name:  "welcome",
			state: service.Snapshot{},
			want:  BranchWelcome,
		},
		{
			name:  "no matches",
			state: service.Snapshot{Search: &service.SearchSession{Query: "heat", Page: 1}},
			want:  BranchNoMatches,
		},
		{
			name: "search takes precedence over latest",
			state: service.Snapshot{
				Search: &service.SearchSession{Query: "heat", Page: 1},
				Latest: service.ListingSession{Results: sample(8)},
			},
			want: BranchNoMatches,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compose(Input{State: tt.state})
			assert.Equal(t, tt.want, got.Branch, "got %s", got.Branch)
		})
	}
}

func TestCompose_LoadingShowsSkeletons(t *testing.T) {
	got := Compose(Input{State: service.Snapshot{Latest: service.ListingSession{Loading: true}}})
	assert.Equal(t, SkeletonCount, got.Skeletons)
	assert.Empty(t, got.Items)
}

func TestCompose_LatestHasCarouselNoPagination(t *testing.T) {
	got := Compose(Input{State: service.Snapshot{Latest: service.ListingSession{Results: sample(8)}}})

	assert.Equal(t, "Latest Movies", got.Heading)
	assert.Equal(t, "Recently Released", got.Badge)
	require.Len(t, got.Carousel, CarouselSize)
	assert.Equal(t, "tt0", got.Carousel[0].ID)
	assert.Len(t, got.Items, 8)
	assert.False(t, got.ShowPagination)
}

func TestCompose_ShortLatestCarousel(t *testing.T) {
	got := Compose(Input{State: service.Snapshot{Latest: service.ListingSession{Results: sample(3)}}})
	assert.Len(t, got.Carousel, 3)
}

func TestCompose_SearchHasPaginationNoCarousel(t *testing.T) {
	got := Compose(Input{State: service.Snapshot{Search: &service.SearchSession{
		Query: "heat", Page: 2, Results: sample(8), TotalResults: 42, HasMorePages: true,
	}}})

	assert.Equal(t, `Search Results for "heat"`, got.Heading)
	assert.Empty(t, got.Badge)
	assert.Empty(t, got.Carousel)
	assert.Equal(t, `Showing 8 results for "heat"`, got.Summary)
	assert.Equal(t, "Found 42 total results", got.TotalLine)
	assert.True(t, got.ShowPagination)
	assert.Equal(t, Pagination{Current: 2, TotalPages: 5, HasPrev: true, HasMore: true, Total: 42}, got.Pagination)
}

func TestCompose_PaginationOnlyWithQuery(t *testing.T) {
	states := []service.Snapshot{
		{},
		{Latest: service.ListingSession{Results: sample(8)}},
		{Latest: service.ListingSession{Loading: true}},
		{Search: &service.SearchSession{Query: "heat", Page: 1, Results: sample(1)}},
		{Search: &service.SearchSession{Query: "heat", Page: 3, Results: sample(8), TotalResults: 100}},
	}
	for i, s := range states {
		got := Compose(Input{State: s})
		if got.Branch != BranchResults {
			assert.False(t, got.ShowPagination, "state %d", i)
			continue
		}
		assert.Equal(t, s.Query() != "", got.ShowPagination, "state %d", i)
	}
}

func TestCompose_ErrorPanel(t *testing.T) {
	got := Compose(Input{State: service.Snapshot{Search: &service.SearchSession{
		Query: "heat", Error: "Movie not found!",
	}}})
	assert.Equal(t, "Movie not found!", got.Error)
	assert.NotEmpty(t, got.ErrorHint)
	assert.Empty(t, got.EmptyTitle, "error and empty states are exclusive")
}

func TestCompose_Header(t *testing.T) {
	expanded := Compose(Input{Header: scroll.Expanded, Ready: true})
	assert.False(t, expanded.Header.Compact)
	assert.True(t, expanded.Header.ShowTagline)
	assert.True(t, expanded.Ready)

	compact := Compose(Input{Header: scroll.Compact})
	assert.True(t, compact.Header.Compact)
	assert.False(t, compact.Header.ShowTagline)
}

func TestCompose_WelcomeHint(t *testing.T) {
	got := Compose(Input{})
	assert.Equal(t, "Welcome to Movie Search", got.EmptyTitle)
	assert.Equal(t, "Enter at least 2 characters to search", got.EmptyHint)
}
