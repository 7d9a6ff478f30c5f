package service

import (
	"testing"

	"github.com/mmcdole/marquee/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func titles(results []FilterResult) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Movie.Title
	}
	return out
}

func TestFilterResults(t *testing.T) {
	list := []domain.Movie{
		{ID: "1", Title: "Inception"},
		{ID: "2", Title: "Batman Begins"},
		{ID: "3", Title: "Batman"},
		{ID: "4", Title: "Heat"},
	}

	t.Run("empty query keeps everything in order", func(t *testing.T) {
		got := FilterResults("  ", list)
		assert.Equal(t, []string{"Inception", "Batman Begins", "Batman", "Heat"}, titles(got))
	})

	t.Run("matches carry highlight indexes", func(t *testing.T) {
		got := FilterResults("heat", list)
		require.Len(t, got, 1)
		assert.Equal(t, "4", got[0].Movie.ID)
		assert.Equal(t, 3, got[0].Index)
		assert.Equal(t, []int{0, 1, 2, 3}, got[0].MatchedIndexes)
	})

	t.Run("case insensitive", func(t *testing.T) {
		got := FilterResults("BATMAN", list)
		assert.ElementsMatch(t, []string{"Batman Begins", "Batman"}, titles(got))
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, FilterResults("zzz", list))
	})
}
