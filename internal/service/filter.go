package service

import (
	"sort"
	"strings"

	lfuzzy "github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/mmcdole/marquee/internal/domain"
	"github.com/sahilm/fuzzy"
)

// FilterResult is a displayed title that matched a local filter, with the
// rune positions that matched for highlighting
type FilterResult struct {
	Movie          domain.Movie
	Index          int // position in the unfiltered list
	MatchedIndexes []int
	Score          int // higher is better
}

// movieSource implements fuzzy.Source over pre-lowered titles
type movieSource struct {
	lowerTitles []string
}

func (s movieSource) String(i int) string { return s.lowerTitles[i] }
func (s movieSource) Len() int            { return len(s.lowerTitles) }

// FilterResults narrows already displayed titles to those fuzzily matching
// query. It never touches the network. Ties keep the closest titles by edit
// distance, then the original order.
func FilterResults(query string, movies []domain.Movie) []FilterResult {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		results := make([]FilterResult, len(movies))
		for i, m := range movies {
			results[i] = FilterResult{Movie: m, Index: i}
		}
		return results
	}

	src := movieSource{lowerTitles: make([]string, len(movies))}
	for i, m := range movies {
		src.lowerTitles[i] = strings.ToLower(m.Title)
	}

	matches := fuzzy.FindFrom(query, src)

	results := make([]FilterResult, len(matches))
	distance := make([]int, len(matches))
	for i, match := range matches {
		results[i] = FilterResult{
			Movie:          movies[match.Index],
			Index:          match.Index,
			MatchedIndexes: match.MatchedIndexes,
			Score:          match.Score,
		}
		distance[i] = lfuzzy.LevenshteinDistance(query, match.Str)
	}

	order := make([]int, len(results))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		ra, rb := results[order[a]], results[order[b]]
		if ra.Score != rb.Score {
			return ra.Score > rb.Score
		}
		if distance[order[a]] != distance[order[b]] {
			return distance[order[a]] < distance[order[b]]
		}
		return ra.Index < rb.Index
	})

	sorted := make([]FilterResult, len(results))
	for i, idx := range order {
		sorted[i] = results[idx]
	}
	return sorted
}
