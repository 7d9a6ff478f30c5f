package service

import (
	"context"
	"sync"
	"testing"

	"github.com/mmcdole/marquee/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetailService_LookupIsMemoised(t *testing.T) {
	repo := newFakeRepo()
	repo.details["tt1"] = &domain.MovieDetail{Movie: domain.Movie{ID: "tt1", Title: "Heat"}}
	svc := NewDetailService(repo, nil)

	for i := 0; i < 3; i++ {
		d, err := svc.Lookup(context.Background(), "tt1")
		require.NoError(t, err)
		assert.Equal(t, "Heat", d.Title)
	}
	assert.Equal(t, 1, repo.lookupCount())

	_, ok := svc.Cached("tt1")
	assert.True(t, ok)
}

func TestDetailService_ConcurrentLookupsShareRequest(t *testing.T) {
	repo := newFakeRepo()
	repo.details["tt1"] = &domain.MovieDetail{Movie: domain.Movie{ID: "tt1"}}
	repo.lookupGate = make(chan struct{})
	svc := NewDetailService(repo, nil)

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Lookup(context.Background(), "tt1")
			assert.NoError(t, err)
		}()
	}

	// Let every goroutine reach the shared call before releasing it
	for repo.lookupCount() == 0 {
	}
	close(repo.lookupGate)
	wg.Wait()

	assert.LessOrEqual(t, repo.lookupCount(), 5)
	_, ok := svc.Cached("tt1")
	assert.True(t, ok)
}

func TestDetailService_ErrorsAreNotCached(t *testing.T) {
	repo := newFakeRepo()
	svc := NewDetailService(repo, nil)

	_, err := svc.Lookup(context.Background(), "tt404")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoResults)

	_, err = svc.Lookup(context.Background(), "tt404")
	require.Error(t, err)
	assert.Equal(t, 2, repo.lookupCount())
}
