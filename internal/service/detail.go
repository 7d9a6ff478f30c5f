package service

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/mmcdole/marquee/internal/domain"
	"golang.org/x/sync/singleflight"
)

// DetailService looks up full title records. Successful lookups are kept
// for the life of the process; concurrent lookups of one title share a
// single request.
type DetailService struct {
	repo   domain.MovieRepository
	logger *slog.Logger
	group  singleflight.Group

	mu    sync.RWMutex
	cache map[string]*domain.MovieDetail
}

// NewDetailService creates a new detail service
func NewDetailService(repo domain.MovieRepository, logger *slog.Logger) *DetailService {
	if logger == nil {
		logger = slog.Default()
	}
	return &DetailService{
		repo:   repo,
		logger: logger.With("component", "detail"),
		cache:  make(map[string]*domain.MovieDetail),
	}
}

// Lookup returns the record for id
func (s *DetailService) Lookup(ctx context.Context, id string) (*domain.MovieDetail, error) {
	id = strings.TrimSpace(id)

	s.mu.RLock()
	if d, ok := s.cache[id]; ok {
		s.mu.RUnlock()
		return d, nil
	}
	s.mu.RUnlock()

	v, err, shared := s.group.Do(id, func() (interface{}, error) {
		d, err := s.repo.Lookup(ctx, id)
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		s.cache[id] = d
		s.mu.Unlock()
		return d, nil
	})
	if err != nil {
		s.logger.Warn("lookup failed", "id", id, "error", err)
		return nil, err
	}

	s.logger.Debug("lookup complete", "id", id, "shared", shared)
	return v.(*domain.MovieDetail), nil
}

// Cached returns a previously fetched record without touching the network
func (s *DetailService) Cached(id string) (*domain.MovieDetail, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.cache[id]
	return d, ok
}
