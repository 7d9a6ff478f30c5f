package domain

import (
	"context"
)

// MovieRepository provides access to the external metadata service
type MovieRepository interface {
	// Search returns one page of titles matching the query.
	// A Response "False" answer is reported as an error wrapping ErrNoResults.
	Search(ctx context.Context, q SearchQuery) (*SearchPage, error)

	// Lookup returns the full record for a single title
	Lookup(ctx context.Context, id string) (*MovieDetail, error)
}
