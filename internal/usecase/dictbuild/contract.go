package dictbuild

import (
	"context"

	"github.com/cinerank/cinerank/internal/domain/movie"
)

// Catalog pages through movie records in a stable order.
type Catalog interface {
	ListPage(ctx context.Context, page, size int) (movies []movie.Movie, isLast bool, err error)
}

// Dictionary is the write capability over the person dictionary. Incr is the
// atomic upsert: first sighting creates the entry at 1, later sightings bump
// the count.
type Dictionary interface {
	Incr(ctx context.Context, slug string) (int64, error)
}
