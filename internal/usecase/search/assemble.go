package search

import (
	"context"
	"fmt"

	"github.com/cinerank/cinerank/internal/domain/hit"
	"github.com/cinerank/cinerank/internal/domain/movie"
)

// Result is an assembled search response: full movie records in the engine's
// relevance order plus the facet counts computed over the whole match set.
type Result struct {
	Items  []Item
	Facets []hit.Facet
}

// Item is one ranked result. Rank is 1-based position in the response.
type Item struct {
	Movie       movie.Movie
	Rank        int
	Score       float64
	Explanation string
}

// assemble resolves every hit to its full record, preserving the engine's
// order. A hit that cannot be resolved fails the whole search: a dangling id
// means the index and the catalog have diverged, which is worth surfacing
// rather than papering over with a shorter page.
func (s *Service) assemble(ctx context.Context, hits []hit.Hit, facets []hit.Facet) (Result, error) {
	items := make([]Item, 0, len(hits))
	for i, h := range hits {
		m, err := s.movies.GetByID(ctx, h.ID)
		if err != nil {
			return Result{}, fmt.Errorf("resolve hit %q at rank %d: %w", h.ID, i+1, err)
		}
		items = append(items, Item{
			Movie:       m,
			Rank:        i + 1,
			Score:       h.Score,
			Explanation: h.Explanation,
		})
	}
	return Result{Items: items, Facets: facets}, nil
}
