package search

import (
	"context"

	"github.com/cinerank/cinerank/internal/domain/expr"
	"github.com/cinerank/cinerank/internal/domain/facet"
	"github.com/cinerank/cinerank/internal/domain/hit"
	"github.com/cinerank/cinerank/internal/domain/movie"
	"github.com/cinerank/cinerank/internal/domain/query"
)

// Parser turns raw user words into a structured query.
type Parser interface {
	Parse(ctx context.Context, words string) query.Query
}

// Engine executes a compiled ranking expression against the index and
// returns scored hits in relevance order plus the requested facets.
type Engine interface {
	Execute(ctx context.Context, e expr.Expr, limit int, facets []facet.Request) ([]hit.Hit, []hit.Facet, error)
}

// Movies resolves full movie records for hits.
type Movies interface {
	GetByID(ctx context.Context, id string) (movie.Movie, error)
}
