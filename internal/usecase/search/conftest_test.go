package search

import (
	"context"

	"github.com/cinerank/cinerank/internal/domain"
	"github.com/cinerank/cinerank/internal/domain/expr"
	"github.com/cinerank/cinerank/internal/domain/facet"
	"github.com/cinerank/cinerank/internal/domain/hit"
	"github.com/cinerank/cinerank/internal/domain/movie"
	"github.com/cinerank/cinerank/internal/domain/query"
)

type mockParser struct {
	query  query.Query
	gotCtx context.Context
}

func (m *mockParser) Parse(ctx context.Context, _ string) query.Query {
	m.gotCtx = ctx
	return m.query
}

type mockEngine struct {
	hits   []hit.Hit
	facets []hit.Facet
	err    error

	gotExpr   expr.Expr
	gotLimit  int
	gotFacets []facet.Request
	calls     int
}

func (m *mockEngine) Execute(_ context.Context, e expr.Expr, limit int, facets []facet.Request) ([]hit.Hit, []hit.Facet, error) {
	m.calls++
	m.gotExpr = e
	m.gotLimit = limit
	m.gotFacets = facets
	if m.err != nil {
		return nil, nil, m.err
	}
	return m.hits, m.facets, nil
}

type mockMovies struct {
	byID  map[string]movie.Movie
	err   error
	calls []string
}

func (m *mockMovies) GetByID(_ context.Context, id string) (movie.Movie, error) {
	m.calls = append(m.calls, id)
	if m.err != nil {
		return movie.Movie{}, m.err
	}
	mv, ok := m.byID[id]
	if !ok {
		return movie.Movie{}, domain.ErrMovieNotFound
	}
	return mv, nil
}
