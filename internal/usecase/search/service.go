// Package search is the request-path use case: it parses the raw words,
// compiles the ranking expression, runs it on the engine and assembles the
// response from the catalog.
package search

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/cinerank/cinerank/internal/domain"
	"github.com/cinerank/cinerank/internal/domain/facet"
	"github.com/cinerank/cinerank/internal/logger"
	"github.com/cinerank/cinerank/internal/metrics"
)

// Service executes searches end to end.
type Service struct {
	parser Parser
	engine Engine
	movies Movies
	log    *zap.Logger
	limit  int
	now    func() time.Time
}

// New creates a search service with the default result limit.
func New(parser Parser, engine Engine, movies Movies, log *zap.Logger) *Service {
	return &Service{
		parser: parser,
		engine: engine,
		movies: movies,
		log:    log,
		limit:  DefaultLimit,
		now:    time.Now,
	}
}

// WithLimit overrides the maximum number of hits per search.
func (s *Service) WithLimit(n int) *Service {
	if n > 0 {
		s.limit = n
	}
	return s
}

// WithClock overrides the time source the recency bands anchor on.
func (s *Service) WithClock(now func() time.Time) *Service {
	if now != nil {
		s.now = now
	}
	return s
}

// Search runs one search. words is the raw user text; filters is the packed
// facet selection string ("genre=action,drama::year=2020"), empty for none.
func (s *Service) Search(ctx context.Context, words, filters string) (Result, error) {
	start := time.Now()

	// Downstream stages log through the context, scoped to this request.
	log := s.log.With(zap.String("words", words))
	ctx = logger.ContextWith(ctx, log)

	sel := facet.ParseSelections(filters)
	q := s.parser.Parse(ctx, words)
	compiled := Compile(q, sel, s.now())

	hits, facets, err := s.engine.Execute(ctx, compiled, s.limit, DefaultFacets())
	if err != nil {
		metrics.SearchRequestsTotal.WithLabelValues("error").Inc()
		return Result{}, fmt.Errorf("%w: %v", domain.ErrEngineExecution, err)
	}

	res, err := s.assemble(ctx, hits, facets)
	if err != nil {
		metrics.SearchRequestsTotal.WithLabelValues("error").Inc()
		return Result{}, err
	}

	metrics.SearchRequestsTotal.WithLabelValues("ok").Inc()
	metrics.SearchDuration.Observe(time.Since(start).Seconds())
	metrics.SearchHits.Observe(float64(len(res.Items)))

	log.Debug("search executed",
		zap.Int("hits", len(res.Items)),
		zap.Duration("took", time.Since(start)))
	return res, nil
}
