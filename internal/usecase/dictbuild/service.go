// Package dictbuild materializes the person dictionary from the movie
// catalog. It runs offline as a single long-lived task; two concurrent runs
// would double-count, and so does re-running over unchanged data -- callers
// wanting a clean rebuild clear the dictionary first.
package dictbuild

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/cinerank/cinerank/internal/domain/movie"
	"github.com/cinerank/cinerank/internal/metrics"
	"github.com/cinerank/cinerank/internal/slug"
)

const (
	// DefaultPageSize is the catalog page size per scan step.
	DefaultPageSize = 10
	// maxCastPerMovie caps how many cast members each movie contributes.
	// Deep cast lists add little recall for their cost.
	maxCastPerMovie = 10

	upsertAttempts = 3
	retryDelay     = 100 * time.Millisecond
)

// PageError reports the page a failed build stopped at, so a caller can fix
// the cause and resume without rescanning completed pages.
type PageError struct {
	Page int
	Err  error
}

func (e *PageError) Error() string {
	return fmt.Sprintf("dictionary build stopped at page %d: %v", e.Page, e.Err)
}

func (e *PageError) Unwrap() error { return e.Err }

// Service is the dictionary builder.
type Service struct {
	catalog  Catalog
	dict     Dictionary
	log      *zap.Logger
	pageSize int
}

// New creates a dictionary builder.
func New(catalog Catalog, dict Dictionary, log *zap.Logger) *Service {
	return &Service{catalog: catalog, dict: dict, log: log, pageSize: DefaultPageSize}
}

// WithPageSize overrides the catalog page size.
func (s *Service) WithPageSize(n int) *Service {
	if n > 0 {
		s.pageSize = n
	}
	return s
}

// Run scans the whole catalog and upserts a dictionary entry per cast member
// seen, capped per movie. It returns after the first short page. Counts only
// ever grow: running twice over unchanged data doubles them.
func (s *Service) Run(ctx context.Context) error {
	return s.RunFrom(ctx, 0)
}

// RunFrom resumes a scan at the given page, for retrying after a PageError.
func (s *Service) RunFrom(ctx context.Context, startPage int) error {
	for page := startPage; ; page++ {
		if err := ctx.Err(); err != nil {
			return &PageError{Page: page, Err: err}
		}

		movies, isLast, err := s.catalog.ListPage(ctx, page, s.pageSize)
		if err != nil {
			return &PageError{Page: page, Err: fmt.Errorf("list page: %w", err)}
		}

		for _, m := range movies {
			if err := s.countCast(ctx, m); err != nil {
				return &PageError{Page: page, Err: err}
			}
		}

		metrics.BuilderPagesTotal.Inc()
		s.log.Debug("dictionary page processed",
			zap.Int("page", page), zap.Int("movies", len(movies)))

		if isLast {
			s.log.Info("dictionary build complete", zap.Int("pages", page+1))
			return nil
		}
	}
}

// countCast upserts the first maxCastPerMovie cast members of one movie.
func (s *Service) countCast(ctx context.Context, m movie.Movie) error {
	cast := m.Cast
	if len(cast) > maxCastPerMovie {
		cast = cast[:maxCastPerMovie]
	}
	for _, c := range cast {
		if c.Name == "" {
			continue
		}
		key := slug.Make(c.Name)
		if err := s.upsert(ctx, key); err != nil {
			metrics.BuilderUpsertsTotal.WithLabelValues("error").Inc()
			return fmt.Errorf("upsert %q for movie %s: %w", key, m.ID, err)
		}
		metrics.BuilderUpsertsTotal.WithLabelValues("ok").Inc()
	}
	return nil
}

// upsert bumps a dictionary counter, retrying transient store errors.
func (s *Service) upsert(ctx context.Context, key string) error {
	var err error
	for attempt := 0; attempt < upsertAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(retryDelay):
			}
		}
		if _, err = s.dict.Incr(ctx, key); err == nil {
			return nil
		}
		s.log.Warn("dictionary upsert failed",
			zap.String("slug", key), zap.Int("attempt", attempt+1), zap.Error(err))
	}
	return err
}
