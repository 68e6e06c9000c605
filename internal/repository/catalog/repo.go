// Package catalog persists movie records and serves the two read paths the
// pipeline needs: per-id resolution for the result assembler and stable
// paging for the dictionary builder.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cinerank/cinerank/internal/db"
	"github.com/cinerank/cinerank/internal/domain"
	"github.com/cinerank/cinerank/internal/domain/movie"
)

const (
	moviePrefix = domain.KeyPrefix + "movie:"
	// indexKey must not live under moviePrefix: a record key is
	// moviePrefix+id, and ids are arbitrary strings.
	indexKey = domain.KeyPrefix + "movie-index"
)

// store is the consumer interface for catalog persistence.
type store interface {
	JSONSet(ctx context.Context, key, path string, data []byte) error
	JSONGet(ctx context.Context, key string, paths ...string) ([]byte, error)
	ZAdd(ctx context.Context, key string, score float64, member string) error
	ZRange(ctx context.Context, key string, start, stop int64) ([]string, error)
}

// Repo implements the catalog pager and the record store.
type Repo struct {
	store store
}

// New creates a catalog repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// Put stores a movie and registers its id in the scan index. All ids share
// score zero, so the index orders lexicographically by id -- a stable order
// across builder runs.
func (r *Repo) Put(ctx context.Context, m movie.Movie) error {
	if m.ID == "" {
		return fmt.Errorf("movie id is required")
	}
	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal movie %s: %w", m.ID, err)
	}
	if err := r.store.JSONSet(ctx, movieKey(m.ID), "$", data); err != nil {
		return fmt.Errorf("json.set movie %s: %w", m.ID, err)
	}
	if err := r.store.ZAdd(ctx, indexKey, 0, m.ID); err != nil {
		return fmt.Errorf("index movie %s: %w", m.ID, err)
	}
	return nil
}

// GetByID resolves a movie record, or returns domain.ErrMovieNotFound.
func (r *Repo) GetByID(ctx context.Context, id string) (movie.Movie, error) {
	raw, err := r.store.JSONGet(ctx, movieKey(id), "$")
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return movie.Movie{}, domain.ErrMovieNotFound
		}
		return movie.Movie{}, fmt.Errorf("json.get movie %s: %w", id, err)
	}
	return parseMovie(id, raw)
}

// ListPage returns one page of movies in stable id order, and whether this
// is the last page (a short page ends the scan).
func (r *Repo) ListPage(ctx context.Context, page, size int) ([]movie.Movie, bool, error) {
	if size <= 0 {
		return nil, false, fmt.Errorf("page size must be positive, got %d", size)
	}

	start := int64(page) * int64(size)
	ids, err := r.store.ZRange(ctx, indexKey, start, start+int64(size)-1)
	if err != nil {
		return nil, false, fmt.Errorf("range movie index: %w", err)
	}

	movies := make([]movie.Movie, 0, len(ids))
	for _, id := range ids {
		m, err := r.GetByID(ctx, id)
		if err != nil {
			return nil, false, fmt.Errorf("page %d: %w", page, err)
		}
		movies = append(movies, m)
	}

	return movies, len(ids) < size, nil
}

func movieKey(id string) string {
	return moviePrefix + id
}

// parseMovie unwraps a JSONPath "$" result, which arrives as a one-element
// array.
func parseMovie(id string, raw []byte) (movie.Movie, error) {
	var docs []movie.Movie
	if err := json.Unmarshal(raw, &docs); err != nil {
		// Some backends return the bare object for root-path gets.
		var m movie.Movie
		if err2 := json.Unmarshal(raw, &m); err2 != nil {
			return movie.Movie{}, fmt.Errorf("unmarshal movie %s: %w", id, err)
		}
		return m, nil
	}
	if len(docs) == 0 {
		return movie.Movie{}, domain.ErrMovieNotFound
	}
	return docs[0], nil
}
