// Package dictionary persists the person dictionary: one counter per name
// slug, shared read-only by every parser invocation and written by the
// offline builder.
package dictionary

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/cinerank/cinerank/internal/db"
	"github.com/cinerank/cinerank/internal/domain"
	"github.com/cinerank/cinerank/internal/domain/person"
)

const keyPrefix = domain.KeyPrefix + "dict:"

// store is the consumer interface for dictionary persistence.
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	IncrBy(ctx context.Context, key string, val int64) (int64, error)
	Del(ctx context.Context, key string) error
	Scan(ctx context.Context, pattern string) ([]string, error)
}

// Repo implements the dictionary read capability used by the parser and the
// write capability used by the builder.
type Repo struct {
	store store
}

// New creates a dictionary repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// Get returns the entry for a slug, or domain.ErrNotFound.
func (r *Repo) Get(ctx context.Context, slug string) (person.Entry, error) {
	raw, err := r.store.Get(ctx, entryKey(slug))
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return person.Entry{}, domain.ErrNotFound
		}
		return person.Entry{}, fmt.Errorf("get %s: %w", slug, err)
	}

	count, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		return person.Entry{}, fmt.Errorf("parse count for %s: %w", slug, err)
	}
	return person.Entry{Slug: slug, MovieCount: count}, nil
}

// Incr is the dictionary upsert: it atomically creates the entry at count 1
// on first sighting, or bumps the count on every later one. Being a single
// atomic increment, concurrent builders and readers cannot lose updates.
func (r *Repo) Incr(ctx context.Context, slug string) (int64, error) {
	n, err := r.store.IncrBy(ctx, entryKey(slug), 1)
	if err != nil {
		return 0, fmt.Errorf("incr %s: %w", slug, err)
	}
	return n, nil
}

// Upsert writes an entry at an explicit count, overwriting whatever is there.
// The builder uses Incr; this is for corrections and seeding.
func (r *Repo) Upsert(ctx context.Context, e person.Entry) error {
	if e.Slug == "" {
		return fmt.Errorf("slug is required")
	}
	raw := []byte(strconv.FormatInt(e.MovieCount, 10))
	if err := r.store.Set(ctx, entryKey(e.Slug), raw); err != nil {
		return fmt.Errorf("set %s: %w", e.Slug, err)
	}
	return nil
}

// Clear deletes every dictionary entry. Used before a clean rebuild, since
// re-running the builder over unchanged data doubles all counts.
func (r *Repo) Clear(ctx context.Context) error {
	keys, err := r.store.Scan(ctx, keyPrefix+"*")
	if err != nil {
		return fmt.Errorf("scan dictionary keys: %w", err)
	}
	for _, key := range keys {
		if err := r.store.Del(ctx, key); err != nil {
			return fmt.Errorf("delete %s: %w", key, err)
		}
	}
	return nil
}

func entryKey(slug string) string {
	return keyPrefix + slug
}
