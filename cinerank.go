// Package cinerank is the SDK entry point for the movie search relevance
// layer: it wires the catalog store, the person dictionary, the query parser
// and the ranking engine behind one Client.
package cinerank

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/cinerank/cinerank/internal/db"
	dbredis "github.com/cinerank/cinerank/internal/db/redis"
	bleveengine "github.com/cinerank/cinerank/internal/engine/bleve"
	catalogrepo "github.com/cinerank/cinerank/internal/repository/catalog"
	dictionaryrepo "github.com/cinerank/cinerank/internal/repository/dictionary"
	dictbuilduc "github.com/cinerank/cinerank/internal/usecase/dictbuild"
	parseuc "github.com/cinerank/cinerank/internal/usecase/parse"
	searchuc "github.com/cinerank/cinerank/internal/usecase/search"
	"github.com/cinerank/cinerank/internal/slug"
)

const defaultReadinessTimeout = 10 * time.Second

// Client is the cinerank SDK entry point.
type Client struct {
	store  db.Store
	engine *bleveengine.Engine

	catalog   *catalogrepo.Repo
	dict      *dictionaryrepo.Repo
	searchSvc *searchuc.Service
	buildSvc  *dictbuilduc.Service
}

// New creates a cinerank Client, connects to the database and opens the
// search index.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{}
	for _, o := range opts {
		o.apply(cfg)
	}
	log := cfg.logger
	if log == nil {
		log = zap.NewNop()
	}

	if len(cfg.addrs) == 0 {
		return nil, errors.New("cinerank: database address required (use WithRedis)")
	}

	store, err := dbredis.NewStore(dbredis.Config{
		Addrs:    cfg.addrs,
		Username: cfg.username,
		Password: cfg.password,
		DB:       cfg.db,
	})
	if err != nil {
		return nil, fmt.Errorf("cinerank: create store: %w", err)
	}

	ctx := context.Background()
	if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("cinerank: database not ready: %w", err)
	}

	engine, err := openEngine(cfg)
	if err != nil {
		store.Close()
		return nil, err
	}

	return wireClient(store, engine, cfg, log), nil
}

func openEngine(cfg *clientConfig) (*bleveengine.Engine, error) {
	var (
		engine *bleveengine.Engine
		err    error
	)
	if cfg.memOnly || cfg.indexPath == "" {
		engine, err = bleveengine.NewMemOnly()
	} else {
		engine, err = bleveengine.Open(cfg.indexPath)
	}
	if err != nil {
		return nil, fmt.Errorf("cinerank: open index: %w", err)
	}
	if cfg.explain {
		engine = engine.WithExplain()
	}
	return engine, nil
}

func wireClient(store db.Store, engine *bleveengine.Engine, cfg *clientConfig, log *zap.Logger) *Client {
	catalog := catalogrepo.New(store)
	dict := dictionaryrepo.New(store)

	parser := parseuc.New(dict)
	searchSvc := searchuc.New(parser, engine, catalog, log)
	if cfg.searchLimit > 0 {
		searchSvc = searchSvc.WithLimit(cfg.searchLimit)
	}
	buildSvc := dictbuilduc.New(catalog, dict, log)
	if cfg.pageSize > 0 {
		buildSvc = buildSvc.WithPageSize(cfg.pageSize)
	}

	return &Client{
		store:     store,
		engine:    engine,
		catalog:   catalog,
		dict:      dict,
		searchSvc: searchSvc,
		buildSvc:  buildSvc,
	}
}

// Close releases all resources.
func (c *Client) Close() {
	if c.engine != nil {
		_ = c.engine.Close()
	}
	if c.store != nil {
		c.store.Close()
	}
}

// Ping checks database connectivity.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// AddMovie stores a movie in the catalog and indexes it for search.
func (c *Client) AddMovie(ctx context.Context, m Movie) error {
	internal := toInternalMovie(m)
	if err := c.catalog.Put(ctx, internal); err != nil {
		return fmt.Errorf("add movie: %w", err)
	}
	if err := c.engine.Index(internal); err != nil {
		return fmt.Errorf("add movie: %w", err)
	}
	return nil
}

// Movie resolves one catalog record by id.
func (c *Client) Movie(ctx context.Context, id string) (Movie, error) {
	m, err := c.catalog.GetByID(ctx, id)
	if err != nil {
		return Movie{}, fmt.Errorf("movie %s: %w", id, err)
	}
	return fromInternalMovie(m), nil
}

// Search runs one search. words is the raw user text; filters map facet
// names to selected values, nil for none.
func (c *Client) Search(ctx context.Context, words string, filters map[string][]string) (SearchResult, error) {
	res, err := c.searchSvc.Search(ctx, words, packFilters(filters))
	if err != nil {
		return SearchResult{}, fmt.Errorf("search: %w", err)
	}
	return fromSearchResult(res), nil
}

// BuildDictionary scans the whole catalog and (re)counts the person
// dictionary. Counts accumulate across runs; call ResetDictionary first for a
// clean rebuild.
func (c *Client) BuildDictionary(ctx context.Context) error {
	if err := c.buildSvc.Run(ctx); err != nil {
		return fmt.Errorf("build dictionary: %w", err)
	}
	return nil
}

// ResetDictionary deletes every person dictionary entry.
func (c *Client) ResetDictionary(ctx context.Context) error {
	if err := c.dict.Clear(ctx); err != nil {
		return fmt.Errorf("reset dictionary: %w", err)
	}
	return nil
}

// Person looks up the dictionary entry for a person name. The name is
// normalized to its slug before lookup, so "Bruce WILLIS" and "bruce willis"
// resolve the same entry.
func (c *Client) Person(ctx context.Context, name string) (PersonEntry, error) {
	entry, err := c.dict.Get(ctx, slug.Make(name))
	if err != nil {
		return PersonEntry{}, fmt.Errorf("person %q: %w", name, err)
	}
	return PersonEntry{Slug: entry.Slug, MovieCount: entry.MovieCount}, nil
}
