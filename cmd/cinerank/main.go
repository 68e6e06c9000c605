package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/cinerank/cinerank/internal/config"
	"github.com/cinerank/cinerank/internal/db"
	dbredis "github.com/cinerank/cinerank/internal/db/redis"
	moviedomain "github.com/cinerank/cinerank/internal/domain/movie"
	bleveengine "github.com/cinerank/cinerank/internal/engine/bleve"
	logpkg "github.com/cinerank/cinerank/internal/logger"
	"github.com/cinerank/cinerank/internal/metrics"
	catalogrepo "github.com/cinerank/cinerank/internal/repository/catalog"
	dictionaryrepo "github.com/cinerank/cinerank/internal/repository/dictionary"
	dictbuilduc "github.com/cinerank/cinerank/internal/usecase/dictbuild"
	parseuc "github.com/cinerank/cinerank/internal/usecase/parse"
	searchuc "github.com/cinerank/cinerank/internal/usecase/search"
)

func main() {
	app := &cli.App{
		Name:  "cinerank",
		Usage: "Movie catalog search relevance tooling",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "env",
				Usage:   "Config environment name (local, dev, prod)",
				Value:   config.GetEnv(),
				EnvVars: []string{"ENV"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "build-dict",
				Usage:  "Scan the catalog and rebuild the person dictionary",
				Action: buildDictCommand,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "reset",
						Usage: "Clear the dictionary before building",
					},
					&cli.IntFlag{
						Name:  "page-size",
						Usage: "Catalog page size (0 = from config)",
					},
					&cli.IntFlag{
						Name:  "resume-from",
						Usage: "Resume a failed build at this page",
					},
				},
			},
			{
				Name:      "search",
				Usage:     "Run a search and print the ranked results as JSON",
				ArgsUsage: "<words>",
				Action:    searchCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "filters",
						Usage: `Facet selections, e.g. "genre=action,drama::year=2020"`,
					},
				},
			},
			{
				Name:      "index",
				Usage:     "Load movies from a JSON file into the catalog and the index",
				ArgsUsage: "<file>",
				Action:    indexCommand,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// env holds everything a command needs after wiring.
type env struct {
	cfg    config.Config
	logger *zap.Logger
	store  db.Store
}

func setup(c *cli.Context) (*env, error) {
	cfg, err := config.Load(c.String("env"))
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logger, err := logpkg.New(c.String("env"), cfg.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	store, err := dbredis.NewStore(dbredis.Config{
		Addrs:    cfg.Database.Addrs,
		Username: cfg.Database.Username,
		Password: cfg.Database.Password,
		DB:       cfg.Database.DB,
	})
	if err != nil {
		return nil, fmt.Errorf("create store: %w", err)
	}
	readiness := time.Duration(cfg.Database.ReadinessTimeout) * time.Second
	if err := store.WaitForReady(c.Context, readiness); err != nil {
		store.Close()
		return nil, fmt.Errorf("database not ready: %w", err)
	}

	metrics.Register()
	return &env{cfg: cfg, logger: logger, store: store}, nil
}

func (e *env) close() {
	e.store.Close()
	_ = e.logger.Sync()
}

func (e *env) openEngine() (*bleveengine.Engine, error) {
	engine, err := bleveengine.Open(e.cfg.Engine.IndexPath)
	if err != nil {
		return nil, err
	}
	if e.cfg.Engine.Explain {
		engine = engine.WithExplain()
	}
	return engine, nil
}

func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
}

func buildDictCommand(c *cli.Context) error {
	e, err := setup(c)
	if err != nil {
		return err
	}
	defer e.close()

	ctx, stop := signalContext(c.Context)
	defer stop()

	catalog := catalogrepo.New(e.store)
	dict := dictionaryrepo.New(e.store)

	if c.Bool("reset") {
		if err := dict.Clear(ctx); err != nil {
			return fmt.Errorf("clear dictionary: %w", err)
		}
		e.logger.Info("dictionary cleared")
	}

	builder := dictbuilduc.New(catalog, dict, e.logger)
	pageSize := c.Int("page-size")
	if pageSize == 0 {
		pageSize = e.cfg.Builder.PageSize
	}
	builder = builder.WithPageSize(pageSize)

	if from := c.Int("resume-from"); from > 0 {
		return builder.RunFrom(ctx, from)
	}
	return builder.Run(ctx)
}

func searchCommand(c *cli.Context) error {
	words := c.Args().First()
	if words == "" {
		return cli.Exit("search words required", 2)
	}

	e, err := setup(c)
	if err != nil {
		return err
	}
	defer e.close()

	engine, err := e.openEngine()
	if err != nil {
		return fmt.Errorf("open index: %w", err)
	}
	defer engine.Close()

	ctx, stop := signalContext(c.Context)
	defer stop()

	catalog := catalogrepo.New(e.store)
	parser := parseuc.New(dictionaryrepo.New(e.store))
	svc := searchuc.New(parser, engine, catalog, e.logger).
		WithLimit(e.cfg.Search.Limit)

	res, err := svc.Search(ctx, words, c.String("filters"))
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

func indexCommand(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		return cli.Exit("movies file required", 2)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	var movies []moviedomain.Movie
	if err := json.Unmarshal(data, &movies); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	e, err := setup(c)
	if err != nil {
		return err
	}
	defer e.close()

	engine, err := e.openEngine()
	if err != nil {
		return fmt.Errorf("open index: %w", err)
	}
	defer engine.Close()

	ctx, stop := signalContext(c.Context)
	defer stop()

	catalog := catalogrepo.New(e.store)
	for _, m := range movies {
		if err := catalog.Put(ctx, m); err != nil {
			return err
		}
		if err := engine.Index(m); err != nil {
			return err
		}
	}
	e.logger.Info("movies indexed", zap.Int("count", len(movies)))
	return nil
}
