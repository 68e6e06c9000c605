package cinerank

import "go.uber.org/zap"

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	addrs    []string
	username string
	password string
	db       int

	indexPath string
	memOnly   bool
	explain   bool

	searchLimit int
	pageSize    int

	logger *zap.Logger
}

// WithRedis configures the client to connect to a Redis instance.
func WithRedis(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.addrs = []string{addr}
		c.password = password
	})
}

// WithRedisAddrs configures a multi-node Redis connection with credentials.
func WithRedisAddrs(addrs []string, username, password string, db int) Option {
	return optionFunc(func(c *clientConfig) {
		c.addrs = addrs
		c.username = username
		c.password = password
		c.db = db
	})
}

// WithIndexPath sets the on-disk search index location. The index is created
// on first use.
func WithIndexPath(path string) Option {
	return optionFunc(func(c *clientConfig) {
		c.indexPath = path
		c.memOnly = false
	})
}

// WithInMemoryIndex keeps the search index in memory. Indexed movies are lost
// on Close; intended for tests and experiments.
func WithInMemoryIndex() Option {
	return optionFunc(func(c *clientConfig) {
		c.memOnly = true
	})
}

// WithExplain attaches per-result scoring explanations to search responses.
func WithExplain() Option {
	return optionFunc(func(c *clientConfig) {
		c.explain = true
	})
}

// WithSearchLimit caps the number of results per search. Default: 50.
func WithSearchLimit(n int) Option {
	return optionFunc(func(c *clientConfig) {
		c.searchLimit = n
	})
}

// WithBuilderPageSize sets the catalog page size the dictionary builder scans
// with. Default: 10.
func WithBuilderPageSize(n int) Option {
	return optionFunc(func(c *clientConfig) {
		c.pageSize = n
	})
}

// WithLogger enables structured logging for client operations.
// Pass nil to disable (default).
func WithLogger(l *zap.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}
