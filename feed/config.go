package feed

import (
	"time"

	"go.uber.org/zap"

	"github.com/ecloudclub/threadpool/option"
)

// Config controls an Aggregator's pool sizes, timeouts, and logging. It is
// built with the option package's generic Option[T]/Apply pattern rather
// than a bespoke Aggregator-specific options type.
type Config struct {
	FeedsWorkers    int
	ArticlesWorkers int
	FetchTimeout    time.Duration
	IndexShards     int
	Logger          *zap.Logger
}

func defaultConfig() Config {
	return Config{
		FeedsWorkers:    6,
		ArticlesWorkers: 12,
		FetchTimeout:    10 * time.Second,
		IndexShards:     8,
		Logger:          zap.NewNop(),
	}
}

// WithFeedsWorkers sets the capacity of the pool that fetches feeds.
func WithFeedsWorkers(n int) option.Option[Config] {
	return func(c *Config) { c.FeedsWorkers = n }
}

// WithArticlesWorkers sets the capacity of the pool that fetches articles.
func WithArticlesWorkers(n int) option.Option[Config] {
	return func(c *Config) { c.ArticlesWorkers = n }
}

// WithFetchTimeout bounds how long a single feed or article fetch may
// take before it is abandoned.
func WithFetchTimeout(d time.Duration) option.Option[Config] {
	return func(c *Config) { c.FetchTimeout = d }
}

// WithIndexShards sets how many lock-striped shards back the search
// index (see index.go). More shards reduce contention between article
// workers indexing concurrently. Query reads only the shard its term
// hashes to; finding that shard scans the shard list, so each lookup gets
// slightly more expensive as the shard count grows.
func WithIndexShards(n int) option.Option[Config] {
	return func(c *Config) { c.IndexShards = n }
}

// WithLogger sets the logger used for fetch failures and progress. The
// default is zap.NewNop().
func WithLogger(logger *zap.Logger) option.Option[Config] {
	return func(c *Config) { c.Logger = logger }
}
