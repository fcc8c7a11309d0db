package feed

import (
	"context"

	"go.uber.org/zap"

	"github.com/ecloudclub/threadpool/option"
	"github.com/ecloudclub/threadpool/pool"
)

// Aggregator runs two pool.Pools: a small pool that fetches RSS feeds and
// schedules one article-fetch thunk per discovered article onto a larger
// pool, then an index query surface once both pools drain.
type Aggregator struct {
	cfg          Config
	feedsPool    *pool.Pool
	articlesPool *pool.Pool
	index        *Index
}

// NewAggregator builds an Aggregator and starts its two pools.
func NewAggregator(opts ...option.Option[Config]) (*Aggregator, error) {
	cfg := defaultConfig()
	option.Apply(&cfg, opts...)
	cfg.Logger = NewLogger(cfg.Logger)

	feedsPool, err := pool.New(cfg.FeedsWorkers, pool.WithLogger(cfg.Logger))
	if err != nil {
		return nil, err
	}
	articlesPool, err := pool.New(cfg.ArticlesWorkers, pool.WithLogger(cfg.Logger))
	if err != nil {
		feedsPool.Close()
		return nil, err
	}

	return &Aggregator{
		cfg:          cfg,
		feedsPool:    feedsPool,
		articlesPool: articlesPool,
		index:        NewIndex(cfg.IndexShards),
	}, nil
}

// Close tears down both pools. Call it only after Run has returned.
func (a *Aggregator) Close() error {
	if err := a.feedsPool.Close(); err != nil {
		return err
	}
	return a.articlesPool.Close()
}

// Run schedules one feed-fetch thunk per source, waits for every feed to
// finish (which itself schedules article-fetch thunks as feeds resolve),
// then waits for every article to finish indexing. The two-wait ordering
// matters: a feed can still be discovering articles while an earlier
// feed's articles are already indexing, so feedsPool must drain first.
func (a *Aggregator) Run(ctx context.Context, sources []Source) error {
	for _, src := range sources {
		src := src // captured by value, one copy per thunk
		if err := a.feedsPool.Schedule(func() { a.processFeed(ctx, src) }); err != nil {
			return err
		}
	}
	a.feedsPool.Wait()
	a.articlesPool.Wait()
	return nil
}

// Query returns up to topK articles containing term, ranked by frequency.
func (a *Aggregator) Query(term string, topK int) []Match {
	return a.index.Query(term, topK)
}

// processFeed fetches and parses one feed, then schedules an article-fetch
// thunk per discovered article. The article thunks are handed the
// original, un-timed-out ctx rather than processFeed's own timeout-bound
// one: that one is cancelled when processFeed returns, which happens well
// before the scheduled thunks run on articlesPool.
func (a *Aggregator) processFeed(ctx context.Context, src Source) {
	fetchCtx, cancel := context.WithTimeout(ctx, a.cfg.FetchTimeout)
	body, err := fetch(fetchCtx, src.URL)
	cancel()
	if err != nil {
		a.cfg.Logger.Warn("failed to fetch feed, ignoring",
			zap.String("feedURL", src.URL), zap.Error(err))
		return
	}

	articles, err := parseRSS(body, src.URL)
	if err != nil {
		a.cfg.Logger.Warn("failed to parse feed, ignoring",
			zap.String("feedURL", src.URL), zap.Error(err))
		return
	}

	for _, art := range articles {
		art := art // captured by value, one copy per thunk
		if err := a.articlesPool.Schedule(func() { a.processArticle(ctx, art) }); err != nil {
			a.cfg.Logger.Warn("failed to schedule article fetch",
				zap.String("feedURL", art.URL), zap.Error(err))
			return
		}
	}
}

func (a *Aggregator) processArticle(ctx context.Context, art Article) {
	ctx, cancel := context.WithTimeout(ctx, a.cfg.FetchTimeout)
	defer cancel()

	body, err := fetch(ctx, art.URL)
	if err != nil {
		a.cfg.Logger.Warn("failed to fetch article, ignoring",
			zap.String("feedURL", art.URL), zap.Error(err))
		return
	}

	tokens := tokenize(body)
	a.index.Add(art, tokens)
}
