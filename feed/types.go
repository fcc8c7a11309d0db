// Package feed implements a small RSS aggregation pipeline on top of
// package pool: schedule one feed-fetch thunk per source onto a pool,
// wait, then schedule one article-fetch thunk per discovered article onto
// a second pool, wait again, and index the results for term lookup. It
// deliberately skips on-disk caching and full HTML parsing.

package feed

import "time"

// Source identifies one RSS feed to pull articles from.
type Source struct {
	Title string
	URL   string
}

// Article is one entry discovered inside a feed.
type Article struct {
	Title   string
	URL     string
	FeedURL string
}

// Match is one article that contains a searched term, with how many times
// the term appears in it.
type Match struct {
	Article Article
	Count   int
	At      time.Time
}
