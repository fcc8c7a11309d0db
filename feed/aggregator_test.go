package feed

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregatorRunIndexesArticles(t *testing.T) {
	article1 := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "Go channels make goroutines communicate safely. Channels are great.")
	}))
	defer article1.Close()

	article2 := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "Mutexes are another way to share memory between goroutines.")
	}))
	defer article2.Close()

	feedServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `<?xml version="1.0"?>
<rss version="2.0"><channel>
<item><title>Channels</title><link>%s</link></item>
<item><title>Mutexes</title><link>%s</link></item>
</channel></rss>`, article1.URL, article2.URL)
	}))
	defer feedServer.Close()

	agg, err := NewAggregator(WithFeedsWorkers(2), WithArticlesWorkers(2))
	require.NoError(t, err)
	defer agg.Close()

	err = agg.Run(context.Background(), []Source{{Title: "Test Feed", URL: feedServer.URL}})
	require.NoError(t, err)

	matches := agg.Query("goroutines", 5)
	require.Len(t, matches, 2)
	for _, m := range matches {
		assert.GreaterOrEqual(t, m.Count, 1)
	}

	assert.Empty(t, agg.Query("nonexistentword", 5))
}

func TestAggregatorRunIgnoresUnreachableFeed(t *testing.T) {
	agg, err := NewAggregator(WithFeedsWorkers(1), WithArticlesWorkers(1))
	require.NoError(t, err)
	defer agg.Close()

	err = agg.Run(context.Background(), []Source{{Title: "Dead", URL: "http://127.0.0.1:0/does-not-exist"}})
	require.NoError(t, err, "a single unreachable feed should be logged and skipped, not fail Run")
}
