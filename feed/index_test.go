package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndexAddAndQuery(t *testing.T) {
	idx := NewIndex(4)

	idx.Add(Article{Title: "A", URL: "http://a"}, []string{"go", "go", "channel"})
	idx.Add(Article{Title: "B", URL: "http://b"}, []string{"go"})
	idx.Add(Article{Title: "C", URL: "http://c"}, []string{"channel", "channel", "channel"})

	goMatches := idx.Query("go", 10)
	assert.Len(t, goMatches, 2)
	assert.Equal(t, 2, goMatches[0].Count, "article A mentions go twice, ranked first")

	channelMatches := idx.Query("channel", 1)
	assert.Len(t, channelMatches, 1)
	assert.Equal(t, "C", channelMatches[0].Article.Title)

	assert.Empty(t, idx.Query("nonexistent", 5))
}

func TestIndexQueryRespectsTopK(t *testing.T) {
	idx := NewIndex(2)
	for i := 0; i < 5; i++ {
		idx.Add(Article{Title: "x"}, []string{"term"})
	}
	assert.Len(t, idx.Query("term", 2), 2)
}
