package feed

import (
	"fmt"
	"sync"
	"time"

	"github.com/ecloudclub/threadpool/heap"
	"github.com/ecloudclub/threadpool/loadbalance/consistencyhash"
)

// Index is a concurrent word -> matching-articles index. It stripes the
// index across IndexShards independent mutex-guarded shards, routing each
// term to a shard with a consistent hash ring so that the articles pool's
// concurrent workers (up to ArticlesWorkers of them) rarely contend on the
// same lock.
type Index struct {
	ring   *consistencyhash.ConsistentHash
	shards []*indexShard
}

type indexShard struct {
	mu      sync.Mutex
	entries map[string][]Match
}

// NewIndex builds an Index striped across shardCount shards.
func NewIndex(shardCount int) *Index {
	if shardCount < 1 {
		shardCount = 1
	}

	idx := &Index{
		ring:   consistencyhash.NewConsistentHash(32),
		shards: make([]*indexShard, shardCount),
	}
	for i := range idx.shards {
		idx.shards[i] = &indexShard{entries: make(map[string][]Match)}
		idx.ring.AddNode(fmt.Sprintf("shard-%d", i))
	}
	return idx
}

func (idx *Index) shardFor(term string) *indexShard {
	node := idx.ring.GetNode(term)
	for i, s := range idx.shards {
		if fmt.Sprintf("shard-%d", i) == node {
			return s
		}
	}
	// No nodes registered (shardCount handled in NewIndex, so this is
	// unreachable in practice); fall back to the first shard.
	return idx.shards[0]
}

// Add records that article contains each of tokens, counting repeats.
// Thread safe: concurrent calls from different article workers only
// contend when two terms happen to hash to the same shard.
func (idx *Index) Add(article Article, tokens []string) {
	counts := make(map[string]int, len(tokens))
	for _, tok := range tokens {
		counts[tok]++
	}

	now := time.Now()
	for term, count := range counts {
		shard := idx.shardFor(term)
		shard.mu.Lock()
		shard.entries[term] = append(shard.entries[term], Match{
			Article: article,
			Count:   count,
			At:      now,
		})
		shard.mu.Unlock()
	}
}

// Query returns the top-k articles containing term, ranked by how many
// times term appears in each.
func (idx *Index) Query(term string, topK int) []Match {
	if topK <= 0 {
		return nil
	}

	shard := idx.shardFor(term)
	shard.mu.Lock()
	matches := append([]Match(nil), shard.entries[term]...)
	shard.mu.Unlock()

	if len(matches) <= topK {
		sortMatchesDesc(matches)
		return matches
	}

	counts := make([]int, len(matches))
	for i, m := range matches {
		counts[i] = m.Count
	}
	keep := heap.TopK(counts, topK)

	threshold := keep[len(keep)-1]
	out := make([]Match, 0, topK)
	for _, m := range matches {
		if m.Count > threshold {
			out = append(out, m)
		}
	}
	for _, m := range matches {
		if m.Count == threshold && len(out) < topK {
			out = append(out, m)
		}
	}
	sortMatchesDesc(out)
	return out
}

func sortMatchesDesc(matches []Match) {
	for i := 1; i < len(matches); i++ {
		for j := i; j > 0 && matches[j].Count > matches[j-1].Count; j-- {
			matches[j], matches[j-1] = matches[j-1], matches[j]
		}
	}
}
