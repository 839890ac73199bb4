package strsim

import (
	"cmp"
	"container/heap"
	"sort"
)

// Candidate pairs an index keyword and its key set with a similarity score.
type Candidate[K cmp.Ordered] struct {
	Keyword string
	Keys    []K
	Score   float64
}

// TopScores tracks the best-N scoring candidates seen during a single index
// scan. While below capacity every candidate is retained; at capacity a new
// candidate evicts the current lowest score only when it scores strictly
// higher. The tracker is backed by a fixed-capacity min-heap so insert and
// evict cost O(log capacity).
type TopScores[K cmp.Ordered] struct {
	capacity int
	top      candidateHeap[K]
}

// NewTopScores returns a tracker retaining at most capacity candidates.
func NewTopScores[K cmp.Ordered](capacity int) *TopScores[K] {
	return &TopScores[K]{
		capacity: capacity,
		top:      make(candidateHeap[K], 0, capacity),
	}
}

// Insert offers a candidate to the tracker.
func (t *TopScores[K]) Insert(keyword string, keys []K, score float64) {
	if t.capacity <= 0 {
		return
	}
	if len(t.top) < t.capacity {
		heap.Push(&t.top, Candidate[K]{Keyword: keyword, Keys: keys, Score: score})
		return
	}
	if score > t.top[0].Score {
		t.top[0] = Candidate[K]{Keyword: keyword, Keys: keys, Score: score}
		heap.Fix(&t.top, 0)
	}
}

// Results returns the retained candidates ordered by descending score,
// ties broken by ascending keyword. The tracker is drained afterwards.
func (t *TopScores[K]) Results() []Candidate[K] {
	out := make([]Candidate[K], len(t.top))
	copy(out, t.top)
	t.top = t.top[:0]

	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Keyword < out[j].Keyword
	})
	return out
}

// candidateHeap is a min-heap on score; the root is the eviction target.
// Among equal scores the lexicographically greater keyword sits closer to
// the root so that earlier (smaller) keywords survive eviction.
type candidateHeap[K cmp.Ordered] []Candidate[K]

func (h candidateHeap[K]) Len() int { return len(h) }

func (h candidateHeap[K]) Less(i, j int) bool {
	if h[i].Score != h[j].Score {
		return h[i].Score < h[j].Score
	}
	return h[i].Keyword > h[j].Keyword
}

func (h candidateHeap[K]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *candidateHeap[K]) Push(x any) {
	*h = append(*h, x.(Candidate[K]))
}

func (h *candidateHeap[K]) Pop() any {
	old := *h
	n := len(old)
	c := old[n-1]
	*h = old[:n-1]
	return c
}
