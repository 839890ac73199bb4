package index

import (
	"cmp"
	"fmt"
	"sort"

	"github.com/tchap/go-patricia/v2/patricia"
)

// entry is one (keyword, key set) pair returned by a prefix range scan.
type entry[K cmp.Ordered] struct {
	keyword string
	keys    []K
}

// store is the inverted index: a patricia trie mapping each keyword to its
// keySet. The trie gives exact lookups and contiguous prefix subtree scans;
// scan output is sorted before use since subtree visit order follows trie
// structure, not lexicographic order.
//
// Invariants: no keyword maps to an empty set (entries are pruned the moment
// their last key is removed) and key sets are ordered and deduplicated. A
// violated invariant means the index is corrupt and is treated as a
// programming defect, not an error value.
type store[K cmp.Ordered] struct {
	trie     *patricia.Trie
	maxKeys  int
	keywords int
}

func newStore[K cmp.Ordered](maxKeys int) *store[K] {
	return &store[K]{
		trie:    patricia.NewTrie(),
		maxKeys: maxKeys,
	}
}

// add attaches key to keyword, creating the keyword entry when absent. The
// union insert is idempotent and capped at maxKeys keys per keyword.
func (s *store[K]) add(keyword string, key K) {
	if set := s.get(keyword); set != nil {
		set.add(key, s.maxKeys)
		return
	}
	set := &keySet[K]{}
	set.add(key, s.maxKeys)
	s.trie.Insert(patricia.Prefix(keyword), set)
	s.keywords++
}

// remove detaches key from keyword, deleting the keyword entry entirely once
// its set is empty.
func (s *store[K]) remove(keyword string, key K) {
	set := s.get(keyword)
	if set == nil {
		return
	}
	if set.remove(key) {
		s.trie.Delete(patricia.Prefix(keyword))
		s.keywords--
	}
}

// exact returns the key set stored for keyword, nil when absent. The slice
// is the store's own and must not be mutated by callers.
func (s *store[K]) exact(keyword string) []K {
	set := s.get(keyword)
	if set == nil {
		return nil
	}
	return set.keys
}

// prefixRange returns every (keyword, key set) pair whose keyword starts
// with prefix, in ascending keyword order. An empty prefix scans the whole
// index.
func (s *store[K]) prefixRange(prefix string) []entry[K] {
	var entries []entry[K]
	visit := func(p patricia.Prefix, item patricia.Item) error {
		entries = append(entries, entry[K]{
			keyword: string(p),
			keys:    s.item(p, item).keys,
		})
		return nil
	}
	if prefix == "" {
		s.trie.Visit(visit)
	} else {
		s.trie.VisitSubtree(patricia.Prefix(prefix), visit)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].keyword < entries[j].keyword
	})
	return entries
}

// dump returns every key in the index in natural order.
func (s *store[K]) dump() []K {
	set := &keySet[K]{}
	s.trie.Visit(func(p patricia.Prefix, item patricia.Item) error {
		for _, key := range s.item(p, item).keys {
			set.add(key, 0)
		}
		return nil
	})
	return set.keys
}

// len reports the number of distinct keywords in the index.
func (s *store[K]) len() int { return s.keywords }

func (s *store[K]) get(keyword string) *keySet[K] {
	item := s.trie.Get(patricia.Prefix(keyword))
	if item == nil {
		return nil
	}
	return s.item(patricia.Prefix(keyword), item)
}

func (s *store[K]) item(p patricia.Prefix, item patricia.Item) *keySet[K] {
	set, ok := item.(*keySet[K])
	if !ok {
		panic(fmt.Sprintf("index: keyword %q holds %T, index corrupt", p, item))
	}
	if set.len() == 0 {
		panic(fmt.Sprintf("index: keyword %q maps to an empty key set, index corrupt", p))
	}
	return set
}
