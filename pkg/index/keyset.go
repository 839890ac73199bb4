package index

import (
	"cmp"
	"slices"

	"github.com/charmbracelet/log"
)

// keySet is an ordered, deduplicated set of record keys attached to one
// keyword. Keys are kept in a sorted slice; sets are small relative to the
// index and are capped at insertion time.
type keySet[K cmp.Ordered] struct {
	keys []K
}

// add inserts key in sorted position. The insert is idempotent and silently
// refused once the set holds maxKeys entries.
func (s *keySet[K]) add(key K, maxKeys int) {
	i, found := slices.BinarySearch(s.keys, key)
	if found {
		return
	}
	if maxKeys > 0 && len(s.keys) >= maxKeys {
		log.Debugf("key set at capacity %d, dropping key", maxKeys)
		return
	}
	s.keys = slices.Insert(s.keys, i, key)
}

// remove deletes key from the set and reports whether the set is now empty.
func (s *keySet[K]) remove(key K) bool {
	if i, found := slices.BinarySearch(s.keys, key); found {
		s.keys = slices.Delete(s.keys, i, i+1)
	}
	return len(s.keys) == 0
}

func (s *keySet[K]) len() int { return len(s.keys) }
