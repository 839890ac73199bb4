package index

import (
	"cmp"

	"github.com/charmbracelet/log"

	"github.com/keyscout/keyscout/pkg/tokenize"
)

// Record is the application-supplied extraction contract: it returns every
// string of a record that should be indexed. Extraction must be
// deterministic so that Remove can re-derive the exact keyword set a prior
// Insert produced.
type Record interface {
	SearchStrings() []string
}

// Strings adapts a plain string slice to the Record interface.
type Strings []string

// SearchStrings returns the slice itself.
func (s Strings) SearchStrings() []string { return s }

// SearchIndex is an inverted keyword index over records identified by
// opaque, totally ordered keys. The zero value is not usable; construct with
// New.
type SearchIndex[K cmp.Ordered] struct {
	store *store[K]
	tok   *tokenize.Tokenizer
	opts  Options
}

// New returns an empty index configured by the given immutable options
// snapshot.
func New[K cmp.Ordered](opts Options) *SearchIndex[K] {
	return &SearchIndex[K]{
		store: newStore[K](opts.MaxKeysPerKeyword),
		tok:   opts.tokenizer(),
		opts:  opts,
	}
}

// Insert indexes a record under key: every keyword derived from the record's
// strings gains key in its key set. Inserting the same (key, record) pair
// twice is equivalent to inserting it once.
func (si *SearchIndex[K]) Insert(key K, rec Record) {
	keywords := si.recordKeywords(rec)
	for _, kw := range keywords {
		si.store.add(kw, key)
	}
	log.Debugf("indexed %d keywords for key %v", len(keywords), key)
}

// Remove un-indexes a record: key is removed from the key set of every
// keyword the record yields, and keywords left with empty sets are pruned.
// The record must be the same value that was inserted.
func (si *SearchIndex[K]) Remove(key K, rec Record) {
	for _, kw := range si.recordKeywords(rec) {
		si.store.remove(kw, key)
	}
}

// Replace swaps the record stored under key: the old record is removed and
// the new one inserted.
func (si *SearchIndex[K]) Replace(key K, oldRec, newRec Record) {
	si.Remove(key, oldRec)
	si.Insert(key, newRec)
}

// Keywords reports the number of distinct keywords currently indexed.
func (si *SearchIndex[K]) Keywords() int {
	return si.store.len()
}

// DumpKeys returns every key in the index in natural order.
func (si *SearchIndex[K]) DumpKeys() []K {
	return si.store.dump()
}

func (si *SearchIndex[K]) recordKeywords(rec Record) []string {
	var keywords []string
	for _, text := range rec.SearchStrings() {
		keywords = append(keywords, si.tok.Tokens(text, true)...)
	}
	return keywords
}

// queryKeywords tokenizes a query string with whole-string mode disabled.
func (si *SearchIndex[K]) queryKeywords(query string) []string {
	return si.tok.Tokens(query, false)
}
