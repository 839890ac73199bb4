package index

import (
	"fmt"
	"strings"

	"github.com/keyscout/keyscout/pkg/strsim"
	"github.com/keyscout/keyscout/pkg/tokenize"
)

// SearchType is the logical conjunction used to combine per-keyword results.
type SearchType int

const (
	// SearchKeyword treats the entire query as a single exact-match keyword.
	SearchKeyword SearchType = iota
	// SearchOr unions per-keyword results, ranked by match count.
	SearchOr
	// SearchAnd intersects per-keyword results.
	SearchAnd
	// SearchLive autocompletes the trailing partial keyword and combines it
	// with an And-search over the preceding keywords. Built for incremental
	// typing interfaces.
	SearchLive
)

// String returns the config-file spelling of the search type.
func (s SearchType) String() string {
	switch s {
	case SearchKeyword:
		return "keyword"
	case SearchOr:
		return "or"
	case SearchAnd:
		return "and"
	case SearchLive:
		return "live"
	}
	return "unknown"
}

// ParseSearchType converts a config-file spelling into a SearchType.
func ParseSearchType(s string) (SearchType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "keyword":
		return SearchKeyword, nil
	case "or":
		return SearchOr, nil
	case "and":
		return SearchAnd, nil
	case "live":
		return SearchLive, nil
	}
	return SearchOr, fmt.Errorf("unknown search type %q", s)
}

// AutocompleteType is the context scope applied to keyword completions.
type AutocompleteType int

const (
	// AutocompleteGlobal completes the trailing keyword from the whole
	// index, ignoring the preceding keywords. Cheapest; recommended for
	// large indexes.
	AutocompleteGlobal AutocompleteType = iota
	// AutocompleteContext keeps only completions related to records that
	// also match the preceding keywords.
	AutocompleteContext
	// AutocompleteKeyword treats the entire query as one keyword and
	// returns bare keyword completions without context handling.
	AutocompleteKeyword
)

// String returns the config-file spelling of the autocomplete type.
func (a AutocompleteType) String() string {
	switch a {
	case AutocompleteGlobal:
		return "global"
	case AutocompleteContext:
		return "context"
	case AutocompleteKeyword:
		return "keyword"
	}
	return "unknown"
}

// ParseAutocompleteType converts a config-file spelling into an
// AutocompleteType.
func ParseAutocompleteType(s string) (AutocompleteType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "global":
		return AutocompleteGlobal, nil
	case "context":
		return AutocompleteContext, nil
	case "keyword":
		return AutocompleteKeyword, nil
	}
	return AutocompleteContext, fmt.Errorf("unknown autocomplete type %q", s)
}

// Options is the immutable configuration snapshot consumed by a SearchIndex.
// Build one with DefaultOptions and adjust fields before calling New; the
// index never mutates it afterwards. Out-of-range values (for example a
// minimum keyword length above the maximum) are a caller contract violation.
type Options struct {
	// SearchType used by Search. SearchWith overrides it per call.
	SearchType SearchType
	// AutocompleteType used by Autocomplete. AutocompleteWith overrides it
	// per call.
	AutocompleteType AutocompleteType
	// SplitPattern holds the runes that separate keywords. nil selects
	// tokenize.DefaultSplitPattern.
	SplitPattern []rune
	// CaseSensitive disables lower-case keyword folding.
	CaseSensitive bool
	// MinKeywordLen and MaxKeywordLen bound indexed keyword length in runes.
	MinKeywordLen int
	MaxKeywordLen int
	// MaxStringLen, when greater than zero, also indexes each whole field
	// string (up to this rune length) as a single phrase keyword, enabling
	// phrase-level completion.
	MaxStringLen int
	// ExcludeKeywords are never indexed nor matched.
	ExcludeKeywords []string
	// MaxSearchResults caps the number of keys a search returns.
	MaxSearchResults int
	// MaxAutocompleteOptions caps the number of completions returned.
	MaxAutocompleteOptions int
	// MaxKeysPerKeyword caps a single keyword's key set at insertion time,
	// bounding worst-case fan-out for extremely popular keywords.
	MaxKeysPerKeyword int
	// DumpKeyword is a sentinel query that returns every key in the index.
	// Empty disables the sentinel.
	DumpKeyword string
	// FuzzyAlgorithm is the similarity metric used when an exact lookup
	// misses. strsim.None disables fuzzy matching.
	FuzzyAlgorithm strsim.Algorithm
	// FuzzyPrefixLen restricts fuzzy candidates to index keywords sharing
	// the query keyword's first n runes. Zero compares against the whole
	// index; query keywords shorter than n skip fuzzy matching.
	FuzzyPrefixLen int
	// FuzzyMinScore is the minimum normalized similarity, in [0, 1], for a
	// fuzzy candidate to be eligible.
	FuzzyMinScore float64
}

// DefaultOptions returns the documented defaults: Or search, Context
// autocomplete, case-insensitive keywords of 1 to 24 runes, whole strings up
// to 24 runes, 100 search results, 5 autocomplete options, 40960 keys per
// keyword, a NUL dump sentinel, and Levenshtein fuzzy matching over
// candidates sharing a 2-rune prefix with a 0.3 score floor.
func DefaultOptions() Options {
	return Options{
		SearchType:             SearchOr,
		AutocompleteType:       AutocompleteContext,
		SplitPattern:           nil,
		CaseSensitive:          false,
		MinKeywordLen:          1,
		MaxKeywordLen:          24,
		MaxStringLen:           24,
		MaxSearchResults:       100,
		MaxAutocompleteOptions: 5,
		MaxKeysPerKeyword:      40960,
		DumpKeyword:            "\x00",
		FuzzyAlgorithm:         strsim.Levenshtein,
		FuzzyPrefixLen:         2,
		FuzzyMinScore:          0.3,
	}
}

func (o Options) tokenizer() *tokenize.Tokenizer {
	return tokenize.New(tokenize.Options{
		SplitPattern:    o.SplitPattern,
		CaseSensitive:   o.CaseSensitive,
		MinKeywordLen:   o.MinKeywordLen,
		MaxKeywordLen:   o.MaxKeywordLen,
		MaxStringLen:    o.MaxStringLen,
		ExcludeKeywords: o.ExcludeKeywords,
	})
}
