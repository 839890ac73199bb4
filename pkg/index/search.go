package index

import (
	"cmp"
	"sort"
)

// Search runs the configured SearchType over the index and returns matching
// keys, at most MaxSearchResults of them. An empty query yields an empty
// result; a query equal to the dump sentinel yields every key.
func (si *SearchIndex[K]) Search(query string) []K {
	return si.SearchWith(si.opts.SearchType, si.opts.MaxSearchResults, query)
}

// SearchWith runs a search with an explicit type and result cap, overriding
// the configured settings for this call only.
func (si *SearchIndex[K]) SearchWith(searchType SearchType, maxResults int, query string) []K {
	if si.opts.DumpKeyword != "" && query == si.opts.DumpKeyword {
		return truncate(si.store.dump(), maxResults)
	}

	switch searchType {
	case SearchKeyword:
		return si.searchKeyword(maxResults, query)
	case SearchOr:
		return si.searchOr(maxResults, query)
	case SearchAnd:
		return si.searchAnd(maxResults, query)
	case SearchLive:
		return si.searchLive(maxResults, query)
	}
	return nil
}

// searchKeyword treats the entire query as a single keyword and returns its
// stored key set verbatim, in natural key order.
func (si *SearchIndex[K]) searchKeyword(maxResults int, query string) []K {
	keyword := si.tok.Normalize(query)
	if keyword == "" {
		return nil
	}
	return truncate(si.matchKeyword(keyword), maxResults)
}

// searchOr unions per-keyword matches and ranks keys by descending count of
// distinct matched keywords, ties broken by ascending key order.
func (si *SearchIndex[K]) searchOr(maxResults int, query string) []K {
	counts := make(map[K]int)
	for _, keyword := range dedupe(si.queryKeywords(query)) {
		for _, key := range si.matchKeyword(keyword) {
			counts[key]++
		}
	}
	if len(counts) == 0 {
		return nil
	}

	ranked := make([]K, 0, len(counts))
	for key := range counts {
		ranked = append(ranked, key)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if counts[ranked[i]] != counts[ranked[j]] {
			return counts[ranked[i]] > counts[ranked[j]]
		}
		return ranked[i] < ranked[j]
	})
	return truncate(ranked, maxResults)
}

// searchAnd intersects per-keyword matches. A keyword with zero matches,
// even after the fuzzy fallback, empties the whole result. Surviving keys
// are in natural order; every key matched every keyword so no ranking is
// needed.
func (si *SearchIndex[K]) searchAnd(maxResults int, query string) []K {
	return truncate(si.andKeys(dedupe(si.queryKeywords(query))), maxResults)
}

// andKeys is the And-search core shared with live search and contextual
// autocomplete. It returns nil when keywords is empty.
func (si *SearchIndex[K]) andKeys(keywords []string) []K {
	var acc []K
	for i, keyword := range keywords {
		keys := si.matchKeyword(keyword)
		if len(keys) == 0 {
			return nil
		}
		if i == 0 {
			acc = keys
			continue
		}
		acc = intersect(acc, keys)
		if len(acc) == 0 {
			return nil
		}
	}
	return acc
}

// matchKeyword resolves one keyword to its key set, falling back to the
// closest fuzzy match when the exact lookup misses.
func (si *SearchIndex[K]) matchKeyword(keyword string) []K {
	if keys := si.store.exact(keyword); len(keys) > 0 {
		return keys
	}
	return si.fuzzyKeyword(keyword)
}

// intersect returns the ordered intersection of two ordered key slices.
func intersect[K cmp.Ordered](a, b []K) []K {
	var out []K
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			out = append(out, a[i])
			i++
			j++
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}
	return out
}

func truncate[K any](keys []K, max int) []K {
	if max > 0 && len(keys) > max {
		return keys[:max]
	}
	return keys
}

func dedupe(keywords []string) []string {
	seen := make(map[string]struct{}, len(keywords))
	out := keywords[:0]
	for _, kw := range keywords {
		if _, dup := seen[kw]; dup {
			continue
		}
		seen[kw] = struct{}{}
		out = append(out, kw)
	}
	return out
}
