package index

// searchLive implements search-as-you-type: the query is split into context
// keywords (all but the last) and one partial trailing keyword. The context
// is And-searched, the partial keyword is expanded into completion
// candidates by prefix scan (with fuzzy fallback), and the two are combined.
//
// The zero-context and nonzero-context branches are genuinely different
// policies and are kept as two named cases: with no context the candidate
// key sets are simply unioned, while with context each candidate's key set
// is first intersected with the context result, so a key qualifies only if
// it satisfies the full context and some completion of the partial term.
func (si *SearchIndex[K]) searchLive(maxResults int, query string) []K {
	keywords := si.queryKeywords(query)
	if len(keywords) == 0 {
		return nil
	}
	last := keywords[len(keywords)-1]
	context := keywords[:len(keywords)-1]

	candidates := si.completionCandidates(last, si.opts.MaxAutocompleteOptions)

	if len(context) == 0 {
		return si.liveUnion(maxResults, candidates)
	}
	return si.liveContextual(maxResults, candidates, si.andKeys(context))
}

// liveUnion handles the zero-context branch: the union of every candidate's
// key set, capped.
func (si *SearchIndex[K]) liveUnion(maxResults int, candidates []entry[K]) []K {
	set := &keySet[K]{}
	for _, cand := range candidates {
		for _, key := range cand.keys {
			set.add(key, 0)
		}
	}
	return truncate(set.keys, maxResults)
}

// liveContextual handles the nonzero-context branch: each candidate's key
// set is intersected with the context And-search result before the union.
func (si *SearchIndex[K]) liveContextual(maxResults int, candidates []entry[K], contextKeys []K) []K {
	set := &keySet[K]{}
	for _, cand := range candidates {
		for _, key := range intersect(cand.keys, contextKeys) {
			set.add(key, 0)
		}
	}
	return truncate(set.keys, maxResults)
}

// completionCandidates expands a partial keyword into (keyword, key set)
// candidates: the contiguous prefix range in ascending keyword order, or the
// best fuzzy matches in descending score order when the range is empty.
// At most limit candidates are returned.
func (si *SearchIndex[K]) completionCandidates(partial string, limit int) []entry[K] {
	if candidates := si.store.prefixRange(partial); len(candidates) > 0 {
		return truncate(candidates, limit)
	}
	return si.fuzzyAutocomplete(partial, limit)
}
