package index

import "strings"

// Autocomplete completes the query using the configured scope and returns at
// most MaxAutocompleteOptions completed query strings.
func (si *SearchIndex[K]) Autocomplete(query string) []string {
	return si.AutocompleteWith(si.opts.AutocompleteType, si.opts.MaxAutocompleteOptions, query)
}

// AutocompleteWith completes the query with an explicit scope and option
// cap, overriding the configured settings for this call only.
//
// Whole-string phrase tokens participate in every scope, so short indexed
// fields complete as full phrases.
func (si *SearchIndex[K]) AutocompleteWith(scope AutocompleteType, maxOptions int, query string) []string {
	switch scope {
	case AutocompleteGlobal:
		return si.autocompleteGlobal(maxOptions, query)
	case AutocompleteContext:
		return si.autocompleteContext(maxOptions, query)
	case AutocompleteKeyword:
		return si.autocompleteKeyword(maxOptions, query)
	}
	return nil
}

// autocompleteGlobal completes the trailing keyword from the full prefix
// range, ignoring the preceding context keywords. Candidates arrive in
// lexicographic order, or score-descending when sourced from the fuzzy
// fallback.
func (si *SearchIndex[K]) autocompleteGlobal(maxOptions int, query string) []string {
	keywords := si.queryKeywords(query)
	if len(keywords) == 0 {
		return nil
	}
	last := keywords[len(keywords)-1]
	context := keywords[:len(keywords)-1]

	var options []string
	for _, cand := range si.completionCandidates(last, maxOptions) {
		options = append(options, joinQuery(context, cand.keyword))
	}
	return options
}

// autocompleteContext keeps only completions whose key set intersects the
// And-search result of the context keywords. No filtering happens when the
// context is empty, or when the context search itself comes back empty:
// unindexed context keywords should not starve the user of completions.
func (si *SearchIndex[K]) autocompleteContext(maxOptions int, query string) []string {
	keywords := si.queryKeywords(query)
	if len(keywords) == 0 {
		return nil
	}
	last := keywords[len(keywords)-1]
	context := keywords[:len(keywords)-1]

	candidates := si.store.prefixRange(last)
	if len(candidates) == 0 {
		candidates = si.fuzzyAutocomplete(last, maxOptions)
	}

	contextKeys := si.andKeys(context)
	var options []string
	for _, cand := range candidates {
		if len(options) >= maxOptions {
			break
		}
		if len(contextKeys) > 0 && len(intersect(cand.keys, contextKeys)) == 0 {
			continue
		}
		options = append(options, joinQuery(context, cand.keyword))
	}
	return options
}

// autocompleteKeyword treats the entire query as one keyword and returns
// bare keyword completions, without context splitting or substitution.
func (si *SearchIndex[K]) autocompleteKeyword(maxOptions int, query string) []string {
	keyword := si.tok.Normalize(query)
	if keyword == "" {
		return nil
	}

	var options []string
	for _, cand := range si.completionCandidates(keyword, maxOptions) {
		options = append(options, cand.keyword)
	}
	return options
}

// joinQuery substitutes the completed keyword into the final position of the
// original keyword sequence.
func joinQuery(context []string, completed string) string {
	if len(context) == 0 {
		return completed
	}
	return strings.Join(context, " ") + " " + completed
}
