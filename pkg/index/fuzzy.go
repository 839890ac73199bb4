package index

import (
	"github.com/charmbracelet/log"

	"github.com/keyscout/keyscout/pkg/strsim"
)

// fuzzyScope derives the candidate range for fuzzy-matching keyword. With a
// configured prefix length n, only index keywords sharing keyword's first n
// runes are compared, which keeps the scan near prefix-lookup cost instead
// of a full index walk. A keyword shorter than n skips fuzzy matching; a
// length of zero compares against the whole index.
func (si *SearchIndex[K]) fuzzyScope(keyword string) (string, bool) {
	if si.opts.FuzzyAlgorithm == strsim.None {
		return "", false
	}
	n := si.opts.FuzzyPrefixLen
	if n <= 0 {
		return "", true
	}
	runes := []rune(keyword)
	if len(runes) < n {
		return "", false
	}
	return string(runes[:n]), true
}

// fuzzyKeyword finds the single closest-scoring index keyword for a missed
// exact lookup and returns its key set in place of the miss. Ties keep the
// first keyword in scan order.
func (si *SearchIndex[K]) fuzzyKeyword(keyword string) []K {
	scope, ok := si.fuzzyScope(keyword)
	if !ok {
		return nil
	}

	var (
		bestKeys  []K
		bestScore float64
		bestWord  string
	)
	for _, cand := range si.store.prefixRange(scope) {
		score := strsim.Similarity(si.opts.FuzzyAlgorithm, cand.keyword, keyword)
		if score < si.opts.FuzzyMinScore || score <= bestScore {
			continue
		}
		bestKeys = cand.keys
		bestScore = score
		bestWord = cand.keyword
	}
	if bestKeys != nil {
		log.Debugf("fuzzy: substituted %q for %q (score %.2f)", bestWord, keyword, bestScore)
	}
	return bestKeys
}

// fuzzyAutocomplete collects the best-scoring completion candidates for a
// partial keyword whose prefix range came up empty. Output is ordered by
// descending score, capped at limit.
func (si *SearchIndex[K]) fuzzyAutocomplete(keyword string, limit int) []entry[K] {
	scope, ok := si.fuzzyScope(keyword)
	if !ok {
		return nil
	}

	top := strsim.NewTopScores[K](limit)
	for _, cand := range si.store.prefixRange(scope) {
		score := strsim.Similarity(si.opts.FuzzyAlgorithm, cand.keyword, keyword)
		if score >= si.opts.FuzzyMinScore {
			top.Insert(cand.keyword, cand.keys, score)
		}
	}

	results := top.Results()
	entries := make([]entry[K], 0, len(results))
	for _, cand := range results {
		entries = append(entries, entry[K]{keyword: cand.Keyword, keys: cand.Keys})
	}
	return entries
}
