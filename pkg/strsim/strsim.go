// Package strsim provides the approximate string-similarity fallback used
// when an exact keyword lookup misses, plus a bounded best-N score tracker
// for ranking fuzzy autocomplete candidates.
package strsim

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	edlib "github.com/hbollon/go-edlib"
)

// Algorithm selects the similarity metric. The metric is chosen once at
// configuration time and dispatched through a single switch in Similarity,
// keeping the hot path free of interface indirection.
type Algorithm int

const (
	// None disables fuzzy matching entirely.
	None Algorithm = iota
	Levenshtein
	DamerauLevenshtein
	Jaro
	JaroWinkler
	SorensenDice
)

// String returns the config-file spelling of the algorithm.
func (a Algorithm) String() string {
	switch a {
	case None:
		return "none"
	case Levenshtein:
		return "levenshtein"
	case DamerauLevenshtein:
		return "damerau-levenshtein"
	case Jaro:
		return "jaro"
	case JaroWinkler:
		return "jaro-winkler"
	case SorensenDice:
		return "sorensen-dice"
	}
	return "unknown"
}

// ParseAlgorithm converts a config-file spelling into an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return None, nil
	case "levenshtein":
		return Levenshtein, nil
	case "damerau-levenshtein", "damerau_levenshtein":
		return DamerauLevenshtein, nil
	case "jaro":
		return Jaro, nil
	case "jaro-winkler", "jaro_winkler":
		return JaroWinkler, nil
	case "sorensen-dice", "sorensen_dice":
		return SorensenDice, nil
	}
	return None, fmt.Errorf("unknown similarity algorithm %q", s)
}

// Similarity scores how alike two strings are, normalized to [0, 1] where 1
// is an exact match. An Algorithm of None always scores zero.
func Similarity(alg Algorithm, a, b string) float64 {
	var metric edlib.Algorithm
	switch alg {
	case Levenshtein:
		metric = edlib.Levenshtein
	case DamerauLevenshtein:
		metric = edlib.DamerauLevenshtein
	case Jaro:
		metric = edlib.Jaro
	case JaroWinkler:
		metric = edlib.JaroWinkler
	case SorensenDice:
		metric = edlib.SorensenDice
	default:
		return 0
	}

	score, err := edlib.StringsSimilarity(a, b, metric)
	if err != nil {
		log.Errorf("similarity %s(%q, %q): %v", alg, a, b, err)
		return 0
	}
	return float64(score)
}
