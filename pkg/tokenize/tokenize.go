// Package tokenize turns raw record text into normalized keyword tokens.
//
// Tokenization must be deterministic: the index relies on a record producing
// the exact same token sequence on insert and on remove, otherwise removal
// would leave stale entries behind.
package tokenize

import (
	"strings"
	"unicode/utf8"
)

// DefaultSplitPattern is the rune set used to split text into keywords when
// no custom pattern is configured: whitespace plus a broad punctuation set.
var DefaultSplitPattern = []rune{
	'\t', '\n', '\r', ' ', '!', '"', '&', '(', ')', '*', '+', ',', '-',
	'.', '/', ':', ';', '<', '=', '>', '?', '[', '\\', ']', '^', '`',
	'{', '|', '}', '~',
}

// Tokenizer splits and normalizes text according to an immutable set of
// rules fixed at construction time.
type Tokenizer struct {
	split         map[rune]struct{}
	exclude       map[string]struct{}
	caseSensitive bool
	minLen        int
	maxLen        int
	maxStringLen  int
}

// Options configures a Tokenizer.
type Options struct {
	// SplitPattern is the set of runes that separate keywords. A nil slice
	// selects DefaultSplitPattern.
	SplitPattern []rune
	// CaseSensitive disables lower-case folding of tokens.
	CaseSensitive bool
	// MinKeywordLen and MaxKeywordLen bound accepted token length in runes.
	// Tokens outside the bounds are silently dropped.
	MinKeywordLen int
	MaxKeywordLen int
	// MaxStringLen, when greater than zero, enables whole-string tokens: the
	// entire normalized input is appended as one extra phrase token whenever
	// its rune length does not exceed this cutoff.
	MaxStringLen int
	// ExcludeKeywords lists normalized keywords that are never tokenized.
	ExcludeKeywords []string
}

// New builds a Tokenizer from the given options.
func New(opts Options) *Tokenizer {
	pattern := opts.SplitPattern
	if pattern == nil {
		pattern = DefaultSplitPattern
	}
	split := make(map[rune]struct{}, len(pattern))
	for _, r := range pattern {
		split[r] = struct{}{}
	}

	t := &Tokenizer{
		split:         split,
		caseSensitive: opts.CaseSensitive,
		minLen:        opts.MinKeywordLen,
		maxLen:        opts.MaxKeywordLen,
		maxStringLen:  opts.MaxStringLen,
	}
	if len(opts.ExcludeKeywords) > 0 {
		t.exclude = make(map[string]struct{}, len(opts.ExcludeKeywords))
		for _, kw := range opts.ExcludeKeywords {
			t.exclude[t.fold(kw)] = struct{}{}
		}
	}
	return t
}

// Tokens splits text into normalized keyword tokens. When wholeString is set
// and whole-string indexing is enabled, the trimmed normalized full string is
// appended as one extra token if it fits within the configured cutoff.
func (t *Tokenizer) Tokens(text string, wholeString bool) []string {
	folded := t.fold(text)

	var tokens []string
	for _, token := range strings.FieldsFunc(folded, t.isSplit) {
		if !t.accept(token) {
			continue
		}
		tokens = append(tokens, token)
	}

	if wholeString && t.maxStringLen > 0 {
		whole := strings.TrimFunc(folded, t.isSplit)
		if whole != "" && utf8.RuneCountInString(whole) <= t.maxStringLen && !t.excluded(whole) {
			tokens = append(tokens, whole)
		}
	}

	return tokens
}

// Normalize case-folds text and trims leading and trailing split runes. It is
// used by operations that treat an entire query as a single keyword.
func (t *Tokenizer) Normalize(text string) string {
	return strings.TrimFunc(t.fold(text), t.isSplit)
}

func (t *Tokenizer) fold(s string) string {
	if t.caseSensitive {
		return s
	}
	return strings.ToLower(s)
}

func (t *Tokenizer) isSplit(r rune) bool {
	_, ok := t.split[r]
	return ok
}

func (t *Tokenizer) accept(token string) bool {
	n := utf8.RuneCountInString(token)
	if n < t.minLen || n > t.maxLen {
		return false
	}
	return !t.excluded(token)
}

func (t *Tokenizer) excluded(token string) bool {
	if t.exclude == nil {
		return false
	}
	_, ok := t.exclude[token]
	return ok
}
