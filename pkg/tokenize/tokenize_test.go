package tokenize

import (
	"reflect"
	"testing"
)

func TestTokens(t *testing.T) {
	testCases := []struct {
		name        string
		opts        Options
		text        string
		wholeString bool
		want        []string
	}{
		{
			name: "splits on whitespace and punctuation",
			opts: Options{MinKeywordLen: 1, MaxKeywordLen: 24},
			text: "Last crowned Anglo-Saxon king of England.",
			want: []string{"last", "crowned", "anglo", "saxon", "king", "of", "england"},
		},
		{
			name: "case folding",
			opts: Options{MinKeywordLen: 1, MaxKeywordLen: 24},
			text: "Edgar Ætheling",
			want: []string{"edgar", "ætheling"},
		},
		{
			name: "case sensitive mode keeps capitals",
			opts: Options{CaseSensitive: true, MinKeywordLen: 1, MaxKeywordLen: 24},
			text: "William Rufus",
			want: []string{"William", "Rufus"},
		},
		{
			name: "length bounds drop tokens silently",
			opts: Options{MinKeywordLen: 3, MaxKeywordLen: 6},
			text: "a ab abc abcdef abcdefg",
			want: []string{"abc", "abcdef"},
		},
		{
			name: "excluded keywords are never tokenized",
			opts: Options{MinKeywordLen: 1, MaxKeywordLen: 24, ExcludeKeywords: []string{"the", "of"}},
			text: "son of the Conqueror",
			want: []string{"son", "conqueror"},
		},
		{
			name:        "whole string token within cutoff",
			opts:        Options{MinKeywordLen: 1, MaxKeywordLen: 24, MaxStringLen: 24},
			text:        "William the Conqueror",
			wholeString: true,
			want:        []string{"william", "the", "conqueror", "william the conqueror"},
		},
		{
			name:        "whole string beyond cutoff is dropped",
			opts:        Options{MinKeywordLen: 1, MaxKeywordLen: 24, MaxStringLen: 10},
			text:        "William the Conqueror",
			wholeString: true,
			want:        []string{"william", "the", "conqueror"},
		},
		{
			name: "whole string mode off for queries",
			opts: Options{MinKeywordLen: 1, MaxKeywordLen: 24, MaxStringLen: 24},
			text: "William the Conqueror",
			want: []string{"william", "the", "conqueror"},
		},
		{
			name: "custom split pattern",
			opts: Options{SplitPattern: []rune{'_'}, MinKeywordLen: 1, MaxKeywordLen: 24},
			text: "alpha_beta gamma",
			want: []string{"alpha", "beta gamma"},
		},
		{
			name: "empty input",
			opts: Options{MinKeywordLen: 1, MaxKeywordLen: 24},
			text: "   ",
			want: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := New(tc.opts).Tokens(tc.text, tc.wholeString)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Tokens(%q) = %v, want %v", tc.text, got, tc.want)
			}
		})
	}
}

func TestTokensDeterministic(t *testing.T) {
	tok := New(Options{MinKeywordLen: 1, MaxKeywordLen: 24, MaxStringLen: 24})
	text := "Third son of William the Conqueror."

	first := tok.Tokens(text, true)
	for i := 0; i < 10; i++ {
		if got := tok.Tokens(text, true); !reflect.DeepEqual(got, first) {
			t.Fatalf("tokenization not deterministic: %v != %v", got, first)
		}
	}
}

func TestNormalize(t *testing.T) {
	tok := New(Options{MinKeywordLen: 1, MaxKeywordLen: 24})

	if got := tok.Normalize("  Wessex. "); got != "wessex" {
		t.Errorf("Normalize = %q, want %q", got, "wessex")
	}
	if got := tok.Normalize("...."); got != "" {
		t.Errorf("Normalize of separators = %q, want empty", got)
	}
}
