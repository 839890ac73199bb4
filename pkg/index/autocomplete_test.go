package index

import (
	"reflect"
	"testing"
)

func TestAutocompleteContext(t *testing.T) {
	idx := newMonarchIndex(DefaultOptions())

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{
			"context filters completions",
			"Edgar last c",
			[]string{"edgar last cerdic"},
		},
		{
			"phrase tokens complete",
			"1087 w",
			[]string{"1087 william", "1087 william rufus"},
		},
		{
			"no context",
			"w",
			[]string{"wessex", "william", "william rufus", "william the conqueror"},
		},
		{
			"empty query",
			"",
			nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := idx.Autocomplete(tt.query)
			if !sameOptions(got, tt.want) {
				t.Errorf("Autocomplete(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestAutocompleteGlobal(t *testing.T) {
	idx := newMonarchIndex(DefaultOptions())

	// Global ignores the context when picking candidates, so "1100" does
	// not narrow the "e" completions.
	got := idx.AutocompleteWith(AutocompleteGlobal, 5, "1100 e")
	want := []string{"1100 edgar", "1100 edgar ætheling", "1100 england"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("AutocompleteWith(Global, %q) = %v, want %v", "1100 e", got, want)
	}

	got = idx.AutocompleteWith(AutocompleteGlobal, 5, "1087 w")
	want = []string{"1087 wessex", "1087 william", "1087 william rufus", "1087 william the conqueror"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("AutocompleteWith(Global, %q) = %v, want %v", "1087 w", got, want)
	}
}

func TestAutocompleteKeyword(t *testing.T) {
	idx := newMonarchIndex(DefaultOptions())

	got := idx.AutocompleteWith(AutocompleteKeyword, 5, "E")
	want := []string{"edgar", "edgar ætheling", "england"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("AutocompleteWith(Keyword, %q) = %v, want %v", "E", got, want)
	}
}

func TestAutocompleteMaxOptions(t *testing.T) {
	idx := newMonarchIndex(DefaultOptions())

	got := idx.AutocompleteWith(AutocompleteContext, 1, "1087 w")
	if !reflect.DeepEqual(got, []string{"1087 william"}) {
		t.Errorf("capped Context completions = %v, want [1087 william]", got)
	}

	got = idx.AutocompleteWith(AutocompleteKeyword, 2, "E")
	if !reflect.DeepEqual(got, []string{"edgar", "edgar ætheling"}) {
		t.Errorf("capped Keyword completions = %v, want first two", got)
	}
}

func TestAutocompleteUnindexedContext(t *testing.T) {
	idx := newWordIndex(DefaultOptions(), "apple", "ball", "bird", "birthday", "red")

	// "a very big" matches no record, so the context filter stands down
	// instead of starving the user of completions.
	got := idx.Autocomplete("a very big bi")
	want := []string{"a very big bird", "a very big birthday"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Autocomplete(%q) = %v, want %v", "a very big bi", got, want)
	}
}

func TestAutocompleteFuzzyFallback(t *testing.T) {
	idx := newWordIndex(DefaultOptions(), "apple", "ball", "bird", "birthday", "red")

	// "birf" has no prefix range; Levenshtein ranks bird (0.75) above
	// birthday (0.375), both above the score floor.
	got := idx.Autocomplete("a very big birf")
	want := []string{"a very big bird", "a very big birthday"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Autocomplete(%q) = %v, want %v", "a very big birf", got, want)
	}

	got = idx.AutocompleteWith(AutocompleteKeyword, 5, "birf")
	want = []string{"bird", "birthday"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("AutocompleteWith(Keyword, %q) = %v, want %v", "birf", got, want)
	}
}

func TestAutocompleteContextNeverDisjoint(t *testing.T) {
	idx := newMonarchIndex(DefaultOptions())

	// Every completion for a non-empty indexed context must share at
	// least one key with that context's And-search result.
	for _, query := range []string{"1066 w", "william c", "last king e"} {
		keywords := idx.queryKeywords(query)
		contextKeys := idx.andKeys(keywords[:len(keywords)-1])
		if len(contextKeys) == 0 {
			t.Fatalf("fixture context %q matched nothing", query)
		}
		for _, option := range idx.Autocomplete(query) {
			parts := idx.queryKeywords(option)
			completed := parts[len(parts)-1]
			if len(intersect(idx.store.exact(completed), contextKeys)) == 0 {
				t.Errorf("completion %q disjoint from context of %q", option, query)
			}
		}
	}
}

func sameOptions(got, want []string) bool {
	if len(got) == 0 && len(want) == 0 {
		return true
	}
	return reflect.DeepEqual(got, want)
}
