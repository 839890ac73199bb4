package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/keyscout/keyscout/pkg/index"
	"github.com/keyscout/keyscout/pkg/strsim"
)

func TestDefaultConfigMatchesOptions(t *testing.T) {
	cfg := DefaultConfig()
	opts, err := cfg.Options()
	if err != nil {
		t.Fatalf("Options() error: %v", err)
	}

	defaults := index.DefaultOptions()
	if opts.SearchType != defaults.SearchType {
		t.Errorf("SearchType = %v, want %v", opts.SearchType, defaults.SearchType)
	}
	if opts.AutocompleteType != defaults.AutocompleteType {
		t.Errorf("AutocompleteType = %v, want %v", opts.AutocompleteType, defaults.AutocompleteType)
	}
	if opts.MinKeywordLen != defaults.MinKeywordLen || opts.MaxKeywordLen != defaults.MaxKeywordLen {
		t.Errorf("keyword bounds = %d..%d, want %d..%d",
			opts.MinKeywordLen, opts.MaxKeywordLen, defaults.MinKeywordLen, defaults.MaxKeywordLen)
	}
	if opts.MaxSearchResults != defaults.MaxSearchResults {
		t.Errorf("MaxSearchResults = %d, want %d", opts.MaxSearchResults, defaults.MaxSearchResults)
	}
	if opts.FuzzyAlgorithm != strsim.Levenshtein {
		t.Errorf("FuzzyAlgorithm = %v, want Levenshtein", opts.FuzzyAlgorithm)
	}
	if opts.DumpKeyword != defaults.DumpKeyword {
		t.Errorf("DumpKeyword = %q, want %q", opts.DumpKeyword, defaults.DumpKeyword)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[index]
search_type = "and"
case_sensitive = true
maximum_search_results = 10

[fuzzy]
algorithm = "jaro-winkler"
minimum_score = 0.5

[server]
max_limit = 16
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	opts, err := cfg.Options()
	if err != nil {
		t.Fatalf("Options() error: %v", err)
	}

	if opts.SearchType != index.SearchAnd {
		t.Errorf("SearchType = %v, want And", opts.SearchType)
	}
	if !opts.CaseSensitive {
		t.Error("CaseSensitive not applied")
	}
	if opts.MaxSearchResults != 10 {
		t.Errorf("MaxSearchResults = %d, want 10", opts.MaxSearchResults)
	}
	if opts.FuzzyAlgorithm != strsim.JaroWinkler {
		t.Errorf("FuzzyAlgorithm = %v, want JaroWinkler", opts.FuzzyAlgorithm)
	}
	if opts.FuzzyMinScore != 0.5 {
		t.Errorf("FuzzyMinScore = %v, want 0.5", opts.FuzzyMinScore)
	}
	if cfg.Server.MaxLimit != 16 {
		t.Errorf("Server.MaxLimit = %d, want 16", cfg.Server.MaxLimit)
	}
	// Keys absent from the file keep their defaults.
	if opts.MaxAutocompleteOptions != index.DefaultOptions().MaxAutocompleteOptions {
		t.Errorf("MaxAutocompleteOptions = %d, want default", opts.MaxAutocompleteOptions)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := DefaultConfig()
	cfg.Index.SearchType = "live"
	cfg.Index.ExcludeKeywords = []string{"a", "the"}
	cfg.Fuzzy.PrefixLength = 3

	if err := Save(cfg, path); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if loaded.Index.SearchType != "live" {
		t.Errorf("SearchType = %q, want live", loaded.Index.SearchType)
	}
	if len(loaded.Index.ExcludeKeywords) != 2 {
		t.Errorf("ExcludeKeywords = %v", loaded.Index.ExcludeKeywords)
	}
	if loaded.Fuzzy.PrefixLength != 3 {
		t.Errorf("Fuzzy.PrefixLength = %d, want 3", loaded.Fuzzy.PrefixLength)
	}
}

func TestOptionsRejectsBadEnums(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Index.SearchType = "fulltext"
	if _, err := cfg.Options(); err == nil {
		t.Error("expected error for unknown search_type")
	}

	cfg = DefaultConfig()
	cfg.Fuzzy.Algorithm = "soundex"
	if _, err := cfg.Options(); err == nil {
		t.Error("expected error for unknown fuzzy algorithm")
	}
}

func TestInitConfigCreatesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg, err := InitConfig(path)
	if err != nil {
		t.Fatalf("InitConfig() error: %v", err)
	}
	if cfg.Index.SearchType != DefaultConfig().Index.SearchType {
		t.Errorf("SearchType = %q, want default", cfg.Index.SearchType)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("default config file not written: %v", err)
	}
}
