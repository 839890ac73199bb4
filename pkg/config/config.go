/*
Package config manages TOML config for keyscout binaries, translating the
file schema into the immutable index.Options snapshot the core consumes.
*/
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/keyscout/keyscout/internal/utils"
	"github.com/keyscout/keyscout/pkg/index"
	"github.com/keyscout/keyscout/pkg/strsim"
)

// Config holds the entire config structure.
type Config struct {
	Index  IndexConfig  `toml:"index"`
	Fuzzy  FuzzyConfig  `toml:"fuzzy"`
	Server ServerConfig `toml:"server"`
}

// IndexConfig mirrors index.Options in file form.
type IndexConfig struct {
	SearchType                 string   `toml:"search_type"`
	AutocompleteType           string   `toml:"autocomplete_type"`
	SplitPattern               string   `toml:"split_pattern"`
	CaseSensitive              bool     `toml:"case_sensitive"`
	MinimumKeywordLength       int      `toml:"minimum_keyword_length"`
	MaximumKeywordLength       int      `toml:"maximum_keyword_length"`
	MaximumStringLength        int      `toml:"maximum_string_length"`
	ExcludeKeywords            []string `toml:"exclude_keywords"`
	MaximumSearchResults       int      `toml:"maximum_search_results"`
	MaximumAutocompleteOptions int      `toml:"maximum_autocomplete_options"`
	MaximumKeysPerKeyword      int      `toml:"maximum_keys_per_keyword"`
	DumpKeyword                string   `toml:"dump_keyword"`
}

// FuzzyConfig holds the approximate-matching options.
type FuzzyConfig struct {
	Algorithm    string  `toml:"algorithm"`
	PrefixLength int     `toml:"prefix_length"`
	MinimumScore float64 `toml:"minimum_score"`
}

// ServerConfig has IPC server related options.
type ServerConfig struct {
	MaxLimit int `toml:"max_limit"`
	MinQuery int `toml:"min_query"`
	MaxQuery int `toml:"max_query"`
}

// DefaultConfig returns a Config mirroring index.DefaultOptions.
func DefaultConfig() *Config {
	defaults := index.DefaultOptions()
	return &Config{
		Index: IndexConfig{
			SearchType:                 defaults.SearchType.String(),
			AutocompleteType:           defaults.AutocompleteType.String(),
			SplitPattern:               "",
			CaseSensitive:              defaults.CaseSensitive,
			MinimumKeywordLength:       defaults.MinKeywordLen,
			MaximumKeywordLength:       defaults.MaxKeywordLen,
			MaximumStringLength:        defaults.MaxStringLen,
			MaximumSearchResults:       defaults.MaxSearchResults,
			MaximumAutocompleteOptions: defaults.MaxAutocompleteOptions,
			MaximumKeysPerKeyword:      defaults.MaxKeysPerKeyword,
			DumpKeyword:                defaults.DumpKeyword,
		},
		Fuzzy: FuzzyConfig{
			Algorithm:    defaults.FuzzyAlgorithm.String(),
			PrefixLength: defaults.FuzzyPrefixLen,
			MinimumScore: defaults.FuzzyMinScore,
		},
		Server: ServerConfig{
			MaxLimit: 64,
			MinQuery: 1,
			MaxQuery: 120,
		},
	}
}

// Options converts the file schema into the immutable snapshot consumed by
// index.New.
func (c *Config) Options() (index.Options, error) {
	opts := index.DefaultOptions()

	searchType, err := index.ParseSearchType(c.Index.SearchType)
	if err != nil {
		return opts, fmt.Errorf("config: %w", err)
	}
	autocompleteType, err := index.ParseAutocompleteType(c.Index.AutocompleteType)
	if err != nil {
		return opts, fmt.Errorf("config: %w", err)
	}
	algorithm, err := strsim.ParseAlgorithm(c.Fuzzy.Algorithm)
	if err != nil {
		return opts, fmt.Errorf("config: %w", err)
	}

	opts.SearchType = searchType
	opts.AutocompleteType = autocompleteType
	if c.Index.SplitPattern != "" {
		opts.SplitPattern = []rune(c.Index.SplitPattern)
	}
	opts.CaseSensitive = c.Index.CaseSensitive
	opts.MinKeywordLen = c.Index.MinimumKeywordLength
	opts.MaxKeywordLen = c.Index.MaximumKeywordLength
	opts.MaxStringLen = c.Index.MaximumStringLength
	opts.ExcludeKeywords = c.Index.ExcludeKeywords
	opts.MaxSearchResults = c.Index.MaximumSearchResults
	opts.MaxAutocompleteOptions = c.Index.MaximumAutocompleteOptions
	opts.MaxKeysPerKeyword = c.Index.MaximumKeysPerKeyword
	opts.DumpKeyword = c.Index.DumpKeyword
	opts.FuzzyAlgorithm = algorithm
	opts.FuzzyPrefixLen = c.Fuzzy.PrefixLength
	opts.FuzzyMinScore = c.Fuzzy.MinimumScore
	return opts, nil
}

// GetConfigDir returns the config directory with fallback priority:
// 1. ~/.config/keyscout
// 2. Current executable dir
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("Failed to get home directory: %v", err)
		return utils.GetExecutableDir()
	}
	return filepath.Join(homeDir, ".config", "keyscout"), nil
}

// GetDefaultConfigPath returns the default path for config.toml.
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// LoadWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. Default path: ~/.config/keyscout/config.toml
// 3. Builtin defaults
func LoadWithPriority(customConfigPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if utils.FileExists(customConfigPath) {
			config, err := Load(customConfigPath)
			if err == nil {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
			log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
		} else {
			log.Warnf("Custom config file not found at %s. Trying default path...", customConfigPath)
		}
	}

	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using builtin defaults...", err)
		return DefaultConfig(), "", nil
	}

	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// InitConfig loads config from file or creates default if missing.
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)
	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using builtin defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := Save(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using builtin defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	return Load(configPath)
}

// Load loads from a TOML file. Missing keys keep their default values.
func Load(configPath string) (*Config, error) {
	config := DefaultConfig()
	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return nil, fmt.Errorf("parse %s: %w", configPath, err)
	}
	return config, nil
}

// Save saves into a TOML file.
func Save(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}
