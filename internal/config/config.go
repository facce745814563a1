// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"fmt"
	"os"
	"regexp"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration structure.
type Config struct {
	Server   ServerConfig             `toml:"server"`
	Database DatabaseConfig           `toml:"database"`
	Proper   ProperConfig             `toml:"proper"`
	Indexers map[string]IndexerConfig `toml:"indexers"`
	SABnzbd  *SABnzbdConfig           `toml:"sabnzbd"`
	TVDB     TVDBConfig               `toml:"tvdb"`
}

type ServerConfig struct {
	LogLevel string `toml:"log_level"`
}

type DatabaseConfig struct {
	Path string `toml:"path"`
}

// ProperConfig controls the proper-search pipeline.
type ProperConfig struct {
	Enabled *bool `toml:"enabled"` // nil = enabled

	// Dispatch selects how many eligible replacements one run may act on:
	// "first" snatches only the newest one, "all" snatches every one.
	Dispatch string `toml:"dispatch"`

	// TargetHour is the hour of day (0-23) the daily search aims for.
	// nil = default; 0 means midnight.
	TargetHour *int `toml:"target_hour"`

	// SearchWindowHours bounds how far back providers are queried.
	SearchWindowHours int `toml:"search_window_hours"`

	// HistoryDays bounds the history lookback used for dedup.
	HistoryDays int `toml:"history_days"`

	// IgnoreWords reject any release whose name contains one of them.
	IgnoreWords []string `toml:"ignore_words"`
}

// IsEnabled reports whether the proper search should run at all.
func (p ProperConfig) IsEnabled() bool {
	return p.Enabled == nil || *p.Enabled
}

// Hour returns the configured target hour, defaulting to 1 when unset.
func (p ProperConfig) Hour() int {
	if p.TargetHour == nil {
		return 1
	}
	return *p.TargetHour
}

type IndexerConfig struct {
	URL     string `toml:"url"`
	APIKey  string `toml:"api_key"`
	Enabled *bool  `toml:"enabled"` // nil = enabled
}

// IsEnabled reports whether the indexer should be queried.
func (i IndexerConfig) IsEnabled() bool {
	return i.Enabled == nil || *i.Enabled
}

type SABnzbdConfig struct {
	URL      string `toml:"url"`
	APIKey   string `toml:"api_key"`
	Category string `toml:"category"`
}

type TVDBConfig struct {
	APIKey string `toml:"api_key"`
}

// Dispatch policy values.
const (
	DispatchFirst = "first"
	DispatchAll   = "all"
)

// DefaultIgnoreWords are release-name tokens that mark releases we never
// want regardless of quality.
var DefaultIgnoreWords = []string{
	"german", "french", "dutch", "swedish", "italian", "spanish", "core2hd",
}

// Load reads and parses the config file, applying defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	// Substitute environment variables
	content := substituteEnvVars(string(data))

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	// Apply defaults
	if cfg.Server.LogLevel == "" {
		cfg.Server.LogLevel = "info"
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = "./data/properd.db"
	}
	if cfg.Proper.Dispatch == "" {
		cfg.Proper.Dispatch = DispatchFirst
	}
	if cfg.Proper.TargetHour == nil {
		hour := 1
		cfg.Proper.TargetHour = &hour
	}
	if cfg.Proper.SearchWindowHours == 0 {
		cfg.Proper.SearchWindowHours = 48
	}
	if cfg.Proper.HistoryDays == 0 {
		cfg.Proper.HistoryDays = 30
	}
	if cfg.Proper.IgnoreWords == nil {
		cfg.Proper.IgnoreWords = DefaultIgnoreWords
	}

	return &cfg, nil
}

// substituteEnvVars replaces ${VAR_NAME} with environment variable values.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

func substituteEnvVars(content string) string {
	return envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		varName := match[2 : len(match)-1] // Strip ${ and }
		if value, ok := os.LookupEnv(varName); ok {
			return value
		}
		return match // Leave unchanged if not found
	})
}
