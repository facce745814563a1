package config

import (
	"fmt"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

var validDispatch = map[string]bool{
	DispatchFirst: true, DispatchAll: true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	if !validLogLevels[c.Server.LogLevel] {
		errs = append(errs, fmt.Sprintf("server.log_level: must be one of debug, info, warn, error; got %q", c.Server.LogLevel))
	}

	if !validDispatch[c.Proper.Dispatch] {
		errs = append(errs, fmt.Sprintf("proper.dispatch: must be %q or %q; got %q", DispatchFirst, DispatchAll, c.Proper.Dispatch))
	}
	if h := c.Proper.Hour(); h < 0 || h > 23 {
		errs = append(errs, fmt.Sprintf("proper.target_hour: must be between 0 and 23, got %d", h))
	}
	if c.Proper.SearchWindowHours < 0 {
		errs = append(errs, fmt.Sprintf("proper.search_window_hours: must be positive, got %d", c.Proper.SearchWindowHours))
	}
	if c.Proper.HistoryDays < 0 {
		errs = append(errs, fmt.Sprintf("proper.history_days: must be positive, got %d", c.Proper.HistoryDays))
	}

	if len(c.Indexers) == 0 {
		errs = append(errs, "indexers: at least one indexer must be configured")
	}
	for name, indexer := range c.Indexers {
		if indexer.URL == "" {
			errs = append(errs, fmt.Sprintf("indexers.%s.url: required", name))
		}
		if indexer.APIKey == "" {
			errs = append(errs, fmt.Sprintf("indexers.%s.api_key: required", name))
		}
	}

	if c.SABnzbd == nil {
		errs = append(errs, "sabnzbd: required, properd has no other way to act on a proper")
	} else {
		if c.SABnzbd.URL == "" {
			errs = append(errs, "sabnzbd.url: required")
		}
		if c.SABnzbd.APIKey == "" {
			errs = append(errs, "sabnzbd.api_key: required")
		}
	}

	if c.TVDB.APIKey == "" {
		errs = append(errs, "tvdb.api_key: required for air-by-date resolution")
	}

	return errs
}
