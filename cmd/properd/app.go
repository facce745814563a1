package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/vmunix/properd/internal/config"
	"github.com/vmunix/properd/internal/library"
	"github.com/vmunix/properd/internal/metadata"
	"github.com/vmunix/properd/internal/migrations"
	"github.com/vmunix/properd/internal/proper"
	"github.com/vmunix/properd/internal/snatch"
	"github.com/vmunix/properd/pkg/newznab"
	"github.com/vmunix/properd/pkg/tvdb"
)

// app holds the wired-up services shared by the serve and run commands.
type app struct {
	cfg    *config.Config
	log    *slog.Logger
	db     *sql.DB
	finder *proper.Finder
}

func (a *app) Close() {
	_ = a.db.Close()
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// buildApp loads config, opens the database, and wires the pipeline.
func buildApp() (*app, error) {
	path := configPath
	if path == "" {
		var err error
		path, err = config.Discover()
		if err != nil {
			return nil, err
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, &config.ConfigError{Path: path, Errors: errs}
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Server.LogLevel),
	}))

	dbDir := filepath.Dir(cfg.Database.Path)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	} {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("%s: %w", pragma, err)
		}
	}

	if err := migrations.Apply(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	store := library.NewStore(db)

	// Providers in sorted name order so first-seen dedup is deterministic
	// across restarts.
	names := make([]string, 0, len(cfg.Indexers))
	for name := range cfg.Indexers {
		names = append(names, name)
	}
	sort.Strings(names)

	providers := make([]proper.Provider, 0, len(names))
	for _, name := range names {
		indexer := cfg.Indexers[name]
		client := newznab.NewClient(name, indexer.URL, indexer.APIKey, logger)
		providers = append(providers, proper.NewNewznabProvider(client, indexer.IsEnabled()))
	}

	tvdbClient := tvdb.New(cfg.TVDB.APIKey, tvdb.WithLogger(logger))
	lookup := metadata.NewTVDBLookup(tvdbClient, metadata.NewCache(db), logger)

	sabClient := snatch.NewSABnzbdClient(cfg.SABnzbd.URL, cfg.SABnzbd.APIKey, logger)
	snatcher := snatch.New(sabClient, store, cfg.SABnzbd.Category, logger)

	finder := proper.New(store, providers, lookup, snatcher, proper.Config{
		TargetHour:   cfg.Proper.Hour(),
		SearchWindow: time.Duration(cfg.Proper.SearchWindowHours) * time.Hour,
		HistoryDays:  cfg.Proper.HistoryDays,
		Dispatch:     proper.DispatchPolicy(cfg.Proper.Dispatch),
		IgnoreWords:  cfg.Proper.IgnoreWords,
	}, logger)

	return &app{cfg: cfg, log: logger, db: db, finder: finder}, nil
}
