package proper

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/vmunix/properd/internal/library"
)

// Config carries the tunable knobs of a Finder.
type Config struct {
	TargetHour   int           // hour of day the daily run is anchored to
	SearchWindow time.Duration // how far back providers are queried
	HistoryDays  int           // snatch-history lookback for dedup
	Dispatch     DispatchPolicy
	IgnoreWords  []string

	// Now overrides the clock. Nil means time.Now.
	Now func() time.Time
}

// Finder runs the proper replacement pipeline end to end. A Finder is not
// safe for concurrent Runs; the scheduler serializes invocations.
type Finder struct {
	store     *library.Store
	providers []Provider
	lookup    AirDateLookup
	snatcher  Snatcher
	policy    NamePolicy
	gate      Gate
	dispatch  DispatchPolicy

	searchWindow time.Duration
	historyDays  int

	log *slog.Logger
	now func() time.Time

	index *ShowIndex // catalog snapshot, rebuilt at the start of each run
}

// New creates a Finder over the given store, providers, and services.
func New(store *library.Store, providers []Provider, lookup AirDateLookup, snatcher Snatcher, cfg Config, log *slog.Logger) *Finder {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	if cfg.Dispatch == "" {
		cfg.Dispatch = DispatchFirst
	}
	return &Finder{
		store:        store,
		providers:    providers,
		lookup:       lookup,
		snatcher:     snatcher,
		policy:       NewNamePolicy(cfg.IgnoreWords),
		gate:         Gate{TargetHour: cfg.TargetHour},
		dispatch:     cfg.Dispatch,
		searchWindow: cfg.SearchWindow,
		historyDays:  cfg.HistoryDays,
		log:          log.With("component", "proper"),
		now:          now,
	}
}

type dispatchItem struct {
	episode   *library.Episode
	candidate Candidate
}

// Run executes one pipeline pass: gate check, aggregation, resolution,
// filtering, and dispatch. The run marker is written only after everything
// else succeeded, so a failed run is retried by the next gate check.
func (f *Finder) Run(ctx context.Context) error {
	now := f.now()

	lastRun, err := f.store.LastProperSearch()
	if err != nil {
		return fmt.Errorf("loading run marker: %w", err)
	}
	if !f.gate.ShouldRun(now, lastRun) {
		f.log.Debug("skipping proper search", "last_run", lastRun)
		return nil
	}
	return f.search(ctx, now)
}

// RunNow executes one pipeline pass immediately, bypassing the gate.
func (f *Finder) RunNow(ctx context.Context) error {
	return f.search(ctx, f.now())
}

func (f *Finder) search(ctx context.Context, now time.Time) error {
	shows, err := f.store.ListShows()
	if err != nil {
		return fmt.Errorf("loading show catalog: %w", err)
	}
	f.index = IndexFromLibrary(shows)

	f.log.Info("starting proper search", "shows", len(shows), "providers", len(f.providers))

	candidates := f.aggregate(ctx, now.Add(-f.searchWindow))

	var items []dispatchItem
	seen := make(map[episodeKey]bool)
	for _, c := range candidates {
		resolved, ok, err := f.resolve(ctx, c)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}

		ep, ok, err := f.isEligible(resolved)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}

		// Uniqueness applies to candidates that survived eligibility, so an
		// ineligible newer release never shadows an eligible older one.
		// Candidates are date-descending: the first survivor per episode is
		// the most recent.
		key := episodeKey{resolved.ShowID, resolved.Season, resolved.Episode}
		if seen[key] {
			f.log.Debug("skipping older duplicate proper", "name", resolved.Name)
			continue
		}
		seen[key] = true

		handled, err := f.alreadyHandled(resolved, now)
		if err != nil {
			return err
		}
		if handled {
			continue
		}

		items = append(items, dispatchItem{episode: ep, candidate: resolved})
	}

	snatched, err := f.dispatchAll(ctx, items)
	if err != nil {
		return err
	}

	f.log.Info("proper search finished", "candidates", len(candidates), "eligible", len(items), "snatched", snatched)

	if err := f.store.SetLastProperSearch(now); err != nil {
		return fmt.Errorf("writing run marker: %w", err)
	}
	return nil
}

// dispatchAll snatches the queued replacements according to the dispatch
// policy and reports how many were sent.
func (f *Finder) dispatchAll(ctx context.Context, items []dispatchItem) (int, error) {
	snatched := 0
	for _, item := range items {
		f.log.Info("snatching proper",
			"name", item.candidate.Name,
			"provider", item.candidate.Provider,
			"quality", item.candidate.Quality)
		if err := f.snatcher.SnatchProper(ctx, item.episode, item.candidate); err != nil {
			return snatched, fmt.Errorf("snatching %q: %w", item.candidate.Name, err)
		}
		snatched++
		if f.dispatch == DispatchFirst {
			break
		}
	}
	return snatched, nil
}
