package proper

import (
	"context"
	"errors"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vmunix/properd/pkg/newznab"
	"github.com/vmunix/properd/pkg/release"
)

// maxProviderConcurrency bounds the provider fan-out.
const maxProviderConcurrency = 4

// aggregate queries every active provider for propers published since the
// given time, dedupes them by normalized-name identity, and returns the
// survivors sorted by publish date, most recent first.
//
// Provider results are collected into provider-order slots so the
// first-seen-wins merge is deterministic no matter which query finishes
// first. A provider failure never aborts the run: authentication errors are
// logged and the provider skipped, as are any other provider failures.
func (f *Finder) aggregate(ctx context.Context, since time.Time) []Candidate {
	results := make([][]RawCandidate, len(f.providers))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxProviderConcurrency)

	for i, p := range f.providers {
		if !p.Active() {
			continue
		}
		g.Go(func() error {
			f.log.Debug("searching for propers", "provider", p.Name(), "since", since)
			found, err := p.FindPropers(gctx, since)
			switch {
			case errors.Is(err, newznab.ErrAuth):
				f.log.Error("provider authentication failed", "provider", p.Name(), "error", err)
			case err != nil:
				f.log.Error("provider search failed", "provider", p.Name(), "error", err)
			default:
				results[i] = found
			}
			return nil
		})
	}
	_ = g.Wait() // goroutines report their own failures

	// Merge in provider order: the first candidate per identity wins.
	seen := make(map[string]bool)
	var merged []Candidate
	for i, p := range f.providers {
		for _, raw := range results[i] {
			identity := release.GenericName(raw.Name)
			if seen[identity] {
				continue
			}
			seen[identity] = true
			f.log.Debug("found new proper", "name", raw.Name, "provider", p.Name())
			merged = append(merged, Candidate{
				Name:     raw.Name,
				URL:      raw.URL,
				Date:     raw.Date,
				Provider: p.Name(),
			})
		}
	}

	sort.SliceStable(merged, func(a, b int) bool {
		return merged[a].Date.After(merged[b].Date)
	})
	return merged
}
