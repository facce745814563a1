// Package proper implements the proper/repack replacement pipeline: it
// aggregates recent PROPER releases from indexers, resolves them against the
// tracked-show catalog, filters them against persisted episode state and
// snatch history, and dispatches replacement snatches.
package proper

import (
	"context"
	"time"

	"github.com/vmunix/properd/internal/library"
	"github.com/vmunix/properd/internal/metadata"
	"github.com/vmunix/properd/pkg/release"
)

// seasonAirByDate marks a candidate whose season/episode are still pending
// air-date resolution.
const seasonAirByDate = -1

// RawCandidate is a provider search result before any resolution.
type RawCandidate struct {
	Name string
	URL  string
	Date time.Time
}

// Candidate is a proposed replacement release as it moves through the
// pipeline. ShowID is zero until catalog matching binds it; Season is
// seasonAirByDate with AirDate set until metadata resolution completes.
type Candidate struct {
	Name     string
	URL      string
	Date     time.Time
	Provider string

	ShowID   int64
	TVDBID   int64
	Language string
	Season   int
	Episode  int
	AirDate  time.Time
	Quality  release.Quality
}

// Provider supplies recent proper releases. Implementations must be safe
// for concurrent use; the aggregator queries all active providers in
// parallel.
type Provider interface {
	Name() string
	Active() bool
	FindPropers(ctx context.Context, since time.Time) ([]RawCandidate, error)
}

// AirDateLookup resolves an air date to concrete episode numbers.
type AirDateLookup interface {
	EpisodeForAirDate(ctx context.Context, tvdbID int64, language string, airDate time.Time) (metadata.EpisodeRef, error)
}

// Snatcher submits a replacement download for an episode.
type Snatcher interface {
	SnatchProper(ctx context.Context, ep *library.Episode, c Candidate) error
}

// DispatchPolicy selects how many eligible replacements one run acts on.
type DispatchPolicy string

const (
	// DispatchFirst acts on only the most recent eligible candidate,
	// matching the long-standing single-proper-per-run behavior.
	DispatchFirst DispatchPolicy = "first"

	// DispatchAll acts on every eligible candidate in the run.
	DispatchAll DispatchPolicy = "all"
)

// episodeKey enforces the one-candidate-per-episode invariant within a run.
type episodeKey struct {
	showID  int64
	season  int
	episode int
}
