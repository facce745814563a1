package metadata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/vmunix/properd/pkg/tvdb"
)

// episodeTTL bounds how long a series' episode list is served from cache.
const episodeTTL = 24 * time.Hour

// ErrEpisodeNotFound indicates no episode aired on the requested date.
// This is an expected condition for callers, not a service failure.
var ErrEpisodeNotFound = errors.New("no episode found for air date")

// EpisodeRef identifies an episode within a series.
type EpisodeRef struct {
	Season  int
	Episode int
}

// TVDBLookup resolves air dates to episode numbers using cached TVDB data.
type TVDBLookup struct {
	client *tvdb.Client
	cache  *Cache
	log    *slog.Logger
}

// NewTVDBLookup creates a new lookup service.
func NewTVDBLookup(client *tvdb.Client, cache *Cache, log *slog.Logger) *TVDBLookup {
	if log == nil {
		log = slog.Default()
	}
	return &TVDBLookup{
		client: client,
		cache:  cache,
		log:    log.With("component", "metadata"),
	}
}

// EpisodeForAirDate finds the (season, episode) pair that aired on the given
// date. Language selects the episode ordering; "" means the default order.
// Returns ErrEpisodeNotFound when the series is unknown to TVDB or no
// episode aired that day; any other error is a service failure.
func (l *TVDBLookup) EpisodeForAirDate(ctx context.Context, tvdbID int64, language string, airDate time.Time) (EpisodeRef, error) {
	episodes, err := l.episodes(ctx, tvdbID, language)
	if errors.Is(err, tvdb.ErrNotFound) {
		return EpisodeRef{}, fmt.Errorf("series %d: %w", tvdbID, ErrEpisodeNotFound)
	}
	if err != nil {
		return EpisodeRef{}, fmt.Errorf("fetch episodes for series %d: %w", tvdbID, err)
	}

	y, m, d := airDate.Date()
	for _, ep := range episodes {
		if ep.AirDate.IsZero() {
			continue
		}
		ey, em, ed := ep.AirDate.Date()
		if ey == y && em == m && ed == d {
			return EpisodeRef{Season: ep.Season, Episode: ep.Episode}, nil
		}
	}

	return EpisodeRef{}, fmt.Errorf("series %d aired %s: %w", tvdbID, airDate.Format("2006-01-02"), ErrEpisodeNotFound)
}

func (l *TVDBLookup) episodes(ctx context.Context, tvdbID int64, language string) ([]tvdb.Episode, error) {
	key := fmt.Sprintf("tvdb:episodes:%d:%s", tvdbID, language)

	if l.cache != nil {
		if data, ok := l.cache.Get(ctx, key); ok {
			var episodes []tvdb.Episode
			if err := json.Unmarshal(data, &episodes); err == nil {
				l.log.Debug("cache hit for episodes", "tvdb_id", tvdbID, "count", len(episodes))
				return episodes, nil
			}
			// Corrupt cache entry: treat as a miss and refetch.
			l.log.Warn("failed to unmarshal cached episodes", "tvdb_id", tvdbID)
		}
	}

	episodes, err := l.client.GetEpisodes(ctx, int(tvdbID), language)
	if err != nil {
		return nil, err
	}

	if l.cache != nil {
		if data, err := json.Marshal(episodes); err == nil {
			if err := l.cache.Set(ctx, key, data, episodeTTL); err != nil {
				l.log.Warn("failed to cache episodes", "tvdb_id", tvdbID, "error", err)
			}
		}
	}

	return episodes, nil
}
