package proper

import (
	"context"
	"errors"
	"fmt"

	"github.com/vmunix/properd/internal/metadata"
	"github.com/vmunix/properd/pkg/release"
)

// resolve turns a raw candidate into a fully attributed one: parsed episode
// numbering, quality, and the library show it belongs to. It returns ok=false
// when the candidate fails a hard filter (unparseable, unknown show, ignored
// word, no episode for its air date). An error is
// returned only for infrastructure failures, which abort the run.
func (f *Finder) resolve(ctx context.Context, c Candidate) (Candidate, bool, error) {
	parsed, err := release.ParseEpisodeName(c.Name)
	if err != nil {
		f.log.Debug("skipping unparseable release", "name", c.Name)
		return Candidate{}, false, nil
	}

	if !f.policy.Allows(c.Name) {
		f.log.Debug("skipping release with ignored word", "name", c.Name)
		return Candidate{}, false, nil
	}

	switch {
	case parsed.AirByDate:
		c.Season = seasonAirByDate
		c.AirDate = parsed.AirDate
	case len(parsed.Episodes) > 0:
		// Season-less episode names default to season 1.
		c.Season = 1
		if parsed.Season != nil {
			c.Season = *parsed.Season
		}
		c.Episode = parsed.Episodes[0]
	default:
		// Season packs and bare titles carry no episode to replace.
		f.log.Debug("skipping release without episode numbering", "name", c.Name)
		return Candidate{}, false, nil
	}

	// Unknown quality passes through: eligibility requires exact quality
	// equality, so it can only replace an episode stored at unknown quality.
	c.Quality = release.NameQuality(c.Name)

	show, ok := f.index.Match(parsed.SeriesName)
	if !ok {
		f.logNearMiss(parsed.SeriesName)
		return Candidate{}, false, nil
	}
	c.ShowID = show.ID
	c.TVDBID = show.TVDBID
	c.Language = show.Language

	if c.Season == seasonAirByDate {
		if c.TVDBID == 0 {
			f.log.Debug("skipping air-by-date release for show without tvdb id",
				"name", c.Name, "show", show.Title)
			return Candidate{}, false, nil
		}
		ref, err := f.lookup.EpisodeForAirDate(ctx, c.TVDBID, c.Language, c.AirDate)
		if errors.Is(err, metadata.ErrEpisodeNotFound) {
			f.log.Warn("no episode aired on release date",
				"name", c.Name, "show", show.Title, "date", c.AirDate.Format("2006-01-02"))
			return Candidate{}, false, nil
		}
		if err != nil {
			return Candidate{}, false, fmt.Errorf("resolving air date for %q: %w", c.Name, err)
		}
		c.Season = ref.Season
		c.Episode = ref.Episode
	}

	return c, true, nil
}

// logNearMiss reports the closest known title when an exact match fails.
// Purely diagnostic, it helps spot missing scene name exceptions.
func (f *Finder) logNearMiss(seriesName string) {
	match := release.MatchTitle(seriesName, f.index.SceneNames())
	if match.Confidence >= release.ConfidenceMedium {
		f.log.Debug("release did not match any show",
			"series", seriesName, "closest", match.Title, "score", match.Score)
		return
	}
	f.log.Debug("release did not match any show", "series", seriesName)
}
