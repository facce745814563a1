package proper

import (
	"errors"
	"fmt"

	"github.com/vmunix/properd/internal/library"
)

// isEligible checks whether the episode the candidate replaces is in a
// replaceable state at the exact same quality. Propers only ever replace a
// copy that already exists; a higher or lower quality is a different release,
// not a fix.
func (f *Finder) isEligible(c Candidate) (*library.Episode, bool, error) {
	ep, err := f.store.GetEpisodeByNumber(c.ShowID, c.Season, c.Episode)
	if errors.Is(err, library.ErrNotFound) {
		f.log.Debug("skipping proper for unknown episode",
			"name", c.Name, "season", c.Season, "episode", c.Episode)
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("loading episode for %q: %w", c.Name, err)
	}

	state, quality := library.SplitCompositeStatus(ep.Status)
	if state != library.StateDownloaded && state != library.StateSnatched {
		f.log.Debug("skipping proper for episode in non-replaceable state",
			"name", c.Name, "state", state)
		return nil, false, nil
	}
	if quality != c.Quality {
		f.log.Debug("skipping proper at different quality",
			"name", c.Name, "have", quality, "proper", c.Quality)
		return nil, false, nil
	}
	return ep, true, nil
}
