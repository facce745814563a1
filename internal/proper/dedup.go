package proper

import (
	"fmt"
	"time"

	"github.com/vmunix/properd/internal/library"
	"github.com/vmunix/properd/pkg/release"
)

// alreadyHandled consults recent snatch history for the candidate's episode.
// A candidate is handled when there is no snatch baseline at its quality
// within the lookback window (nothing to replace), or when a prior snatch
// already used the same release by normalized-name identity.
func (f *Finder) alreadyHandled(c Candidate, now time.Time) (bool, error) {
	since := now.AddDate(0, 0, -f.historyDays)
	entries, err := f.store.ListHistory(library.HistoryFilter{
		ShowID:  c.ShowID,
		Season:  c.Season,
		Episode: c.Episode,
		Quality: &c.Quality,
		Since:   &since,
		Actions: library.SnatchActions,
	})
	if err != nil {
		return false, fmt.Errorf("loading history for %q: %w", c.Name, err)
	}

	if len(entries) == 0 {
		f.log.Debug("skipping proper with no recent snatch to replace", "name", c.Name)
		return true, nil
	}

	identity := release.GenericName(c.Name)
	for _, e := range entries {
		if release.GenericName(e.Resource) == identity {
			f.log.Debug("skipping already snatched proper", "name", c.Name)
			return true, nil
		}
	}
	return false, nil
}
