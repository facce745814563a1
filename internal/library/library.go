// Package library manages the tracked-show catalog, per-episode download
// status, snatch history, and the proper-search run marker.
package library

import (
	"time"

	"github.com/vmunix/properd/pkg/release"
)

// DownloadState is the download portion of an episode's composite status.
// Values are persisted; do not renumber.
type DownloadState int

const (
	StateUnknown        DownloadState = 0
	StateUnaired        DownloadState = 1
	StateSnatched       DownloadState = 2
	StateWanted         DownloadState = 3
	StateDownloaded     DownloadState = 4
	StateSkipped        DownloadState = 5
	StateArchived       DownloadState = 6
	StateIgnored        DownloadState = 7
	StateSnatchedProper DownloadState = 9
)

func (s DownloadState) String() string {
	switch s {
	case StateUnaired:
		return "unaired"
	case StateSnatched:
		return "snatched"
	case StateWanted:
		return "wanted"
	case StateDownloaded:
		return "downloaded"
	case StateSkipped:
		return "skipped"
	case StateArchived:
		return "archived"
	case StateIgnored:
		return "ignored"
	case StateSnatchedProper:
		return "snatched proper"
	default:
		return "unknown"
	}
}

// CompositeStatus packs a download state and quality into the single status
// value stored on an episode row.
func CompositeStatus(state DownloadState, quality release.Quality) int {
	return int(state) + int(quality)*100
}

// SplitCompositeStatus is the inverse of CompositeStatus.
func SplitCompositeStatus(status int) (DownloadState, release.Quality) {
	return DownloadState(status % 100), release.Quality(status / 100)
}

// History action kinds.
const (
	ActionSnatched       = "snatched"
	ActionSnatchedProper = "snatched_proper"
	ActionDownloaded     = "downloaded"
	ActionFailed         = "failed"
)

// SnatchActions are the history action kinds that record a snatch. A prior
// entry with one of these kinds is the quality baseline a proper replacement
// is judged against.
var SnatchActions = []string{ActionSnatched, ActionSnatchedProper}

// Show is a tracked series with the alternate scene names used for release
// matching. SceneNames keeps its stored order; matching is first-wins.
type Show struct {
	ID         int64
	TVDBID     *int64
	Title      string
	Language   string
	SceneNames []string
	AddedAt    time.Time
}

// Episode is a single tracked episode. Status is a composite value; decode
// with SplitCompositeStatus.
type Episode struct {
	ID      int64
	ShowID  int64
	Season  int
	Episode int
	Title   string
	AirDate *time.Time
	Status  int
}

// HistoryEntry is one past download action.
type HistoryEntry struct {
	ID       int64
	ShowID   int64
	Season   int
	Episode  int
	Quality  release.Quality
	Action   string
	Resource string
	Date     time.Time
}
