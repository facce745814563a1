package proper

import (
	"github.com/vmunix/properd/internal/library"
	"github.com/vmunix/properd/pkg/release"
)

// Show is the read-only catalog snapshot the resolver matches against.
type Show struct {
	ID         int64
	TVDBID     int64
	Title      string
	Language   string
	SceneNames []string
}

// ShowIndex is an explicitly ordered catalog snapshot. Matching is
// first-wins in show order, then in scene-name order within a show, so
// resolution is deterministic for a given snapshot.
type ShowIndex struct {
	shows []Show
}

// NewShowIndex builds an index preserving the given show order.
func NewShowIndex(shows []Show) *ShowIndex {
	return &ShowIndex{shows: shows}
}

// IndexFromLibrary converts stored shows into an index, keeping the store's
// ID ordering.
func IndexFromLibrary(shows []*library.Show) *ShowIndex {
	out := make([]Show, 0, len(shows))
	for _, sh := range shows {
		s := Show{
			ID:         sh.ID,
			Title:      sh.Title,
			Language:   sh.Language,
			SceneNames: sh.SceneNames,
		}
		if sh.TVDBID != nil {
			s.TVDBID = *sh.TVDBID
		}
		out = append(out, s)
	}
	return &ShowIndex{shows: out}
}

// Match finds the first show with a scene-name variant whose normalized
// form equals the normalized parsed series name. The show's display title
// always counts as a variant.
func (idx *ShowIndex) Match(seriesName string) (Show, bool) {
	want := release.GenericName(seriesName)
	if want == "" {
		return Show{}, false
	}
	for _, sh := range idx.shows {
		for _, variant := range sh.variants() {
			if release.GenericName(variant) == want {
				return sh, true
			}
		}
	}
	return Show{}, false
}

// SceneNames returns every known variant across the catalog, in index
// order. Used for near-miss diagnostics when Match fails.
func (idx *ShowIndex) SceneNames() []string {
	var names []string
	for _, sh := range idx.shows {
		names = append(names, sh.variants()...)
	}
	return names
}

func (s Show) variants() []string {
	if len(s.SceneNames) == 0 {
		return []string{s.Title}
	}
	for _, n := range s.SceneNames {
		if release.GenericName(n) == release.GenericName(s.Title) {
			return s.SceneNames
		}
	}
	return append([]string{s.Title}, s.SceneNames...)
}
