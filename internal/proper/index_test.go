package proper_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/properd/internal/library"
	"github.com/vmunix/properd/internal/proper"
)

func TestShowIndexMatch(t *testing.T) {
	idx := proper.NewShowIndex([]proper.Show{
		{ID: 1, Title: "The Office (US)", SceneNames: []string{"The Office US", "The Office"}},
		{ID: 2, Title: "The Office"},
	})

	t.Run("matches by scene name", func(t *testing.T) {
		show, ok := idx.Match("The.Office.US")
		require.True(t, ok)
		assert.Equal(t, int64(1), show.ID)
	})

	t.Run("first show wins on shared variant", func(t *testing.T) {
		// Both shows carry "The Office" as a variant; catalog order decides.
		show, ok := idx.Match("The Office")
		require.True(t, ok)
		assert.Equal(t, int64(1), show.ID)
	})

	t.Run("matches by display title", func(t *testing.T) {
		show, ok := idx.Match("the office (us)")
		require.True(t, ok)
		assert.Equal(t, int64(1), show.ID)
	})

	t.Run("normalized comparison", func(t *testing.T) {
		show, ok := idx.Match("the_office-us")
		require.True(t, ok)
		assert.Equal(t, int64(1), show.ID)
	})

	t.Run("unknown title", func(t *testing.T) {
		_, ok := idx.Match("Parks and Recreation")
		assert.False(t, ok)
	})

	t.Run("empty title", func(t *testing.T) {
		_, ok := idx.Match("   ")
		assert.False(t, ok)
	})
}

func TestIndexFromLibrary(t *testing.T) {
	tvdbID := int64(73244)
	idx := proper.IndexFromLibrary([]*library.Show{
		{ID: 7, TVDBID: &tvdbID, Title: "Countdown", Language: "en", SceneNames: []string{"Countdown UK"}},
		{ID: 9, Title: "Untitled Pilot"},
	})

	show, ok := idx.Match("Countdown UK")
	require.True(t, ok)
	assert.Equal(t, int64(7), show.ID)
	assert.Equal(t, int64(73244), show.TVDBID)
	assert.Equal(t, "en", show.Language)

	show, ok = idx.Match("Untitled Pilot")
	require.True(t, ok)
	assert.Zero(t, show.TVDBID)
}

func TestShowIndexSceneNames(t *testing.T) {
	idx := proper.NewShowIndex([]proper.Show{
		{ID: 1, Title: "Alpha", SceneNames: []string{"Alpha Show"}},
		{ID: 2, Title: "Beta"},
	})
	assert.Equal(t, []string{"Alpha", "Alpha Show", "Beta"}, idx.SceneNames())
}
