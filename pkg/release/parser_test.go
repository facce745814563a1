package release

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEpisodeName_Standard(t *testing.T) {
	tests := []struct {
		name     string
		series   string
		season   int
		episodes []int
	}{
		{"Show.Name.S01E02.PROPER.720p.HDTV.x264-GRP", "Show Name", 1, []int{2}},
		{"Show Name S01E02 720p", "Show Name", 1, []int{2}},
		{"Show_Name_S1E2", "Show Name", 1, []int{2}},
		{"Show.Name.S02E05E06.1080p.WEB-DL", "Show Name", 2, []int{5, 6}},
		{"Show.Name.S02E05-E06.REPACK.720p", "Show Name", 2, []int{5, 6}},
		{"Show.Name.1x02.HDTV", "Show Name", 1, []int{2}},
		{"Some.Show.2024.S03E11.2160p", "Some Show 2024", 3, []int{11}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := ParseEpisodeName(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.series, res.SeriesName)
			require.NotNil(t, res.Season)
			assert.Equal(t, tt.season, *res.Season)
			assert.Equal(t, tt.episodes, res.Episodes)
			assert.False(t, res.AirByDate)
		})
	}
}

func TestParseEpisodeName_AirByDate(t *testing.T) {
	res, err := ParseEpisodeName("Talk.Show.2010.11.27.PROPER.HDTV.x264-GRP")
	require.NoError(t, err)
	assert.Equal(t, "Talk Show", res.SeriesName)
	assert.True(t, res.AirByDate)
	assert.Equal(t, time.Date(2010, 11, 27, 0, 0, 0, 0, time.UTC), res.AirDate)
	assert.Nil(t, res.Season)
	assert.Empty(t, res.Episodes)
	assert.True(t, res.Proper)
}

func TestParseEpisodeName_SeasonPack(t *testing.T) {
	res, err := ParseEpisodeName("Show.Name.S02.1080p.BluRay.x264-GRP")
	require.NoError(t, err)
	require.NotNil(t, res.Season)
	assert.Equal(t, 2, *res.Season)
	assert.Empty(t, res.Episodes, "season pack carries no episode numbers")
	assert.False(t, res.AirByDate)
}

func TestParseEpisodeName_ProperRepackFlags(t *testing.T) {
	res, err := ParseEpisodeName("Show.Name.S01E02.REPACK.720p.HDTV")
	require.NoError(t, err)
	assert.False(t, res.Proper)
	assert.True(t, res.Repack)

	res, err = ParseEpisodeName("Show.Name.S01E02.PROPER.720p.HDTV")
	require.NoError(t, err)
	assert.True(t, res.Proper)
	assert.False(t, res.Repack)
}

func TestParseEpisodeName_Invalid(t *testing.T) {
	for _, name := range []string{
		"",
		"Ubuntu-22.04-desktop-amd64.iso",
		"randomstring",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ParseEpisodeName(name)
			assert.ErrorIs(t, err, ErrInvalidName)
		})
	}
}

func TestParseEpisodeName_InvalidDateFallsThrough(t *testing.T) {
	// 99 is not a month; the date pattern must not claim this name.
	_, err := ParseEpisodeName("Show.Name.2010.99.27")
	assert.ErrorIs(t, err, ErrInvalidName)
}
