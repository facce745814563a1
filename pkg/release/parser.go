package release

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidName indicates the name could not be parsed as an episode release.
var ErrInvalidName = errors.New("not a valid episode release name")

// ParseResult is the structured form of an episode release name.
type ParseResult struct {
	SeriesName string
	Season     *int      // nil when the name carries no season number
	Episodes   []int     // empty for season packs
	AirDate    time.Time // zero unless AirByDate
	AirByDate  bool
	Proper     bool
	Repack     bool
}

// Release name patterns, tried in order. Each must anchor the series name
// at the start so the first match wins deterministically.
var (
	// Show.Name.S01E02, S01E02E03, S01E02-E03
	standardRegex = regexp.MustCompile(`(?i)^(.+?)[ ._-]+s(\d{1,2})[ ._-]?e(\d{1,3})((?:[ ._-]?e\d{1,3})*)`)

	// Show.Name.1x02, 1x02x03
	xFormRegex = regexp.MustCompile(`(?i)^(.+?)[ ._-]+(\d{1,2})x(\d{1,3})((?:[ ._-]?x\d{1,3})*)`)

	// Show.Name.2010.11.27 (air-by-date)
	dateRegex = regexp.MustCompile(`^(.+?)[ ._-]+(\d{4})[ ._-](\d{2})[ ._-](\d{2})`)

	// Show.Name.S01 or Show.Name.Season.1 (season pack, no episodes)
	seasonRegex = regexp.MustCompile(`(?i)^(.+?)[ ._-]+(?:s|season[ ._-]?)(\d{1,2})(?:[ ._-]|$)`)

	// Show.Name.Ep03 (no season)
	bareEpisodeRegex = regexp.MustCompile(`(?i)^(.+?)[ ._-]+ep?[ ._-]?(\d{1,3})(?:[ ._-]|$)`)

	extraEpisodeRegex = regexp.MustCompile(`\d{1,3}`)
)

// ParseEpisodeName parses a release name into its structured form.
// Returns ErrInvalidName for names that do not look like an episode release
// at all. Season packs parse successfully with an empty episode list; it is
// the caller's decision whether those are acceptable.
func ParseEpisodeName(name string) (*ParseResult, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}

	res := &ParseResult{
		Proper: containsAny(" "+GenericName(name)+" ", " proper "),
		Repack: containsAny(" "+GenericName(name)+" ", " repack ", " rerip "),
	}

	if m := standardRegex.FindStringSubmatch(name); m != nil {
		res.SeriesName = cleanSeriesName(m[1])
		season := mustAtoi(m[2])
		res.Season = &season
		res.Episodes = append(res.Episodes, mustAtoi(m[3]))
		res.Episodes = append(res.Episodes, extraEpisodes(m[4])...)
		return validated(res)
	}

	if m := xFormRegex.FindStringSubmatch(name); m != nil {
		res.SeriesName = cleanSeriesName(m[1])
		season := mustAtoi(m[2])
		res.Season = &season
		res.Episodes = append(res.Episodes, mustAtoi(m[3]))
		res.Episodes = append(res.Episodes, extraEpisodes(m[4])...)
		return validated(res)
	}

	if m := dateRegex.FindStringSubmatch(name); m != nil {
		if d, ok := airDate(m[2], m[3], m[4]); ok {
			res.SeriesName = cleanSeriesName(m[1])
			res.AirDate = d
			res.AirByDate = true
			return validated(res)
		}
	}

	if m := seasonRegex.FindStringSubmatch(name); m != nil {
		res.SeriesName = cleanSeriesName(m[1])
		season := mustAtoi(m[2])
		res.Season = &season
		return validated(res)
	}

	if m := bareEpisodeRegex.FindStringSubmatch(name); m != nil {
		res.SeriesName = cleanSeriesName(m[1])
		res.Episodes = append(res.Episodes, mustAtoi(m[2]))
		return validated(res)
	}

	return nil, ErrInvalidName
}

func validated(res *ParseResult) (*ParseResult, error) {
	if res.SeriesName == "" {
		return nil, ErrInvalidName
	}
	return res, nil
}

func cleanSeriesName(s string) string {
	s = strings.ReplaceAll(s, ".", " ")
	s = strings.ReplaceAll(s, "_", " ")
	s = strings.Trim(s, " -")
	return strings.Join(strings.Fields(s), " ")
}

// extraEpisodes pulls the trailing episode numbers out of a multi-episode
// suffix such as "E03E04" or ".E03-E04".
func extraEpisodes(suffix string) []int {
	var eps []int
	for _, m := range extraEpisodeRegex.FindAllString(suffix, -1) {
		eps = append(eps, mustAtoi(m))
	}
	return eps
}

// airDate validates a yyyy mm dd triple. Rejects impossible dates so that
// "Show.Name.1080.26.99" falls through to the other patterns.
func airDate(year, month, day string) (time.Time, bool) {
	y, m, d := mustAtoi(year), mustAtoi(month), mustAtoi(day)
	if y < 1900 || y > 2100 || m < 1 || m > 12 || d < 1 || d > 31 {
		return time.Time{}, false
	}
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	if t.Year() != y || int(t.Month()) != m || t.Day() != d {
		return time.Time{}, false
	}
	return t, true
}

func mustAtoi(s string) int {
	n, _ := strconv.Atoi(s) // callers only pass digit-matched substrings
	return n
}
