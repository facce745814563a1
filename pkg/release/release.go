// Package release parses episode release names and classifies their quality.
package release

import "strings"

// Quality is the quality tier of a release, derived from its name.
type Quality int

const (
	QualityUnknown Quality = iota
	QualitySDTV
	QualitySDDVD
	QualityHDTV      // 720p hdtv
	QualityFullHDTV  // 1080p hdtv
	QualityHDWEB     // 720p web-dl/webrip
	QualityFullHDWEB // 1080p web-dl/webrip
	QualityHDBluRay  // 720p bluray
	QualityFullHDBluRay
	QualityUHD
)

func (q Quality) String() string {
	switch q {
	case QualitySDTV:
		return "sdtv"
	case QualitySDDVD:
		return "sd dvd"
	case QualityHDTV:
		return "720p hdtv"
	case QualityFullHDTV:
		return "1080p hdtv"
	case QualityHDWEB:
		return "720p web-dl"
	case QualityFullHDWEB:
		return "1080p web-dl"
	case QualityHDBluRay:
		return "720p bluray"
	case QualityFullHDBluRay:
		return "1080p bluray"
	case QualityUHD:
		return "2160p"
	default:
		return "unknown"
	}
}

// NameQuality classifies a release name into a quality tier.
// Resolution and source tokens are matched against the separator-normalized
// name, so "Show.Name.S01E02.720p.HDTV.x264-GRP" and
// "Show Name S01E02 720p HDTV x264-GRP" classify identically.
func NameQuality(name string) Quality {
	n := " " + GenericName(name) + " "

	res := parseResolution(n)
	switch {
	case res == "2160p":
		return QualityUHD
	case res == "1080p":
		switch parseSource(n) {
		case "bluray":
			return QualityFullHDBluRay
		case "web":
			return QualityFullHDWEB
		default:
			return QualityFullHDTV
		}
	case res == "720p":
		switch parseSource(n) {
		case "bluray":
			return QualityHDBluRay
		case "web":
			return QualityHDWEB
		default:
			return QualityHDTV
		}
	}

	// No resolution token: SD tiers.
	switch parseSource(n) {
	case "dvd", "bluray":
		return QualitySDDVD
	case "hdtv", "web":
		return QualitySDTV
	}
	return QualityUnknown
}

func parseResolution(n string) string {
	switch {
	case containsAny(n, "2160p", "4k", "uhd"):
		return "2160p"
	case containsAny(n, "1080p", "1080i"):
		return "1080p"
	case containsAny(n, "720p"):
		return "720p"
	default:
		return ""
	}
}

func parseSource(n string) string {
	switch {
	case containsAny(n, "bluray", "blu ray", "bdrip", "brrip"):
		return "bluray"
	case containsAny(n, "web dl", "webdl", "webrip", "web rip", "amzn", "itunes"):
		return "web"
	case containsAny(n, "dvdrip", "dvd"):
		return "dvd"
	case containsAny(n, "hdtv", "pdtv", "dsr", "tvrip"):
		return "hdtv"
	default:
		return ""
	}
}

func containsAny(s string, substrs ...string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
