package release

import (
	"github.com/hbollon/go-edlib"
)

// MatchConfidence grades how close a fuzzy title match is.
type MatchConfidence int

const (
	ConfidenceNone   MatchConfidence = iota // score < 0.70
	ConfidenceLow                           // score >= 0.70
	ConfidenceMedium                        // score >= 0.85
	ConfidenceHigh                          // score >= 0.95
)

func (c MatchConfidence) String() string {
	switch c {
	case ConfidenceHigh:
		return "high"
	case ConfidenceMedium:
		return "medium"
	case ConfidenceLow:
		return "low"
	default:
		return "none"
	}
}

// MatchResult is the outcome of a fuzzy title match.
type MatchResult struct {
	Title      string  // best-matching candidate, empty when ConfidenceNone
	Score      float64 // Jaro-Winkler similarity, 0.0-1.0
	Confidence MatchConfidence
}

// MatchTitle finds the closest candidate title for a parsed series name.
// Jaro-Winkler favors shared prefixes, which suits scene names. Candidate
// resolution itself requires an exact GenericName match; this exists so
// callers can report near misses when the exact match fails.
func MatchTitle(parsed string, candidates []string) MatchResult {
	best := MatchResult{Confidence: ConfidenceNone}
	if len(candidates) == 0 {
		return best
	}

	cleanParsed := CleanTitle(parsed)
	for _, candidate := range candidates {
		score := float64(edlib.JaroWinklerSimilarity(cleanParsed, CleanTitle(candidate)))
		if score > best.Score {
			best.Title = candidate
			best.Score = score
		}
	}

	switch {
	case best.Score >= 0.95:
		best.Confidence = ConfidenceHigh
	case best.Score >= 0.85:
		best.Confidence = ConfidenceMedium
	case best.Score >= 0.70:
		best.Confidence = ConfidenceLow
	default:
		best.Confidence = ConfidenceNone
		best.Title = ""
	}
	return best
}
