package release

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// GenericName normalizes a release or series name for identity comparison.
// Lowercases, treats '.', '-' and '_' as word separators, and collapses
// whitespace. Two names are the same identity iff their GenericName forms
// are equal. The function is idempotent.
func GenericName(name string) string {
	s := strings.ToLower(name)
	s = strings.ReplaceAll(s, ".", " ")
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")
	return strings.Join(strings.Fields(s), " ")
}

// CleanTitle normalizes a title for fuzzy matching purposes.
// More aggressive than GenericName: removes accents, articles, and all
// punctuation. Used only for near-miss diagnostics, never for identity.
func CleanTitle(title string) string {
	s := strings.ToLower(title)
	s = removeAccents(s)

	s = strings.ReplaceAll(s, "&", " and ")
	s = strings.ReplaceAll(s, "'", "")

	// Split on colon to handle subtitles, stripping leading articles
	// from each part.
	parts := strings.Split(s, ":")
	for i, part := range parts {
		parts[i] = stripLeadingArticle(strings.TrimSpace(part))
	}
	s = strings.Join(parts, " ")

	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

func removeAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)
	return result
}

func stripLeadingArticle(s string) string {
	s = strings.TrimSpace(s)
	for _, art := range []string{"the ", "a ", "an "} {
		if strings.HasPrefix(s, art) {
			return strings.TrimPrefix(s, art)
		}
	}
	return s
}
