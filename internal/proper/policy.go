package proper

import (
	"strings"

	"github.com/vmunix/properd/pkg/release"
)

// NamePolicy rejects releases whose names contain unwanted tokens, such as
// foreign-language tags or known junk groups.
type NamePolicy struct {
	ignore []string
}

// NewNamePolicy builds a policy from a list of ignore words. Words are
// matched as whole tokens against the normalized release name.
func NewNamePolicy(ignoreWords []string) NamePolicy {
	ignore := make([]string, 0, len(ignoreWords))
	for _, w := range ignoreWords {
		if norm := release.GenericName(w); norm != "" {
			ignore = append(ignore, norm)
		}
	}
	return NamePolicy{ignore: ignore}
}

// Allows reports whether the release name passes the policy.
func (p NamePolicy) Allows(name string) bool {
	padded := " " + release.GenericName(name) + " "
	for _, word := range p.ignore {
		if strings.Contains(padded, " "+word+" ") {
			return false
		}
	}
	return true
}
