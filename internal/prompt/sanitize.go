package prompt

import (
	"regexp"
	"sort"
	"strings"
)

// denylist holds realism-breaking phrases removed from user prompts.
var denylist = sortedByLength([]string{
	"photorealistic",
	"hyperrealistic",
	"realistic",
	"photograph",
	"photo",
	"3d render",
	"octane render",
	"unreal engine",
	"complex shading",
	"intricate",
	"detailed",
	"lifelike",
})

// denylistPatterns match a term case-insensitively together with the blanks
// around it, so the gap left by a removal can be closed.
var denylistPatterns = compileDenylist(denylist)

func sortedByLength(terms []string) []string {
	out := append([]string(nil), terms...)
	sort.SliceStable(out, func(i, j int) bool {
		return len(out[i]) > len(out[j])
	})
	return out
}

func compileDenylist(terms []string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(terms))
	for _, term := range terms {
		patterns = append(patterns, regexp.MustCompile(`([ \t]*)(?i:`+regexp.QuoteMeta(term)+`)([ \t]*)`))
	}
	return patterns
}

// Sanitize removes every case-insensitive occurrence of a denylisted phrase
// from s and trims the result. The rest of the user's text, line breaks
// included, is kept as written; only the blanks on both sides of a removed
// phrase are merged into one.
//
// This is a best-effort filter: it does not understand synonyms or other
// languages, and the backend may still produce realistic output.
func Sanitize(s string) string {
	cleaned := s
	for {
		next := cleaned
		for _, pattern := range denylistPatterns {
			next = pattern.ReplaceAllStringFunc(next, func(match string) string {
				return closeGap(pattern, match)
			})
		}
		// removal can join fragments into a new match
		if next == cleaned {
			break
		}
		cleaned = next
	}

	return strings.TrimSpace(cleaned)
}

// closeGap keeps the blanks before the removed phrase, or the ones after it
// when there were none before.
func closeGap(pattern *regexp.Regexp, match string) string {
	groups := pattern.FindStringSubmatch(match)
	if groups[1] != "" {
		return groups[1]
	}
	return groups[2]
}
