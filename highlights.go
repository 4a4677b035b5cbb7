package postpilot

import "strings"

// DefaultVocabulary is the fixed set of terms surfaced to the user as
// highlights when they appear in a caption.
var DefaultVocabulary = []string{
	"innovation",
	"AI",
	"efficiency",
	"automation",
	"customer",
	"growth",
	"technology",
}

// ExtractHighlights returns the vocabulary terms present in text, matched
// case-insensitively as substrings. Returned terms use the vocabulary's
// casing and appear at most once each, in vocabulary order.
func ExtractHighlights(text string) []string {
	lowered := strings.ToLower(text)
	var found []string
	for _, term := range DefaultVocabulary {
		if strings.Contains(lowered, strings.ToLower(term)) {
			found = append(found, term)
		}
	}
	return found
}
