package postpilot

import (
	"fmt"
	"path/filepath"
	"strings"
)

// SuggestionCount is the number of captions produced for a media file.
const SuggestionCount = 5

// SuggestCaptions derives a display name from the media filename and returns
// five templated caption suggestions embedding it. An empty name still
// yields five (grammatically odd) suggestions.
func SuggestCaptions(filename string) []string {
	name := DisplayName(filename)
	return []string{
		fmt.Sprintf("Discover how %s can inspire innovation.", name),
		fmt.Sprintf("The future is now: Embrace %s.", name),
		fmt.Sprintf("Here's how %s drives growth.", name),
		fmt.Sprintf("Empowering change through %s.", name),
		fmt.Sprintf("Let's talk about %s and technology.", name),
	}
}

// DisplayName strips the directory and extension from a media path and
// replaces underscores and hyphens with spaces.
func DisplayName(filename string) string {
	base := filepath.Base(filename)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	name = strings.ReplaceAll(name, "_", " ")
	return strings.ReplaceAll(name, "-", " ")
}
