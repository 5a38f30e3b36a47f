package livescore

import "strings"

var liveKeywords = []string{
	"live",
	"need",
	"trail",
	"lead",
	"stumps",
	"session",
	"day",
	"overs",
	"in progress",
	"progress",
	"drinks",
	"innings",
	"target",
}

// IsLikelyLive guesses from free text whether a match is in progress.
// It errs towards true.
func IsLikelyLive(status string) bool {
	cleaned := Clean(status)
	if cleaned == "" {
		return false
	}

	lower := strings.ToLower(cleaned)
	for _, keyword := range liveKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}
