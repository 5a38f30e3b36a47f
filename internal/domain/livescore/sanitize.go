package livescore

import (
	"strings"

	"github.com/riskibarqy/cricket-live/internal/platform/payload"
)

var sentinels = map[string]struct{}{
	"data not found": {},
	"na":             {},
	"n/a":            {},
	"null":           {},
	"none":           {},
}

// Clean trims text and maps blanks and "no data" sentinels to "".
func Clean(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return ""
	}
	if _, ok := sentinels[strings.ToLower(trimmed)]; ok {
		return ""
	}
	return trimmed
}

// CleanAny stringifies a decoded JSON scalar before cleaning it.
func CleanAny(value any) string {
	return Clean(payload.String(value))
}

// FirstClean returns the first candidate that cleans to a non-empty string.
func FirstClean(values ...any) string {
	for _, value := range values {
		if cleaned := CleanAny(value); cleaned != "" {
			return cleaned
		}
	}
	return ""
}
