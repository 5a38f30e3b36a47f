package livescore

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	segmentSeparator = regexp.MustCompile(`\s*(?:\r?\n|•|\||;)+\s*`)
	versusSeparator  = regexp.MustCompile(`(?i)\s+v(?:s\.?|/s)\s+`)
	titleVersus      = regexp.MustCompile(`(?i)\bvs\b|v/s|v\.s\.`)
	collapseSpace    = regexp.MustCompile(`\s+`)
	trailingScore    = regexp.MustCompile(`(?i)\s+score$`)
	leadingPunct     = regexp.MustCompile(`^[:\-\s]+`)
)

// ParseScoreText splits a free-form score summary such as
// "IND 245/6 (50) • AUS 120/3 (22.4)" into labelled lines. The title helps
// to pull per-team fragments out of a summary with no separators.
func ParseScoreText(text, title string) []ScoreLine {
	segments := splitScoreSegments(text, title)
	lines := make([]ScoreLine, 0, len(segments))
	for _, segment := range segments {
		line, ok := scoreSegmentToLine(segment)
		if ok {
			lines = append(lines, line)
		}
	}
	return lines
}

func splitScoreSegments(text, title string) []string {
	text = Clean(strings.ReplaceAll(text, `\n`, "\n"))
	if text == "" {
		return nil
	}

	parts := nonEmptySegments(segmentSeparator.Split(text, -1))
	if len(parts) <= 1 {
		if byVersus := nonEmptySegments(versusSeparator.Split(text, -1)); len(byVersus) > 1 {
			parts = byVersus
		}
	}

	if len(parts) == 1 && titleVersus.MatchString(title) {
		teams := nonEmptySegments(titleVersus.Split(title, -1))
		if len(teams) == 2 {
			perTeam := make([]string, 0, 2)
			for _, team := range teams {
				pattern := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(team) + `[^A-Za-z]*`)
				if found := squash(pattern.FindString(parts[0])); found != "" {
					perTeam = append(perTeam, found)
				}
			}
			if len(perTeam) == 2 {
				parts = perTeam
			}
		}
	}

	return parts
}

func scoreSegmentToLine(segment string) (ScoreLine, bool) {
	cleaned := squash(segment)
	if cleaned == "" {
		return ScoreLine{}, false
	}

	var label, value string
	digit := strings.IndexFunc(cleaned, unicode.IsDigit)
	switch colon := strings.IndexByte(cleaned, ':'); {
	case digit > 0:
		label, value = cleaned[:digit], cleaned[digit:]
	case colon >= 0:
		label, value = cleaned[:colon], cleaned[colon+1:]
	case digit == 0:
		value = cleaned
	default:
		label = cleaned
	}

	label = cleanScoreLabel(label)
	value = Clean(leadingPunct.ReplaceAllString(squash(value), ""))
	if label == "" && value == "" {
		return ScoreLine{}, false
	}
	if label == "" {
		label = PlaceholderLabel
	}
	return ScoreLine{Label: label, Value: optional(value)}, true
}

func cleanScoreLabel(label string) string {
	cleaned := strings.TrimRight(squash(label), ":- ")
	if cleaned == "" {
		return ""
	}
	if stripped := strings.TrimSpace(trailingScore.ReplaceAllString(cleaned, "")); stripped != "" {
		return stripped
	}
	return cleaned
}

func nonEmptySegments(parts []string) []string {
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if s := squash(part); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func squash(value string) string {
	return strings.TrimSpace(collapseSpace.ReplaceAllString(value, " "))
}
