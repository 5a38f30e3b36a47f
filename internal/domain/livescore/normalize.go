package livescore

import (
	"strings"

	"github.com/riskibarqy/cricket-live/internal/platform/payload"
)

var (
	inningsKeys = []string{"scorecard", "scoreCard", "innings", "score"}
	summaryKeys = []string{"livescore", "score", "summary", "scoreSummary"}

	// envelope words some providers put in a wrapper's status field
	wrapperStatuses = map[string]struct{}{"success": {}, "failure": {}, "error": {}}
)

// Normalize shapes provider payloads into a ScoreDetail. Title fields are
// read from info first; every other field prefers score.
func Normalize(matchID string, info, score map[string]any, fallbackTitle string) ScoreDetail {
	scoreFirst := views(score, info)
	innings := inningsEntries(score, info)
	title := resolveTitle(matchID, info, score, fallbackTitle)

	lines := scoreLines(score, info)
	if len(lines) == 0 {
		lines = ParseScoreText(firstText(scoreFirst, summaryKeys...), title)
	}

	detail := ScoreDetail{
		ID:          matchID,
		Title:       title,
		Status:      matchStatus(scoreFirst),
		Update:      optional(firstText(scoreFirst, "update", "lastupdate", "lastUpdated")),
		RunRate:     optional(firstText(scoreFirst, "runrate", "currentrunrate", "currentRunRate", "miniscore.currentRunRate", "crr")),
		ScoreLines:  lines,
		Score:       optional(joinLines(lines)),
		Batsmen:     collectBatsmen(scoreFirst, innings),
		Bowlers:     collectBowlers(scoreFirst, innings),
		Extras:      optional(resolveExtras(scoreFirst, innings)),
		Partnership: optional(resolvePartnership(scoreFirst)),
		LastWicket:  optional(firstText(scoreFirst, "lastwicket", "lastWicket", "miniscore.lastWicket")),
		RecentOvers: optional(firstText(scoreFirst, "recentballs", "recentBalls", "recentOvers", "miniscore.recentOvsStats")),
	}
	if detail.Status == "" {
		detail.Status = DefaultStatus
	}
	return detail
}

// HasData reports whether any top-level value of src cleans to text.
func HasData(src map[string]any) bool {
	for _, value := range src {
		if CleanAny(value) != "" {
			return true
		}
	}
	return false
}

// views lists each payload's data object ahead of the payload itself, so
// match fields win over the envelope around them.
func views(payloads ...map[string]any) []map[string]any {
	out := make([]map[string]any, 0, len(payloads)*2)
	for _, p := range payloads {
		if p == nil {
			continue
		}
		if data := payload.Map(p, "data"); data != nil {
			out = append(out, data)
		}
		out = append(out, p)
	}
	return out
}

func matchStatus(views []map[string]any) string {
	for _, path := range []string{"status", "matchHeader.status", "miniscore.status", "update"} {
		keys := strings.Split(path, ".")
		for _, view := range views {
			raw, ok := payload.Lookup(view, keys...)
			if !ok {
				continue
			}
			status := CleanAny(raw)
			if status == "" {
				continue
			}
			if _, wrapper := wrapperStatuses[strings.ToLower(status)]; wrapper {
				continue
			}
			return status
		}
	}
	return ""
}

// firstText tries each dotted path against every view before moving on to
// the next path.
func firstText(views []map[string]any, paths ...string) string {
	for _, path := range paths {
		keys := strings.Split(path, ".")
		for _, view := range views {
			raw, ok := payload.Lookup(view, keys...)
			if !ok {
				continue
			}
			if cleaned := CleanAny(raw); cleaned != "" {
				return cleaned
			}
		}
	}
	return ""
}

func resolveTitle(matchID string, info, score map[string]any, fallback string) string {
	for _, p := range []map[string]any{info, score} {
		if title := describedTitle(views(p)); title != "" {
			return title
		}
	}
	if title := Clean(fallback); title != "" {
		return title
	}
	return "Match " + matchID
}

func describedTitle(views []map[string]any) string {
	if title := firstText(views, "title", "matchtitle", "matchTitle", "name"); title != "" {
		return title
	}

	for _, view := range views {
		for _, key := range []string{"matchHeader", "matchInfo"} {
			header := payload.Map(view, key)
			if header == nil {
				continue
			}
			desc := FirstClean(header["matchDescription"], header["matchDesc"])
			if teams := VersusTitle(TeamName(header["team1"]), TeamName(header["team2"])); teams != "" {
				if desc != "" {
					return teams + ", " + desc
				}
				return teams
			}
			if desc != "" {
				return desc
			}
		}

		if teams := payload.Slice(view, "teams"); len(teams) >= 2 {
			if title := VersusTitle(CleanAny(teams[0]), CleanAny(teams[1])); title != "" {
				return title
			}
		}
	}
	return ""
}

// VersusTitle renders "{home} vs {away}" when both sides are known.
func VersusTitle(home, away string) string {
	if home == "" || away == "" {
		return ""
	}
	return home + " vs " + away
}

// TeamName reads a team given either as text or as an object with a name.
func TeamName(raw any) string {
	if team, ok := raw.(map[string]any); ok {
		return FirstClean(team["name"], team["teamName"], team["shortName"], team["teamSName"])
	}
	return CleanAny(raw)
}

func inningsEntries(payloads ...map[string]any) []map[string]any {
	for _, view := range views(payloads...) {
		for _, key := range inningsKeys {
			if entries := payload.Maps(payload.Slice(view, key)); len(entries) > 0 {
				return entries
			}
		}
	}
	return nil
}

// scoreLines builds lines from the first innings array that carries a score
// value. Arrays that only name their innings are kept as a last resort.
func scoreLines(payloads ...map[string]any) []ScoreLine {
	var labelsOnly []ScoreLine
	for _, view := range views(payloads...) {
		for _, key := range inningsKeys {
			lines := inningsLines(payload.Maps(payload.Slice(view, key)))
			if len(lines) == 0 {
				continue
			}
			for _, line := range lines {
				if line.Value != nil {
					return lines
				}
			}
			if labelsOnly == nil {
				labelsOnly = lines
			}
		}
	}
	return labelsOnly
}

func inningsLines(entries []map[string]any) []ScoreLine {
	lines := make([]ScoreLine, 0, len(entries))
	for _, entry := range entries {
		if line, ok := inningsLine(entry); ok {
			lines = append(lines, line)
		}
	}
	return lines
}

func inningsLine(entry map[string]any) (ScoreLine, bool) {
	label := FirstClean(
		entry["inning"],
		entry["team"],
		entry["teamName"],
		entry["batTeamName"],
		lookup(entry, "batTeamDetails", "batTeamName"),
	)

	value := ComposeScore(
		FirstClean(entry["runs"], entry["r"], entry["R"], lookup(entry, "scoreDetails", "runs"), lookup(entry, "totals", "R")),
		FirstClean(entry["wickets"], entry["w"], entry["W"], entry["wkts"], lookup(entry, "scoreDetails", "wickets"), lookup(entry, "totals", "W")),
		FirstClean(entry["overs"], entry["o"], entry["O"], entry["ovs"], lookup(entry, "scoreDetails", "overs"), lookup(entry, "totals", "O")),
	)
	if value == "" {
		value = FirstClean(entry["score"], entry["scoreText"], entry["summary"])
	}

	if label == "" && value == "" {
		return ScoreLine{}, false
	}
	if label == "" {
		label = PlaceholderLabel
	}
	return ScoreLine{Label: label, Value: optional(value)}, true
}

// ComposeScore renders "{runs}/{wickets} ({overs})", dropping the parts
// that are missing. Without runs there is nothing to compose.
func ComposeScore(runs, wickets, overs string) string {
	if runs == "" {
		return ""
	}
	value := runs
	if wickets != "" {
		value += "/" + wickets
	}
	if overs != "" {
		value += " (" + overs + ")"
	}
	return value
}

func joinLines(lines []ScoreLine) string {
	parts := make([]string, 0, len(lines))
	for _, line := range lines {
		if line.Value == nil {
			parts = append(parts, line.Label)
			continue
		}
		parts = append(parts, line.Label+" "+*line.Value)
	}
	return strings.Join(parts, " | ")
}

func resolveExtras(views []map[string]any, innings []map[string]any) string {
	if extras := firstText(views, "extras"); extras != "" {
		return extras
	}
	for i := len(innings) - 1; i >= 0; i-- {
		for _, key := range []string{"extras", "extrasData"} {
			if text := extrasText(innings[i][key]); text != "" {
				return text
			}
		}
	}
	return ""
}

func extrasText(raw any) string {
	obj, ok := raw.(map[string]any)
	if !ok {
		return CleanAny(raw)
	}

	total := FirstClean(obj["total"], obj["r"])
	parts := make([]string, 0, 5)
	for _, item := range []struct {
		label string
		keys  []string
	}{
		{label: "b", keys: []string{"b", "byes"}},
		{label: "lb", keys: []string{"lb", "legByes", "legbyes"}},
		{label: "w", keys: []string{"w", "wides"}},
		{label: "nb", keys: []string{"nb", "noBalls", "noballs"}},
		{label: "p", keys: []string{"p", "penalty"}},
	} {
		values := make([]any, 0, len(item.keys))
		for _, key := range item.keys {
			values = append(values, obj[key])
		}
		if v := FirstClean(values...); v != "" {
			parts = append(parts, item.label+" "+v)
		}
	}

	switch {
	case total != "" && len(parts) > 0:
		return total + " (" + strings.Join(parts, ", ") + ")"
	case total != "":
		return total
	default:
		return strings.Join(parts, ", ")
	}
}

func resolvePartnership(views []map[string]any) string {
	for _, path := range [][]string{
		{"partnership"},
		{"partnerShip"},
		{"miniscore", "partnerShip"},
		{"miniscore", "partnership"},
	} {
		for _, view := range views {
			raw, ok := payload.Lookup(view, path...)
			if !ok {
				continue
			}
			obj, isObj := raw.(map[string]any)
			if !isObj {
				if text := CleanAny(raw); text != "" {
					return text
				}
				continue
			}
			runs := FirstClean(obj["runs"], obj["r"])
			if runs == "" {
				continue
			}
			if balls := FirstClean(obj["balls"], obj["b"]); balls != "" {
				return runs + " (" + balls + ")"
			}
			return runs
		}
	}
	return ""
}

func lookup(src map[string]any, path ...string) any {
	raw, _ := payload.Lookup(src, path...)
	return raw
}
