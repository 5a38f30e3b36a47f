package upstream

import (
	"github.com/riskibarqy/cricket-live/internal/domain/livescore"
	"github.com/riskibarqy/cricket-live/internal/platform/payload"
)

// IDKeys are the match id field names providers use, in priority order.
var IDKeys = []string{"id", "matchId", "match_id", "matchid", "unique_id", "mid", "series_id"}

var (
	titleKeys  = []string{"title", "matchTitle", "name", "match", "shortName", "event", "header", "series"}
	statusKeys = []string{"status", "state", "result", "message", "header"}
)

// EntryID returns the first usable id. Zero and false count as missing.
func EntryID(entry map[string]any) string {
	for _, key := range IDKeys {
		value, ok := entry[key]
		if !ok || !payload.Truthy(value) {
			continue
		}
		if id := livescore.CleanAny(value); id != "" {
			return id
		}
	}
	return ""
}

// GenericEntry maps a loosely shaped match object. ok is false for entries
// without an id or that do not look live.
func GenericEntry(entry map[string]any) (livescore.LiveMatch, bool) {
	id := EntryID(entry)
	if id == "" {
		return livescore.LiveMatch{}, false
	}
	if !genericIsLive(entry) {
		return livescore.LiveMatch{}, false
	}
	return livescore.LiveMatch{ID: id, Title: genericTitle(entry, id)}, true
}

func genericTitle(entry map[string]any, id string) string {
	for _, key := range titleKeys {
		if title := livescore.CleanAny(entry[key]); title != "" {
			return title
		}
	}

	home := livescore.TeamName(entry["team1"])
	if home == "" {
		home = livescore.TeamName(entry["homeTeam"])
	}
	away := livescore.TeamName(entry["team2"])
	if away == "" {
		away = livescore.TeamName(entry["awayTeam"])
	}
	if title := livescore.VersusTitle(home, away); title != "" {
		return title
	}
	return "Match " + id
}

func genericIsLive(entry map[string]any) bool {
	if live, ok := payload.Bool(entry, "isLive"); ok {
		return live
	}
	if started, ok := entry["matchStarted"]; ok {
		return payload.Truthy(started)
	}
	return AnyLikelyLive(entry, statusKeys...)
}

// AnyLikelyLive runs the live classifier over the named fields.
func AnyLikelyLive(entry map[string]any, keys ...string) bool {
	for _, key := range keys {
		if livescore.IsLikelyLive(livescore.CleanAny(entry[key])) {
			return true
		}
	}
	return false
}

// MapEntries applies mapper to every object in items, keeping accepted ones
// in order. The result is never nil.
func MapEntries(items []any, mapper func(map[string]any) (livescore.LiveMatch, bool)) []livescore.LiveMatch {
	out := make([]livescore.LiveMatch, 0, len(items))
	for _, entry := range payload.Maps(items) {
		if match, ok := mapper(entry); ok {
			out = append(out, match)
		}
	}
	return out
}
