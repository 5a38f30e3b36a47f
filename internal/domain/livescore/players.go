package livescore

import (
	"strconv"

	"github.com/riskibarqy/cricket-live/internal/platform/payload"
)

var flatSuffixes = []string{"one", "two"}

func collectBatsmen(views []map[string]any, innings []map[string]any) []Batsman {
	out := flatBatsmen(views)
	if len(out) == 0 {
		out = miniscoreBatsmen(views)
	}
	if len(out) == 0 {
		for _, entry := range innings {
			for _, row := range battingRows(entry) {
				if b, ok := batsmanFromRow(row); ok {
					out = append(out, b)
				}
			}
		}
	}
	if out == nil {
		return []Batsman{}
	}
	if len(out) > maxPlayersPerSide {
		out = out[:maxPlayersPerSide]
	}
	return out
}

func collectBowlers(views []map[string]any, innings []map[string]any) []Bowler {
	out := flatBowlers(views)
	if len(out) == 0 {
		out = miniscoreBowlers(views)
	}
	if len(out) == 0 {
		for _, entry := range innings {
			for _, row := range bowlingRows(entry) {
				if b, ok := bowlerFromRow(row); ok {
					out = append(out, b)
				}
			}
		}
	}
	if out == nil {
		return []Bowler{}
	}
	if len(out) > maxPlayersPerSide {
		out = out[:maxPlayersPerSide]
	}
	return out
}

// flatBatsmen reads the "batterone"/"batsman1Runs" style keys some live
// feeds put at the top level.
func flatBatsmen(views []map[string]any) []Batsman {
	out := make([]Batsman, 0, len(flatSuffixes))
	for i, suffix := range flatSuffixes {
		n := strconv.Itoa(i + 1)
		name := firstText(views, "batter"+suffix, "batsman"+suffix, "batsman"+n)
		if name == "" {
			continue
		}
		out = append(out, Batsman{
			Name:       name,
			Runs:       optional(firstText(views, "batsman"+suffix+"run", "batsman"+n+"run", "batsman"+n+"Runs")),
			Balls:      optional(firstText(views, "batsman"+suffix+"ball", "batsman"+n+"ball", "batsman"+n+"Balls")),
			StrikeRate: optional(firstText(views, "batsman"+suffix+"sr", "batsman"+n+"sr", "batsman"+n+"SR")),
		})
	}
	return out
}

func flatBowlers(views []map[string]any) []Bowler {
	out := make([]Bowler, 0, len(flatSuffixes))
	for i, suffix := range flatSuffixes {
		n := strconv.Itoa(i + 1)
		name := firstText(views, "bowler"+suffix, "bowler"+n)
		if name == "" {
			continue
		}
		out = append(out, Bowler{
			Name:    name,
			Overs:   optional(firstText(views, "bowler"+suffix+"over", "bowler"+n+"over", "bowler"+n+"Overs")),
			Runs:    optional(firstText(views, "bowler"+suffix+"run", "bowler"+n+"run", "bowler"+n+"Runs")),
			Wickets: optional(firstText(views, "bowler"+suffix+"wickers", "bowler"+n+"wickets", "bowler"+n+"Wickets")),
			Economy: optional(firstText(views, "bowler"+suffix+"economy", "bowler"+n+"economy", "bowler"+n+"Economy")),
		})
	}
	return out
}

func miniscoreBatsmen(views []map[string]any) []Batsman {
	for _, view := range views {
		mini := payload.Map(view, "miniscore")
		if mini == nil {
			continue
		}
		out := make([]Batsman, 0, 2)
		for _, key := range []string{"batsmanStriker", "batsmanNonStriker"} {
			if b, ok := batsmanFromRow(payload.Map(mini, key)); ok {
				out = append(out, b)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return nil
}

func miniscoreBowlers(views []map[string]any) []Bowler {
	for _, view := range views {
		mini := payload.Map(view, "miniscore")
		if mini == nil {
			continue
		}
		out := make([]Bowler, 0, 2)
		for _, key := range []string{"bowlerStriker", "bowlerNonStriker"} {
			if b, ok := bowlerFromRow(payload.Map(mini, key)); ok {
				out = append(out, b)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return nil
}

func battingRows(entry map[string]any) []map[string]any {
	for _, key := range []string{"batsman", "batsmen", "batting"} {
		if rows := payload.Maps(payload.Slice(entry, key)); len(rows) > 0 {
			return rows
		}
	}
	return payload.OrderedByNumericSuffix(payload.Map(entry, "batTeamDetails", "batsmenData"))
}

func bowlingRows(entry map[string]any) []map[string]any {
	for _, key := range []string{"bowler", "bowlers", "bowling"} {
		if rows := payload.Maps(payload.Slice(entry, key)); len(rows) > 0 {
			return rows
		}
	}
	return payload.OrderedByNumericSuffix(payload.Map(entry, "bowlTeamDetails", "bowlersData"))
}

func batsmanFromRow(row map[string]any) (Batsman, bool) {
	if row == nil {
		return Batsman{}, false
	}
	name := FirstClean(row["name"], row["batName"], row["fullName"], lookup(row, "batsman", "name"))
	if name == "" {
		return Batsman{}, false
	}
	return Batsman{
		Name:       name,
		Runs:       optional(FirstClean(row["r"], row["runs"], row["R"], row["batRuns"])),
		Balls:      optional(FirstClean(row["b"], row["balls"], row["B"], row["batBalls"])),
		StrikeRate: optional(FirstClean(row["sr"], row["strikeRate"], row["strkRate"], row["SR"], row["batStrikeRate"])),
	}, true
}

func bowlerFromRow(row map[string]any) (Bowler, bool) {
	if row == nil {
		return Bowler{}, false
	}
	name := FirstClean(row["name"], row["bowlName"], row["fullName"], lookup(row, "bowler", "name"))
	if name == "" {
		return Bowler{}, false
	}
	return Bowler{
		Name:    name,
		Overs:   optional(FirstClean(row["o"], row["overs"], row["O"], row["bowlOvs"])),
		Runs:    optional(FirstClean(row["r"], row["runs"], row["R"], row["bowlRuns"])),
		Wickets: optional(FirstClean(row["w"], row["wickets"], row["W"], row["wkts"], row["bowlWkts"])),
		Economy: optional(FirstClean(row["eco"], row["economy"], row["econ"], row["ER"], row["bowlEcon"])),
	}, true
}
