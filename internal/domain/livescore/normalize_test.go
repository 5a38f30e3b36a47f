package livescore

import (
	"strings"
	"testing"

	jsoniter "github.com/json-iterator/go"
)

func strValue(p *string) string {
	if p == nil {
		return "<nil>"
	}
	return *p
}

func TestNormalize_ComposesDiscreteScoreFields(t *testing.T) {
	t.Parallel()

	score := map[string]any{
		"score": []any{
			map[string]any{"runs": "120", "wickets": float64(3), "overs": "15.2"},
		},
	}

	got := Normalize("77", nil, score, "")
	if len(got.ScoreLines) != 1 {
		t.Fatalf("expected one score line, got %+v", got.ScoreLines)
	}
	if got.ScoreLines[0].Label != PlaceholderLabel || strValue(got.ScoreLines[0].Value) != "120/3 (15.2)" {
		t.Fatalf("unexpected line: %+v value=%s", got.ScoreLines[0], strValue(got.ScoreLines[0].Value))
	}
	if strValue(got.Score) != "Score 120/3 (15.2)" {
		t.Fatalf("unexpected composite score: %s", strValue(got.Score))
	}
	if got.Title != "Match 77" || got.Status != DefaultStatus {
		t.Fatalf("unexpected defaults: title=%q status=%q", got.Title, got.Status)
	}
}

func TestNormalize_KeepsPrecomposedScoreVerbatim(t *testing.T) {
	t.Parallel()

	score := map[string]any{
		"innings": []any{
			map[string]any{"team": "India", "score": "245/6 (50 ov)"},
			map[string]any{"note": "N/A"},
		},
	}

	got := Normalize("1", nil, score, "India vs Australia")
	if len(got.ScoreLines) != 1 {
		t.Fatalf("expected empty entry to be dropped, got %+v", got.ScoreLines)
	}
	if got.ScoreLines[0].Label != "India" || strValue(got.ScoreLines[0].Value) != "245/6 (50 ov)" {
		t.Fatalf("unexpected line: %+v", got.ScoreLines[0])
	}
	if got.Title != "India vs Australia" {
		t.Fatalf("expected fallback title, got %q", got.Title)
	}
}

func TestNormalize_FlatLiveFeed(t *testing.T) {
	t.Parallel()

	score := map[string]any{
		"title":            "IND v AUS",
		"livescore":        "IND 120/3",
		"status":           "N/A",
		"update":           "Stumps",
		"currentrunrate":   "5.2",
		"batterone":        "Kohli",
		"batsmanonerun":    "45",
		"batsmanoneball":   "30",
		"batsmanonesr":     "150.0",
		"battertwo":        "Data Not Found",
		"bowlerone":        "Cummins",
		"bowleroneover":    "4",
		"bowlerwickers":    "ignored",
		"bowleronewickers": "1",
		"lastwicket":       "Rohit 30(20)",
		"recentballs":      "1 4 0 W 2 6",
		"partnership":      "null",
	}

	got := Normalize("9", map[string]any{}, score, "fallback")

	if got.Title != "IND v AUS" {
		t.Fatalf("unexpected title: %q", got.Title)
	}
	if got.Status != "Stumps" || strValue(got.Update) != "Stumps" {
		t.Fatalf("unexpected status/update: %q %s", got.Status, strValue(got.Update))
	}
	if strValue(got.RunRate) != "5.2" {
		t.Fatalf("unexpected runrate: %s", strValue(got.RunRate))
	}
	if strValue(got.Score) != "IND 120/3" {
		t.Fatalf("unexpected score: %s", strValue(got.Score))
	}
	if len(got.Batsmen) != 1 || got.Batsmen[0].Name != "Kohli" || strValue(got.Batsmen[0].StrikeRate) != "150.0" {
		t.Fatalf("unexpected batsmen: %+v", got.Batsmen)
	}
	if len(got.Bowlers) != 1 || strValue(got.Bowlers[0].Wickets) != "1" || strValue(got.Bowlers[0].Economy) != "<nil>" {
		t.Fatalf("unexpected bowlers: %+v", got.Bowlers)
	}
	if strValue(got.LastWicket) != "Rohit 30(20)" || strValue(got.RecentOvers) != "1 4 0 W 2 6" {
		t.Fatalf("unexpected wicket/overs: %s %s", strValue(got.LastWicket), strValue(got.RecentOvers))
	}
	if got.Partnership != nil || got.Extras != nil {
		t.Fatalf("expected sentinel partnership and missing extras to be nil")
	}
}

func TestNormalize_CapsBatsmenInSourceOrder(t *testing.T) {
	t.Parallel()

	batting := make([]any, 0, 5)
	for _, name := range []string{"A", "B", "C", "D", "E"} {
		batting = append(batting, map[string]any{
			"batsman": map[string]any{"name": name},
			"r":       float64(10),
			"b":       float64(8),
			"sr":      125.0,
		})
	}
	bowling := []any{
		map[string]any{"bowler": map[string]any{"name": "X"}, "o": 4.0, "r": 30.0, "w": 2.0, "eco": 7.5},
	}
	score := map[string]any{
		"status": "success",
		"data": map[string]any{
			"status": "India need 20 runs",
			"scorecard": []any{
				map[string]any{"inning": "India Inning 1", "batting": batting, "bowling": bowling},
			},
			"score": []any{
				map[string]any{"r": 180.0, "w": 5.0, "o": 20.0, "inning": "India Inning 1"},
			},
		},
	}

	got := Normalize("45", nil, score, "")
	if len(got.Batsmen) != 4 {
		t.Fatalf("expected 4 batsmen, got %d", len(got.Batsmen))
	}
	for i, want := range []string{"A", "B", "C", "D"} {
		if got.Batsmen[i].Name != want {
			t.Fatalf("batsman %d: got=%q want=%q", i, got.Batsmen[i].Name, want)
		}
	}
	if strValue(got.Batsmen[0].StrikeRate) != "125" {
		t.Fatalf("unexpected strike rate: %s", strValue(got.Batsmen[0].StrikeRate))
	}
	if len(got.Bowlers) != 1 || strValue(got.Bowlers[0].Economy) != "7.5" {
		t.Fatalf("unexpected bowlers: %+v", got.Bowlers)
	}
	if got.Status != "India need 20 runs" {
		t.Fatalf("unexpected status: %q", got.Status)
	}
	if len(got.ScoreLines) != 1 || got.ScoreLines[0].Label != "India Inning 1" || strValue(got.ScoreLines[0].Value) != "180/5 (20)" {
		t.Fatalf("unexpected score lines: %+v", got.ScoreLines)
	}
	if strValue(got.Score) != "India Inning 1 180/5 (20)" {
		t.Fatalf("unexpected score: %s", strValue(got.Score))
	}
}

func TestNormalize_ReadsScorecardTotals(t *testing.T) {
	t.Parallel()

	score := map[string]any{
		"scorecard": []any{
			map[string]any{"inning": "Australia Inning 1", "totals": map[string]any{"R": 287.0, "W": 10.0, "O": 49.3}},
			map[string]any{"inning": "India Inning 1", "totals": map[string]any{"R": 120.0, "W": 2.0, "O": 21.0}},
		},
	}

	got := Normalize("12", nil, score, "")
	if strValue(got.Score) != "Australia Inning 1 287/10 (49.3) | India Inning 1 120/2 (21)" {
		t.Fatalf("unexpected score: %s", strValue(got.Score))
	}
}

func TestNormalize_LabelOnlyInningsAreLastResort(t *testing.T) {
	t.Parallel()

	score := map[string]any{
		"innings": []any{map[string]any{"inning": "Kent Inning 1"}},
	}

	got := Normalize("3", nil, score, "")
	if len(got.ScoreLines) != 1 || got.ScoreLines[0].Label != "Kent Inning 1" || got.ScoreLines[0].Value != nil {
		t.Fatalf("unexpected score lines: %+v", got.ScoreLines)
	}
}

func TestNormalize_IgnoresEnvelopeStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		score map[string]any
		want  string
	}{
		{
			name:  "data status wins",
			score: map[string]any{"status": "success", "data": map[string]any{"status": "Stumps - Day 2"}},
			want:  "Stumps - Day 2",
		},
		{
			name:  "bare wrapper falls back to default",
			score: map[string]any{"status": "success", "data": map[string]any{"livescore": "IND 10/0"}},
			want:  DefaultStatus,
		},
		{
			name:  "failure word ignored",
			score: map[string]any{"status": "Failure", "livescore": "IND 10/0"},
			want:  DefaultStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize("8", nil, tt.score, ""); got.Status != tt.want {
				t.Fatalf("status=%q want=%q", got.Status, tt.want)
			}
		})
	}
}

func TestNormalize_CricbuzzScorecard(t *testing.T) {
	t.Parallel()

	info := map[string]any{
		"matchHeader": map[string]any{
			"team1":            map[string]any{"name": "India"},
			"team2":            map[string]any{"name": "Australia"},
			"matchDescription": "3rd ODI",
			"status":           "India need 20 runs",
		},
	}
	score := map[string]any{
		"scoreCard": []any{
			map[string]any{
				"batTeamDetails": map[string]any{
					"batTeamName": "AUS",
					"batsmenData": map[string]any{
						"bat_10": map[string]any{"batName": "J", "runs": 1.0},
						"bat_2":  map[string]any{"batName": "B", "runs": 10.0},
						"bat_1":  map[string]any{"batName": "A", "runs": 50.0, "balls": 40.0, "strikeRate": 125.0},
					},
				},
				"scoreDetails": map[string]any{"runs": 250.0, "wickets": 8.0, "overs": 50.0},
				"extrasData":   map[string]any{"total": 12.0, "wides": 8.0, "legByes": 4.0},
			},
		},
		"miniscore": map[string]any{
			"partnerShip":    map[string]any{"runs": 34.0, "balls": 21.0},
			"recentOvsStats": "1 1 4 | 0 0 W",
		},
	}

	got := Normalize("35612", info, score, "ignored")

	if got.Title != "India vs Australia, 3rd ODI" {
		t.Fatalf("unexpected title: %q", got.Title)
	}
	if got.Status != "India need 20 runs" {
		t.Fatalf("unexpected status: %q", got.Status)
	}
	if len(got.ScoreLines) != 1 || got.ScoreLines[0].Label != "AUS" || strValue(got.ScoreLines[0].Value) != "250/8 (50)" {
		t.Fatalf("unexpected score lines: %+v", got.ScoreLines)
	}
	names := make([]string, 0, len(got.Batsmen))
	for _, b := range got.Batsmen {
		names = append(names, b.Name)
	}
	if strings.Join(names, ",") != "A,B,J" {
		t.Fatalf("unexpected batting order: %v", names)
	}
	if strValue(got.Extras) != "12 (lb 4, w 8)" {
		t.Fatalf("unexpected extras: %s", strValue(got.Extras))
	}
	if strValue(got.Partnership) != "34 (21)" || strValue(got.RecentOvers) != "1 1 4 | 0 0 W" {
		t.Fatalf("unexpected miniscore fields: %s %s", strValue(got.Partnership), strValue(got.RecentOvers))
	}
}

func TestScoreDetail_EncodesNullsAndEmptyLists(t *testing.T) {
	t.Parallel()

	got := Normalize("5", nil, map[string]any{"status": "Live"}, "")
	body, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(got)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	text := string(body)
	for _, want := range []string{`"batsmen":[]`, `"bowlers":[]`, `"scoreLines":[]`, `"score":null`, `"extras":null`, `"runrate":null`} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected %s in %s", want, text)
		}
	}
}

func TestHasData(t *testing.T) {
	t.Parallel()

	if HasData(map[string]any{"a": "N/A", "b": nil, "c": map[string]any{"x": "y"}}) {
		t.Fatalf("expected sentinel-only payload to have no data")
	}
	if !HasData(map[string]any{"livescore": "IND 120/3"}) {
		t.Fatalf("expected payload with text to have data")
	}
}
