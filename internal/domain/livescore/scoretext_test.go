package livescore

import "testing"

func lineStrings(lines []ScoreLine) [][2]string {
	out := make([][2]string, 0, len(lines))
	for _, line := range lines {
		value := ""
		if line.Value != nil {
			value = *line.Value
		}
		out = append(out, [2]string{line.Label, value})
	}
	return out
}

func TestParseScoreText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		text  string
		title string
		want  [][2]string
	}{
		{
			name: "bullet separated",
			text: "IND 245/6 (50) • AUS 120/3 (22.4)",
			want: [][2]string{{"IND", "245/6 (50)"}, {"AUS", "120/3 (22.4)"}},
		},
		{
			name: "escaped newline",
			text: `India 245/6\nAustralia 120/3`,
			want: [][2]string{{"India", "245/6"}, {"Australia", "120/3"}},
		},
		{
			name: "versus split",
			text: "India 245/6 vs Australia 120/3",
			want: [][2]string{{"India", "245/6"}, {"Australia", "120/3"}},
		},
		{
			name:  "title guided split",
			text:  "India 245/6 (50) Australia 120/3 (22.4)",
			title: "India vs Australia",
			want:  [][2]string{{"India", "245/6 (50)"}, {"Australia", "120/3 (22.4)"}},
		},
		{
			name: "colon label and score suffix",
			text: "India score: 99 | Extras: twelve",
			want: [][2]string{{"India", "99"}, {"Extras", "twelve"}},
		},
		{
			name: "bare score",
			text: "120/3 (15.2)",
			want: [][2]string{{"Score", "120/3 (15.2)"}},
		},
		{
			name: "status only",
			text: "Stumps",
			want: [][2]string{{"Stumps", ""}},
		},
		{
			name: "sentinel",
			text: "N/A",
			want: [][2]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := lineStrings(ParseScoreText(tt.text, tt.title))
			if len(got) != len(tt.want) {
				t.Fatalf("unexpected lines: got=%v want=%v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("line %d: got=%v want=%v", i, got[i], tt.want[i])
				}
			}
		})
	}
}
