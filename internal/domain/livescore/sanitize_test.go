package livescore

import "testing"

func TestClean_Sentinels(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"", "   ", "N/A", "n/a", "NA", "null", "NULL", "None", "none", "Data Not Found", "  data not found  "} {
		if got := Clean(in); got != "" {
			t.Fatalf("Clean(%q)=%q, want empty", in, got)
		}
	}
}

func TestClean_KeepsRealText(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"  India  ":          "India",
		"Nagpur":             "Nagpur",
		"NA 120/3":           "NA 120/3",
		"none of the above":  "none of the above",
		"Stumps - Day 2":     "Stumps - Day 2",
		"\tAustralia lead\n": "Australia lead",
	}
	for in, want := range tests {
		if got := Clean(in); got != want {
			t.Fatalf("Clean(%q)=%q want=%q", in, got, want)
		}
	}
}

func TestCleanAny(t *testing.T) {
	t.Parallel()

	if got := CleanAny(float64(15.2)); got != "15.2" {
		t.Fatalf("unexpected float rendering: %q", got)
	}
	if got := CleanAny(float64(120)); got != "120" {
		t.Fatalf("unexpected integral rendering: %q", got)
	}
	if got := CleanAny(false); got != "false" {
		t.Fatalf("unexpected bool rendering: %q", got)
	}
	if got := CleanAny(map[string]any{"runs": 1}); got != "" {
		t.Fatalf("expected objects to be absent, got %q", got)
	}
	if got := FirstClean(nil, "null", " ", "India"); got != "India" {
		t.Fatalf("unexpected first clean value: %q", got)
	}
}
