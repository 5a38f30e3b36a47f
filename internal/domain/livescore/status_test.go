package livescore

import "testing"

func TestIsLikelyLive(t *testing.T) {
	t.Parallel()

	live := []string{
		"Live",
		"India need 45 runs in 30 balls",
		"Australia trail by 120 runs",
		"England lead by 32 runs",
		"Stumps - Day 2",
		"Lunch session",
		"Innings Break",
		"In Progress",
		"progress",
		"Drinks",
		"Target 250",
		"20 overs remaining",
	}
	for _, status := range live {
		if !IsLikelyLive(status) {
			t.Fatalf("expected %q to be live", status)
		}
	}

	notLive := []string{
		"",
		"N/A",
		"Match not started",
		"Result: Team A won",
		"Abandoned",
		"Starts at 14:00",
	}
	for _, status := range notLive {
		if IsLikelyLive(status) {
			t.Fatalf("expected %q not to be live", status)
		}
	}
}
