package match

import (
	"testing"
	"time"
)

func TestParseStatus(t *testing.T) {
	t.Parallel()

	got, err := ParseStatus(" Live ")
	if err != nil || got != StatusLive {
		t.Fatalf("unexpected result status=%q err=%v", got, err)
	}
	if _, err := ParseStatus("postponed"); err == nil {
		t.Fatalf("expected unknown status to fail")
	}
}

func TestPatchApply(t *testing.T) {
	t.Parallel()

	base := Match{
		ID:        "mt_1",
		Team1:     "India",
		Team2:     "Australia",
		Venue:     "Wankhede",
		MatchDate: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
		Status:    StatusUpcoming,
	}

	var patch Patch
	if !patch.Empty() {
		t.Fatalf("expected zero patch to be empty")
	}

	winner := "India"
	status := StatusCompleted
	patch = Patch{Winner: &winner, Status: &status}
	got := patch.Apply(base)

	if got.Winner != "India" || got.Status != StatusCompleted || got.Venue != "Wankhede" {
		t.Fatalf("unexpected patched match: %+v", got)
	}
	if base.Status != StatusUpcoming {
		t.Fatalf("expected original match to stay unchanged")
	}
	if got.Title() != "India vs Australia" {
		t.Fatalf("unexpected title: %q", got.Title())
	}
	if err := got.Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
}
