package postgres

import (
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/riskibarqy/cricket-live/internal/domain/match"
)

func TestIsNotFound(t *testing.T) {
	if !isNotFound(fmt.Errorf("get match: %w", sql.ErrNoRows)) {
		t.Fatalf("expected wrapped ErrNoRows to be not found")
	}
	if isNotFound(fmt.Errorf("pq: relation matches does not exist")) {
		t.Fatalf("expected unrelated error to be ignored")
	}
}

func TestNullString(t *testing.T) {
	if got := nullString("  "); got.Valid {
		t.Fatalf("expected blank to be null, got %+v", got)
	}
	if got := nullString(" India "); !got.Valid || got.String != "India" {
		t.Fatalf("unexpected null string: %+v", got)
	}
}

func TestMatchTableModelRoundTrip(t *testing.T) {
	item := match.Match{
		ID:         "mt_1",
		Team1:      "India",
		Team2:      "Australia",
		Venue:      "Eden Gardens",
		MatchDate:  time.Date(2026, 3, 20, 9, 30, 0, 0, time.UTC),
		Status:     match.StatusLive,
		ScoreTeam1: "120/3",
	}

	row := newMatchTableModel(item)
	if row.Winner.Valid || !row.ScoreTeam1.Valid {
		t.Fatalf("unexpected nullable columns: %+v", row)
	}
	if got := row.toDomain(); got != item {
		t.Fatalf("round trip mismatch:\nwant: %+v\ngot:  %+v", item, got)
	}
	if matchColumns[0] != "id" || len(matchColumns) != 13 {
		t.Fatalf("unexpected match columns: %v", matchColumns)
	}
}
