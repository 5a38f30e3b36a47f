package memory

import (
	"context"
	"testing"
	"time"

	"github.com/riskibarqy/cricket-live/internal/domain/match"
)

func TestMatchRepository_ListOrdersNewestFirst(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	day := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	repo := NewMatchRepository([]match.Match{
		{ID: "a", MatchDate: day, Status: match.StatusCompleted},
		{ID: "b", MatchDate: day.AddDate(0, 0, 2), Status: match.StatusUpcoming},
		{ID: "c", MatchDate: day.AddDate(0, 0, 1), Status: match.StatusCompleted},
	})

	all, err := repo.List(ctx, match.ListFilter{})
	if err != nil {
		t.Fatalf("list matches: %v", err)
	}
	if len(all) != 3 || all[0].ID != "b" || all[1].ID != "c" || all[2].ID != "a" {
		t.Fatalf("unexpected order: %+v", all)
	}

	completed, err := repo.List(ctx, match.ListFilter{Status: match.StatusCompleted})
	if err != nil {
		t.Fatalf("list completed matches: %v", err)
	}
	if len(completed) != 2 || completed[0].ID != "c" {
		t.Fatalf("unexpected completed matches: %+v", completed)
	}
}

func TestMatchRepository_CRUD(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMatchRepository(nil)
	created := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	item := match.Match{ID: "mt_1", Team1: "India", Team2: "Australia", CreatedAt: created}

	if err := repo.Create(ctx, item); err != nil {
		t.Fatalf("create match: %v", err)
	}
	if err := repo.Create(ctx, item); err == nil {
		t.Fatalf("expected duplicate create to fail")
	}

	item.Winner = "India"
	item.CreatedAt = time.Time{}
	ok, err := repo.Update(ctx, item)
	if err != nil || !ok {
		t.Fatalf("update match: ok=%v err=%v", ok, err)
	}

	got, exists, err := repo.GetByID(ctx, "mt_1")
	if err != nil || !exists {
		t.Fatalf("get match: exists=%v err=%v", exists, err)
	}
	if got.Winner != "India" || !got.CreatedAt.Equal(created) {
		t.Fatalf("unexpected stored match: %+v", got)
	}

	if ok, _ := repo.Update(ctx, match.Match{ID: "missing"}); ok {
		t.Fatalf("expected update of missing match to report false")
	}
	if ok, _ := repo.Delete(ctx, "mt_1"); !ok {
		t.Fatalf("expected delete to succeed")
	}
	if ok, _ := repo.Delete(ctx, "mt_1"); ok {
		t.Fatalf("expected second delete to report false")
	}
}
