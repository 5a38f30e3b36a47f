package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/cricket-live/internal/domain/match"
	matchmock "github.com/riskibarqy/cricket-live/internal/mocks/domain/match"
)

type fixedIDGenerator struct {
	id  string
	err error
}

func (g fixedIDGenerator) NewID() (string, error) {
	return g.id, g.err
}

func newTestMatchService(repo match.Repository) *MatchService {
	service := NewMatchService(repo, fixedIDGenerator{id: "mt_0001"})
	service.now = func() time.Time { return time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC) }
	return service
}

func sampleMatch() match.Match {
	return match.Match{
		ID:        "mt_0001",
		Team1:     "India",
		Team2:     "Australia",
		Venue:     "Wankhede Stadium",
		MatchDate: time.Date(2026, 3, 20, 9, 30, 0, 0, time.UTC),
		Status:    match.StatusUpcoming,
	}
}

func TestMatchService_CreateDefaultsToUpcoming(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := matchmock.NewRepository(t)
	service := newTestMatchService(repo)

	repo.
		On("Create", ctx, mock.MatchedBy(func(m match.Match) bool {
			return m.ID == "mt_0001" && m.Status == match.StatusUpcoming && m.Team1 == "India"
		})).
		Return(nil).
		Once()

	got, err := service.Create(ctx, CreateMatchInput{
		Team1:     " India ",
		Team2:     "Australia",
		Venue:     "Wankhede Stadium",
		MatchDate: time.Date(2026, 3, 20, 15, 0, 0, 0, time.FixedZone("IST", 19800)),
	})
	require.NoError(t, err)
	assert.Equal(t, "India vs Australia", got.Title())
	assert.Equal(t, time.UTC, got.MatchDate.Location())
	assert.Equal(t, got.CreatedAt, got.UpdatedAt)
}

func TestMatchService_CreateRejectsInvalidInput(t *testing.T) {
	t.Parallel()

	base := CreateMatchInput{
		Team1:     "India",
		Team2:     "Australia",
		Venue:     "Eden Gardens",
		MatchDate: time.Date(2026, 3, 20, 9, 30, 0, 0, time.UTC),
	}

	tests := []struct {
		name   string
		mutate func(in *CreateMatchInput)
	}{
		{name: "missing team", mutate: func(in *CreateMatchInput) { in.Team2 = "  " }},
		{name: "same teams", mutate: func(in *CreateMatchInput) { in.Team2 = "India" }},
		{name: "missing venue", mutate: func(in *CreateMatchInput) { in.Venue = "" }},
		{name: "missing date", mutate: func(in *CreateMatchInput) { in.MatchDate = time.Time{} }},
		{name: "unknown status", mutate: func(in *CreateMatchInput) { in.Status = "postponed" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := matchmock.NewRepository(t)
			input := base
			tt.mutate(&input)

			_, err := newTestMatchService(repo).Create(context.Background(), input)
			assert.ErrorIs(t, err, ErrInvalidInput)
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestMatchService_CreateIDFailure(t *testing.T) {
	t.Parallel()

	repo := matchmock.NewRepository(t)
	service := NewMatchService(repo, fixedIDGenerator{err: errors.New("entropy exhausted")})

	_, err := service.Create(context.Background(), CreateMatchInput{
		Team1:     "India",
		Team2:     "Australia",
		Venue:     "Eden Gardens",
		MatchDate: time.Date(2026, 3, 20, 9, 30, 0, 0, time.UTC),
	})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidInput)
}

func TestMatchService_ListParsesStatus(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := matchmock.NewRepository(t)
	service := newTestMatchService(repo)

	repo.On("List", ctx, match.ListFilter{Status: match.StatusLive}).Return([]match.Match{sampleMatch()}, nil).Once()

	got, err := service.List(ctx, " LIVE ")
	require.NoError(t, err)
	require.Len(t, got, 1)

	_, err = service.List(ctx, "postponed")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestMatchService_GetNotFound(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := matchmock.NewRepository(t)
	repo.On("GetByID", ctx, "missing").Return(match.Match{}, false, nil).Once()

	_, err := newTestMatchService(repo).Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMatchService_UpdateAppliesPatch(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := matchmock.NewRepository(t)
	service := newTestMatchService(repo)

	live := match.StatusLive
	score := "120/3 (15.2)"
	repo.On("GetByID", ctx, "mt_0001").Return(sampleMatch(), true, nil).Once()
	repo.
		On("Update", ctx, mock.MatchedBy(func(m match.Match) bool {
			return m.Status == match.StatusLive && m.ScoreTeam1 == score && m.Venue == "Wankhede Stadium"
		})).
		Return(true, nil).
		Once()

	got, err := service.Update(ctx, "mt_0001", match.Patch{Status: &live, ScoreTeam1: &score})
	require.NoError(t, err)
	assert.Equal(t, match.StatusLive, got.Status)
	assert.Equal(t, time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC), got.UpdatedAt)
}

func TestMatchService_UpdateRejectsEmptyPatch(t *testing.T) {
	t.Parallel()

	repo := matchmock.NewRepository(t)
	_, err := newTestMatchService(repo).Update(context.Background(), "mt_0001", match.Patch{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	bad := match.Status("postponed")
	_, err = newTestMatchService(repo).Update(context.Background(), "mt_0001", match.Patch{Status: &bad})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestMatchService_Delete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := matchmock.NewRepository(t)
	service := newTestMatchService(repo)

	repo.On("Delete", ctx, "mt_0001").Return(true, nil).Once()
	repo.On("Delete", ctx, "missing").Return(false, nil).Once()

	require.NoError(t, service.Delete(ctx, "mt_0001"))
	assert.ErrorIs(t, service.Delete(ctx, "missing"), ErrNotFound)
	assert.ErrorIs(t, service.Delete(ctx, " "), ErrInvalidInput)
}
