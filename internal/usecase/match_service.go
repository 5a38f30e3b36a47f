package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/cricket-live/internal/domain/match"
	"github.com/riskibarqy/cricket-live/internal/platform/id"
)

type CreateMatchInput struct {
	Team1         string    `validate:"required,max=100"`
	Team2         string    `validate:"required,max=100,nefield=Team1"`
	Venue         string    `validate:"required,max=200"`
	MatchDate     time.Time `validate:"required"`
	Status        string    `validate:"omitempty,oneof=upcoming live completed abandoned"`
	ScoreTeam1    string    `validate:"max=50"`
	ScoreTeam2    string    `validate:"max=50"`
	Winner        string    `validate:"max=100"`
	PlayerOfMatch string    `validate:"max=100"`
}

type MatchService struct {
	repo      match.Repository
	ids       id.Generator
	validator *validator.Validate
	now       func() time.Time
}

func NewMatchService(repo match.Repository, ids id.Generator) *MatchService {
	if ids == nil {
		ids = id.NewRandomGenerator("mt")
	}
	return &MatchService{
		repo:      repo,
		ids:       ids,
		validator: validator.New(),
		now:       time.Now,
	}
}

func (s *MatchService) List(ctx context.Context, status string) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.List")
	defer span.End()

	filter := match.ListFilter{}
	if strings.TrimSpace(status) != "" {
		parsed, err := match.ParseStatus(status)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		filter.Status = parsed
	}

	items, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	return items, nil
}

func (s *MatchService) Get(ctx context.Context, matchID string) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Get")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return match.Match{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	item, exists, err := s.repo.GetByID(ctx, matchID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}
	return item, nil
}

func (s *MatchService) Create(ctx context.Context, input CreateMatchInput) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Create")
	defer span.End()

	input.Team1 = strings.TrimSpace(input.Team1)
	input.Team2 = strings.TrimSpace(input.Team2)
	input.Venue = strings.TrimSpace(input.Venue)
	input.Status = strings.ToLower(strings.TrimSpace(input.Status))
	if err := s.validator.StructCtx(ctx, input); err != nil {
		return match.Match{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	matchID, err := s.ids.NewID()
	if err != nil {
		return match.Match{}, fmt.Errorf("generate match id: %w", err)
	}

	status := match.StatusUpcoming
	if input.Status != "" {
		status = match.Status(input.Status)
	}

	now := s.now().UTC()
	item := match.Match{
		ID:            matchID,
		Team1:         input.Team1,
		Team2:         input.Team2,
		Venue:         input.Venue,
		MatchDate:     input.MatchDate.UTC(),
		Status:        status,
		ScoreTeam1:    strings.TrimSpace(input.ScoreTeam1),
		ScoreTeam2:    strings.TrimSpace(input.ScoreTeam2),
		Winner:        strings.TrimSpace(input.Winner),
		PlayerOfMatch: strings.TrimSpace(input.PlayerOfMatch),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := item.Validate(); err != nil {
		return match.Match{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return match.Match{}, fmt.Errorf("create match: %w", err)
	}
	return item, nil
}

func (s *MatchService) Update(ctx context.Context, matchID string, patch match.Patch) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Update")
	defer span.End()

	if patch.Empty() {
		return match.Match{}, fmt.Errorf("%w: no fields to update", ErrInvalidInput)
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return match.Match{}, fmt.Errorf("%w: invalid match status %q", ErrInvalidInput, *patch.Status)
	}

	current, err := s.Get(ctx, matchID)
	if err != nil {
		return match.Match{}, err
	}

	updated := patch.Apply(current)
	updated.UpdatedAt = s.now().UTC()
	if err := updated.Validate(); err != nil {
		return match.Match{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	exists, err := s.repo.Update(ctx, updated)
	if err != nil {
		return match.Match{}, fmt.Errorf("update match: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: match=%s", ErrNotFound, updated.ID)
	}
	return updated, nil
}

func (s *MatchService) Delete(ctx context.Context, matchID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Delete")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	exists, err := s.repo.Delete(ctx, matchID)
	if err != nil {
		return fmt.Errorf("delete match: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}
	return nil
}
