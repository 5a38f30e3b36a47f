package httpapi

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/riskibarqy/cricket-live/internal/domain/match"
	"github.com/riskibarqy/cricket-live/internal/usecase"
)

type matchDTO struct {
	ID            string    `json:"id"`
	Team1         string    `json:"team1"`
	Team2         string    `json:"team2"`
	Venue         string    `json:"venue"`
	MatchDate     time.Time `json:"match_date"`
	Status        string    `json:"status"`
	ScoreTeam1    *string   `json:"score_team1"`
	ScoreTeam2    *string   `json:"score_team2"`
	Winner        *string   `json:"winner"`
	PlayerOfMatch *string   `json:"player_of_match"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type createMatchRequest struct {
	Team1         string    `json:"team1" validate:"required,max=100"`
	Team2         string    `json:"team2" validate:"required,max=100"`
	Venue         string    `json:"venue" validate:"required,max=200"`
	MatchDate     time.Time `json:"match_date" validate:"required"`
	Status        string    `json:"status" validate:"omitempty,oneof=upcoming live completed abandoned"`
	ScoreTeam1    string    `json:"score_team1" validate:"max=50"`
	ScoreTeam2    string    `json:"score_team2" validate:"max=50"`
	Winner        string    `json:"winner" validate:"max=100"`
	PlayerOfMatch string    `json:"player_of_match" validate:"max=100"`
}

type updateMatchRequest struct {
	Team1         *string    `json:"team1" validate:"omitempty,min=1,max=100"`
	Team2         *string    `json:"team2" validate:"omitempty,min=1,max=100"`
	Venue         *string    `json:"venue" validate:"omitempty,min=1,max=200"`
	MatchDate     *time.Time `json:"match_date"`
	Status        *string    `json:"status" validate:"omitempty,oneof=upcoming live completed abandoned"`
	ScoreTeam1    *string    `json:"score_team1" validate:"omitempty,max=50"`
	ScoreTeam2    *string    `json:"score_team2" validate:"omitempty,max=50"`
	Winner        *string    `json:"winner" validate:"omitempty,max=100"`
	PlayerOfMatch *string    `json:"player_of_match" validate:"omitempty,max=100"`
}

func (req updateMatchRequest) toPatch() match.Patch {
	patch := match.Patch{
		Team1:         req.Team1,
		Team2:         req.Team2,
		Venue:         req.Venue,
		MatchDate:     req.MatchDate,
		ScoreTeam1:    req.ScoreTeam1,
		ScoreTeam2:    req.ScoreTeam2,
		Winner:        req.Winner,
		PlayerOfMatch: req.PlayerOfMatch,
	}
	if req.Status != nil {
		status := match.Status(strings.ToLower(strings.TrimSpace(*req.Status)))
		patch.Status = &status
	}
	return patch
}

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	items, err := h.matchService.List(ctx, r.URL.Query().Get("status"))
	if err != nil {
		h.logger.WarnContext(ctx, "list matches failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]matchDTO, 0, len(items))
	for _, item := range items {
		out = append(out, matchToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatch")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	item, err := h.matchService.Get(ctx, matchID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(item))
}

func (h *Handler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateMatch")
	defer span.End()

	var req createMatchRequest
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.matchService.Create(ctx, usecase.CreateMatchInput{
		Team1:         req.Team1,
		Team2:         req.Team2,
		Venue:         req.Venue,
		MatchDate:     req.MatchDate,
		Status:        req.Status,
		ScoreTeam1:    req.ScoreTeam1,
		ScoreTeam2:    req.ScoreTeam2,
		Winner:        req.Winner,
		PlayerOfMatch: req.PlayerOfMatch,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create match failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "match created", append([]any{"match_id", item.ID}, editorFields(ctx)...)...)
	writeSuccess(ctx, w, http.StatusCreated, matchToDTO(item))
}

func (h *Handler) UpdateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateMatch")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	var req updateMatchRequest
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.matchService.Update(ctx, matchID, req.toPatch())
	if err != nil {
		h.logger.WarnContext(ctx, "update match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "match updated", append([]any{"match_id", matchID}, editorFields(ctx)...)...)
	writeSuccess(ctx, w, http.StatusOK, matchToDTO(item))
}

func (h *Handler) DeleteMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteMatch")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	if err := h.matchService.Delete(ctx, matchID); err != nil {
		h.logger.WarnContext(ctx, "delete match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "match deleted", append([]any{"match_id", matchID}, editorFields(ctx)...)...)
	writeSuccess(ctx, w, http.StatusOK, map[string]string{"message": "Match deleted successfully"})
}

func matchToDTO(item match.Match) matchDTO {
	return matchDTO{
		ID:            item.ID,
		Team1:         item.Team1,
		Team2:         item.Team2,
		Venue:         item.Venue,
		MatchDate:     item.MatchDate,
		Status:        string(item.Status),
		ScoreTeam1:    optionalString(item.ScoreTeam1),
		ScoreTeam2:    optionalString(item.ScoreTeam2),
		Winner:        optionalString(item.Winner),
		PlayerOfMatch: optionalString(item.PlayerOfMatch),
		CreatedAt:     item.CreatedAt,
		UpdatedAt:     item.UpdatedAt,
	}
}

func optionalString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
