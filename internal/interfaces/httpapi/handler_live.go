package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/cricket-live/internal/usecase"
)

// ListLiveMatches answers with a bare JSON array; it never fails.
func (h *Handler) ListLiveMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLiveMatches")
	defer span.End()

	writeJSON(ctx, w, http.StatusOK, h.liveScoreService.ListLiveMatches(ctx))
}

func (h *Handler) GetLiveScore(w http.ResponseWriter, r *http.Request) {
	matchID := strings.TrimSpace(r.PathValue("matchId"))
	title := r.URL.Query().Get("title")

	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLiveScore",
		attribute.String("match.id", matchID),
		attribute.Bool("match.title_hint", title != ""),
	)
	defer span.End()

	detail, err := h.liveScoreService.GetScore(ctx, matchID, title)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNotFound), errors.Is(err, usecase.ErrInvalidInput):
			h.logger.DebugContext(ctx, "live score unavailable", "match_id", matchID, "error", err)
		default:
			h.logger.WarnContext(ctx, "get live score failed", "match_id", matchID, "error", err)
		}
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, detail)
}

func (h *Handler) MissingMatchID(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.MissingMatchID")
	defer span.End()

	writeError(ctx, w, fmt.Errorf("%w: match id is required", usecase.ErrInvalidInput))
}
