package httpapi

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/cricket-live/internal/platform/logging"
	"github.com/riskibarqy/cricket-live/internal/usecase"
)

type Handler struct {
	liveScoreService *usecase.LiveScoreService
	matchService     *usecase.MatchService
	logger           *logging.Logger
	validator        *validator.Validate
}

func NewHandler(
	liveScoreService *usecase.LiveScoreService,
	matchService *usecase.MatchService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		liveScoreService: liveScoreService,
		matchService:     matchService,
		logger:           logger,
		validator:        validator.New(),
	}
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}
