package usecase

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/cricket-live/internal/domain/livescore"
	"github.com/riskibarqy/cricket-live/internal/platform/logging"
	"github.com/riskibarqy/cricket-live/internal/platform/metrics"
)

const (
	operationLiveMatches = "live_matches"
	operationLiveScore   = "live_score"

	scoreSourcesHint = "set CRICAPI_KEY, RAPIDAPI_BASE_URL/RAPIDAPI_KEY/RAPIDAPI_HOST or CRICKET_API_SERVER"
)

// LiveScoreService walks the configured providers in priority order and
// returns the first usable answer.
type LiveScoreService struct {
	listSources  []LiveMatchSource
	scoreSources []ScoreSource
	logger       *logging.Logger
	metrics      *metrics.SourceMetrics
}

func NewLiveScoreService(
	listSources []LiveMatchSource,
	scoreSources []ScoreSource,
	logger *logging.Logger,
	sourceMetrics *metrics.SourceMetrics,
) *LiveScoreService {
	if logger == nil {
		logger = logging.Default()
	}
	return &LiveScoreService{
		listSources:  listSources,
		scoreSources: scoreSources,
		logger:       logger,
		metrics:      sourceMetrics,
	}
}

// ListLiveMatches returns the first non-empty list. It never fails.
func (s *LiveScoreService) ListLiveMatches(ctx context.Context) []livescore.LiveMatch {
	ctx, span := startUsecaseSpan(ctx, "usecase.LiveScoreService.ListLiveMatches")
	defer span.End()

	for _, source := range s.listSources {
		if !source.Available() {
			continue
		}
		matches := source.ListLive(ctx)
		if len(matches) == 0 {
			s.logger.DebugContext(ctx, "live match source returned nothing", "source", source.Name())
			continue
		}

		span.SetAttributes(attribute.String("live.source", source.Name()), attribute.Int("live.count", len(matches)))
		s.metrics.ObserveSelection(operationLiveMatches, source.Name())
		return matches
	}

	s.metrics.ObserveSelection(operationLiveMatches, "")
	return []livescore.LiveMatch{}
}

// GetScore returns the normalised score for matchID. fallbackTitle is used
// when no provider payload names the match.
func (s *LiveScoreService) GetScore(ctx context.Context, matchID, fallbackTitle string) (_ livescore.ScoreDetail, err error) {
	matchID = strings.TrimSpace(matchID)
	ctx, span := startUsecaseSpan(ctx, "usecase.LiveScoreService.GetScore", attribute.String("match.id", matchID))
	defer func() {
		recordOutcome(span, err)
		span.End()
	}()

	if matchID == "" {
		return livescore.ScoreDetail{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	var (
		attempted       int
		transportFailed bool
	)
	for _, source := range s.scoreSources {
		if !source.Available() {
			continue
		}
		attempted++

		raw, fetchErr := source.FetchScore(ctx, matchID)
		if fetchErr != nil {
			if !livescore.IsNoData(fetchErr) {
				transportFailed = true
				s.logger.WarnContext(ctx, "score source failed",
					"source", source.Name(),
					"match_id", matchID,
					"error", fetchErr,
				)
			}
			continue
		}
		if raw.Empty() {
			continue
		}

		span.SetAttributes(attribute.String("live.source", source.Name()))
		s.metrics.ObserveSelection(operationLiveScore, source.Name())
		return livescore.Normalize(matchID, raw.Info, raw.Score, fallbackTitle), nil
	}

	s.metrics.ObserveSelection(operationLiveScore, "")
	switch {
	case attempted == 0:
		return livescore.ScoreDetail{}, fmt.Errorf("%w: no live score provider configured (%s)", ErrDependencyUnavailable, scoreSourcesHint)
	case transportFailed:
		return livescore.ScoreDetail{}, fmt.Errorf("%w: unable to fetch live score for match=%s", ErrUpstream, matchID)
	default:
		return livescore.ScoreDetail{}, fmt.Errorf("%w: live score not found for match=%s", ErrNotFound, matchID)
	}
}
