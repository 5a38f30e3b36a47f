package usecase

import (
	"context"

	"github.com/riskibarqy/cricket-live/internal/domain/livescore"
)

// LiveMatchSource lists matches in progress. ListLive reports failures as an
// empty slice.
type LiveMatchSource interface {
	Name() string
	Available() bool
	ListLive(ctx context.Context) []livescore.LiveMatch
}

// ScoreSource fetches the raw score payloads for one match.
type ScoreSource interface {
	Name() string
	Available() bool
	FetchScore(ctx context.Context, matchID string) (livescore.RawScore, error)
}
