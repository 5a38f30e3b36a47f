package upstream

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/sourcegraph/conc"

	"github.com/riskibarqy/cricket-live/internal/domain/livescore"
)

// ObjectFetch loads one JSON object for a match.
type ObjectFetch func(ctx context.Context) (map[string]any, error)

// FetchPair loads match info and scorecard concurrently. Either side may
// fail on its own; the pair only fails when neither produced an object.
// A hard failure on either side outranks "no data" in the returned error.
func FetchPair(ctx context.Context, info, scorecard ObjectFetch) (livescore.RawScore, error) {
	var (
		raw               livescore.RawScore
		infoErr, scoreErr error
		wg                conc.WaitGroup
	)
	wg.Go(func() {
		raw.Info, infoErr = info(ctx)
	})
	wg.Go(func() {
		raw.Score, scoreErr = scorecard(ctx)
	})
	wg.Wait()

	if infoErr != nil {
		raw.Info = nil
	}
	if scoreErr != nil {
		raw.Score = nil
	}
	if !raw.Empty() {
		return raw, nil
	}

	for _, err := range []error{infoErr, scoreErr} {
		if err != nil && !IsNoData(err) {
			return livescore.RawScore{}, err
		}
	}
	if infoErr == nil && scoreErr == nil {
		return livescore.RawScore{}, livescore.ErrNoScoreData
	}
	return livescore.RawScore{}, fmt.Errorf("%w: info: %v; scorecard: %v", livescore.ErrNoScoreData, infoErr, scoreErr)
}

// IsNoData reports the quiet outcomes: a provider 404 or an empty payload.
func IsNoData(err error) bool {
	return stderrors.Is(err, ErrNotFound) || livescore.IsNoData(err)
}
