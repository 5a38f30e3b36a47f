// Package cricketapi reads a self-hosted cricket API exposing /matches and
// /score endpoints.
package cricketapi

import (
	"context"
	"net/url"
	"strings"

	"github.com/riskibarqy/cricket-live/external/upstream"
	"github.com/riskibarqy/cricket-live/internal/domain/livescore"
)

const SourceName = "generic"

type ClientConfig struct {
	BaseURL  string
	Upstream upstream.Config
}

type Client struct {
	baseURL string
	http    *upstream.Client
}

func NewClient(cfg ClientConfig) *Client {
	transport := cfg.Upstream
	transport.Source = SourceName

	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		http:    upstream.NewClient(transport),
	}
}

func (c *Client) Name() string {
	return SourceName
}

func (c *Client) Available() bool {
	return c.baseURL != ""
}

func (c *Client) ListLive(ctx context.Context) []livescore.LiveMatch {
	doc, err := c.http.GetJSON(ctx, upstream.JoinURL(c.baseURL, "matches"), nil, nil)
	if err != nil {
		return []livescore.LiveMatch{}
	}

	items, strategy := upstream.ExtractMatches(doc, upstream.GenericStrategies)
	if strategy == "" {
		c.http.Logger().DebugContext(ctx, "no match array in live list payload")
	}
	return upstream.MapEntries(items, upstream.GenericEntry)
}

// FetchScore returns the /score payload as the score side of the raw pair.
func (c *Client) FetchScore(ctx context.Context, matchID string) (livescore.RawScore, error) {
	doc, err := c.http.GetObject(ctx, upstream.JoinURL(c.baseURL, "score"), url.Values{"id": {matchID}}, nil)
	if err != nil {
		return livescore.RawScore{}, err
	}
	if !livescore.HasData(doc) {
		return livescore.RawScore{}, livescore.ErrNoScoreData
	}
	return livescore.RawScore{Score: doc}, nil
}
