// Package cricapi reads the CricAPI (cricketdata.org) v1 endpoints.
package cricapi

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/riskibarqy/cricket-live/external/upstream"
	"github.com/riskibarqy/cricket-live/internal/domain/livescore"
	"github.com/riskibarqy/cricket-live/internal/platform/payload"
)

const (
	SourceName     = "cricapi"
	DefaultBaseURL = "https://api.cricapi.com/v1"

	apiKeyParam = "apikey"
	statusOK    = "success"
)

type ClientConfig struct {
	BaseURL  string
	APIKey   string
	Upstream upstream.Config
}

type Client struct {
	baseURL string
	apiKey  string
	http    *upstream.Client
}

func NewClient(cfg ClientConfig) *Client {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	transport := cfg.Upstream
	transport.Source = SourceName
	transport.SecretParams = append(transport.SecretParams, apiKeyParam)

	return &Client{
		baseURL: baseURL,
		apiKey:  strings.TrimSpace(cfg.APIKey),
		http:    upstream.NewClient(transport),
	}
}

func (c *Client) Name() string {
	return SourceName
}

// Available reports whether an API key is configured; the base URL has a default.
func (c *Client) Available() bool {
	return c.apiKey != ""
}

func (c *Client) ListLive(ctx context.Context) []livescore.LiveMatch {
	doc, err := c.http.GetJSON(ctx, upstream.JoinURL(c.baseURL, "currentMatches"), c.query(url.Values{"offset": {"0"}}), nil)
	if err != nil {
		return []livescore.LiveMatch{}
	}

	if successful(doc) {
		if items := payload.Slice(doc, "data"); items != nil {
			return upstream.MapEntries(items, mapEntry)
		}
	}
	items, _ := upstream.ExtractMatches(doc, upstream.GenericStrategies)
	return upstream.MapEntries(items, mapEntry)
}

func (c *Client) FetchScore(ctx context.Context, matchID string) (livescore.RawScore, error) {
	return upstream.FetchPair(ctx,
		func(ctx context.Context) (map[string]any, error) {
			return c.getMatchDoc(ctx, "match_info", matchID)
		},
		func(ctx context.Context) (map[string]any, error) {
			return c.getMatchDoc(ctx, "match_scorecard", matchID)
		},
	)
}

// getMatchDoc unwraps the {status, data} envelope. A reported status other
// than success means the provider has nothing for this match.
func (c *Client) getMatchDoc(ctx context.Context, path, matchID string) (map[string]any, error) {
	doc, err := c.http.GetObject(ctx, upstream.JoinURL(c.baseURL, path), c.query(url.Values{"id": {matchID}}), nil)
	if err != nil {
		return nil, err
	}

	status := livescore.CleanAny(doc["status"])
	switch {
	case status == "":
		return doc, nil
	case !strings.EqualFold(status, statusOK):
		c.http.Logger().DebugContext(ctx, "provider reported no data", "path", path, "status", status)
		return nil, fmt.Errorf("%w: %s status=%s", livescore.ErrNoScoreData, path, status)
	}

	if data := payload.Map(doc, "data"); data != nil {
		return data, nil
	}
	return doc, nil
}

func (c *Client) query(values url.Values) url.Values {
	values.Set(apiKeyParam, c.apiKey)
	return values
}

func successful(doc any) bool {
	obj, ok := doc.(map[string]any)
	return ok && strings.EqualFold(livescore.CleanAny(obj["status"]), statusOK)
}

func mapEntry(entry map[string]any) (livescore.LiveMatch, bool) {
	id := upstream.EntryID(entry)
	if id == "" || !isLive(entry) {
		return livescore.LiveMatch{}, false
	}
	return livescore.LiveMatch{ID: id, Title: title(entry, id)}, true
}

func title(entry map[string]any, id string) string {
	if name := livescore.CleanAny(entry["name"]); name != "" {
		return name
	}
	if teams := payload.Slice(entry, "teams"); len(teams) >= 2 {
		if versus := livescore.VersusTitle(livescore.CleanAny(teams[0]), livescore.CleanAny(teams[1])); versus != "" {
			return versus
		}
	}
	return "Match " + id
}

func isLive(entry map[string]any) bool {
	started, hasStarted := payload.Bool(entry, "matchStarted")
	ended, hasEnded := payload.Bool(entry, "matchEnded")
	if hasStarted && hasEnded {
		return started && !ended
	}
	return livescore.IsLikelyLive(livescore.CleanAny(entry["status"]))
}
