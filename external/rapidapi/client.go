// Package rapidapi reads the Cricbuzz feed published on RapidAPI.
package rapidapi

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/riskibarqy/cricket-live/external/upstream"
	"github.com/riskibarqy/cricket-live/internal/domain/livescore"
	"github.com/riskibarqy/cricket-live/internal/platform/payload"
)

const (
	SourceName = "rapidapi"

	liveMatchesPath = "/matches/v1/live"
	matchInfoPath   = "/matches/get-info"
	scorecardPath   = "/matches/get-scorecard"
)

type ClientConfig struct {
	BaseURL  string
	APIKey   string
	Host     string
	Upstream upstream.Config
}

type Client struct {
	baseURL string
	apiKey  string
	host    string
	http    *upstream.Client
}

func NewClient(cfg ClientConfig) *Client {
	transport := cfg.Upstream
	transport.Source = SourceName

	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		apiKey:  strings.TrimSpace(cfg.APIKey),
		host:    strings.TrimSpace(cfg.Host),
		http:    upstream.NewClient(transport),
	}
}

func (c *Client) Name() string {
	return SourceName
}

// Available needs the base URL, key and host together.
func (c *Client) Available() bool {
	return c.baseURL != "" && c.apiKey != "" && c.host != ""
}

func (c *Client) ListLive(ctx context.Context) []livescore.LiveMatch {
	doc, err := c.http.GetJSON(ctx, upstream.JoinURL(c.baseURL, liveMatchesPath), nil, c.headers())
	if err != nil {
		return []livescore.LiveMatch{}
	}

	items, _ := upstream.ExtractMatches(doc, liveStrategies)
	return upstream.MapEntries(items, mapEntry)
}

func (c *Client) FetchScore(ctx context.Context, matchID string) (livescore.RawScore, error) {
	return upstream.FetchPair(ctx,
		func(ctx context.Context) (map[string]any, error) {
			return c.getByMatchID(ctx, matchInfoPath, matchID)
		},
		func(ctx context.Context) (map[string]any, error) {
			return c.getByMatchID(ctx, scorecardPath, matchID)
		},
	)
}

// getByMatchID retries a 404 once with the lower-case parameter spelling
// some API revisions expect.
func (c *Client) getByMatchID(ctx context.Context, path, matchID string) (map[string]any, error) {
	endpoint := upstream.JoinURL(c.baseURL, path)
	doc, err := c.http.GetObject(ctx, endpoint, url.Values{"matchId": {matchID}}, c.headers())
	if !errors.Is(err, upstream.ErrNotFound) {
		return doc, err
	}
	return c.http.GetObject(ctx, endpoint, url.Values{"matchid": {matchID}}, c.headers())
}

func (c *Client) headers() http.Header {
	return http.Header{
		"X-RapidAPI-Key":  {c.apiKey},
		"X-RapidAPI-Host": {c.host},
	}
}

var liveStrategies = append([]upstream.Strategy{
	{Name: "typeMatches", Extract: flattenTypeMatches},
}, upstream.GenericStrategies...)

// flattenTypeMatches walks typeMatches[].seriesMatches[].seriesAdWrapper.matches[].
func flattenTypeMatches(doc any) ([]any, bool) {
	groups := payload.Slice(doc, "typeMatches")
	if groups == nil {
		return nil, false
	}

	out := make([]any, 0)
	for _, group := range payload.Maps(groups) {
		for _, series := range payload.Maps(payload.Slice(group, "seriesMatches")) {
			out = append(out, payload.Slice(series, "seriesAdWrapper", "matches")...)
		}
	}
	return out, true
}

func mapEntry(entry map[string]any) (livescore.LiveMatch, bool) {
	info := payload.Map(entry, "matchInfo")
	if info == nil {
		info = entry
	}

	id := livescore.FirstClean(info["matchId"], info["id"])
	if id == "" {
		id = upstream.EntryID(info)
	}
	if id == "" {
		return livescore.LiveMatch{}, false
	}

	if !isLive(info) {
		return livescore.LiveMatch{}, false
	}

	title := livescore.VersusTitle(livescore.TeamName(info["team1"]), livescore.TeamName(info["team2"]))
	if title != "" {
		if desc := livescore.CleanAny(info["matchDesc"]); desc != "" {
			title += ", " + desc
		}
		return livescore.LiveMatch{ID: id, Title: title}, true
	}
	if generic, ok := upstream.GenericEntry(info); ok {
		return livescore.LiveMatch{ID: id, Title: generic.Title}, true
	}
	return livescore.LiveMatch{ID: id, Title: "Match " + id}, true
}

func isLive(info map[string]any) bool {
	if upstream.AnyLikelyLive(info, "state", "status") {
		return true
	}
	if livescore.FirstClean(info["state"], info["status"]) != "" {
		return false
	}
	_, ok := upstream.GenericEntry(info)
	return ok
}
