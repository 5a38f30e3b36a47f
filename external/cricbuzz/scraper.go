// Package cricbuzz scrapes the public Cricbuzz live scores page as the last
// resort for the live match list.
package cricbuzz

import (
	"bytes"
	"context"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/riskibarqy/cricket-live/external/upstream"
	"github.com/riskibarqy/cricket-live/internal/domain/livescore"
)

const (
	SourceName     = "scrape"
	DefaultLiveURL = "https://www.cricbuzz.com/cricket-match/live-scores"

	scoreAnchorSelector = `a[href*="/live-cricket-scores/"]`
	scorePathSegment    = "live-cricket-scores"
	userAgent           = "Mozilla/5.0 (compatible; cricket-live/1.0)"
)

var excludedTitleTerms = []string{"preview", "no result", "abandoned"}

type ScraperConfig struct {
	Enabled  bool
	LiveURL  string
	Upstream upstream.Config
}

type Scraper struct {
	enabled bool
	liveURL string
	http    *upstream.Client
}

func NewScraper(cfg ScraperConfig) *Scraper {
	liveURL := strings.TrimSpace(cfg.LiveURL)
	if liveURL == "" {
		liveURL = DefaultLiveURL
	}

	transport := cfg.Upstream
	transport.Source = SourceName

	return &Scraper{
		enabled: cfg.Enabled,
		liveURL: liveURL,
		http:    upstream.NewClient(transport),
	}
}

func (s *Scraper) Name() string {
	return SourceName
}

func (s *Scraper) Available() bool {
	return s.enabled
}

// ListLive never fails; fetch and parse errors yield an empty list.
func (s *Scraper) ListLive(ctx context.Context) []livescore.LiveMatch {
	body, err := s.http.GetRaw(ctx, s.liveURL, nil, http.Header{
		"Accept":     {"text/html,application/xhtml+xml"},
		"User-Agent": {userAgent},
	})
	if err != nil {
		return []livescore.LiveMatch{}
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		s.http.Logger().WarnContext(ctx, "parse live scores page failed", "error", err)
		return []livescore.LiveMatch{}
	}
	return ParseLiveMatches(doc)
}

// ParseLiveMatches collects score-page anchors in document order. An id is
// taken from the first anchor that passes the filter.
func ParseLiveMatches(doc *goquery.Document) []livescore.LiveMatch {
	out := make([]livescore.LiveMatch, 0)
	seen := make(map[string]struct{})

	doc.Find(scoreAnchorSelector).Each(func(_ int, anchor *goquery.Selection) {
		href, _ := anchor.Attr("href")
		title := livescore.Clean(strings.Join(strings.Fields(anchor.Text()), " "))
		if href == "" || title == "" {
			return
		}

		id := matchIDFromHref(href)
		if id == "" {
			return
		}
		if _, ok := seen[id]; ok {
			return
		}
		if !includeTitle(title) {
			return
		}

		seen[id] = struct{}{}
		out = append(out, livescore.LiveMatch{ID: id, Title: title})
	})
	return out
}

func matchIDFromHref(href string) string {
	path, _, _ := strings.Cut(href, "?")
	segments := make([]string, 0, 8)
	for _, segment := range strings.Split(path, "/") {
		if segment != "" {
			segments = append(segments, segment)
		}
	}
	for i, segment := range segments {
		if segment == scorePathSegment && i+1 < len(segments) {
			return segments[i+1]
		}
	}
	return ""
}

func includeTitle(title string) bool {
	lower := strings.ToLower(title)
	if !strings.Contains(lower, "vs") {
		return false
	}
	for _, term := range excludedTitleTerms {
		if strings.Contains(lower, term) {
			return false
		}
	}
	return livescore.IsLikelyLive(title)
}
