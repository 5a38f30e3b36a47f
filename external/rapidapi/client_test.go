package rapidapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/riskibarqy/cricket-live/external/upstream"
	"github.com/riskibarqy/cricket-live/internal/domain/livescore"
)

const liveListBody = `{
  "typeMatches": [
    {
      "matchType": "International",
      "seriesMatches": [
        {"seriesAdWrapper": {"seriesName": "Border-Gavaskar Trophy", "matches": [
          {"matchInfo": {"matchId": 35612, "matchDesc": "3rd Test", "state": "In Progress", "status": "Day 2: Stumps",
            "team1": {"teamName": "India"}, "team2": {"teamName": "Australia"}}},
          {"matchInfo": {"matchId": 35613, "matchDesc": "4th Test", "state": "Preview", "status": "Match starts at 10:00",
            "team1": {"teamName": "India"}, "team2": {"teamName": "Australia"}}}
        ]}},
        {"adDetail": {"name": "ad"}}
      ]
    },
    {
      "matchType": "Domestic",
      "seriesMatches": [
        {"seriesAdWrapper": {"matches": [
          {"matchInfo": {"matchId": 4100, "state": "Complete", "status": "Mumbai won by 5 wkts",
            "team1": {"teamName": "Mumbai"}, "team2": {"teamName": "Delhi"}}}
        ]}}
      ]
    }
  ]
}`

func newTestClient(srv *httptest.Server) *Client {
	return NewClient(ClientConfig{
		BaseURL:  srv.URL,
		APIKey:   "rapid-key",
		Host:     "cricbuzz-cricket.p.rapidapi.com",
		Upstream: upstream.Config{HTTPClient: srv.Client()},
	})
}

func TestClientListLive_FlattensTypeMatches(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != liveMatchesPath {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.Header.Get("X-RapidAPI-Key") != "rapid-key" || r.Header.Get("X-RapidAPI-Host") != "cricbuzz-cricket.p.rapidapi.com" {
			t.Errorf("missing rapidapi headers: %v", r.Header)
		}
		_, _ = w.Write([]byte(liveListBody))
	}))
	defer srv.Close()

	got := newTestClient(srv).ListLive(context.Background())
	want := []livescore.LiveMatch{{ID: "35612", Title: "India vs Australia, 3rd Test"}}
	if len(got) != len(want) || got[0] != want[0] {
		t.Fatalf("unexpected live matches: %+v", got)
	}
}

func TestClientListLive_GenericEnvelopeFallback(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"matches":[{"id":"m1","name":"Perth vs Sydney","isLive":true}]}`))
	}))
	defer srv.Close()

	got := newTestClient(srv).ListLive(context.Background())
	if len(got) != 1 || got[0].ID != "m1" || got[0].Title != "Perth vs Sydney" {
		t.Fatalf("unexpected live matches: %+v", got)
	}
}

func TestClientFetchScore_RetriesWithLowerCaseParam(t *testing.T) {
	t.Parallel()

	var upperCalls, lowerCalls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		switch {
		case query.Get("matchId") != "":
			upperCalls.Add(1)
			if r.URL.Path == matchInfoPath {
				_, _ = w.Write([]byte(`{"matchHeader":{"team1":{"name":"India"},"team2":{"name":"Australia"}}}`))
				return
			}
			w.WriteHeader(http.StatusNotFound)
		case query.Get("matchid") != "":
			lowerCalls.Add(1)
			_, _ = w.Write([]byte(`{"scoreCard":[{"batTeamDetails":{"batTeamName":"IND"},"scoreDetails":{"runs":120,"wickets":3,"overs":15.2}}]}`))
		default:
			t.Errorf("request without match id: %s", r.URL.String())
		}
	}))
	defer srv.Close()

	raw, err := newTestClient(srv).FetchScore(context.Background(), "35612")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if raw.Info == nil || raw.Score == nil {
		t.Fatalf("expected both payloads, got %+v", raw)
	}
	if upperCalls.Load() != 2 || lowerCalls.Load() != 1 {
		t.Fatalf("unexpected call counts upper=%d lower=%d", upperCalls.Load(), lowerCalls.Load())
	}

	detail := livescore.Normalize("35612", raw.Info, raw.Score, "")
	if detail.Title != "India vs Australia" || detail.Score == nil || *detail.Score != "IND 120/3 (15.2)" {
		t.Fatalf("unexpected normalised detail: %+v", detail)
	}
}

func TestClientFetchScore_NotFoundEverywhere(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := newTestClient(srv).FetchScore(context.Background(), "1")
	if !upstream.IsNoData(err) {
		t.Fatalf("expected no-data error, got %v", err)
	}
	if calls.Load() != 4 {
		t.Fatalf("expected one retry per endpoint, got %d calls", calls.Load())
	}
}

func TestClientFetchScore_ServerErrorIsNotRetried(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestClient(srv).FetchScore(context.Background(), "1")
	if !errors.Is(err, upstream.ErrTransport) {
		t.Fatalf("expected transport error, got %v", err)
	}
	if calls.Load() != 2 {
		t.Fatalf("expected no retries on 500, got %d calls", calls.Load())
	}
}

func TestClientAvailable_RequiresAllSettings(t *testing.T) {
	t.Parallel()

	tests := []ClientConfig{
		{APIKey: "k", Host: "h"},
		{BaseURL: "https://x", Host: "h"},
		{BaseURL: "https://x", APIKey: "k"},
	}
	for _, cfg := range tests {
		if NewClient(cfg).Available() {
			t.Fatalf("expected %+v to be unavailable", cfg)
		}
	}
	if !NewClient(ClientConfig{BaseURL: "https://x", APIKey: "k", Host: "h"}).Available() {
		t.Fatalf("expected complete config to be available")
	}
}
