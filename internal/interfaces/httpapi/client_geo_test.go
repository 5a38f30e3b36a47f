package httpapi

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/riskibarqy/cricket-live/internal/platform/logging"
)

func TestDescribeClient(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		target  string
		headers map[string]string
		remote  string
		want    requestClient
	}{
		{
			name:    "forwarded chain takes first hop",
			target:  "/api/live-score/35612",
			headers: map[string]string{"X-Forwarded-For": "203.0.113.9, 10.0.0.1", "CF-IPCountry": "in"},
			want:    requestClient{IP: "203.0.113.9", Country: "IN", MatchID: "35612"},
		},
		{
			name:    "rfc 7239 header",
			target:  "/live-score/a1",
			headers: map[string]string{"Forwarded": `for="[2001:db8::1]:4711";proto=https`},
			want:    requestClient{IP: "2001:db8::1", MatchID: "a1"},
		},
		{
			name:   "remote addr fallback on list route",
			target: "/live-matches",
			remote: "198.51.100.4:52100",
			want:   requestClient{IP: "198.51.100.4"},
		},
		{
			name:    "unknown country dropped",
			target:  "/live-score/",
			headers: map[string]string{"Fly-Client-IP": "not-an-ip", "X-Real-IP": "192.0.2.7", "CF-IPCountry": "XX"},
			want:    requestClient{IP: "192.0.2.7"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.remote != "" {
				req.RemoteAddr = tt.remote
			}
			for key, value := range tt.headers {
				req.Header.Set(key, value)
			}
			if got := describeClient(req); got != tt.want {
				t.Fatalf("describeClient()=%+v want=%+v", got, tt.want)
			}
		})
	}
}

func TestRequestLogging_RecordsLiveScoreMatch(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.New(logging.LevelInfo, &buf)
	handler := RequestLogging(logger, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/live-score/98765?title=IND+vs+AUS", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.9")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	for _, want := range []string{`"match_id":"98765"`, `"client_ip":"203.0.113.9"`, `"status":404`} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %s in log line %s", want, out)
		}
	}
	if strings.Contains(out, `"country"`) {
		t.Fatalf("expected no country field without a country header: %s", out)
	}
}
