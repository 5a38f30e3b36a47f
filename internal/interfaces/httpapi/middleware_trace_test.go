package httpapi

import "testing"

func TestShouldTraceRequest(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{path: "/live-matches", want: true},
		{path: "/api/live-matches", want: true},
		{path: "/live-score/35612", want: true},
		{path: "/api/matches", want: true},
		{path: "/docs", want: true},
		{path: "/healthz", want: false},
		{path: " /HEALTHZ ", want: false},
		{path: "/readyz", want: false},
		{path: "/metrics", want: false},
	}

	for _, tt := range tests {
		if got := shouldTraceRequest(tt.path); got != tt.want {
			t.Fatalf("shouldTraceRequest(%q)=%v want=%v", tt.path, got, tt.want)
		}
	}
}
