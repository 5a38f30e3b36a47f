package httpapi

import (
	"net/http"
	"slices"
	"sync"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

var (
	spanRecorderOnce sync.Once
	spanRecorder     *tracetest.SpanRecorder
)

// recordSpans installs one recording provider for the test binary; the
// global tracer delegates to the first provider it sees.
func recordSpans() *tracetest.SpanRecorder {
	spanRecorderOnce.Do(func() {
		spanRecorder = tracetest.NewSpanRecorder()
		otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(spanRecorder)))
	})
	return spanRecorder
}

func endedSpanNames(recorder *tracetest.SpanRecorder) []string {
	spans := recorder.Ended()
	names := make([]string, 0, len(spans))
	for _, span := range spans {
		names = append(names, span.Name())
	}
	return names
}

func TestShouldCreateHTTPAPISpan(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{name: "live list handler", in: "httpapi.Handler.ListLiveMatches", want: true},
		{name: "live score handler", in: "httpapi.Handler.GetLiveScore", want: true},
		{name: "match handler", in: "httpapi.Handler.CreateMatch", want: true},
		{name: "logging middleware", in: "httpapi.RequestLogging", want: false},
		{name: "cors middleware", in: "httpapi.CORS", want: false},
		{name: "panic recovery", in: "httpapi.recoverPanic", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shouldCreateHTTPAPISpan(tt.in); got != tt.want {
				t.Fatalf("shouldCreateHTTPAPISpan(%q)=%v want=%v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRouter_LiveScoreSpans(t *testing.T) {
	recorder := recordSpans()
	router := newTestRouter(t, testSources{}, nil)

	if rec := serve(router, http.MethodGet, "/api/live-score/45", ""); rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	if rec := serve(router, http.MethodGet, "/live-score/", ""); rec.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	if rec := serve(router, http.MethodGet, "/healthz", ""); rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}

	for _, span := range recorder.Ended() {
		if span.Name() != "httpapi.Handler.GetLiveScore" {
			continue
		}
		if !slices.Contains(span.Attributes(), attribute.String("match.id", "45")) {
			t.Fatalf("expected match.id attribute, got %v", span.Attributes())
		}
	}

	names := endedSpanNames(recorder)
	for _, want := range []string{
		"GET /api/live-score/45",
		"httpapi.Handler.GetLiveScore",
		"GET /live-score/",
		"httpapi.Handler.MissingMatchID",
	} {
		if !slices.Contains(names, want) {
			t.Fatalf("expected span %q, got %v", want, names)
		}
	}
	for _, unwanted := range []string{"httpapi.RequestLogging", "httpapi.CORS", "GET /healthz", "httpapi.Handler.Healthz"} {
		if slices.Contains(names, unwanted) {
			t.Fatalf("unexpected span %q in %v", unwanted, names)
		}
	}
}
