package httpapi

import (
	"net"
	"net/http"
	"strings"
)

var (
	clientIPHeaders      = []string{"Fly-Client-IP", "X-Forwarded-For", "X-Real-IP"}
	clientCountryHeaders = []string{"Fly-Client-Country", "CF-IPCountry", "CloudFront-Viewer-Country"}
)

// requestClient is what a request log records about the caller and, for
// live-score lookups, the match it asked for.
type requestClient struct {
	IP      string
	Country string
	MatchID string
}

func describeClient(r *http.Request) requestClient {
	return requestClient{
		IP:      clientIP(r),
		Country: clientCountry(r),
		MatchID: liveScoreMatchID(r.URL.Path),
	}
}

func (c requestClient) logFields() []any {
	fields := []any{"client_ip", c.IP}
	if c.Country != "" {
		fields = append(fields, "country", c.Country)
	}
	if c.MatchID != "" {
		fields = append(fields, "match_id", c.MatchID)
	}
	return fields
}

func clientIP(r *http.Request) string {
	for _, header := range clientIPHeaders {
		if ip := parseIP(r.Header.Get(header)); ip != "" {
			return ip
		}
	}
	if ip := forwardedFor(r.Header.Get("Forwarded")); ip != "" {
		return ip
	}
	return parseIP(r.RemoteAddr)
}

// forwardedFor reads the first for= element of an RFC 7239 Forwarded header.
func forwardedFor(raw string) string {
	first, _, _ := strings.Cut(raw, ",")
	for _, pair := range strings.Split(first, ";") {
		key, value, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok || !strings.EqualFold(key, "for") {
			continue
		}
		value = strings.Trim(value, `"`)
		value = strings.TrimPrefix(value, "[")
		if idx := strings.Index(value, "]"); idx >= 0 {
			value = value[:idx]
		}
		return parseIP(value)
	}
	return ""
}

func parseIP(raw string) string {
	value, _, _ := strings.Cut(raw, ",")
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	if host, _, err := net.SplitHostPort(value); err == nil {
		value = host
	}
	if parsed := net.ParseIP(value); parsed != nil {
		return parsed.String()
	}
	return ""
}

func clientCountry(r *http.Request) string {
	for _, header := range clientCountryHeaders {
		code := strings.ToUpper(strings.TrimSpace(r.Header.Get(header)))
		if len(code) == 2 && code[0] >= 'A' && code[0] <= 'Z' && code[1] >= 'A' && code[1] <= 'Z' && code != "XX" {
			return code
		}
	}
	return ""
}

// liveScoreMatchID pulls {matchId} out of /live-score/{matchId} and
// /api/live-score/{matchId}.
func liveScoreMatchID(path string) string {
	path = strings.TrimPrefix(path, "/api")
	id, ok := strings.CutPrefix(path, "/live-score/")
	if !ok || strings.Contains(id, "/") {
		return ""
	}
	return id
}
