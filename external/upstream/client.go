// Package upstream holds the HTTP plumbing shared by the live score
// providers: timed GET requests, status classification, decoding and
// envelope probing.
package upstream

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/time/rate"

	"github.com/riskibarqy/cricket-live/internal/domain/livescore"
	"github.com/riskibarqy/cricket-live/internal/platform/logging"
	"github.com/riskibarqy/cricket-live/internal/platform/metrics"
	"github.com/riskibarqy/cricket-live/internal/platform/resilience"
)

const (
	DefaultTimeout = 10 * time.Second
	maxBodyBytes   = 6 << 20
)

var (
	// ErrNotFound is a provider 404: no data, not a failure.
	ErrNotFound = crerr.Wrap(livescore.ErrMatchNotFound, "upstream resource")
	// ErrTransport covers network errors, timeouts and non-2xx statuses.
	ErrTransport = crerr.New("upstream transport failure")
	// ErrUnexpectedShape is a decodable payload whose top level is not what
	// the endpoint documents. It carries no usable score.
	ErrUnexpectedShape = crerr.Wrap(livescore.ErrNoScoreData, "unexpected payload shape")
)

type Config struct {
	HTTPClient     *http.Client
	Source         string
	Timeout        time.Duration
	CircuitBreaker resilience.CircuitBreakerConfig
	// RateLimit caps outbound requests per second; zero disables it.
	RateLimit float64
	RateBurst int
	Logger    *logging.Logger
	Metrics   *metrics.SourceMetrics
	// SecretParams are query parameter names masked in logs.
	SecretParams []string
}

type Client struct {
	httpClient   *http.Client
	source       string
	timeout      time.Duration
	breaker      *resilience.CircuitBreaker
	limiter      *rate.Limiter
	logger       *logging.Logger
	metrics      *metrics.SourceMetrics
	secretParams []string
}

func NewClient(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	return &Client{
		httpClient:   httpClient,
		source:       cfg.Source,
		timeout:      timeout,
		breaker:      resilience.NewCircuitBreakerFromConfig(cfg.CircuitBreaker),
		limiter:      newLimiter(cfg.RateLimit, cfg.RateBurst),
		logger:       logger.With("source", cfg.Source),
		metrics:      cfg.Metrics,
		secretParams: append([]string(nil), cfg.SecretParams...),
	}
}

func (c *Client) Source() string {
	return c.source
}

func (c *Client) Logger() *logging.Logger {
	return c.logger
}

// GetJSON fetches rawURL and decodes the body into a generic document.
func (c *Client) GetJSON(ctx context.Context, rawURL string, query url.Values, header http.Header) (any, error) {
	raw, err := c.GetRaw(ctx, rawURL, query, header)
	if err != nil {
		return nil, err
	}

	var doc any
	if err := sonic.Unmarshal(raw, &doc); err != nil {
		c.logger.WarnContext(ctx, "decode provider payload failed",
			"url", c.redact(rawURL, query),
			"error", err,
		)
		return nil, crerr.Wrapf(ErrTransport, "decode provider payload: %v", err)
	}
	return doc, nil
}

// GetObject is GetJSON for endpoints that answer with a JSON object.
// Any other top-level shape is reported as ErrUnexpectedShape.
func (c *Client) GetObject(ctx context.Context, rawURL string, query url.Values, header http.Header) (map[string]any, error) {
	doc, err := c.GetJSON(ctx, rawURL, query, header)
	if err != nil {
		return nil, err
	}
	obj, ok := doc.(map[string]any)
	if !ok {
		c.logger.DebugContext(ctx, "provider payload is not an object", "type", fmt.Sprintf("%T", doc))
		return nil, fmt.Errorf("%w: payload is %T, not an object", ErrUnexpectedShape, doc)
	}
	return obj, nil
}

// GetRaw performs one timed GET. The call is bounded by the client timeout
// and by ctx, so a disconnecting caller aborts it.
func (c *Client) GetRaw(ctx context.Context, rawURL string, query url.Values, header http.Header) ([]byte, error) {
	started := time.Now()

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			c.logger.WarnContext(ctx, "provider rate limit wait aborted", "error", err)
			c.metrics.ObserveCall(c.source, metrics.OutcomeError, time.Since(started))
			return nil, fmt.Errorf("%w: rate limit: %v", ErrTransport, err)
		}
	}

	var raw []byte
	err := c.breaker.Execute(func() error {
		var reqErr error
		raw, reqErr = c.execute(ctx, rawURL, query, header)
		return reqErr
	}, isTransportFailure)

	switch {
	case err == nil:
		c.metrics.ObserveCall(c.source, metrics.OutcomeOK, time.Since(started))
	case stderrors.Is(err, ErrNotFound):
		c.metrics.ObserveCall(c.source, metrics.OutcomeNotFound, time.Since(started))
	case stderrors.Is(err, resilience.ErrCircuitOpen):
		c.logger.WarnContext(ctx, "provider circuit breaker rejected request", "state", c.breaker.State())
		err = fmt.Errorf("%w: %w", ErrTransport, err)
		c.metrics.ObserveCall(c.source, metrics.OutcomeError, time.Since(started))
	default:
		c.metrics.ObserveCall(c.source, metrics.OutcomeError, time.Since(started))
	}
	return raw, err
}

func (c *Client) execute(ctx context.Context, rawURL string, query url.Values, header http.Header) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	fullURL := rawURL
	if encoded := query.Encode(); encoded != "" {
		sep := "?"
		if strings.Contains(rawURL, "?") {
			sep = "&"
		}
		fullURL += sep + encoded
	}
	logURL := c.redact(rawURL, query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	for key, values := range header {
		req.Header.Del(key)
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		err = fmt.Errorf("%w: send request: %s", ErrTransport, c.sanitize(err.Error(), query))
		c.logger.WarnContext(ctx, "provider request failed", "url", logURL, "error", err)
		return nil, err
	}
	defer resp.Body.Close()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if _, err := buf.ReadFrom(io.LimitReader(resp.Body, maxBodyBytes)); err != nil {
		err = fmt.Errorf("%w: read response body: %v", ErrTransport, err)
		c.logger.WarnContext(ctx, "provider request failed", "url", logURL, "error", err)
		return nil, err
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		c.logger.DebugContext(ctx, "provider returned not found", "url", logURL)
		return nil, fmt.Errorf("%w: %s", ErrNotFound, logURL)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		err := fmt.Errorf("%w: provider status=%d body=%s", ErrTransport, resp.StatusCode, abbreviateBody(buf.B))
		c.logger.WarnContext(ctx, "provider request failed",
			"url", logURL,
			"status_code", resp.StatusCode,
			"error", err,
		)
		return nil, err
	}

	return append([]byte(nil), buf.B...), nil
}

func (c *Client) redact(rawURL string, query url.Values) string {
	masked := url.Values{}
	for key, values := range query {
		masked[key] = values
	}
	for _, key := range c.secretParams {
		if masked.Has(key) {
			masked.Set(key, "REDACTED")
		}
	}
	if encoded := masked.Encode(); encoded != "" {
		return rawURL + "?" + encoded
	}
	return rawURL
}

func (c *Client) sanitize(value string, query url.Values) string {
	for _, key := range c.secretParams {
		if secret := query.Get(key); secret != "" {
			value = strings.ReplaceAll(value, secret, "REDACTED")
		}
	}
	return value
}

func newLimiter(perSecond float64, burst int) *rate.Limiter {
	if perSecond <= 0 {
		return nil
	}
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(perSecond), burst)
}

func isTransportFailure(err error) bool {
	return stderrors.Is(err, ErrTransport)
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}

// JoinURL appends path to a base URL, tolerating stray slashes on either side.
func JoinURL(base, path string) string {
	base = strings.TrimRight(strings.TrimSpace(base), "/")
	if path == "" {
		return base
	}
	return base + "/" + strings.TrimLeft(path, "/")
}
