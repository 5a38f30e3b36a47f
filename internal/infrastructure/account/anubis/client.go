package anubis

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	jsoniter "github.com/json-iterator/go"
	"github.com/riskibarqy/cricket-live/internal/domain/user"
	"github.com/riskibarqy/cricket-live/internal/platform/logging"
	"github.com/riskibarqy/cricket-live/internal/platform/resilience"
	"github.com/riskibarqy/cricket-live/internal/usecase"
)

var errAnubisTransient = crerr.New("anubis transient failure")

const defaultTimeout = 5 * time.Second

type ClientConfig struct {
	HTTPClient      *http.Client
	BaseURL         string
	IntrospectPath  string
	AdminKey        string
	Timeout         time.Duration
	CacheTTL        time.Duration
	CacheMaxEntries int
	CircuitBreaker  resilience.CircuitBreakerConfig
	Logger          *logging.Logger
}

// Client verifies bearer tokens against the account service introspection
// endpoint.
type Client struct {
	httpClient    *http.Client
	introspectURL string
	adminKey      string
	timeout       time.Duration
	cache         *principalCache
	breaker       *resilience.CircuitBreaker
	logger        *logging.Logger
}

func NewClient(cfg ClientConfig) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		httpClient:    httpClient,
		introspectURL: buildURL(cfg.BaseURL, cfg.IntrospectPath),
		adminKey:      strings.TrimSpace(cfg.AdminKey),
		timeout:       timeout,
		cache:         newPrincipalCache(cfg.CacheTTL, cfg.CacheMaxEntries),
		breaker:       resilience.NewCircuitBreakerFromConfig(cfg.CircuitBreaker),
		logger:        logger.Named("anubis"),
	}
}

func (c *Client) VerifyAccessToken(ctx context.Context, token string) (user.Principal, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return user.Principal{}, fmt.Errorf("%w: token is required", usecase.ErrUnauthorized)
	}

	cacheKey := hashToken(token)
	if principal, ok := c.cache.Get(cacheKey); ok {
		return principal, nil
	}

	var principal user.Principal
	err := c.breaker.Execute(func() error {
		var callErr error
		principal, callErr = c.introspect(ctx, token)
		return callErr
	}, isCircuitFailure)
	if stderrors.Is(err, resilience.ErrCircuitOpen) {
		return user.Principal{}, fmt.Errorf("%w: account service circuit open", usecase.ErrDependencyUnavailable)
	}
	if err != nil {
		return user.Principal{}, err
	}

	c.cache.Set(cacheKey, principal)
	return principal, nil
}

func (c *Client) introspect(ctx context.Context, token string) (user.Principal, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	encoded, err := jsoniter.Marshal(introspectRequest{Token: token})
	if err != nil {
		return user.Principal{}, fmt.Errorf("marshal introspect request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.introspectURL, bytes.NewReader(encoded))
	if err != nil {
		return user.Principal{}, fmt.Errorf("create introspect request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.adminKey != "" {
		req.Header.Set("x-admin-key", c.adminKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WarnContext(ctx, "anubis introspection request failed", "error", err)
		return user.Principal{}, fmt.Errorf("%w: %w: %v", usecase.ErrDependencyUnavailable, errAnubisTransient, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return user.Principal{}, fmt.Errorf("%w: %w: read introspect response: %v", usecase.ErrDependencyUnavailable, errAnubisTransient, err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return user.Principal{}, fmt.Errorf("%w: introspection denied", usecase.ErrUnauthorized)
	case resp.StatusCode == http.StatusForbidden:
		c.logger.WarnContext(ctx, "anubis rejected admin key", "status_code", resp.StatusCode)
		return user.Principal{}, fmt.Errorf("%w: account service rejected credentials", usecase.ErrDependencyUnavailable)
	case resp.StatusCode >= http.StatusInternalServerError:
		c.logger.WarnContext(ctx, "anubis introspection server error", "status_code", resp.StatusCode)
		return user.Principal{}, fmt.Errorf("%w: %w: status %d", usecase.ErrDependencyUnavailable, errAnubisTransient, resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		c.logger.WarnContext(ctx, "anubis introspection non-200", "status_code", resp.StatusCode)
		return user.Principal{}, fmt.Errorf("%w: introspection failed with status %d", usecase.ErrDependencyUnavailable, resp.StatusCode)
	}

	var decoded introspectResponse
	if err := jsoniter.Unmarshal(body, &decoded); err != nil {
		return user.Principal{}, fmt.Errorf("unmarshal introspect response: %w", err)
	}
	if !decoded.Active {
		return user.Principal{}, fmt.Errorf("%w: inactive token", usecase.ErrUnauthorized)
	}
	if strings.TrimSpace(decoded.UserID) == "" {
		return user.Principal{}, fmt.Errorf("%w: introspect response has no user_id", usecase.ErrUnauthorized)
	}

	return user.Principal{
		UserID: decoded.UserID,
		Email:  decoded.Email,
	}, nil
}

type introspectRequest struct {
	Token string `json:"token"`
}

type introspectResponse struct {
	Active bool   `json:"active"`
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}
