package app

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/cricket-live/external/cricapi"
	"github.com/riskibarqy/cricket-live/external/cricbuzz"
	"github.com/riskibarqy/cricket-live/external/cricketapi"
	"github.com/riskibarqy/cricket-live/external/rapidapi"
	"github.com/riskibarqy/cricket-live/external/upstream"
	"github.com/riskibarqy/cricket-live/internal/config"
	"github.com/riskibarqy/cricket-live/internal/infrastructure/account/anubis"
	"github.com/riskibarqy/cricket-live/internal/interfaces/httpapi"
	"github.com/riskibarqy/cricket-live/internal/platform/logging"
	"github.com/riskibarqy/cricket-live/internal/platform/metrics"
	"github.com/riskibarqy/cricket-live/internal/platform/resilience"
	"github.com/riskibarqy/cricket-live/internal/usecase"
)

// NewHTTPServer wires sources, services and the router. The returned close
// func releases the match store and must be called after shutdown.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	registry := metrics.NewRegistry()
	sourceMetrics := metrics.NewSourceMetrics(registry)

	liveScoreSvc := newLiveScoreService(cfg, logger, sourceMetrics)

	matchRepo, closeStore, err := newMatchRepository(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	matchSvc := usecase.NewMatchService(matchRepo, nil)

	opts := httpapi.RouterOptions{
		SwaggerEnabled:     cfg.SwaggerEnabled,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	}
	if cfg.MetricsEnabled {
		opts.MetricsHandler = metrics.Handler(registry)
	}

	handler := httpapi.NewHandler(liveScoreSvc, matchSvc, logger)
	router := httpapi.NewRouter(handler, newTokenVerifier(cfg, logger), logger, opts)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return server, closeStore, nil
}

func newLiveScoreService(cfg config.Config, logger *logging.Logger, sourceMetrics *metrics.SourceMetrics) *usecase.LiveScoreService {
	transport := upstream.Config{
		Timeout: cfg.SourceTimeout,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.SourceCircuitEnabled,
			FailureThreshold: cfg.SourceCircuitFailureCount,
			OpenTimeout:      cfg.SourceCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.SourceCircuitHalfOpenMaxReq,
		},
		RateLimit: cfg.SourceRateLimit,
		RateBurst: cfg.SourceRateBurst,
		Logger:    logger,
		Metrics:   sourceMetrics,
	}

	cricAPI := cricapi.NewClient(cricapi.ClientConfig{
		BaseURL:  cfg.CricAPIBaseURL,
		APIKey:   cfg.CricAPIKey,
		Upstream: transport,
	})
	rapidAPI := rapidapi.NewClient(rapidapi.ClientConfig{
		BaseURL:  cfg.RapidAPIBaseURL,
		APIKey:   cfg.RapidAPIKey,
		Host:     cfg.RapidAPIHost,
		Upstream: transport,
	})
	genericAPI := cricketapi.NewClient(cricketapi.ClientConfig{
		BaseURL:  cfg.CricketAPIServer,
		Upstream: transport,
	})
	scraper := cricbuzz.NewScraper(cricbuzz.ScraperConfig{
		Enabled:  cfg.ScrapeEnabled,
		LiveURL:  cfg.CricbuzzLiveURL,
		Upstream: transport,
	})

	logger.Info("live score sources configured",
		"cricapi", cricAPI.Available(),
		"rapidapi", rapidAPI.Available(),
		"generic", genericAPI.Available(),
		"scrape", scraper.Available(),
		"circuit_breaker", cfg.SourceCircuitEnabled,
	)

	return usecase.NewLiveScoreService(
		[]usecase.LiveMatchSource{cricAPI, rapidAPI, genericAPI, scraper},
		[]usecase.ScoreSource{cricAPI, rapidAPI, genericAPI},
		logger,
		sourceMetrics,
	)
}

// newTokenVerifier returns nil when no account service is configured, which
// leaves match writes open.
func newTokenVerifier(cfg config.Config, logger *logging.Logger) httpapi.TokenVerifier {
	if cfg.AccountBaseURL == "" {
		logger.Warn("account verification disabled", "reason", "ACCOUNT_BASE_URL empty")
		return nil
	}

	return anubis.NewClient(anubis.ClientConfig{
		HTTPClient:     &http.Client{Timeout: cfg.AccountTimeout},
		BaseURL:        cfg.AccountBaseURL,
		IntrospectPath: cfg.AccountIntrospectPath,
		AdminKey:       cfg.AccountAdminKey,
		Timeout:        cfg.AccountTimeout,
		CacheTTL:       cfg.AccountCacheTTL,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.AccountCircuitEnabled,
			FailureThreshold: cfg.AccountCircuitFailureCount,
			OpenTimeout:      cfg.AccountCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.AccountCircuitHalfOpenMaxReq,
		},
		Logger: logger,
	})
}
