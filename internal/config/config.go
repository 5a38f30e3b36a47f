package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/riskibarqy/cricket-live/external/cricapi"
	"github.com/riskibarqy/cricket-live/external/cricbuzz"
	"github.com/riskibarqy/cricket-live/internal/platform/logging"
)

// cricAPIKeyEnvs are read in order; the first non-empty value wins.
var cricAPIKeyEnvs = []string{"CRICAPI_KEY", "CRICAPI_API_KEY", "CRICKETDATA_API_KEY", "CRIC_API_KEY"}

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv             string
	ServiceName        string
	ServiceVersion     string
	HTTPAddr           string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	LogLevel           logging.Level
	CORSAllowedOrigins []string
	SwaggerEnabled     bool
	MetricsEnabled     bool
	DBURL              string

	CricketAPIServer string
	RapidAPIBaseURL  string
	RapidAPIKey      string
	RapidAPIHost     string
	CricAPIBaseURL   string
	CricAPIKey       string
	CricbuzzLiveURL  string
	ScrapeEnabled    bool

	SourceTimeout               time.Duration
	SourceCircuitEnabled        bool
	SourceCircuitFailureCount   int
	SourceCircuitOpenTimeout    time.Duration
	SourceCircuitHalfOpenMaxReq int
	SourceRateLimit             float64
	SourceRateBurst             int

	AccountBaseURL               string
	AccountIntrospectPath        string
	AccountAdminKey              string
	AccountTimeout               time.Duration
	AccountCacheTTL              time.Duration
	AccountCircuitEnabled        bool
	AccountCircuitFailureCount   int
	AccountCircuitOpenTimeout    time.Duration
	AccountCircuitHalfOpenMaxReq int

	UptraceEnabled             bool
	UptraceDSN                 string
	PprofEnabled               bool
	PprofAddr                  string
	PyroscopeEnabled           bool
	PyroscopeServerAddress     string
	PyroscopeAppName           string
	PyroscopeAuthToken         string
	PyroscopeBasicAuthUser     string
	PyroscopeBasicAuthPassword string
	PyroscopeUploadRate        time.Duration
}

// Load reads an optional .env file from the working directory and then the
// process environment. Values already present in the environment win.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	swaggerDefault := "true"
	if appEnv == EnvProd {
		swaggerDefault = "false"
	}

	swaggerEnabled, err := strconv.ParseBool(getEnv("SWAGGER_ENABLED", swaggerDefault))
	if err != nil {
		return Config{}, fmt.Errorf("parse SWAGGER_ENABLED: %w", err)
	}

	metricsEnabled, err := strconv.ParseBool(getEnv("METRICS_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse METRICS_ENABLED: %w", err)
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}

	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceDSN == "" {
		uptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := time.ParseDuration(getEnv("PYROSCOPE_UPLOAD_RATE", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}
	if pyroscopeUploadRate <= 0 {
		return Config{}, fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
	}

	scrapeEnabled, err := strconv.ParseBool(getEnv("SCRAPE_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SCRAPE_ENABLED: %w", err)
	}

	sourceTimeout, err := time.ParseDuration(getEnv("SOURCE_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SOURCE_TIMEOUT: %w", err)
	}
	if sourceTimeout <= 0 {
		return Config{}, fmt.Errorf("SOURCE_TIMEOUT must be > 0")
	}
	sourceCircuitEnabled, err := strconv.ParseBool(getEnv("SOURCE_CIRCUIT_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SOURCE_CIRCUIT_ENABLED: %w", err)
	}
	sourceCircuitFailureCount, err := getEnvAsInt("SOURCE_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse SOURCE_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if sourceCircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("SOURCE_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	sourceCircuitOpenTimeout, err := time.ParseDuration(getEnv("SOURCE_CIRCUIT_OPEN_TIMEOUT", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SOURCE_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if sourceCircuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("SOURCE_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	sourceCircuitHalfOpenMaxReq, err := getEnvAsInt("SOURCE_CIRCUIT_HALF_OPEN_MAX_REQ", 1)
	if err != nil {
		return Config{}, fmt.Errorf("parse SOURCE_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if sourceCircuitHalfOpenMaxReq < 1 {
		return Config{}, fmt.Errorf("SOURCE_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	sourceRateLimit, err := strconv.ParseFloat(getEnv("SOURCE_RATE_LIMIT", "0"), 64)
	if err != nil {
		return Config{}, fmt.Errorf("parse SOURCE_RATE_LIMIT: %w", err)
	}
	if sourceRateLimit < 0 {
		return Config{}, fmt.Errorf("SOURCE_RATE_LIMIT must be >= 0")
	}
	sourceRateBurst, err := getEnvAsInt("SOURCE_RATE_BURST", 1)
	if err != nil {
		return Config{}, fmt.Errorf("parse SOURCE_RATE_BURST: %w", err)
	}
	if sourceRateBurst < 1 {
		return Config{}, fmt.Errorf("SOURCE_RATE_BURST must be >= 1")
	}

	cfg := Config{
		AppEnv:                      appEnv,
		ServiceName:                 getEnv("APP_SERVICE_NAME", "cricket-live-api"),
		ServiceVersion:              getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:                    getEnv("APP_HTTP_ADDR", ":5000"),
		CORSAllowedOrigins:          splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		SwaggerEnabled:              swaggerEnabled,
		MetricsEnabled:              metricsEnabled,
		DBURL:                       strings.TrimSpace(getEnv("DB_URL", "")),
		CricketAPIServer:            strings.TrimSpace(getEnv("CRICKET_API_SERVER", "")),
		RapidAPIBaseURL:             strings.TrimSpace(getEnv("RAPIDAPI_BASE_URL", "")),
		RapidAPIKey:                 strings.TrimSpace(getEnv("RAPIDAPI_KEY", "")),
		RapidAPIHost:                strings.TrimSpace(getEnv("RAPIDAPI_HOST", "")),
		CricAPIBaseURL:              strings.TrimSpace(getEnv("CRICAPI_BASE_URL", cricapi.DefaultBaseURL)),
		CricAPIKey:                  firstEnv(cricAPIKeyEnvs...),
		CricbuzzLiveURL:             strings.TrimSpace(getEnv("CRICBUZZ_LIVE_URL", cricbuzz.DefaultLiveURL)),
		ScrapeEnabled:               scrapeEnabled,
		SourceTimeout:               sourceTimeout,
		SourceCircuitEnabled:        sourceCircuitEnabled,
		SourceCircuitFailureCount:   sourceCircuitFailureCount,
		SourceCircuitOpenTimeout:    sourceCircuitOpenTimeout,
		SourceCircuitHalfOpenMaxReq: sourceCircuitHalfOpenMaxReq,
		SourceRateLimit:             sourceRateLimit,
		SourceRateBurst:             sourceRateBurst,
		AccountBaseURL:              strings.TrimSpace(getEnv("ACCOUNT_BASE_URL", "")),
		AccountIntrospectPath:       getEnv("ACCOUNT_INTROSPECT_PATH", "/v1/auth/introspect"),
		AccountAdminKey:             getEnv("ACCOUNT_ADMIN_KEY", ""),
		UptraceEnabled:              uptraceEnabled,
		UptraceDSN:                  uptraceDSN,
		PprofEnabled:                pprofEnabled,
		PprofAddr:                   pprofAddr,
		PyroscopeEnabled:            pyroscopeEnabled,
		PyroscopeServerAddress:      pyroscopeServerAddress,
		PyroscopeAuthToken:          strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:      strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword:  strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
		PyroscopeUploadRate:         pyroscopeUploadRate,
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}

	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "45s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}

	accountTimeout, err := time.ParseDuration(getEnv("ACCOUNT_TIMEOUT", "3s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse ACCOUNT_TIMEOUT: %w", err)
	}

	accountCacheTTL, err := time.ParseDuration(getEnv("ACCOUNT_CACHE_TTL", "0s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse ACCOUNT_CACHE_TTL: %w", err)
	}
	if accountCacheTTL < 0 {
		return Config{}, fmt.Errorf("ACCOUNT_CACHE_TTL must be >= 0")
	}

	accountCircuitEnabled, err := strconv.ParseBool(getEnv("ACCOUNT_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse ACCOUNT_CIRCUIT_ENABLED: %w", err)
	}

	accountCircuitFailureCount, err := getEnvAsInt("ACCOUNT_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse ACCOUNT_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if accountCircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("ACCOUNT_CIRCUIT_FAILURE_COUNT must be >= 1")
	}

	accountCircuitOpenTimeout, err := time.ParseDuration(getEnv("ACCOUNT_CIRCUIT_OPEN_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse ACCOUNT_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if accountCircuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("ACCOUNT_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}

	accountCircuitHalfOpenMaxReq, err := getEnvAsInt("ACCOUNT_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse ACCOUNT_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if accountCircuitHalfOpenMaxReq < 1 {
		return Config{}, fmt.Errorf("ACCOUNT_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	cfg.ReadTimeout = readTimeout
	cfg.WriteTimeout = writeTimeout
	cfg.AccountTimeout = accountTimeout
	cfg.AccountCacheTTL = accountCacheTTL
	cfg.AccountCircuitEnabled = accountCircuitEnabled
	cfg.AccountCircuitFailureCount = accountCircuitFailureCount
	cfg.AccountCircuitOpenTimeout = accountCircuitOpenTimeout
	cfg.AccountCircuitHalfOpenMaxReq = accountCircuitHalfOpenMaxReq
	cfg.LogLevel = logging.ParseLevel(getEnv("APP_LOG_LEVEL", "info"))

	return cfg, nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func firstEnv(keys ...string) string {
	for _, key := range keys {
		if value := strings.TrimSpace(os.Getenv(key)); value != "" {
			return value
		}
	}
	return ""
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	items := strings.Split(raw, ",")
	for _, item := range items {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			value := strings.TrimSpace(parts[1])
			return strings.Trim(value, "\"'")
		}
	}

	return ""
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
