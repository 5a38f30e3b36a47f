package observability

import (
	"fmt"

	"github.com/grafana/pyroscope-go"

	"github.com/riskibarqy/cricket-live/internal/config"
	"github.com/riskibarqy/cricket-live/internal/platform/logging"
)

// The service spends its time waiting on providers and decoding their
// payloads, so goroutine and allocation profiles matter more than lock
// contention.
var profileTypes = []pyroscope.ProfileType{
	pyroscope.ProfileCPU,
	pyroscope.ProfileAllocObjects,
	pyroscope.ProfileAllocSpace,
	pyroscope.ProfileInuseObjects,
	pyroscope.ProfileInuseSpace,
	pyroscope.ProfileGoroutines,
}

// InitPyroscope starts continuous profiling when enabled.
func InitPyroscope(cfg config.Config, logger *logging.Logger) (func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	if !cfg.PyroscopeEnabled {
		logger.Info("pyroscope disabled", "reason", "PYROSCOPE_ENABLED=false")
		return func() error { return nil }, nil
	}

	profiler, err := pyroscope.Start(pyroscope.Config{
		ApplicationName:   cfg.PyroscopeAppName,
		ServerAddress:     cfg.PyroscopeServerAddress,
		AuthToken:         cfg.PyroscopeAuthToken,
		BasicAuthUser:     cfg.PyroscopeBasicAuthUser,
		BasicAuthPassword: cfg.PyroscopeBasicAuthPassword,
		UploadRate:        cfg.PyroscopeUploadRate,
		Logger:            pyroscopeLogger{logger: logger.Named("pyroscope")},
		Tags:              profileTags(cfg),
		ProfileTypes:      profileTypes,
	})
	if err != nil {
		return nil, fmt.Errorf("start pyroscope: %w", err)
	}

	logger.Info("pyroscope enabled",
		"server_address", cfg.PyroscopeServerAddress,
		"application", cfg.PyroscopeAppName,
	)

	return profiler.Stop, nil
}

// profileTags lets profiles be compared across deployments that enable
// different score providers.
func profileTags(cfg config.Config) map[string]string {
	tags := map[string]string{
		"env":     cfg.AppEnv,
		"service": cfg.ServiceName,
	}
	if cfg.ServiceVersion != "" {
		tags["version"] = cfg.ServiceVersion
	}
	tags["score_sources"] = scoreSourceTag(cfg)
	return tags
}

func scoreSourceTag(cfg config.Config) string {
	tag := ""
	for _, source := range []struct {
		name    string
		enabled bool
	}{
		{name: "cricapi", enabled: cfg.CricAPIKey != ""},
		{name: "rapidapi", enabled: cfg.RapidAPIBaseURL != "" && cfg.RapidAPIKey != "" && cfg.RapidAPIHost != ""},
		{name: "generic", enabled: cfg.CricketAPIServer != ""},
	} {
		if !source.enabled {
			continue
		}
		if tag != "" {
			tag += "+"
		}
		tag += source.name
	}
	if tag == "" {
		return "none"
	}
	return tag
}

// pyroscopeLogger routes the profiler's printf-style logging into zap. Its
// info output is upload chatter, so it goes to debug.
type pyroscopeLogger struct {
	logger *logging.Logger
}

func (l pyroscopeLogger) Infof(format string, args ...any) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

func (l pyroscopeLogger) Debugf(format string, args ...any) {
	l.logger.Debug(fmt.Sprintf(format, args...))
}

func (l pyroscopeLogger) Errorf(format string, args ...any) {
	l.logger.Warn(fmt.Sprintf(format, args...))
}
