package app

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/riskibarqy/cricket-live/internal/config"
	"github.com/riskibarqy/cricket-live/internal/domain/match"
	"github.com/riskibarqy/cricket-live/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/cricket-live/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/cricket-live/internal/platform/logging"
)

const (
	dbPingTimeout = 5 * time.Second
	// span attribute limit for db.statement
	maxTracedQueryLength = 512
)

// newMatchRepository opens Postgres when DB_URL is set and falls back to the
// in-memory store otherwise.
func newMatchRepository(cfg config.Config, logger *logging.Logger) (match.Repository, func() error, error) {
	if cfg.DBURL == "" {
		logger.Info("match store", "backend", "memory")
		return memory.NewMatchRepository(nil), func() error { return nil }, nil
	}

	dbURL := normalizeDBURL(cfg.DBURL, cfg.ServiceName)
	db, err := otelsqlx.Open("postgres", dbURL,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(dbURL)),
		otelsql.WithQueryFormatter(traceQuery),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("open postgres: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), dbPingTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("ping postgres: %w", err)
	}

	logger.Info("match store", "backend", "postgres", "database", dbNameFromURL(dbURL))
	return postgres.NewMatchRepository(db), db.Close, nil
}

// traceQuery collapses the multi-line statements the match repository builds
// into one line and clips them on a rune boundary.
func traceQuery(query string) string {
	compact := strings.Join(strings.Fields(query), " ")
	if len(compact) <= maxTracedQueryLength {
		return compact
	}
	cut := maxTracedQueryLength
	for cut > 0 && !utf8.RuneStart(compact[cut]) {
		cut--
	}
	return compact[:cut] + "..."
}
