package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/cricket-live/internal/domain/match"
	qb "github.com/riskibarqy/cricket-live/internal/platform/querybuilder"
)

const matchesTable = "matches"

var matchColumns = qb.Columns(matchTableModel{})

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) List(ctx context.Context, filter match.ListFilter) ([]match.Match, error) {
	var statusCond qb.Condition
	if filter.Status != "" {
		statusCond = qb.Eq("status", string(filter.Status))
	}

	query, args, err := qb.Select(matchColumns...).From(matchesTable).
		Where(statusCond).
		OrderBy("match_date DESC", "id DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matches query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select matches: %w", err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *MatchRepository) GetByID(ctx context.Context, id string) (match.Match, bool, error) {
	query, args, err := qb.Select(matchColumns...).From(matchesTable).
		Where(qb.Eq("public_id", id)).
		Limit(1).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build select match by id query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("get match by id: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *MatchRepository) Create(ctx context.Context, m match.Match) error {
	query, args, err := qb.InsertModel(matchesTable, newMatchTableModel(m), "")
	if err != nil {
		return fmt.Errorf("build insert match query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert match: %w", err)
	}
	return nil
}

func (r *MatchRepository) Update(ctx context.Context, m match.Match) (bool, error) {
	row := newMatchTableModel(m)
	query, args, err := qb.Update(matchesTable).
		Set("team1", row.Team1).
		Set("team2", row.Team2).
		Set("venue", row.Venue).
		Set("match_date", row.MatchDate).
		Set("status", row.Status).
		Set("score_team1", row.ScoreTeam1).
		Set("score_team2", row.ScoreTeam2).
		Set("winner", row.Winner).
		Set("player_of_match", row.PlayerOfMatch).
		Set("updated_at", row.UpdatedAt).
		Where(qb.Eq("public_id", m.ID)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build update match query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("update match: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("read updated match rows: %w", err)
	}
	return affected > 0, nil
}

func (r *MatchRepository) Delete(ctx context.Context, id string) (bool, error) {
	query, args, err := qb.DeleteFrom(matchesTable).Where(qb.Eq("public_id", id)).ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete match query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete match: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("read deleted match rows: %w", err)
	}
	return affected > 0, nil
}
