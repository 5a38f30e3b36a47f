package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/cricket-live/internal/domain/match"
)

type matchTableModel struct {
	ID            int64          `db:"id,readonly"`
	PublicID      string         `db:"public_id"`
	Team1         string         `db:"team1"`
	Team2         string         `db:"team2"`
	Venue         string         `db:"venue"`
	MatchDate     time.Time      `db:"match_date"`
	Status        string         `db:"status"`
	ScoreTeam1    sql.NullString `db:"score_team1"`
	ScoreTeam2    sql.NullString `db:"score_team2"`
	Winner        sql.NullString `db:"winner"`
	PlayerOfMatch sql.NullString `db:"player_of_match"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
}

func newMatchTableModel(m match.Match) matchTableModel {
	return matchTableModel{
		PublicID:      m.ID,
		Team1:         m.Team1,
		Team2:         m.Team2,
		Venue:         m.Venue,
		MatchDate:     m.MatchDate,
		Status:        string(m.Status),
		ScoreTeam1:    nullString(m.ScoreTeam1),
		ScoreTeam2:    nullString(m.ScoreTeam2),
		Winner:        nullString(m.Winner),
		PlayerOfMatch: nullString(m.PlayerOfMatch),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func (row matchTableModel) toDomain() match.Match {
	return match.Match{
		ID:            row.PublicID,
		Team1:         row.Team1,
		Team2:         row.Team2,
		Venue:         row.Venue,
		MatchDate:     row.MatchDate,
		Status:        match.Status(row.Status),
		ScoreTeam1:    row.ScoreTeam1.String,
		ScoreTeam2:    row.ScoreTeam2.String,
		Winner:        row.Winner.String,
		PlayerOfMatch: row.PlayerOfMatch.String,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}
