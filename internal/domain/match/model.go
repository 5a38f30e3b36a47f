package match

import (
	"fmt"
	"strings"
	"time"
)

type Status string

const (
	StatusUpcoming  Status = "upcoming"
	StatusLive      Status = "live"
	StatusCompleted Status = "completed"
	StatusAbandoned Status = "abandoned"
)

func (s Status) Valid() bool {
	switch s {
	case StatusUpcoming, StatusLive, StatusCompleted, StatusAbandoned:
		return true
	default:
		return false
	}
}

func ParseStatus(raw string) (Status, error) {
	status := Status(strings.ToLower(strings.TrimSpace(raw)))
	if !status.Valid() {
		return "", fmt.Errorf("unknown match status %q", raw)
	}
	return status, nil
}

// Match is a stored fixture record, independent of live provider data.
type Match struct {
	ID            string
	Team1         string
	Team2         string
	Venue         string
	MatchDate     time.Time
	Status        Status
	ScoreTeam1    string
	ScoreTeam2    string
	Winner        string
	PlayerOfMatch string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (m Match) Title() string {
	return m.Team1 + " vs " + m.Team2
}

func (m Match) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("match id is required")
	}
	if strings.TrimSpace(m.Team1) == "" || strings.TrimSpace(m.Team2) == "" {
		return fmt.Errorf("match teams are required")
	}
	if strings.TrimSpace(m.Venue) == "" {
		return fmt.Errorf("match venue is required")
	}
	if m.MatchDate.IsZero() {
		return fmt.Errorf("match date is required")
	}
	if !m.Status.Valid() {
		return fmt.Errorf("invalid match status %q", m.Status)
	}

	return nil
}

// Patch holds the fields an update may change; nil means unchanged.
type Patch struct {
	Team1         *string
	Team2         *string
	Venue         *string
	MatchDate     *time.Time
	Status        *Status
	ScoreTeam1    *string
	ScoreTeam2    *string
	Winner        *string
	PlayerOfMatch *string
}

func (p Patch) Empty() bool {
	return p.Team1 == nil && p.Team2 == nil && p.Venue == nil && p.MatchDate == nil &&
		p.Status == nil && p.ScoreTeam1 == nil && p.ScoreTeam2 == nil &&
		p.Winner == nil && p.PlayerOfMatch == nil
}

// Apply returns a copy of m with the patch fields set.
func (p Patch) Apply(m Match) Match {
	if p.Team1 != nil {
		m.Team1 = *p.Team1
	}
	if p.Team2 != nil {
		m.Team2 = *p.Team2
	}
	if p.Venue != nil {
		m.Venue = *p.Venue
	}
	if p.MatchDate != nil {
		m.MatchDate = *p.MatchDate
	}
	if p.Status != nil {
		m.Status = *p.Status
	}
	if p.ScoreTeam1 != nil {
		m.ScoreTeam1 = *p.ScoreTeam1
	}
	if p.ScoreTeam2 != nil {
		m.ScoreTeam2 = *p.ScoreTeam2
	}
	if p.Winner != nil {
		m.Winner = *p.Winner
	}
	if p.PlayerOfMatch != nil {
		m.PlayerOfMatch = *p.PlayerOfMatch
	}
	return m
}
