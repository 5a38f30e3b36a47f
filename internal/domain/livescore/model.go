package livescore

import "errors"

var (
	// ErrMatchNotFound is a provider reporting that it does not know the match.
	ErrMatchNotFound = errors.New("match not found at provider")
	// ErrNoScoreData marks a provider answer that carried nothing usable.
	ErrNoScoreData = errors.New("no score data")
)

// IsNoData reports the quiet outcomes: the provider does not know the match
// or had nothing usable for it. Anything else is a source failure.
func IsNoData(err error) bool {
	return errors.Is(err, ErrMatchNotFound) || errors.Is(err, ErrNoScoreData)
}

const (
	DefaultStatus     = "Live"
	PlaceholderLabel  = "Score"
	maxPlayersPerSide = 4
)

type LiveMatch struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type ScoreLine struct {
	Label string  `json:"label"`
	Value *string `json:"value"`
}

type Batsman struct {
	Name       string  `json:"name"`
	Runs       *string `json:"runs"`
	Balls      *string `json:"balls"`
	StrikeRate *string `json:"strikeRate"`
}

type Bowler struct {
	Name    string  `json:"name"`
	Overs   *string `json:"overs"`
	Runs    *string `json:"runs"`
	Wickets *string `json:"wickets"`
	Economy *string `json:"economy"`
}

// ScoreDetail is the canonical live score. Optional text is nil, never "".
type ScoreDetail struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Status      string      `json:"status"`
	Update      *string     `json:"update"`
	RunRate     *string     `json:"runrate"`
	ScoreLines  []ScoreLine `json:"scoreLines"`
	Score       *string     `json:"score"`
	Batsmen     []Batsman   `json:"batsmen"`
	Bowlers     []Bowler    `json:"bowlers"`
	Extras      *string     `json:"extras"`
	Partnership *string     `json:"partnership"`
	LastWicket  *string     `json:"lastWicket"`
	RecentOvers *string     `json:"recentOvers"`
}

// RawScore is what a score source hands over before normalisation.
// Either side may be nil.
type RawScore struct {
	Info  map[string]any
	Score map[string]any
}

func (r RawScore) Empty() bool {
	return len(r.Info) == 0 && len(r.Score) == 0
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
