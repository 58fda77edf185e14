package defense

import "fmt"

// TeamStat is one raw defensive stat row for a team within a (season, week)
// scope. Week nil denotes the season-to-date aggregate.
type TeamStat struct {
	Season        int
	Week          *int
	Team          string
	PointsAllowed float64
	GamesPlayed   int
}

func (s TeamStat) Validate() error {
	if s.Season <= 0 {
		return fmt.Errorf("defense stat season must be greater than zero")
	}
	if s.Team == "" {
		return fmt.Errorf("defense stat team is required")
	}
	if s.PointsAllowed < 0 {
		return fmt.Errorf("defense stat points allowed cannot be negative")
	}
	if s.GamesPlayed < 0 {
		return fmt.Errorf("defense stat games played cannot be negative")
	}

	return nil
}

// VsPositionStat is one defense-vs-position efficiency row: how a defense
// ranks against a fantasy position under one scoring type. Week nil is the
// season-to-date row and may coexist with per-week rows.
type VsPositionStat struct {
	Sport            string
	Season           int
	Week             *int
	DefenseTeam      string
	Position         string
	ScoringType      string
	Rank             int
	AvgPointsAllowed float64
}

func (s VsPositionStat) Validate() error {
	if s.Sport == "" {
		return fmt.Errorf("defense vs position sport is required")
	}
	if s.Season <= 0 {
		return fmt.Errorf("defense vs position season must be greater than zero")
	}
	if s.DefenseTeam == "" {
		return fmt.Errorf("defense vs position team is required")
	}
	if s.Position == "" {
		return fmt.Errorf("defense vs position position is required")
	}
	if s.Rank <= 0 {
		return fmt.Errorf("defense vs position rank must be greater than zero")
	}

	return nil
}

// Scoring types in materializer disambiguation priority order.
const (
	ScoringStandard = "STD"
	ScoringHalfPPR  = "HALF"
	ScoringFullPPR  = "PPR"
)
