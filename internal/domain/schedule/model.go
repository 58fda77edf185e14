package schedule

import (
	"fmt"
	"time"
)

// Matchup is one scheduled game row from a team's perspective, keyed by
// (season, week, team). Kickoff timestamps are UTC.
type Matchup struct {
	Season    int
	Week      int
	Team      string
	Opponent  string
	IsHome    bool
	KickoffAt time.Time
}

func (m Matchup) Validate() error {
	if m.Season <= 0 {
		return fmt.Errorf("matchup season must be greater than zero")
	}
	if m.Week <= 0 {
		return fmt.Errorf("matchup week must be greater than zero")
	}
	if m.Team == "" {
		return fmt.Errorf("matchup team is required")
	}
	if m.Opponent == "" {
		return fmt.Errorf("matchup opponent is required")
	}
	if m.KickoffAt.IsZero() {
		return fmt.Errorf("matchup kickoff_at is required")
	}

	return nil
}

// UpsertResult reports how many rows a bulk upsert inserted vs updated.
type UpsertResult struct {
	Inserted int
	Updated  int
}
