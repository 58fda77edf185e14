package ranking

import "fmt"

// WeeklyRanking is one rankings-provider consensus row for a player. Week nil
// is the season-level (rest-of-season) row, kept alongside per-week rows.
type WeeklyRanking struct {
	Sport        string
	Season       int
	FPID         string
	RankType     string
	ScoringType  string
	Week         *int
	Rank         int
	PositionRank string
}

func (r WeeklyRanking) Validate() error {
	if r.Sport == "" {
		return fmt.Errorf("ranking sport is required")
	}
	if r.Season <= 0 {
		return fmt.Errorf("ranking season must be greater than zero")
	}
	if r.FPID == "" {
		return fmt.Errorf("ranking fp player id is required")
	}
	if r.Rank <= 0 {
		return fmt.Errorf("ranking rank must be greater than zero")
	}

	return nil
}

// WeeklyProjection is one projected-points row for a player. Week nil is the
// season-level projection.
type WeeklyProjection struct {
	Sport       string
	Season      int
	FPID        string
	ScoringType string
	Week        *int
	Points      float64
}

func (p WeeklyProjection) Validate() error {
	if p.Sport == "" {
		return fmt.Errorf("projection sport is required")
	}
	if p.Season <= 0 {
		return fmt.Errorf("projection season must be greater than zero")
	}
	if p.FPID == "" {
		return fmt.Errorf("projection fp player id is required")
	}

	return nil
}

// UpsertResult reports how many rows a bulk upsert inserted vs updated.
type UpsertResult struct {
	Inserted int
	Updated  int
}
