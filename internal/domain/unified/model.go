package unified

import (
	"fmt"
	"time"
)

// PlayerView is one denormalized row of the players master projection: the
// crosswalk entry joined against both source catalogs and the latest weekly
// side tables. It is derived data, rebuilt by the materializer and never
// edited directly.
type PlayerView struct {
	Sport        string
	Season       int
	CanonicalKey string
	ESPNID       *int64
	FPID         *string

	FullName     string
	Team         string
	Position     string
	Jersey       string
	InjuryStatus string

	PercentOwned   float64
	PercentStarted float64
	AvgPoints      float64
	TotalPoints    float64
	OutlookText    string
	OutlookWeek    *int

	NewsHeadline string
	NewsAnalysis string
	NewsDate     *time.Time

	WeeklyRank      *int
	RankScoringType string
	RankWeek        *int

	ProjectedPoints *float64
	ProjectionWeek  *int

	Opponent        string
	OpponentWeek    *int
	OpponentIsHome  *bool
	KickoffAt       *time.Time
	OpponentRank    *int
	OprkScoringType string

	MatchConfidence float64
	NeedsReview     bool
	RefreshedAt     time.Time
}

func (v PlayerView) Validate() error {
	if v.Sport == "" {
		return fmt.Errorf("unified view sport is required")
	}
	if v.Season <= 0 {
		return fmt.Errorf("unified view season must be greater than zero")
	}
	if v.CanonicalKey == "" {
		return fmt.Errorf("unified view canonical key is required")
	}
	if v.FullName == "" {
		return fmt.Errorf("unified view full name is required")
	}

	return nil
}

// Filter narrows unified view reads. Empty fields match everything.
type Filter struct {
	Team     string
	Position string
}

// RefreshResult reports the outcome of one full view rebuild.
type RefreshResult struct {
	Success  bool   `json:"success"`
	RowCount int    `json:"row_count"`
	Error    string `json:"error,omitempty"`
}
