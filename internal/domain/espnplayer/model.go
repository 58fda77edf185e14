package espnplayer

import (
	"fmt"
	"time"
)

// Record is one roster-provider player row, keyed by (sport, season, ESPNID).
// The identity key is immutable; every other field is overwritten on each
// bulk ingestion.
type Record struct {
	Sport          string
	Season         int
	ESPNID         int64
	FullName       string
	FirstName      string
	LastName       string
	Team           string
	Position       string
	Jersey         string
	InjuryStatus   string
	PercentOwned   float64
	PercentStarted float64
	AvgPoints      float64
	TotalPoints    float64
	OutlookText    string
	OutlookWeek    *int
	NewsDate       *time.Time
	FetchedAt      time.Time
}

func (r Record) Validate() error {
	if r.Sport == "" {
		return fmt.Errorf("espn player sport is required")
	}
	if r.Season <= 0 {
		return fmt.Errorf("espn player season must be greater than zero")
	}
	if r.ESPNID <= 0 {
		return fmt.Errorf("espn player id must be greater than zero")
	}
	if r.FullName == "" {
		return fmt.Errorf("espn player full name is required")
	}

	return nil
}

// UpsertResult reports how many records a bulk upsert inserted vs updated.
// On partial failure the counts cover records written before the error.
type UpsertResult struct {
	Inserted int
	Updated  int
}
