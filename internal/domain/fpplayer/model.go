package fpplayer

import (
	"fmt"
	"time"
)

// Record is one rankings-provider player row, keyed by (sport, season, FPID).
type Record struct {
	Sport        string
	Season       int
	FPID         string
	FullName     string
	FirstName    string
	LastName     string
	Team         string
	Position     string
	Jersey       string
	NewsHeadline string
	NewsAnalysis string
	NewsDate     *time.Time
	FetchedAt    time.Time
}

func (r Record) Validate() error {
	if r.Sport == "" {
		return fmt.Errorf("fp player sport is required")
	}
	if r.Season <= 0 {
		return fmt.Errorf("fp player season must be greater than zero")
	}
	if r.FPID == "" {
		return fmt.Errorf("fp player id is required")
	}
	if r.FullName == "" {
		return fmt.Errorf("fp player full name is required")
	}

	return nil
}

// UpsertResult reports how many records a bulk upsert inserted vs updated.
type UpsertResult struct {
	Inserted int
	Updated  int
}

// Scope identifies one (sport, season) catalog partition.
type Scope struct {
	Sport  string
	Season int
}
