package postgres

import "time"

type espnPlayerTableModel struct {
	Sport          string     `db:"sport"`
	Season         int        `db:"season"`
	ESPNID         int64      `db:"espn_id"`
	FullName       string     `db:"full_name"`
	FirstName      string     `db:"first_name"`
	LastName       string     `db:"last_name"`
	Team           string     `db:"team"`
	Position       string     `db:"position"`
	Jersey         string     `db:"jersey"`
	InjuryStatus   string     `db:"injury_status"`
	PercentOwned   float64    `db:"percent_owned"`
	PercentStarted float64    `db:"percent_started"`
	AvgPoints      float64    `db:"avg_points"`
	TotalPoints    float64    `db:"total_points"`
	OutlookText    string     `db:"outlook_text"`
	OutlookWeek    *int       `db:"outlook_week"`
	NewsDate       *time.Time `db:"news_date"`
	FetchedAt      time.Time  `db:"fetched_at"`
}
