package postgres

import "time"

type fpPlayerTableModel struct {
	Sport        string     `db:"sport"`
	Season       int        `db:"season"`
	FPID         string     `db:"fp_id"`
	FullName     string     `db:"full_name"`
	FirstName    string     `db:"first_name"`
	LastName     string     `db:"last_name"`
	Team         string     `db:"team"`
	Position     string     `db:"position"`
	Jersey       string     `db:"jersey"`
	NewsHeadline string     `db:"news_headline"`
	NewsAnalysis string     `db:"news_analysis"`
	NewsDate     *time.Time `db:"news_date"`
	FetchedAt    time.Time  `db:"fetched_at"`
}
