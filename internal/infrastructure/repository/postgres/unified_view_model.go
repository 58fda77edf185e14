package postgres

import "time"

type unifiedPlayerViewTableModel struct {
	Sport        string  `db:"sport"`
	Season       int     `db:"season"`
	CanonicalKey string  `db:"canonical_key"`
	ESPNID       *int64  `db:"espn_id"`
	FPID         *string `db:"fp_id"`

	FullName     string `db:"full_name"`
	Team         string `db:"team"`
	Position     string `db:"position"`
	Jersey       string `db:"jersey"`
	InjuryStatus string `db:"injury_status"`

	PercentOwned   float64    `db:"percent_owned"`
	PercentStarted float64    `db:"percent_started"`
	AvgPoints      float64    `db:"avg_points"`
	TotalPoints    float64    `db:"total_points"`
	OutlookText    string     `db:"outlook_text"`
	OutlookWeek    *int       `db:"outlook_week"`
	NewsHeadline   string     `db:"news_headline"`
	NewsAnalysis   string     `db:"news_analysis"`
	NewsDate       *time.Time `db:"news_date"`

	WeeklyRank      *int   `db:"weekly_rank"`
	RankScoringType string `db:"rank_scoring_type"`
	RankWeek        *int   `db:"rank_week"`

	ProjectedPoints *float64 `db:"projected_points"`
	ProjectionWeek  *int     `db:"projection_week"`

	Opponent        string     `db:"opponent"`
	OpponentWeek    *int       `db:"opponent_week"`
	OpponentIsHome  *bool      `db:"opponent_is_home"`
	KickoffAt       *time.Time `db:"kickoff_at"`
	OpponentRank    *int       `db:"opponent_rank"`
	OprkScoringType string     `db:"oprk_scoring_type"`

	MatchConfidence float64   `db:"match_confidence"`
	NeedsReview     bool      `db:"needs_review"`
	RefreshedAt     time.Time `db:"refreshed_at"`
}
