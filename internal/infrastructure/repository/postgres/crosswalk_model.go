package postgres

import "time"

type crosswalkTableModel struct {
	Sport           string    `db:"sport"`
	Season          int       `db:"season"`
	CanonicalKey    string    `db:"canonical_key"`
	ESPNID          *int64    `db:"espn_id"`
	FPID            *string   `db:"fp_id"`
	MatchConfidence float64   `db:"match_confidence"`
	ManualOverride  bool      `db:"manual_override"`
	NeedsReview     bool      `db:"needs_review"`
	UpdatedAt       time.Time `db:"updated_at"`
}
