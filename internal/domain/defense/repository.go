package defense

import "context"

// UpsertResult reports how many rows a bulk upsert inserted vs updated.
type UpsertResult struct {
	Inserted int
	Updated  int
}

// Repository describes defensive stat persistence needs from use cases.
type Repository interface {
	BulkUpsertTeamStats(ctx context.Context, stats []TeamStat) (UpsertResult, error)
	// ListTeamStats returns rows for a (season, week) scope; week nil selects
	// the season-to-date aggregate rows.
	ListTeamStats(ctx context.Context, season int, week *int) ([]TeamStat, error)
	BulkUpsertVsPosition(ctx context.Context, stats []VsPositionStat) (UpsertResult, error)
	ListVsPositionBySeason(ctx context.Context, sport string, season int) ([]VsPositionStat, error)
}
