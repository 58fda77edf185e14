package schedule

import "context"

// Repository describes schedule persistence needs from use cases.
type Repository interface {
	BulkUpsert(ctx context.Context, items []Matchup) (UpsertResult, error)
	ListBySeason(ctx context.Context, season int) ([]Matchup, error)
}
