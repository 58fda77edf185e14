package ranking

import "context"

// Repository describes rankings/projections persistence needs from use cases.
type Repository interface {
	BulkUpsertRankings(ctx context.Context, items []WeeklyRanking) (UpsertResult, error)
	BulkUpsertProjections(ctx context.Context, items []WeeklyProjection) (UpsertResult, error)
	ListRankingsBySeason(ctx context.Context, sport string, season int) ([]WeeklyRanking, error)
	ListProjectionsBySeason(ctx context.Context, sport string, season int) ([]WeeklyProjection, error)
}
