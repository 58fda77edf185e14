package unified

import "context"

// Repository describes unified-view persistence needs from use cases.
type Repository interface {
	// ReplaceScope swaps one (sport, season) partition for the given rows
	// atomically: on error the previous content is left intact.
	ReplaceScope(ctx context.Context, sport string, season int, rows []PlayerView) error
	// Query returns rows for a scope honoring the filter, ordered by full name.
	Query(ctx context.Context, sport string, season int, filter Filter) ([]PlayerView, error)
}
