package fpplayer

import "context"

// Repository describes rankings-catalog persistence needs from use cases.
type Repository interface {
	BulkUpsert(ctx context.Context, records []Record) (UpsertResult, error)
	ListBySeason(ctx context.Context, sport string, season int) ([]Record, error)
	DeleteBySeason(ctx context.Context, sport string, season int) (int, error)
	// DeleteByIDs removes specific records inside one scope; used by the
	// orphan reclaim pass after crosswalk resolution.
	DeleteByIDs(ctx context.Context, sport string, season int, fpIDs []string) (int, error)
	// ListScopes returns every (sport, season) partition currently stored.
	ListScopes(ctx context.Context) ([]Scope, error)
}
