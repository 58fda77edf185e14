package crosswalk

import "context"

// Repository describes crosswalk persistence needs from use cases. Override
// protection is enforced by the resolver; the store writes what it is given.
type Repository interface {
	// Upsert writes one entry keyed by (sport, season, canonicalKey) and
	// reports whether a new row was created.
	Upsert(ctx context.Context, entry Entry) (created bool, err error)
	ListBySeason(ctx context.Context, sport string, season int) ([]Entry, error)
	ListNeedingReview(ctx context.Context, sport string, season int) ([]Entry, error)
	// ListScopes returns every (sport, season) partition with entries.
	ListScopes(ctx context.Context) ([]Scope, error)
	// DeleteBySeason purges one scope; the only way entries are removed.
	DeleteBySeason(ctx context.Context, sport string, season int) (int, error)
}

// Scope identifies one (sport, season) crosswalk partition.
type Scope struct {
	Sport  string
	Season int
}
