package espnplayer

import "context"

// Repository describes roster-catalog persistence needs from use cases.
type Repository interface {
	// BulkUpsert writes each record by its immutable identity key. Re-running
	// the same batch is safe: the second run reports zero inserts and leaves
	// stored rows identical.
	BulkUpsert(ctx context.Context, records []Record) (UpsertResult, error)
	ListBySeason(ctx context.Context, sport string, season int) ([]Record, error)
	DeleteBySeason(ctx context.Context, sport string, season int) (int, error)
}
