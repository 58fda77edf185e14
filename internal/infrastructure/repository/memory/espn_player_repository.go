package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/gridironlab/rosterlink/internal/domain/espnplayer"
)

// EspnPlayerRepository is the in-process roster catalog used by tests and by
// the api process when no database URL is configured.
type EspnPlayerRepository struct {
	mu      sync.RWMutex
	records map[string]map[int64]espnplayer.Record
}

func NewEspnPlayerRepository() *EspnPlayerRepository {
	return &EspnPlayerRepository{
		records: make(map[string]map[int64]espnplayer.Record),
	}
}

func (r *EspnPlayerRepository) BulkUpsert(_ context.Context, records []espnplayer.Record) (espnplayer.UpsertResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result espnplayer.UpsertResult
	for _, rec := range records {
		scope := scopeKey(rec.Sport, rec.Season)
		if _, ok := r.records[scope]; !ok {
			r.records[scope] = make(map[int64]espnplayer.Record)
		}
		if _, ok := r.records[scope][rec.ESPNID]; ok {
			result.Updated++
		} else {
			result.Inserted++
		}
		r.records[scope][rec.ESPNID] = rec
	}

	return result, nil
}

func (r *EspnPlayerRepository) ListBySeason(_ context.Context, sport string, season int) ([]espnplayer.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	byID := r.records[scopeKey(sport, season)]
	out := make([]espnplayer.Record, 0, len(byID))
	for _, rec := range byID {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ESPNID < out[j].ESPNID })

	return out, nil
}

func (r *EspnPlayerRepository) DeleteBySeason(_ context.Context, sport string, season int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	scope := scopeKey(sport, season)
	deleted := len(r.records[scope])
	delete(r.records, scope)

	return deleted, nil
}
