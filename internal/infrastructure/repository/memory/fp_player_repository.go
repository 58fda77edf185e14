package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/gridironlab/rosterlink/internal/domain/fpplayer"
)

type FpPlayerRepository struct {
	mu      sync.RWMutex
	records map[string]map[string]fpplayer.Record
}

func NewFpPlayerRepository() *FpPlayerRepository {
	return &FpPlayerRepository{
		records: make(map[string]map[string]fpplayer.Record),
	}
}

func (r *FpPlayerRepository) BulkUpsert(_ context.Context, records []fpplayer.Record) (fpplayer.UpsertResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result fpplayer.UpsertResult
	for _, rec := range records {
		scope := scopeKey(rec.Sport, rec.Season)
		if _, ok := r.records[scope]; !ok {
			r.records[scope] = make(map[string]fpplayer.Record)
		}
		if _, ok := r.records[scope][rec.FPID]; ok {
			result.Updated++
		} else {
			result.Inserted++
		}
		r.records[scope][rec.FPID] = rec
	}

	return result, nil
}

func (r *FpPlayerRepository) ListBySeason(_ context.Context, sport string, season int) ([]fpplayer.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	byID := r.records[scopeKey(sport, season)]
	out := make([]fpplayer.Record, 0, len(byID))
	for _, rec := range byID {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FPID < out[j].FPID })

	return out, nil
}

func (r *FpPlayerRepository) DeleteBySeason(_ context.Context, sport string, season int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	scope := scopeKey(sport, season)
	deleted := len(r.records[scope])
	delete(r.records, scope)

	return deleted, nil
}

func (r *FpPlayerRepository) DeleteByIDs(_ context.Context, sport string, season int, fpIDs []string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	byID := r.records[scopeKey(sport, season)]
	deleted := 0
	for _, id := range fpIDs {
		if _, ok := byID[id]; ok {
			delete(byID, id)
			deleted++
		}
	}

	return deleted, nil
}

func (r *FpPlayerRepository) ListScopes(_ context.Context) ([]fpplayer.Scope, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]fpplayer.Scope, 0, len(r.records))
	for _, byID := range r.records {
		for _, rec := range byID {
			out = append(out, fpplayer.Scope{Sport: rec.Sport, Season: rec.Season})
			break
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Sport != out[j].Sport {
			return out[i].Sport < out[j].Sport
		}
		return out[i].Season < out[j].Season
	})

	return out, nil
}
