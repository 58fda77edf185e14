package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/gridironlab/rosterlink/internal/domain/crosswalk"
)

type CrosswalkRepository struct {
	mu      sync.RWMutex
	entries map[string]map[string]crosswalk.Entry
}

func NewCrosswalkRepository() *CrosswalkRepository {
	return &CrosswalkRepository{
		entries: make(map[string]map[string]crosswalk.Entry),
	}
}

func (r *CrosswalkRepository) Upsert(_ context.Context, entry crosswalk.Entry) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	scope := scopeKey(entry.Sport, entry.Season)
	if _, ok := r.entries[scope]; !ok {
		r.entries[scope] = make(map[string]crosswalk.Entry)
	}
	_, existed := r.entries[scope][entry.CanonicalKey]
	r.entries[scope][entry.CanonicalKey] = entry

	return !existed, nil
}

func (r *CrosswalkRepository) ListBySeason(_ context.Context, sport string, season int) ([]crosswalk.Entry, error) {
	return r.list(sport, season, false), nil
}

func (r *CrosswalkRepository) ListNeedingReview(_ context.Context, sport string, season int) ([]crosswalk.Entry, error) {
	return r.list(sport, season, true), nil
}

func (r *CrosswalkRepository) list(sport string, season int, reviewOnly bool) []crosswalk.Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	byKey := r.entries[scopeKey(sport, season)]
	out := make([]crosswalk.Entry, 0, len(byKey))
	for _, entry := range byKey {
		if reviewOnly && !entry.NeedsReview {
			continue
		}
		out = append(out, entry)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CanonicalKey < out[j].CanonicalKey })

	return out
}

func (r *CrosswalkRepository) ListScopes(_ context.Context) ([]crosswalk.Scope, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]crosswalk.Scope, 0, len(r.entries))
	for _, byKey := range r.entries {
		for _, entry := range byKey {
			out = append(out, crosswalk.Scope{Sport: entry.Sport, Season: entry.Season})
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

func (r *CrosswalkRepository) DeleteBySeason(_ context.Context, sport string, season int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	scope := scopeKey(sport, season)
	deleted := len(r.entries[scope])
	delete(r.entries, scope)

	return deleted, nil
}
