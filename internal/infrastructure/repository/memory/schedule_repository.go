package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/gridironlab/rosterlink/internal/domain/schedule"
)

type ScheduleRepository struct {
	mu       sync.RWMutex
	matchups map[string]schedule.Matchup
}

func NewScheduleRepository() *ScheduleRepository {
	return &ScheduleRepository{
		matchups: make(map[string]schedule.Matchup),
	}
}

func matchupKey(m schedule.Matchup) string {
	return fmt.Sprintf("%d|%d|%s", m.Season, m.Week, m.Team)
}

func (r *ScheduleRepository) BulkUpsert(_ context.Context, items []schedule.Matchup) (schedule.UpsertResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result schedule.UpsertResult
	for _, item := range items {
		key := matchupKey(item)
		if _, ok := r.matchups[key]; ok {
			result.Updated++
		} else {
			result.Inserted++
		}
		r.matchups[key] = item
	}

	return result, nil
}

func (r *ScheduleRepository) ListBySeason(_ context.Context, season int) ([]schedule.Matchup, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]schedule.Matchup, 0)
	for _, item := range r.matchups {
		if item.Season != season {
			continue
		}
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Week != out[j].Week {
			return out[i].Week < out[j].Week
		}
		return out[i].Team < out[j].Team
	})

	return out, nil
}
