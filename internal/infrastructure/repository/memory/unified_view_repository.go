package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/gridironlab/rosterlink/internal/domain/unified"
)

type UnifiedViewRepository struct {
	mu    sync.RWMutex
	views map[string][]unified.PlayerView
}

func NewUnifiedViewRepository() *UnifiedViewRepository {
	return &UnifiedViewRepository{
		views: make(map[string][]unified.PlayerView),
	}
}

func (r *UnifiedViewRepository) ReplaceScope(_ context.Context, sport string, season int, rows []unified.PlayerView) error {
	copied := make([]unified.PlayerView, len(rows))
	copy(copied, rows)
	sort.Slice(copied, func(i, j int) bool {
		if copied[i].FullName != copied[j].FullName {
			return copied[i].FullName < copied[j].FullName
		}
		return copied[i].CanonicalKey < copied[j].CanonicalKey
	})

	r.mu.Lock()
	r.views[scopeKey(sport, season)] = copied
	r.mu.Unlock()

	return nil
}

func (r *UnifiedViewRepository) Query(_ context.Context, sport string, season int, filter unified.Filter) ([]unified.PlayerView, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rows := r.views[scopeKey(sport, season)]
	out := make([]unified.PlayerView, 0, len(rows))
	for _, row := range rows {
		if filter.Team != "" && row.Team != filter.Team {
			continue
		}
		if filter.Position != "" && row.Position != filter.Position {
			continue
		}
		out = append(out, row)
	}

	return out, nil
}
