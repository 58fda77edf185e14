package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/gridironlab/rosterlink/internal/domain/ranking"
)

type RankingRepository struct {
	mu          sync.RWMutex
	rankings    map[string]ranking.WeeklyRanking
	projections map[string]ranking.WeeklyProjection
}

func NewRankingRepository() *RankingRepository {
	return &RankingRepository{
		rankings:    make(map[string]ranking.WeeklyRanking),
		projections: make(map[string]ranking.WeeklyProjection),
	}
}

func rankingKey(item ranking.WeeklyRanking) string {
	return fmt.Sprintf("%s|%d|%s|%s|%s|%d", item.Sport, item.Season, item.FPID, item.RankType, item.ScoringType, weekKey(item.Week))
}

func projectionKey(item ranking.WeeklyProjection) string {
	return fmt.Sprintf("%s|%d|%s|%s|%d", item.Sport, item.Season, item.FPID, item.ScoringType, weekKey(item.Week))
}

func (r *RankingRepository) BulkUpsertRankings(_ context.Context, items []ranking.WeeklyRanking) (ranking.UpsertResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result ranking.UpsertResult
	for _, item := range items {
		key := rankingKey(item)
		if _, ok := r.rankings[key]; ok {
			result.Updated++
		} else {
			result.Inserted++
		}
		r.rankings[key] = item
	}

	return result, nil
}

func (r *RankingRepository) BulkUpsertProjections(_ context.Context, items []ranking.WeeklyProjection) (ranking.UpsertResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result ranking.UpsertResult
	for _, item := range items {
		key := projectionKey(item)
		if _, ok := r.projections[key]; ok {
			result.Updated++
		} else {
			result.Inserted++
		}
		r.projections[key] = item
	}

	return result, nil
}

func (r *RankingRepository) ListRankingsBySeason(_ context.Context, sport string, season int) ([]ranking.WeeklyRanking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]ranking.WeeklyRanking, 0)
	for _, item := range r.rankings {
		if item.Sport != sport || item.Season != season {
			continue
		}
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].FPID != out[j].FPID {
			return out[i].FPID < out[j].FPID
		}
		if out[i].RankType != out[j].RankType {
			return out[i].RankType < out[j].RankType
		}
		if out[i].ScoringType != out[j].ScoringType {
			return out[i].ScoringType < out[j].ScoringType
		}
		return weekKey(out[i].Week) < weekKey(out[j].Week)
	})

	return out, nil
}

func (r *RankingRepository) ListProjectionsBySeason(_ context.Context, sport string, season int) ([]ranking.WeeklyProjection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]ranking.WeeklyProjection, 0)
	for _, item := range r.projections {
		if item.Sport != sport || item.Season != season {
			continue
		}
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].FPID != out[j].FPID {
			return out[i].FPID < out[j].FPID
		}
		if out[i].ScoringType != out[j].ScoringType {
			return out[i].ScoringType < out[j].ScoringType
		}
		return weekKey(out[i].Week) < weekKey(out[j].Week)
	})

	return out, nil
}
