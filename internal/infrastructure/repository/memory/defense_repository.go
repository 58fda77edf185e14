package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/gridironlab/rosterlink/internal/domain/defense"
)

type DefenseRepository struct {
	mu         sync.RWMutex
	teamStats  map[string]defense.TeamStat
	vsPosition map[string]defense.VsPositionStat
}

func NewDefenseRepository() *DefenseRepository {
	return &DefenseRepository{
		teamStats:  make(map[string]defense.TeamStat),
		vsPosition: make(map[string]defense.VsPositionStat),
	}
}

func teamStatKey(s defense.TeamStat) string {
	return fmt.Sprintf("%d|%d|%s", s.Season, weekKey(s.Week), s.Team)
}

func vsPositionKey(s defense.VsPositionStat) string {
	return fmt.Sprintf("%s|%d|%d|%s|%s|%s", s.Sport, s.Season, weekKey(s.Week), s.DefenseTeam, s.Position, s.ScoringType)
}

func (r *DefenseRepository) BulkUpsertTeamStats(_ context.Context, stats []defense.TeamStat) (defense.UpsertResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result defense.UpsertResult
	for _, stat := range stats {
		key := teamStatKey(stat)
		if _, ok := r.teamStats[key]; ok {
			result.Updated++
		} else {
			result.Inserted++
		}
		r.teamStats[key] = stat
	}

	return result, nil
}

func (r *DefenseRepository) ListTeamStats(_ context.Context, season int, week *int) ([]defense.TeamStat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]defense.TeamStat, 0)
	for _, stat := range r.teamStats {
		if stat.Season != season {
			continue
		}
		if weekKey(stat.Week) != weekKey(week) {
			continue
		}
		out = append(out, stat)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Team < out[j].Team })

	return out, nil
}

func (r *DefenseRepository) BulkUpsertVsPosition(_ context.Context, stats []defense.VsPositionStat) (defense.UpsertResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result defense.UpsertResult
	for _, stat := range stats {
		key := vsPositionKey(stat)
		if _, ok := r.vsPosition[key]; ok {
			result.Updated++
		} else {
			result.Inserted++
		}
		r.vsPosition[key] = stat
	}

	return result, nil
}

func (r *DefenseRepository) ListVsPositionBySeason(_ context.Context, sport string, season int) ([]defense.VsPositionStat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]defense.VsPositionStat, 0)
	for _, stat := range r.vsPosition {
		if stat.Sport != sport || stat.Season != season {
			continue
		}
		out = append(out, stat)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DefenseTeam != out[j].DefenseTeam {
			return out[i].DefenseTeam < out[j].DefenseTeam
		}
		if out[i].Position != out[j].Position {
			return out[i].Position < out[j].Position
		}
		return out[i].ScoringType < out[j].ScoringType
	})

	return out, nil
}
