package usecase

import (
	"context"
	"fmt"

	"github.com/gridironlab/rosterlink/internal/domain/defense"
	"github.com/gridironlab/rosterlink/internal/platform/cache"
)

// DefenseRankingService serves the points-allowed ranking map. Computation is
// pure; reads go through the TTL cache so repeated lookups within a scrape
// window hit memory.
type DefenseRankingService struct {
	defenseRepo defense.Repository
	readCache   *cache.Store
}

func NewDefenseRankingService(defenseRepo defense.Repository, readCache *cache.Store) *DefenseRankingService {
	return &DefenseRankingService{
		defenseRepo: defenseRepo,
		readCache:   readCache,
	}
}

func (s *DefenseRankingService) GetRankings(ctx context.Context, season int, week *int) (map[string]int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DefenseRankingService.GetRankings")
	defer span.End()

	if season <= 0 {
		return nil, fmt.Errorf("%w: season must be greater than zero", ErrInvalidInput)
	}

	key := rankingsCacheKey(season, week)
	load := func(ctx context.Context) (any, error) {
		stats, err := s.defenseRepo.ListTeamStats(ctx, season, week)
		if err != nil {
			return nil, fmt.Errorf("list defense team stats: %w", err)
		}
		return defense.ComputeRankings(stats), nil
	}

	if s.readCache == nil {
		value, err := load(ctx)
		if err != nil {
			return nil, err
		}
		return value.(map[string]int), nil
	}

	value, err := s.readCache.GetOrLoad(ctx, key, load)
	if err != nil {
		return nil, err
	}

	return value.(map[string]int), nil
}

func rankingsCacheKey(season int, week *int) string {
	if week == nil {
		return fmt.Sprintf("defense:rankings:%d:season", season)
	}
	return fmt.Sprintf("defense:rankings:%d:%d", season, *week)
}
