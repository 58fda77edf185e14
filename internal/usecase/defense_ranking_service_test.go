package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gridironlab/rosterlink/internal/domain/defense"
	"github.com/gridironlab/rosterlink/internal/infrastructure/repository/memory"
	"github.com/gridironlab/rosterlink/internal/platform/cache"
)

func TestDefenseRankingService_GetRankings(t *testing.T) {
	t.Parallel()

	repo := memory.NewDefenseRepository()
	svc := NewDefenseRankingService(repo, cache.NewStore(time.Minute))
	ctx := context.Background()

	stats := []defense.TeamStat{
		{Season: 2025, Team: "San Francisco 49ers", PointsAllowed: 160, GamesPlayed: 10},
		{Season: 2025, Team: "MIN", PointsAllowed: 200, GamesPlayed: 10},
		{Season: 2025, Team: "Chicago Bears", PointsAllowed: 280, GamesPlayed: 10},
	}
	if _, err := repo.BulkUpsertTeamStats(ctx, stats); err != nil {
		t.Fatalf("seed stats: %v", err)
	}

	rankings, err := svc.GetRankings(ctx, 2025, nil)
	if err != nil {
		t.Fatalf("get rankings: %v", err)
	}

	if rankings["SF"] != 1 || rankings["MIN"] != 2 || rankings["CHI"] != 3 {
		t.Fatalf("rankings = %v, want SF=1 MIN=2 CHI=3", rankings)
	}
	// Aliases share the canonical team's rank.
	if rankings["San Francisco 49ers"] != 1 || rankings["Bears"] != 3 {
		t.Fatalf("alias fan-out missing: %v", rankings)
	}
}

func TestDefenseRankingService_GetRankings_CachesResult(t *testing.T) {
	t.Parallel()

	repo := memory.NewDefenseRepository()
	svc := NewDefenseRankingService(repo, cache.NewStore(time.Minute))
	ctx := context.Background()

	seed := []defense.TeamStat{{Season: 2025, Team: "MIN", PointsAllowed: 200, GamesPlayed: 10}}
	if _, err := repo.BulkUpsertTeamStats(ctx, seed); err != nil {
		t.Fatalf("seed stats: %v", err)
	}
	if _, err := svc.GetRankings(ctx, 2025, nil); err != nil {
		t.Fatalf("first read: %v", err)
	}

	// A write bypassing the ingestion path is not visible until the cache
	// entry expires or is invalidated.
	extra := []defense.TeamStat{{Season: 2025, Team: "SF", PointsAllowed: 100, GamesPlayed: 10}}
	if _, err := repo.BulkUpsertTeamStats(ctx, extra); err != nil {
		t.Fatalf("seed extra: %v", err)
	}
	cached, err := svc.GetRankings(ctx, 2025, nil)
	if err != nil {
		t.Fatalf("cached read: %v", err)
	}
	if _, ok := cached["SF"]; ok {
		t.Fatalf("expected cached rankings without SF, got %v", cached)
	}
}

func TestDefenseRankingService_GetRankings_WeekScopesAreIndependent(t *testing.T) {
	t.Parallel()

	repo := memory.NewDefenseRepository()
	svc := NewDefenseRankingService(repo, cache.NewStore(time.Minute))
	ctx := context.Background()

	week := 5
	stats := []defense.TeamStat{
		{Season: 2025, Team: "MIN", PointsAllowed: 200, GamesPlayed: 10},
		{Season: 2025, Week: &week, Team: "GB", PointsAllowed: 17, GamesPlayed: 1},
	}
	if _, err := repo.BulkUpsertTeamStats(ctx, stats); err != nil {
		t.Fatalf("seed stats: %v", err)
	}

	season, err := svc.GetRankings(ctx, 2025, nil)
	if err != nil {
		t.Fatalf("season read: %v", err)
	}
	if _, ok := season["GB"]; ok {
		t.Fatalf("season rankings include weekly row: %v", season)
	}

	weekly, err := svc.GetRankings(ctx, 2025, &week)
	if err != nil {
		t.Fatalf("weekly read: %v", err)
	}
	if weekly["GB"] != 1 {
		t.Fatalf("weekly rankings = %v, want GB=1", weekly)
	}
}

func TestDefenseRankingService_GetRankings_RejectsZeroSeason(t *testing.T) {
	t.Parallel()

	svc := NewDefenseRankingService(memory.NewDefenseRepository(), nil)
	if _, err := svc.GetRankings(context.Background(), 0, nil); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
