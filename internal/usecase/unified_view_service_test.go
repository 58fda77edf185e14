package usecase

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/gridironlab/rosterlink/internal/domain/defense"
	"github.com/gridironlab/rosterlink/internal/domain/espnplayer"
	"github.com/gridironlab/rosterlink/internal/domain/fpplayer"
	"github.com/gridironlab/rosterlink/internal/domain/ranking"
	"github.com/gridironlab/rosterlink/internal/domain/schedule"
	"github.com/gridironlab/rosterlink/internal/domain/unified"
	"github.com/gridironlab/rosterlink/internal/infrastructure/repository/memory"
)

type unifiedFixture struct {
	svc           *UnifiedViewService
	crosswalkSvc  *CrosswalkService
	espnRepo      *memory.EspnPlayerRepository
	fpRepo        *memory.FpPlayerRepository
	rankingRepo   *memory.RankingRepository
	scheduleRepo  *memory.ScheduleRepository
	defenseRepo   *memory.DefenseRepository
	crosswalkRepo *memory.CrosswalkRepository
	viewRepo      *memory.UnifiedViewRepository
}

func newUnifiedFixture() unifiedFixture {
	espnRepo := memory.NewEspnPlayerRepository()
	fpRepo := memory.NewFpPlayerRepository()
	rankingRepo := memory.NewRankingRepository()
	scheduleRepo := memory.NewScheduleRepository()
	defenseRepo := memory.NewDefenseRepository()
	crosswalkRepo := memory.NewCrosswalkRepository()
	viewRepo := memory.NewUnifiedViewRepository()

	return unifiedFixture{
		svc: NewUnifiedViewService(
			crosswalkRepo, espnRepo, fpRepo, rankingRepo, scheduleRepo, defenseRepo, viewRepo, 2,
		),
		crosswalkSvc:  NewCrosswalkService(espnRepo, fpRepo, crosswalkRepo),
		espnRepo:      espnRepo,
		fpRepo:        fpRepo,
		rankingRepo:   rankingRepo,
		scheduleRepo:  scheduleRepo,
		defenseRepo:   defenseRepo,
		crosswalkRepo: crosswalkRepo,
		viewRepo:      viewRepo,
	}
}

func intPtr(v int) *int { return &v }

func (f unifiedFixture) seedMatchedPlayer(t *testing.T) {
	t.Helper()
	ctx := context.Background()

	espnRec := espnplayer.Record{
		Sport:          "football",
		Season:         2025,
		ESPNID:         100,
		FullName:       "Justin Jefferson",
		Team:           "MIN",
		Position:       "WR",
		Jersey:         "18",
		InjuryStatus:   "ACTIVE",
		PercentOwned:   99.8,
		PercentStarted: 97.1,
		AvgPoints:      19.4,
		TotalPoints:    291.0,
		OutlookText:    "Elite target share.",
		OutlookWeek:    intPtr(12),
		FetchedAt:      time.Date(2025, 11, 20, 0, 0, 0, 0, time.UTC),
	}
	newsDate := time.Date(2025, 11, 19, 15, 0, 0, 0, time.UTC)
	fpRec := fpplayer.Record{
		Sport:        "football",
		Season:       2025,
		FPID:         "fp-55",
		FullName:     "Justin Jefferson",
		Team:         "Minnesota Vikings",
		Position:     "WR",
		NewsHeadline: "Jefferson torches Bears",
		NewsAnalysis: "Locked-in WR1 rest of season.",
		NewsDate:     &newsDate,
		FetchedAt:    time.Date(2025, 11, 20, 0, 0, 0, 0, time.UTC),
	}
	if _, err := f.espnRepo.BulkUpsert(ctx, []espnplayer.Record{espnRec}); err != nil {
		t.Fatalf("seed espn: %v", err)
	}
	if _, err := f.fpRepo.BulkUpsert(ctx, []fpplayer.Record{fpRec}); err != nil {
		t.Fatalf("seed fp: %v", err)
	}
	if _, err := f.crosswalkSvc.ResolveCrosswalk(ctx, "football", 2025); err != nil {
		t.Fatalf("resolve: %v", err)
	}
}

func TestUnifiedViewService_Refresh_CoalescesBothSources(t *testing.T) {
	t.Parallel()

	f := newUnifiedFixture()
	ctx := context.Background()
	f.seedMatchedPlayer(t)

	result, err := f.svc.RefreshUnifiedView(ctx)
	if err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	if !result.Success || result.RowCount != 1 {
		t.Fatalf("result = %+v, want success with 1 row", result)
	}

	views, err := f.svc.GetUnifiedView(ctx, "football", 2025, unified.Filter{})
	if err != nil {
		t.Fatalf("get view: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("views = %d, want 1", len(views))
	}

	row := views[0]
	if row.FullName != "Justin Jefferson" || row.Team != "MIN" || row.Position != "WR" {
		t.Fatalf("identity = %q/%q/%q, want roster-provider values", row.FullName, row.Team, row.Position)
	}
	if row.InjuryStatus != "ACTIVE" || row.PercentOwned != 99.8 {
		t.Fatalf("ownership fields not taken from roster side: %+v", row)
	}
	if row.NewsHeadline != "Jefferson torches Bears" {
		t.Fatalf("news headline = %q, want rankings-provider value", row.NewsHeadline)
	}
	if row.ESPNID == nil || *row.ESPNID != 100 || row.FPID == nil || *row.FPID != "fp-55" {
		t.Fatalf("provider ids not carried: %+v", row)
	}
	if row.MatchConfidence != 1.0 {
		t.Fatalf("confidence = %v, want 1.0", row.MatchConfidence)
	}
}

func TestUnifiedViewService_Refresh_PicksLatestWeekWithSeasonFallback(t *testing.T) {
	t.Parallel()

	f := newUnifiedFixture()
	ctx := context.Background()
	f.seedMatchedPlayer(t)

	rankings := []ranking.WeeklyRanking{
		{Sport: "football", Season: 2025, FPID: "fp-55", RankType: "WEEKLY", ScoringType: "STD", Week: nil, Rank: 3},
		{Sport: "football", Season: 2025, FPID: "fp-55", RankType: "WEEKLY", ScoringType: "STD", Week: intPtr(10), Rank: 5},
		{Sport: "football", Season: 2025, FPID: "fp-55", RankType: "WEEKLY", ScoringType: "STD", Week: intPtr(12), Rank: 2},
	}
	if _, err := f.rankingRepo.BulkUpsertRankings(ctx, rankings); err != nil {
		t.Fatalf("seed rankings: %v", err)
	}
	projections := []ranking.WeeklyProjection{
		{Sport: "football", Season: 2025, FPID: "fp-55", ScoringType: "STD", Week: nil, Points: 260.0},
	}
	if _, err := f.rankingRepo.BulkUpsertProjections(ctx, projections); err != nil {
		t.Fatalf("seed projections: %v", err)
	}

	if _, err := f.svc.RefreshUnifiedView(ctx); err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	views, _ := f.svc.GetUnifiedView(ctx, "football", 2025, unified.Filter{})
	row := views[0]

	if row.WeeklyRank == nil || *row.WeeklyRank != 2 {
		t.Fatalf("weekly rank = %v, want 2 from week 12", row.WeeklyRank)
	}
	if row.RankWeek == nil || *row.RankWeek != 12 {
		t.Fatalf("rank week = %v, want 12", row.RankWeek)
	}
	// Only a season-level projection exists, so it is the fallback.
	if row.ProjectedPoints == nil || *row.ProjectedPoints != 260.0 {
		t.Fatalf("projected points = %v, want season fallback 260.0", row.ProjectedPoints)
	}
	if row.ProjectionWeek != nil {
		t.Fatalf("projection week = %v, want nil for season row", row.ProjectionWeek)
	}
}

func TestUnifiedViewService_Refresh_ResolvesOpponentAndOprk(t *testing.T) {
	t.Parallel()

	f := newUnifiedFixture()
	ctx := context.Background()
	f.seedMatchedPlayer(t)

	matchups := []schedule.Matchup{
		{Season: 2025, Week: 11, Team: "MIN", Opponent: "CHI", IsHome: false, KickoffAt: time.Date(2025, 11, 16, 18, 0, 0, 0, time.UTC)},
		{Season: 2025, Week: 12, Team: "MIN", Opponent: "Green Bay Packers", IsHome: true, KickoffAt: time.Date(2025, 11, 23, 18, 0, 0, 0, time.UTC)},
	}
	if _, err := f.scheduleRepo.BulkUpsert(ctx, matchups); err != nil {
		t.Fatalf("seed schedule: %v", err)
	}
	stats := []defense.VsPositionStat{
		{Sport: "football", Season: 2025, Week: intPtr(12), DefenseTeam: "GB", Position: "WR", ScoringType: "HALF", Rank: 21, AvgPointsAllowed: 24.1},
		{Sport: "football", Season: 2025, Week: intPtr(12), DefenseTeam: "GB", Position: "WR", ScoringType: "PPR", Rank: 25, AvgPointsAllowed: 28.9},
	}
	if _, err := f.defenseRepo.BulkUpsertVsPosition(ctx, stats); err != nil {
		t.Fatalf("seed vs position: %v", err)
	}

	if _, err := f.svc.RefreshUnifiedView(ctx); err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	views, _ := f.svc.GetUnifiedView(ctx, "football", 2025, unified.Filter{})
	row := views[0]

	if row.Opponent != "GB" {
		t.Fatalf("opponent = %q, want GB from latest week", row.Opponent)
	}
	if row.OpponentWeek == nil || *row.OpponentWeek != 12 {
		t.Fatalf("opponent week = %v, want 12", row.OpponentWeek)
	}
	if row.OpponentIsHome == nil || !*row.OpponentIsHome {
		t.Fatalf("is home = %v, want true", row.OpponentIsHome)
	}
	// No standard-scoring row exists, so half-PPR is next in priority.
	if row.OpponentRank == nil || *row.OpponentRank != 21 {
		t.Fatalf("opponent rank = %v, want 21", row.OpponentRank)
	}
	if row.OprkScoringType != "HALF" {
		t.Fatalf("oprk scoring = %q, want HALF", row.OprkScoringType)
	}
}

func TestUnifiedViewService_Refresh_IsReentrant(t *testing.T) {
	t.Parallel()

	f := newUnifiedFixture()
	ctx := context.Background()
	f.seedMatchedPlayer(t)

	fixedNow := time.Date(2025, 11, 21, 12, 0, 0, 0, time.UTC)
	f.svc.now = func() time.Time { return fixedNow }

	if _, err := f.svc.RefreshUnifiedView(ctx); err != nil {
		t.Fatalf("first refresh failed: %v", err)
	}
	first, _ := f.svc.GetUnifiedView(ctx, "football", 2025, unified.Filter{})

	if _, err := f.svc.RefreshUnifiedView(ctx); err != nil {
		t.Fatalf("second refresh failed: %v", err)
	}
	second, _ := f.svc.GetUnifiedView(ctx, "football", 2025, unified.Filter{})

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("refresh not re-entrant:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestUnifiedViewService_GetUnifiedView_Filters(t *testing.T) {
	t.Parallel()

	f := newUnifiedFixture()
	ctx := context.Background()
	f.seedMatchedPlayer(t)

	other := espnplayer.Record{
		Sport:     "football",
		Season:    2025,
		ESPNID:    101,
		FullName:  "Jordan Love",
		Team:      "GB",
		Position:  "QB",
		FetchedAt: time.Date(2025, 11, 20, 0, 0, 0, 0, time.UTC),
	}
	if _, err := f.espnRepo.BulkUpsert(ctx, []espnplayer.Record{other}); err != nil {
		t.Fatalf("seed espn: %v", err)
	}
	if _, err := f.crosswalkSvc.ResolveCrosswalk(ctx, "football", 2025); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if _, err := f.svc.RefreshUnifiedView(ctx); err != nil {
		t.Fatalf("refresh failed: %v", err)
	}

	all, err := f.svc.GetUnifiedView(ctx, "football", 2025, unified.Filter{})
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("all = %d rows, want 2", len(all))
	}
	// Ordered by full name.
	if all[0].FullName != "Jordan Love" || all[1].FullName != "Justin Jefferson" {
		t.Fatalf("order = %q, %q; want name order", all[0].FullName, all[1].FullName)
	}

	// Team filter accepts any known alias.
	vikings, err := f.svc.GetUnifiedView(ctx, "football", 2025, unified.Filter{Team: "Minnesota Vikings"})
	if err != nil {
		t.Fatalf("get filtered: %v", err)
	}
	if len(vikings) != 1 || vikings[0].FullName != "Justin Jefferson" {
		t.Fatalf("team filter = %+v, want only Jefferson", vikings)
	}

	qbs, err := f.svc.GetUnifiedView(ctx, "football", 2025, unified.Filter{Position: "QB"})
	if err != nil {
		t.Fatalf("get position filtered: %v", err)
	}
	if len(qbs) != 1 || qbs[0].FullName != "Jordan Love" {
		t.Fatalf("position filter = %+v, want only Love", qbs)
	}
}

func TestUnifiedViewService_GetUnifiedView_RejectsBadScope(t *testing.T) {
	t.Parallel()

	f := newUnifiedFixture()
	if _, err := f.svc.GetUnifiedView(context.Background(), "", 2025, unified.Filter{}); err == nil {
		t.Fatal("expected error for empty sport")
	}
	if _, err := f.svc.GetUnifiedView(context.Background(), "football", 0, unified.Filter{}); err == nil {
		t.Fatal("expected error for zero season")
	}
}
