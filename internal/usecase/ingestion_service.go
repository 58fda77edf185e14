package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/gridironlab/rosterlink/internal/domain/defense"
	"github.com/gridironlab/rosterlink/internal/domain/espnplayer"
	"github.com/gridironlab/rosterlink/internal/domain/fpplayer"
	"github.com/gridironlab/rosterlink/internal/domain/ranking"
	"github.com/gridironlab/rosterlink/internal/domain/schedule"
	"github.com/gridironlab/rosterlink/internal/platform/cache"
)

// IngestionService receives provider payloads and writes them through the
// idempotent bulk upserts. Every write invalidates the cached reads derived
// from that table.
type IngestionService struct {
	espnRepo     espnplayer.Repository
	fpRepo       fpplayer.Repository
	defenseRepo  defense.Repository
	rankingRepo  ranking.Repository
	scheduleRepo schedule.Repository
	readCache    *cache.Store
}

func NewIngestionService(
	espnRepo espnplayer.Repository,
	fpRepo fpplayer.Repository,
	defenseRepo defense.Repository,
	rankingRepo ranking.Repository,
	scheduleRepo schedule.Repository,
	readCache *cache.Store,
) *IngestionService {
	return &IngestionService{
		espnRepo:     espnRepo,
		fpRepo:       fpRepo,
		defenseRepo:  defenseRepo,
		rankingRepo:  rankingRepo,
		scheduleRepo: scheduleRepo,
		readCache:    readCache,
	}
}

func (s *IngestionService) IngestEspnPlayers(ctx context.Context, records []espnplayer.Record) (espnplayer.UpsertResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.IngestionService.IngestEspnPlayers")
	defer span.End()

	if len(records) == 0 {
		return espnplayer.UpsertResult{}, fmt.Errorf("%w: espn player records are required", ErrInvalidInput)
	}
	for idx := range records {
		records[idx].Sport = strings.TrimSpace(strings.ToLower(records[idx].Sport))
		records[idx].FullName = strings.TrimSpace(records[idx].FullName)
		records[idx].Team = strings.TrimSpace(records[idx].Team)
		records[idx].Position = strings.TrimSpace(records[idx].Position)
		if err := records[idx].Validate(); err != nil {
			return espnplayer.UpsertResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}

	result, err := s.espnRepo.BulkUpsert(ctx, records)
	if err != nil {
		return result, fmt.Errorf("upsert espn players: %w", err)
	}

	return result, nil
}

func (s *IngestionService) IngestFpPlayers(ctx context.Context, records []fpplayer.Record) (fpplayer.UpsertResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.IngestionService.IngestFpPlayers")
	defer span.End()

	if len(records) == 0 {
		return fpplayer.UpsertResult{}, fmt.Errorf("%w: fp player records are required", ErrInvalidInput)
	}
	for idx := range records {
		records[idx].Sport = strings.TrimSpace(strings.ToLower(records[idx].Sport))
		records[idx].FPID = strings.TrimSpace(records[idx].FPID)
		records[idx].FullName = strings.TrimSpace(records[idx].FullName)
		records[idx].Team = strings.TrimSpace(records[idx].Team)
		records[idx].Position = strings.TrimSpace(records[idx].Position)
		if err := records[idx].Validate(); err != nil {
			return fpplayer.UpsertResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}

	result, err := s.fpRepo.BulkUpsert(ctx, records)
	if err != nil {
		return result, fmt.Errorf("upsert fp players: %w", err)
	}

	return result, nil
}

func (s *IngestionService) IngestDefenseTeamStats(ctx context.Context, stats []defense.TeamStat) (defense.UpsertResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.IngestionService.IngestDefenseTeamStats")
	defer span.End()

	if len(stats) == 0 {
		return defense.UpsertResult{}, fmt.Errorf("%w: defense team stats are required", ErrInvalidInput)
	}
	for idx := range stats {
		stats[idx].Team = strings.TrimSpace(stats[idx].Team)
		if err := stats[idx].Validate(); err != nil {
			return defense.UpsertResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}

	result, err := s.defenseRepo.BulkUpsertTeamStats(ctx, stats)
	if err != nil {
		return result, fmt.Errorf("upsert defense team stats: %w", err)
	}
	s.invalidate(ctx, "defense:")

	return result, nil
}

func (s *IngestionService) IngestDefenseVsPosition(ctx context.Context, stats []defense.VsPositionStat) (defense.UpsertResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.IngestionService.IngestDefenseVsPosition")
	defer span.End()

	if len(stats) == 0 {
		return defense.UpsertResult{}, fmt.Errorf("%w: defense vs position stats are required", ErrInvalidInput)
	}
	for idx := range stats {
		stats[idx].Sport = strings.TrimSpace(strings.ToLower(stats[idx].Sport))
		stats[idx].DefenseTeam = strings.TrimSpace(stats[idx].DefenseTeam)
		stats[idx].Position = strings.TrimSpace(strings.ToUpper(stats[idx].Position))
		stats[idx].ScoringType = strings.TrimSpace(strings.ToUpper(stats[idx].ScoringType))
		if err := stats[idx].Validate(); err != nil {
			return defense.UpsertResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}

	result, err := s.defenseRepo.BulkUpsertVsPosition(ctx, stats)
	if err != nil {
		return result, fmt.Errorf("upsert defense vs position stats: %w", err)
	}
	s.invalidate(ctx, "defense:")

	return result, nil
}

func (s *IngestionService) IngestWeeklyRankings(ctx context.Context, items []ranking.WeeklyRanking) (ranking.UpsertResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.IngestionService.IngestWeeklyRankings")
	defer span.End()

	if len(items) == 0 {
		return ranking.UpsertResult{}, fmt.Errorf("%w: weekly rankings are required", ErrInvalidInput)
	}
	for idx := range items {
		items[idx].Sport = strings.TrimSpace(strings.ToLower(items[idx].Sport))
		items[idx].FPID = strings.TrimSpace(items[idx].FPID)
		items[idx].RankType = strings.TrimSpace(strings.ToUpper(items[idx].RankType))
		items[idx].ScoringType = strings.TrimSpace(strings.ToUpper(items[idx].ScoringType))
		if err := items[idx].Validate(); err != nil {
			return ranking.UpsertResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}

	result, err := s.rankingRepo.BulkUpsertRankings(ctx, items)
	if err != nil {
		return result, fmt.Errorf("upsert weekly rankings: %w", err)
	}

	return result, nil
}

func (s *IngestionService) IngestWeeklyProjections(ctx context.Context, items []ranking.WeeklyProjection) (ranking.UpsertResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.IngestionService.IngestWeeklyProjections")
	defer span.End()

	if len(items) == 0 {
		return ranking.UpsertResult{}, fmt.Errorf("%w: weekly projections are required", ErrInvalidInput)
	}
	for idx := range items {
		items[idx].Sport = strings.TrimSpace(strings.ToLower(items[idx].Sport))
		items[idx].FPID = strings.TrimSpace(items[idx].FPID)
		items[idx].ScoringType = strings.TrimSpace(strings.ToUpper(items[idx].ScoringType))
		if err := items[idx].Validate(); err != nil {
			return ranking.UpsertResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}

	result, err := s.rankingRepo.BulkUpsertProjections(ctx, items)
	if err != nil {
		return result, fmt.Errorf("upsert weekly projections: %w", err)
	}

	return result, nil
}

func (s *IngestionService) IngestSchedule(ctx context.Context, items []schedule.Matchup) (schedule.UpsertResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.IngestionService.IngestSchedule")
	defer span.End()

	if len(items) == 0 {
		return schedule.UpsertResult{}, fmt.Errorf("%w: schedule matchups are required", ErrInvalidInput)
	}
	for idx := range items {
		items[idx].Team = strings.TrimSpace(items[idx].Team)
		items[idx].Opponent = strings.TrimSpace(items[idx].Opponent)
		items[idx].KickoffAt = items[idx].KickoffAt.UTC()
		if err := items[idx].Validate(); err != nil {
			return schedule.UpsertResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}

	result, err := s.scheduleRepo.BulkUpsert(ctx, items)
	if err != nil {
		return result, fmt.Errorf("upsert schedule matchups: %w", err)
	}

	return result, nil
}

func (s *IngestionService) invalidate(ctx context.Context, prefix string) {
	if s.readCache == nil {
		return
	}
	s.readCache.DeletePrefix(ctx, prefix)
}
