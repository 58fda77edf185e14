package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/gridironlab/rosterlink/internal/domain/crosswalk"
	"github.com/gridironlab/rosterlink/internal/domain/defense"
	"github.com/gridironlab/rosterlink/internal/domain/espnplayer"
	"github.com/gridironlab/rosterlink/internal/domain/fpplayer"
	"github.com/gridironlab/rosterlink/internal/domain/normalize"
	"github.com/gridironlab/rosterlink/internal/domain/ranking"
	"github.com/gridironlab/rosterlink/internal/domain/schedule"
	"github.com/gridironlab/rosterlink/internal/domain/unified"
	"github.com/gridironlab/rosterlink/internal/platform/resilience"
)

const defaultRefreshWorkers = 4

// UnifiedViewService materializes the denormalized player view: one row per
// crosswalk entry, joined against both catalogs and the weekly side tables.
type UnifiedViewService struct {
	crosswalkRepo crosswalk.Repository
	espnRepo      espnplayer.Repository
	fpRepo        fpplayer.Repository
	rankingRepo   ranking.Repository
	scheduleRepo  schedule.Repository
	defenseRepo   defense.Repository
	viewRepo      unified.Repository

	maxWorkers int
	flight     resilience.SingleFlight
	now        func() time.Time
}

func NewUnifiedViewService(
	crosswalkRepo crosswalk.Repository,
	espnRepo espnplayer.Repository,
	fpRepo fpplayer.Repository,
	rankingRepo ranking.Repository,
	scheduleRepo schedule.Repository,
	defenseRepo defense.Repository,
	viewRepo unified.Repository,
	maxWorkers int,
) *UnifiedViewService {
	if maxWorkers <= 0 {
		maxWorkers = defaultRefreshWorkers
	}
	return &UnifiedViewService{
		crosswalkRepo: crosswalkRepo,
		espnRepo:      espnRepo,
		fpRepo:        fpRepo,
		rankingRepo:   rankingRepo,
		scheduleRepo:  scheduleRepo,
		defenseRepo:   defenseRepo,
		viewRepo:      viewRepo,
		maxWorkers:    maxWorkers,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// RefreshUnifiedView rebuilds every (sport, season) partition that has
// crosswalk entries. Scopes fan out across a bounded worker pool; concurrent
// refreshes of the same scope collapse to one rebuild. Each partition is
// swapped atomically, so a failed scope keeps serving its previous rows.
func (s *UnifiedViewService) RefreshUnifiedView(ctx context.Context) (unified.RefreshResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.UnifiedViewService.RefreshUnifiedView")
	defer span.End()

	scopes, err := s.crosswalkRepo.ListScopes(ctx)
	if err != nil {
		return unified.RefreshResult{Error: err.Error()}, fmt.Errorf("list crosswalk scopes: %w", err)
	}
	if len(scopes) == 0 {
		return unified.RefreshResult{Success: true}, nil
	}

	pool, err := ants.NewPool(s.maxWorkers)
	if err != nil {
		return unified.RefreshResult{Error: err.Error()}, fmt.Errorf("create refresh worker pool: %w", err)
	}
	defer pool.Release()

	var mu sync.Mutex
	var workers sync.WaitGroup
	totalRows := 0
	var firstErr error

	for _, scope := range scopes {
		scope := scope
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			count, scopeErr := s.refreshScope(ctx, scope.Sport, scope.Season)

			mu.Lock()
			defer mu.Unlock()
			if scopeErr != nil {
				if firstErr == nil {
					firstErr = fmt.Errorf("refresh scope %s/%d: %w", scope.Sport, scope.Season, scopeErr)
				}
				return
			}
			totalRows += count
		}); err != nil {
			workers.Done()
			return unified.RefreshResult{Error: err.Error()}, fmt.Errorf("submit refresh task: %w", err)
		}
	}
	workers.Wait()

	if firstErr != nil {
		return unified.RefreshResult{RowCount: totalRows, Error: firstErr.Error()}, firstErr
	}

	return unified.RefreshResult{Success: true, RowCount: totalRows}, nil
}

func (s *UnifiedViewService) refreshScope(ctx context.Context, sport string, season int) (int, error) {
	value, err, _ := s.flight.Do(fmt.Sprintf("refresh:%s:%d", sport, season), func() (any, error) {
		rows, err := s.buildScope(ctx, sport, season)
		if err != nil {
			return 0, err
		}
		if err := s.viewRepo.ReplaceScope(ctx, sport, season, rows); err != nil {
			return 0, fmt.Errorf("replace unified views: %w", err)
		}
		return len(rows), nil
	})
	if err != nil {
		return 0, err
	}

	return value.(int), nil
}

func (s *UnifiedViewService) buildScope(ctx context.Context, sport string, season int) ([]unified.PlayerView, error) {
	entries, err := s.crosswalkRepo.ListBySeason(ctx, sport, season)
	if err != nil {
		return nil, fmt.Errorf("list crosswalk entries: %w", err)
	}
	espnRecords, err := s.espnRepo.ListBySeason(ctx, sport, season)
	if err != nil {
		return nil, fmt.Errorf("list espn players: %w", err)
	}
	fpRecords, err := s.fpRepo.ListBySeason(ctx, sport, season)
	if err != nil {
		return nil, fmt.Errorf("list fp players: %w", err)
	}
	rankings, err := s.rankingRepo.ListRankingsBySeason(ctx, sport, season)
	if err != nil {
		return nil, fmt.Errorf("list weekly rankings: %w", err)
	}
	projections, err := s.rankingRepo.ListProjectionsBySeason(ctx, sport, season)
	if err != nil {
		return nil, fmt.Errorf("list weekly projections: %w", err)
	}
	matchups, err := s.scheduleRepo.ListBySeason(ctx, season)
	if err != nil {
		return nil, fmt.Errorf("list schedule matchups: %w", err)
	}
	vsPosition, err := s.defenseRepo.ListVsPositionBySeason(ctx, sport, season)
	if err != nil {
		return nil, fmt.Errorf("list defense vs position stats: %w", err)
	}

	espnByID := make(map[int64]espnplayer.Record, len(espnRecords))
	for _, rec := range espnRecords {
		espnByID[rec.ESPNID] = rec
	}
	fpByID := make(map[string]fpplayer.Record, len(fpRecords))
	for _, rec := range fpRecords {
		fpByID[rec.FPID] = rec
	}

	bestRanking := make(map[string]ranking.WeeklyRanking)
	for _, item := range rankings {
		current, ok := bestRanking[item.FPID]
		if !ok || rankingBeats(item, current) {
			bestRanking[item.FPID] = item
		}
	}
	bestProjection := make(map[string]ranking.WeeklyProjection)
	for _, item := range projections {
		current, ok := bestProjection[item.FPID]
		if !ok || projectionBeats(item, current) {
			bestProjection[item.FPID] = item
		}
	}

	latestMatchup := make(map[string]schedule.Matchup)
	for _, m := range matchups {
		abbr, ok := normalize.Team(m.Team)
		if !ok {
			continue
		}
		current, seen := latestMatchup[abbr]
		if !seen || m.Week > current.Week {
			latestMatchup[abbr] = m
		}
	}

	latestOprk := make(map[string]defense.VsPositionStat)
	for _, stat := range vsPosition {
		abbr, ok := normalize.Team(stat.DefenseTeam)
		if !ok {
			continue
		}
		key := abbr + "|" + normalize.Position(stat.Position) + "|" + stat.ScoringType
		current, seen := latestOprk[key]
		if !seen || weekValue(stat.Week) > weekValue(current.Week) {
			latestOprk[key] = stat
		}
	}

	refreshedAt := s.now()
	rows := make([]unified.PlayerView, 0, len(entries))
	for _, entry := range entries {
		row := unified.PlayerView{
			Sport:           sport,
			Season:          season,
			CanonicalKey:    entry.CanonicalKey,
			ESPNID:          entry.ESPNID,
			FPID:            entry.FPID,
			MatchConfidence: entry.MatchConfidence,
			NeedsReview:     entry.NeedsReview,
			RefreshedAt:     refreshedAt,
		}

		var espnRec *espnplayer.Record
		if entry.ESPNID != nil {
			if rec, ok := espnByID[*entry.ESPNID]; ok {
				espnRec = &rec
			}
		}
		var fpRec *fpplayer.Record
		if entry.FPID != nil {
			if rec, ok := fpByID[*entry.FPID]; ok {
				fpRec = &rec
			}
		}
		if espnRec == nil && fpRec == nil {
			continue
		}

		applyIdentity(&row, espnRec, fpRec)
		applyNews(&row, espnRec, fpRec)

		if entry.FPID != nil {
			if item, ok := bestRanking[*entry.FPID]; ok {
				rank := item.Rank
				row.WeeklyRank = &rank
				row.RankScoringType = item.ScoringType
				row.RankWeek = item.Week
			}
			if item, ok := bestProjection[*entry.FPID]; ok {
				points := item.Points
				row.ProjectedPoints = &points
				row.ProjectionWeek = item.Week
			}
		}

		if m, ok := latestMatchup[row.Team]; ok {
			opponentAbbr, known := normalize.Team(m.Opponent)
			if !known {
				opponentAbbr = strings.ToUpper(strings.TrimSpace(m.Opponent))
			}
			week := m.Week
			isHome := m.IsHome
			kickoff := m.KickoffAt
			row.Opponent = opponentAbbr
			row.OpponentWeek = &week
			row.OpponentIsHome = &isHome
			row.KickoffAt = &kickoff

			applyOprk(&row, opponentAbbr, latestOprk)
		}

		rows = append(rows, row)
	}

	return rows, nil
}

// applyIdentity fills identity, ownership, and injury fields preferring the
// roster provider, field by field: an empty side never blanks the other.
func applyIdentity(row *unified.PlayerView, espnRec *espnplayer.Record, fpRec *fpplayer.Record) {
	if espnRec != nil {
		row.FullName = espnRec.FullName
		row.Team = espnRec.Team
		row.Position = espnRec.Position
		row.Jersey = espnRec.Jersey
		row.InjuryStatus = espnRec.InjuryStatus
		row.PercentOwned = espnRec.PercentOwned
		row.PercentStarted = espnRec.PercentStarted
		row.AvgPoints = espnRec.AvgPoints
		row.TotalPoints = espnRec.TotalPoints
		row.OutlookText = espnRec.OutlookText
		row.OutlookWeek = espnRec.OutlookWeek
	}
	if fpRec != nil {
		if row.FullName == "" {
			row.FullName = fpRec.FullName
		}
		if row.Team == "" {
			row.Team = fpRec.Team
		}
		if row.Position == "" {
			row.Position = fpRec.Position
		}
		if row.Jersey == "" {
			row.Jersey = fpRec.Jersey
		}
	}

	if abbr, ok := normalize.Team(row.Team); ok {
		row.Team = abbr
	} else {
		row.Team = strings.ToUpper(strings.TrimSpace(row.Team))
	}
	row.Position = normalize.Position(row.Position)
}

// applyNews fills news fields preferring the rankings provider.
func applyNews(row *unified.PlayerView, espnRec *espnplayer.Record, fpRec *fpplayer.Record) {
	if fpRec != nil {
		row.NewsHeadline = fpRec.NewsHeadline
		row.NewsAnalysis = fpRec.NewsAnalysis
		row.NewsDate = fpRec.NewsDate
	}
	if row.NewsDate == nil && espnRec != nil {
		row.NewsDate = espnRec.NewsDate
	}
}

// applyOprk resolves the opponent defensive rank for the player's position,
// trying scoring types in standard, half-PPR, full-PPR order.
func applyOprk(row *unified.PlayerView, opponentAbbr string, latestOprk map[string]defense.VsPositionStat) {
	position := normalize.Position(row.Position)
	if position == "" {
		return
	}
	for _, scoring := range []string{defense.ScoringStandard, defense.ScoringHalfPPR, defense.ScoringFullPPR} {
		stat, ok := latestOprk[opponentAbbr+"|"+position+"|"+scoring]
		if !ok {
			continue
		}
		rank := stat.Rank
		row.OpponentRank = &rank
		row.OprkScoringType = stat.ScoringType
		return
	}
}

// GetUnifiedView reads materialized rows for one scope ordered by full name.
func (s *UnifiedViewService) GetUnifiedView(ctx context.Context, sport string, season int, filter unified.Filter) ([]unified.PlayerView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.UnifiedViewService.GetUnifiedView")
	defer span.End()

	sport = strings.TrimSpace(strings.ToLower(sport))
	if sport == "" {
		return nil, fmt.Errorf("%w: sport is required", ErrInvalidInput)
	}
	if season <= 0 {
		return nil, fmt.Errorf("%w: season must be greater than zero", ErrInvalidInput)
	}

	if filter.Team != "" {
		if abbr, ok := normalize.Team(filter.Team); ok {
			filter.Team = abbr
		} else {
			filter.Team = strings.ToUpper(strings.TrimSpace(filter.Team))
		}
	}
	if filter.Position != "" {
		filter.Position = normalize.Position(filter.Position)
	}

	views, err := s.viewRepo.Query(ctx, sport, season, filter)
	if err != nil {
		return nil, fmt.Errorf("query unified views: %w", err)
	}

	return views, nil
}

// Weekly rows beat season rows; among weekly rows the highest week wins.
// Remaining ties fall back to scoring-type priority, then rank type, so the
// selection is stable across rebuilds.
func rankingBeats(candidate, current ranking.WeeklyRanking) bool {
	cw, xw := weekValue(candidate.Week), weekValue(current.Week)
	if cw != xw {
		return cw > xw
	}
	cp, xp := scoringPriority(candidate.ScoringType), scoringPriority(current.ScoringType)
	if cp != xp {
		return cp < xp
	}
	return candidate.RankType < current.RankType
}

func projectionBeats(candidate, current ranking.WeeklyProjection) bool {
	cw, xw := weekValue(candidate.Week), weekValue(current.Week)
	if cw != xw {
		return cw > xw
	}
	return scoringPriority(candidate.ScoringType) < scoringPriority(current.ScoringType)
}

func weekValue(week *int) int {
	if week == nil {
		return -1
	}
	return *week
}

func scoringPriority(scoringType string) int {
	switch scoringType {
	case defense.ScoringStandard:
		return 0
	case defense.ScoringHalfPPR:
		return 1
	case defense.ScoringFullPPR:
		return 2
	default:
		return 3
	}
}
