package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gridironlab/rosterlink/internal/domain/unified"
	qb "github.com/gridironlab/rosterlink/internal/platform/querybuilder"
)

type UnifiedViewRepository struct {
	db *sqlx.DB
}

func NewUnifiedViewRepository(db *sqlx.DB) *UnifiedViewRepository {
	return &UnifiedViewRepository{db: db}
}

var unifiedViewSelectColumns = []string{
	"sport",
	"season",
	"canonical_key",
	"espn_id",
	"fp_id",
	"full_name",
	"team",
	"position",
	"jersey",
	"injury_status",
	"percent_owned",
	"percent_started",
	"avg_points",
	"total_points",
	"outlook_text",
	"outlook_week",
	"news_headline",
	"news_analysis",
	"news_date",
	"weekly_rank",
	"rank_scoring_type",
	"rank_week",
	"projected_points",
	"projection_week",
	"opponent",
	"opponent_week",
	"opponent_is_home",
	"kickoff_at",
	"opponent_rank",
	"oprk_scoring_type",
	"match_confidence",
	"needs_review",
	"refreshed_at",
}

// ReplaceScope swaps the whole (sport, season) partition inside one
// transaction. A failed rebuild rolls back and readers keep the old rows.
func (r *UnifiedViewRepository) ReplaceScope(ctx context.Context, sport string, season int, rows []unified.PlayerView) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx replace unified views: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	deleteQuery, deleteArgs, err := qb.DeleteFrom("unified_player_views").
		Where(
			qb.Eq("sport", sport),
			qb.Eq("season", season),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete unified views query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("delete unified views: %w", err)
	}

	for _, row := range rows {
		model := unifiedViewModelFromDomain(row)
		query, args, err := qb.InsertModel("unified_player_views", model, "")
		if err != nil {
			return fmt.Errorf("build insert unified view query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert unified view key=%s: %w", row.CanonicalKey, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace unified views tx: %w", err)
	}

	return nil
}

func (r *UnifiedViewRepository) Query(ctx context.Context, sport string, season int, filter unified.Filter) ([]unified.PlayerView, error) {
	conditions := []qb.Condition{
		qb.Eq("sport", sport),
		qb.Eq("season", season),
	}
	if filter.Team != "" {
		conditions = append(conditions, qb.Eq("team", filter.Team))
	}
	if filter.Position != "" {
		conditions = append(conditions, qb.Eq("position", filter.Position))
	}

	query, args, err := qb.Select(unifiedViewSelectColumns...).From("unified_player_views").
		Where(conditions...).
		OrderBy("full_name", "canonical_key").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select unified views query: %w", err)
	}

	var rows []unifiedPlayerViewTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select unified views: %w", err)
	}

	out := make([]unified.PlayerView, 0, len(rows))
	for _, row := range rows {
		out = append(out, unifiedViewDomainFromModel(row))
	}

	return out, nil
}

func unifiedViewModelFromDomain(v unified.PlayerView) unifiedPlayerViewTableModel {
	return unifiedPlayerViewTableModel{
		Sport:           v.Sport,
		Season:          v.Season,
		CanonicalKey:    v.CanonicalKey,
		ESPNID:          v.ESPNID,
		FPID:            v.FPID,
		FullName:        v.FullName,
		Team:            v.Team,
		Position:        v.Position,
		Jersey:          v.Jersey,
		InjuryStatus:    v.InjuryStatus,
		PercentOwned:    v.PercentOwned,
		PercentStarted:  v.PercentStarted,
		AvgPoints:       v.AvgPoints,
		TotalPoints:     v.TotalPoints,
		OutlookText:     v.OutlookText,
		OutlookWeek:     v.OutlookWeek,
		NewsHeadline:    v.NewsHeadline,
		NewsAnalysis:    v.NewsAnalysis,
		NewsDate:        v.NewsDate,
		WeeklyRank:      v.WeeklyRank,
		RankScoringType: v.RankScoringType,
		RankWeek:        v.RankWeek,
		ProjectedPoints: v.ProjectedPoints,
		ProjectionWeek:  v.ProjectionWeek,
		Opponent:        v.Opponent,
		OpponentWeek:    v.OpponentWeek,
		OpponentIsHome:  v.OpponentIsHome,
		KickoffAt:       v.KickoffAt,
		OpponentRank:    v.OpponentRank,
		OprkScoringType: v.OprkScoringType,
		MatchConfidence: v.MatchConfidence,
		NeedsReview:     v.NeedsReview,
		RefreshedAt:     v.RefreshedAt,
	}
}

func unifiedViewDomainFromModel(row unifiedPlayerViewTableModel) unified.PlayerView {
	return unified.PlayerView{
		Sport:           row.Sport,
		Season:          row.Season,
		CanonicalKey:    row.CanonicalKey,
		ESPNID:          row.ESPNID,
		FPID:            row.FPID,
		FullName:        row.FullName,
		Team:            row.Team,
		Position:        row.Position,
		Jersey:          row.Jersey,
		InjuryStatus:    row.InjuryStatus,
		PercentOwned:    row.PercentOwned,
		PercentStarted:  row.PercentStarted,
		AvgPoints:       row.AvgPoints,
		TotalPoints:     row.TotalPoints,
		OutlookText:     row.OutlookText,
		OutlookWeek:     row.OutlookWeek,
		NewsHeadline:    row.NewsHeadline,
		NewsAnalysis:    row.NewsAnalysis,
		NewsDate:        row.NewsDate,
		WeeklyRank:      row.WeeklyRank,
		RankScoringType: row.RankScoringType,
		RankWeek:        row.RankWeek,
		ProjectedPoints: row.ProjectedPoints,
		ProjectionWeek:  row.ProjectionWeek,
		Opponent:        row.Opponent,
		OpponentWeek:    row.OpponentWeek,
		OpponentIsHome:  row.OpponentIsHome,
		KickoffAt:       row.KickoffAt,
		OpponentRank:    row.OpponentRank,
		OprkScoringType: row.OprkScoringType,
		MatchConfidence: row.MatchConfidence,
		NeedsReview:     row.NeedsReview,
		RefreshedAt:     row.RefreshedAt,
	}
}
