package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gridironlab/rosterlink/internal/domain/ranking"
	qb "github.com/gridironlab/rosterlink/internal/platform/querybuilder"
)

type RankingRepository struct {
	db *sqlx.DB
}

func NewRankingRepository(db *sqlx.DB) *RankingRepository {
	return &RankingRepository{db: db}
}

const weeklyRankingUpsertSuffix = `ON CONFLICT (sport, season, fp_id, rank_type, scoring_type, (COALESCE(week, 0)))
DO UPDATE SET
    rank = EXCLUDED.rank,
    position_rank = EXCLUDED.position_rank,
    updated_at = NOW()
RETURNING (xmax = 0) AS inserted`

const weeklyProjectionUpsertSuffix = `ON CONFLICT (sport, season, fp_id, scoring_type, (COALESCE(week, 0)))
DO UPDATE SET
    points = EXCLUDED.points,
    updated_at = NOW()
RETURNING (xmax = 0) AS inserted`

func (r *RankingRepository) BulkUpsertRankings(ctx context.Context, items []ranking.WeeklyRanking) (ranking.UpsertResult, error) {
	var result ranking.UpsertResult
	for _, item := range items {
		model := weeklyRankingTableModel{
			Sport:        item.Sport,
			Season:       item.Season,
			FPID:         item.FPID,
			RankType:     item.RankType,
			ScoringType:  item.ScoringType,
			Week:         item.Week,
			Rank:         item.Rank,
			PositionRank: item.PositionRank,
		}

		query, args, err := qb.InsertModel("weekly_rankings", model, weeklyRankingUpsertSuffix)
		if err != nil {
			return result, fmt.Errorf("build upsert weekly ranking query: %w", err)
		}

		var inserted bool
		if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&inserted); err != nil {
			return result, fmt.Errorf("upsert weekly ranking fp_id=%s: %w", item.FPID, err)
		}
		if inserted {
			result.Inserted++
		} else {
			result.Updated++
		}
	}

	return result, nil
}

func (r *RankingRepository) BulkUpsertProjections(ctx context.Context, items []ranking.WeeklyProjection) (ranking.UpsertResult, error) {
	var result ranking.UpsertResult
	for _, item := range items {
		model := weeklyProjectionTableModel{
			Sport:       item.Sport,
			Season:      item.Season,
			FPID:        item.FPID,
			ScoringType: item.ScoringType,
			Week:        item.Week,
			Points:      item.Points,
		}

		query, args, err := qb.InsertModel("weekly_projections", model, weeklyProjectionUpsertSuffix)
		if err != nil {
			return result, fmt.Errorf("build upsert weekly projection query: %w", err)
		}

		var inserted bool
		if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&inserted); err != nil {
			return result, fmt.Errorf("upsert weekly projection fp_id=%s: %w", item.FPID, err)
		}
		if inserted {
			result.Inserted++
		} else {
			result.Updated++
		}
	}

	return result, nil
}

func (r *RankingRepository) ListRankingsBySeason(ctx context.Context, sport string, season int) ([]ranking.WeeklyRanking, error) {
	query, args, err := qb.Select("sport", "season", "fp_id", "rank_type", "scoring_type", "week", "rank", "position_rank").
		From("weekly_rankings").
		Where(
			qb.Eq("sport", sport),
			qb.Eq("season", season),
		).
		OrderBy("fp_id", "rank_type", "scoring_type", "week NULLS FIRST").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select weekly rankings query: %w", err)
	}

	var rows []weeklyRankingTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select weekly rankings: %w", err)
	}

	out := make([]ranking.WeeklyRanking, 0, len(rows))
	for _, row := range rows {
		out = append(out, ranking.WeeklyRanking{
			Sport:        row.Sport,
			Season:       row.Season,
			FPID:         row.FPID,
			RankType:     row.RankType,
			ScoringType:  row.ScoringType,
			Week:         row.Week,
			Rank:         row.Rank,
			PositionRank: row.PositionRank,
		})
	}

	return out, nil
}

func (r *RankingRepository) ListProjectionsBySeason(ctx context.Context, sport string, season int) ([]ranking.WeeklyProjection, error) {
	query, args, err := qb.Select("sport", "season", "fp_id", "scoring_type", "week", "points").
		From("weekly_projections").
		Where(
			qb.Eq("sport", sport),
			qb.Eq("season", season),
		).
		OrderBy("fp_id", "scoring_type", "week NULLS FIRST").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select weekly projections query: %w", err)
	}

	var rows []weeklyProjectionTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select weekly projections: %w", err)
	}

	out := make([]ranking.WeeklyProjection, 0, len(rows))
	for _, row := range rows {
		out = append(out, ranking.WeeklyProjection{
			Sport:       row.Sport,
			Season:      row.Season,
			FPID:        row.FPID,
			ScoringType: row.ScoringType,
			Week:        row.Week,
			Points:      row.Points,
		})
	}

	return out, nil
}
