package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gridironlab/rosterlink/internal/domain/defense"
	qb "github.com/gridironlab/rosterlink/internal/platform/querybuilder"
)

type DefenseRepository struct {
	db *sqlx.DB
}

func NewDefenseRepository(db *sqlx.DB) *DefenseRepository {
	return &DefenseRepository{db: db}
}

// Week NULL marks the season-to-date row, so unique indexes on these tables
// collapse NULL weeks through COALESCE and the conflict targets must match.
const defenseTeamStatUpsertSuffix = `ON CONFLICT (season, (COALESCE(week, 0)), team)
DO UPDATE SET
    points_allowed = EXCLUDED.points_allowed,
    games_played = EXCLUDED.games_played,
    updated_at = NOW()
RETURNING (xmax = 0) AS inserted`

const defenseVsPositionUpsertSuffix = `ON CONFLICT (sport, season, (COALESCE(week, 0)), defense_team, position, scoring_type)
DO UPDATE SET
    rank = EXCLUDED.rank,
    avg_points_allowed = EXCLUDED.avg_points_allowed,
    updated_at = NOW()
RETURNING (xmax = 0) AS inserted`

func (r *DefenseRepository) BulkUpsertTeamStats(ctx context.Context, stats []defense.TeamStat) (defense.UpsertResult, error) {
	var result defense.UpsertResult
	for _, stat := range stats {
		model := defenseTeamStatTableModel{
			Season:        stat.Season,
			Week:          stat.Week,
			Team:          stat.Team,
			PointsAllowed: stat.PointsAllowed,
			GamesPlayed:   stat.GamesPlayed,
		}

		query, args, err := qb.InsertModel("defense_team_stats", model, defenseTeamStatUpsertSuffix)
		if err != nil {
			return result, fmt.Errorf("build upsert defense team stat query: %w", err)
		}

		var inserted bool
		if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&inserted); err != nil {
			return result, fmt.Errorf("upsert defense team stat team=%s: %w", stat.Team, err)
		}
		if inserted {
			result.Inserted++
		} else {
			result.Updated++
		}
	}

	return result, nil
}

func (r *DefenseRepository) ListTeamStats(ctx context.Context, season int, week *int) ([]defense.TeamStat, error) {
	query, args, err := qb.Select("season", "week", "team", "points_allowed", "games_played").
		From("defense_team_stats").
		Where(
			qb.Eq("season", season),
			qb.EqOrNull("week", week),
		).
		OrderBy("team").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select defense team stats query: %w", err)
	}

	var rows []defenseTeamStatTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select defense team stats: %w", err)
	}

	out := make([]defense.TeamStat, 0, len(rows))
	for _, row := range rows {
		out = append(out, defense.TeamStat{
			Season:        row.Season,
			Week:          row.Week,
			Team:          row.Team,
			PointsAllowed: row.PointsAllowed,
			GamesPlayed:   row.GamesPlayed,
		})
	}

	return out, nil
}

func (r *DefenseRepository) BulkUpsertVsPosition(ctx context.Context, stats []defense.VsPositionStat) (defense.UpsertResult, error) {
	var result defense.UpsertResult
	for _, stat := range stats {
		model := defenseVsPositionTableModel{
			Sport:            stat.Sport,
			Season:           stat.Season,
			Week:             stat.Week,
			DefenseTeam:      stat.DefenseTeam,
			Position:         stat.Position,
			ScoringType:      stat.ScoringType,
			Rank:             stat.Rank,
			AvgPointsAllowed: stat.AvgPointsAllowed,
		}

		query, args, err := qb.InsertModel("defense_vs_position_stats", model, defenseVsPositionUpsertSuffix)
		if err != nil {
			return result, fmt.Errorf("build upsert defense vs position query: %w", err)
		}

		var inserted bool
		if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&inserted); err != nil {
			return result, fmt.Errorf("upsert defense vs position team=%s position=%s: %w", stat.DefenseTeam, stat.Position, err)
		}
		if inserted {
			result.Inserted++
		} else {
			result.Updated++
		}
	}

	return result, nil
}

func (r *DefenseRepository) ListVsPositionBySeason(ctx context.Context, sport string, season int) ([]defense.VsPositionStat, error) {
	query, args, err := qb.Select("sport", "season", "week", "defense_team", "position", "scoring_type", "rank", "avg_points_allowed").
		From("defense_vs_position_stats").
		Where(
			qb.Eq("sport", sport),
			qb.Eq("season", season),
		).
		OrderBy("defense_team", "position", "scoring_type").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select defense vs position query: %w", err)
	}

	var rows []defenseVsPositionTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select defense vs position: %w", err)
	}

	out := make([]defense.VsPositionStat, 0, len(rows))
	for _, row := range rows {
		out = append(out, defense.VsPositionStat{
			Sport:            row.Sport,
			Season:           row.Season,
			Week:             row.Week,
			DefenseTeam:      row.DefenseTeam,
			Position:         row.Position,
			ScoringType:      row.ScoringType,
			Rank:             row.Rank,
			AvgPointsAllowed: row.AvgPointsAllowed,
		})
	}

	return out, nil
}
