package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/gridironlab/rosterlink/internal/domain/schedule"
	qb "github.com/gridironlab/rosterlink/internal/platform/querybuilder"
)

type ScheduleRepository struct {
	db *sqlx.DB
}

func NewScheduleRepository(db *sqlx.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

type scheduleMatchupTableModel struct {
	Season    int       `db:"season"`
	Week      int       `db:"week"`
	Team      string    `db:"team"`
	Opponent  string    `db:"opponent"`
	IsHome    bool      `db:"is_home"`
	KickoffAt time.Time `db:"kickoff_at"`
}

const scheduleMatchupUpsertSuffix = `ON CONFLICT (season, week, team)
DO UPDATE SET
    opponent = EXCLUDED.opponent,
    is_home = EXCLUDED.is_home,
    kickoff_at = EXCLUDED.kickoff_at,
    updated_at = NOW()
RETURNING (xmax = 0) AS inserted`

func (r *ScheduleRepository) BulkUpsert(ctx context.Context, items []schedule.Matchup) (schedule.UpsertResult, error) {
	var result schedule.UpsertResult
	for _, item := range items {
		model := scheduleMatchupTableModel{
			Season:    item.Season,
			Week:      item.Week,
			Team:      item.Team,
			Opponent:  item.Opponent,
			IsHome:    item.IsHome,
			KickoffAt: item.KickoffAt,
		}

		query, args, err := qb.InsertModel("schedule_matchups", model, scheduleMatchupUpsertSuffix)
		if err != nil {
			return result, fmt.Errorf("build upsert schedule matchup query: %w", err)
		}

		var inserted bool
		if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&inserted); err != nil {
			return result, fmt.Errorf("upsert schedule matchup team=%s week=%d: %w", item.Team, item.Week, err)
		}
		if inserted {
			result.Inserted++
		} else {
			result.Updated++
		}
	}

	return result, nil
}

func (r *ScheduleRepository) ListBySeason(ctx context.Context, season int) ([]schedule.Matchup, error) {
	query, args, err := qb.Select("season", "week", "team", "opponent", "is_home", "kickoff_at").
		From("schedule_matchups").
		Where(qb.Eq("season", season)).
		OrderBy("week", "team").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select schedule matchups query: %w", err)
	}

	var rows []scheduleMatchupTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select schedule matchups: %w", err)
	}

	out := make([]schedule.Matchup, 0, len(rows))
	for _, row := range rows {
		out = append(out, schedule.Matchup{
			Season:    row.Season,
			Week:      row.Week,
			Team:      row.Team,
			Opponent:  row.Opponent,
			IsHome:    row.IsHome,
			KickoffAt: row.KickoffAt,
		})
	}

	return out, nil
}
