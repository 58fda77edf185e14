package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gridironlab/rosterlink/internal/domain/espnplayer"
	qb "github.com/gridironlab/rosterlink/internal/platform/querybuilder"
)

type EspnPlayerRepository struct {
	db *sqlx.DB
}

func NewEspnPlayerRepository(db *sqlx.DB) *EspnPlayerRepository {
	return &EspnPlayerRepository{db: db}
}

var espnPlayerSelectColumns = []string{
	"sport",
	"season",
	"espn_id",
	"full_name",
	"first_name",
	"last_name",
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
	"news_date",
	"fetched_at",
}

const espnPlayerUpsertSuffix = `ON CONFLICT (sport, season, espn_id)
DO UPDATE SET
    full_name = EXCLUDED.full_name,
    first_name = EXCLUDED.first_name,
    last_name = EXCLUDED.last_name,
    team = EXCLUDED.team,
    position = EXCLUDED.position,
    jersey = EXCLUDED.jersey,
    injury_status = EXCLUDED.injury_status,
    percent_owned = EXCLUDED.percent_owned,
    percent_started = EXCLUDED.percent_started,
    avg_points = EXCLUDED.avg_points,
    total_points = EXCLUDED.total_points,
    outlook_text = EXCLUDED.outlook_text,
    outlook_week = EXCLUDED.outlook_week,
    news_date = EXCLUDED.news_date,
    fetched_at = EXCLUDED.fetched_at,
    updated_at = NOW()
RETURNING (xmax = 0) AS inserted`

// BulkUpsert writes each record in its own statement so that counts reported
// on a mid-batch failure cover exactly the rows already written.
func (r *EspnPlayerRepository) BulkUpsert(ctx context.Context, records []espnplayer.Record) (espnplayer.UpsertResult, error) {
	var result espnplayer.UpsertResult
	for _, rec := range records {
		model := espnPlayerTableModel{
			Sport:          rec.Sport,
			Season:         rec.Season,
			ESPNID:         rec.ESPNID,
			FullName:       rec.FullName,
			FirstName:      rec.FirstName,
			LastName:       rec.LastName,
			Team:           rec.Team,
			Position:       rec.Position,
			Jersey:         rec.Jersey,
			InjuryStatus:   rec.InjuryStatus,
			PercentOwned:   rec.PercentOwned,
			PercentStarted: rec.PercentStarted,
			AvgPoints:      rec.AvgPoints,
			TotalPoints:    rec.TotalPoints,
			OutlookText:    rec.OutlookText,
			OutlookWeek:    rec.OutlookWeek,
			NewsDate:       rec.NewsDate,
			FetchedAt:      rec.FetchedAt,
		}

		query, args, err := qb.InsertModel("espn_players", model, espnPlayerUpsertSuffix)
		if err != nil {
			return result, fmt.Errorf("build upsert espn player query: %w", err)
		}

		var inserted bool
		if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&inserted); err != nil {
			return result, fmt.Errorf("upsert espn player id=%d: %w", rec.ESPNID, err)
		}
		if inserted {
			result.Inserted++
		} else {
			result.Updated++
		}
	}

	return result, nil
}

func (r *EspnPlayerRepository) ListBySeason(ctx context.Context, sport string, season int) ([]espnplayer.Record, error) {
	query, args, err := qb.Select(espnPlayerSelectColumns...).From("espn_players").
		Where(
			qb.Eq("sport", sport),
			qb.Eq("season", season),
		).
		OrderBy("espn_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select espn players query: %w", err)
	}

	var rows []espnPlayerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select espn players: %w", err)
	}

	out := make([]espnplayer.Record, 0, len(rows))
	for _, row := range rows {
		out = append(out, espnplayer.Record{
			Sport:          row.Sport,
			Season:         row.Season,
			ESPNID:         row.ESPNID,
			FullName:       row.FullName,
			FirstName:      row.FirstName,
			LastName:       row.LastName,
			Team:           row.Team,
			Position:       row.Position,
			Jersey:         row.Jersey,
			InjuryStatus:   row.InjuryStatus,
			PercentOwned:   row.PercentOwned,
			PercentStarted: row.PercentStarted,
			AvgPoints:      row.AvgPoints,
			TotalPoints:    row.TotalPoints,
			OutlookText:    row.OutlookText,
			OutlookWeek:    row.OutlookWeek,
			NewsDate:       row.NewsDate,
			FetchedAt:      row.FetchedAt,
		})
	}

	return out, nil
}

func (r *EspnPlayerRepository) DeleteBySeason(ctx context.Context, sport string, season int) (int, error) {
	query, args, err := qb.DeleteFrom("espn_players").
		Where(
			qb.Eq("sport", sport),
			qb.Eq("season", season),
		).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build delete espn players query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("delete espn players: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete espn players rows affected: %w", err)
	}

	return int(affected), nil
}
