package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gridironlab/rosterlink/internal/domain/fpplayer"
	qb "github.com/gridironlab/rosterlink/internal/platform/querybuilder"
)

type FpPlayerRepository struct {
	db *sqlx.DB
}

func NewFpPlayerRepository(db *sqlx.DB) *FpPlayerRepository {
	return &FpPlayerRepository{db: db}
}

var fpPlayerSelectColumns = []string{
	"sport",
	"season",
	"fp_id",
	"full_name",
	"first_name",
	"last_name",
	"team",
	"position",
	"jersey",
	"news_headline",
	"news_analysis",
	"news_date",
	"fetched_at",
}

const fpPlayerUpsertSuffix = `ON CONFLICT (sport, season, fp_id)
DO UPDATE SET
    full_name = EXCLUDED.full_name,
    first_name = EXCLUDED.first_name,
    last_name = EXCLUDED.last_name,
    team = EXCLUDED.team,
    position = EXCLUDED.position,
    jersey = EXCLUDED.jersey,
    news_headline = EXCLUDED.news_headline,
    news_analysis = EXCLUDED.news_analysis,
    news_date = EXCLUDED.news_date,
    fetched_at = EXCLUDED.fetched_at,
    updated_at = NOW()
RETURNING (xmax = 0) AS inserted`

func (r *FpPlayerRepository) BulkUpsert(ctx context.Context, records []fpplayer.Record) (fpplayer.UpsertResult, error) {
	var result fpplayer.UpsertResult
	for _, rec := range records {
		model := fpPlayerTableModel{
			Sport:        rec.Sport,
			Season:       rec.Season,
			FPID:         rec.FPID,
			FullName:     rec.FullName,
			FirstName:    rec.FirstName,
			LastName:     rec.LastName,
			Team:         rec.Team,
			Position:     rec.Position,
			Jersey:       rec.Jersey,
			NewsHeadline: rec.NewsHeadline,
			NewsAnalysis: rec.NewsAnalysis,
			NewsDate:     rec.NewsDate,
			FetchedAt:    rec.FetchedAt,
		}

		query, args, err := qb.InsertModel("fp_players", model, fpPlayerUpsertSuffix)
		if err != nil {
			return result, fmt.Errorf("build upsert fp player query: %w", err)
		}

		var inserted bool
		if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&inserted); err != nil {
			return result, fmt.Errorf("upsert fp player id=%s: %w", rec.FPID, err)
		}
		if inserted {
			result.Inserted++
		} else {
			result.Updated++
		}
	}

	return result, nil
}

func (r *FpPlayerRepository) ListBySeason(ctx context.Context, sport string, season int) ([]fpplayer.Record, error) {
	query, args, err := qb.Select(fpPlayerSelectColumns...).From("fp_players").
		Where(
			qb.Eq("sport", sport),
			qb.Eq("season", season),
		).
		OrderBy("fp_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select fp players query: %w", err)
	}

	var rows []fpPlayerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select fp players: %w", err)
	}

	out := make([]fpplayer.Record, 0, len(rows))
	for _, row := range rows {
		out = append(out, fpPlayerFromRow(row))
	}

	return out, nil
}

func (r *FpPlayerRepository) DeleteBySeason(ctx context.Context, sport string, season int) (int, error) {
	query, args, err := qb.DeleteFrom("fp_players").
		Where(
			qb.Eq("sport", sport),
			qb.Eq("season", season),
		).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build delete fp players query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("delete fp players: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete fp players rows affected: %w", err)
	}

	return int(affected), nil
}

func (r *FpPlayerRepository) DeleteByIDs(ctx context.Context, sport string, season int, fpIDs []string) (int, error) {
	if len(fpIDs) == 0 {
		return 0, nil
	}

	query, args, err := qb.DeleteFrom("fp_players").
		Where(
			qb.Eq("sport", sport),
			qb.Eq("season", season),
			qb.In("fp_id", stringSliceToAny(fpIDs)),
		).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build delete fp players by ids query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("delete fp players by ids: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete fp players by ids rows affected: %w", err)
	}

	return int(affected), nil
}

func (r *FpPlayerRepository) ListScopes(ctx context.Context) ([]fpplayer.Scope, error) {
	const query = `SELECT DISTINCT sport, season FROM fp_players ORDER BY sport, season`

	var rows []struct {
		Sport  string `db:"sport"`
		Season int    `db:"season"`
	}
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("select fp player scopes: %w", err)
	}

	out := make([]fpplayer.Scope, 0, len(rows))
	for _, row := range rows {
		out = append(out, fpplayer.Scope{Sport: row.Sport, Season: row.Season})
	}

	return out, nil
}

func fpPlayerFromRow(row fpPlayerTableModel) fpplayer.Record {
	return fpplayer.Record{
		Sport:        row.Sport,
		Season:       row.Season,
		FPID:         row.FPID,
		FullName:     row.FullName,
		FirstName:    row.FirstName,
		LastName:     row.LastName,
		Team:         row.Team,
		Position:     row.Position,
		Jersey:       row.Jersey,
		NewsHeadline: row.NewsHeadline,
		NewsAnalysis: row.NewsAnalysis,
		NewsDate:     row.NewsDate,
		FetchedAt:    row.FetchedAt,
	}
}
