package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gridironlab/rosterlink/internal/domain/crosswalk"
	qb "github.com/gridironlab/rosterlink/internal/platform/querybuilder"
)

type CrosswalkRepository struct {
	db *sqlx.DB
}

func NewCrosswalkRepository(db *sqlx.DB) *CrosswalkRepository {
	return &CrosswalkRepository{db: db}
}

var crosswalkSelectColumns = []string{
	"sport",
	"season",
	"canonical_key",
	"espn_id",
	"fp_id",
	"match_confidence",
	"manual_override",
	"needs_review",
	"updated_at",
}

const crosswalkUpsertSuffix = `ON CONFLICT (sport, season, canonical_key)
DO UPDATE SET
    espn_id = EXCLUDED.espn_id,
    fp_id = EXCLUDED.fp_id,
    match_confidence = EXCLUDED.match_confidence,
    manual_override = EXCLUDED.manual_override,
    needs_review = EXCLUDED.needs_review,
    updated_at = EXCLUDED.updated_at
RETURNING (xmax = 0) AS inserted`

func (r *CrosswalkRepository) Upsert(ctx context.Context, entry crosswalk.Entry) (bool, error) {
	model := crosswalkTableModel{
		Sport:           entry.Sport,
		Season:          entry.Season,
		CanonicalKey:    entry.CanonicalKey,
		ESPNID:          entry.ESPNID,
		FPID:            entry.FPID,
		MatchConfidence: entry.MatchConfidence,
		ManualOverride:  entry.ManualOverride,
		NeedsReview:     entry.NeedsReview,
		UpdatedAt:       entry.UpdatedAt,
	}

	query, args, err := qb.InsertModel("crosswalk_entries", model, crosswalkUpsertSuffix)
	if err != nil {
		return false, fmt.Errorf("build upsert crosswalk entry query: %w", err)
	}

	var inserted bool
	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&inserted); err != nil {
		return false, fmt.Errorf("upsert crosswalk entry key=%s: %w", entry.CanonicalKey, err)
	}

	return inserted, nil
}

func (r *CrosswalkRepository) ListBySeason(ctx context.Context, sport string, season int) ([]crosswalk.Entry, error) {
	return r.list(ctx, []qb.Condition{
		qb.Eq("sport", sport),
		qb.Eq("season", season),
	})
}

func (r *CrosswalkRepository) ListNeedingReview(ctx context.Context, sport string, season int) ([]crosswalk.Entry, error) {
	return r.list(ctx, []qb.Condition{
		qb.Eq("sport", sport),
		qb.Eq("season", season),
		qb.Eq("needs_review", true),
	})
}

func (r *CrosswalkRepository) list(ctx context.Context, conditions []qb.Condition) ([]crosswalk.Entry, error) {
	query, args, err := qb.Select(crosswalkSelectColumns...).From("crosswalk_entries").
		Where(conditions...).
		OrderBy("canonical_key").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select crosswalk entries query: %w", err)
	}

	var rows []crosswalkTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select crosswalk entries: %w", err)
	}

	out := make([]crosswalk.Entry, 0, len(rows))
	for _, row := range rows {
		out = append(out, crosswalk.Entry{
			Sport:           row.Sport,
			Season:          row.Season,
			CanonicalKey:    row.CanonicalKey,
			ESPNID:          row.ESPNID,
			FPID:            row.FPID,
			MatchConfidence: row.MatchConfidence,
			ManualOverride:  row.ManualOverride,
			NeedsReview:     row.NeedsReview,
			UpdatedAt:       row.UpdatedAt,
		})
	}

	return out, nil
}

func (r *CrosswalkRepository) ListScopes(ctx context.Context) ([]crosswalk.Scope, error) {
	const query = `SELECT DISTINCT sport, season FROM crosswalk_entries ORDER BY sport, season`

	var rows []struct {
		Sport  string `db:"sport"`
		Season int    `db:"season"`
	}
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("select crosswalk scopes: %w", err)
	}

	out := make([]crosswalk.Scope, 0, len(rows))
	for _, row := range rows {
		out = append(out, crosswalk.Scope{Sport: row.Sport, Season: row.Season})
	}

	return out, nil
}

func (r *CrosswalkRepository) DeleteBySeason(ctx context.Context, sport string, season int) (int, error) {
	query, args, err := qb.DeleteFrom("crosswalk_entries").
		Where(
			qb.Eq("sport", sport),
			qb.Eq("season", season),
		).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build delete crosswalk entries query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("delete crosswalk entries: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete crosswalk entries rows affected: %w", err)
	}

	return int(affected), nil
}
