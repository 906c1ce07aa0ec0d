package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/riskibarqy/racha-league/internal/domain/highlight"
	qb "github.com/riskibarqy/racha-league/internal/platform/querybuilder"
)

type HighlightRepository struct {
	db *sqlx.DB
}

func NewHighlightRepository(db *sqlx.DB) *HighlightRepository {
	return &HighlightRepository{db: db}
}

func (r *HighlightRepository) GetOverrides(ctx context.Context, rachaID, day string) (highlight.Overrides, bool, error) {
	query, args, err := qb.Select("*").From("highlight_overrides").
		Where(
			qb.Eq("racha_public_id", rachaID),
			qb.Expr("day = ?::date", day),
			qb.IsNull("deleted_at"),
		).
		Limit(1).
		ToSQL()
	if err != nil {
		return highlight.Overrides{}, false, fmt.Errorf("build get highlight overrides query: %w", err)
	}

	var row highlightOverrideTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isBindParameterMismatch(err) || isUnnamedPreparedStatementMissing(err) {
			return r.getOverridesSingleParam(ctx, rachaID, day)
		}
		if isNotFound(err) {
			return highlight.Overrides{}, false, nil
		}
		return highlight.Overrides{}, false, fmt.Errorf("get highlight overrides: %w", err)
	}

	return overridesFromRow(row), true, nil
}

func (r *HighlightRepository) getOverridesSingleParam(ctx context.Context, rachaID, day string) (highlight.Overrides, bool, error) {
	query, _, err := qb.Select("*").From("highlight_overrides").
		Where(
			qb.Expr("racha_public_id = ($1::text[])[1]"),
			qb.Expr("day = (($1::text[])[2])::date"),
			qb.IsNull("deleted_at"),
		).
		Limit(1).
		ToSQL()
	if err != nil {
		return highlight.Overrides{}, false, fmt.Errorf("build get highlight overrides single param fallback query: %w", err)
	}

	var row highlightOverrideTableModel
	if err := r.db.GetContext(ctx, &row, query, pq.Array([]string{rachaID, day})); err != nil {
		if isUnnamedPreparedStatementMissing(err) {
			return r.getOverridesLiteral(ctx, rachaID, day)
		}
		if isNotFound(err) {
			return highlight.Overrides{}, false, nil
		}
		return highlight.Overrides{}, false, fmt.Errorf("get highlight overrides fallback: %w", err)
	}

	return overridesFromRow(row), true, nil
}

func (r *HighlightRepository) getOverridesLiteral(ctx context.Context, rachaID, day string) (highlight.Overrides, bool, error) {
	query, args, err := qb.Select("*").From("highlight_overrides").
		Where(
			qb.EqLiteral("racha_public_id", rachaID),
			qb.EqLiteral("day", day),
			qb.IsNull("deleted_at"),
		).
		Limit(1).
		ToSQL()
	if err != nil {
		return highlight.Overrides{}, false, fmt.Errorf("build get highlight overrides literal fallback query: %w", err)
	}

	var row highlightOverrideTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return highlight.Overrides{}, false, nil
		}
		return highlight.Overrides{}, false, fmt.Errorf("get highlight overrides literal fallback: %w", err)
	}

	return overridesFromRow(row), true, nil
}

func overridesFromRow(row highlightOverrideTableModel) highlight.Overrides {
	return highlight.Overrides{
		ZagueiroID: nullStringValue(row.ZagueiroAthletePublicID),
		Faltou: highlight.VacantRoles{
			Atacante: row.FaltouAtacante,
			Meia:     row.FaltouMeia,
			Zagueiro: row.FaltouZagueiro,
			Goleiro:  row.FaltouGoleiro,
		},
	}
}
