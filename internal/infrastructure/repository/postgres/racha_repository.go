package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/racha-league/internal/domain/racha"
	qb "github.com/riskibarqy/racha-league/internal/platform/querybuilder"
)

type RachaRepository struct {
	db *sqlx.DB
}

func NewRachaRepository(db *sqlx.DB) *RachaRepository {
	return &RachaRepository{db: db}
}

func (r *RachaRepository) List(ctx context.Context) ([]racha.Racha, error) {
	query, args, err := qb.Select("*").From("rachas").
		Where(qb.IsNull("deleted_at")).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select rachas query: %w", err)
	}

	var rows []rachaTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select rachas: %w", err)
	}

	out := make([]racha.Racha, 0, len(rows))
	for _, row := range rows {
		out = append(out, rachaFromRow(row))
	}

	return out, nil
}

func (r *RachaRepository) GetByID(ctx context.Context, rachaID string) (racha.Racha, bool, error) {
	query, args, err := qb.Select("*").From("rachas").
		Where(
			qb.Eq("public_id", rachaID),
			qb.IsNull("deleted_at"),
		).
		Limit(1).
		ToSQL()
	if err != nil {
		return racha.Racha{}, false, fmt.Errorf("build get racha by id query: %w", err)
	}

	var row rachaTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return racha.Racha{}, false, nil
		}
		return racha.Racha{}, false, fmt.Errorf("get racha by id: %w", err)
	}

	return rachaFromRow(row), true, nil
}

func rachaFromRow(row rachaTableModel) racha.Racha {
	return racha.Racha{
		ID:        row.PublicID,
		Slug:      row.Slug,
		Name:      row.Name,
		City:      row.City,
		IsDefault: row.IsDefault,
	}
}
