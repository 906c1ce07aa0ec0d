package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/racha-league/internal/domain/match"
	qb "github.com/riskibarqy/racha-league/internal/platform/querybuilder"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) ListByRachaBetween(ctx context.Context, rachaID string, from, to time.Time) ([]match.Match, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(
			qb.Eq("racha_public_id", rachaID),
			qb.Expr("played_at >= ?", from.UTC()),
			qb.Expr("played_at < ?", to.UTC()),
			qb.IsNull("deleted_at"),
		).
		OrderBy("played_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matches query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select matches: %w", err)
	}
	if len(rows) == 0 {
		return []match.Match{}, nil
	}

	presences, err := r.listPresences(ctx, rows)
	if err != nil {
		return nil, err
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		item := matchFromRow(row)
		item.Presences = presences[row.PublicID]
		out = append(out, item)
	}

	return out, nil
}

func (r *MatchRepository) listPresences(ctx context.Context, matches []matchTableModel) (map[string][]match.Presence, error) {
	ids := make([]any, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, m.PublicID)
	}

	query, args, err := qb.Select("*").From("match_presences").
		Where(
			qb.In("match_public_id", ids),
			qb.IsNull("deleted_at"),
		).
		OrderBy("match_public_id", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select match presences query: %w", err)
	}

	var rows []matchPresenceTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select match presences: %w", err)
	}

	out := make(map[string][]match.Presence, len(matches))
	for _, row := range rows {
		out[row.MatchPublicID] = append(out[row.MatchPublicID], presenceFromRow(row))
	}

	return out, nil
}

func matchFromRow(row matchTableModel) match.Match {
	item := match.Match{
		ID:      row.PublicID,
		RachaID: row.RachaPublicID,
		TeamA:   match.TeamRef{ID: nullStringValue(row.TeamAPublicID), Name: row.TeamAName},
		TeamB:   match.TeamRef{ID: nullStringValue(row.TeamBPublicID), Name: row.TeamBName},
		Score: match.Score{
			TeamA: nullIntPtr(row.ScoreA),
			TeamB: nullIntPtr(row.ScoreB),
		},
	}
	if row.PlayedAt.Valid {
		item.PlayedAt = row.PlayedAt.Time
	}
	return item
}

func presenceFromRow(row matchPresenceTableModel) match.Presence {
	return match.Presence{
		Athlete: match.AthleteRef{
			ID:       nullStringValue(row.AthletePublicID),
			Name:     row.AthleteName,
			Nickname: row.AthleteNickname,
			Position: row.AthletePosition,
			Photo:    row.AthletePhotoURL,
		},
		Team:    match.TeamRef{ID: nullStringValue(row.TeamPublicID), Name: row.TeamName},
		Status:  match.NormalizeStatus(row.Status),
		Goals:   row.Goals,
		Assists: row.Assists,
	}
}
