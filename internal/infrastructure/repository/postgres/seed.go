package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/racha-league/internal/infrastructure/repository/memory"
	qb "github.com/riskibarqy/racha-league/internal/platform/querybuilder"
)

// BootstrapSeed loads the demo rachas into an empty database. It is a no-op once any racha exists.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM rachas WHERE deleted_at IS NULL`); err != nil {
		return fmt.Errorf("count rachas for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, r := range memory.SeedRachas() {
		if err := insertSeedRow(ctx, tx, "rachas", rachaInsertModel{
			PublicID:  r.ID,
			Slug:      r.Slug,
			Name:      r.Name,
			City:      r.City,
			IsDefault: r.IsDefault,
		}, qb.OnConflictDoNothing("public_id")); err != nil {
			return fmt.Errorf("seed racha %s: %w", r.ID, err)
		}
	}

	for _, m := range memory.SeedMatches() {
		row := matchInsertModel{
			PublicID:      m.ID,
			RachaPublicID: m.RachaID,
			PlayedAt:      sql.NullTime{Time: m.PlayedAt, Valid: m.HasDate()},
			TeamAPublicID: toNullString(m.TeamA.ID),
			TeamAName:     m.TeamA.Name,
			TeamBPublicID: toNullString(m.TeamB.ID),
			TeamBName:     m.TeamB.Name,
			ScoreA:        toNullInt(m.Score.TeamA),
			ScoreB:        toNullInt(m.Score.TeamB),
		}
		if err := insertSeedRow(ctx, tx, "matches", row, qb.OnConflictDoNothing("public_id")); err != nil {
			return fmt.Errorf("seed match %s: %w", m.ID, err)
		}

		if len(m.Presences) == 0 {
			continue
		}
		presences := make([]matchPresenceInsertModel, 0, len(m.Presences))
		for _, p := range m.Presences {
			presences = append(presences, matchPresenceInsertModel{
				MatchPublicID:   m.ID,
				AthletePublicID: toNullString(p.Athlete.ID),
				AthleteName:     p.Athlete.Name,
				AthleteNickname: p.Athlete.Nickname,
				AthletePosition: p.Athlete.Position,
				AthletePhotoURL: p.Athlete.Photo,
				TeamPublicID:    toNullString(p.Team.ID),
				TeamName:        p.Team.Name,
				Status:          string(p.Status),
				Goals:           p.Goals,
				Assists:         p.Assists,
			})
		}
		query, args, err := qb.InsertModels("match_presences", presences)
		if err != nil {
			return fmt.Errorf("build presences insert match=%s: %w", m.ID, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("seed presences match=%s: %w", m.ID, err)
		}
	}

	for rachaID, days := range memory.SeedOverrides() {
		for day, o := range days {
			if err := insertSeedRow(ctx, tx, "highlight_overrides", highlightOverrideInsertModel{
				RachaPublicID:           rachaID,
				Day:                     day,
				ZagueiroAthletePublicID: toNullString(o.ZagueiroID),
				FaltouAtacante:          o.Faltou.Atacante,
				FaltouMeia:              o.Faltou.Meia,
				FaltouZagueiro:          o.Faltou.Zagueiro,
				FaltouGoleiro:           o.Faltou.Goleiro,
			}, qb.OnConflictDoNothing("racha_public_id", "day")); err != nil {
				return fmt.Errorf("seed highlight overrides racha=%s day=%s: %w", rachaID, day, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}

	return nil
}

func insertSeedRow(ctx context.Context, tx *sqlx.Tx, table string, model any, opts ...qb.InsertOption) error {
	query, args, err := qb.InsertModel(table, model, opts...)
	if err != nil {
		return fmt.Errorf("build insert %s query: %w", table, err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert %s: %w", table, err)
	}
	return nil
}
