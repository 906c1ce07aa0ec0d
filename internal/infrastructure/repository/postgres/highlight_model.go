package postgres

import (
	"database/sql"
	"time"
)

type highlightOverrideTableModel struct {
	ID                      int64          `db:"id"`
	RachaPublicID           string         `db:"racha_public_id"`
	Day                     time.Time      `db:"day"`
	ZagueiroAthletePublicID sql.NullString `db:"zagueiro_athlete_public_id"`
	FaltouAtacante          bool           `db:"faltou_atacante"`
	FaltouMeia              bool           `db:"faltou_meia"`
	FaltouZagueiro          bool           `db:"faltou_zagueiro"`
	FaltouGoleiro           bool           `db:"faltou_goleiro"`
	CreatedAt               time.Time      `db:"created_at"`
	UpdatedAt               time.Time      `db:"updated_at"`
	DeletedAt               *time.Time     `db:"deleted_at"`
}

type highlightOverrideInsertModel struct {
	RachaPublicID           string         `db:"racha_public_id"`
	Day                     string         `db:"day"`
	ZagueiroAthletePublicID sql.NullString `db:"zagueiro_athlete_public_id"`
	FaltouAtacante          bool           `db:"faltou_atacante"`
	FaltouMeia              bool           `db:"faltou_meia"`
	FaltouZagueiro          bool           `db:"faltou_zagueiro"`
	FaltouGoleiro           bool           `db:"faltou_goleiro"`
}
