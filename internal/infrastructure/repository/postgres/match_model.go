package postgres

import (
	"database/sql"
	"time"
)

type matchTableModel struct {
	ID            int64          `db:"id"`
	PublicID      string         `db:"public_id"`
	RachaPublicID string         `db:"racha_public_id"`
	PlayedAt      sql.NullTime   `db:"played_at"`
	TeamAPublicID sql.NullString `db:"team_a_public_id"`
	TeamAName     string         `db:"team_a_name"`
	TeamBPublicID sql.NullString `db:"team_b_public_id"`
	TeamBName     string         `db:"team_b_name"`
	ScoreA        sql.NullInt64  `db:"score_a"`
	ScoreB        sql.NullInt64  `db:"score_b"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
	DeletedAt     *time.Time     `db:"deleted_at"`
}

type matchInsertModel struct {
	PublicID      string         `db:"public_id"`
	RachaPublicID string         `db:"racha_public_id"`
	PlayedAt      sql.NullTime   `db:"played_at"`
	TeamAPublicID sql.NullString `db:"team_a_public_id"`
	TeamAName     string         `db:"team_a_name"`
	TeamBPublicID sql.NullString `db:"team_b_public_id"`
	TeamBName     string         `db:"team_b_name"`
	ScoreA        sql.NullInt64  `db:"score_a"`
	ScoreB        sql.NullInt64  `db:"score_b"`
}

type matchPresenceTableModel struct {
	ID              int64          `db:"id"`
	MatchPublicID   string         `db:"match_public_id"`
	AthletePublicID sql.NullString `db:"athlete_public_id"`
	AthleteName     string         `db:"athlete_name"`
	AthleteNickname string         `db:"athlete_nickname"`
	AthletePosition string         `db:"athlete_position"`
	AthletePhotoURL string         `db:"athlete_photo_url"`
	TeamPublicID    sql.NullString `db:"team_public_id"`
	TeamName        string         `db:"team_name"`
	Status          string         `db:"status"`
	Goals           int            `db:"goals"`
	Assists         int            `db:"assists"`
	CreatedAt       time.Time      `db:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at"`
	DeletedAt       *time.Time     `db:"deleted_at"`
}

type matchPresenceInsertModel struct {
	MatchPublicID   string         `db:"match_public_id"`
	AthletePublicID sql.NullString `db:"athlete_public_id"`
	AthleteName     string         `db:"athlete_name"`
	AthleteNickname string         `db:"athlete_nickname"`
	AthletePosition string         `db:"athlete_position"`
	AthletePhotoURL string         `db:"athlete_photo_url"`
	TeamPublicID    sql.NullString `db:"team_public_id"`
	TeamName        string         `db:"team_name"`
	Status          string         `db:"status"`
	Goals           int            `db:"goals"`
	Assists         int            `db:"assists"`
}
