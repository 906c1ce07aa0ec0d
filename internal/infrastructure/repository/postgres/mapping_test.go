package postgres

import (
	"database/sql"
	"strings"
	"testing"
	"time"

	"github.com/riskibarqy/racha-league/internal/domain/match"
	qb "github.com/riskibarqy/racha-league/internal/platform/querybuilder"
)

func TestMatchFromRow(t *testing.T) {
	playedAt := time.Date(2026, time.March, 7, 11, 0, 0, 0, time.UTC)
	got := matchFromRow(matchTableModel{
		PublicID:      "match-1",
		RachaPublicID: "racha-centro",
		PlayedAt:      sql.NullTime{Time: playedAt, Valid: true},
		TeamAPublicID: sql.NullString{String: "team-leoes", Valid: true},
		TeamAName:     "Leões",
		TeamBName:     "Tigres",
		ScoreA:        sql.NullInt64{Int64: 2, Valid: true},
	})

	if got.ID != "match-1" || got.RachaID != "racha-centro" {
		t.Fatalf("unexpected identity: %+v", got)
	}
	if !got.PlayedAt.Equal(playedAt) {
		t.Fatalf("unexpected played at: %v", got.PlayedAt)
	}
	if got.TeamA.Key() != "team-leoes" || got.TeamB.Key() != "Tigres" {
		t.Fatalf("unexpected team keys: %s, %s", got.TeamA.Key(), got.TeamB.Key())
	}
	if got.Score.Valid() {
		t.Fatalf("expected score with a missing side to be invalid")
	}
}

func TestMatchFromRow_NullPlayedAt(t *testing.T) {
	got := matchFromRow(matchTableModel{PublicID: "match-undated"})
	if got.HasDate() {
		t.Fatalf("expected match without date, got %v", got.PlayedAt)
	}
}

func TestPresenceFromRow(t *testing.T) {
	got := presenceFromRow(matchPresenceTableModel{
		AthletePublicID: sql.NullString{String: "ath-caio", Valid: true},
		AthleteName:     "Caio Ferreira",
		AthleteNickname: "Caio",
		AthletePosition: "Atacante",
		TeamName:        "Leões",
		Status:          "ausente",
		Goals:           2,
		Assists:         1,
	})

	if got.Athlete.ID != "ath-caio" || got.Athlete.DisplayName() != "Caio" {
		t.Fatalf("unexpected athlete: %+v", got.Athlete)
	}
	if got.Status != match.StatusAusente || !got.Status.Absent() {
		t.Fatalf("expected normalized absent status, got %s", got.Status)
	}
	if got.Goals != 2 || got.Assists != 1 {
		t.Fatalf("unexpected stats: goals=%d assists=%d", got.Goals, got.Assists)
	}
}

func TestOverridesFromRow(t *testing.T) {
	got := overridesFromRow(highlightOverrideTableModel{
		ZagueiroAthletePublicID: sql.NullString{String: "ath-nando", Valid: true},
		FaltouGoleiro:           true,
	})
	if got.ZagueiroID != "ath-nando" || !got.HasZagueiro() {
		t.Fatalf("unexpected zagueiro: %q", got.ZagueiroID)
	}
	if !got.Faltou.Goleiro || got.Faltou.Atacante || got.Faltou.Meia || got.Faltou.Zagueiro {
		t.Fatalf("unexpected vacant roles: %+v", got.Faltou)
	}
}

func TestSeedInsertModelsMatchColumns(t *testing.T) {
	query, args, err := qb.InsertModel("match_presences", matchPresenceInsertModel{
		MatchPublicID: "match-1",
		AthleteName:   "Caio Ferreira",
		Status:        string(match.StatusTitular),
	})
	if err != nil {
		t.Fatalf("build insert: %v", err)
	}
	if !strings.HasPrefix(query, "INSERT INTO match_presences (match_public_id, athlete_public_id, athlete_name,") {
		t.Fatalf("unexpected insert query: %s", query)
	}
	if len(args) != 11 {
		t.Fatalf("expected 11 args, got %d", len(args))
	}

	query, _, err = qb.InsertModel("highlight_overrides", highlightOverrideInsertModel{
		RachaPublicID: "racha-centro",
		Day:           "2026-03-07",
	}, qb.OnConflictDoNothing("racha_public_id", "day"))
	if err != nil {
		t.Fatalf("build insert: %v", err)
	}
	if !strings.HasSuffix(query, "ON CONFLICT (racha_public_id, day) DO NOTHING") {
		t.Fatalf("unexpected insert suffix: %s", query)
	}
}
