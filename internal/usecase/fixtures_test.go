package usecase

import (
	"time"

	"github.com/riskibarqy/racha-league/internal/domain/match"
	"github.com/riskibarqy/racha-league/internal/domain/racha"
)

const testRachaID = "racha-centro"

var saoPaulo = func() *time.Location {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		panic(err)
	}
	return loc
}()

var testRacha = racha.Racha{ID: testRachaID, Slug: "centro", Name: "Racha do Centro", City: "Recife"}

func playedAt(day, hour int) time.Time {
	return time.Date(2026, time.March, day, hour, 0, 0, 0, saoPaulo)
}

func scoredMatch(id string, at time.Time, a, b string, scoreA, scoreB int, presences ...match.Presence) match.Match {
	return match.Match{
		ID:        id,
		RachaID:   testRachaID,
		PlayedAt:  at,
		TeamA:     match.TeamRef{Name: a},
		TeamB:     match.TeamRef{Name: b},
		Score:     match.Score{TeamA: match.IntPtr(scoreA), TeamB: match.IntPtr(scoreB)},
		Presences: presences,
	}
}

func presence(athleteID, name, position, team string, goals, assists int) match.Presence {
	return match.Presence{
		Athlete: match.AthleteRef{ID: athleteID, Name: name, Position: position},
		Team:    match.TeamRef{Name: team},
		Status:  match.StatusTitular,
		Goals:   goals,
		Assists: assists,
	}
}

// saturdayMatches: Leões 2-1 and 1-1 against Tigres on 2026-03-07.
func saturdayMatches() []match.Match {
	return []match.Match{
		scoredMatch("m1", playedAt(7, 8), "Leões", "Tigres", 2, 1,
			presence("leo-ata", "Caio", "Atacante", "Leões", 2, 0),
			presence("leo-gol", "Duda", "Goleiro", "Leões", 0, 0),
			presence("tig-mei", "Beto", "Meia", "Tigres", 1, 0),
		),
		scoredMatch("m2", playedAt(7, 9), "Leões", "Tigres", 1, 1,
			presence("leo-ata", "Caio", "Atacante", "Leões", 1, 1),
			presence("leo-gol", "Duda", "Goleiro", "Leões", 0, 0),
			presence("tig-mei", "Beto", "Meia", "Tigres", 1, 2),
		),
	}
}

func timeEqual(want time.Time) func(time.Time) bool {
	return func(got time.Time) bool { return got.Equal(want) }
}
