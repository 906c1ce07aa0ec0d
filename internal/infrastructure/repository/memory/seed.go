package memory

import (
	"time"

	"github.com/riskibarqy/racha-league/internal/domain/highlight"
	"github.com/riskibarqy/racha-league/internal/domain/match"
	"github.com/riskibarqy/racha-league/internal/domain/racha"
)

const (
	RachaIDCentro = "racha-centro"
	RachaIDPraia  = "racha-praia"
)

func SeedRachas() []racha.Racha {
	return []racha.Racha{
		{
			ID:        RachaIDCentro,
			Slug:      "centro",
			Name:      "Racha do Centro",
			City:      "Recife",
			IsDefault: true,
		},
		{
			ID:        RachaIDPraia,
			Slug:      "praia",
			Name:      "Racha da Praia",
			City:      "Olinda",
			IsDefault: false,
		},
	}
}

func SeedAthletes() []match.AthleteRef {
	return []match.AthleteRef{
		{ID: "ath-caio", Name: "Caio Ferreira", Nickname: "Caio", Position: "Atacante"},
		{ID: "ath-beto", Name: "Roberto Lima", Nickname: "Beto", Position: "Meia"},
		{ID: "ath-duda", Name: "Eduardo Souza", Nickname: "Duda", Position: "Goleiro"},
		{ID: "ath-nando", Name: "Fernando Alves", Nickname: "Nando", Position: "Zagueiro"},
		{ID: "ath-rafa", Name: "Rafael Costa", Nickname: "Rafa", Position: "Atacante"},
		{ID: "ath-gui", Name: "Guilherme Rocha", Position: "Meio-campo"},
		{ID: "ath-tiago", Name: "Tiago Mendes", Nickname: "Tiagão", Position: "Goleiro"},
		{ID: "ath-lucas", Name: "Lucas Pereira", Position: "Defensor"},
	}
}

// SeedMatches returns two Saturdays of the default racha. Kick-off times are UTC instants that
// fall on the morning of the same day in America/Sao_Paulo.
func SeedMatches() []match.Match {
	athletes := make(map[string]match.AthleteRef)
	for _, a := range SeedAthletes() {
		athletes[a.ID] = a
	}
	leoes := match.TeamRef{ID: "team-leoes", Name: "Leões"}
	tigres := match.TeamRef{ID: "team-tigres", Name: "Tigres"}

	p := func(athleteID string, team match.TeamRef, goals, assists int) match.Presence {
		return match.Presence{
			Athlete: athletes[athleteID],
			Team:    team,
			Status:  match.StatusTitular,
			Goals:   goals,
			Assists: assists,
		}
	}
	at := func(day, hour int) time.Time {
		return time.Date(2026, time.March, day, hour, 0, 0, 0, time.UTC)
	}

	return []match.Match{
		{
			ID: "match-0307-1", RachaID: RachaIDCentro, PlayedAt: at(7, 11),
			TeamA: leoes, TeamB: tigres,
			Score: match.Score{TeamA: match.IntPtr(3), TeamB: match.IntPtr(1)},
			Presences: []match.Presence{
				p("ath-caio", leoes, 2, 0),
				p("ath-nando", leoes, 0, 1),
				p("ath-duda", leoes, 0, 0),
				p("ath-gui", leoes, 1, 1),
				p("ath-beto", tigres, 1, 0),
				p("ath-rafa", tigres, 0, 1),
				p("ath-tiago", tigres, 0, 0),
				p("ath-lucas", tigres, 0, 0),
			},
		},
		{
			ID: "match-0307-2", RachaID: RachaIDCentro, PlayedAt: at(7, 12),
			TeamA: leoes, TeamB: tigres,
			Score: match.Score{TeamA: match.IntPtr(2), TeamB: match.IntPtr(2)},
			Presences: []match.Presence{
				p("ath-caio", leoes, 1, 1),
				p("ath-nando", leoes, 0, 0),
				p("ath-duda", leoes, 0, 0),
				p("ath-gui", leoes, 1, 0),
				p("ath-beto", tigres, 1, 1),
				p("ath-rafa", tigres, 1, 0),
				p("ath-tiago", tigres, 0, 0),
				{Athlete: athletes["ath-lucas"], Team: tigres, Status: match.StatusAusente},
			},
		},
		{
			ID: "match-0314-1", RachaID: RachaIDCentro, PlayedAt: at(14, 11),
			TeamA: leoes, TeamB: tigres,
			Score: match.Score{TeamA: match.IntPtr(0), TeamB: match.IntPtr(1)},
			Presences: []match.Presence{
				p("ath-caio", leoes, 0, 0),
				p("ath-nando", leoes, 0, 0),
				p("ath-duda", leoes, 0, 0),
				p("ath-beto", tigres, 0, 1),
				p("ath-rafa", tigres, 1, 0),
				p("ath-tiago", tigres, 0, 0),
				p("ath-lucas", tigres, 0, 0),
			},
		},
		{
			ID: "match-0314-2", RachaID: RachaIDCentro, PlayedAt: at(14, 12),
			TeamA: tigres, TeamB: leoes,
			Presences: []match.Presence{
				p("ath-beto", tigres, 0, 0),
				p("ath-caio", leoes, 1, 0),
			},
		},
	}
}

// SeedOverrides picks the zagueiro for the first Saturday and flags the goleiro as missing on
// the second one.
func SeedOverrides() map[string]map[string]highlight.Overrides {
	return map[string]map[string]highlight.Overrides{
		RachaIDCentro: {
			"2026-03-07": {ZagueiroID: "ath-nando"},
			"2026-03-14": {Faltou: highlight.VacantRoles{Goleiro: true}},
		},
	}
}
