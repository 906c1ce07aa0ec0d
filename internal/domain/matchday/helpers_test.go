package matchday

import (
	"time"

	"github.com/riskibarqy/racha-league/internal/domain/match"
)

var saoPaulo = mustLocation("America/Sao_Paulo")

func mustLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

func team(name string) match.TeamRef {
	return match.TeamRef{Name: name}
}

func scored(id string, at time.Time, a, b string, scoreA, scoreB int, presences ...match.Presence) match.Match {
	return match.Match{
		ID:        id,
		PlayedAt:  at,
		TeamA:     team(a),
		TeamB:     team(b),
		Score:     match.Score{TeamA: match.IntPtr(scoreA), TeamB: match.IntPtr(scoreB)},
		Presences: presences,
	}
}

func unscored(id string, at time.Time, a, b string, presences ...match.Presence) match.Match {
	return match.Match{
		ID:        id,
		PlayedAt:  at,
		TeamA:     team(a),
		TeamB:     team(b),
		Presences: presences,
	}
}

func played(athleteID, name, position, teamName string, goals, assists int) match.Presence {
	return match.Presence{
		Athlete: match.AthleteRef{ID: athleteID, Name: name, Position: position},
		Team:    team(teamName),
		Status:  match.StatusTitular,
		Goals:   goals,
		Assists: assists,
	}
}

func absent(athleteID, name, position, teamName string, goals, assists int) match.Presence {
	p := played(athleteID, name, position, teamName, goals, assists)
	p.Status = match.StatusAusente
	return p
}

// at returns a São Paulo wall-clock time on 2026-03-07 (a Saturday racha).
func at(hour, minute int) time.Time {
	return time.Date(2026, time.March, 7, hour, minute, 0, 0, saoPaulo)
}
