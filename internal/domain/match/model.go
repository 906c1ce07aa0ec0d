package match

import (
	"strings"
	"time"
)

// Status is the participation status of an athlete in one match.
type Status string

const (
	StatusTitular    Status = "TITULAR"
	StatusSubstituto Status = "SUBSTITUTO"
	StatusAusente    Status = "AUSENTE"
)

func NormalizeStatus(value string) Status {
	status := Status(strings.ToUpper(strings.TrimSpace(value)))
	if status == "" {
		return StatusTitular
	}
	return status
}

// Absent reports whether the presence must be left out of every stat fold.
func (s Status) Absent() bool {
	return NormalizeStatus(string(s)) == StatusAusente
}

// TeamRef identifies one side of a match for a single day.
type TeamRef struct {
	ID   string
	Name string
}

// Key returns the team identity used by standings: the id when present, otherwise the name.
func (t TeamRef) Key() string {
	if id := strings.TrimSpace(t.ID); id != "" {
		return id
	}
	return strings.TrimSpace(t.Name)
}

func (t TeamRef) matches(ref TeamRef) bool {
	key := ref.Key()
	if key == "" {
		return false
	}
	return key == strings.TrimSpace(t.ID) || key == strings.TrimSpace(t.Name)
}

// Score holds the final score; either side may be missing.
type Score struct {
	TeamA *int
	TeamB *int
}

func (s Score) Valid() bool {
	return s.TeamA != nil && s.TeamB != nil
}

// AthleteRef is the athlete snapshot carried by a presence row.
type AthleteRef struct {
	ID       string
	Name     string
	Nickname string
	Position string
	Photo    string
}

// DisplayName prefers the nickname, the way match sheets print athletes.
func (a AthleteRef) DisplayName() string {
	if nick := strings.TrimSpace(a.Nickname); nick != "" {
		return nick
	}
	return strings.TrimSpace(a.Name)
}

type Presence struct {
	Athlete AthleteRef
	Team    TeamRef
	Status  Status
	Goals   int
	Assists int
}

// Match is one game of a racha day.
type Match struct {
	ID        string
	RachaID   string
	PlayedAt  time.Time
	TeamA     TeamRef
	TeamB     TeamRef
	Score     Score
	Presences []Presence
}

func (m Match) HasDate() bool {
	return !m.PlayedAt.IsZero()
}

// TeamKeyFor resolves the presence team reference against the two sides of the match so that a
// presence pointing at a team by name still lands on the key used by standings.
func (m Match) TeamKeyFor(p Presence) string {
	switch {
	case m.TeamA.matches(p.Team):
		return m.TeamA.Key()
	case m.TeamB.matches(p.Team):
		return m.TeamB.Key()
	default:
		return p.Team.Key()
	}
}

func IntPtr(v int) *int {
	return &v
}
