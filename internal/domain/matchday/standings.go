package matchday

import (
	"sort"

	"github.com/riskibarqy/racha-league/internal/domain/match"
)

const (
	PointsWin  = 3
	PointsDraw = 1
	PointsLoss = 0
)

// TeamPoints is one entry of the ordered team -> points association of a day.
type TeamPoints struct {
	Key    string
	Points int
}

// TeamRow is a display row of the day table.
type TeamRow struct {
	Key          string
	Name         string
	Played       int
	Won          int
	Drawn        int
	Lost         int
	GoalsFor     int
	GoalsAgainst int
	Points       int
}

// DayChampion is the result of the day's mini round robin.
type DayChampion struct {
	ChampionKey string
	// Points keeps teams in the order they were first seen while folding matches.
	Points []TeamPoints
	// Roster lists athlete keys with a non-absent presence for the champion team.
	Roster []string

	rows []TeamRow
}

func (c DayChampion) PointsOf(key string) (int, bool) {
	for _, item := range c.Points {
		if item.Key == key {
			return item.Points, true
		}
	}
	return 0, false
}

// TotalPoints is the sum awarded over the day: 3 per decisive match and 2 per draw.
func (c DayChampion) TotalPoints() int {
	total := 0
	for _, item := range c.Points {
		total += item.Points
	}
	return total
}

// Table returns rows sorted by points desc; equal points keep first-seen order.
func (c DayChampion) Table() []TeamRow {
	out := append([]TeamRow(nil), c.rows...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Points > out[j].Points
	})
	return out
}

type standingTable struct {
	index map[string]int
	rows  []TeamRow
}

func (t *standingTable) indexOf(ref match.TeamRef) int {
	key := ref.Key()
	if i, ok := t.index[key]; ok {
		return i
	}
	t.index[key] = len(t.rows)
	t.rows = append(t.rows, TeamRow{Key: key, Name: ref.Name})
	return len(t.rows) - 1
}

// ComputeDayChampion awards 3/1/0 points per valid-score match of the day and returns the team
// with the most points. When several teams share the maximum, the one seen first wins.
// The second return value is false when no match of the day has a valid score.
func ComputeDayChampion(dayMatches []match.Match) (DayChampion, bool) {
	table := standingTable{index: make(map[string]int)}
	for _, item := range dayMatches {
		if !item.Score.Valid() {
			continue
		}
		if item.TeamA.Key() == "" || item.TeamB.Key() == "" {
			continue
		}

		scoreA, scoreB := *item.Score.TeamA, *item.Score.TeamB
		a := table.indexOf(item.TeamA)
		b := table.indexOf(item.TeamB)
		applyResult(&table.rows[a], scoreA, scoreB)
		applyResult(&table.rows[b], scoreB, scoreA)
	}
	if len(table.rows) == 0 {
		return DayChampion{}, false
	}

	out := DayChampion{
		Points: make([]TeamPoints, 0, len(table.rows)),
		rows:   table.rows,
	}
	best := -1
	for _, row := range table.rows {
		out.Points = append(out.Points, TeamPoints{Key: row.Key, Points: row.Points})
		if row.Points > best {
			best = row.Points
			out.ChampionKey = row.Key
		}
	}
	out.Roster = championRoster(dayMatches, out.ChampionKey)

	return out, true
}

func applyResult(row *TeamRow, goalsFor, goalsAgainst int) {
	row.Played++
	row.GoalsFor += goalsFor
	row.GoalsAgainst += goalsAgainst
	switch {
	case goalsFor > goalsAgainst:
		row.Won++
		row.Points += PointsWin
	case goalsFor == goalsAgainst:
		row.Drawn++
		row.Points += PointsDraw
	default:
		row.Lost++
		row.Points += PointsLoss
	}
}

func championRoster(dayMatches []match.Match, championKey string) []string {
	resolver := NewAthleteResolver(dayMatches)
	seen := make(map[string]struct{})
	var roster []string
	for _, item := range dayMatches {
		for _, presence := range item.Presences {
			if presence.Status.Absent() {
				continue
			}
			teamKey := item.TeamKeyFor(presence)
			if teamKey != championKey {
				continue
			}
			key := resolver.Resolve(presence.Athlete, item.ID, teamKey)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			roster = append(roster, key)
		}
	}
	return roster
}
