package matchday

import (
	"math"
	"strings"
	"time"

	"github.com/riskibarqy/racha-league/internal/domain/match"
)

// CountChampionDays counts the days in matches on which athleteID played for the day champion.
// Presences without an id are attributed through the same name resolution AggregateStats uses.
func CountChampionDays(matches []match.Match, athleteID string, loc *time.Location) int {
	athleteID = strings.TrimSpace(athleteID)
	if athleteID == "" {
		return 0
	}
	return countChampionDays(Bucketize(matches, loc), NewAthleteResolver(matches), AthleteIDKey(athleteID))
}

func countChampionDays(buckets Buckets, resolver AthleteResolver, athleteKey string) int {
	count := 0
	for _, day := range buckets.Days {
		dayMatches := buckets.Matches(day)
		champion, ok := ComputeDayChampion(dayMatches)
		if !ok {
			continue
		}
		if playedFor(dayMatches, resolver, athleteKey, champion.ChampionKey) {
			count++
		}
	}
	return count
}

func playedFor(dayMatches []match.Match, resolver AthleteResolver, athleteKey, teamKey string) bool {
	for _, item := range dayMatches {
		if presenceTeam, ok := athleteTeamIn(item, resolver, athleteKey); ok && presenceTeam == teamKey {
			return true
		}
	}
	return false
}

// SeasonSummary is the per-athlete bundle over a date range.
type SeasonSummary struct {
	AthleteID    string
	Name         string
	Nickname     string
	Position     Position
	Photo        string
	Games        int
	Goals        int
	Assists      int
	ChampionDays int
	Wins         int
	Draws        int
	Losses       int
	// AverageWinRate is the percentage of valid-score matches won by the athlete's team.
	AverageWinRate float64
	// Score sums 3/1/0 points of the athlete's team over matches with a valid score.
	Score int
}

// SummarizeSeason builds the season bundle for athleteID.
func SummarizeSeason(matches []match.Match, athleteID string, loc *time.Location) SeasonSummary {
	athleteID = strings.TrimSpace(athleteID)
	out := SeasonSummary{AthleteID: athleteID}
	if athleteID == "" {
		return out
	}

	resolver := NewAthleteResolver(matches)
	athleteKey := AthleteIDKey(athleteID)

	if stat, ok := AggregateStats(matches).GetByAthleteID(athleteID); ok {
		out.Name = stat.Name
		out.Nickname = stat.Nickname
		out.Position = stat.Position
		out.Photo = stat.Photo
		out.Games = stat.Games
		out.Goals = stat.Goals
		out.Assists = stat.Assists
	}
	out.ChampionDays = countChampionDays(Bucketize(matches, loc), resolver, athleteKey)

	for _, item := range matches {
		if !item.Score.Valid() {
			continue
		}
		teamKey, ok := athleteTeamIn(item, resolver, athleteKey)
		if !ok {
			continue
		}
		goalsFor, goalsAgainst := *item.Score.TeamA, *item.Score.TeamB
		if teamKey == item.TeamB.Key() && teamKey != item.TeamA.Key() {
			goalsFor, goalsAgainst = goalsAgainst, goalsFor
		} else if teamKey != item.TeamA.Key() {
			continue
		}

		switch {
		case goalsFor > goalsAgainst:
			out.Wins++
			out.Score += PointsWin
		case goalsFor == goalsAgainst:
			out.Draws++
			out.Score += PointsDraw
		default:
			out.Losses++
		}
	}

	if played := out.Wins + out.Draws + out.Losses; played > 0 {
		out.AverageWinRate = math.Round(float64(out.Wins)/float64(played)*1000) / 10
	}

	return out
}

func athleteTeamIn(item match.Match, resolver AthleteResolver, athleteKey string) (string, bool) {
	for _, presence := range item.Presences {
		if presence.Status.Absent() {
			continue
		}
		teamKey := item.TeamKeyFor(presence)
		if resolver.Resolve(presence.Athlete, item.ID, teamKey) == athleteKey {
			return teamKey, true
		}
	}
	return "", false
}

// AthleteIDs lists athletes with an id and a non-absent presence, in first-seen order.
func AthleteIDs(matches []match.Match) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, item := range matches {
		for _, presence := range item.Presences {
			id := strings.TrimSpace(presence.Athlete.ID)
			if id == "" || presence.Status.Absent() {
				continue
			}
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	return out
}
