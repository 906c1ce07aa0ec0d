package matchday

import (
	"github.com/riskibarqy/racha-league/internal/domain/highlight"
	"github.com/riskibarqy/racha-league/internal/domain/match"
)

// DayResult is the full derivation for one calendar day.
type DayResult struct {
	Day         string
	Champion    DayChampion
	HasChampion bool
	Stats       StatPool
	Highlights  Highlights
}

// DeriveDay runs standings, stats and highlight selection over one day's matches.
func DeriveDay(day string, dayMatches []match.Match, overrides highlight.Overrides) DayResult {
	champion, ok := ComputeDayChampion(dayMatches)
	pool := AggregateStats(dayMatches)

	return DayResult{
		Day:         day,
		Champion:    champion,
		HasChampion: ok,
		Stats:       pool,
		Highlights:  SelectHighlights(champion.Roster, pool, overrides),
	}
}
