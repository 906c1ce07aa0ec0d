package matchday

import (
	"strings"

	"github.com/riskibarqy/racha-league/internal/domain/match"
)

// AthleteStat is the cumulative stat line of one athlete over a set of matches.
type AthleteStat struct {
	Key       string
	AthleteID string
	Name      string
	Nickname  string
	Position  Position
	Photo     string
	Goals     int
	Assists   int
	Games     int
	Presences int
}

func (s AthleteStat) DisplayName() string {
	if nick := strings.TrimSpace(s.Nickname); nick != "" {
		return nick
	}
	return s.Name
}

// StatPool holds athlete stats in the order athletes were first seen.
type StatPool struct {
	items []AthleteStat
	index map[string]int
}

func (p StatPool) All() []AthleteStat {
	return append([]AthleteStat(nil), p.items...)
}

func (p StatPool) Len() int {
	return len(p.items)
}

func (p StatPool) Get(key string) (AthleteStat, bool) {
	i, ok := p.index[key]
	if !ok {
		return AthleteStat{}, false
	}
	return p.items[i], true
}

func (p StatPool) GetByAthleteID(athleteID string) (AthleteStat, bool) {
	return p.Get(AthleteIDKey(athleteID))
}

// Filter returns pool entries accepted by keep, preserving pool order.
func (p StatPool) Filter(keep func(AthleteStat) bool) []AthleteStat {
	out := make([]AthleteStat, 0, len(p.items))
	for _, item := range p.items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

// AggregateStats folds every non-absent presence of matches into per-athlete totals.
// Score validity is not checked: a match without a final score still counts for stats.
func AggregateStats(matches []match.Match) StatPool {
	resolver := NewAthleteResolver(matches)
	pool := StatPool{index: make(map[string]int)}

	for _, item := range matches {
		for _, presence := range item.Presences {
			if presence.Status.Absent() {
				continue
			}
			key := resolver.Resolve(presence.Athlete, item.ID, item.TeamKeyFor(presence))
			stat := pool.upsert(key, presence.Athlete)
			stat.Goals += nonNegative(presence.Goals)
			stat.Assists += nonNegative(presence.Assists)
			stat.Games++
			stat.Presences++
		}
	}

	return pool
}

func (p *StatPool) upsert(key string, ref match.AthleteRef) *AthleteStat {
	i, ok := p.index[key]
	if !ok {
		p.index[key] = len(p.items)
		p.items = append(p.items, AthleteStat{
			Key:       key,
			AthleteID: athleteIDFromKey(key),
		})
		i = len(p.items) - 1
	}

	stat := &p.items[i]
	fillIfEmpty(&stat.Name, ref.Name)
	fillIfEmpty(&stat.Nickname, ref.Nickname)
	fillIfEmpty(&stat.Photo, ref.Photo)
	if !stat.Position.Known() {
		stat.Position = NormalizePosition(ref.Position)
	}
	return stat
}

func fillIfEmpty(dst *string, value string) {
	if strings.TrimSpace(*dst) != "" {
		return
	}
	*dst = strings.TrimSpace(value)
}

func nonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
