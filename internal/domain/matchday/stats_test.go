package matchday

import (
	"testing"

	"github.com/riskibarqy/racha-league/internal/domain/match"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateStats_FoldsPresences(t *testing.T) {
	t.Parallel()

	matches := []match.Match{
		scored("m1", at(8, 0), "Leões", "Tigres", 3, 1,
			played("a1", "Caio Souza", "Atacante", "Leões", 2, 1),
			played("a2", "Beto", "Meia", "Tigres", 1, 0),
		),
		unscored("m2", at(9, 0), "Leões", "Tigres",
			played("a1", "Caio Souza", "Atacante", "Leões", 1, 2),
		),
	}

	pool := AggregateStats(matches)
	require.Equal(t, 2, pool.Len())

	caio, ok := pool.GetByAthleteID("a1")
	require.True(t, ok)
	assert.Equal(t, AthleteStat{
		Key:       AthleteIDKey("a1"),
		AthleteID: "a1",
		Name:      "Caio Souza",
		Position:  PositionAtacante,
		Goals:     3,
		Assists:   3,
		Games:     2,
		Presences: 2,
	}, caio)
	assert.Equal(t, []string{AthleteIDKey("a1"), AthleteIDKey("a2")}, keysOf(pool.All()))
}

func TestAggregateStats_ExcludesAbsent(t *testing.T) {
	t.Parallel()

	matches := []match.Match{
		scored("m1", at(8, 0), "Leões", "Tigres", 3, 1,
			absent("a1", "Caio", "Atacante", "Leões", 7, 7),
			played("a2", "Beto", "Meia", "Tigres", 1, 0),
		),
		scored("m2", at(8, 30), "Leões", "Tigres", 0, 0,
			played("a1", "Caio", "Atacante", "Leões", 1, 0),
			absent("a2", "Beto", "Meia", "Tigres", 5, 5),
		),
	}

	pool := AggregateStats(matches)
	for _, stat := range pool.All() {
		assert.LessOrEqual(t, stat.Goals, 1, stat.Key)
		assert.Zero(t, stat.Assists, stat.Key)
		assert.Equal(t, 1, stat.Games, stat.Key)
	}

	highlights := SelectHighlights(nil, pool, noOverrides)
	for _, card := range highlights.Cards() {
		assert.Less(t, card.StatValue, 5, card.Role)
	}
}

func TestAggregateStats_AbsentOnlyAthleteIsNotInPool(t *testing.T) {
	t.Parallel()

	pool := AggregateStats([]match.Match{
		scored("m1", at(8, 0), "Leões", "Tigres", 1, 0, absent("a9", "Zé", "Goleiro", "Leões", 0, 0)),
	})
	_, ok := pool.GetByAthleteID("a9")
	assert.False(t, ok)
}

func TestAggregateStats_NegativeInputsClamped(t *testing.T) {
	t.Parallel()

	pool := AggregateStats([]match.Match{
		unscored("m1", at(8, 0), "A", "B", played("a1", "Caio", "ATA", "A", -2, -1)),
	})
	stat, ok := pool.GetByAthleteID("a1")
	require.True(t, ok)
	assert.Zero(t, stat.Goals)
	assert.Zero(t, stat.Assists)
	assert.Equal(t, 1, stat.Games)
}

func TestAggregateStats_UnknownPositionStillCounted(t *testing.T) {
	t.Parallel()

	pool := AggregateStats([]match.Match{
		unscored("m1", at(8, 0), "A", "B", played("a1", "Caio", "coringa", "A", 4, 0)),
	})
	stat, ok := pool.GetByAthleteID("a1")
	require.True(t, ok)
	assert.Equal(t, PositionUnknown, stat.Position)
	assert.Equal(t, 4, stat.Goals)
}

func TestAggregateStats_NamelessFallbackKeys(t *testing.T) {
	t.Parallel()

	guest := func(teamName string, goals int) match.Presence {
		return match.Presence{
			Athlete: match.AthleteRef{Name: "Convidado"},
			Team:    team(teamName),
			Status:  match.StatusSubstituto,
			Goals:   goals,
		}
	}

	pool := AggregateStats([]match.Match{
		unscored("m1", at(8, 0), "A", "B", guest("A", 1), guest("B", 2)),
		unscored("m2", at(9, 0), "A", "B", guest("A", 3)),
	})

	// One key per (name, match, team): no id exists for "Convidado".
	assert.Equal(t, 3, pool.Len())
	for _, stat := range pool.All() {
		assert.Empty(t, stat.AthleteID)
		assert.Equal(t, 1, stat.Games)
	}
}

func keysOf(stats []AthleteStat) []string {
	out := make([]string, 0, len(stats))
	for _, stat := range stats {
		out = append(out, stat.Key)
	}
	return out
}
