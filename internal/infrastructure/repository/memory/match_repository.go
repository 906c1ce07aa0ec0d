package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/riskibarqy/racha-league/internal/domain/match"
)

type MatchRepository struct {
	mu      sync.RWMutex
	byRacha map[string][]match.Match
}

func NewMatchRepository(matches []match.Match) *MatchRepository {
	repo := &MatchRepository{byRacha: make(map[string][]match.Match)}
	for _, m := range matches {
		repo.byRacha[m.RachaID] = append(repo.byRacha[m.RachaID], cloneMatch(m))
	}
	for rachaID := range repo.byRacha {
		items := repo.byRacha[rachaID]
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].PlayedAt.Before(items[j].PlayedAt)
		})
	}

	return repo
}

func (r *MatchRepository) ListByRachaBetween(_ context.Context, rachaID string, from, to time.Time) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0)
	for _, m := range r.byRacha[rachaID] {
		if !m.HasDate() || m.PlayedAt.Before(from) || !m.PlayedAt.Before(to) {
			continue
		}
		out = append(out, cloneMatch(m))
	}

	return out, nil
}

func cloneMatch(m match.Match) match.Match {
	m.Presences = append([]match.Presence(nil), m.Presences...)
	return m
}
