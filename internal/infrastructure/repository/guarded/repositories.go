// Package guarded puts a circuit breaker in front of repositories backed by a remote store.
package guarded

import (
	"context"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/racha-league/internal/domain/highlight"
	"github.com/riskibarqy/racha-league/internal/domain/match"
	"github.com/riskibarqy/racha-league/internal/domain/racha"
	"github.com/riskibarqy/racha-league/internal/platform/resilience"
)

// Countable decides which errors trip the breaker.
type Countable func(error) bool

func run(breaker *resilience.CircuitBreaker, countable Countable, op string, fn func() error) error {
	err := breaker.Execute(fn, countable)
	if crerr.Is(err, resilience.ErrCircuitOpen) {
		return crerr.Wrapf(err, "%s skipped", op)
	}
	return err
}

type RachaRepository struct {
	next      racha.Repository
	breaker   *resilience.CircuitBreaker
	countable Countable
}

func NewRachaRepository(next racha.Repository, breaker *resilience.CircuitBreaker, countable Countable) *RachaRepository {
	return &RachaRepository{next: next, breaker: breaker, countable: countable}
}

func (r *RachaRepository) List(ctx context.Context) ([]racha.Racha, error) {
	var out []racha.Racha
	err := run(r.breaker, r.countable, "list rachas", func() error {
		items, err := r.next.List(ctx)
		out = items
		return err
	})
	return out, err
}

func (r *RachaRepository) GetByID(ctx context.Context, rachaID string) (racha.Racha, bool, error) {
	var (
		out    racha.Racha
		exists bool
	)
	err := run(r.breaker, r.countable, "get racha", func() error {
		item, ok, err := r.next.GetByID(ctx, rachaID)
		out, exists = item, ok
		return err
	})
	return out, exists, err
}

type MatchRepository struct {
	next      match.Repository
	breaker   *resilience.CircuitBreaker
	countable Countable
}

func NewMatchRepository(next match.Repository, breaker *resilience.CircuitBreaker, countable Countable) *MatchRepository {
	return &MatchRepository{next: next, breaker: breaker, countable: countable}
}

func (r *MatchRepository) ListByRachaBetween(ctx context.Context, rachaID string, from, to time.Time) ([]match.Match, error) {
	var out []match.Match
	err := run(r.breaker, r.countable, "list matches", func() error {
		items, err := r.next.ListByRachaBetween(ctx, rachaID, from, to)
		out = items
		return err
	})
	return out, err
}

type HighlightRepository struct {
	next      highlight.Repository
	breaker   *resilience.CircuitBreaker
	countable Countable
}

func NewHighlightRepository(next highlight.Repository, breaker *resilience.CircuitBreaker, countable Countable) *HighlightRepository {
	return &HighlightRepository{next: next, breaker: breaker, countable: countable}
}

func (r *HighlightRepository) GetOverrides(ctx context.Context, rachaID, day string) (highlight.Overrides, bool, error) {
	var (
		out    highlight.Overrides
		exists bool
	)
	err := run(r.breaker, r.countable, "get highlight overrides", func() error {
		item, ok, err := r.next.GetOverrides(ctx, rachaID, day)
		out, exists = item, ok
		return err
	})
	return out, exists, err
}
