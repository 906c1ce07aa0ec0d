package cache

import (
	"context"
	"strconv"
	"time"

	"github.com/riskibarqy/racha-league/internal/domain/highlight"
	"github.com/riskibarqy/racha-league/internal/domain/match"
	"github.com/riskibarqy/racha-league/internal/domain/racha"
	basecache "github.com/riskibarqy/racha-league/internal/platform/cache"
)

type RachaRepository struct {
	next  racha.Repository
	cache *basecache.Store
}

func NewRachaRepository(next racha.Repository, cache *basecache.Store) *RachaRepository {
	return &RachaRepository{next: next, cache: cache}
}

func (r *RachaRepository) List(ctx context.Context) ([]racha.Racha, error) {
	v, err := r.cache.GetOrLoad(ctx, "racha:list", func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]racha.Racha(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]racha.Racha)
	return append([]racha.Racha(nil), items...), nil
}

func (r *RachaRepository) GetByID(ctx context.Context, rachaID string) (racha.Racha, bool, error) {
	key := "racha:id:" + rachaID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, rachaID)
		if err != nil {
			return nil, err
		}
		return cachedRachaByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return racha.Racha{}, false, err
	}

	cached, _ := v.(cachedRachaByID)
	return cached.value, cached.exists, nil
}

type cachedRachaByID struct {
	value  racha.Racha
	exists bool
}

type MatchRepository struct {
	next  match.Repository
	cache *basecache.Store
}

func NewMatchRepository(next match.Repository, cache *basecache.Store) *MatchRepository {
	return &MatchRepository{next: next, cache: cache}
}

func (r *MatchRepository) ListByRachaBetween(ctx context.Context, rachaID string, from, to time.Time) ([]match.Match, error) {
	key := "match:range:" + rachaID + ":" + strconv.FormatInt(from.UnixNano(), 10) + ":" + strconv.FormatInt(to.UnixNano(), 10)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByRachaBetween(ctx, rachaID, from, to)
		if err != nil {
			return nil, err
		}
		return cloneMatches(items), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]match.Match)
	return cloneMatches(items), nil
}

func cloneMatches(items []match.Match) []match.Match {
	out := make([]match.Match, len(items))
	for i, m := range items {
		m.Presences = append([]match.Presence(nil), m.Presences...)
		out[i] = m
	}
	return out
}

type HighlightRepository struct {
	next  highlight.Repository
	cache *basecache.Store
}

func NewHighlightRepository(next highlight.Repository, cache *basecache.Store) *HighlightRepository {
	return &HighlightRepository{next: next, cache: cache}
}

func (r *HighlightRepository) GetOverrides(ctx context.Context, rachaID, day string) (highlight.Overrides, bool, error) {
	key := "highlight:overrides:" + rachaID + ":" + day
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetOverrides(ctx, rachaID, day)
		if err != nil {
			return nil, err
		}
		return cachedOverrides{value: item, exists: exists}, nil
	})
	if err != nil {
		return highlight.Overrides{}, false, err
	}

	cached, _ := v.(cachedOverrides)
	return cached.value, cached.exists, nil
}

type cachedOverrides struct {
	value  highlight.Overrides
	exists bool
}
