package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/racha-league/internal/domain/highlight"
)

type HighlightRepository struct {
	mu    sync.RWMutex
	items map[string]highlight.Overrides
}

// NewHighlightRepository takes overrides keyed by racha id and then day key.
func NewHighlightRepository(overrides map[string]map[string]highlight.Overrides) *HighlightRepository {
	items := make(map[string]highlight.Overrides)
	for rachaID, days := range overrides {
		for day, value := range days {
			items[overrideKey(rachaID, day)] = value
		}
	}

	return &HighlightRepository{items: items}
}

func (r *HighlightRepository) GetOverrides(_ context.Context, rachaID, day string) (highlight.Overrides, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	value, ok := r.items[overrideKey(rachaID, day)]
	if !ok {
		return highlight.Overrides{}, false, nil
	}

	return value, true, nil
}

func overrideKey(rachaID, day string) string {
	return rachaID + "|" + day
}
