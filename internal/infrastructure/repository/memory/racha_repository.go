package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/racha-league/internal/domain/racha"
)

type RachaRepository struct {
	mu     sync.RWMutex
	items  map[string]racha.Racha
	orders []string
}

func NewRachaRepository(rachas []racha.Racha) *RachaRepository {
	items := make(map[string]racha.Racha, len(rachas))
	orders := make([]string, 0, len(rachas))

	for _, r := range rachas {
		items[r.ID] = r
		orders = append(orders, r.ID)
	}

	return &RachaRepository{
		items:  items,
		orders: orders,
	}
}

func (r *RachaRepository) List(_ context.Context) ([]racha.Racha, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]racha.Racha, 0, len(r.orders))
	for _, id := range r.orders {
		out = append(out, r.items[id])
	}

	return out, nil
}

func (r *RachaRepository) GetByID(_ context.Context, rachaID string) (racha.Racha, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[rachaID]
	if !ok {
		return racha.Racha{}, false, nil
	}

	return item, true, nil
}
