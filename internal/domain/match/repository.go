package match

import (
	"context"
	"time"
)

// Repository exposes match read operations.
type Repository interface {
	// ListByRachaBetween returns matches played in [from, to).
	ListByRachaBetween(ctx context.Context, rachaID string, from, to time.Time) ([]Match, error)
}
