package highlight

import "context"

// Repository reads the overrides saved by the admin form for one racha day.
type Repository interface {
	GetOverrides(ctx context.Context, rachaID, day string) (Overrides, bool, error)
}
