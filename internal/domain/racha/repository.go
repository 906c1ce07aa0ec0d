package racha

import "context"

type Repository interface {
	GetByID(ctx context.Context, rachaID string) (Racha, bool, error)
	List(ctx context.Context) ([]Racha, error)
}
