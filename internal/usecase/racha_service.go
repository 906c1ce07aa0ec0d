package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/racha-league/internal/domain/racha"
)

type RachaService struct {
	rachaRepo racha.Repository
}

func NewRachaService(rachaRepo racha.Repository) *RachaService {
	return &RachaService{rachaRepo: rachaRepo}
}

func (s *RachaService) List(ctx context.Context) ([]racha.Racha, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RachaService.List")
	defer span.End()

	items, err := s.rachaRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list rachas: %w", err)
	}

	return items, nil
}

func (s *RachaService) Get(ctx context.Context, rachaID string) (racha.Racha, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RachaService.Get")
	defer span.End()

	return requireRacha(ctx, s.rachaRepo, rachaID)
}

func requireRacha(ctx context.Context, repo racha.Repository, rachaID string) (racha.Racha, error) {
	rachaID = strings.TrimSpace(rachaID)
	if rachaID == "" {
		return racha.Racha{}, fmt.Errorf("%w: racha id is required", ErrInvalidInput)
	}

	item, exists, err := repo.GetByID(ctx, rachaID)
	if err != nil {
		return racha.Racha{}, fmt.Errorf("get racha: %w", err)
	}
	if !exists {
		return racha.Racha{}, fmt.Errorf("%w: racha=%s", ErrNotFound, rachaID)
	}

	return item, nil
}
