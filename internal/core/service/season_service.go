package service

import (
	"context"
	"time"

	"github.com/hop4deals/deals-api/internal/core/domain"
	"github.com/hop4deals/deals-api/internal/core/ports"
)

type seasonService struct {
	repo ports.SeasonRepository
}

// NewSeasonService returns a SeasonService implementation.
func NewSeasonService(repo ports.SeasonRepository) ports.SeasonService {
	return &seasonService{repo: repo}
}

func (s *seasonService) List(ctx context.Context) ([]domain.Season, error) {
	return s.repo.List(ctx)
}

func (s *seasonService) Get(ctx context.Context, id string) (*domain.Season, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *seasonService) Create(ctx context.Context, in ports.CreateSeasonInput, actorID string) (*domain.Season, error) {
	now := time.Now().UTC()
	season := &domain.Season{
		Name:      in.Name,
		Logo:      in.Logo,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	season.CreatedBy = actorID
	return s.repo.Create(ctx, season)
}

func (s *seasonService) Update(ctx context.Context, id string, in ports.UpdateSeasonInput, actorID string) (*domain.Season, error) {
	season, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		season.Name = *in.Name
	}
	if in.Logo != nil {
		season.Logo = *in.Logo
	}
	if in.StartDate != nil {
		season.StartDate = in.StartDate
	}
	if in.EndDate != nil {
		season.EndDate = in.EndDate
	}
	if in.IsActive != nil {
		season.IsActive = *in.IsActive
	}
	season.UpdatedBy = actorID
	season.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, season)
}

func (s *seasonService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
