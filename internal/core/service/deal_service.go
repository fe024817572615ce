package service

import (
	"context"
	"time"

	"github.com/hop4deals/deals-api/internal/core/domain"
	"github.com/hop4deals/deals-api/internal/core/ports"
)

type dealService struct {
	repo   ports.DealRepository
	brands ports.BrandRepository
}

// NewDealService returns a DealService implementation. The brand repository
// backs the referenced-brand existence check.
func NewDealService(repo ports.DealRepository, brands ports.BrandRepository) ports.DealService {
	return &dealService{repo: repo, brands: brands}
}

func (s *dealService) List(ctx context.Context) ([]domain.Deal, error) {
	return s.repo.List(ctx)
}

func (s *dealService) Get(ctx context.Context, id string) (*domain.Deal, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *dealService) Create(ctx context.Context, in ports.CreateDealInput, actorID string) (*domain.Deal, error) {
	if _, err := s.brands.FindByID(ctx, in.BrandID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	deal := &domain.Deal{
		BrandID:     in.BrandID,
		SeasonID:    in.SeasonID,
		Code:        in.Code,
		Link:        in.Link,
		Type:        in.Type,
		Description: in.Description,
		PercentOff:  in.PercentOff,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		IsActive:    true,
		IsHot:       in.IsHot,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	deal.CreatedBy = actorID
	return s.repo.Create(ctx, deal)
}

func (s *dealService) Update(ctx context.Context, id string, in ports.UpdateDealInput, actorID string) (*domain.Deal, error) {
	deal, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.BrandID != nil {
		if _, err := s.brands.FindByID(ctx, *in.BrandID); err != nil {
			return nil, err
		}
		deal.BrandID = *in.BrandID
	}
	if in.SeasonID != nil {
		deal.SeasonID = *in.SeasonID
	}
	if in.Code != nil {
		deal.Code = *in.Code
	}
	if in.Link != nil {
		deal.Link = *in.Link
	}
	if in.Type != nil {
		deal.Type = *in.Type
	}
	if in.Description != nil {
		deal.Description = *in.Description
	}
	if in.PercentOff != nil {
		deal.PercentOff = *in.PercentOff
	}
	if in.StartDate != nil {
		deal.StartDate = in.StartDate
	}
	if in.EndDate != nil {
		deal.EndDate = in.EndDate
	}
	if in.IsActive != nil {
		deal.IsActive = *in.IsActive
	}
	if in.IsHot != nil {
		deal.IsHot = *in.IsHot
	}
	deal.UpdatedBy = actorID
	deal.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, deal)
}

func (s *dealService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
