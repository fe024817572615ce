package service

import (
	"context"
	"time"

	"github.com/hop4deals/deals-api/internal/core/domain"
	"github.com/hop4deals/deals-api/internal/core/ports"
)

type brandService struct {
	repo ports.BrandRepository
}

// NewBrandService returns a BrandService implementation.
func NewBrandService(repo ports.BrandRepository) ports.BrandService {
	return &brandService{repo: repo}
}

func (s *brandService) List(ctx context.Context) ([]domain.Brand, error) {
	return s.repo.List(ctx)
}

func (s *brandService) Get(ctx context.Context, id string) (*domain.Brand, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *brandService) Create(ctx context.Context, in ports.CreateBrandInput, actorID string) (*domain.Brand, error) {
	now := time.Now().UTC()
	brand := &domain.Brand{
		Name:        in.Name,
		Description: in.Description,
		Logo:        in.Logo,
		Website:     in.Website,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	brand.CreatedBy = actorID
	return s.repo.Create(ctx, brand)
}

func (s *brandService) Update(ctx context.Context, id string, in ports.UpdateBrandInput, actorID string) (*domain.Brand, error) {
	brand, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		brand.Name = *in.Name
	}
	if in.Description != nil {
		brand.Description = *in.Description
	}
	if in.Logo != nil {
		brand.Logo = *in.Logo
	}
	if in.Website != nil {
		brand.Website = *in.Website
	}
	if in.IsActive != nil {
		brand.IsActive = *in.IsActive
	}
	brand.UpdatedBy = actorID
	brand.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, brand)
}

func (s *brandService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
