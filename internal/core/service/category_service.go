package service

import (
	"context"
	"time"

	"github.com/hop4deals/deals-api/internal/core/domain"
	"github.com/hop4deals/deals-api/internal/core/ports"
)

type categoryService struct {
	repo ports.CategoryRepository
}

// NewCategoryService returns a CategoryService implementation.
func NewCategoryService(repo ports.CategoryRepository) ports.CategoryService {
	return &categoryService{repo: repo}
}

func (s *categoryService) List(ctx context.Context) ([]domain.Category, error) {
	return s.repo.List(ctx)
}

func (s *categoryService) Get(ctx context.Context, id string) (*domain.Category, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *categoryService) Create(ctx context.Context, in ports.CreateCategoryInput, actorID string) (*domain.Category, error) {
	now := time.Now().UTC()
	category := &domain.Category{
		Name:        in.Name,
		Description: in.Description,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	category.CreatedBy = actorID
	return s.repo.Create(ctx, category)
}

func (s *categoryService) Update(ctx context.Context, id string, in ports.UpdateCategoryInput, actorID string) (*domain.Category, error) {
	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		category.Name = *in.Name
	}
	if in.Description != nil {
		category.Description = *in.Description
	}
	if in.IsActive != nil {
		category.IsActive = *in.IsActive
	}
	category.UpdatedBy = actorID
	category.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, category)
}

func (s *categoryService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
