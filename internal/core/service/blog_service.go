package service

import (
	"context"
	"time"

	"github.com/hop4deals/deals-api/internal/core/domain"
	"github.com/hop4deals/deals-api/internal/core/ports"
)

type blogService struct {
	repo ports.BlogRepository
}

// NewBlogService returns a BlogService implementation.
func NewBlogService(repo ports.BlogRepository) ports.BlogService {
	return &blogService{repo: repo}
}

func (s *blogService) List(ctx context.Context) ([]domain.Blog, error) {
	return s.repo.List(ctx)
}

func (s *blogService) Get(ctx context.Context, id string) (*domain.Blog, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *blogService) Create(ctx context.Context, in ports.CreateBlogInput, actorID string) (*domain.Blog, error) {
	now := time.Now().UTC()
	blog := &domain.Blog{
		Title:     in.Title,
		Content:   in.Content,
		Image:     in.Image,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	blog.CreatedBy = actorID
	return s.repo.Create(ctx, blog)
}

func (s *blogService) Update(ctx context.Context, id string, in ports.UpdateBlogInput, actorID string) (*domain.Blog, error) {
	blog, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		blog.Title = *in.Title
	}
	if in.Content != nil {
		blog.Content = *in.Content
	}
	if in.Image != nil {
		blog.Image = *in.Image
	}
	if in.IsActive != nil {
		blog.IsActive = *in.IsActive
	}
	blog.UpdatedBy = actorID
	blog.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, blog)
}

func (s *blogService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
