package ports

import (
	"context"

	"github.com/hop4deals/deals-api/internal/core/domain"
)

// CategoryRepository persists categories.
type CategoryRepository interface {
	List(ctx context.Context) ([]domain.Category, error)
	FindByID(ctx context.Context, id string) (*domain.Category, error)
	Create(ctx context.Context, category *domain.Category) (*domain.Category, error)
	Update(ctx context.Context, category *domain.Category) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
}

// BrandRepository persists brands.
type BrandRepository interface {
	List(ctx context.Context) ([]domain.Brand, error)
	FindByID(ctx context.Context, id string) (*domain.Brand, error)
	Create(ctx context.Context, brand *domain.Brand) (*domain.Brand, error)
	Update(ctx context.Context, brand *domain.Brand) (*domain.Brand, error)
	Delete(ctx context.Context, id string) error
}

// DealRepository persists deals.
type DealRepository interface {
	List(ctx context.Context) ([]domain.Deal, error)
	FindByID(ctx context.Context, id string) (*domain.Deal, error)
	Create(ctx context.Context, deal *domain.Deal) (*domain.Deal, error)
	Update(ctx context.Context, deal *domain.Deal) (*domain.Deal, error)
	Delete(ctx context.Context, id string) error
}

// BlogRepository persists blog posts.
type BlogRepository interface {
	List(ctx context.Context) ([]domain.Blog, error)
	FindByID(ctx context.Context, id string) (*domain.Blog, error)
	Create(ctx context.Context, blog *domain.Blog) (*domain.Blog, error)
	Update(ctx context.Context, blog *domain.Blog) (*domain.Blog, error)
	Delete(ctx context.Context, id string) error
}

// SeasonRepository persists seasons.
type SeasonRepository interface {
	List(ctx context.Context) ([]domain.Season, error)
	FindByID(ctx context.Context, id string) (*domain.Season, error)
	Create(ctx context.Context, season *domain.Season) (*domain.Season, error)
	Update(ctx context.Context, season *domain.Season) (*domain.Season, error)
	Delete(ctx context.Context, id string) error
}
