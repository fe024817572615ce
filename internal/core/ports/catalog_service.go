package ports

import (
	"context"
	"time"

	"github.com/hop4deals/deals-api/internal/core/domain"
)

// Catalog write inputs. Create inputs carry the full payload; update inputs
// use pointers so absent fields are left untouched, mirroring the partial
// updates the admin UI sends.

type CreateCategoryInput struct {
	Name        string
	Description string
}

type UpdateCategoryInput struct {
	Name        *string
	Description *string
	IsActive    *bool
}

type CreateBrandInput struct {
	Name        string
	Description string
	Logo        string
	Website     string
}

type UpdateBrandInput struct {
	Name        *string
	Description *string
	Logo        *string
	Website     *string
	IsActive    *bool
}

type CreateDealInput struct {
	BrandID     string
	SeasonID    string
	Code        string
	Link        string
	Type        string
	Description string
	PercentOff  float64
	StartDate   *time.Time
	EndDate     *time.Time
	IsHot       bool
}

type UpdateDealInput struct {
	BrandID     *string
	SeasonID    *string
	Code        *string
	Link        *string
	Type        *string
	Description *string
	PercentOff  *float64
	StartDate   *time.Time
	EndDate     *time.Time
	IsActive    *bool
	IsHot       *bool
}

type CreateBlogInput struct {
	Title   string
	Content string
	Image   string
}

type UpdateBlogInput struct {
	Title    *string
	Content  *string
	Image    *string
	IsActive *bool
}

type CreateSeasonInput struct {
	Name      string
	Logo      string
	StartDate *time.Time
	EndDate   *time.Time
}

type UpdateSeasonInput struct {
	Name      *string
	Logo      *string
	StartDate *time.Time
	EndDate   *time.Time
	IsActive  *bool
}

// CategoryService manages categories.
type CategoryService interface {
	List(ctx context.Context) ([]domain.Category, error)
	Get(ctx context.Context, id string) (*domain.Category, error)
	Create(ctx context.Context, in CreateCategoryInput, actorID string) (*domain.Category, error)
	Update(ctx context.Context, id string, in UpdateCategoryInput, actorID string) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
}

// BrandService manages brands.
type BrandService interface {
	List(ctx context.Context) ([]domain.Brand, error)
	Get(ctx context.Context, id string) (*domain.Brand, error)
	Create(ctx context.Context, in CreateBrandInput, actorID string) (*domain.Brand, error)
	Update(ctx context.Context, id string, in UpdateBrandInput, actorID string) (*domain.Brand, error)
	Delete(ctx context.Context, id string) error
}

// DealService manages deals. Create and brand reassignment verify that the
// referenced brand exists.
type DealService interface {
	List(ctx context.Context) ([]domain.Deal, error)
	Get(ctx context.Context, id string) (*domain.Deal, error)
	Create(ctx context.Context, in CreateDealInput, actorID string) (*domain.Deal, error)
	Update(ctx context.Context, id string, in UpdateDealInput, actorID string) (*domain.Deal, error)
	Delete(ctx context.Context, id string) error
}

// BlogService manages blog posts.
type BlogService interface {
	List(ctx context.Context) ([]domain.Blog, error)
	Get(ctx context.Context, id string) (*domain.Blog, error)
	Create(ctx context.Context, in CreateBlogInput, actorID string) (*domain.Blog, error)
	Update(ctx context.Context, id string, in UpdateBlogInput, actorID string) (*domain.Blog, error)
	Delete(ctx context.Context, id string) error
}

// SeasonService manages seasons.
type SeasonService interface {
	List(ctx context.Context) ([]domain.Season, error)
	Get(ctx context.Context, id string) (*domain.Season, error)
	Create(ctx context.Context, in CreateSeasonInput, actorID string) (*domain.Season, error)
	Update(ctx context.Context, id string, in UpdateSeasonInput, actorID string) (*domain.Season, error)
	Delete(ctx context.Context, id string) error
}
