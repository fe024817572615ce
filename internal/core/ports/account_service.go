package ports

import (
	"context"

	"github.com/hop4deals/deals-api/internal/core/domain"
)

// CreateAccountInput carries the data for a new dataEntry account. The role
// is fixed by the service; it is never caller-supplied.
type CreateAccountInput struct {
	Email      string
	Password   string
	Privileges domain.Privileges
}

// UpdateAccountInput carries a partial account update. Nil fields are left
// unchanged.
type UpdateAccountInput struct {
	Email      *string
	Privileges domain.Privileges
	IsActive   *bool
}

// AccountService is the admin-only management surface for dataEntry accounts.
type AccountService interface {
	List(ctx context.Context) ([]domain.Account, error)
	Get(ctx context.Context, id string) (*domain.Account, error)
	Create(ctx context.Context, in CreateAccountInput, actorID string) (*domain.Account, error)
	Update(ctx context.Context, id string, in UpdateAccountInput, actorID string) (*domain.Account, error)
	Delete(ctx context.Context, id string) error
}
