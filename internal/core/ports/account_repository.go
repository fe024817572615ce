package ports

import (
	"context"

	"github.com/hop4deals/deals-api/internal/core/domain"
)

// AccountRepository defines the persistence contract for accounts.
//
// The FindActive* lookups treat deactivated accounts as missing and return
// domain.ErrAccountNotFound for both, so callers cannot tell deactivation
// apart from deletion. FindActiveByID is the per-request identity load that
// makes deactivation take effect immediately without any token state.
type AccountRepository interface {
	FindActiveByEmail(ctx context.Context, email string) (*domain.Account, error)
	FindActiveByID(ctx context.Context, id string) (*domain.Account, error)
	FindByID(ctx context.Context, id string) (*domain.Account, error)
	ListByRole(ctx context.Context, role string) ([]domain.Account, error)
	CountByRole(ctx context.Context, role string) (int64, error)
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	Update(ctx context.Context, account *domain.Account) (*domain.Account, error)
	Delete(ctx context.Context, id string) error
}
