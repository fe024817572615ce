package ports

import (
	"context"

	"github.com/hop4deals/deals-api/internal/core/domain"
)

// AuthService owns the login flow and the per-request identity resolution.
type AuthService interface {
	// Login verifies email+password and mints a bearer token. A missing or
	// deactivated account and a wrong password all yield the same
	// domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, *domain.Account, error)

	// Authenticate verifies a raw bearer token and loads the live account it
	// refers to. Token errors and a missing/deactivated account surface as
	// their distinct domain errors; the HTTP layer answers all of them with
	// one generic 401.
	Authenticate(ctx context.Context, rawToken string) (*domain.Account, error)

	// Profile returns the current account for an already-verified id.
	Profile(ctx context.Context, accountID string) (*domain.Account, error)
}
