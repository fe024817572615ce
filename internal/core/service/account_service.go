package service

import (
	"context"
	"fmt"
	"time"

	"github.com/hop4deals/deals-api/internal/core/domain"
	"github.com/hop4deals/deals-api/internal/core/ports"
)

// AccountService implements admin-only management of dataEntry accounts.
type AccountService struct {
	accounts ports.AccountRepository
}

func NewAccountService(accounts ports.AccountRepository) *AccountService {
	return &AccountService{accounts: accounts}
}

// List returns all dataEntry accounts. Admin accounts are managed out of
// band (bootstrap seeding) and never listed here.
func (s *AccountService) List(ctx context.Context) ([]domain.Account, error) {
	return s.accounts.ListByRole(ctx, domain.RoleDataEntry)
}

func (s *AccountService) Get(ctx context.Context, id string) (*domain.Account, error) {
	return s.accounts.FindByID(ctx, id)
}

// Create adds a dataEntry account. The role is fixed here: account creation
// can never mint another admin, and privileges never imply a role.
func (s *AccountService) Create(ctx context.Context, in ports.CreateAccountInput, actorID string) (*domain.Account, error) {
	if err := validatePrivileges(in.Privileges); err != nil {
		return nil, err
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	privileges := in.Privileges
	if privileges == nil {
		privileges = domain.Privileges{}
	}

	now := time.Now().UTC()
	account := &domain.Account{
		Email:        in.Email,
		PasswordHash: hash,
		Role:         domain.RoleDataEntry,
		Privileges:   privileges,
		IsActive:     true,
		CreatedBy:    actorID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.accounts.Create(ctx, account)
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Update applies a partial update. Role is immutable after creation;
// privilege and activation changes take effect on the target's very next
// request because identity is re-loaded per request.
func (s *AccountService) Update(ctx context.Context, id string, in ports.UpdateAccountInput, actorID string) (*domain.Account, error) {
	if err := validatePrivileges(in.Privileges); err != nil {
		return nil, err
	}

	account, err := s.accounts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Email != nil {
		account.Email = *in.Email
	}
	if in.Privileges != nil {
		account.Privileges = in.Privileges
	}
	if in.IsActive != nil {
		account.IsActive = *in.IsActive
	}
	account.UpdatedBy = actorID
	account.UpdatedAt = time.Now().UTC()

	updated, err := s.accounts.Update(ctx, account)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete hard-deletes an account.
func (s *AccountService) Delete(ctx context.Context, id string) error {
	if _, err := s.accounts.FindByID(ctx, id); err != nil {
		return err
	}
	return s.accounts.Delete(ctx, id)
}

// validatePrivileges rejects grants for resource names the system does not
// know; unknown keys must never end up granted by accident.
func validatePrivileges(p domain.Privileges) error {
	for name := range p {
		if !domain.KnownResource(name) {
			return fmt.Errorf("%w: %q", domain.ErrUnknownPrivilege, name)
		}
	}
	return nil
}
