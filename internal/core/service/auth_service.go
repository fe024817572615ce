package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/hop4deals/deals-api/internal/core/domain"
	"github.com/hop4deals/deals-api/internal/core/ports"
	"github.com/hop4deals/deals-api/internal/core/token"
)

// AuthService implements login, token authentication, and profile lookup.
type AuthService struct {
	accounts ports.AccountRepository
	tokens   *token.Manager
}

func NewAuthService(accounts ports.AccountRepository, tokens *token.Manager) *AuthService {
	return &AuthService{accounts: accounts, tokens: tokens}
}

// Login verifies credentials and mints a token. Every failure path collapses
// to ErrInvalidCredentials: a caller must not be able to tell whether the
// email was unknown, the account deactivated, or the password wrong.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.Account, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	account, err := s.accounts.FindActiveByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("login: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	signed, err := s.tokens.Issue(account.ID)
	if err != nil {
		return "", nil, fmt.Errorf("login: %w", err)
	}
	return signed, account, nil
}

// Authenticate resolves a raw bearer token to a live account. The account is
// re-fetched on every call so deactivation invalidates outstanding tokens
// immediately; no authorization decision is ever cached.
func (s *AuthService) Authenticate(ctx context.Context, rawToken string) (*domain.Account, error) {
	accountID, err := s.tokens.Verify(rawToken)
	if err != nil {
		return nil, err
	}

	account, err := s.accounts.FindActiveByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("authenticate: %w", err)
	}
	return account, nil
}

// Profile returns the account for an id that Authenticate already vetted.
func (s *AuthService) Profile(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accounts.FindActiveByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("profile: %w", err)
	}
	return account, nil
}

// HashPassword derives the stored one-way hash for a plaintext password.
// bcrypt salts internally; DefaultCost keeps hashes expensive enough to
// resist offline brute force.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}
