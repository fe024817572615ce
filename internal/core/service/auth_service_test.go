package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/hop4deals/deals-api/internal/core/domain"
	"github.com/hop4deals/deals-api/internal/core/token"
)

type stubAccountRepo struct {
	accounts map[string]*domain.Account // keyed by id
}

func newStubAccountRepo() *stubAccountRepo {
	return &stubAccountRepo{accounts: make(map[string]*domain.Account)}
}

func cloneAccount(a *domain.Account) *domain.Account {
	if a == nil {
		return nil
	}
	clone := *a
	if a.Privileges != nil {
		clone.Privileges = make(domain.Privileges, len(a.Privileges))
		for k, v := range a.Privileges {
			clone.Privileges[k] = v
		}
	}
	return &clone
}

func (r *stubAccountRepo) add(a *domain.Account) {
	r.accounts[a.ID] = cloneAccount(a)
}

func (r *stubAccountRepo) FindActiveByEmail(_ context.Context, email string) (*domain.Account, error) {
	for _, a := range r.accounts {
		if a.Email == email && a.IsActive {
			return cloneAccount(a), nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

func (r *stubAccountRepo) FindActiveByID(_ context.Context, id string) (*domain.Account, error) {
	a, ok := r.accounts[id]
	if !ok || !a.IsActive {
		return nil, domain.ErrAccountNotFound
	}
	return cloneAccount(a), nil
}

func (r *stubAccountRepo) FindByID(_ context.Context, id string) (*domain.Account, error) {
	a, ok := r.accounts[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return cloneAccount(a), nil
}

func (r *stubAccountRepo) ListByRole(_ context.Context, role string) ([]domain.Account, error) {
	var out []domain.Account
	for _, a := range r.accounts {
		if a.Role == role {
			out = append(out, *cloneAccount(a))
		}
	}
	return out, nil
}

func (r *stubAccountRepo) CountByRole(_ context.Context, role string) (int64, error) {
	var n int64
	for _, a := range r.accounts {
		if a.Role == role {
			n++
		}
	}
	return n, nil
}

func (r *stubAccountRepo) Create(_ context.Context, a *domain.Account) (*domain.Account, error) {
	for _, existing := range r.accounts {
		if existing.Email == a.Email {
			return nil, domain.ErrAccountExists
		}
	}
	copy := cloneAccount(a)
	if copy.ID == "" {
		copy.ID = a.Email
	}
	r.accounts[copy.ID] = cloneAccount(copy)
	return copy, nil
}

func (r *stubAccountRepo) Update(_ context.Context, a *domain.Account) (*domain.Account, error) {
	if _, ok := r.accounts[a.ID]; !ok {
		return nil, domain.ErrAccountNotFound
	}
	r.accounts[a.ID] = cloneAccount(a)
	return cloneAccount(a), nil
}

func (r *stubAccountRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.accounts[id]; !ok {
		return domain.ErrAccountNotFound
	}
	delete(r.accounts, id)
	return nil
}

func mustHash(t *testing.T, plaintext string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	return string(hash)
}

func newTestAuthService(t *testing.T, repo *stubAccountRepo) *AuthService {
	t.Helper()
	tokens, err := token.NewManager(token.Config{Secret: "test-secret", TTL: time.Hour})
	if err != nil {
		t.Fatalf("token manager: %v", err)
	}
	return NewAuthService(repo, tokens)
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubAccountRepo()
	repo.add(&domain.Account{
		ID:           "acc_admin",
		Email:        "admin@x.com",
		PasswordHash: mustHash(t, "Admin@123"),
		Role:         domain.RoleAdmin,
		IsActive:     true,
	})
	svc := newTestAuthService(t, repo)

	signed, account, err := svc.Login(context.Background(), "admin@x.com", "Admin@123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if signed == "" {
		t.Fatalf("expected token, got empty")
	}
	if account == nil || account.ID != "acc_admin" {
		t.Fatalf("unexpected account: %+v", account)
	}

	// The token must round-trip through Authenticate to the same account.
	resolved, err := svc.Authenticate(context.Background(), signed)
	if err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}
	if resolved.ID != "acc_admin" {
		t.Fatalf("expected acc_admin, got %q", resolved.ID)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubAccountRepo()
	repo.add(&domain.Account{
		ID:           "acc_admin",
		Email:        "admin@x.com",
		PasswordHash: mustHash(t, "Admin@123"),
		Role:         domain.RoleAdmin,
		IsActive:     true,
	})
	svc := newTestAuthService(t, repo)

	if _, _, err := svc.Login(context.Background(), "admin@x.com", "nope"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmailSameError(t *testing.T) {
	repo := newStubAccountRepo()
	repo.add(&domain.Account{
		ID:           "acc_admin",
		Email:        "admin@x.com",
		PasswordHash: mustHash(t, "Admin@123"),
		Role:         domain.RoleAdmin,
		IsActive:     true,
	})
	svc := newTestAuthService(t, repo)

	_, _, unknownErr := svc.Login(context.Background(), "ghost@x.com", "Admin@123")
	_, _, wrongPassErr := svc.Login(context.Background(), "admin@x.com", "nope")

	// Unknown email and wrong password must be indistinguishable.
	if !errors.Is(unknownErr, domain.ErrInvalidCredentials) || !errors.Is(wrongPassErr, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for both, got %v and %v", unknownErr, wrongPassErr)
	}
}

func TestAuthService_Login_DeactivatedAccount(t *testing.T) {
	repo := newStubAccountRepo()
	repo.add(&domain.Account{
		ID:           "acc_off",
		Email:        "off@x.com",
		PasswordHash: mustHash(t, "Secret@1"),
		Role:         domain.RoleDataEntry,
		IsActive:     false,
	})
	svc := newTestAuthService(t, repo)

	if _, _, err := svc.Login(context.Background(), "off@x.com", "Secret@1"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Authenticate_DeactivationTakesEffectImmediately(t *testing.T) {
	repo := newStubAccountRepo()
	repo.add(&domain.Account{
		ID:           "acc_de",
		Email:        "de@x.com",
		PasswordHash: mustHash(t, "Secret@1"),
		Role:         domain.RoleDataEntry,
		IsActive:     true,
	})
	svc := newTestAuthService(t, repo)

	signed, _, err := svc.Login(context.Background(), "de@x.com", "Secret@1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if _, err := svc.Authenticate(context.Background(), signed); err != nil {
		t.Fatalf("authenticate before deactivation: %v", err)
	}

	// Deactivate: the still-unexpired token must be rejected on the very
	// next request.
	repo.accounts["acc_de"].IsActive = false

	if _, err := svc.Authenticate(context.Background(), signed); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestAuthService_Authenticate_TokenErrors(t *testing.T) {
	repo := newStubAccountRepo()
	svc := newTestAuthService(t, repo)

	if _, err := svc.Authenticate(context.Background(), "not-a-token"); !errors.Is(err, domain.ErrTokenMalformed) {
		t.Fatalf("expected ErrTokenMalformed, got %v", err)
	}

	other, err := token.NewManager(token.Config{Secret: "another-secret", TTL: time.Hour})
	if err != nil {
		t.Fatalf("token manager: %v", err)
	}
	foreign, err := other.Issue("acc_x")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := svc.Authenticate(context.Background(), foreign); !errors.Is(err, domain.ErrTokenSignatureInvalid) {
		t.Fatalf("expected ErrTokenSignatureInvalid, got %v", err)
	}
}

func TestAuthService_Profile(t *testing.T) {
	repo := newStubAccountRepo()
	repo.add(&domain.Account{
		ID:       "acc_p",
		Email:    "p@x.com",
		Role:     domain.RoleDataEntry,
		IsActive: true,
	})
	svc := newTestAuthService(t, repo)

	account, err := svc.Profile(context.Background(), "acc_p")
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if account.Email != "p@x.com" {
		t.Fatalf("unexpected account: %+v", account)
	}

	if _, err := svc.Profile(context.Background(), "missing"); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}
