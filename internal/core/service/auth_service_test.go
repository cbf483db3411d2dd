package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/rentwise/property-system/internal/core/domain"
	"github.com/rentwise/property-system/internal/core/ports"
)

type stubTokenStore struct {
	tokens map[string]uint
}

func newStubTokenStore() *stubTokenStore {
	return &stubTokenStore{tokens: make(map[string]uint)}
}

func (s *stubTokenStore) Save(_ context.Context, token string, accountID uint, _ time.Duration) error {
	s.tokens[token] = accountID
	return nil
}

func (s *stubTokenStore) Take(_ context.Context, token string) (uint, error) {
	id, ok := s.tokens[token]
	if !ok {
		return 0, domain.ErrInvalidCredentials
	}
	delete(s.tokens, token)
	return id, nil
}

func newAuthService(f *fixture, store *stubTokenStore) *AuthService {
	return NewAuthService(f.accounts, f.tenants, f.managers, f.caretakers, store, "test-secret", time.Hour, 24*time.Hour, discardLogger)
}

func registerInput(email, phone, role string) ports.RegisterInput {
	return ports.RegisterInput{
		FirstName:   "Ada",
		LastName:    "Okafor",
		Email:       email,
		PhoneNumber: phone,
		Password:    "hunter2hunter2",
		Role:        role,
	}
}

func TestAuthService_Register_HashesPassword(t *testing.T) {
	f := newFixture()
	svc := newAuthService(f, newStubTokenStore())

	account, err := svc.Register(context.Background(), registerInput("ada@example.com", "+15550000001", "landlord"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if account.Role != domain.RoleLandlord {
		t.Errorf("expected role landlord, got %s", account.Role)
	}
	if account.PasswordHash == "hunter2hunter2" || account.PasswordHash == "" {
		t.Error("password must be stored hashed")
	}
	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte("hunter2hunter2")) != nil {
		t.Error("stored hash does not match the password")
	}
}

func TestAuthService_Register_RejectsUnknownRole(t *testing.T) {
	f := newFixture()
	svc := newAuthService(f, newStubTokenStore())

	_, err := svc.Register(context.Background(), registerInput("ada@example.com", "+15550000001", "superuser"))
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestAuthService_Register_RejectsShortPassword(t *testing.T) {
	f := newFixture()
	svc := newAuthService(f, newStubTokenStore())

	input := registerInput("ada@example.com", "+15550000001", "tenant")
	input.Password = "short"
	if _, err := svc.Register(context.Background(), input); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	f := newFixture()
	svc := newAuthService(f, newStubTokenStore())

	if _, err := svc.Register(context.Background(), registerInput("ada@example.com", "+15550000001", "tenant")); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, err := svc.Register(context.Background(), registerInput("ada@example.com", "+15550000002", "tenant"))
	if !errors.Is(err, domain.ErrAccountExists) {
		t.Fatalf("expected ErrAccountExists, got %v", err)
	}
}

func TestAuthService_Login_IssuesTokenPair(t *testing.T) {
	f := newFixture()
	store := newStubTokenStore()
	svc := newAuthService(f, store)

	if _, err := svc.Register(context.Background(), registerInput("ada@example.com", "+15550000001", "property_manager")); err != nil {
		t.Fatalf("register: %v", err)
	}

	pair, account, err := svc.Login(context.Background(), "ada@example.com", "hunter2hunter2")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if account.Email != "ada@example.com" {
		t.Errorf("unexpected account: %+v", account)
	}
	if pair.RefreshToken == "" || len(store.tokens) != 1 {
		t.Error("refresh token must be issued and stored")
	}

	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(pair.AccessToken, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !tkn.Valid {
		t.Fatalf("access token must parse and validate: %v", err)
	}
	if claims["role"] != "property_manager" || claims["email"] != "ada@example.com" || claims["first_name"] != "Ada" {
		t.Errorf("unexpected claims: %v", claims)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	f := newFixture()
	svc := newAuthService(f, newStubTokenStore())

	if _, err := svc.Register(context.Background(), registerInput("ada@example.com", "+15550000001", "tenant")); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "ada@example.com", "wrong-password"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "nobody@example.com", "hunter2hunter2"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown email must look like bad credentials, got %v", err)
	}
}

func TestAuthService_Refresh_RotatesToken(t *testing.T) {
	f := newFixture()
	store := newStubTokenStore()
	svc := newAuthService(f, store)

	if _, err := svc.Register(context.Background(), registerInput("ada@example.com", "+15550000001", "tenant")); err != nil {
		t.Fatalf("register: %v", err)
	}
	pair, _, err := svc.Login(context.Background(), "ada@example.com", "hunter2hunter2")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	next, err := svc.Refresh(context.Background(), pair.RefreshToken)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if next.RefreshToken == pair.RefreshToken {
		t.Error("refresh must rotate the token")
	}

	// The consumed token is single use.
	if _, err := svc.Refresh(context.Background(), pair.RefreshToken); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("reused token: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_CurrentAccount_EmbedsRoleProfile(t *testing.T) {
	f := newFixture()
	svc := newAuthService(f, newStubTokenStore())

	tenant := f.seedAccount(domain.RoleTenant)
	profile, err := f.tenants.GetOrCreate(context.Background(), tenant.ID)
	if err != nil {
		t.Fatalf("get-or-create: %v", err)
	}

	view, err := svc.CurrentAccount(context.Background(), domain.Principal{AccountID: tenant.ID, Role: domain.RoleTenant})
	if err != nil {
		t.Fatalf("current account: %v", err)
	}
	if view.TenantProfile == nil || view.TenantProfile.ID != profile.ID {
		t.Fatalf("expected tenant profile %d, got %+v", profile.ID, view.TenantProfile)
	}
	if view.ManagerProfile != nil || view.CaretakerProfile != nil {
		t.Error("only the role-matching profile may be embedded")
	}
}

func TestAuthService_CurrentAccount_MissingProfileIsNil(t *testing.T) {
	f := newFixture()
	svc := newAuthService(f, newStubTokenStore())
	caretaker := f.seedAccount(domain.RoleCaretaker)

	view, err := svc.CurrentAccount(context.Background(), domain.Principal{AccountID: caretaker.ID, Role: domain.RoleCaretaker})
	if err != nil {
		t.Fatalf("missing profile must not be an error: %v", err)
	}
	if view.CaretakerProfile != nil {
		t.Error("no profile was created, view must not invent one")
	}
}
