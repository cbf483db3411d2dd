package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/rentwise/property-system/internal/core/domain"
	"github.com/rentwise/property-system/internal/core/ports"
)

// AuthService implements registration, login, and token refresh.
type AuthService struct {
	accounts   ports.AccountRepository
	tenants    ports.TenantProfileRepository
	managers   ports.ManagerProfileRepository
	caretakers ports.CaretakerProfileRepository
	tokens     ports.RefreshTokenStore
	jwtSecret  string
	accessTTL  time.Duration
	refreshTTL time.Duration
	logger     zerolog.Logger
}

func NewAuthService(
	accounts ports.AccountRepository,
	tenants ports.TenantProfileRepository,
	managers ports.ManagerProfileRepository,
	caretakers ports.CaretakerProfileRepository,
	tokens ports.RefreshTokenStore,
	jwtSecret string,
	accessTTL, refreshTTL time.Duration,
	logger zerolog.Logger,
) *AuthService {
	if accessTTL <= 0 {
		accessTTL = time.Hour
	}
	if refreshTTL <= 0 {
		refreshTTL = 7 * 24 * time.Hour
	}
	return &AuthService{
		accounts:   accounts,
		tenants:    tenants,
		managers:   managers,
		caretakers: caretakers,
		tokens:     tokens,
		jwtSecret:  jwtSecret,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		logger:     logger,
	}
}

func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.Account, error) {
	if input.Email == "" || input.PhoneNumber == "" || len(input.Password) < 8 {
		return nil, fmt.Errorf("%w: email, phone_number and a password of at least 8 characters are required", domain.ErrValidation)
	}
	role, err := domain.ParseRole(input.Role)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	account := &domain.Account{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PhoneNumber:  input.PhoneNumber,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		return nil, err
	}

	s.logger.Info().Uint("account_id", account.ID).Str("role", string(role)).Msg("account registered")
	return account, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.TokenPair, *domain.Account, error) {
	if email == "" || password == "" {
		return nil, nil, domain.ErrInvalidCredentials
	}

	account, err := s.accounts.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil, domain.ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return nil, nil, domain.ErrInvalidCredentials
	}

	pair, err := s.issueTokens(ctx, account)
	if err != nil {
		return nil, nil, err
	}
	return pair, account, nil
}

// Refresh rotates a refresh token: the presented token is consumed and a new
// pair is issued. A reused or expired token fails with ErrInvalidCredentials.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*ports.TokenPair, error) {
	if refreshToken == "" {
		return nil, domain.ErrInvalidCredentials
	}

	accountID, err := s.tokens.Take(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	account, err := s.accounts.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	return s.issueTokens(ctx, account)
}

// CurrentAccount returns the principal's account with the profile matching
// its role. A missing profile is not an error: profiles are created lazily
// by the assignment operations.
func (s *AuthService) CurrentAccount(ctx context.Context, principal domain.Principal) (*ports.CurrentAccountView, error) {
	account, err := s.accounts.FindByID(ctx, principal.AccountID)
	if err != nil {
		return nil, err
	}

	view := &ports.CurrentAccountView{Account: account}
	switch account.Role {
	case domain.RoleTenant:
		if p, err := s.tenants.FindByAccountID(ctx, account.ID); err == nil {
			view.TenantProfile = p
		} else if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
	case domain.RolePropertyManager:
		if p, err := s.managers.FindByAccountID(ctx, account.ID); err == nil {
			view.ManagerProfile = p
		} else if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
	case domain.RoleCaretaker:
		if p, err := s.caretakers.FindByAccountID(ctx, account.ID); err == nil {
			view.CaretakerProfile = p
		} else if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
	}
	return view, nil
}

func (s *AuthService) issueTokens(ctx context.Context, account *domain.Account) (*ports.TokenPair, error) {
	expiresAt := time.Now().Add(s.accessTTL)
	claims := jwt.MapClaims{
		"sub":        fmt.Sprint(account.ID),
		"email":      account.Email,
		"role":       string(account.Role),
		"first_name": account.FirstName,
		"last_name":  account.LastName,
		"exp":        expiresAt.Unix(),
	}
	access, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, err
	}

	refresh := newRefreshToken()
	if err := s.tokens.Save(ctx, refresh, account.ID, s.refreshTTL); err != nil {
		return nil, fmt.Errorf("save refresh token: %w", err)
	}

	return &ports.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresAt:    expiresAt,
	}, nil
}

// newRefreshToken returns a 256-bit opaque token.
func newRefreshToken() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("%x", time.Now().UnixNano())
	}
	return hex.EncodeToString(b)
}
