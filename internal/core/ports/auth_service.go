package ports

import (
	"context"
	"time"

	"github.com/rentwise/property-system/internal/core/domain"
)

// RegisterInput carries the data needed to create an account.
type RegisterInput struct {
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	Password    string
	Role        string
}

// TokenPair is issued on login and rotated on refresh.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

// CurrentAccountView is the /me payload: the account plus the profile
// matching its role, when one exists.
type CurrentAccountView struct {
	Account          *domain.Account
	TenantProfile    *domain.TenantProfile
	ManagerProfile   *domain.ManagerProfile
	CaretakerProfile *domain.CaretakerProfile
}

// AuthService implements registration, login, and token refresh.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.Account, error)
	Login(ctx context.Context, email, password string) (*TokenPair, *domain.Account, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	CurrentAccount(ctx context.Context, principal domain.Principal) (*CurrentAccountView, error)
}

// RefreshTokenStore persists opaque refresh tokens with a TTL.
type RefreshTokenStore interface {
	Save(ctx context.Context, token string, accountID uint, ttl time.Duration) error
	// Take consumes the token (single use) and returns the account it was
	// issued to, or domain.ErrInvalidCredentials when absent or expired.
	Take(ctx context.Context, token string) (uint, error)
}
