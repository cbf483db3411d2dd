package ports

import (
	"context"

	"github.com/rentwise/property-system/internal/core/domain"
)

// AccountRepository defines persistence operations for accounts.
// Uniqueness of email and phone number is enforced by the store; a
// violation surfaces as domain.ErrAccountExists from Create and as
// domain.ErrConflict from Update.
type AccountRepository interface {
	Create(ctx context.Context, a *domain.Account) error
	FindByID(ctx context.Context, id uint) (*domain.Account, error)
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	List(ctx context.Context) ([]domain.Account, error)
	Update(ctx context.Context, a *domain.Account) error
	Delete(ctx context.Context, id uint) error
}
