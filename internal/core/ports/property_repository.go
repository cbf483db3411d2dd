package ports

import (
	"context"

	"github.com/rentwise/property-system/internal/core/domain"
)

// PropertyRepository defines persistence operations for properties.
// Scoped reads return domain.ErrNotFound for rows outside the scope, so a
// principal cannot distinguish "absent" from "not visible".
type PropertyRepository interface {
	Create(ctx context.Context, p *domain.Property) error
	FindByID(ctx context.Context, id uint, scope AccessScope) (*domain.Property, error)
	List(ctx context.Context, scope AccessScope) ([]domain.Property, error)
	Update(ctx context.Context, p *domain.Property) error
	Delete(ctx context.Context, id uint) error
}

// UnitRepository defines persistence operations for units.
type UnitRepository interface {
	Create(ctx context.Context, u *domain.Unit) error
	FindByID(ctx context.Context, id uint, scope AccessScope) (*domain.Unit, error)
	List(ctx context.Context, scope AccessScope) ([]domain.Unit, error)
	ListByProperty(ctx context.Context, propertyID uint) ([]domain.Unit, error)
	Update(ctx context.Context, u *domain.Unit) error
	Delete(ctx context.Context, id uint) error
}
