package ports

import (
	"context"

	"github.com/rentwise/property-system/internal/core/domain"
)

// PaymentRepository defines persistence operations for payments.
type PaymentRepository interface {
	Create(ctx context.Context, p *domain.Payment) error
	FindByID(ctx context.Context, id uint, scope AccessScope) (*domain.Payment, error)
	List(ctx context.Context, scope AccessScope) ([]domain.Payment, error)
	ListByProperty(ctx context.Context, propertyID uint) ([]domain.Payment, error)
	ListByTenant(ctx context.Context, tenantProfileID uint) ([]domain.Payment, error)
	Update(ctx context.Context, p *domain.Payment) error
	Delete(ctx context.Context, id uint) error
}

// MaintenanceRepository defines persistence operations for maintenance requests.
type MaintenanceRepository interface {
	Create(ctx context.Context, m *domain.MaintenanceRequest) error
	FindByID(ctx context.Context, id uint, scope AccessScope) (*domain.MaintenanceRequest, error)
	List(ctx context.Context, scope AccessScope) ([]domain.MaintenanceRequest, error)
	ListByProperty(ctx context.Context, propertyID uint) ([]domain.MaintenanceRequest, error)
	Update(ctx context.Context, m *domain.MaintenanceRequest) error
	Delete(ctx context.Context, id uint) error
}
