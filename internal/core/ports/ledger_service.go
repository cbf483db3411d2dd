package ports

import (
	"context"
	"time"

	"github.com/rentwise/property-system/internal/core/domain"
)

// CreatePaymentInput carries the data needed to record a payment.
type CreatePaymentInput struct {
	TenantProfileID uint
	Amount          string // decimal string, 2 places
	DueDate         *time.Time
	PaymentDate     *time.Time
	Status          string // empty = pending
}

// UpdatePaymentInput carries the mutable payment fields. Nil means unchanged.
type UpdatePaymentInput struct {
	Amount      *string
	DueDate     *time.Time
	PaymentDate *time.Time
	Status      *string
}

// PaymentService exposes role-scoped payment CRUD.
type PaymentService interface {
	Create(ctx context.Context, principal domain.Principal, input CreatePaymentInput) (*domain.Payment, error)
	Get(ctx context.Context, principal domain.Principal, id uint) (*domain.Payment, error)
	List(ctx context.Context, principal domain.Principal) ([]domain.Payment, error)
	Update(ctx context.Context, principal domain.Principal, id uint, input UpdatePaymentInput) (*domain.Payment, error)
	Delete(ctx context.Context, principal domain.Principal, id uint) error
}

// CreateMaintenanceInput carries the data needed to file a maintenance
// request. TenantProfileID is ignored for tenant principals, who always file
// against their own profile.
type CreateMaintenanceInput struct {
	TenantProfileID uint
	Description     string
}

// UpdateMaintenanceInput carries the mutable request fields. Nil means unchanged.
type UpdateMaintenanceInput struct {
	Description    *string
	Status         *string
	CompletionDate *time.Time
}

// MaintenanceService exposes role-scoped maintenance request CRUD.
type MaintenanceService interface {
	Create(ctx context.Context, principal domain.Principal, input CreateMaintenanceInput) (*domain.MaintenanceRequest, error)
	Get(ctx context.Context, principal domain.Principal, id uint) (*domain.MaintenanceRequest, error)
	List(ctx context.Context, principal domain.Principal) ([]domain.MaintenanceRequest, error)
	Update(ctx context.Context, principal domain.Principal, id uint, input UpdateMaintenanceInput) (*domain.MaintenanceRequest, error)
	Delete(ctx context.Context, principal domain.Principal, id uint) error
}
