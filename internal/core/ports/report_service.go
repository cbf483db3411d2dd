package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/rentwise/property-system/internal/core/domain"
)

// PaymentsReport lists payments with collected/due totals.
// TotalCollected sums paid rows; TotalDue sums pending and overdue rows.
type PaymentsReport struct {
	Payments       []domain.Payment
	TotalCollected decimal.Decimal
	TotalDue       decimal.Decimal
}

// ReportService answers the property- and tenant-scoped query endpoints.
// Property reports require the property to be visible to the principal;
// maintenance reports additionally admit the property's assigned caretaker.
type ReportService interface {
	TenantsByProperty(ctx context.Context, principal domain.Principal, propertyID uint) ([]domain.TenantProfile, error)
	UnitsByProperty(ctx context.Context, principal domain.Principal, propertyID uint) ([]domain.Unit, error)
	PaymentsByProperty(ctx context.Context, principal domain.Principal, propertyID uint) (*PaymentsReport, error)
	MaintenanceByProperty(ctx context.Context, principal domain.Principal, propertyID uint) ([]domain.MaintenanceRequest, error)
	PaymentsByTenant(ctx context.Context, principal domain.Principal, tenantProfileID uint) (*PaymentsReport, error)
}
