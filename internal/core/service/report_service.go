package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/rentwise/property-system/internal/core/domain"
	"github.com/rentwise/property-system/internal/core/ports"
)

// ReportService answers the property- and tenant-scoped query endpoints.
// A property report is available to principals whose property scope covers
// the property; maintenance reports additionally admit the property's
// assigned caretaker, mirroring their maintenance visibility rule.
type ReportService struct {
	properties  ports.PropertyRepository
	units       ports.UnitRepository
	tenants     ports.TenantProfileRepository
	caretakers  ports.CaretakerProfileRepository
	payments    ports.PaymentRepository
	maintenance ports.MaintenanceRepository
	logger      zerolog.Logger
}

func NewReportService(
	properties ports.PropertyRepository,
	units ports.UnitRepository,
	tenants ports.TenantProfileRepository,
	caretakers ports.CaretakerProfileRepository,
	payments ports.PaymentRepository,
	maintenance ports.MaintenanceRepository,
	logger zerolog.Logger,
) *ReportService {
	return &ReportService{
		properties:  properties,
		units:       units,
		tenants:     tenants,
		caretakers:  caretakers,
		payments:    payments,
		maintenance: maintenance,
		logger:      logger,
	}
}

// requireProperty resolves the property through the principal's property
// scope. Out-of-scope properties are reported absent.
func (s *ReportService) requireProperty(ctx context.Context, principal domain.Principal, propertyID uint) error {
	_, err := s.properties.FindByID(ctx, propertyID, ScopeFor(principal, domain.ResourceProperties))
	return err
}

func (s *ReportService) TenantsByProperty(ctx context.Context, principal domain.Principal, propertyID uint) ([]domain.TenantProfile, error) {
	if err := s.requireProperty(ctx, principal, propertyID); err != nil {
		return nil, err
	}
	return s.tenants.ListByProperty(ctx, propertyID)
}

func (s *ReportService) UnitsByProperty(ctx context.Context, principal domain.Principal, propertyID uint) ([]domain.Unit, error) {
	if err := s.requireProperty(ctx, principal, propertyID); err != nil {
		return nil, err
	}
	return s.units.ListByProperty(ctx, propertyID)
}

func (s *ReportService) PaymentsByProperty(ctx context.Context, principal domain.Principal, propertyID uint) (*ports.PaymentsReport, error) {
	if err := s.requireProperty(ctx, principal, propertyID); err != nil {
		return nil, err
	}
	rows, err := s.payments.ListByProperty(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	return buildPaymentsReport(rows), nil
}

func (s *ReportService) MaintenanceByProperty(ctx context.Context, principal domain.Principal, propertyID uint) ([]domain.MaintenanceRequest, error) {
	if principal.Role == domain.RoleCaretaker {
		if err := s.requireAssignedCaretaker(ctx, principal, propertyID); err != nil {
			return nil, err
		}
	} else if err := s.requireProperty(ctx, principal, propertyID); err != nil {
		return nil, err
	}
	return s.maintenance.ListByProperty(ctx, propertyID)
}

func (s *ReportService) PaymentsByTenant(ctx context.Context, principal domain.Principal, tenantProfileID uint) (*ports.PaymentsReport, error) {
	if _, err := s.tenants.FindByID(ctx, tenantProfileID, ScopeFor(principal, domain.ResourceTenantProfiles)); err != nil {
		return nil, err
	}
	rows, err := s.payments.ListByTenant(ctx, tenantProfileID)
	if err != nil {
		return nil, err
	}
	return buildPaymentsReport(rows), nil
}

func (s *ReportService) requireAssignedCaretaker(ctx context.Context, principal domain.Principal, propertyID uint) error {
	profile, err := s.caretakers.FindByAccountID(ctx, principal.AccountID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrForbidden
		}
		return err
	}
	if profile.AssignedPropertyID == nil || *profile.AssignedPropertyID != propertyID {
		return domain.ErrForbidden
	}
	return nil
}

// buildPaymentsReport totals the rows: collected sums paid payments, due
// sums pending and overdue ones.
func buildPaymentsReport(rows []domain.Payment) *ports.PaymentsReport {
	report := &ports.PaymentsReport{
		Payments:       rows,
		TotalCollected: decimal.Zero,
		TotalDue:       decimal.Zero,
	}
	for _, p := range rows {
		switch p.Status {
		case domain.PaymentPaid:
			report.TotalCollected = report.TotalCollected.Add(p.Amount)
		case domain.PaymentPending, domain.PaymentOverdue:
			report.TotalDue = report.TotalDue.Add(p.Amount)
		}
	}
	return report
}
