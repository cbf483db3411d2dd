package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/rentwise/property-system/internal/core/domain"
	"github.com/rentwise/property-system/internal/core/ports"
)

// PaymentService exposes role-scoped payment CRUD. Recording a payment
// requires the tenant profile to be within the principal's tenant scope.
// Status is set by callers and never computed from the dates.
type PaymentService struct {
	payments ports.PaymentRepository
	tenants  ports.TenantProfileRepository
	logger   zerolog.Logger
}

func NewPaymentService(payments ports.PaymentRepository, tenants ports.TenantProfileRepository, logger zerolog.Logger) *PaymentService {
	return &PaymentService{payments: payments, tenants: tenants, logger: logger}
}

func (s *PaymentService) Create(ctx context.Context, principal domain.Principal, input ports.CreatePaymentInput) (*domain.Payment, error) {
	if _, err := s.tenants.FindByID(ctx, input.TenantProfileID, ScopeFor(principal, domain.ResourceTenantProfiles)); err != nil {
		return nil, err
	}
	amount, err := parseMoney(input.Amount)
	if err != nil {
		return nil, err
	}
	status := domain.PaymentPending
	if input.Status != "" {
		if status, err = domain.ParsePaymentStatus(input.Status); err != nil {
			return nil, fmt.Errorf("%w: unknown payment status %q", domain.ErrValidation, input.Status)
		}
	}

	payment := &domain.Payment{
		TenantProfileID: input.TenantProfileID,
		Amount:          amount,
		DueDate:         input.DueDate,
		PaymentDate:     input.PaymentDate,
		Status:          status,
	}
	if err := s.payments.Create(ctx, payment); err != nil {
		return nil, err
	}

	s.logger.Info().Uint("payment_id", payment.ID).Uint("tenant_profile_id", payment.TenantProfileID).Msg("payment recorded")
	return payment, nil
}

func (s *PaymentService) Get(ctx context.Context, principal domain.Principal, id uint) (*domain.Payment, error) {
	return s.payments.FindByID(ctx, id, ScopeFor(principal, domain.ResourcePayments))
}

func (s *PaymentService) List(ctx context.Context, principal domain.Principal) ([]domain.Payment, error) {
	return s.payments.List(ctx, ScopeFor(principal, domain.ResourcePayments))
}

func (s *PaymentService) Update(ctx context.Context, principal domain.Principal, id uint, input ports.UpdatePaymentInput) (*domain.Payment, error) {
	payment, err := s.payments.FindByID(ctx, id, ScopeFor(principal, domain.ResourcePayments))
	if err != nil {
		return nil, err
	}
	if input.Amount != nil {
		amount, err := parseMoney(*input.Amount)
		if err != nil {
			return nil, err
		}
		payment.Amount = amount
	}
	if input.DueDate != nil {
		payment.DueDate = input.DueDate
	}
	if input.PaymentDate != nil {
		payment.PaymentDate = input.PaymentDate
	}
	if input.Status != nil {
		status, err := domain.ParsePaymentStatus(*input.Status)
		if err != nil {
			return nil, fmt.Errorf("%w: unknown payment status %q", domain.ErrValidation, *input.Status)
		}
		payment.Status = status
	}
	if err := s.payments.Update(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

func (s *PaymentService) Delete(ctx context.Context, principal domain.Principal, id uint) error {
	if _, err := s.payments.FindByID(ctx, id, ScopeFor(principal, domain.ResourcePayments)); err != nil {
		return err
	}
	return s.payments.Delete(ctx, id)
}
