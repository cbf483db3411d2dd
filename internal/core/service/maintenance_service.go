package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/rentwise/property-system/internal/core/domain"
	"github.com/rentwise/property-system/internal/core/ports"
)

// MaintenanceService exposes role-scoped maintenance request CRUD. Tenants
// always file against their own profile, which is created on first use; the
// request timestamp is set by the store at creation, the completion
// timestamp only ever by an explicit update.
type MaintenanceService struct {
	requests ports.MaintenanceRepository
	tenants  ports.TenantProfileRepository
	logger   zerolog.Logger
}

func NewMaintenanceService(requests ports.MaintenanceRepository, tenants ports.TenantProfileRepository, logger zerolog.Logger) *MaintenanceService {
	return &MaintenanceService{requests: requests, tenants: tenants, logger: logger}
}

func (s *MaintenanceService) Create(ctx context.Context, principal domain.Principal, input ports.CreateMaintenanceInput) (*domain.MaintenanceRequest, error) {
	if input.Description == "" {
		return nil, fmt.Errorf("%w: description is required", domain.ErrValidation)
	}

	tenantProfileID := input.TenantProfileID
	if principal.Role == domain.RoleTenant {
		profile, err := s.tenants.GetOrCreate(ctx, principal.AccountID)
		if err != nil {
			return nil, err
		}
		tenantProfileID = profile.ID
	} else if _, err := s.tenants.FindByID(ctx, tenantProfileID, ScopeFor(principal, domain.ResourceTenantProfiles)); err != nil {
		return nil, err
	}

	request := &domain.MaintenanceRequest{
		TenantProfileID: tenantProfileID,
		Description:     input.Description,
		Status:          domain.MaintenanceOpen,
	}
	if err := s.requests.Create(ctx, request); err != nil {
		return nil, err
	}

	s.logger.Info().Uint("request_id", request.ID).Uint("tenant_profile_id", tenantProfileID).Msg("maintenance request filed")
	return request, nil
}

func (s *MaintenanceService) Get(ctx context.Context, principal domain.Principal, id uint) (*domain.MaintenanceRequest, error) {
	return s.requests.FindByID(ctx, id, ScopeFor(principal, domain.ResourceMaintenanceRequests))
}

func (s *MaintenanceService) List(ctx context.Context, principal domain.Principal) ([]domain.MaintenanceRequest, error) {
	return s.requests.List(ctx, ScopeFor(principal, domain.ResourceMaintenanceRequests))
}

func (s *MaintenanceService) Update(ctx context.Context, principal domain.Principal, id uint, input ports.UpdateMaintenanceInput) (*domain.MaintenanceRequest, error) {
	request, err := s.requests.FindByID(ctx, id, ScopeFor(principal, domain.ResourceMaintenanceRequests))
	if err != nil {
		return nil, err
	}
	if input.Description != nil {
		request.Description = *input.Description
	}
	if input.Status != nil {
		status, err := domain.ParseMaintenanceStatus(*input.Status)
		if err != nil {
			return nil, fmt.Errorf("%w: unknown maintenance status %q", domain.ErrValidation, *input.Status)
		}
		request.Status = status
	}
	if input.CompletionDate != nil {
		request.CompletionDate = input.CompletionDate
	}
	if err := s.requests.Update(ctx, request); err != nil {
		return nil, err
	}
	return request, nil
}

func (s *MaintenanceService) Delete(ctx context.Context, principal domain.Principal, id uint) error {
	if _, err := s.requests.FindByID(ctx, id, ScopeFor(principal, domain.ResourceMaintenanceRequests)); err != nil {
		return err
	}
	return s.requests.Delete(ctx, id)
}
