package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/rentwise/property-system/internal/core/domain"
	"github.com/rentwise/property-system/internal/core/ports"
)

// ProfileService exposes role-scoped reads over tenant and caretaker
// profiles. Profiles are created by the assignment operations, never here.
type ProfileService struct {
	tenants    ports.TenantProfileRepository
	caretakers ports.CaretakerProfileRepository
	logger     zerolog.Logger
}

func NewProfileService(tenants ports.TenantProfileRepository, caretakers ports.CaretakerProfileRepository, logger zerolog.Logger) *ProfileService {
	return &ProfileService{tenants: tenants, caretakers: caretakers, logger: logger}
}

func (s *ProfileService) GetTenant(ctx context.Context, principal domain.Principal, id uint) (*domain.TenantProfile, error) {
	return s.tenants.FindByID(ctx, id, ScopeFor(principal, domain.ResourceTenantProfiles))
}

func (s *ProfileService) ListTenants(ctx context.Context, principal domain.Principal) ([]domain.TenantProfile, error) {
	return s.tenants.List(ctx, ScopeFor(principal, domain.ResourceTenantProfiles))
}

func (s *ProfileService) GetCaretaker(ctx context.Context, principal domain.Principal, id uint) (*domain.CaretakerProfile, error) {
	return s.caretakers.FindByID(ctx, id, ScopeFor(principal, domain.ResourceCaretakerProfiles))
}

func (s *ProfileService) ListCaretakers(ctx context.Context, principal domain.Principal) ([]domain.CaretakerProfile, error) {
	return s.caretakers.List(ctx, ScopeFor(principal, domain.ResourceCaretakerProfiles))
}
