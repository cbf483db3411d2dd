package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/rentwise/property-system/internal/core/domain"
	"github.com/rentwise/property-system/internal/core/ports"
)

// AssignmentService mutates the manager↔property, caretaker↔property, and
// tenant↔unit join relationships. There is no application-level locking:
// concurrent get-or-create races are arbitrated by the store's uniqueness
// constraints and surface as domain.ErrConflict to the loser.
type AssignmentService struct {
	accounts   ports.AccountRepository
	properties ports.PropertyRepository
	units      ports.UnitRepository
	tenants    ports.TenantProfileRepository
	managers   ports.ManagerProfileRepository
	caretakers ports.CaretakerProfileRepository
	logger     zerolog.Logger
}

func NewAssignmentService(
	accounts ports.AccountRepository,
	properties ports.PropertyRepository,
	units ports.UnitRepository,
	tenants ports.TenantProfileRepository,
	managers ports.ManagerProfileRepository,
	caretakers ports.CaretakerProfileRepository,
	logger zerolog.Logger,
) *AssignmentService {
	return &AssignmentService{
		accounts:   accounts,
		properties: properties,
		units:      units,
		tenants:    tenants,
		managers:   managers,
		caretakers: caretakers,
		logger:     logger,
	}
}

// accountWithRole resolves an account and enforces its role. A role mismatch
// is reported as a lookup failure, not as forbidden: the caller referenced
// an entity that does not exist in the requested capacity.
func (s *AssignmentService) accountWithRole(ctx context.Context, id uint, role domain.Role) (*domain.Account, error) {
	account, err := s.accounts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if account.Role != role {
		return nil, fmt.Errorf("%w: account %d is not a %s", domain.ErrNotFound, id, role)
	}
	return account, nil
}

func (s *AssignmentService) AssignManager(ctx context.Context, managerAccountID, propertyID uint) error {
	account, err := s.accountWithRole(ctx, managerAccountID, domain.RolePropertyManager)
	if err != nil {
		return err
	}
	if _, err := s.properties.FindByID(ctx, propertyID, ports.ScopeAll()); err != nil {
		return err
	}

	profile, err := s.managers.GetOrCreate(ctx, account.ID)
	if err != nil {
		return err
	}
	if err := s.managers.AddManagedProperty(ctx, profile.ID, propertyID); err != nil {
		return err
	}

	s.logger.Info().Uint("manager_account_id", managerAccountID).Uint("property_id", propertyID).Msg("manager assigned")
	return nil
}

func (s *AssignmentService) AssignCaretaker(ctx context.Context, caretakerAccountID, propertyID uint) error {
	account, err := s.accountWithRole(ctx, caretakerAccountID, domain.RoleCaretaker)
	if err != nil {
		return err
	}
	if _, err := s.properties.FindByID(ctx, propertyID, ports.ScopeAll()); err != nil {
		return err
	}

	profile, err := s.caretakers.GetOrCreate(ctx, account.ID)
	if err != nil {
		return err
	}
	// Last write wins: a caretaker serves one property at a time.
	if err := s.caretakers.SetAssignedProperty(ctx, profile.ID, &propertyID); err != nil {
		return err
	}

	s.logger.Info().Uint("caretaker_account_id", caretakerAccountID).Uint("property_id", propertyID).Msg("caretaker assigned")
	return nil
}

func (s *AssignmentService) AssignUnit(ctx context.Context, actor domain.Principal, input ports.AssignUnitInput) (*domain.TenancyAssignment, error) {
	account, err := s.accountWithRole(ctx, input.TenantAccountID, domain.RoleTenant)
	if err != nil {
		return nil, err
	}
	unit, err := s.units.FindByID(ctx, input.UnitID, ports.ScopeAll())
	if err != nil {
		return nil, err
	}

	if err := s.gateUnitAssignment(ctx, actor, unit); err != nil {
		return nil, err
	}

	profile, err := s.tenants.GetOrCreate(ctx, account.ID)
	if err != nil {
		return nil, err
	}

	assignment := &domain.TenancyAssignment{
		TenantProfileID: profile.ID,
		UnitID:          unit.ID,
		MoveInDate:      input.MoveInDate,
		MoveOutDate:     input.MoveOutDate,
	}
	// Deliberately not idempotent: the (tenant, unit) uniqueness constraint
	// rejects a repeat assignment with a conflict.
	if err := s.tenants.CreateAssignment(ctx, assignment); err != nil {
		return nil, err
	}

	s.logger.Info().
		Uint("tenant_account_id", input.TenantAccountID).
		Uint("unit_id", unit.ID).
		Uint("actor_account_id", actor.AccountID).
		Msg("unit assigned")
	return assignment, nil
}

// gateUnitAssignment enforces the actor scope for assign_unit: managers may
// only place tenants into units of properties they manage, caretakers only
// into units of their single assigned property. Admins and landlords pass.
func (s *AssignmentService) gateUnitAssignment(ctx context.Context, actor domain.Principal, unit *domain.Unit) error {
	switch actor.Role {
	case domain.RolePropertyManager:
		ok, err := s.managers.Manages(ctx, actor.AccountID, unit.PropertyID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: property %d is not in the actor's managed set", domain.ErrForbidden, unit.PropertyID)
		}
	case domain.RoleCaretaker:
		profile, err := s.caretakers.FindByAccountID(ctx, actor.AccountID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return fmt.Errorf("%w: caretaker has no assigned property", domain.ErrForbidden)
			}
			return err
		}
		if profile.AssignedPropertyID == nil || *profile.AssignedPropertyID != unit.PropertyID {
			return fmt.Errorf("%w: unit is outside the caretaker's assigned property", domain.ErrForbidden)
		}
	}
	return nil
}

func (s *AssignmentService) VacateUnit(ctx context.Context, tenantAccountID, unitID uint) error {
	account, err := s.accountWithRole(ctx, tenantAccountID, domain.RoleTenant)
	if err != nil {
		return err
	}
	profile, err := s.tenants.FindByAccountID(ctx, account.ID)
	if err != nil {
		return err
	}
	if err := s.tenants.DeleteAssignment(ctx, profile.ID, unitID); err != nil {
		return err
	}

	s.logger.Info().Uint("tenant_account_id", tenantAccountID).Uint("unit_id", unitID).Msg("unit vacated")
	return nil
}

func (s *AssignmentService) UnassignCaretaker(ctx context.Context, caretakerAccountID uint) error {
	profile, err := s.caretakers.FindByAccountID(ctx, caretakerAccountID)
	if err != nil {
		return err
	}
	if err := s.caretakers.SetAssignedProperty(ctx, profile.ID, nil); err != nil {
		return err
	}

	s.logger.Info().Uint("caretaker_account_id", caretakerAccountID).Msg("caretaker unassigned")
	return nil
}

func (s *AssignmentService) UnassignManager(ctx context.Context, managerAccountID, propertyID uint) error {
	account, err := s.accountWithRole(ctx, managerAccountID, domain.RolePropertyManager)
	if err != nil {
		return err
	}
	if _, err := s.properties.FindByID(ctx, propertyID, ports.ScopeAll()); err != nil {
		return err
	}

	profile, err := s.managers.FindByAccountID(ctx, account.ID)
	if err != nil {
		// No profile means an empty managed set; removal is a no-op.
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return err
	}
	if err := s.managers.RemoveManagedProperty(ctx, profile.ID, propertyID); err != nil {
		return err
	}

	s.logger.Info().Uint("manager_account_id", managerAccountID).Uint("property_id", propertyID).Msg("manager unassigned")
	return nil
}
