package ports

import (
	"context"
	"time"

	"github.com/rentwise/property-system/internal/core/domain"
)

// AssignUnitInput carries the parameters for assigning a tenant to a unit.
type AssignUnitInput struct {
	TenantAccountID uint
	UnitID          uint
	MoveInDate      *time.Time
	MoveOutDate     *time.Time
}

// AssignmentService mutates the three join relationships: manager↔property,
// caretaker↔property, and tenant↔unit. Referenced entities that are absent
// (or whose account carries the wrong role) yield domain.ErrNotFound;
// uniqueness-constraint races yield domain.ErrConflict.
type AssignmentService interface {
	// AssignManager adds the property to the manager's managed set.
	// Repeat calls are no-ops.
	AssignManager(ctx context.Context, managerAccountID, propertyID uint) error
	// AssignCaretaker overwrites the caretaker's single assigned property.
	AssignCaretaker(ctx context.Context, caretakerAccountID, propertyID uint) error
	// AssignUnit creates a new tenancy assignment. Manager actors must
	// manage the unit's property and caretaker actors must be assigned to
	// it, else domain.ErrForbidden. Not idempotent: a repeat call for the
	// same (tenant, unit) pair fails with domain.ErrConflict.
	AssignUnit(ctx context.Context, actor domain.Principal, input AssignUnitInput) (*domain.TenancyAssignment, error)
	// VacateUnit deletes exactly the (tenant, unit) assignment row.
	VacateUnit(ctx context.Context, tenantAccountID, unitID uint) error
	// UnassignCaretaker clears the caretaker's assigned property.
	UnassignCaretaker(ctx context.Context, caretakerAccountID uint) error
	// UnassignManager removes the property from the managed set; removing
	// a property not in the set is a silent no-op.
	UnassignManager(ctx context.Context, managerAccountID, propertyID uint) error
}
