package ports

import (
	"context"

	"github.com/rentwise/property-system/internal/core/domain"
)

// TenantProfileRepository manages tenant profiles and their tenancy
// assignments. GetOrCreate is not atomic across concurrent callers; the
// one-to-one uniqueness constraint on account_id is the arbiter and the
// loser receives domain.ErrConflict.
type TenantProfileRepository interface {
	GetOrCreate(ctx context.Context, accountID uint) (*domain.TenantProfile, error)
	FindByID(ctx context.Context, id uint, scope AccessScope) (*domain.TenantProfile, error)
	FindByAccountID(ctx context.Context, accountID uint) (*domain.TenantProfile, error)
	List(ctx context.Context, scope AccessScope) ([]domain.TenantProfile, error)
	ListByProperty(ctx context.Context, propertyID uint) ([]domain.TenantProfile, error)

	// CreateAssignment inserts a new tenancy row. A duplicate
	// (tenant, unit) pair surfaces as domain.ErrConflict.
	CreateAssignment(ctx context.Context, a *domain.TenancyAssignment) error
	// DeleteAssignment removes exactly one tenancy row, or returns
	// domain.ErrNotFound when no row matches.
	DeleteAssignment(ctx context.Context, tenantProfileID, unitID uint) error
}

// ManagerProfileRepository manages manager profiles and their managed set.
type ManagerProfileRepository interface {
	GetOrCreate(ctx context.Context, accountID uint) (*domain.ManagerProfile, error)
	FindByAccountID(ctx context.Context, accountID uint) (*domain.ManagerProfile, error)
	// AddManagedProperty has set semantics: adding a property already in
	// the managed set is a no-op.
	AddManagedProperty(ctx context.Context, profileID, propertyID uint) error
	// RemoveManagedProperty has set-remove semantics: removing a property
	// not in the set is a silent no-op.
	RemoveManagedProperty(ctx context.Context, profileID, propertyID uint) error
	// Manages reports whether the account's managed set contains the property.
	Manages(ctx context.Context, accountID, propertyID uint) (bool, error)
}

// CaretakerProfileRepository manages caretaker profiles.
type CaretakerProfileRepository interface {
	GetOrCreate(ctx context.Context, accountID uint) (*domain.CaretakerProfile, error)
	FindByID(ctx context.Context, id uint, scope AccessScope) (*domain.CaretakerProfile, error)
	FindByAccountID(ctx context.Context, accountID uint) (*domain.CaretakerProfile, error)
	List(ctx context.Context, scope AccessScope) ([]domain.CaretakerProfile, error)
	// SetAssignedProperty overwrites the single assigned property;
	// nil clears it.
	SetAssignedProperty(ctx context.Context, profileID uint, propertyID *uint) error
}
