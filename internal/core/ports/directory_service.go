package ports

import (
	"context"

	"github.com/rentwise/property-system/internal/core/domain"
)

// AccountService is the admin-only account CRUD surface. The role is fixed
// at creation; UpdateAccountInput deliberately has no role field.
type AccountService interface {
	Create(ctx context.Context, input RegisterInput) (*domain.Account, error)
	Get(ctx context.Context, id uint) (*domain.Account, error)
	List(ctx context.Context) ([]domain.Account, error)
	Update(ctx context.Context, id uint, input UpdateAccountInput) (*domain.Account, error)
	Delete(ctx context.Context, id uint) error
}

// UpdateAccountInput carries the mutable account fields. Nil means unchanged.
type UpdateAccountInput struct {
	FirstName   *string
	LastName    *string
	PhoneNumber *string
}

// CreatePropertyInput carries the data needed to create a property. The
// owner is always the creating principal.
type CreatePropertyInput struct {
	Name        string
	Address     string
	Description string
	Type        string
}

// UpdatePropertyInput carries the mutable property fields. Nil means unchanged.
type UpdatePropertyInput struct {
	Name        *string
	Address     *string
	Description *string
	Type        *string
}

// PropertyService exposes role-scoped property CRUD.
type PropertyService interface {
	Create(ctx context.Context, principal domain.Principal, input CreatePropertyInput) (*domain.Property, error)
	Get(ctx context.Context, principal domain.Principal, id uint) (*domain.Property, error)
	List(ctx context.Context, principal domain.Principal) ([]domain.Property, error)
	Update(ctx context.Context, principal domain.Principal, id uint, input UpdatePropertyInput) (*domain.Property, error)
	Delete(ctx context.Context, principal domain.Principal, id uint) error
}

// CreateUnitInput carries the data needed to create a unit.
type CreateUnitInput struct {
	PropertyID uint
	UnitNumber string
	Size       string
	Rent       string // decimal string, 2 places
	Status     string // empty = available
}

// UpdateUnitInput carries the mutable unit fields. Nil means unchanged.
type UpdateUnitInput struct {
	UnitNumber *string
	Size       *string
	Rent       *string
	Status     *string
}

// UnitService exposes role-scoped unit CRUD.
type UnitService interface {
	Create(ctx context.Context, principal domain.Principal, input CreateUnitInput) (*domain.Unit, error)
	Get(ctx context.Context, principal domain.Principal, id uint) (*domain.Unit, error)
	List(ctx context.Context, principal domain.Principal) ([]domain.Unit, error)
	Update(ctx context.Context, principal domain.Principal, id uint, input UpdateUnitInput) (*domain.Unit, error)
	Delete(ctx context.Context, principal domain.Principal, id uint) error
}

// ProfileService exposes role-scoped reads over tenant and caretaker profiles.
type ProfileService interface {
	GetTenant(ctx context.Context, principal domain.Principal, id uint) (*domain.TenantProfile, error)
	ListTenants(ctx context.Context, principal domain.Principal) ([]domain.TenantProfile, error)
	GetCaretaker(ctx context.Context, principal domain.Principal, id uint) (*domain.CaretakerProfile, error)
	ListCaretakers(ctx context.Context, principal domain.Principal) ([]domain.CaretakerProfile, error)
}
