package gorm

import (
	"errors"

	"gorm.io/gorm"

	"github.com/rentwise/property-system/internal/core/domain"
	"github.com/rentwise/property-system/internal/core/ports"
)

// errScopeDenied marks a query whose scope excludes every row. Callers turn
// it into an empty list or domain.ErrNotFound without touching the database.
var errScopeDenied = errors.New("scope denies all rows")

// mapError translates store-level errors into the domain taxonomy.
func mapError(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return domain.ErrConflict
	}
	return err
}

// scopeProperties narrows a query on properties to those visible under the
// scope: all rows, the owner's rows, or the manager's managed set.
func scopeProperties(q *gorm.DB, scope ports.AccessScope) (*gorm.DB, error) {
	switch {
	case scope.All:
		return q, nil
	case scope.OwnerAccountID != 0:
		return q.Where("properties.owner_id = ?", scope.OwnerAccountID), nil
	case scope.ManagerAccountID != 0:
		return q.
			Joins("JOIN manager_properties mp ON mp.property_id = properties.id").
			Joins("JOIN manager_profiles m ON m.id = mp.manager_profile_id").
			Where("m.account_id = ?", scope.ManagerAccountID), nil
	default:
		return nil, errScopeDenied
	}
}

// scopeUnits narrows a query on units. Owners and managers reach units
// through their property scope; tenants reach exactly the units they occupy.
func scopeUnits(q *gorm.DB, scope ports.AccessScope) (*gorm.DB, error) {
	switch {
	case scope.All:
		return q, nil
	case scope.OwnerAccountID != 0:
		return q.
			Joins("JOIN properties p ON p.id = units.property_id").
			Where("p.owner_id = ?", scope.OwnerAccountID), nil
	case scope.ManagerAccountID != 0:
		return q.
			Joins("JOIN manager_properties mp ON mp.property_id = units.property_id").
			Joins("JOIN manager_profiles m ON m.id = mp.manager_profile_id").
			Where("m.account_id = ?", scope.ManagerAccountID), nil
	case scope.TenantAccountID != 0:
		return q.
			Joins("JOIN tenancy_assignments ta ON ta.unit_id = units.id").
			Joins("JOIN tenant_profiles tp ON tp.id = ta.tenant_profile_id").
			Where("tp.account_id = ?", scope.TenantAccountID), nil
	default:
		return nil, errScopeDenied
	}
}

// scopeTenantProfiles narrows a query on tenant profiles. A tenant sees only
// their own profile; owners and managers see the tenants occupying their
// properties, reached through the tenancy assignments.
func scopeTenantProfiles(q *gorm.DB, scope ports.AccessScope) (*gorm.DB, error) {
	switch {
	case scope.All:
		return q, nil
	case scope.TenantAccountID != 0:
		return q.Where("tenant_profiles.account_id = ?", scope.TenantAccountID), nil
	case scope.OwnerAccountID != 0:
		return q.Distinct("tenant_profiles.*").
			Joins("JOIN tenancy_assignments ta ON ta.tenant_profile_id = tenant_profiles.id").
			Joins("JOIN units u ON u.id = ta.unit_id").
			Joins("JOIN properties p ON p.id = u.property_id").
			Where("p.owner_id = ?", scope.OwnerAccountID), nil
	case scope.ManagerAccountID != 0:
		return q.Distinct("tenant_profiles.*").
			Joins("JOIN tenancy_assignments ta ON ta.tenant_profile_id = tenant_profiles.id").
			Joins("JOIN units u ON u.id = ta.unit_id").
			Joins("JOIN manager_properties mp ON mp.property_id = u.property_id").
			Joins("JOIN manager_profiles m ON m.id = mp.manager_profile_id").
			Where("m.account_id = ?", scope.ManagerAccountID), nil
	default:
		return nil, errScopeDenied
	}
}

// scopeByTenantProfile narrows a query on a table carrying a
// tenant_profile_id column (payments, maintenance requests) through the
// tenant-profile visibility of the scope. The caretaker rule is handled by
// the maintenance repository separately.
func scopeByTenantProfile(q *gorm.DB, table string, scope ports.AccessScope) (*gorm.DB, error) {
	switch {
	case scope.All:
		return q, nil
	case scope.TenantAccountID != 0:
		return q.
			Joins("JOIN tenant_profiles tp ON tp.id = "+table+".tenant_profile_id").
			Where("tp.account_id = ?", scope.TenantAccountID), nil
	case scope.OwnerAccountID != 0:
		return q.Distinct(table+".*").
			Joins("JOIN tenancy_assignments ta ON ta.tenant_profile_id = "+table+".tenant_profile_id").
			Joins("JOIN units u ON u.id = ta.unit_id").
			Joins("JOIN properties p ON p.id = u.property_id").
			Where("p.owner_id = ?", scope.OwnerAccountID), nil
	case scope.ManagerAccountID != 0:
		return q.Distinct(table+".*").
			Joins("JOIN tenancy_assignments ta ON ta.tenant_profile_id = "+table+".tenant_profile_id").
			Joins("JOIN units u ON u.id = ta.unit_id").
			Joins("JOIN manager_properties mp ON mp.property_id = u.property_id").
			Joins("JOIN manager_profiles m ON m.id = mp.manager_profile_id").
			Where("m.account_id = ?", scope.ManagerAccountID), nil
	default:
		return nil, errScopeDenied
	}
}
