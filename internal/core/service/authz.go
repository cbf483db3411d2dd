package service

import (
	"github.com/rentwise/property-system/internal/core/domain"
	"github.com/rentwise/property-system/internal/core/ports"
)

// ScopeFor computes the maximal read scope for a principal and resource
// type. It is the single source of truth for the per-role visibility rules;
// repositories only interpret the returned scope, they never decide it.
//
// The zero AccessScope denies everything, so a principal with no matching
// rule (or a zero-value principal standing in for "unauthenticated") reads
// an empty set rather than an error.
//
// One rule here is not inherited from the original system: property_manager
// visibility of properties themselves was left undefined upstream, and this
// implementation grants managers their managed set. See DESIGN.md.
func ScopeFor(p domain.Principal, r domain.Resource) ports.AccessScope {
	if p.AccountID == 0 {
		return ports.AccessScope{}
	}

	if p.Role == domain.RoleAdmin {
		return ports.AccessScope{All: true}
	}

	switch r {
	case domain.ResourceProperties:
		switch p.Role {
		case domain.RoleLandlord:
			return ports.AccessScope{OwnerAccountID: p.AccountID}
		case domain.RolePropertyManager:
			return ports.AccessScope{ManagerAccountID: p.AccountID}
		}

	case domain.ResourceUnits:
		switch p.Role {
		case domain.RoleLandlord:
			return ports.AccessScope{OwnerAccountID: p.AccountID}
		case domain.RolePropertyManager:
			return ports.AccessScope{ManagerAccountID: p.AccountID}
		case domain.RoleTenant:
			return ports.AccessScope{TenantAccountID: p.AccountID}
		}

	case domain.ResourceTenantProfiles:
		switch p.Role {
		case domain.RoleLandlord:
			return ports.AccessScope{OwnerAccountID: p.AccountID}
		case domain.RolePropertyManager:
			return ports.AccessScope{ManagerAccountID: p.AccountID}
		case domain.RoleTenant:
			return ports.AccessScope{TenantAccountID: p.AccountID}
		}

	case domain.ResourceCaretakerProfiles:
		switch p.Role {
		case domain.RoleLandlord, domain.RolePropertyManager, domain.RoleCaretaker:
			return ports.AccessScope{All: true}
		}

	case domain.ResourcePayments:
		switch p.Role {
		case domain.RoleLandlord:
			return ports.AccessScope{OwnerAccountID: p.AccountID}
		case domain.RolePropertyManager:
			return ports.AccessScope{ManagerAccountID: p.AccountID}
		case domain.RoleTenant:
			return ports.AccessScope{TenantAccountID: p.AccountID}
		}

	case domain.ResourceMaintenanceRequests:
		switch p.Role {
		case domain.RoleLandlord:
			return ports.AccessScope{OwnerAccountID: p.AccountID}
		case domain.RolePropertyManager:
			return ports.AccessScope{ManagerAccountID: p.AccountID}
		case domain.RoleCaretaker:
			return ports.AccessScope{CaretakerAccountID: p.AccountID}
		case domain.RoleTenant:
			return ports.AccessScope{TenantAccountID: p.AccountID}
		}
	}

	return ports.AccessScope{}
}
