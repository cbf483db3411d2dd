package domain

import "fmt"

// Role is the closed set of account roles. Everything downstream dispatches
// on these constants; free-form role strings never reach the core.
type Role string

const (
	RoleTenant          Role = "tenant"
	RoleCaretaker       Role = "caretaker"
	RolePropertyManager Role = "property_manager"
	RoleLandlord        Role = "landlord"
	RoleAdmin           Role = "admin"
)

// ParseRole validates a wire-level role string.
func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleTenant, RoleCaretaker, RolePropertyManager, RoleLandlord, RoleAdmin:
		return r, nil
	default:
		return "", fmt.Errorf("%w: unknown role %q", ErrValidation, s)
	}
}

// Principal is an authenticated account making a request. It is passed
// explicitly into every core call; there is no ambient request state.
type Principal struct {
	AccountID uint
	Role      Role
}

// Resource identifies a readable resource type for authorization scoping.
type Resource int

const (
	ResourceProperties Resource = iota
	ResourceUnits
	ResourceTenantProfiles
	ResourceCaretakerProfiles
	ResourcePayments
	ResourceMaintenanceRequests
)
