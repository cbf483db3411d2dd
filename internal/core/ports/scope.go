package ports

// AccessScope narrows a read (list or lookup) to the rows a principal may
// see. Exactly one field is set per scope; the zero value denies everything,
// so an unauthenticated principal or a role with no matching rule falls
// closed to an empty result set.
//
// Repositories interpret the fields with joins over the ownership graph:
//
//	OwnerAccountID:     rows reachable from properties owned by the account
//	ManagerAccountID:   rows reachable from the manager's managed set
//	CaretakerAccountID: rows reachable from the caretaker's assigned property
//	TenantAccountID:    rows belonging to the tenant's own profile
type AccessScope struct {
	All                bool
	OwnerAccountID     uint
	ManagerAccountID   uint
	CaretakerAccountID uint
	TenantAccountID    uint
}

// ScopeAll is the unrestricted scope used for existence checks that are not
// subject to visibility rules (e.g. referential checks inside assignments).
func ScopeAll() AccessScope { return AccessScope{All: true} }

// DeniesAll reports whether the scope excludes every row.
func (s AccessScope) DeniesAll() bool {
	return !s.All && s.OwnerAccountID == 0 && s.ManagerAccountID == 0 &&
		s.CaretakerAccountID == 0 && s.TenantAccountID == 0
}
