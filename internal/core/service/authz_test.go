package service

import (
	"testing"

	"github.com/rentwise/property-system/internal/core/domain"
)

var allResources = []domain.Resource{
	domain.ResourceProperties,
	domain.ResourceUnits,
	domain.ResourceTenantProfiles,
	domain.ResourceCaretakerProfiles,
	domain.ResourcePayments,
	domain.ResourceMaintenanceRequests,
}

func TestScopeFor_AdminSeesEverything(t *testing.T) {
	admin := domain.Principal{AccountID: 1, Role: domain.RoleAdmin}
	for _, r := range allResources {
		if s := ScopeFor(admin, r); !s.All {
			t.Errorf("resource %d: admin scope must be unrestricted, got %+v", r, s)
		}
	}
}

func TestScopeFor_UnauthenticatedFailsClosed(t *testing.T) {
	for _, r := range allResources {
		if s := ScopeFor(domain.Principal{}, r); !s.DeniesAll() {
			t.Errorf("resource %d: zero principal must deny all, got %+v", r, s)
		}
	}
}

func TestScopeFor_OnlyAdminIsUnrestricted(t *testing.T) {
	roles := []domain.Role{
		domain.RoleTenant,
		domain.RoleCaretaker,
		domain.RolePropertyManager,
		domain.RoleLandlord,
	}
	for _, role := range roles {
		p := domain.Principal{AccountID: 7, Role: role}
		for _, r := range allResources {
			s := ScopeFor(p, r)
			// Caretaker profiles are the one directory every staff
			// role may browse in full.
			if r == domain.ResourceCaretakerProfiles && role != domain.RoleTenant {
				if !s.All {
					t.Errorf("role %s must see all caretaker profiles", role)
				}
				continue
			}
			if s.All {
				t.Errorf("role %s on resource %d: unrestricted scope reserved for admin", role, r)
			}
		}
	}
}

func TestScopeFor_VisibilityTable(t *testing.T) {
	landlord := domain.Principal{AccountID: 10, Role: domain.RoleLandlord}
	manager := domain.Principal{AccountID: 20, Role: domain.RolePropertyManager}
	caretaker := domain.Principal{AccountID: 30, Role: domain.RoleCaretaker}
	tenant := domain.Principal{AccountID: 40, Role: domain.RoleTenant}

	cases := []struct {
		name     string
		p        domain.Principal
		r        domain.Resource
		denyAll  bool
		owner    uint
		manager  uint
		caretkr  uint
		tenantID uint
	}{
		{name: "landlord properties", p: landlord, r: domain.ResourceProperties, owner: 10},
		{name: "manager properties", p: manager, r: domain.ResourceProperties, manager: 20},
		{name: "caretaker properties", p: caretaker, r: domain.ResourceProperties, denyAll: true},
		{name: "tenant properties", p: tenant, r: domain.ResourceProperties, denyAll: true},

		{name: "landlord units", p: landlord, r: domain.ResourceUnits, owner: 10},
		{name: "manager units", p: manager, r: domain.ResourceUnits, manager: 20},
		{name: "caretaker units", p: caretaker, r: domain.ResourceUnits, denyAll: true},
		{name: "tenant units", p: tenant, r: domain.ResourceUnits, tenantID: 40},

		{name: "landlord tenant profiles", p: landlord, r: domain.ResourceTenantProfiles, owner: 10},
		{name: "manager tenant profiles", p: manager, r: domain.ResourceTenantProfiles, manager: 20},
		{name: "caretaker tenant profiles", p: caretaker, r: domain.ResourceTenantProfiles, denyAll: true},
		{name: "tenant own profile", p: tenant, r: domain.ResourceTenantProfiles, tenantID: 40},

		{name: "tenant caretaker profiles", p: tenant, r: domain.ResourceCaretakerProfiles, denyAll: true},

		{name: "landlord payments", p: landlord, r: domain.ResourcePayments, owner: 10},
		{name: "manager payments", p: manager, r: domain.ResourcePayments, manager: 20},
		{name: "caretaker payments", p: caretaker, r: domain.ResourcePayments, denyAll: true},
		{name: "tenant payments", p: tenant, r: domain.ResourcePayments, tenantID: 40},

		{name: "landlord maintenance", p: landlord, r: domain.ResourceMaintenanceRequests, owner: 10},
		{name: "manager maintenance", p: manager, r: domain.ResourceMaintenanceRequests, manager: 20},
		{name: "caretaker maintenance", p: caretaker, r: domain.ResourceMaintenanceRequests, caretkr: 30},
		{name: "tenant maintenance", p: tenant, r: domain.ResourceMaintenanceRequests, tenantID: 40},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := ScopeFor(tc.p, tc.r)
			if tc.denyAll {
				if !s.DeniesAll() {
					t.Fatalf("expected deny-all, got %+v", s)
				}
				return
			}
			if s.OwnerAccountID != tc.owner || s.ManagerAccountID != tc.manager ||
				s.CaretakerAccountID != tc.caretkr || s.TenantAccountID != tc.tenantID {
				t.Fatalf("unexpected scope %+v", s)
			}
			if s.All {
				t.Fatalf("non-admin scope must not be unrestricted: %+v", s)
			}
		})
	}
}
