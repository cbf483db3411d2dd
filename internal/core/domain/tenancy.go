package domain

import "time"

// TenantProfile is one-to-one with a tenant account and aggregates the
// units the tenant occupies through tenancy assignments.
type TenantProfile struct {
	ID        uint     `json:"id" gorm:"primaryKey"`
	AccountID uint     `json:"account_id" gorm:"uniqueIndex;not null"`
	Account   *Account `json:"account,omitempty" gorm:"foreignKey:AccountID"`
	Units     []Unit   `json:"units,omitempty" gorm:"many2many:tenancy_assignments;joinForeignKey:TenantProfileID;joinReferences:UnitID"`
}

// TenancyAssignment links a tenant profile to a unit with an optional
// occupancy date range. A tenant may hold any number of concurrent
// assignments, but at most one per unit.
type TenancyAssignment struct {
	ID              uint       `json:"id" gorm:"primaryKey"`
	TenantProfileID uint       `json:"tenant_profile_id" gorm:"not null;uniqueIndex:idx_tenancy_tenant_unit"`
	UnitID          uint       `json:"unit_id" gorm:"not null;uniqueIndex:idx_tenancy_tenant_unit"`
	MoveInDate      *time.Time `json:"move_in_date,omitempty"`
	MoveOutDate     *time.Time `json:"move_out_date,omitempty"`
}

// ManagerProfile is one-to-one with a property_manager account and holds the
// set of properties the manager administers.
type ManagerProfile struct {
	ID                uint       `json:"id" gorm:"primaryKey"`
	AccountID         uint       `json:"account_id" gorm:"uniqueIndex;not null"`
	Account           *Account   `json:"account,omitempty" gorm:"foreignKey:AccountID"`
	ManagedProperties []Property `json:"managed_properties,omitempty" gorm:"many2many:manager_properties"`
}

// CaretakerProfile is one-to-one with a caretaker account. A caretaker
// serves at most one property at a time; reassignment overwrites.
type CaretakerProfile struct {
	ID                 uint      `json:"id" gorm:"primaryKey"`
	AccountID          uint      `json:"account_id" gorm:"uniqueIndex;not null"`
	Account            *Account  `json:"account,omitempty" gorm:"foreignKey:AccountID"`
	AssignedPropertyID *uint     `json:"assigned_property_id,omitempty"`
	AssignedProperty   *Property `json:"assigned_property,omitempty" gorm:"foreignKey:AssignedPropertyID"`
}
