package domain

import "github.com/shopspring/decimal"

// UnitStatus is the occupancy state of a unit. It is set by callers and is
// never transitioned automatically when tenancy assignments change.
type UnitStatus string

const (
	UnitAvailable        UnitStatus = "available"
	UnitOccupied         UnitStatus = "occupied"
	UnitUnderMaintenance UnitStatus = "under_maintenance"
)

// ParseUnitStatus validates a wire-level unit status string.
func ParseUnitStatus(s string) (UnitStatus, error) {
	switch st := UnitStatus(s); st {
	case UnitAvailable, UnitOccupied, UnitUnderMaintenance:
		return st, nil
	default:
		return "", ErrValidation
	}
}

// Unit belongs to exactly one property; the unit number is unique within it.
type Unit struct {
	ID         uint            `json:"id" gorm:"primaryKey"`
	PropertyID uint            `json:"property_id" gorm:"not null;uniqueIndex:idx_units_property_number"`
	UnitNumber string          `json:"unit_number" gorm:"size:50;not null;uniqueIndex:idx_units_property_number"`
	Size       string          `json:"size,omitempty" gorm:"size:50"`
	Rent       decimal.Decimal `json:"rent" gorm:"type:decimal(10,2);not null"`
	Status     UnitStatus      `json:"status" gorm:"size:20;not null;default:available"`
}
