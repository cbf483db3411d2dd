package domain

import "time"

// PropertyType classifies a property.
type PropertyType string

const (
	PropertyResidential PropertyType = "residential"
	PropertyCommercial  PropertyType = "commercial"
)

// ParsePropertyType validates a wire-level property type string.
func ParsePropertyType(s string) (PropertyType, error) {
	switch t := PropertyType(s); t {
	case PropertyResidential, PropertyCommercial:
		return t, nil
	default:
		return "", ErrValidation
	}
}

// Property is owned by exactly one account. The creating principal is
// recorded as owner unconditionally; the route-level role gate is the only
// check on who may create.
type Property struct {
	ID          uint         `json:"id" gorm:"primaryKey"`
	OwnerID     uint         `json:"owner_id" gorm:"not null;index"`
	Owner       *Account     `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	Name        string       `json:"name" gorm:"size:100;not null"`
	Address     string       `json:"address" gorm:"size:255;not null"`
	Description string       `json:"description"`
	Type        PropertyType `json:"type" gorm:"size:20;not null;default:residential"`
	Units       []Unit       `json:"units,omitempty" gorm:"foreignKey:PropertyID"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}
