package handler

type updateAccountRequest struct {
	FirstName   *string `json:"first_name,omitempty"`
	LastName    *string `json:"last_name,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
}

type createPropertyRequest struct {
	Name        string `json:"name"    validate:"required"`
	Address     string `json:"address" validate:"required"`
	Description string `json:"description"`
	Type        string `json:"type"    validate:"required,oneof=residential commercial"`
}

type updatePropertyRequest struct {
	Name        *string `json:"name,omitempty"`
	Address     *string `json:"address,omitempty"`
	Description *string `json:"description,omitempty"`
	Type        *string `json:"type,omitempty" validate:"omitempty,oneof=residential commercial"`
}

type createUnitRequest struct {
	PropertyID uint   `json:"property_id" validate:"required"`
	UnitNumber string `json:"unit_number" validate:"required"`
	Size       string `json:"size"`
	Rent       string `json:"rent"        validate:"required"`
	Status     string `json:"status"      validate:"omitempty,oneof=available occupied under_maintenance"`
}

type updateUnitRequest struct {
	UnitNumber *string `json:"unit_number,omitempty"`
	Size       *string `json:"size,omitempty"`
	Rent       *string `json:"rent,omitempty"`
	Status     *string `json:"status,omitempty" validate:"omitempty,oneof=available occupied under_maintenance"`
}
