package domain

import "time"

// MaintenanceStatus is the lifecycle state of a maintenance request.
type MaintenanceStatus string

const (
	MaintenanceOpen       MaintenanceStatus = "open"
	MaintenanceInProgress MaintenanceStatus = "in_progress"
	MaintenanceClosed     MaintenanceStatus = "closed"
)

// ParseMaintenanceStatus validates a wire-level maintenance status string.
func ParseMaintenanceStatus(s string) (MaintenanceStatus, error) {
	switch st := MaintenanceStatus(s); st {
	case MaintenanceOpen, MaintenanceInProgress, MaintenanceClosed:
		return st, nil
	default:
		return "", ErrValidation
	}
}

// MaintenanceRequest is filed by a tenant. RequestDate is set at creation;
// CompletionDate is set externally when the work is done.
type MaintenanceRequest struct {
	ID              uint              `json:"id" gorm:"primaryKey"`
	TenantProfileID uint              `json:"tenant_profile_id" gorm:"not null;index"`
	TenantProfile   *TenantProfile    `json:"tenant,omitempty" gorm:"foreignKey:TenantProfileID"`
	Description     string            `json:"description" gorm:"not null"`
	RequestDate     time.Time         `json:"request_date" gorm:"autoCreateTime"`
	CompletionDate  *time.Time        `json:"completion_date,omitempty"`
	Status          MaintenanceStatus `json:"status" gorm:"size:20;not null;default:open"`
}
