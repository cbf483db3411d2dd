package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is set externally; it is never derived from the dates.
type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "paid"
	PaymentPending PaymentStatus = "pending"
	PaymentOverdue PaymentStatus = "overdue"
)

// ParsePaymentStatus validates a wire-level payment status string.
func ParsePaymentStatus(s string) (PaymentStatus, error) {
	switch st := PaymentStatus(s); st {
	case PaymentPaid, PaymentPending, PaymentOverdue:
		return st, nil
	default:
		return "", ErrValidation
	}
}

// Payment is a rent payment record belonging to one tenant profile.
type Payment struct {
	ID              uint            `json:"id" gorm:"primaryKey"`
	TenantProfileID uint            `json:"tenant_profile_id" gorm:"not null;index"`
	TenantProfile   *TenantProfile  `json:"tenant,omitempty" gorm:"foreignKey:TenantProfileID"`
	Amount          decimal.Decimal `json:"amount" gorm:"type:decimal(10,2);not null"`
	DueDate         *time.Time      `json:"due_date,omitempty"`
	PaymentDate     *time.Time      `json:"payment_date,omitempty"`
	Status          PaymentStatus   `json:"status" gorm:"size:20;not null;default:pending"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
