package handler

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rentwise/property-system/internal/core/domain"
	"github.com/rentwise/property-system/internal/core/ports"
)

type createPaymentRequest struct {
	TenantProfileID uint       `json:"tenant_profile_id" validate:"required"`
	Amount          string     `json:"amount"            validate:"required"`
	DueDate         *time.Time `json:"due_date,omitempty"`
	PaymentDate     *time.Time `json:"payment_date,omitempty"`
	Status          string     `json:"status" validate:"omitempty,oneof=paid pending overdue"`
}

type updatePaymentRequest struct {
	Amount      *string    `json:"amount,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	PaymentDate *time.Time `json:"payment_date,omitempty"`
	Status      *string    `json:"status,omitempty" validate:"omitempty,oneof=paid pending overdue"`
}

type createMaintenanceRequest struct {
	TenantProfileID uint   `json:"tenant_profile_id"`
	Description     string `json:"description" validate:"required"`
}

type updateMaintenanceRequest struct {
	Description    *string    `json:"description,omitempty"`
	Status         *string    `json:"status,omitempty" validate:"omitempty,oneof=open in_progress closed"`
	CompletionDate *time.Time `json:"completion_date,omitempty"`
}

type paymentsReportResponse struct {
	Payments       []domain.Payment `json:"payments"`
	TotalCollected decimal.Decimal  `json:"total_collected"`
	TotalDue       decimal.Decimal  `json:"total_due"`
}

func toPaymentsReportResponse(r *ports.PaymentsReport) paymentsReportResponse {
	payments := r.Payments
	if payments == nil {
		payments = []domain.Payment{}
	}
	return paymentsReportResponse{
		Payments:       payments,
		TotalCollected: r.TotalCollected,
		TotalDue:       r.TotalDue,
	}
}
