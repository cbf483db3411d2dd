package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rentwise/property-system/internal/api/metrics"
	"github.com/rentwise/property-system/internal/core/ports"
)

// PaymentHandler handles HTTP requests for payment records.
type PaymentHandler struct {
	payments ports.PaymentService
}

func NewPaymentHandler(payments ports.PaymentService) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

// Create records a payment for a tenant profile in the caller's scope.
//
// @Summary      Record a payment
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPaymentRequest  true  "Payment details"
// @Success      201   {object}  domain.Payment
// @Failure      404   {object}  map[string]string
// @Router       /v1/payments [post]
func (h *PaymentHandler) Create(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	var req createPaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	payment, err := h.payments.Create(c.Request().Context(), principal, ports.CreatePaymentInput{
		TenantProfileID: req.TenantProfileID,
		Amount:          req.Amount,
		DueDate:         req.DueDate,
		PaymentDate:     req.PaymentDate,
		Status:          req.Status,
	})
	if err != nil {
		return err
	}

	metrics.RecordsCreatedTotal.WithLabelValues("payment").Inc()
	return c.JSON(http.StatusCreated, payment)
}

// Get returns one payment in the caller's scope.
//
// @Summary      Get a payment
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Payment ID"
// @Success      200  {object}  domain.Payment
// @Failure      404  {object}  map[string]string
// @Router       /v1/payments/{id} [get]
func (h *PaymentHandler) Get(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	payment, err := h.payments.Get(c.Request().Context(), principal, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, payment)
}

// List returns the payments in the caller's scope.
//
// @Summary      List payments
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Payment
// @Router       /v1/payments [get]
func (h *PaymentHandler) List(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	payments, err := h.payments.List(c.Request().Context(), principal)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, payments)
}

// Update mutates a payment in the caller's scope.
//
// @Summary      Update a payment
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                   true  "Payment ID"
// @Param        body  body      updatePaymentRequest  true  "Fields to change"
// @Success      200   {object}  domain.Payment
// @Failure      404   {object}  map[string]string
// @Router       /v1/payments/{id} [put]
func (h *PaymentHandler) Update(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req updatePaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	payment, err := h.payments.Update(c.Request().Context(), principal, id, ports.UpdatePaymentInput{
		Amount:      req.Amount,
		DueDate:     req.DueDate,
		PaymentDate: req.PaymentDate,
		Status:      req.Status,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, payment)
}

// Delete removes a payment in the caller's scope.
//
// @Summary      Delete a payment
// @Tags         payments
// @Security     BearerAuth
// @Param        id  path  int  true  "Payment ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /v1/payments/{id} [delete]
func (h *PaymentHandler) Delete(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.payments.Delete(c.Request().Context(), principal, id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
