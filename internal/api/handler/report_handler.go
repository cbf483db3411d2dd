package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rentwise/property-system/internal/core/ports"
)

// ReportHandler exposes the property- and tenant-scoped query endpoints.
type ReportHandler struct {
	reports ports.ReportService
}

func NewReportHandler(reports ports.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// TenantsByProperty lists the tenants occupying a property.
//
// @Summary      Tenants of a property
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Property ID"
// @Success      200  {array}  domain.TenantProfile
// @Failure      404  {object}  map[string]string
// @Router       /v1/properties/{id}/tenants [get]
func (h *ReportHandler) TenantsByProperty(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	tenants, err := h.reports.TenantsByProperty(c.Request().Context(), principal, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tenants)
}

// UnitsByProperty lists the units of a property.
//
// @Summary      Units of a property
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Property ID"
// @Success      200  {array}  domain.Unit
// @Failure      404  {object}  map[string]string
// @Router       /v1/properties/{id}/units [get]
func (h *ReportHandler) UnitsByProperty(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	units, err := h.reports.UnitsByProperty(c.Request().Context(), principal, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, units)
}

// PaymentsByProperty lists a property's payments with collected/due totals.
//
// @Summary      Payments of a property
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Property ID"
// @Success      200  {object}  paymentsReportResponse
// @Failure      404  {object}  map[string]string
// @Router       /v1/properties/{id}/payments [get]
func (h *ReportHandler) PaymentsByProperty(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	report, err := h.reports.PaymentsByProperty(c.Request().Context(), principal, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPaymentsReportResponse(report))
}

// MaintenanceByProperty lists a property's maintenance requests. The
// property's assigned caretaker is admitted alongside the property scope.
//
// @Summary      Maintenance requests of a property
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Property ID"
// @Success      200  {array}  domain.MaintenanceRequest
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/properties/{id}/maintenance [get]
func (h *ReportHandler) MaintenanceByProperty(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	requests, err := h.reports.MaintenanceByProperty(c.Request().Context(), principal, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, requests)
}

// PaymentsByTenant lists a tenant's payments with collected/due totals.
//
// @Summary      Payments of a tenant
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Tenant profile ID"
// @Success      200  {object}  paymentsReportResponse
// @Failure      404  {object}  map[string]string
// @Router       /v1/tenants/{id}/payments [get]
func (h *ReportHandler) PaymentsByTenant(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	report, err := h.reports.PaymentsByTenant(c.Request().Context(), principal, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPaymentsReportResponse(report))
}
