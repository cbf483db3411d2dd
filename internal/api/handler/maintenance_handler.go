package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rentwise/property-system/internal/api/metrics"
	"github.com/rentwise/property-system/internal/core/ports"
)

// MaintenanceHandler handles HTTP requests for maintenance requests.
// Tenants file against their own profile; the in-service resolution ignores
// any tenant_profile_id a tenant sends.
type MaintenanceHandler struct {
	maintenance ports.MaintenanceService
}

func NewMaintenanceHandler(maintenance ports.MaintenanceService) *MaintenanceHandler {
	return &MaintenanceHandler{maintenance: maintenance}
}

// Create files a maintenance request.
//
// @Summary      File a maintenance request
// @Tags         maintenance
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createMaintenanceRequest  true  "Request details"
// @Success      201   {object}  domain.MaintenanceRequest
// @Failure      400   {object}  map[string]string
// @Router       /v1/maintenance [post]
func (h *MaintenanceHandler) Create(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	var req createMaintenanceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	request, err := h.maintenance.Create(c.Request().Context(), principal, ports.CreateMaintenanceInput{
		TenantProfileID: req.TenantProfileID,
		Description:     req.Description,
	})
	if err != nil {
		return err
	}

	metrics.RecordsCreatedTotal.WithLabelValues("maintenance_request").Inc()
	return c.JSON(http.StatusCreated, request)
}

// Get returns one maintenance request in the caller's scope.
//
// @Summary      Get a maintenance request
// @Tags         maintenance
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Request ID"
// @Success      200  {object}  domain.MaintenanceRequest
// @Failure      404  {object}  map[string]string
// @Router       /v1/maintenance/{id} [get]
func (h *MaintenanceHandler) Get(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	request, err := h.maintenance.Get(c.Request().Context(), principal, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, request)
}

// List returns the maintenance requests in the caller's scope.
//
// @Summary      List maintenance requests
// @Tags         maintenance
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.MaintenanceRequest
// @Router       /v1/maintenance [get]
func (h *MaintenanceHandler) List(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	requests, err := h.maintenance.List(c.Request().Context(), principal)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, requests)
}

// Update mutates a maintenance request in the caller's scope; the assigned
// caretaker reaches requests of tenants in their property.
//
// @Summary      Update a maintenance request
// @Tags         maintenance
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                       true  "Request ID"
// @Param        body  body      updateMaintenanceRequest  true  "Fields to change"
// @Success      200   {object}  domain.MaintenanceRequest
// @Failure      404   {object}  map[string]string
// @Router       /v1/maintenance/{id} [put]
func (h *MaintenanceHandler) Update(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req updateMaintenanceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	request, err := h.maintenance.Update(c.Request().Context(), principal, id, ports.UpdateMaintenanceInput{
		Description:    req.Description,
		Status:         req.Status,
		CompletionDate: req.CompletionDate,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, request)
}

// Delete removes a maintenance request in the caller's scope.
//
// @Summary      Delete a maintenance request
// @Tags         maintenance
// @Security     BearerAuth
// @Param        id  path  int  true  "Request ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /v1/maintenance/{id} [delete]
func (h *MaintenanceHandler) Delete(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.maintenance.Delete(c.Request().Context(), principal, id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
