package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/rentwise/property-system/internal/api/metrics"
	"github.com/rentwise/property-system/internal/core/ports"
)

// AssignmentHandler exposes the six assignment operations. Route-level RBAC
// decides who may call each endpoint; the unit assignment additionally runs
// the in-service actor gate (managers only within their managed set,
// caretakers only within their assigned property).
type AssignmentHandler struct {
	assignments ports.AssignmentService
}

func NewAssignmentHandler(assignments ports.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{assignments: assignments}
}

type assignManagerRequest struct {
	ManagerAccountID uint `json:"manager_account_id" validate:"required"`
	PropertyID       uint `json:"property_id"        validate:"required"`
}

type assignCaretakerRequest struct {
	CaretakerAccountID uint `json:"caretaker_account_id" validate:"required"`
	PropertyID         uint `json:"property_id"          validate:"required"`
}

type assignUnitRequest struct {
	TenantAccountID uint       `json:"tenant_account_id" validate:"required"`
	UnitID          uint       `json:"unit_id"           validate:"required"`
	MoveInDate      *time.Time `json:"move_in_date,omitempty"`
	MoveOutDate     *time.Time `json:"move_out_date,omitempty"`
}

type vacateUnitRequest struct {
	TenantAccountID uint `json:"tenant_account_id" validate:"required"`
	UnitID          uint `json:"unit_id"           validate:"required"`
}

type unassignCaretakerRequest struct {
	CaretakerAccountID uint `json:"caretaker_account_id" validate:"required"`
}

type statusResponse struct {
	Status string `json:"status"`
}

func (h *AssignmentHandler) count(operation string, err error) error {
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	metrics.AssignmentsTotal.WithLabelValues(operation, outcome).Inc()
	return err
}

// AssignManager adds a property to a manager's managed set. Idempotent.
//
// @Summary      Assign a manager to a property
// @Tags         assignments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      assignManagerRequest  true  "Manager and property"
// @Success      200   {object}  statusResponse
// @Failure      404   {object}  map[string]string
// @Router       /v1/assign/manager [post]
func (h *AssignmentHandler) AssignManager(c echo.Context) error {
	var req assignManagerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err := h.assignments.AssignManager(c.Request().Context(), req.ManagerAccountID, req.PropertyID)
	if err := h.count("assign_manager", err); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statusResponse{Status: "assigned"})
}

// AssignCaretaker sets the caretaker's single assigned property. A repeat
// call with another property overwrites.
//
// @Summary      Assign a caretaker to a property
// @Tags         assignments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      assignCaretakerRequest  true  "Caretaker and property"
// @Success      200   {object}  statusResponse
// @Failure      404   {object}  map[string]string
// @Router       /v1/assign/caretaker [post]
func (h *AssignmentHandler) AssignCaretaker(c echo.Context) error {
	var req assignCaretakerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err := h.assignments.AssignCaretaker(c.Request().Context(), req.CaretakerAccountID, req.PropertyID)
	if err := h.count("assign_caretaker", err); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statusResponse{Status: "assigned"})
}

// AssignUnit creates a tenancy assignment.
//
// @Summary      Assign a tenant to a unit
// @Tags         assignments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      assignUnitRequest  true  "Tenant, unit and occupancy dates"
// @Success      201   {object}  domain.TenancyAssignment
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /v1/assign/unit [post]
func (h *AssignmentHandler) AssignUnit(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	var req assignUnitRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	assignment, err := h.assignments.AssignUnit(c.Request().Context(), principal, ports.AssignUnitInput{
		TenantAccountID: req.TenantAccountID,
		UnitID:          req.UnitID,
		MoveInDate:      req.MoveInDate,
		MoveOutDate:     req.MoveOutDate,
	})
	if err := h.count("assign_unit", err); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, assignment)
}

// VacateUnit deletes a tenancy assignment.
//
// @Summary      Vacate a tenant from a unit
// @Tags         assignments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      vacateUnitRequest  true  "Tenant and unit"
// @Success      200   {object}  statusResponse
// @Failure      404   {object}  map[string]string
// @Router       /v1/vacate/unit [post]
func (h *AssignmentHandler) VacateUnit(c echo.Context) error {
	var req vacateUnitRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err := h.assignments.VacateUnit(c.Request().Context(), req.TenantAccountID, req.UnitID)
	if err := h.count("vacate_unit", err); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statusResponse{Status: "vacated"})
}

// UnassignCaretaker clears the caretaker's assigned property.
//
// @Summary      Unassign a caretaker
// @Tags         assignments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      unassignCaretakerRequest  true  "Caretaker"
// @Success      200   {object}  statusResponse
// @Failure      404   {object}  map[string]string
// @Router       /v1/unassign/caretaker [post]
func (h *AssignmentHandler) UnassignCaretaker(c echo.Context) error {
	var req unassignCaretakerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err := h.assignments.UnassignCaretaker(c.Request().Context(), req.CaretakerAccountID)
	if err := h.count("unassign_caretaker", err); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statusResponse{Status: "unassigned"})
}

// UnassignManager removes a property from a manager's managed set. Removing
// a property not in the set succeeds silently.
//
// @Summary      Unassign a manager from a property
// @Tags         assignments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      assignManagerRequest  true  "Manager and property"
// @Success      200   {object}  statusResponse
// @Failure      404   {object}  map[string]string
// @Router       /v1/unassign/manager [post]
func (h *AssignmentHandler) UnassignManager(c echo.Context) error {
	var req assignManagerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err := h.assignments.UnassignManager(c.Request().Context(), req.ManagerAccountID, req.PropertyID)
	if err := h.count("unassign_manager", err); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statusResponse{Status: "unassigned"})
}
