package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rentwise/property-system/internal/api/metrics"
	"github.com/rentwise/property-system/internal/core/ports"
)

// UnitHandler handles HTTP requests for unit records.
type UnitHandler struct {
	units ports.UnitService
}

func NewUnitHandler(units ports.UnitService) *UnitHandler {
	return &UnitHandler{units: units}
}

// Create records a new unit under a property in the caller's scope.
//
// @Summary      Create a unit
// @Tags         units
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createUnitRequest  true  "Unit details"
// @Success      201   {object}  domain.Unit
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /v1/units [post]
func (h *UnitHandler) Create(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	var req createUnitRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	unit, err := h.units.Create(c.Request().Context(), principal, ports.CreateUnitInput{
		PropertyID: req.PropertyID,
		UnitNumber: req.UnitNumber,
		Size:       req.Size,
		Rent:       req.Rent,
		Status:     req.Status,
	})
	if err != nil {
		return err
	}

	metrics.RecordsCreatedTotal.WithLabelValues("unit").Inc()
	return c.JSON(http.StatusCreated, unit)
}

// Get returns one unit in the caller's scope.
//
// @Summary      Get a unit
// @Tags         units
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Unit ID"
// @Success      200  {object}  domain.Unit
// @Failure      404  {object}  map[string]string
// @Router       /v1/units/{id} [get]
func (h *UnitHandler) Get(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	unit, err := h.units.Get(c.Request().Context(), principal, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, unit)
}

// List returns the units in the caller's scope.
//
// @Summary      List units
// @Tags         units
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Unit
// @Router       /v1/units [get]
func (h *UnitHandler) List(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	units, err := h.units.List(c.Request().Context(), principal)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, units)
}

// Update mutates a unit in the caller's scope.
//
// @Summary      Update a unit
// @Tags         units
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                true  "Unit ID"
// @Param        body  body      updateUnitRequest  true  "Fields to change"
// @Success      200   {object}  domain.Unit
// @Failure      404   {object}  map[string]string
// @Router       /v1/units/{id} [put]
func (h *UnitHandler) Update(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req updateUnitRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	unit, err := h.units.Update(c.Request().Context(), principal, id, ports.UpdateUnitInput{
		UnitNumber: req.UnitNumber,
		Size:       req.Size,
		Rent:       req.Rent,
		Status:     req.Status,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, unit)
}

// Delete removes a unit in the caller's scope.
//
// @Summary      Delete a unit
// @Tags         units
// @Security     BearerAuth
// @Param        id  path  int  true  "Unit ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /v1/units/{id} [delete]
func (h *UnitHandler) Delete(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.units.Delete(c.Request().Context(), principal, id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
