package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rentwise/property-system/internal/api/metrics"
	"github.com/rentwise/property-system/internal/core/ports"
)

// PropertyHandler handles HTTP requests for property records. All reads are
// scoped to the caller's visibility; an out-of-scope id reads as 404.
type PropertyHandler struct {
	properties ports.PropertyService
}

func NewPropertyHandler(properties ports.PropertyService) *PropertyHandler {
	return &PropertyHandler{properties: properties}
}

// Create records a new property owned by the caller.
//
// @Summary      Create a property
// @Tags         properties
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPropertyRequest  true  "Property details"
// @Success      201   {object}  domain.Property
// @Failure      400   {object}  map[string]string
// @Router       /v1/properties [post]
func (h *PropertyHandler) Create(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	var req createPropertyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	property, err := h.properties.Create(c.Request().Context(), principal, ports.CreatePropertyInput{
		Name:        req.Name,
		Address:     req.Address,
		Description: req.Description,
		Type:        req.Type,
	})
	if err != nil {
		return err
	}

	metrics.RecordsCreatedTotal.WithLabelValues("property").Inc()
	return c.JSON(http.StatusCreated, property)
}

// Get returns one property in the caller's scope.
//
// @Summary      Get a property
// @Tags         properties
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Property ID"
// @Success      200  {object}  domain.Property
// @Failure      404  {object}  map[string]string
// @Router       /v1/properties/{id} [get]
func (h *PropertyHandler) Get(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	property, err := h.properties.Get(c.Request().Context(), principal, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, property)
}

// List returns the properties in the caller's scope.
//
// @Summary      List properties
// @Tags         properties
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Property
// @Router       /v1/properties [get]
func (h *PropertyHandler) List(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	properties, err := h.properties.List(c.Request().Context(), principal)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, properties)
}

// Update mutates a property in the caller's scope.
//
// @Summary      Update a property
// @Tags         properties
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                    true  "Property ID"
// @Param        body  body      updatePropertyRequest  true  "Fields to change"
// @Success      200   {object}  domain.Property
// @Failure      404   {object}  map[string]string
// @Router       /v1/properties/{id} [put]
func (h *PropertyHandler) Update(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req updatePropertyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	property, err := h.properties.Update(c.Request().Context(), principal, id, ports.UpdatePropertyInput{
		Name:        req.Name,
		Address:     req.Address,
		Description: req.Description,
		Type:        req.Type,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, property)
}

// Delete removes a property in the caller's scope.
//
// @Summary      Delete a property
// @Tags         properties
// @Security     BearerAuth
// @Param        id  path  int  true  "Property ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /v1/properties/{id} [delete]
func (h *PropertyHandler) Delete(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.properties.Delete(c.Request().Context(), principal, id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
