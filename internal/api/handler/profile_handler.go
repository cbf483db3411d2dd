package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rentwise/property-system/internal/core/ports"
)

// ProfileHandler exposes the read-only tenant and caretaker directories.
type ProfileHandler struct {
	profiles ports.ProfileService
}

func NewProfileHandler(profiles ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// ListTenants returns the tenant profiles in the caller's scope.
//
// @Summary      List tenant profiles
// @Tags         profiles
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.TenantProfile
// @Router       /v1/tenants [get]
func (h *ProfileHandler) ListTenants(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	tenants, err := h.profiles.ListTenants(c.Request().Context(), principal)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tenants)
}

// GetTenant returns one tenant profile in the caller's scope.
//
// @Summary      Get a tenant profile
// @Tags         profiles
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Tenant profile ID"
// @Success      200  {object}  domain.TenantProfile
// @Failure      404  {object}  map[string]string
// @Router       /v1/tenants/{id} [get]
func (h *ProfileHandler) GetTenant(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	tenant, err := h.profiles.GetTenant(c.Request().Context(), principal, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tenant)
}

// ListCaretakers returns the caretaker directory.
//
// @Summary      List caretaker profiles
// @Tags         profiles
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.CaretakerProfile
// @Router       /v1/caretakers [get]
func (h *ProfileHandler) ListCaretakers(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	caretakers, err := h.profiles.ListCaretakers(c.Request().Context(), principal)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, caretakers)
}

// GetCaretaker returns one caretaker profile.
//
// @Summary      Get a caretaker profile
// @Tags         profiles
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Caretaker profile ID"
// @Success      200  {object}  domain.CaretakerProfile
// @Failure      404  {object}  map[string]string
// @Router       /v1/caretakers/{id} [get]
func (h *ProfileHandler) GetCaretaker(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	caretaker, err := h.profiles.GetCaretaker(c.Request().Context(), principal, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, caretaker)
}
