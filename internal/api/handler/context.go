package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/rentwise/property-system/internal/core/domain"
)

// ctxPrincipal extracts the identity injected by the Auth middleware and
// performs a fast-fail check before any service call: both the account id
// and a parseable role must be present, otherwise the JWT is structurally
// valid but operationally unusable and the request is rejected with 401.
func ctxPrincipal(c echo.Context) (domain.Principal, error) {
	accountID, _ := c.Get("account_id").(uint)
	if accountID == 0 {
		return domain.Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	roleStr, _ := c.Get("role").(string)
	role, err := domain.ParseRole(roleStr)
	if err != nil {
		return domain.Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "token carries an unknown role")
	}

	return domain.Principal{AccountID: accountID, Role: role}, nil
}

// pathID parses a numeric :id style path parameter.
func pathID(c echo.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return uint(id), nil
}
