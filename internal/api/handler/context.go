package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// authClaims is the identity attached to the context by the Auth middleware.
type authClaims struct {
	ID    string
	Email string
	Name  string
	Role  string
}

// ctxClaims extracts the decoded identity and fast-fails when the middleware
// did not run: a handler that needs claims must never see an empty role.
func ctxClaims(c echo.Context) (authClaims, error) {
	claims := authClaims{}
	claims.ID, _ = c.Get("user_id").(string)
	claims.Email, _ = c.Get("email").(string)
	claims.Name, _ = c.Get("name").(string)
	claims.Role, _ = c.Get("role").(string)

	if claims.Role == "" || claims.Email == "" {
		return authClaims{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return claims, nil
}

// pagingParams reads ?page and ?limit with the conventional defaults.
func pagingParams(c echo.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.QueryParam("page"))
	limit, _ = strconv.Atoi(c.QueryParam("limit"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return page, limit
}
