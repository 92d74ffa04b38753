package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/userhub/users-api/internal/core/domain"
)

// ctxActor extracts the actor injected by the Auth middleware. A missing or
// zero user id means the middleware did not run (or the token carried no
// identity); reject with 401 before any service call.
func ctxActor(c echo.Context) (domain.Actor, error) {
	id, ok := c.Get("user_id").(int64)
	if !ok || id <= 0 {
		return domain.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
	}

	email, _ := c.Get("email").(string)
	role, _ := c.Get("role").(string)

	return domain.Actor{ID: id, Email: email, Role: domain.Role(role)}, nil
}
