package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/viken/timetracker/internal/api/middleware"
	"github.com/viken/timetracker/internal/core/domain"
)

// ctxIdentity extracts the identity the route guard injected and fails fast
// when it is absent: presence proves the guard ran in front of the handler.
func ctxIdentity(c echo.Context) (*domain.Identity, error) {
	identity, _ := c.Get(middleware.IdentityKey).(*domain.Identity)
	if identity == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing session identity")
	}
	return identity, nil
}
