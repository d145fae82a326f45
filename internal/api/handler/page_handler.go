package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/viken/timetracker/internal/core/ports"
)

// PageHandler serves the public page-data stubs. The actual rendering
// belongs to the view layer; these endpoints exist as stable redirect
// targets for the route guards.
type PageHandler struct {
	authService ports.AuthService
}

func NewPageHandler(authService ports.AuthService) *PageHandler {
	return &PageHandler{authService: authService}
}

type pageResponse struct {
	Page          string `json:"page"`
	Authenticated bool   `json:"authenticated"`
}

func (h *PageHandler) Login(c echo.Context) error {
	return c.JSON(http.StatusOK, pageResponse{Page: "login", Authenticated: h.authService.IsAuthenticated()})
}

func (h *PageHandler) Register(c echo.Context) error {
	return c.JSON(http.StatusOK, pageResponse{Page: "register", Authenticated: h.authService.IsAuthenticated()})
}

// Root redirects to the login page, mirroring the dashboard's "/" route.
func (h *PageHandler) Root(c echo.Context) error {
	return c.Redirect(http.StatusFound, "/login")
}
