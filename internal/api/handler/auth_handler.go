package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/viken/timetracker/internal/api/metrics"
	"github.com/viken/timetracker/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login authenticates against the fixed credential table and activates the
// matching identity as the session.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  sessionResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	identity, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("invalid", "").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success", string(identity.Role)).Inc()
	return c.JSON(http.StatusOK, sessionResponse{User: identity})
}

// Register creates a new unapproved employee account and activates it.
//
// @Summary      Register a new employee
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  sessionResponse
// @Failure      400   {object}  errorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	identity, err := h.authService.Register(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.Inc()
	return c.JSON(http.StatusCreated, sessionResponse{User: identity})
}

// Logout clears the session. Always succeeds, even when no session exists.
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.authService.Logout(c.Request().Context()); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Session reports the current identity and loading state, letting the view
// layer decide what to render without triggering a guard redirect.
func (h *AuthHandler) Session(c echo.Context) error {
	return c.JSON(http.StatusOK, sessionResponse{
		User:    h.authService.Current(),
		Loading: h.authService.Loading(),
	})
}
