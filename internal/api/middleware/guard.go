// Package middleware contains the route guards that gate protected views on
// the current session.
package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/viken/timetracker/internal/api/metrics"
	"github.com/viken/timetracker/internal/core/ports"
)

const (
	// LoginRoute is where anonymous visitors are sent.
	LoginRoute = "/login"
	// DashboardRoute is where non-admin identities are sent from admin views.
	DashboardRoute = "/dashboard"

	// IdentityKey is the echo context key under which guards expose the
	// admitted identity to handlers.
	IdentityKey = "identity"
)

// RequireAuthenticated admits any authenticated identity and redirects
// anonymous visitors to the login page.
func RequireAuthenticated(auth ports.AuthService) echo.MiddlewareFunc {
	return guard(auth, auth.IsAuthenticated, LoginRoute, "authenticated")
}

// RequireAdmin admits admin identities only; everyone else is redirected to
// the employee dashboard.
func RequireAdmin(auth ports.AuthService) echo.MiddlewareFunc {
	return guard(auth, auth.IsAdmin, DashboardRoute, "admin")
}

// guard is a pure predicate check per navigation: no retry, no error state.
// While the session is still loading it answers 503 with a neutral body so
// clients never see a premature redirect on a stale empty session.
func guard(auth ports.AuthService, allowed func() bool, fallback, name string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if auth.Loading() {
				metrics.GuardDecisionsTotal.WithLabelValues(name, "loading").Inc()
				return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "loading"})
			}

			if !allowed() {
				metrics.GuardDecisionsTotal.WithLabelValues(name, "redirect").Inc()
				return c.Redirect(http.StatusFound, fallback)
			}

			metrics.GuardDecisionsTotal.WithLabelValues(name, "admit").Inc()
			if identity := auth.Current(); identity != nil {
				c.Set(IdentityKey, identity)
			}
			return next(c)
		}
	}
}
