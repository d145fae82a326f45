package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/viken/timetracker/internal/api/handler"
	"github.com/viken/timetracker/internal/api/middleware"
	"github.com/viken/timetracker/internal/core/ports"
)

// Dependencies carries everything the router needs wired in.
type Dependencies struct {
	Auth           ports.AuthService
	Projects       ports.ProjectService
	Entries        ports.TimeEntryService
	Employees      ports.EmployeeService
	Reports        ports.ReportService
	SessionStorage ports.SessionStorage
	Logger         zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("timetracker"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	pageHandler := handler.NewPageHandler(deps.Auth)
	trackingHandler := handler.NewTrackingHandler(deps.Entries, deps.Projects)
	adminHandler := handler.NewAdminHandler(deps.Projects, deps.Entries, deps.Employees, deps.Reports)

	// --- Public routes ---
	e.GET("/", pageHandler.Root)
	e.GET("/login", pageHandler.Login)
	e.GET("/register", pageHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/logout", authHandler.Logout)
	e.GET("/auth/session", authHandler.Session)

	// --- Protected employee routes ---
	authenticated := e.Group("", middleware.RequireAuthenticated(deps.Auth))
	authenticated.GET("/dashboard", trackingHandler.Dashboard)
	authenticated.GET("/time-tracking", trackingHandler.TimeTrackingForm)
	authenticated.POST("/time-entries", trackingHandler.LogEntry)

	// --- Protected admin routes ---
	admin := e.Group("/admin", middleware.RequireAdmin(deps.Auth))
	admin.GET("", adminHandler.Overview)
	admin.POST("/projects", adminHandler.CreateProject)
	admin.GET("/projects/:id", adminHandler.ProjectDetails)
	admin.GET("/reports", adminHandler.Reports)
	admin.POST("/employees/:id/approve", adminHandler.ApproveEmployee)
	admin.DELETE("/employees/:id", adminHandler.RejectEmployee)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.SessionStorage)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
