package auth

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/coverly/portal/internal/middleware"
)

// RegisterRoutes sets up all auth-related routes on the given Echo
// instance. Auth routes are public (no session required); RequireAuth is
// exported separately for other plugins to use on their route groups.
//
// Login and signup are rate-limited per IP to keep brute-force attempts
// off the demo accounts.
func RegisterRoutes(e *echo.Echo, h *Handler) {
	e.POST("/api/login", h.Login, middleware.RateLimit(10, time.Minute))
	e.POST("/api/signup", h.Signup, middleware.RateLimit(5, time.Minute))
	e.POST("/api/logout", h.Logout)
	e.GET("/api/session", h.CurrentSession)
	e.GET("/api/demo-users", h.DemoUsers)
}
