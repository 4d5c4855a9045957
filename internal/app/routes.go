package app

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/coverly/portal/internal/plugins/auth"
	"github.com/coverly/portal/internal/plugins/claims"
	"github.com/coverly/portal/internal/plugins/policies"
	"github.com/coverly/portal/internal/plugins/profile"
	"github.com/coverly/portal/internal/plugins/session"
)

// RegisterRoutes wires every plugin and sets up all application routes.
// This is the single place where all routes are aggregated.
func (a *App) RegisterRoutes() error {
	e := a.Echo
	cfg := a.Config

	// Health check endpoint for container health monitoring.
	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// --- Core wiring ---

	creds, err := auth.NewMemoryStore(cfg.Auth.BcryptCost)
	if err != nil {
		return err
	}

	sessions := session.NewRedisStore(a.Redis, cfg.Auth.SessionTTL)
	authService := auth.NewAuthService(creds, cfg.Auth.SimulatedLatency)

	// --- Public routes (login, signup, logout, session probe) ---

	auth.RegisterRoutes(e, auth.NewHandler(authService, sessions, cfg.Auth.SessionTTL))

	// --- Authenticated routes ---

	authed := e.Group("/api", auth.RequireAuth(sessions))

	profileService := profile.NewProfileService(creds, a.Redis)
	profile.RegisterRoutes(authed, profile.NewHandler(profileService, cfg.Upload.MaxImageSize))

	policies.RegisterRoutes(authed, policies.NewHandler(policies.NewPolicyService()))

	claims.RegisterRoutes(authed, claims.NewHandler(claims.NewClaimService()))

	return nil
}
