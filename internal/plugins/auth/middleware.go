package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/coverly/portal/internal/apperror"
	"github.com/coverly/portal/internal/plugins/session"
)

// Context keys for storing session data in the Echo context. Other plugins
// read these via the exported getters below.
const (
	contextKeySession  = "auth_session"
	contextKeyUsername = "auth_username"
)

// RequireAuth returns middleware that reads the session cookie, loads the
// session record, and injects it into the request context. Requests with a
// missing or unauthenticated session get a 401 JSON response.
func RequireAuth(sessions session.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := getSessionToken(c)
			if token == "" {
				return handleUnauthenticated(c)
			}

			rec, err := sessions.Current(c.Request().Context(), token)
			if err != nil {
				return apperror.NewInternal(err)
			}
			if !rec.Authenticated {
				// Stale cookie for a cleared or expired session.
				clearSessionCookie(c)
				return handleUnauthenticated(c)
			}

			c.Set(contextKeySession, rec)
			c.Set(contextKeyUsername, rec.Username)

			return next(c)
		}
	}
}

// handleUnauthenticated returns the 401 JSON response for requests without
// a valid session.
func handleUnauthenticated(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, map[string]string{
		"error":   "unauthorized",
		"message": "authentication required",
	})
}

// --- Exported getters for other plugins ---

// GetSession retrieves the authenticated session from the Echo context.
// Returns the zero record if the middleware was not applied.
func GetSession(c echo.Context) session.Record {
	rec, ok := c.Get(contextKeySession).(session.Record)
	if !ok {
		return session.Record{}
	}
	return rec
}

// GetUsername retrieves the authenticated username from the Echo context.
// Returns empty string if the request is not authenticated.
func GetUsername(c echo.Context) string {
	username, ok := c.Get(contextKeyUsername).(string)
	if !ok {
		return ""
	}
	return username
}
