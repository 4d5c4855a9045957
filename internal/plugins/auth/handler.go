package auth

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/coverly/portal/internal/apperror"
	"github.com/coverly/portal/internal/plugins/session"
	"github.com/coverly/portal/internal/validate"
)

// sessionCookieName is the HTTP cookie used to store the session token.
const sessionCookieName = "portal_session"

// Handler handles HTTP requests for authentication (login, signup, logout).
// Handlers are thin: they bind the request, validate its shape, call the
// service, and commit the session on success. The authentication decision
// itself never touches session state -- that separation lives here.
type Handler struct {
	service  AuthService
	sessions session.Store
	ttl      time.Duration
}

// NewHandler creates a new auth handler with the given dependencies.
func NewHandler(service AuthService, sessions session.Store, ttl time.Duration) *Handler {
	return &Handler{service: service, sessions: sessions, ttl: ttl}
}

// Login processes a login submission (POST /api/login).
func (h *Handler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewBadRequest("invalid request")
	}

	// Shape check first; the service only ever fails on credential mismatch.
	if errs := validate.LoginForm(req.Username, req.Password); !errs.Valid() {
		return apperror.NewValidation(errs)
	}

	res, err := h.service.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return apperror.NewInternal(err)
	}
	if !res.Success {
		return apperror.NewUnauthorized(res.Message)
	}

	if err := h.commitSession(c, res.User); err != nil {
		return apperror.NewInternal(err)
	}

	return c.JSON(http.StatusOK, res)
}

// Signup processes a signup submission (POST /api/signup). A successful
// signup logs the new user straight in, like the demo app does.
func (h *Handler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewBadRequest("invalid request")
	}

	if errs := validate.SignupForm(req.Username, req.Password, req.ConfirmPassword); !errs.Valid() {
		return apperror.NewValidation(errs)
	}

	res, err := h.service.Signup(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return apperror.NewInternal(err)
	}
	if !res.Success {
		if res.Message == "Username already exists" {
			return apperror.NewConflict(res.Message)
		}
		return apperror.NewBadRequest(res.Message)
	}

	if err := h.commitSession(c, res.User); err != nil {
		return apperror.NewInternal(err)
	}

	return c.JSON(http.StatusCreated, res)
}

// Logout destroys the session and clears the cookie (POST /api/logout).
func (h *Handler) Logout(c echo.Context) error {
	if token := getSessionToken(c); token != "" {
		// Clear is idempotent; an already-gone session is still a logout.
		if err := h.sessions.Clear(c.Request().Context(), token); err != nil {
			return apperror.NewInternal(err)
		}
	}

	clearSessionCookie(c)

	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

// CurrentSession reports the caller's session record (GET /api/session).
// Unauthenticated callers get the sentinel record, not an error -- pages
// use this to decide whether to show the login screen.
func (h *Handler) CurrentSession(c echo.Context) error {
	token := getSessionToken(c)
	if token == "" {
		return c.JSON(http.StatusOK, session.Record{})
	}

	rec, err := h.sessions.Current(c.Request().Context(), token)
	if err != nil {
		return apperror.NewInternal(err)
	}
	return c.JSON(http.StatusOK, rec)
}

// DemoUsers lists the seeded demo accounts with credentials redacted
// (GET /api/demo-users), for the quick-login panel.
func (h *Handler) DemoUsers(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.DemoUsers())
}

// commitSession writes the session record and sets the cookie. Called only
// after the service reports success.
func (h *Handler) commitSession(c echo.Context, user *SanitizedUser) error {
	token, err := session.NewToken()
	if err != nil {
		return err
	}

	id := session.Identity{
		Username: user.Username,
		Name:     user.Name,
		Role:     user.Role,
	}
	if err := h.sessions.Commit(c.Request().Context(), token, id); err != nil {
		return err
	}

	setSessionCookie(c, token, h.ttl)
	return nil
}

// --- Cookie helpers ---

// getSessionToken reads the session token from the request cookie.
func getSessionToken(c echo.Context) string {
	cookie, err := c.Cookie(sessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// setSessionCookie sets the session cookie with secure attributes.
func setSessionCookie(c echo.Context, token string, ttl time.Duration) {
	c.SetCookie(&http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   c.Scheme() == "https",
	})
}

// clearSessionCookie expires the session cookie immediately.
func clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
