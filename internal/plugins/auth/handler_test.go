package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"

	"github.com/coverly/portal/internal/apperror"
	"github.com/coverly/portal/internal/plugins/session"
)

func newTestHandler(t *testing.T) (*Handler, session.Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	store, err := NewMemoryStore(bcrypt.MinCost)
	if err != nil {
		t.Fatalf("seeding store: %v", err)
	}
	sessions := session.NewRedisStore(rdb, time.Hour)
	return NewHandler(NewAuthService(store, 0), sessions, time.Hour), sessions, mr
}

func postJSON(target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == sessionCookieName {
			return ck
		}
	}
	return nil
}

func TestLoginHandler_CommitsSession(t *testing.T) {
	h, sessions, _ := newTestHandler(t)

	c, rec := postJSON("/api/login", `{"username":"john","password":"Password123"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	ck := sessionCookie(rec)
	if ck == nil || ck.Value == "" {
		t.Fatal("expected session cookie to be set")
	}
	if !ck.HttpOnly {
		t.Error("expected HttpOnly session cookie")
	}

	// The cookie's token must resolve to a committed record.
	srec, err := sessions.Current(context.Background(), ck.Value)
	if err != nil {
		t.Fatalf("reading session: %v", err)
	}
	if !srec.Authenticated || srec.Username != "john" || srec.Name != "John Doe" || srec.Role != RoleUser {
		t.Errorf("unexpected session record: %+v", srec)
	}
}

func TestLoginHandler_FailureLeavesNoSession(t *testing.T) {
	h, _, mr := newTestHandler(t)

	c, rec := postJSON("/api/login", `{"username":"john","password":"wrong"}`)
	err := h.Login(c)
	if err == nil {
		t.Fatal("expected error")
	}

	appErr, ok := err.(*apperror.AppError)
	if !ok {
		t.Fatalf("expected AppError, got %T", err)
	}
	if appErr.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", appErr.Code)
	}
	if appErr.Message != "Invalid username or password" {
		t.Errorf("unexpected message: %q", appErr.Message)
	}

	if sessionCookie(rec) != nil {
		t.Error("expected no session cookie on failure")
	}
	if keys := mr.Keys(); len(keys) != 0 {
		t.Errorf("expected no session state, found keys %v", keys)
	}
}

func TestLoginHandler_ValidationErrors(t *testing.T) {
	h, _, _ := newTestHandler(t)

	c, _ := postJSON("/api/login", `{"username":"","password":""}`)
	err := h.Login(c)

	appErr, ok := err.(*apperror.AppError)
	if !ok {
		t.Fatalf("expected AppError, got %T", err)
	}
	if appErr.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", appErr.Code)
	}
	if appErr.Fields["username"] != "Username is required" {
		t.Errorf("unexpected username error: %q", appErr.Fields["username"])
	}
	if appErr.Fields["password"] != "Password is required" {
		t.Errorf("unexpected password error: %q", appErr.Fields["password"])
	}
}

func TestSignupHandler_Conflict(t *testing.T) {
	h, _, _ := newTestHandler(t)

	c, _ := postJSON("/api/signup", `{"username":"john","password":"Abc12345","confirmPassword":"Abc12345"}`)
	err := h.Signup(c)

	appErr, ok := err.(*apperror.AppError)
	if !ok {
		t.Fatalf("expected AppError, got %T", err)
	}
	if appErr.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", appErr.Code)
	}
	if appErr.Message != "Username already exists" {
		t.Errorf("unexpected message: %q", appErr.Message)
	}
}

func TestSignupHandler_LogsNewUserIn(t *testing.T) {
	h, sessions, _ := newTestHandler(t)

	c, rec := postJSON("/api/signup", `{"username":"newuser","password":"Abc12345","confirmPassword":"Abc12345"}`)
	if err := h.Signup(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	ck := sessionCookie(rec)
	if ck == nil {
		t.Fatal("expected session cookie")
	}
	srec, err := sessions.Current(context.Background(), ck.Value)
	if err != nil {
		t.Fatalf("reading session: %v", err)
	}
	if !srec.Authenticated || srec.Username != "newuser" || srec.Name != "Newuser" {
		t.Errorf("unexpected session record: %+v", srec)
	}
}

func TestLogoutHandler_ClearsSessionAndCookie(t *testing.T) {
	h, sessions, mr := newTestHandler(t)
	ctx := context.Background()

	token, err := session.NewToken()
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	if err := sessions.Commit(ctx, token, session.Identity{Username: "john", Name: "John Doe", Role: RoleUser}); err != nil {
		t.Fatalf("commit: %v", err)
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/logout", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: token})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Logout(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	if keys := mr.Keys(); len(keys) != 0 {
		t.Errorf("expected session state removed, found keys %v", keys)
	}
	ck := sessionCookie(rec)
	if ck == nil || ck.MaxAge != -1 {
		t.Error("expected session cookie to be expired")
	}
}

func TestLogoutHandler_WithoutSession(t *testing.T) {
	h, _, _ := newTestHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/logout", nil)
	rec := httptest.NewRecorder()

	if err := h.Logout(e.NewContext(req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestCurrentSessionHandler(t *testing.T) {
	h, sessions, _ := newTestHandler(t)
	ctx := context.Background()

	e := echo.New()

	// Without a cookie the sentinel record comes back, not an error.
	req := httptest.NewRequest(http.MethodGet, "/api/session", nil)
	rec := httptest.NewRecorder()
	if err := h.CurrentSession(e.NewContext(req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"isAuthenticated":false`) {
		t.Errorf("expected unauthenticated record, got %s", rec.Body.String())
	}

	token, err := session.NewToken()
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	if err := sessions.Commit(ctx, token, session.Identity{Username: "john", Name: "John Doe", Role: RoleUser}); err != nil {
		t.Fatalf("commit: %v", err)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/session", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: token})
	rec = httptest.NewRecorder()
	if err := h.CurrentSession(e.NewContext(req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"isAuthenticated":true`) || !strings.Contains(body, `"username":"john"`) {
		t.Errorf("unexpected session body: %s", body)
	}
}

func TestRequireAuth(t *testing.T) {
	_, sessions, _ := newTestHandler(t)
	ctx := context.Background()

	e := echo.New()
	handler := RequireAuth(sessions)(func(c echo.Context) error {
		return c.String(http.StatusOK, GetUsername(c))
	})

	// No cookie: 401.
	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	rec := httptest.NewRecorder()
	if err := handler(e.NewContext(req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without cookie, got %d", rec.Code)
	}

	// Stale cookie for a session that no longer exists: 401.
	req = httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "stale-token"})
	rec = httptest.NewRecorder()
	if err := handler(e.NewContext(req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for stale cookie, got %d", rec.Code)
	}

	// Valid session: request passes and the identity is in context.
	token, err := session.NewToken()
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	if err := sessions.Commit(ctx, token, session.Identity{Username: "john", Name: "John Doe", Role: RoleUser}); err != nil {
		t.Fatalf("commit: %v", err)
	}
	req = httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: token})
	rec = httptest.NewRecorder()
	if err := handler(e.NewContext(req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 with valid session, got %d", rec.Code)
	}
	if rec.Body.String() != "john" {
		t.Errorf("expected username in context, got %q", rec.Body.String())
	}
}
