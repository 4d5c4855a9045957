package auth

import (
	"context"
	"log/slog"
	"time"
	"unicode"

	"github.com/coverly/portal/internal/dateutil"
)

// failedLoginMessage is deliberately identical for unknown usernames and
// wrong passwords so the response never reveals which one it was.
const failedLoginMessage = "Invalid username or password"

// AuthService answers login and signup requests. Authentication is decided
// here; committing the session is the caller's job, so a successful Result
// has no side effect on its own.
//
// Wrong credentials come back as a failed Result, not an error. The error
// return is reserved for infrastructure problems.
type AuthService interface {
	Login(ctx context.Context, username, password string) (Result, error)
	Signup(ctx context.Context, username, password string) (Result, error)
	DemoUsers() []SanitizedUser
}

// authService implements AuthService over a CredentialStore with a
// configurable simulated round-trip delay.
type authService struct {
	store   CredentialStore
	latency time.Duration
}

// NewAuthService creates a new auth service. latency is the artificial
// delay applied to every login/signup, emulating the demo's network
// round-trip; pass zero to disable (tests).
func NewAuthService(store CredentialStore, latency time.Duration) AuthService {
	return &authService{
		store:   store,
		latency: latency,
	}
}

// Login checks the credentials against the store. Both the unknown-user
// and wrong-password paths produce the same failure, and neither touches
// any session state.
func (s *authService) Login(ctx context.Context, username, password string) (Result, error) {
	s.simulateRoundTrip()

	user, ok := s.store.FindByUsername(username)
	if !ok || !s.store.Verify(username, password) {
		slog.Info("login failed", slog.String("username", username))
		return Result{Success: false, Message: failedLoginMessage}, nil
	}

	sanitized := user.Sanitize()

	slog.Info("login succeeded",
		slog.String("username", user.Username),
		slog.String("role", sanitized.Role),
	)

	return Result{Success: true, User: &sanitized}, nil
}

// Signup constructs an account for a new username. The returned user is
// not written back into the credential store -- the demo account exists
// only for the session that signs up.
func (s *authService) Signup(ctx context.Context, username, password string) (Result, error) {
	s.simulateRoundTrip()

	if _, exists := s.store.FindByUsername(username); exists {
		return Result{Success: false, Message: "Username already exists"}, nil
	}

	if len(password) < 6 {
		return Result{Success: false, Message: "Password must be at least 6 characters long"}, nil
	}

	user := SanitizedUser{
		Username:      username,
		Password:      HiddenPassword,
		Name:          capitalize(username),
		Email:         username + "@insurance.com",
		Phone:         "+1 (555) 000-0000",
		Address:       "New User Address",
		DateOfBirth:   "01-01-1980",
		InsuranceType: "Standard",
		MemberSince:   dateutil.TodayDDMMYYYY(),
		Role:          RoleUser,
	}

	slog.Info("signup succeeded", slog.String("username", username))

	return Result{Success: true, User: &user}, nil
}

// DemoUsers returns the seeded accounts with credentials redacted, for the
// quick-login panel on the login page.
func (s *authService) DemoUsers() []SanitizedUser {
	records := s.store.ListAll()
	out := make([]SanitizedUser, 0, len(records))
	for _, rec := range records {
		out = append(out, rec.Sanitize())
	}
	return out
}

// simulateRoundTrip blocks for the configured latency. Non-cancellable:
// once an attempt is in flight it always runs to completion, matching the
// demo's fixed 1.5s suspend. Concurrent attempts are safe -- they share no
// mutable state and complete independently.
func (s *authService) simulateRoundTrip() {
	if s.latency > 0 {
		time.Sleep(s.latency)
	}
}

// capitalize upper-cases the first rune: "newuser" -> "Newuser".
func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
