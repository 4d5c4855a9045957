// Package auth implements the portal's credential store and authentication
// service: login, signup, and the session gate used by every protected
// route. The credential store is a fixed demo table seeded at startup;
// passwords are bcrypt-hashed at seed time and only a verify operation is
// exposed past the store boundary.
//
// This is a CORE plugin -- always enabled, cannot be disabled.
package auth

// Roles a user can hold. Role defaults to RoleUser when absent.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// HiddenPassword is the redaction marker used wherever a user record
// crosses the service boundary. A real credential never leaves this package.
const HiddenPassword = "[HIDDEN]"

// UserRecord is a row of the credential store. Username is the unique,
// immutable key. The password hash never leaves this package.
type UserRecord struct {
	Username      string
	PasswordHash  string
	Name          string
	Email         string
	Phone         string
	Address       string
	DateOfBirth   string
	InsuranceType string
	MemberSince   string
	Role          string
	ProfileImage  string
}

// SanitizedUser is the only user shape exposed past the service boundary.
// The password slot always holds the redaction marker, never a credential.
type SanitizedUser struct {
	Username      string `json:"username"`
	Password      string `json:"password"`
	Name          string `json:"name"`
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Address       string `json:"address,omitempty"`
	DateOfBirth   string `json:"dateOfBirth,omitempty"`
	InsuranceType string `json:"insuranceType,omitempty"`
	MemberSince   string `json:"memberSince,omitempty"`
	Role          string `json:"role"`
	ProfileImage  string `json:"profileImage,omitempty"`
}

// Sanitize strips the credential from a user record, substituting the
// redaction marker and defaulting an absent role to "user".
func (u UserRecord) Sanitize() SanitizedUser {
	role := u.Role
	if role == "" {
		role = RoleUser
	}
	return SanitizedUser{
		Username:      u.Username,
		Password:      HiddenPassword,
		Name:          u.Name,
		Email:         u.Email,
		Phone:         u.Phone,
		Address:       u.Address,
		DateOfBirth:   u.DateOfBirth,
		InsuranceType: u.InsuranceType,
		MemberSince:   u.MemberSince,
		Role:          role,
		ProfileImage:  u.ProfileImage,
	}
}

// Result is the outcome of a login or signup attempt. Wrong credentials
// and duplicate usernames are not errors -- they are expected outcomes the
// caller renders inline, so they travel as data.
type Result struct {
	Success bool           `json:"success"`
	User    *SanitizedUser `json:"user,omitempty"`
	Message string         `json:"message,omitempty"`
}

// --- Request DTOs (bound from HTTP requests) ---

// LoginRequest holds the data submitted by the login form.
type LoginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// SignupRequest holds the data submitted by the signup form.
type SignupRequest struct {
	Username        string `json:"username" form:"username"`
	Password        string `json:"password" form:"password"`
	ConfirmPassword string `json:"confirmPassword" form:"confirmPassword"`
}
