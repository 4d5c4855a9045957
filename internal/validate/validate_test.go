package validate

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"valid", "John Doe", ""},
		{"valid with spaces", "Mary Jane Watson", ""},
		{"empty", "", "Name is required"},
		{"whitespace only", "   ", "Name is required"},
		{"too short", "J", "Name must be at least 2 characters long"},
		{"digits", "John123", "Name can only contain letters and spaces"},
		{"punctuation", "John-Doe", "Name can only contain letters and spaces"},
		{"too long", strings.Repeat("a", 51), "Name must be less than 50 characters"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Name(tt.input))
		})
	}
}

func TestEmail(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"valid", "john@insurance.com", ""},
		{"valid subdomain", "a@b.co.uk", ""},
		{"empty", "", "Email is required"},
		{"no at", "john.insurance.com", "Please enter a valid email address"},
		{"no domain dot", "john@insurance", "Please enter a valid email address"},
		{"embedded space", "jo hn@insurance.com", "Please enter a valid email address"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Email(tt.input))
		})
	}
}

func TestPhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"international", "+1 (555) 123-4567", ""},
		{"dashed", "555-123-4567", ""},
		{"bare digits", "5551234567", ""},
		{"leading zero long", "0123456789", ""},
		{"empty", "", "Phone number is required"},
		{"letters", "call me maybe", "Please enter a valid phone number"},
		{"mixed alnum", "555-CALL-NOW", "Please enter a valid phone number"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Phone(tt.input))
		})
	}
}

func TestDateOfBirth(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"valid", "15-01-1990", ""},
		{"empty", "", "Date of birth is required"},
		{"wrong format", "1990-01-15", "Please enter date in DD-MM-YYYY format"},
		{"day out of range", "32-01-1990", "Please enter date in DD-MM-YYYY format"},
		{"month out of range", "15-13-1990", "Please enter date in DD-MM-YYYY format"},
		{"impossible calendar date", "31-02-2020", "Please enter a valid date"},
		{"too old", "01-01-1920", "Please enter a valid date of birth"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DateOfBirth(tt.input))
		})
	}
}

func TestDateOfBirth_AgeBoundary(t *testing.T) {
	// Exactly 18 years old today: allowed.
	exactly18 := time.Now().AddDate(-18, 0, 0).Format("02-01-2006")
	assert.Equal(t, "", DateOfBirth(exactly18))

	// One day short of 18: rejected.
	oneDayShort := time.Now().AddDate(-18, 0, 1).Format("02-01-2006")
	assert.Equal(t, "You must be at least 18 years old", DateOfBirth(oneDayShort))
}

func TestAddress(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"valid", "123 Main St, New York, NY 10001", ""},
		{"empty", "", "Address is required"},
		{"too short", "short", "Address must be at least 10 characters long"},
		{"too long", strings.Repeat("a", 201), "Address must be less than 200 characters"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Address(tt.input))
		})
	}
}

func TestUsername(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"valid", "john_doe42", ""},
		{"empty", "", "Username is required"},
		{"too short", "jo", "Username must be at least 3 characters long"},
		{"too long", strings.Repeat("a", 21), "Username must be less than 20 characters"},
		{"embedded space", "john doe", "Username can only contain letters, numbers, and underscores"},
		{"punctuation", "john.doe", "Username can only contain letters, numbers, and underscores"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Username(tt.input))
		})
	}
}

func TestPassword(t *testing.T) {
	classMsg := "Password must contain at least one uppercase letter, one lowercase letter, and one number"

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"valid", "Abc123", ""},
		{"valid longer", "CorrectHorse1", ""},
		{"empty", "", "Password is required"},
		{"too short", "Ab1", "Password must be at least 6 characters long"},
		{"missing uppercase", "abc123", classMsg},
		{"missing lowercase", "ABC123", classMsg},
		{"missing digit", "Abcdef", classMsg},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Password(tt.input))
		})
	}
}

func TestPasswordMatch(t *testing.T) {
	assert.Equal(t, "", PasswordMatch("Abc123", "Abc123"))
	assert.Equal(t, "Passwords do not match", PasswordMatch("Abc123", "Abc124"))
}

func TestLoginForm(t *testing.T) {
	errs := LoginForm("john", "Password123")
	assert.True(t, errs.Valid())

	errs = LoginForm("", "")
	assert.False(t, errs.Valid())
	assert.Equal(t, "Username is required", errs[FieldUsername])
	assert.Equal(t, "Password is required", errs[FieldPassword])
}

func TestSignupForm(t *testing.T) {
	errs := SignupForm("newuser", "Abc12345", "Abc12345")
	assert.True(t, errs.Valid())

	errs = SignupForm("newuser", "Abc12345", "different")
	assert.Equal(t, "Passwords do not match", errs[FieldConfirmPassword])
	assert.False(t, errs.Valid())
}

func TestProfileForm_OnlyPresentFieldsChecked(t *testing.T) {
	bad := "not-an-email"
	errs := ProfileForm(ProfileFields{Email: &bad})
	assert.Equal(t, "Please enter a valid email address", errs[FieldEmail])

	// Absent fields produce no entries, even though they would fail if
	// submitted empty.
	assert.NotContains(t, errs, FieldName)
	assert.NotContains(t, errs, FieldPhone)
	assert.NotContains(t, errs, FieldDateOfBirth)
	assert.NotContains(t, errs, FieldAddress)

	errs = ProfileForm(ProfileFields{})
	assert.True(t, errs.Valid())
}

func TestErrors_Valid(t *testing.T) {
	assert.True(t, Errors{}.Valid())
	assert.False(t, Errors{"x": "nope"}.Valid())
}
