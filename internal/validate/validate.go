// Package validate implements the field-level and form-level correctness
// checks for the portal's forms. Every validator is a pure function taking
// the raw string value and returning "" when valid or a human-readable
// message when not. Messages are shown inline next to the field, so they
// are part of the contract -- do not reword them casually.
package validate

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Field keys used in Errors maps. These match the JSON field names the
// clients submit.
const (
	FieldName            = "name"
	FieldEmail           = "email"
	FieldPhone           = "phone"
	FieldDateOfBirth     = "dateOfBirth"
	FieldAddress         = "address"
	FieldUsername        = "username"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirmPassword"
)

var (
	nameRe     = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	emailRe    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

	// Accepts an international number (optional +, leading nonzero digit,
	// up to 15 more digits) or a loosely punctuated number of 10+ digits.
	// Applied to the value after stripping spaces, hyphens, and parentheses.
	phoneRe = regexp.MustCompile(`^\+?[1-9][0-9]{0,15}$|^\+?\(?[0-9\s\-()]{10,}$`)

	dobRe       = regexp.MustCompile(`^(0[1-9]|[12][0-9]|3[01])-(0[1-9]|1[0-2])-\d{4}$`)
	phoneStrip  = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")
	lowerRe     = regexp.MustCompile(`[a-z]`)
	upperRe     = regexp.MustCompile(`[A-Z]`)
	digitRe     = regexp.MustCompile(`[0-9]`)
)

// Errors maps a field key to its violation message. A field with no entry
// is valid; a form is valid iff the map is empty.
type Errors map[string]string

// Valid reports whether no field holds a violation message.
func (e Errors) Valid() bool {
	return len(e) == 0
}

// set records a message only when the validator actually failed, keeping
// the "absent entry means valid" invariant.
func (e Errors) set(field, msg string) {
	if msg != "" {
		e[field] = msg
	}
}

// Name checks the display name: required, 2-50 characters, letters and
// spaces only.
func Name(name string) string {
	if strings.TrimSpace(name) == "" {
		return "Name is required"
	}
	if len(name) < 2 {
		return "Name must be at least 2 characters long"
	}
	if !nameRe.MatchString(name) {
		return "Name can only contain letters and spaces"
	}
	if len(name) > 50 {
		return "Name must be less than 50 characters"
	}
	return ""
}

// Email checks for a plausible address: something@something.something with
// no whitespace.
func Email(email string) string {
	if strings.TrimSpace(email) == "" {
		return "Email is required"
	}
	if !emailRe.MatchString(email) {
		return "Please enter a valid email address"
	}
	return ""
}

// Phone accepts a variety of formats: +1 (555) 123-4567, 555-123-4567,
// 5551234567, etc. Punctuation is stripped before matching.
func Phone(phone string) string {
	if strings.TrimSpace(phone) == "" {
		return "Phone number is required"
	}
	if !phoneRe.MatchString(phoneStrip.Replace(phone)) {
		return "Please enter a valid phone number"
	}
	return ""
}

// DateOfBirth checks a DD-MM-YYYY date: well-formed, calendar-valid, at
// least 18 years old today, and not more than 100 years in the past.
func DateOfBirth(dateOfBirth string) string {
	if dateOfBirth == "" {
		return "Date of birth is required"
	}
	if !dobRe.MatchString(dateOfBirth) {
		return "Please enter date in DD-MM-YYYY format"
	}

	var day, month, year int
	fmt.Sscanf(dateOfBirth, "%d-%d-%d", &day, &month, &year)

	// Reject dates like 31-02-2020: time.Date normalizes overflow, so a
	// valid calendar date round-trips with the same day/month/year.
	birth := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
	if birth.Day() != day || birth.Month() != time.Month(month) || birth.Year() != year {
		return "Please enter a valid date"
	}

	now := time.Now()
	if birth.After(now.AddDate(-18, 0, 0)) {
		return "You must be at least 18 years old"
	}
	if birth.Before(now.AddDate(-100, 0, 0)) {
		return "Please enter a valid date of birth"
	}
	return ""
}

// Address checks the street address: required, 10-200 characters.
func Address(address string) string {
	if strings.TrimSpace(address) == "" {
		return "Address is required"
	}
	if len(address) < 10 {
		return "Address must be at least 10 characters long"
	}
	if len(address) > 200 {
		return "Address must be less than 200 characters"
	}
	return ""
}

// Username checks the login name: required, 3-20 characters, letters,
// digits, and underscores only.
func Username(username string) string {
	if strings.TrimSpace(username) == "" {
		return "Username is required"
	}
	if len(username) < 3 {
		return "Username must be at least 3 characters long"
	}
	if len(username) > 20 {
		return "Username must be less than 20 characters"
	}
	if !usernameRe.MatchString(username) {
		return "Username can only contain letters, numbers, and underscores"
	}
	return ""
}

// Password checks the password: required, at least 6 characters, with at
// least one lowercase letter, one uppercase letter, and one digit.
func Password(password string) string {
	if strings.TrimSpace(password) == "" {
		return "Password is required"
	}
	if len(password) < 6 {
		return "Password must be at least 6 characters long"
	}
	if !lowerRe.MatchString(password) || !upperRe.MatchString(password) || !digitRe.MatchString(password) {
		return "Password must contain at least one uppercase letter, one lowercase letter, and one number"
	}
	return ""
}

// PasswordMatch checks that the confirmation equals the password.
func PasswordMatch(password, confirmPassword string) string {
	if password != confirmPassword {
		return "Passwords do not match"
	}
	return ""
}

// LoginForm validates the login form fields.
func LoginForm(username, password string) Errors {
	errs := Errors{}
	errs.set(FieldUsername, Username(username))
	errs.set(FieldPassword, Password(password))
	return errs
}

// SignupForm validates the signup form fields.
func SignupForm(username, password, confirmPassword string) Errors {
	errs := Errors{}
	errs.set(FieldUsername, Username(username))
	errs.set(FieldPassword, Password(password))
	errs.set(FieldConfirmPassword, PasswordMatch(password, confirmPassword))
	return errs
}

// ProfileFields carries profile form values. Nil pointers mean the field
// was not submitted and is skipped; only present fields are validated.
type ProfileFields struct {
	Name        *string
	Email       *string
	Phone       *string
	DateOfBirth *string
	Address     *string
}

// ProfileForm validates the profile edit form. Each field is checked only
// when it is present in the submission.
func ProfileForm(f ProfileFields) Errors {
	errs := Errors{}
	if f.Name != nil {
		errs.set(FieldName, Name(*f.Name))
	}
	if f.Email != nil {
		errs.set(FieldEmail, Email(*f.Email))
	}
	if f.Phone != nil {
		errs.set(FieldPhone, Phone(*f.Phone))
	}
	if f.DateOfBirth != nil {
		errs.set(FieldDateOfBirth, DateOfBirth(*f.DateOfBirth))
	}
	if f.Address != nil {
		errs.set(FieldAddress, Address(*f.Address))
	}
	return errs
}
