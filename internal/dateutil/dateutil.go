// Package dateutil converts between the portal's two date forms: the
// DD-MM-YYYY display format used everywhere in the UI and the YYYY-MM-DD
// form used by date inputs. Unrecognized inputs pass through unchanged so
// callers never lose data they didn't understand.
package dateutil

import (
	"fmt"
	"regexp"
	"time"
)

var (
	ddmmyyyyRe = regexp.MustCompile(`^\d{2}-\d{2}-\d{4}$`)
	yyyymmddRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// ToDDMMYYYY formats a date string to DD-MM-YYYY. Accepts DD-MM-YYYY
// (returned as-is), YYYY-MM-DD (converted), or anything time.Parse
// understands as RFC 3339. Unparseable input is returned unchanged.
func ToDDMMYYYY(s string) string {
	if s == "" {
		return ""
	}
	if ddmmyyyyRe.MatchString(s) {
		return s
	}
	if yyyymmddRe.MatchString(s) {
		return s[8:10] + "-" + s[5:7] + "-" + s[0:4]
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.Format("02-01-2006")
	}
	return s
}

// ToYYYYMMDD formats a date string to YYYY-MM-DD. The inverse of
// ToDDMMYYYY for the two canonical forms.
func ToYYYYMMDD(s string) string {
	if s == "" {
		return ""
	}
	if yyyymmddRe.MatchString(s) {
		return s
	}
	if ddmmyyyyRe.MatchString(s) {
		return s[6:10] + "-" + s[3:5] + "-" + s[0:2]
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.Format("2006-01-02")
	}
	return s
}

// ParseDDMMYYYY parses a DD-MM-YYYY string into a time.Time at local
// midnight. Returns an error for malformed input.
func ParseDDMMYYYY(s string) (time.Time, error) {
	if !ddmmyyyyRe.MatchString(s) {
		return time.Time{}, fmt.Errorf("not a DD-MM-YYYY date: %q", s)
	}
	return time.ParseInLocation("02-01-2006", s, time.Local)
}

// TodayDDMMYYYY returns the current date in DD-MM-YYYY form.
func TodayDDMMYYYY() string {
	return time.Now().Format("02-01-2006")
}

// TodayYYYYMMDD returns the current date in YYYY-MM-DD form.
func TodayYYYYMMDD() string {
	return time.Now().Format("2006-01-02")
}

// Age returns the whole years elapsed since the given DD-MM-YYYY birth
// date, or 0 if the date cannot be parsed.
func Age(dateOfBirth string) int {
	birth, err := ParseDDMMYYYY(dateOfBirth)
	if err != nil {
		return 0
	}
	now := time.Now()
	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() ||
		(now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	return age
}
