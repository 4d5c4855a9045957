// Package profile assembles display-ready user profiles: session identity
// merged with the canned demo profile data, dates normalized to the
// DD-MM-YYYY display form, and an avatar resolved through an ordered chain
// of strategies. It also serves the fixed per-user statistics table and
// persists edited profiles and uploaded profile images.
package profile

// UserProfile is the display-ready user record. The password slot only
// ever holds the redaction marker -- never a credential.
type UserProfile struct {
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

// UserStats is the fixed per-user statistics record shown on the
// dashboard. Purely presentational; not persisted.
type UserStats struct {
	ActivePolicies int `json:"activePolicies"`
	MonthlyPremium int `json:"monthlyPremium"`
	ClaimsFiled    int `json:"claimsFiled"`
	CoverageScore  int `json:"coverageScore"`
}

// UpdateRequest holds a profile edit submission. Nil fields were not
// submitted and stay untouched; present fields are validated individually.
type UpdateRequest struct {
	Name        *string `json:"name"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	DateOfBirth *string `json:"dateOfBirth"`
	Address     *string `json:"address"`
}

// ImageRequest holds an uploaded profile image as a data URI.
type ImageRequest struct {
	Image string `json:"image"`
}
