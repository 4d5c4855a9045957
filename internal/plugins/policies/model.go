// Package policies serves the demo policy table: a fixed set of insurance
// policies with status, premium, and type-specific detail. Read-only; the
// table is a static collaborator seeded in source.
package policies

// Policy statuses used by the demo table and the filter chips.
const (
	StatusActive  = "Active"
	StatusPending = "Pending"
	StatusExpired = "Expired"
)

// Policy is one row of the demo policy table. Premium and Deductible keep
// their display form ("$120", "$1,000"); Detail holds the type-specific
// line (vehicle, property, covered members, or business name).
type Policy struct {
	ID           int    `json:"id"`
	Type         string `json:"type"`
	PolicyNumber string `json:"policyNumber"`
	Premium      string `json:"premium"`
	Status       string `json:"status"`
	DueDate      string `json:"dueDate"`
	Coverage     string `json:"coverage"`
	Deductible   string `json:"deductible"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	Detail       string `json:"detail,omitempty"`
}

// Summary aggregates the table for the policies page header.
type Summary struct {
	Total          int `json:"total"`
	MonthlyPremium int `json:"monthlyPremium"`
	Active         int `json:"active"`
}

// demoPolicies is the fixed demo table, declaration order preserved.
var demoPolicies = []Policy{
	{
		ID:           1,
		Type:         "Auto Insurance",
		PolicyNumber: "AUTO-2024-001",
		Premium:      "$120",
		Status:       StatusActive,
		DueDate:      "2024-01-15",
		Coverage:     "Full Coverage",
		Deductible:   "$500",
		StartDate:    "2023-01-15",
		EndDate:      "2024-01-15",
		Detail:       "Toyota Camry 2022",
	},
	{
		ID:           2,
		Type:         "Home Insurance",
		PolicyNumber: "HOME-2023-156",
		Premium:      "$85",
		Status:       StatusActive,
		DueDate:      "2024-01-20",
		Coverage:     "Property Damage",
		Deductible:   "$1,000",
		StartDate:    "2023-01-20",
		EndDate:      "2024-01-20",
		Detail:       "123 Main St, City, State",
	},
	{
		ID:           3,
		Type:         "Health Insurance",
		PolicyNumber: "HLTH-2024-003",
		Premium:      "$200",
		Status:       StatusPending,
		DueDate:      "2024-01-10",
		Coverage:     "Family Plan",
		Deductible:   "$2,500",
		StartDate:    "2024-01-01",
		EndDate:      "2024-12-31",
		Detail:       "John, Sarah, Mike (3 members)",
	},
	{
		ID:           4,
		Type:         "Business Insurance",
		PolicyNumber: "BIZ-2023-089",
		Premium:      "$150",
		Status:       StatusExpired,
		DueDate:      "2023-12-01",
		Coverage:     "Liability",
		Deductible:   "$2,500",
		StartDate:    "2022-12-01",
		EndDate:      "2023-12-01",
		Detail:       "Sunitha Tech Solutions",
	},
}
