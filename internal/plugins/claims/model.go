// Package claims serves the demo claims table and the claim-filing flow.
// Filed claims live in process memory on top of the fixed seed table --
// demo semantics, no durable persistence.
package claims

// Claim statuses used by the table and the filter chips.
const (
	StatusInReview = "In Review"
	StatusApproved = "Approved"
	StatusPaid     = "Paid"
	StatusRejected = "Rejected"
)

// Claim is one row of the claims table. Amount keeps its display form
// ("$2,500"); dates are YYYY-MM-DD.
type Claim struct {
	ID               string   `json:"id"`
	Type             string   `json:"type"`
	IncidentDate     string   `json:"incidentDate"`
	FiledDate        string   `json:"filedDate"`
	Status           string   `json:"status"`
	Amount           string   `json:"amount"`
	Description      string   `json:"description"`
	AssignedAdjuster string   `json:"assignedAdjuster,omitempty"`
	LastUpdate       string   `json:"lastUpdate"`
	Documents        []string `json:"documents,omitempty"`
}

// FileClaimInput is a new-claim submission. PolicyType, IncidentDate, and
// Description are required; the rest is optional supporting detail.
type FileClaimInput struct {
	PolicyType    string   `json:"policyType"`
	IncidentDate  string   `json:"incidentDate"`
	Description   string   `json:"description"`
	Amount        string   `json:"amount"`
	ContactPerson string   `json:"contactPerson"`
	PhoneNumber   string   `json:"phoneNumber"`
	Images        []string `json:"images"`
}

// policyTypes are the claimable policy types offered by the filing form.
var policyTypes = []string{
	"Auto Insurance",
	"Home Insurance",
	"Health Insurance",
	"Business Insurance",
}

// seedClaims is the fixed demo claims table, declaration order preserved.
var seedClaims = []Claim{
	{
		ID:               "CL-2024-001",
		Type:             "Auto Insurance",
		IncidentDate:     "2024-01-05",
		FiledDate:        "2024-01-06",
		Status:           StatusInReview,
		Amount:           "$2,500",
		Description:      "Rear-end collision on highway",
		AssignedAdjuster: "John Smith",
		LastUpdate:       "2024-01-08",
		Documents:        []string{"Police Report", "Damage Photos"},
	},
	{
		ID:               "CL-2023-156",
		Type:             "Home Insurance",
		IncidentDate:     "2023-12-20",
		FiledDate:        "2023-12-21",
		Status:           StatusApproved,
		Amount:           "$5,000",
		Description:      "Water damage from burst pipes",
		AssignedAdjuster: "Sarah Johnson",
		LastUpdate:       "2024-01-02",
		Documents:        []string{"Plumber Report", "Damage Assessment"},
	},
	{
		ID:               "CL-2023-142",
		Type:             "Health Insurance",
		IncidentDate:     "2023-11-15",
		FiledDate:        "2023-11-16",
		Status:           StatusPaid,
		Amount:           "$1,200",
		Description:      "Emergency room visit",
		AssignedAdjuster: "Mike Davis",
		LastUpdate:       "2023-12-01",
		Documents:        []string{"Medical Bills", "Doctor Report"},
	},
	{
		ID:               "CL-2023-135",
		Type:             "Business Insurance",
		IncidentDate:     "2023-10-10",
		FiledDate:        "2023-10-11",
		Status:           StatusRejected,
		Amount:           "$3,000",
		Description:      "Equipment theft",
		AssignedAdjuster: "Lisa Brown",
		LastUpdate:       "2023-10-25",
		Documents:        []string{"Police Report", "Inventory List"},
	},
}
