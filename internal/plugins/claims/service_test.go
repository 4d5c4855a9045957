package claims

import (
	"strings"
	"testing"
	"time"
)

func TestList_SeedTable(t *testing.T) {
	svc := NewClaimService()

	got := svc.List("")
	if len(got) != 4 {
		t.Fatalf("expected 4 seed claims, got %d", len(got))
	}
	want := []string{"CL-2024-001", "CL-2023-156", "CL-2023-142", "CL-2023-135"}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("claim %d: expected %s, got %s", i, id, got[i].ID)
		}
	}
}

func TestList_ByStatus(t *testing.T) {
	svc := NewClaimService()

	tests := []struct {
		status string
		want   int
	}{
		{StatusInReview, 1},
		{StatusApproved, 1},
		{StatusPaid, 1},
		{StatusRejected, 1},
		{"All", 4},
		{"Unknown", 0},
	}
	for _, tt := range tests {
		got := svc.List(tt.status)
		if len(got) != tt.want {
			t.Errorf("List(%q): expected %d claims, got %d", tt.status, tt.want, len(got))
		}
	}
}

func TestFileClaim(t *testing.T) {
	svc := NewClaimService()

	claim, errs := svc.FileClaim(FileClaimInput{
		PolicyType:   "Auto Insurance",
		IncidentDate: "2024-02-01",
		Description:  "Windshield cracked by road debris",
		Amount:       "$400",
		PhoneNumber:  "+1 (555) 123-4567",
		Images:       []string{"crack.jpg"},
	})
	if !errs.Valid() {
		t.Fatalf("unexpected validation errors: %v", errs)
	}

	year := time.Now().Year()
	if !strings.HasPrefix(claim.ID, "CL-") || !strings.Contains(claim.ID, "-") {
		t.Errorf("unexpected claim id shape: %s", claim.ID)
	}
	if want := "CL-" + time.Now().Format("2006") + "-"; !strings.HasPrefix(claim.ID, want) {
		t.Errorf("expected id prefix %s for year %d, got %s", want, year, claim.ID)
	}
	if claim.Status != StatusInReview {
		t.Errorf("expected new claim in %q, got %q", StatusInReview, claim.Status)
	}
	if claim.FiledDate != time.Now().Format("2006-01-02") {
		t.Errorf("expected filed date today, got %s", claim.FiledDate)
	}

	// The filed claim appends to the list and shows up in the counts.
	all := svc.List("")
	if len(all) != 5 {
		t.Fatalf("expected 5 claims after filing, got %d", len(all))
	}
	if all[4].ID != claim.ID {
		t.Errorf("expected filed claim last, got %s", all[4].ID)
	}
	inReview := svc.List(StatusInReview)
	if len(inReview) != 2 {
		t.Errorf("expected 2 in-review claims, got %d", len(inReview))
	}
}

func TestFileClaim_RequiredFields(t *testing.T) {
	svc := NewClaimService()

	_, errs := svc.FileClaim(FileClaimInput{})
	if errs.Valid() {
		t.Fatal("expected validation errors")
	}
	for field, want := range map[string]string{
		"policyType":   "Policy type is required",
		"incidentDate": "Incident date is required",
		"description":  "Description is required",
	} {
		if errs[field] != want {
			t.Errorf("%s: expected %q, got %q", field, want, errs[field])
		}
	}

	// Nothing is recorded on a failed filing.
	if got := svc.List(""); len(got) != 4 {
		t.Errorf("expected seed table untouched, got %d claims", len(got))
	}
}

func TestFileClaim_PhoneOptionalButValidated(t *testing.T) {
	svc := NewClaimService()

	valid := FileClaimInput{
		PolicyType:   "Home Insurance",
		IncidentDate: "2024-02-01",
		Description:  "Roof leak",
	}
	if _, errs := svc.FileClaim(valid); !errs.Valid() {
		t.Errorf("expected empty phone to pass, got %v", errs)
	}

	bad := valid
	bad.PhoneNumber = "12345"
	_, errs := svc.FileClaim(bad)
	if errs.Valid() {
		t.Fatal("expected phone validation error")
	}
	if errs["phoneNumber"] == "" {
		t.Error("expected phoneNumber error message")
	}
}

func TestStatusCounts(t *testing.T) {
	svc := NewClaimService()

	got := svc.StatusCounts()
	want := []StatusCount{
		{Status: "All", Count: 4},
		{Status: StatusInReview, Count: 1},
		{Status: StatusApproved, Count: 1},
		{Status: StatusPaid, Count: 1},
		{Status: StatusRejected, Count: 1},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d counts, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("count %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestPolicyTypes(t *testing.T) {
	svc := NewClaimService()

	got := svc.PolicyTypes()
	want := []string{"Auto Insurance", "Home Insurance", "Health Insurance", "Business Insurance"}
	if len(got) != len(want) {
		t.Fatalf("expected %d types, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("type %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}
