package claims

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/coverly/portal/internal/validate"
)

// ClaimService lists claims and files new ones.
type ClaimService interface {
	// List returns the claims, newest filings first after the seed rows,
	// optionally filtered by status ("" or "All" means no filter).
	List(status string) []Claim

	// StatusCounts returns the count per status plus the "All" total, in
	// the order the filter chips render them.
	StatusCounts() []StatusCount

	// PolicyTypes returns the claimable policy types for the filing form.
	PolicyTypes() []string

	// FileClaim validates and records a new claim. Field violations come
	// back as validation errors; the filed claim starts in "In Review".
	FileClaim(input FileClaimInput) (Claim, validate.Errors)
}

// StatusCount is one filter chip: a status label and how many claims
// hold it.
type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// claimService holds the seed table plus claims filed this process
// lifetime. The mutex guards the filed slice; the seed table is read-only.
type claimService struct {
	mu    sync.RWMutex
	filed []Claim
}

// NewClaimService creates the demo claim service.
func NewClaimService() ClaimService {
	return &claimService{}
}

func (s *claimService) List(status string) []Claim {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]Claim, 0, len(seedClaims)+len(s.filed))
	all = append(all, seedClaims...)
	all = append(all, s.filed...)

	if status == "" || status == "All" {
		return all
	}

	out := []Claim{}
	for _, cl := range all {
		if cl.Status == status {
			out = append(out, cl)
		}
	}
	return out
}

func (s *claimService) StatusCounts() []StatusCount {
	all := s.List("")

	counts := []StatusCount{{Status: "All", Count: len(all)}}
	for _, status := range []string{StatusInReview, StatusApproved, StatusPaid, StatusRejected} {
		n := 0
		for _, cl := range all {
			if cl.Status == status {
				n++
			}
		}
		counts = append(counts, StatusCount{Status: status, Count: n})
	}
	return counts
}

func (s *claimService) PolicyTypes() []string {
	out := make([]string, len(policyTypes))
	copy(out, policyTypes)
	return out
}

func (s *claimService) FileClaim(input FileClaimInput) (Claim, validate.Errors) {
	errs := validate.Errors{}
	if strings.TrimSpace(input.PolicyType) == "" {
		errs["policyType"] = "Policy type is required"
	}
	if strings.TrimSpace(input.IncidentDate) == "" {
		errs["incidentDate"] = "Incident date is required"
	}
	if strings.TrimSpace(input.Description) == "" {
		errs["description"] = "Description is required"
	}
	if strings.TrimSpace(input.PhoneNumber) != "" {
		if msg := validate.Phone(input.PhoneNumber); msg != "" {
			errs["phoneNumber"] = msg
		}
	}
	if !errs.Valid() {
		return Claim{}, errs
	}

	now := time.Now()
	claim := Claim{
		ID:           newClaimID(now),
		Type:         input.PolicyType,
		IncidentDate: input.IncidentDate,
		FiledDate:    now.Format("2006-01-02"),
		Status:       StatusInReview,
		Amount:       input.Amount,
		Description:  input.Description,
		LastUpdate:   now.Format("2006-01-02"),
		Documents:    input.Images,
	}

	s.mu.Lock()
	s.filed = append(s.filed, claim)
	s.mu.Unlock()

	slog.Info("claim filed",
		slog.String("id", claim.ID),
		slog.String("type", claim.Type),
	)

	return claim, nil
}

// newClaimID builds a reference like CL-2024-7f3a9c21: year plus a random
// fragment, following the seed table's CL-<year>-<suffix> shape.
func newClaimID(now time.Time) string {
	return fmt.Sprintf("CL-%d-%s", now.Year(), uuid.NewString()[:8])
}
