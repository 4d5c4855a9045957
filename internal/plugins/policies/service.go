package policies

import (
	"strconv"
	"strings"
)

// PolicyService lists the demo policy table and its aggregates.
type PolicyService interface {
	// List returns the policies, optionally filtered by status
	// ("" or "All" means no filter).
	List(status string) []Policy

	// Summary returns the table aggregates for the page header.
	Summary() Summary

	// StatusCounts returns the count per status plus the "All" total, in
	// the order the filter chips render them.
	StatusCounts() []StatusCount
}

// StatusCount is one filter chip: a status label and how many policies
// hold it.
type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type policyService struct{}

// NewPolicyService creates the demo policy service.
func NewPolicyService() PolicyService {
	return policyService{}
}

func (policyService) List(status string) []Policy {
	if status == "" || status == "All" {
		out := make([]Policy, len(demoPolicies))
		copy(out, demoPolicies)
		return out
	}

	out := []Policy{}
	for _, p := range demoPolicies {
		if p.Status == status {
			out = append(out, p)
		}
	}
	return out
}

func (policyService) Summary() Summary {
	sum := Summary{Total: len(demoPolicies)}
	for _, p := range demoPolicies {
		sum.MonthlyPremium += parseDollars(p.Premium)
		if p.Status == StatusActive {
			sum.Active++
		}
	}
	return sum
}

func (policyService) StatusCounts() []StatusCount {
	counts := []StatusCount{{Status: "All", Count: len(demoPolicies)}}
	for _, status := range []string{StatusActive, StatusPending, StatusExpired} {
		n := 0
		for _, p := range demoPolicies {
			if p.Status == status {
				n++
			}
		}
		counts = append(counts, StatusCount{Status: status, Count: n})
	}
	return counts
}

// parseDollars turns a display amount like "$1,200" into 1200. Unparseable
// input counts as zero.
func parseDollars(s string) int {
	s = strings.NewReplacer("$", "", ",", "").Replace(s)
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
