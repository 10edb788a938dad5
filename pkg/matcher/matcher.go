// Package matcher scores listings against buyer acquisition criteria.
//
// Each of the six criteria contributes a 0-100 sub-score with a fixed
// weight, but only when the buyer has actually set that criterion: unset
// criteria are skipped entirely and the remaining weights are renormalized,
// so a buyer who only cares about sector gets a pure sector score.
package matcher

import (
	"math"
	"slices"
	"sort"

	domain "github.com/mpoirier/dealflow/pkg/types"
)

// Criterion weights. These are relative; the total for any given profile is
// the sum over its active criteria only.
const (
	WeightSector       = 25
	WeightLocation     = 20
	WeightRevenue      = 20
	WeightEmployees    = 15
	WeightTransferType = 10
	WeightCustomerType = 10
)

// MinMatchScore is the threshold below which FindMatches discards a listing.
const MinMatchScore = 30

// Partial-credit sub-scores.
const (
	transferTypeMissScore = 50 // wrong transfer type still gets half credit
	customerTypeMixed     = "mixed"
	customerMixedScore    = 75
)

// employeeToleranceFloor is the minimum overshoot tolerance, in heads, for
// the employee range check.
const employeeToleranceFloor = 10

// Breakdown details the per-criterion sub-scores behind a match score.
// Inactive criteria report a zero sub-score and contribute nothing to Total.
type Breakdown struct {
	Sector       float64 `json:"sector"`
	Location     float64 `json:"location"`
	Revenue      float64 `json:"revenue"`
	Employees    float64 `json:"employees"`
	TransferType float64 `json:"transfer_type"`
	CustomerType float64 `json:"customer_type"`
	ActiveWeight int     `json:"active_weight"`
	Total        int     `json:"total"`
}

// Score computes the 0-100 compatibility score between a buyer profile and
// a listing. A profile with no criteria at all scores 0 against everything.
func Score(profile *domain.BuyerProfile, listing *domain.Listing) Breakdown {
	b := Breakdown{}
	var weighted float64

	if len(profile.TargetSectors) > 0 {
		b.Sector = setScore(listing.IndustrySector, profile.TargetSectors)
		b.ActiveWeight += WeightSector
		weighted += b.Sector * WeightSector
	}

	if len(profile.TargetLocations) > 0 {
		b.Location = setScore(listing.LocationDepartment, profile.TargetLocations)
		b.ActiveWeight += WeightLocation
		weighted += b.Location * WeightLocation
	}

	if profile.TargetRevenueMin != nil || profile.TargetRevenueMax != nil {
		b.Revenue = revenueScore(listing.AnnualRevenue, profile.TargetRevenueMin, profile.TargetRevenueMax)
		b.ActiveWeight += WeightRevenue
		weighted += b.Revenue * WeightRevenue
	}

	if profile.TargetEmployeesMin != nil || profile.TargetEmployeesMax != nil {
		b.Employees = employeeScore(listing.EmployeeCount, profile.TargetEmployeesMin, profile.TargetEmployeesMax)
		b.ActiveWeight += WeightEmployees
		weighted += b.Employees * WeightEmployees
	}

	if len(profile.TargetTransferTypes) > 0 {
		b.TransferType = transferScore(listing.TransferType, profile.TargetTransferTypes)
		b.ActiveWeight += WeightTransferType
		weighted += b.TransferType * WeightTransferType
	}

	if len(profile.TargetCustomerTypes) > 0 {
		b.CustomerType = customerScore(listing.CustomerType, profile.TargetCustomerTypes)
		b.ActiveWeight += WeightCustomerType
		weighted += b.CustomerType * WeightCustomerType
	}

	if b.ActiveWeight == 0 {
		return b
	}

	b.Total = int(math.Round(weighted / float64(b.ActiveWeight)))
	return b
}

// FindMatches scores every candidate against the profile, drops those under
// MinMatchScore, and returns the rest sorted by descending score. Ties keep
// the original candidate order. A limit of 0 means no truncation.
func FindMatches(profile *domain.BuyerProfile, candidates []domain.Listing, limit int) []domain.Match {
	matches := make([]domain.Match, 0, len(candidates))
	for i := range candidates {
		b := Score(profile, &candidates[i])
		if b.Total < MinMatchScore {
			continue
		}
		matches = append(matches, domain.Match{Listing: candidates[i], Score: b.Total})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

// setScore is the exact-membership rule shared by sector and location:
// full credit when the listing value is in the target set, nothing
// otherwise. A listing without the attribute scores 0.
func setScore(value string, targets []string) float64 {
	if value != "" && slices.Contains(targets, value) {
		return 100
	}
	return 0
}

func transferScore(value string, targets []string) float64 {
	if value == "" {
		return 0
	}
	if slices.Contains(targets, value) {
		return 100
	}
	return transferTypeMissScore
}

func customerScore(value string, targets []string) float64 {
	switch {
	case value == "":
		return 0
	case slices.Contains(targets, value):
		return 100
	case value == customerTypeMixed:
		return customerMixedScore
	default:
		return 0
	}
}

func revenueScore(value, minBound, maxBound *float64) float64 {
	if value == nil {
		return 0
	}
	return rangeScore(*value, minBound, maxBound, func(bound float64) float64 {
		return 0.2 * bound
	})
}

func employeeScore(value, minBound, maxBound *int) float64 {
	if value == nil {
		return 0
	}
	var fmin, fmax *float64
	if minBound != nil {
		v := float64(*minBound)
		fmin = &v
	}
	if maxBound != nil {
		v := float64(*maxBound)
		fmax = &v
	}
	return rangeScore(float64(*value), fmin, fmax, func(bound float64) float64 {
		tol := math.Trunc(0.2 * bound)
		if tol < employeeToleranceFloor {
			tol = employeeToleranceFloor
		}
		return tol
	})
}

// rangeScore applies the shared numeric range rule. A single bound is a
// hard cutoff. With both bounds set, values inside the range get full
// credit and values outside decay linearly across a tolerance band derived
// from whichever bound was violated, reaching zero at the band's edge.
func rangeScore(v float64, minBound, maxBound *float64, tolerance func(bound float64) float64) float64 {
	switch {
	case minBound == nil && maxBound == nil:
		return 100
	case minBound != nil && maxBound == nil:
		if v >= *minBound {
			return 100
		}
		return 0
	case maxBound != nil && minBound == nil:
		if v <= *maxBound {
			return 100
		}
		return 0
	}

	var diff, bound float64
	switch {
	case v < *minBound:
		diff = *minBound - v
		bound = *minBound
	case v > *maxBound:
		diff = v - *maxBound
		bound = *maxBound
	default:
		return 100
	}

	tol := tolerance(bound)
	if tol <= 0 || diff > tol {
		return 0
	}
	return math.Round(100 * (tol - diff) / tol)
}
