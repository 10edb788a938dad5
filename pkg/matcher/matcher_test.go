package matcher_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpoirier/dealflow/pkg/matcher"
	domain "github.com/mpoirier/dealflow/pkg/types"
)

func fp(v float64) *float64 { return &v }
func ip(v int) *int         { return &v }

func listing(id string) domain.Listing {
	return domain.Listing{ID: id, Title: "Test business", Status: domain.ListingAvailable}
}

func TestScore_SectorOnly(t *testing.T) {
	t.Parallel()

	profile := &domain.BuyerProfile{TargetSectors: []string{"tech"}}

	hit := listing("l1")
	hit.IndustrySector = "tech"
	b := matcher.Score(profile, &hit)
	assert.Equal(t, 100, b.Total, "single active criterion carries full weight")
	assert.Equal(t, matcher.WeightSector, b.ActiveWeight)

	miss := listing("l2")
	miss.IndustrySector = "retail"
	assert.Equal(t, 0, matcher.Score(profile, &miss).Total)
}

func TestScore_NoCriteriaAlwaysZero(t *testing.T) {
	t.Parallel()

	profile := &domain.BuyerProfile{}
	l := listing("l1")
	l.IndustrySector = "tech"
	l.AnnualRevenue = fp(500000)

	b := matcher.Score(profile, &l)
	assert.Equal(t, 0, b.Total)
	assert.Equal(t, 0, b.ActiveWeight)
}

func TestScore_RevenueToleranceDecay(t *testing.T) {
	t.Parallel()

	profile := &domain.BuyerProfile{
		TargetRevenueMin: fp(100000),
		TargetRevenueMax: fp(200000),
	}

	tests := []struct {
		name    string
		revenue *float64
		want    float64
	}{
		{"inside range", fp(150000), 100},
		{"at max bound", fp(200000), 100},
		{"10k over, tolerance 40k", fp(210000), 75},
		{"halfway through tolerance", fp(220000), 50},
		{"at tolerance edge", fp(240000), 0},
		{"beyond tolerance", fp(250000), 0},
		{"under min, tolerance 20k", fp(90000), 50},
		{"missing revenue", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			l := listing("l1")
			l.AnnualRevenue = tt.revenue
			b := matcher.Score(profile, &l)
			assert.InDelta(t, tt.want, b.Revenue, 0.001)
		})
	}
}

func TestScore_SingleBoundIsHardCutoff(t *testing.T) {
	t.Parallel()

	minOnly := &domain.BuyerProfile{TargetRevenueMin: fp(100000)}

	l := listing("l1")
	l.AnnualRevenue = fp(99999)
	assert.Equal(t, 0, matcher.Score(minOnly, &l).Total, "no tolerance band below a lone min")

	l.AnnualRevenue = fp(100000)
	assert.Equal(t, 100, matcher.Score(minOnly, &l).Total)

	maxOnly := &domain.BuyerProfile{TargetRevenueMax: fp(100000)}
	l.AnnualRevenue = fp(100001)
	assert.Equal(t, 0, matcher.Score(maxOnly, &l).Total)
}

func TestScore_EmployeeToleranceFloor(t *testing.T) {
	t.Parallel()

	// 20% of 20 is 4, floored up to 10 heads of tolerance.
	profile := &domain.BuyerProfile{
		TargetEmployeesMin: ip(5),
		TargetEmployeesMax: ip(20),
	}

	tests := []struct {
		name  string
		count *int
		want  float64
	}{
		{"inside range", ip(12), 100},
		{"5 over, tolerance 10", ip(25), 50},
		{"at tolerance edge", ip(30), 0},
		{"beyond tolerance", ip(31), 0},
		{"missing employee count", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			l := listing("l1")
			l.EmployeeCount = tt.count
			b := matcher.Score(profile, &l)
			assert.InDelta(t, tt.want, b.Employees, 0.001)
		})
	}
}

func TestScore_EmployeeTolerancePercentageWhenLarger(t *testing.T) {
	t.Parallel()

	// 20% of 200 is 40, above the floor of 10.
	profile := &domain.BuyerProfile{
		TargetEmployeesMin: ip(50),
		TargetEmployeesMax: ip(200),
	}

	l := listing("l1")
	l.EmployeeCount = ip(220) // 20 over, tolerance 40
	b := matcher.Score(profile, &l)
	assert.InDelta(t, 50, b.Employees, 0.001)
}

func TestScore_TransferTypePartialCredit(t *testing.T) {
	t.Parallel()

	profile := &domain.BuyerProfile{TargetTransferTypes: []string{"full_sale"}}

	l := listing("l1")
	l.TransferType = "full_sale"
	assert.Equal(t, 100, matcher.Score(profile, &l).Total)

	l.TransferType = "partial_sale"
	assert.Equal(t, 50, matcher.Score(profile, &l).Total, "wrong transfer type keeps half credit")

	l.TransferType = ""
	assert.Equal(t, 0, matcher.Score(profile, &l).Total)
}

func TestScore_CustomerTypeMixedCredit(t *testing.T) {
	t.Parallel()

	profile := &domain.BuyerProfile{TargetCustomerTypes: []string{"b2b"}}

	l := listing("l1")
	l.CustomerType = "b2b"
	assert.Equal(t, 100, matcher.Score(profile, &l).Total)

	l.CustomerType = "mixed"
	assert.Equal(t, 75, matcher.Score(profile, &l).Total)

	l.CustomerType = "b2c"
	assert.Equal(t, 0, matcher.Score(profile, &l).Total)
}

func TestScore_WeightRenormalization(t *testing.T) {
	t.Parallel()

	// Sector (25) hits, location (20) misses: 2500/45 = 55.56 -> 56.
	profile := &domain.BuyerProfile{
		TargetSectors:   []string{"tech"},
		TargetLocations: []string{"75"},
	}

	l := listing("l1")
	l.IndustrySector = "tech"
	l.LocationDepartment = "33"

	b := matcher.Score(profile, &l)
	assert.Equal(t, 45, b.ActiveWeight)
	assert.Equal(t, 56, b.Total)
}

func TestScore_AllCriteriaPerfect(t *testing.T) {
	t.Parallel()

	profile := &domain.BuyerProfile{
		TargetSectors:       []string{"tech"},
		TargetLocations:     []string{"75"},
		TargetRevenueMin:    fp(100000),
		TargetRevenueMax:    fp(1000000),
		TargetEmployeesMin:  ip(5),
		TargetEmployeesMax:  ip(50),
		TargetTransferTypes: []string{"full_sale"},
		TargetCustomerTypes: []string{"b2b"},
	}

	l := listing("l1")
	l.IndustrySector = "tech"
	l.LocationDepartment = "75"
	l.AnnualRevenue = fp(400000)
	l.EmployeeCount = ip(20)
	l.TransferType = "full_sale"
	l.CustomerType = "b2b"

	b := matcher.Score(profile, &l)
	assert.Equal(t, 100, b.Total)
	assert.Equal(t, 100, b.ActiveWeight)
}

func TestFindMatches_ThresholdSortAndLimit(t *testing.T) {
	t.Parallel()

	profile := &domain.BuyerProfile{TargetSectors: []string{"tech"}}

	tech1 := listing("tech-1")
	tech1.IndustrySector = "tech"
	tech2 := listing("tech-2")
	tech2.IndustrySector = "tech"
	retail := listing("retail-1")
	retail.IndustrySector = "retail"

	matches := matcher.FindMatches(profile, []domain.Listing{retail, tech1, tech2}, 0)
	require.Len(t, matches, 2, "sub-threshold listings are discarded")
	assert.Equal(t, "tech-1", matches[0].Listing.ID, "ties keep candidate order")
	assert.Equal(t, "tech-2", matches[1].Listing.ID)
	assert.Equal(t, 100, matches[0].Score)

	limited := matcher.FindMatches(profile, []domain.Listing{retail, tech1, tech2}, 1)
	require.Len(t, limited, 1)
	assert.Equal(t, "tech-1", limited[0].Listing.ID)
}

func TestFindMatches_DescendingOrder(t *testing.T) {
	t.Parallel()

	profile := &domain.BuyerProfile{
		TargetSectors:       []string{"tech"},
		TargetTransferTypes: []string{"full_sale"},
	}

	partial := listing("partial")
	partial.IndustrySector = "tech"
	partial.TransferType = "partial_sale" // (2500+500)/35 = 86

	perfect := listing("perfect")
	perfect.IndustrySector = "tech"
	perfect.TransferType = "full_sale" // 100

	matches := matcher.FindMatches(profile, []domain.Listing{partial, perfect}, 0)
	require.Len(t, matches, 2)
	assert.Equal(t, "perfect", matches[0].Listing.ID)
	assert.Equal(t, 100, matches[0].Score)
	assert.Equal(t, "partial", matches[1].Listing.ID)
	assert.Equal(t, 86, matches[1].Score)
}

func TestFindMatches_EmptyCandidates(t *testing.T) {
	t.Parallel()

	profile := &domain.BuyerProfile{TargetSectors: []string{"tech"}}
	assert.Empty(t, matcher.FindMatches(profile, nil, 10))
}
