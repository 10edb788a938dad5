package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domain "github.com/mpoirier/dealflow/pkg/types"
)

func sectorProfile(buyerID string, sectors ...string) domain.BuyerProfile {
	return domain.BuyerProfile{
		BuyerID:       buyerID,
		TargetSectors: sectors,
	}
}

func availableListing(id, sector string) domain.Listing {
	return domain.Listing{
		ID:             id,
		SellerID:       "s1",
		Title:          "Listing " + id,
		IndustrySector: sector,
		Status:         domain.ListingAvailable,
	}
}

func TestEngine_Matches(t *testing.T) {
	t.Parallel()

	eng, ms, _ := newTestEngine(t)

	profile := sectorProfile("b1", "restauration")

	ms.EXPECT().GetBuyerProfile(mock.Anything, "b1").Return(&profile, nil).Once()
	ms.EXPECT().ListCandidateListings(mock.Anything, "b1").
		Return([]domain.Listing{
			availableListing("l1", "restauration"),
			availableListing("l2", "industrie"),
		}, nil).Once()

	matches, err := eng.Matches(context.Background(), "b1", 10)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "l1", matches[0].Listing.ID)
	assert.Equal(t, 100, matches[0].Score)
}

func TestEngine_Matches_ProfileMissing(t *testing.T) {
	t.Parallel()

	eng, ms, _ := newTestEngine(t)

	ms.EXPECT().GetBuyerProfile(mock.Anything, "nobody").
		Return(nil, errors.New("not found")).Once()

	_, err := eng.Matches(context.Background(), "nobody", 10)
	require.Error(t, err)
}

func TestEngine_RunMatchRefresh_RecordsAlerts(t *testing.T) {
	t.Parallel()

	eng, ms, _ := newTestEngine(t)

	profile := sectorProfile("b1", "restauration")

	ms.EXPECT().ListBuyerProfiles(mock.Anything).
		Return([]domain.BuyerProfile{profile}, nil).Once()
	ms.EXPECT().ListCandidateListings(mock.Anything, "b1").
		Return([]domain.Listing{availableListing("l1", "restauration")}, nil).Once()
	// The cooldown cutoff is derived from the engine's clock, not wall time.
	ms.EXPECT().HasRecentMatchAlert(mock.Anything, "b1", "l1", testNow.Add(-24*time.Hour)).
		Return(false, nil).Once()
	ms.EXPECT().
		CreateMatchAlert(mock.Anything, mock.MatchedBy(func(a *domain.MatchAlert) bool {
			return a.BuyerID == "b1" && a.ListingID == "l1" && a.Score == 100
		})).
		Return(nil).Once()

	// Alert delivery runs after the refresh.
	ms.EXPECT().ListPendingMatchAlerts(mock.Anything).Return(nil, nil).Once()

	recorded, err := eng.RunMatchRefresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, recorded)
}

func TestEngine_RunMatchRefresh_SkipsBuyerWithoutCriteria(t *testing.T) {
	t.Parallel()

	eng, ms, _ := newTestEngine(t)

	// No criteria at all: candidates are never even fetched.
	ms.EXPECT().ListBuyerProfiles(mock.Anything).
		Return([]domain.BuyerProfile{{BuyerID: "b1"}}, nil).Once()
	ms.EXPECT().ListPendingMatchAlerts(mock.Anything).Return(nil, nil).Once()

	recorded, err := eng.RunMatchRefresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, recorded)
}

func TestEngine_RunMatchRefresh_CooldownSuppressesAlert(t *testing.T) {
	t.Parallel()

	eng, ms, _ := newTestEngine(t, WithAlertCooldown(time.Hour))

	profile := sectorProfile("b1", "restauration")

	ms.EXPECT().ListBuyerProfiles(mock.Anything).
		Return([]domain.BuyerProfile{profile}, nil).Once()
	ms.EXPECT().ListCandidateListings(mock.Anything, "b1").
		Return([]domain.Listing{availableListing("l1", "restauration")}, nil).Once()
	ms.EXPECT().HasRecentMatchAlert(mock.Anything, "b1", "l1", testNow.Add(-time.Hour)).
		Return(true, nil).Once()
	ms.EXPECT().ListPendingMatchAlerts(mock.Anything).Return(nil, nil).Once()

	recorded, err := eng.RunMatchRefresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, recorded)
}

func TestEngine_RunMatchRefresh_ThresholdFiltersAlerts(t *testing.T) {
	t.Parallel()

	// Everything below a perfect score stays silent.
	eng, ms, _ := newTestEngine(t, WithAlertThreshold(101))

	profile := sectorProfile("b1", "restauration")

	ms.EXPECT().ListBuyerProfiles(mock.Anything).
		Return([]domain.BuyerProfile{profile}, nil).Once()
	ms.EXPECT().ListCandidateListings(mock.Anything, "b1").
		Return([]domain.Listing{availableListing("l1", "restauration")}, nil).Once()
	ms.EXPECT().ListPendingMatchAlerts(mock.Anything).Return(nil, nil).Once()

	recorded, err := eng.RunMatchRefresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, recorded)
}

func TestEngine_RunMatchRefresh_ContinuesOnBuyerError(t *testing.T) {
	t.Parallel()

	eng, ms, _ := newTestEngine(t)

	p1 := sectorProfile("b1", "restauration")
	p2 := sectorProfile("b2", "restauration")

	ms.EXPECT().ListBuyerProfiles(mock.Anything).
		Return([]domain.BuyerProfile{p1, p2}, nil).Once()

	// First buyer's candidate fetch fails; the second still refreshes.
	ms.EXPECT().ListCandidateListings(mock.Anything, "b1").
		Return(nil, errors.New("db down")).Once()
	ms.EXPECT().ListCandidateListings(mock.Anything, "b2").
		Return([]domain.Listing{availableListing("l2", "restauration")}, nil).Once()
	ms.EXPECT().HasRecentMatchAlert(mock.Anything, "b2", "l2", testNow.Add(-24*time.Hour)).
		Return(false, nil).Once()
	ms.EXPECT().CreateMatchAlert(mock.Anything, mock.Anything).Return(nil).Once()
	ms.EXPECT().ListPendingMatchAlerts(mock.Anything).Return(nil, nil).Once()

	recorded, err := eng.RunMatchRefresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, recorded)
}
