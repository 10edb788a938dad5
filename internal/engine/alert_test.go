package engine

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mpoirier/dealflow/internal/notify"
	notifyMocks "github.com/mpoirier/dealflow/internal/notify/mocks"
	storeMocks "github.com/mpoirier/dealflow/internal/store/mocks"
	domain "github.com/mpoirier/dealflow/pkg/types"
)

func pendingAlert(id, buyerID, listingID string, score int) domain.MatchAlert {
	return domain.MatchAlert{
		ID:        id,
		BuyerID:   buyerID,
		ListingID: listingID,
		Score:     score,
	}
}

func alertListing(id string) *domain.Listing {
	revenue := 240000.0
	employees := 4
	price := 180000.0
	return &domain.Listing{
		ID:                 id,
		SellerID:           "s1",
		Title:              "Boulangerie-pâtisserie",
		IndustrySector:     "restauration",
		LocationDepartment: "33",
		AnnualRevenue:      &revenue,
		EmployeeCount:      &employees,
		AskingPrice:        &price,
		Status:             domain.ListingAvailable,
	}
}

func TestProcessAlerts_NoPending(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mn := notifyMocks.NewMockNotifier(t)

	ms.EXPECT().ListPendingMatchAlerts(mock.Anything).Return(nil, nil).Once()

	err := ProcessAlerts(context.Background(), ms, mn)
	require.NoError(t, err)
}

func TestProcessAlerts_SingleAlert(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mn := notifyMocks.NewMockNotifier(t)

	alert := pendingAlert("a1", "b1", "l1", 85)

	ms.EXPECT().ListPendingMatchAlerts(mock.Anything).
		Return([]domain.MatchAlert{alert}, nil).Once()
	ms.EXPECT().GetListing(mock.Anything, "l1").Return(alertListing("l1"), nil).Once()
	mn.EXPECT().
		SendMatchAlert(mock.Anything, mock.MatchedBy(func(p *notify.MatchAlertPayload) bool {
			return p.BuyerID == "b1" &&
				p.ListingTitle == "Boulangerie-pâtisserie" &&
				p.Score == 85 &&
				p.Revenue == "€240000" &&
				p.Employees == "4" &&
				p.AskingPrice == "€180000"
		})).
		Return(nil).Once()
	ms.EXPECT().MarkMatchAlertsNotified(mock.Anything, []string{"a1"}).Return(nil).Once()

	err := ProcessAlerts(context.Background(), ms, mn)
	require.NoError(t, err)
}

func TestProcessAlerts_NotifyFailureNotMarked(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mn := notifyMocks.NewMockNotifier(t)

	alert := pendingAlert("a1", "b1", "l1", 85)

	// No MarkMatchAlertsNotified expected: the alert stays pending.
	ms.EXPECT().ListPendingMatchAlerts(mock.Anything).
		Return([]domain.MatchAlert{alert}, nil).Once()
	ms.EXPECT().GetListing(mock.Anything, "l1").Return(alertListing("l1"), nil).Once()
	mn.EXPECT().SendMatchAlert(mock.Anything, mock.Anything).
		Return(errors.New("webhook down")).Once()

	err := ProcessAlerts(context.Background(), ms, mn)
	require.NoError(t, err)
}

func TestProcessAlerts_BatchesLargeGroups(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mn := notifyMocks.NewMockNotifier(t)

	var pending []domain.MatchAlert
	var wantIDs []string
	for i := 0; i < 6; i++ {
		id := fmt.Sprintf("a%d", i)
		listingID := fmt.Sprintf("l%d", i)
		pending = append(pending, pendingAlert(id, "b1", listingID, 70+i))
		wantIDs = append(wantIDs, id)
		ms.EXPECT().GetListing(mock.Anything, listingID).
			Return(alertListing(listingID), nil).Once()
	}

	ms.EXPECT().ListPendingMatchAlerts(mock.Anything).Return(pending, nil).Once()
	mn.EXPECT().
		SendBatchMatchAlert(mock.Anything, mock.MatchedBy(func(ps []notify.MatchAlertPayload) bool {
			return len(ps) == 6
		}), "b1").
		Return(nil).Once()
	ms.EXPECT().MarkMatchAlertsNotified(mock.Anything, wantIDs).Return(nil).Once()

	err := ProcessAlerts(context.Background(), ms, mn)
	require.NoError(t, err)
}

func TestProcessAlerts_BatchSkipsWithdrawnListings(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mn := notifyMocks.NewMockNotifier(t)

	var pending []domain.MatchAlert
	for i := 0; i < 5; i++ {
		pending = append(pending, pendingAlert(
			fmt.Sprintf("a%d", i), "b1", fmt.Sprintf("l%d", i), 80))
	}

	ms.EXPECT().ListPendingMatchAlerts(mock.Anything).Return(pending, nil).Once()

	// l2 is gone. Its alert is neither sent nor marked.
	for i := 0; i < 5; i++ {
		listingID := fmt.Sprintf("l%d", i)
		if i == 2 {
			ms.EXPECT().GetListing(mock.Anything, listingID).
				Return(nil, errors.New("not found")).Once()
			continue
		}
		ms.EXPECT().GetListing(mock.Anything, listingID).
			Return(alertListing(listingID), nil).Once()
	}

	mn.EXPECT().
		SendBatchMatchAlert(mock.Anything, mock.MatchedBy(func(ps []notify.MatchAlertPayload) bool {
			return len(ps) == 4
		}), "b1").
		Return(nil).Once()
	ms.EXPECT().
		MarkMatchAlertsNotified(mock.Anything, []string{"a0", "a1", "a3", "a4"}).
		Return(nil).Once()

	err := ProcessAlerts(context.Background(), ms, mn)
	require.NoError(t, err)
}

func TestProcessAlerts_SmallGroupsSentIndividually(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mn := notifyMocks.NewMockNotifier(t)

	pending := []domain.MatchAlert{
		pendingAlert("a1", "b1", "l1", 75),
		pendingAlert("a2", "b1", "l2", 90),
	}

	ms.EXPECT().ListPendingMatchAlerts(mock.Anything).Return(pending, nil).Once()
	ms.EXPECT().GetListing(mock.Anything, "l1").Return(alertListing("l1"), nil).Once()
	ms.EXPECT().GetListing(mock.Anything, "l2").Return(alertListing("l2"), nil).Once()
	mn.EXPECT().SendMatchAlert(mock.Anything, mock.Anything).Return(nil).Twice()
	ms.EXPECT().MarkMatchAlertsNotified(mock.Anything, []string{"a1"}).Return(nil).Once()
	ms.EXPECT().MarkMatchAlertsNotified(mock.Anything, []string{"a2"}).Return(nil).Once()

	err := ProcessAlerts(context.Background(), ms, mn)
	require.NoError(t, err)
}

func TestProcessAlerts_ListError(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mn := notifyMocks.NewMockNotifier(t)

	ms.EXPECT().ListPendingMatchAlerts(mock.Anything).
		Return(nil, errors.New("db down")).Once()

	err := ProcessAlerts(context.Background(), ms, mn)
	require.Error(t, err)
}

func TestGroupByBuyer(t *testing.T) {
	t.Parallel()

	alerts := []domain.MatchAlert{
		pendingAlert("a1", "b1", "l1", 70),
		pendingAlert("a2", "b2", "l1", 80),
		pendingAlert("a3", "b1", "l2", 90),
	}

	grouped := groupByBuyer(alerts)
	assert.Len(t, grouped, 2)
	assert.Len(t, grouped["b1"], 2)
	assert.Len(t, grouped["b2"], 1)
}
