package engine

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	notifyMocks "github.com/mpoirier/dealflow/internal/notify/mocks"
	storeMocks "github.com/mpoirier/dealflow/internal/store/mocks"
	domain "github.com/mpoirier/dealflow/pkg/types"
)

var testNow = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEngine(t *testing.T, opts ...EngineOption) (*Engine, *storeMocks.MockStore, *notifyMocks.MockNotifier) {
	t.Helper()
	ms := storeMocks.NewMockStore(t)
	mn := notifyMocks.NewMockNotifier(t)

	base := []EngineOption{
		WithLogger(quietLogger()),
		WithNowFunc(func() time.Time { return testNow }),
	}
	eng := NewEngine(ms, mn, append(base, opts...)...)
	return eng, ms, mn
}

func matchTime(want time.Time) interface{} {
	return mock.MatchedBy(func(got *time.Time) bool {
		return got != nil && got.Equal(want)
	})
}

func TestEngine_ChangeStage_ArmsTimer(t *testing.T) {
	t.Parallel()

	eng, ms, _ := newTestEngine(t)

	deal := &domain.Deal{
		ID: "d1", ListingID: "l1", BuyerID: "b1",
		Status: domain.StageFavorited,
	}
	wantUntil := testNow.AddDate(0, 0, 7)

	ms.EXPECT().GetDeal(mock.Anything, "d1").Return(deal, nil).Once()
	ms.EXPECT().
		UpdateDealTimer(mock.Anything, "d1", domain.StageToContact, testNow, matchTime(wantUntil), true).
		Return(nil).Once()
	ms.EXPECT().
		SetListingStatus(mock.Anything, "l1", domain.ListingReserved).
		Return(nil).Once()

	got, err := eng.ChangeStage(context.Background(), "d1", domain.StageToContact)
	require.NoError(t, err)
	assert.Equal(t, domain.StageToContact, got.Status)
	require.NotNil(t, got.ReservedUntil)
	assert.True(t, got.ReservedUntil.Equal(wantUntil))
	assert.True(t, got.Reserved)
}

func TestEngine_ChangeStage_SameStageNoOp(t *testing.T) {
	t.Parallel()

	eng, ms, _ := newTestEngine(t)

	until := testNow.AddDate(0, 0, 15)
	deal := &domain.Deal{
		ID: "d1", ListingID: "l1", BuyerID: "b1",
		Status:         domain.StageNegotiation,
		StageEnteredAt: testNow.AddDate(0, 0, -5),
		ReservedUntil:  &until,
		Reserved:       true,
	}

	// No UpdateDealTimer expected: the running timer must survive.
	ms.EXPECT().GetDeal(mock.Anything, "d1").Return(deal, nil).Once()

	got, err := eng.ChangeStage(context.Background(), "d1", domain.StageNegotiation)
	require.NoError(t, err)
	require.NotNil(t, got.ReservedUntil)
	assert.True(t, got.ReservedUntil.Equal(until))
	assert.True(t, got.StageEnteredAt.Equal(deal.StageEnteredAt))
}

func TestEngine_ChangeStage_SharedTimerStagesStillReset(t *testing.T) {
	t.Parallel()

	eng, ms, _ := newTestEngine(t)

	oldEntered := testNow.AddDate(0, 0, -10)
	oldUntil := oldEntered.AddDate(0, 0, 33)
	deal := &domain.Deal{
		ID: "d1", ListingID: "l1", BuyerID: "b1",
		Status:         domain.StageInfoExchange,
		StageEnteredAt: oldEntered,
		ReservedUntil:  &oldUntil,
		Reserved:       true,
	}

	// Moving between two stages that share the 33-day duration restarts
	// the clock from now.
	wantUntil := testNow.AddDate(0, 0, 33)

	ms.EXPECT().GetDeal(mock.Anything, "d1").Return(deal, nil).Once()
	ms.EXPECT().
		UpdateDealTimer(mock.Anything, "d1", domain.StageAnalysis, testNow, matchTime(wantUntil), true).
		Return(nil).Once()
	ms.EXPECT().
		SetListingStatus(mock.Anything, "l1", domain.ListingReserved).
		Return(nil).Once()

	got, err := eng.ChangeStage(context.Background(), "d1", domain.StageAnalysis)
	require.NoError(t, err)
	assert.True(t, got.ReservedUntil.Equal(wantUntil))
}

func TestEngine_ChangeStage_ListingStatusSync(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		stage      domain.Stage
		wantStatus domain.ListingStatus
		noSync     bool
	}{
		{name: "loi reserves listing", stage: domain.StageLOI, wantStatus: domain.ListingReserved},
		{name: "deal signed sells listing", stage: domain.StageDealSigned, wantStatus: domain.ListingSold},
		{name: "released frees listing", stage: domain.StageReleased, wantStatus: domain.ListingAvailable},
		{name: "abandoned frees listing", stage: domain.StageAbandoned, wantStatus: domain.ListingAvailable},
		{name: "audits leaves listing untouched", stage: domain.StageAudits, noSync: true},
		{name: "financing leaves listing untouched", stage: domain.StageFinancing, noSync: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			eng, ms, _ := newTestEngine(t)

			deal := &domain.Deal{
				ID: "d1", ListingID: "l1", BuyerID: "b1",
				Status: domain.StageNegotiation, Reserved: true,
			}

			ms.EXPECT().GetDeal(mock.Anything, "d1").Return(deal, nil).Once()
			ms.EXPECT().
				UpdateDealTimer(mock.Anything, "d1", tt.stage, testNow, mock.Anything, mock.Anything).
				Return(nil).Once()
			if !tt.noSync {
				ms.EXPECT().
					SetListingStatus(mock.Anything, "l1", tt.wantStatus).
					Return(nil).Once()
			}

			_, err := eng.ChangeStage(context.Background(), "d1", tt.stage)
			require.NoError(t, err)
		})
	}
}

func TestEngine_ChangeStage_UnknownStage(t *testing.T) {
	t.Parallel()

	eng, _, _ := newTestEngine(t)

	_, err := eng.ChangeStage(context.Background(), "d1", domain.Stage("bogus"))
	require.Error(t, err)

	var unknownErr *ErrUnknownStage
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, domain.Stage("bogus"), unknownErr.Stage)
}

func TestEngine_ChangeStage_StoreErrors(t *testing.T) {
	t.Parallel()

	t.Run("get deal fails", func(t *testing.T) {
		t.Parallel()

		eng, ms, _ := newTestEngine(t)
		ms.EXPECT().GetDeal(mock.Anything, "missing").Return(nil, errors.New("not found")).Once()

		_, err := eng.ChangeStage(context.Background(), "missing", domain.StageToContact)
		require.Error(t, err)
	})

	t.Run("update fails", func(t *testing.T) {
		t.Parallel()

		eng, ms, _ := newTestEngine(t)
		deal := &domain.Deal{ID: "d1", ListingID: "l1", Status: domain.StageFavorited}

		ms.EXPECT().GetDeal(mock.Anything, "d1").Return(deal, nil).Once()
		ms.EXPECT().
			UpdateDealTimer(mock.Anything, "d1", domain.StageToContact, testNow, mock.Anything, true).
			Return(errors.New("db down")).Once()

		_, err := eng.ChangeStage(context.Background(), "d1", domain.StageToContact)
		require.Error(t, err)
	})
}

func TestEngine_CreateDeal(t *testing.T) {
	t.Parallel()

	eng, ms, _ := newTestEngine(t)

	wantUntil := testNow.AddDate(0, 0, 7)

	ms.EXPECT().
		CreateDeal(mock.Anything, mock.Anything).
		Run(func(_ context.Context, d *domain.Deal) {
			d.ID = "d-new"
		}).
		Return(nil).Once()
	ms.EXPECT().
		SetListingStatus(mock.Anything, "l1", domain.ListingReserved).
		Return(nil).Once()

	got, err := eng.CreateDeal(context.Background(), "l1", "b1", domain.StageToContact)
	require.NoError(t, err)
	assert.Equal(t, "d-new", got.ID)
	assert.Equal(t, domain.StageToContact, got.Status)
	require.NotNil(t, got.ReservedUntil)
	assert.True(t, got.ReservedUntil.Equal(wantUntil))
}

func TestEngine_CreateDeal_Favorited(t *testing.T) {
	t.Parallel()

	eng, ms, _ := newTestEngine(t)

	// Favorited arms no timer and does not touch the listing.
	ms.EXPECT().
		CreateDeal(mock.Anything, mock.Anything).
		Return(nil).Once()

	got, err := eng.CreateDeal(context.Background(), "l1", "b1", domain.StageFavorited)
	require.NoError(t, err)
	assert.Nil(t, got.ReservedUntil)
	assert.False(t, got.Reserved)
}

func TestEngine_TimerStatus(t *testing.T) {
	t.Parallel()

	eng, ms, _ := newTestEngine(t)

	entered := testNow.AddDate(0, 0, -10)
	until := entered.AddDate(0, 0, 20)
	deal := &domain.Deal{
		ID: "d1", ListingID: "l1", BuyerID: "b1",
		Status:         domain.StageNegotiation,
		StageEnteredAt: entered,
		ReservedUntil:  &until,
		Reserved:       true,
	}

	ms.EXPECT().GetDeal(mock.Anything, "d1").Return(deal, nil).Once()

	ts, err := eng.TimerStatus(context.Background(), "d1")
	require.NoError(t, err)
	assert.Equal(t, domain.StageNegotiation, ts.Stage)
	assert.False(t, ts.Expired)
	assert.False(t, ts.RunningLow)
	require.NotNil(t, ts.DaysRemaining)
	assert.Equal(t, 10, *ts.DaysRemaining)
	require.NotNil(t, ts.ProgressPercent)
	assert.Equal(t, 50, *ts.ProgressPercent)
}

func TestEngine_TimerStatus_Untimed(t *testing.T) {
	t.Parallel()

	eng, ms, _ := newTestEngine(t)

	deal := &domain.Deal{
		ID: "d1", ListingID: "l1", BuyerID: "b1",
		Status:         domain.StageLOI,
		StageEnteredAt: testNow.AddDate(0, 0, -3),
		Reserved:       true,
	}

	ms.EXPECT().GetDeal(mock.Anything, "d1").Return(deal, nil).Once()

	ts, err := eng.TimerStatus(context.Background(), "d1")
	require.NoError(t, err)
	assert.True(t, ts.Reserved)
	assert.Nil(t, ts.ReservedUntil)
	assert.Nil(t, ts.DaysRemaining)
	assert.Nil(t, ts.ProgressPercent)
	assert.False(t, ts.Expired)
}
