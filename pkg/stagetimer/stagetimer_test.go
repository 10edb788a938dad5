package stagetimer_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpoirier/dealflow/pkg/stagetimer"
	domain "github.com/mpoirier/dealflow/pkg/types"
)

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func testDeal(status domain.Stage) domain.Deal {
	return domain.Deal{
		ID:        "deal-1",
		ListingID: "listing-1",
		BuyerID:   "buyer-1",
		Status:    status,
	}
}

func TestStageDays(t *testing.T) {
	t.Parallel()

	timers := stagetimer.DefaultTimers()

	tests := []struct {
		stage    domain.Stage
		wantDays int
		wantOK   bool
	}{
		{domain.StageToContact, 7, true},
		{domain.StageInfoExchange, 33, true},
		{domain.StageAnalysis, 33, true},
		{domain.StageProjectAlignment, 33, true},
		{domain.StageNegotiation, 20, true},
		{domain.StageFavorited, 0, false},
		{domain.StageLOI, 0, false},
		{domain.StageAudits, 0, false},
		{domain.StageFinancing, 0, false},
		{domain.StageDealSigned, 0, false},
		{domain.StageReleased, 0, false},
		{domain.StageAbandoned, 0, false},
		{domain.Stage("bogus"), 0, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.stage), func(t *testing.T) {
			t.Parallel()

			days, ok := stagetimer.StageDays(tt.stage, timers)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantDays, days)
		})
	}
}

func TestApply_IndependentTimerStages(t *testing.T) {
	t.Parallel()

	timers := stagetimer.DefaultTimers()

	tests := []struct {
		stage    domain.Stage
		wantDays int
	}{
		{domain.StageToContact, 7},
		{domain.StageNegotiation, 20},
	}

	for _, tt := range tests {
		t.Run(string(tt.stage), func(t *testing.T) {
			t.Parallel()

			got := stagetimer.Apply(testDeal(domain.StageFavorited), tt.stage, testNow, timers)

			assert.Equal(t, tt.stage, got.Status)
			assert.Equal(t, testNow, got.StageEnteredAt)
			require.NotNil(t, got.ReservedUntil)
			assert.Equal(t, testNow.AddDate(0, 0, tt.wantDays), *got.ReservedUntil)
			assert.True(t, got.Reserved)
		})
	}
}

func TestApply_SharedTimerStagesResetOnEveryChange(t *testing.T) {
	t.Parallel()

	timers := stagetimer.DefaultTimers()

	// Enter the shared group.
	d := stagetimer.Apply(testDeal(domain.StageToContact), domain.StageInfoExchange, testNow, timers)
	require.NotNil(t, d.ReservedUntil)
	assert.Equal(t, testNow.AddDate(0, 0, 33), *d.ReservedUntil)
	assert.True(t, d.Reserved)

	// Advancing within the group resets the clock and re-extends the
	// deadline from the transition time.
	later := testNow.AddDate(0, 0, 10)
	d = stagetimer.Apply(d, domain.StageAnalysis, later, timers)
	assert.Equal(t, later, d.StageEnteredAt)
	require.NotNil(t, d.ReservedUntil)
	assert.Equal(t, later.AddDate(0, 0, 33), *d.ReservedUntil)

	evenLater := later.AddDate(0, 0, 5)
	d = stagetimer.Apply(d, domain.StageProjectAlignment, evenLater, timers)
	assert.Equal(t, evenLater, d.StageEnteredAt)
	require.NotNil(t, d.ReservedUntil)
	assert.Equal(t, evenLater.AddDate(0, 0, 33), *d.ReservedUntil)
}

func TestApply_UntimedStages(t *testing.T) {
	t.Parallel()

	timers := stagetimer.DefaultTimers()

	tests := []struct {
		stage        domain.Stage
		wantReserved bool
	}{
		{domain.StageLOI, true},
		{domain.StageAudits, false},
		{domain.StageFinancing, false},
		{domain.StageDealSigned, false},
		{domain.StageFavorited, false},
		{domain.StageReleased, false},
		{domain.StageAbandoned, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.stage), func(t *testing.T) {
			t.Parallel()

			d := testDeal(domain.StageNegotiation)
			until := testNow.AddDate(0, 0, 20)
			d.ReservedUntil = &until
			d.Reserved = true

			got := stagetimer.Apply(d, tt.stage, testNow, timers)

			assert.Equal(t, tt.stage, got.Status)
			assert.Equal(t, testNow, got.StageEnteredAt)
			assert.Nil(t, got.ReservedUntil)
			assert.Equal(t, tt.wantReserved, got.Reserved)
		})
	}
}

func TestApply_SameStageIsNoOp(t *testing.T) {
	t.Parallel()

	d := testDeal(domain.StageNegotiation)
	d.StageEnteredAt = testNow.AddDate(0, 0, -5)
	until := testNow.AddDate(0, 0, 15)
	d.ReservedUntil = &until
	d.Reserved = true

	got := stagetimer.Apply(d, domain.StageNegotiation, testNow, stagetimer.DefaultTimers())

	assert.Equal(t, d, got, "re-entering the current stage must not reset the clock")
	require.NotNil(t, got.ReservedUntil)
	assert.Equal(t, until, *got.ReservedUntil)
}

func TestApply_UnknownStageTreatedAsUntimed(t *testing.T) {
	t.Parallel()

	got := stagetimer.Apply(testDeal(domain.StageToContact), domain.Stage("mystery"), testNow, stagetimer.DefaultTimers())

	assert.Nil(t, got.ReservedUntil)
	assert.False(t, got.Reserved)
}

func TestApply_CustomTimers(t *testing.T) {
	t.Parallel()

	timers := stagetimer.Timers{ToContactDays: 3, InfoAnalysisDays: 10, NegotiationDays: 5}

	got := stagetimer.Apply(testDeal(domain.StageFavorited), domain.StageToContact, testNow, timers)
	require.NotNil(t, got.ReservedUntil)
	assert.Equal(t, testNow.AddDate(0, 0, 3), *got.ReservedUntil)
}

func TestIsExpired(t *testing.T) {
	t.Parallel()

	d := testDeal(domain.StageToContact)
	until := testNow.AddDate(0, 0, 7)
	d.ReservedUntil = &until

	assert.False(t, stagetimer.IsExpired(&d, testNow))
	assert.False(t, stagetimer.IsExpired(&d, until), "deadline instant itself is not expired")
	assert.True(t, stagetimer.IsExpired(&d, until.Add(time.Second)))

	noDeadline := testDeal(domain.StageLOI)
	assert.False(t, stagetimer.IsExpired(&noDeadline, testNow))
}

func TestDaysRemaining(t *testing.T) {
	t.Parallel()

	d := testDeal(domain.StageToContact)
	until := testNow.AddDate(0, 0, 7)
	d.ReservedUntil = &until

	days, ok := stagetimer.DaysRemaining(&d, testNow)
	require.True(t, ok)
	assert.Equal(t, 7, days)

	// Partial days round up.
	days, ok = stagetimer.DaysRemaining(&d, testNow.Add(12*time.Hour))
	require.True(t, ok)
	assert.Equal(t, 7, days)

	// Past the deadline the count goes negative.
	days, ok = stagetimer.DaysRemaining(&d, until.AddDate(0, 0, 3))
	require.True(t, ok)
	assert.Equal(t, -3, days)

	noDeadline := testDeal(domain.StageAudits)
	_, ok = stagetimer.DaysRemaining(&noDeadline, testNow)
	assert.False(t, ok)
}

func TestProgressPercent(t *testing.T) {
	t.Parallel()

	d := testDeal(domain.StageNegotiation)
	d.StageEnteredAt = testNow
	until := testNow.AddDate(0, 0, 20)
	d.ReservedUntil = &until

	tests := []struct {
		name string
		now  time.Time
		want int
	}{
		{"at entry", testNow, 0},
		{"halfway", testNow.AddDate(0, 0, 10), 50},
		{"at deadline", until, 100},
		{"past deadline clamps to 100", until.AddDate(0, 0, 5), 100},
		{"before entry goes negative", testNow.AddDate(0, 0, -2), -10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			pct, ok := stagetimer.ProgressPercent(&d, tt.now)
			require.True(t, ok)
			assert.Equal(t, tt.want, pct)
		})
	}
}

func TestProgressPercent_MissingTimestamps(t *testing.T) {
	t.Parallel()

	noDeadline := testDeal(domain.StageLOI)
	noDeadline.StageEnteredAt = testNow
	_, ok := stagetimer.ProgressPercent(&noDeadline, testNow)
	assert.False(t, ok)

	noEntry := testDeal(domain.StageToContact)
	until := testNow.AddDate(0, 0, 7)
	noEntry.ReservedUntil = &until
	_, ok = stagetimer.ProgressPercent(&noEntry, testNow)
	assert.False(t, ok)
}

func TestIsRunningLow(t *testing.T) {
	t.Parallel()

	d := testDeal(domain.StageToContact)
	d.StageEnteredAt = testNow
	until := testNow.AddDate(0, 0, 10)
	d.ReservedUntil = &until

	assert.False(t, stagetimer.IsRunningLow(&d, testNow.AddDate(0, 0, 7)))
	assert.True(t, stagetimer.IsRunningLow(&d, testNow.AddDate(0, 0, 8)), "80% is running low")
	assert.True(t, stagetimer.IsRunningLow(&d, testNow.AddDate(0, 0, 30)))

	noDeadline := testDeal(domain.StageLOI)
	assert.False(t, stagetimer.IsRunningLow(&noDeadline, testNow))
}
