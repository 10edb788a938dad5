package handlers_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mpoirier/dealflow/internal/api/handlers"
	storeMocks "github.com/mpoirier/dealflow/internal/store/mocks"
	domain "github.com/mpoirier/dealflow/pkg/types"
)

func TestAlertsHandler_ListPendingAlerts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
		wantBody   string
	}{
		{
			name: "returns pending alerts",
			setupMock: func(ms *storeMocks.MockStore) {
				ms.EXPECT().ListPendingMatchAlerts(mock.Anything).Return([]domain.MatchAlert{
					{
						ID:        "a1",
						BuyerID:   "b1",
						ListingID: "l1",
						Score:     85,
						CreatedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
					},
				}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `"score":85`,
		},
		{
			name: "empty queue returns empty array",
			setupMock: func(ms *storeMocks.MockStore) {
				ms.EXPECT().ListPendingMatchAlerts(mock.Anything).Return(nil, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `[]`,
		},
		{
			name: "store error",
			setupMock: func(ms *storeMocks.MockStore) {
				ms.EXPECT().
					ListPendingMatchAlerts(mock.Anything).
					Return(nil, errors.New("db connection lost"))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   "listing pending alerts",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			tt.setupMock(ms)

			_, api := humatest.New(t)
			handlers.RegisterAlertRoutes(api, handlers.NewAlertsHandler(ms))

			resp := api.Get("/api/v1/alerts/pending")
			require.Equal(t, tt.wantStatus, resp.Code)
			assert.Contains(t, resp.Body.String(), tt.wantBody)
		})
	}
}
