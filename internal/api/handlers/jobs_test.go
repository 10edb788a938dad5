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

func testJobRun(name, status string) domain.JobRun {
	started := time.Date(2026, 8, 1, 6, 0, 0, 0, time.UTC)
	completed := started.Add(3 * time.Second)
	rows := 4
	return domain.JobRun{
		ID:           "run-" + name,
		JobName:      name,
		StartedAt:    started,
		CompletedAt:  &completed,
		Status:       status,
		RowsAffected: &rows,
	}
}

func TestJobsHandler_ListJobs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
		wantBody   string
	}{
		{
			name: "returns latest runs",
			setupMock: func(ms *storeMocks.MockStore) {
				ms.EXPECT().ListLatestJobRuns(mock.Anything).Return([]domain.JobRun{
					testJobRun("expiry_sweep", "succeeded"),
					testJobRun("match_refresh", "succeeded"),
				}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `"job_name":"expiry_sweep"`,
		},
		{
			name: "no runs returns empty array",
			setupMock: func(ms *storeMocks.MockStore) {
				ms.EXPECT().ListLatestJobRuns(mock.Anything).Return(nil, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `[]`,
		},
		{
			name: "store error",
			setupMock: func(ms *storeMocks.MockStore) {
				ms.EXPECT().
					ListLatestJobRuns(mock.Anything).
					Return(nil, errors.New("db connection lost"))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   "listing jobs failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			tt.setupMock(ms)

			_, api := humatest.New(t)
			handlers.RegisterJobRoutes(api, handlers.NewJobsHandler(ms))

			resp := api.Get("/api/v1/jobs")
			require.Equal(t, tt.wantStatus, resp.Code)
			assert.Contains(t, resp.Body.String(), tt.wantBody)
		})
	}
}

func TestJobsHandler_GetJobHistory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		path       string
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
		wantBody   string
	}{
		{
			name: "returns run history",
			path: "/api/v1/jobs/expiry_sweep",
			setupMock: func(ms *storeMocks.MockStore) {
				failed := testJobRun("expiry_sweep", "failed")
				failed.ErrorText = "db connection lost"
				ms.EXPECT().
					ListJobRuns(mock.Anything, "expiry_sweep", 20).
					Return([]domain.JobRun{
						testJobRun("expiry_sweep", "succeeded"),
						failed,
					}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"failed"`,
		},
		{
			name: "unknown job returns empty array",
			path: "/api/v1/jobs/unknown_job",
			setupMock: func(ms *storeMocks.MockStore) {
				ms.EXPECT().
					ListJobRuns(mock.Anything, "unknown_job", 20).
					Return(nil, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `[]`,
		},
		{
			name: "store error",
			path: "/api/v1/jobs/expiry_sweep",
			setupMock: func(ms *storeMocks.MockStore) {
				ms.EXPECT().
					ListJobRuns(mock.Anything, "expiry_sweep", 20).
					Return(nil, errors.New("db connection lost"))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   "fetching job history failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			tt.setupMock(ms)

			_, api := humatest.New(t)
			handlers.RegisterJobRoutes(api, handlers.NewJobsHandler(ms))

			resp := api.Get(tt.path)
			require.Equal(t, tt.wantStatus, resp.Code)
			assert.Contains(t, resp.Body.String(), tt.wantBody)
		})
	}
}
