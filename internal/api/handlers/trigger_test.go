package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpoirier/dealflow/internal/api/handlers"
)

// mockSweeper implements handlers.ExpirySweeper for testing.
type mockSweeper struct {
	released int
	err      error
	called   bool
}

func (m *mockSweeper) RunExpirySweep(_ context.Context) (int, error) {
	m.called = true
	return m.released, m.err
}

// mockMatchRefresher implements handlers.MatchRefresher for testing.
type mockMatchRefresher struct {
	recorded int
	err      error
	called   bool
}

func (m *mockMatchRefresher) RunMatchRefresh(_ context.Context) (int, error) {
	m.called = true
	return m.recorded, m.err
}

func newTriggerAPI(t *testing.T, s *mockSweeper, r *mockMatchRefresher) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	handlers.RegisterTriggerRoutes(api, handlers.NewSweepHandler(s), handlers.NewRefreshHandler(r))
	return api
}

func TestSweepHandler_Success(t *testing.T) {
	t.Parallel()

	s := &mockSweeper{released: 3}
	api := newTriggerAPI(t, s, &mockMatchRefresher{})

	resp := api.Post("/api/v1/sweep")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.True(t, s.called)
	assert.Contains(t, resp.Body.String(), "sweep completed")
	assert.Contains(t, resp.Body.String(), `"released":3`)
}

func TestSweepHandler_Error(t *testing.T) {
	t.Parallel()

	s := &mockSweeper{err: errors.New("db connection lost")}
	api := newTriggerAPI(t, s, &mockMatchRefresher{})

	resp := api.Post("/api/v1/sweep")
	require.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Contains(t, resp.Body.String(), "expiry sweep failed")
}

func TestRefreshHandler_Success(t *testing.T) {
	t.Parallel()

	r := &mockMatchRefresher{recorded: 5}
	api := newTriggerAPI(t, &mockSweeper{}, r)

	resp := api.Post("/api/v1/matches/refresh")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.True(t, r.called)
	assert.Contains(t, resp.Body.String(), "refresh completed")
	assert.Contains(t, resp.Body.String(), `"recorded":5`)
}

func TestRefreshHandler_Error(t *testing.T) {
	t.Parallel()

	r := &mockMatchRefresher{err: errors.New("db connection lost")}
	api := newTriggerAPI(t, &mockSweeper{}, r)

	resp := api.Post("/api/v1/matches/refresh")
	require.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Contains(t, resp.Body.String(), "match refresh failed")
}
