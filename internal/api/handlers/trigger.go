package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// ExpirySweeper defines the interface for triggering an expiry sweep.
type ExpirySweeper interface {
	RunExpirySweep(ctx context.Context) (int, error)
}

// MatchRefresher defines the interface for triggering a match refresh.
type MatchRefresher interface {
	RunMatchRefresh(ctx context.Context) (int, error)
}

// SweepHandler handles manual expiry sweep requests.
type SweepHandler struct {
	sweeper ExpirySweeper
}

// NewSweepHandler creates a new SweepHandler.
func NewSweepHandler(s ExpirySweeper) *SweepHandler {
	return &SweepHandler{sweeper: s}
}

// SweepOutput is the response body for the expiry sweep endpoint.
type SweepOutput struct {
	Body struct {
		Status   string `json:"status"   example:"sweep completed" doc:"Sweep status"`
		Released int    `json:"released" example:"3"               doc:"Deals released"`
	}
}

// Sweep releases every deal whose reservation deadline has passed.
func (h *SweepHandler) Sweep(ctx context.Context, _ *struct{}) (*SweepOutput, error) {
	released, err := h.sweeper.RunExpirySweep(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("expiry sweep failed: " + err.Error())
	}

	resp := &SweepOutput{}
	resp.Body.Status = "sweep completed"
	resp.Body.Released = released
	return resp, nil
}

// RefreshHandler handles manual match refresh requests.
type RefreshHandler struct {
	refresher MatchRefresher
}

// NewRefreshHandler creates a new RefreshHandler.
func NewRefreshHandler(r MatchRefresher) *RefreshHandler {
	return &RefreshHandler{refresher: r}
}

// RefreshOutput is the response body for the match refresh endpoint.
type RefreshOutput struct {
	Body struct {
		Status   string `json:"status"   example:"refresh completed" doc:"Refresh status"`
		Recorded int    `json:"recorded" example:"5"                 doc:"Alerts recorded"`
	}
}

// Refresh recomputes matches for every buyer and delivers pending alerts.
func (h *RefreshHandler) Refresh(ctx context.Context, _ *struct{}) (*RefreshOutput, error) {
	recorded, err := h.refresher.RunMatchRefresh(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("match refresh failed: " + err.Error())
	}

	resp := &RefreshOutput{}
	resp.Body.Status = "refresh completed"
	resp.Body.Recorded = recorded
	return resp, nil
}

// RegisterTriggerRoutes registers trigger endpoints with the Huma API.
func RegisterTriggerRoutes(api huma.API, sweepH *SweepHandler, refreshH *RefreshHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "trigger-sweep",
		Method:      http.MethodPost,
		Path:        "/api/v1/sweep",
		Summary:     "Trigger an expiry sweep",
		Description: "Releases every deal whose reservation deadline has passed and " +
			"returns the listings to the marketplace.",
		Tags:   []string{"pipeline"},
		Errors: []int{http.StatusInternalServerError},
	}, sweepH.Sweep)

	huma.Register(api, huma.Operation{
		OperationID: "trigger-match-refresh",
		Method:      http.MethodPost,
		Path:        "/api/v1/matches/refresh",
		Summary:     "Trigger a match refresh",
		Description: "Recomputes matches for every buyer with stated criteria and delivers pending alerts.",
		Tags:        []string{"matching"},
		Errors:      []int{http.StatusInternalServerError},
	}, refreshH.Refresh)
}
