package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/jackc/pgx/v5"

	"github.com/mpoirier/dealflow/internal/engine"
	"github.com/mpoirier/dealflow/internal/store"
	domain "github.com/mpoirier/dealflow/pkg/types"
)

// DealPipeline defines the engine operations the deals handler drives.
type DealPipeline interface {
	CreateDeal(ctx context.Context, listingID, buyerID string, stage domain.Stage) (*domain.Deal, error)
	ChangeStage(ctx context.Context, dealID string, newStage domain.Stage) (*domain.Deal, error)
	TimerStatus(ctx context.Context, dealID string) (*engine.TimerStatus, error)
}

// DealsHandler handles deal pipeline endpoints.
type DealsHandler struct {
	store    store.Store
	pipeline DealPipeline
}

// NewDealsHandler creates a new DealsHandler.
func NewDealsHandler(s store.Store, p DealPipeline) *DealsHandler {
	return &DealsHandler{store: s, pipeline: p}
}

// --- Input/Output types ---

// ListDealsInput is the input for listing deals with optional filters.
type ListDealsInput struct {
	Status       string `query:"status"        doc:"Filter by pipeline stage"              enum:"favorited,to_contact,info_exchange,analysis,project_alignment,negotiation,loi,audits,financing,deal_signed,released,abandoned,"`
	BuyerID      string `query:"buyer_id"      doc:"Filter by buyer"`
	ListingID    string `query:"listing_id"    doc:"Filter by listing"`
	ReservedOnly bool   `query:"reserved_only" doc:"Only deals holding a reservation"`
	Limit        int    `query:"limit"         doc:"Number of results (default 50)"        minimum:"1" maximum:"500"`
	Offset       int    `query:"offset"        doc:"Pagination offset"                     minimum:"0"`
	OrderBy      string `query:"order_by"      doc:"Sort field"                            enum:"created_at,stage_entered_at,reserved_until,"`
}

// ListDealsOutput is the response for listing deals.
type ListDealsOutput struct {
	Body struct {
		Deals  []domain.Deal `json:"deals"`
		Total  int           `json:"total"`
		Limit  int           `json:"limit"`
		Offset int           `json:"offset"`
	}
}

// GetDealInput is the input for getting a single deal.
type GetDealInput struct {
	ID string `path:"id" doc:"Deal UUID"`
}

// GetDealOutput is the response for getting a single deal.
type GetDealOutput struct {
	Body domain.Deal
}

// CreateDealInput is the request body for creating a deal.
type CreateDealInput struct {
	Body struct {
		ListingID string `json:"listing_id" doc:"Listing the buyer is pursuing"         required:"true"`
		BuyerID   string `json:"buyer_id"   doc:"Buyer opening the deal"                required:"true"`
		Stage     string `json:"stage,omitempty" doc:"Initial stage (defaults to favorited)" enum:"favorited,to_contact,info_exchange,analysis,project_alignment,negotiation,loi,audits,financing,deal_signed,released,abandoned,"`
	}
}

// CreateDealOutput is the response for creating a deal.
type CreateDealOutput struct {
	Status int
	Body   domain.Deal
}

// ChangeStageInput is the request for moving a deal to a new stage.
type ChangeStageInput struct {
	ID   string `path:"id" doc:"Deal UUID"`
	Body struct {
		Stage string `json:"stage" doc:"Target pipeline stage" required:"true" enum:"favorited,to_contact,info_exchange,analysis,project_alignment,negotiation,loi,audits,financing,deal_signed,released,abandoned"`
	}
}

// ChangeStageOutput is the response for a stage change.
type ChangeStageOutput struct {
	Body domain.Deal
}

// TimerStatusInput is the input for reading a deal's timer.
type TimerStatusInput struct {
	ID string `path:"id" doc:"Deal UUID"`
}

// TimerStatusBody is the timer snapshot returned by the timer endpoint.
type TimerStatusBody struct {
	DealID          string     `json:"deal_id"`
	Stage           string     `json:"stage"`
	Reserved        bool       `json:"reserved"`
	StageEnteredAt  time.Time  `json:"stage_entered_at"`
	ReservedUntil   *time.Time `json:"reserved_until,omitempty"`
	DaysRemaining   *int       `json:"days_remaining,omitempty"`
	ProgressPercent *int       `json:"progress_percent,omitempty"`
	Expired         bool       `json:"expired"`
	RunningLow      bool       `json:"running_low"`
}

// TimerStatusOutput is the response for the timer endpoint.
type TimerStatusOutput struct {
	Body TimerStatusBody
}

// --- Handlers ---

// ListDeals returns deals with optional filters for stage, buyer, listing,
// reservation state, and pagination.
func (h *DealsHandler) ListDeals(
	ctx context.Context,
	input *ListDealsInput,
) (*ListDealsOutput, error) {
	q := &store.DealQuery{
		ReservedOnly: input.ReservedOnly,
		Offset:       input.Offset,
		OrderBy:      input.OrderBy,
	}

	if input.Status != "" {
		q.Status = &input.Status
	}

	if input.BuyerID != "" {
		q.BuyerID = &input.BuyerID
	}

	if input.ListingID != "" {
		q.ListingID = &input.ListingID
	}

	if input.Limit != 0 {
		q.Limit = input.Limit
	}

	deals, total, err := h.store.ListDeals(ctx, q)
	if err != nil {
		return nil, huma.Error500InternalServerError("deal query failed: " + err.Error())
	}

	if deals == nil {
		deals = []domain.Deal{}
	}

	resp := &ListDealsOutput{}
	resp.Body.Deals = deals
	resp.Body.Total = total
	resp.Body.Limit = q.Limit
	resp.Body.Offset = q.Offset

	return resp, nil
}

// GetDeal returns a single deal by ID.
func (h *DealsHandler) GetDeal(
	ctx context.Context,
	input *GetDealInput,
) (*GetDealOutput, error) {
	d, err := h.store.GetDeal(ctx, input.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, huma.Error404NotFound("deal not found")
		}
		return nil, huma.Error500InternalServerError("fetching deal: " + err.Error())
	}

	return &GetDealOutput{Body: *d}, nil
}

// CreateDeal opens a deal for a buyer on a listing, arming the stage timer
// when the initial stage carries one.
func (h *DealsHandler) CreateDeal(
	ctx context.Context,
	input *CreateDealInput,
) (*CreateDealOutput, error) {
	stage := domain.Stage(input.Body.Stage)
	if stage == "" {
		stage = domain.StageFavorited
	}

	d, err := h.pipeline.CreateDeal(ctx, input.Body.ListingID, input.Body.BuyerID, stage)
	if err != nil {
		var unknownErr *engine.ErrUnknownStage
		if errors.As(err, &unknownErr) {
			return nil, huma.Error400BadRequest(unknownErr.Error())
		}
		return nil, huma.Error500InternalServerError("creating deal: " + err.Error())
	}

	return &CreateDealOutput{Status: http.StatusCreated, Body: *d}, nil
}

// ChangeStage moves a deal to a new pipeline stage.
func (h *DealsHandler) ChangeStage(
	ctx context.Context,
	input *ChangeStageInput,
) (*ChangeStageOutput, error) {
	d, err := h.pipeline.ChangeStage(ctx, input.ID, domain.Stage(input.Body.Stage))
	if err != nil {
		var unknownErr *engine.ErrUnknownStage
		switch {
		case errors.As(err, &unknownErr):
			return nil, huma.Error400BadRequest(unknownErr.Error())
		case errors.Is(err, pgx.ErrNoRows):
			return nil, huma.Error404NotFound("deal not found")
		default:
			return nil, huma.Error500InternalServerError("changing stage: " + err.Error())
		}
	}

	return &ChangeStageOutput{Body: *d}, nil
}

// TimerStatus returns the timer snapshot for a deal.
func (h *DealsHandler) TimerStatus(
	ctx context.Context,
	input *TimerStatusInput,
) (*TimerStatusOutput, error) {
	ts, err := h.pipeline.TimerStatus(ctx, input.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, huma.Error404NotFound("deal not found")
		}
		return nil, huma.Error500InternalServerError("fetching timer status: " + err.Error())
	}

	return &TimerStatusOutput{Body: TimerStatusBody{
		DealID:          ts.DealID,
		Stage:           string(ts.Stage),
		Reserved:        ts.Reserved,
		StageEnteredAt:  ts.StageEnteredAt,
		ReservedUntil:   ts.ReservedUntil,
		DaysRemaining:   ts.DaysRemaining,
		ProgressPercent: ts.ProgressPercent,
		Expired:         ts.Expired,
		RunningLow:      ts.RunningLow,
	}}, nil
}

// RegisterDealRoutes registers deal pipeline endpoints with the Huma API.
func RegisterDealRoutes(api huma.API, h *DealsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-deals",
		Method:      http.MethodGet,
		Path:        "/api/v1/deals",
		Summary:     "List deals",
		Description: "Returns deals with optional filters for stage, buyer, listing, and reservation state.",
		Tags:        []string{"deals"},
	}, h.ListDeals)

	huma.Register(api, huma.Operation{
		OperationID: "get-deal",
		Method:      http.MethodGet,
		Path:        "/api/v1/deals/{id}",
		Summary:     "Get a deal by ID",
		Description: "Returns a single deal by its UUID.",
		Tags:        []string{"deals"},
		Errors:      []int{http.StatusNotFound, http.StatusInternalServerError},
	}, h.GetDeal)

	huma.Register(api, huma.Operation{
		OperationID:   "create-deal",
		Method:        http.MethodPost,
		Path:          "/api/v1/deals",
		Summary:       "Create a deal",
		Description:   "Opens a deal for a buyer on a listing in the given initial stage.",
		Tags:          []string{"deals"},
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusBadRequest, http.StatusInternalServerError},
	}, h.CreateDeal)

	huma.Register(api, huma.Operation{
		OperationID: "change-deal-stage",
		Method:      http.MethodPost,
		Path:        "/api/v1/deals/{id}/stage",
		Summary:     "Change a deal's stage",
		Description: "Moves a deal to a new pipeline stage, recomputing its reservation timer.",
		Tags:        []string{"deals"},
		Errors:      []int{http.StatusBadRequest, http.StatusNotFound},
	}, h.ChangeStage)

	huma.Register(api, huma.Operation{
		OperationID: "get-deal-timer",
		Method:      http.MethodGet,
		Path:        "/api/v1/deals/{id}/timer",
		Summary:     "Get a deal's timer status",
		Description: "Returns the reservation timer snapshot for a deal: days remaining, progress, and expiry flags.",
		Tags:        []string{"deals"},
		Errors:      []int{http.StatusNotFound, http.StatusInternalServerError},
	}, h.TimerStatus)
}
