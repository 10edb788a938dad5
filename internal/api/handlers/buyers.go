package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/mpoirier/dealflow/internal/store"
	domain "github.com/mpoirier/dealflow/pkg/types"
)

// BuyersHandler handles buyer search profile endpoints.
type BuyersHandler struct {
	store store.Store
}

// NewBuyersHandler creates a new BuyersHandler.
func NewBuyersHandler(s store.Store) *BuyersHandler {
	return &BuyersHandler{store: s}
}

// --- Input/Output types ---

// ListBuyerProfilesOutput is the response for listing buyer profiles.
type ListBuyerProfilesOutput struct {
	Body []domain.BuyerProfile
}

// GetBuyerProfileInput is the input for getting a buyer's profile.
type GetBuyerProfileInput struct {
	BuyerID string `path:"buyer_id" doc:"Buyer ID"`
}

// GetBuyerProfileOutput is the response for getting a buyer's profile.
type GetBuyerProfileOutput struct {
	Body domain.BuyerProfile
}

// PutBuyerProfileInput is the request for replacing a buyer's search profile.
type PutBuyerProfileInput struct {
	BuyerID string `path:"buyer_id" doc:"Buyer ID"`
	Body    struct {
		TargetSectors       []string `json:"target_sectors,omitempty"       doc:"Acceptable industry sectors"`
		TargetLocations     []string `json:"target_locations,omitempty"     doc:"Acceptable department codes"`
		TargetRevenueMin    *float64 `json:"target_revenue_min,omitempty"   doc:"Minimum annual revenue in EUR"`
		TargetRevenueMax    *float64 `json:"target_revenue_max,omitempty"   doc:"Maximum annual revenue in EUR"`
		TargetEmployeesMin  *int     `json:"target_employees_min,omitempty" doc:"Minimum employee headcount"`
		TargetEmployeesMax  *int     `json:"target_employees_max,omitempty" doc:"Maximum employee headcount"`
		TargetTransferTypes []string `json:"target_transfer_types,omitempty" doc:"Acceptable transfer types"`
		TargetCustomerTypes []string `json:"target_customer_types,omitempty" doc:"Acceptable customer base types"`
	}
}

// PutBuyerProfileOutput is the response for replacing a buyer's profile.
type PutBuyerProfileOutput struct {
	Body domain.BuyerProfile
}

// --- Handlers ---

// ListBuyerProfiles returns every stored buyer search profile.
func (h *BuyersHandler) ListBuyerProfiles(
	ctx context.Context,
	_ *struct{},
) (*ListBuyerProfilesOutput, error) {
	profiles, err := h.store.ListBuyerProfiles(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing buyer profiles: " + err.Error())
	}

	if profiles == nil {
		profiles = []domain.BuyerProfile{}
	}

	return &ListBuyerProfilesOutput{Body: profiles}, nil
}

// GetBuyerProfile returns one buyer's search profile.
func (h *BuyersHandler) GetBuyerProfile(
	ctx context.Context,
	input *GetBuyerProfileInput,
) (*GetBuyerProfileOutput, error) {
	p, err := h.store.GetBuyerProfile(ctx, input.BuyerID)
	if err != nil {
		return nil, huma.Error404NotFound("buyer profile not found")
	}

	return &GetBuyerProfileOutput{Body: *p}, nil
}

// PutBuyerProfile creates or replaces a buyer's search profile. The profile
// is replaced wholesale: criteria absent from the request are cleared.
func (h *BuyersHandler) PutBuyerProfile(
	ctx context.Context,
	input *PutBuyerProfileInput,
) (*PutBuyerProfileOutput, error) {
	p := domain.BuyerProfile{
		BuyerID:             input.BuyerID,
		TargetSectors:       input.Body.TargetSectors,
		TargetLocations:     input.Body.TargetLocations,
		TargetRevenueMin:    input.Body.TargetRevenueMin,
		TargetRevenueMax:    input.Body.TargetRevenueMax,
		TargetEmployeesMin:  input.Body.TargetEmployeesMin,
		TargetEmployeesMax:  input.Body.TargetEmployeesMax,
		TargetTransferTypes: input.Body.TargetTransferTypes,
		TargetCustomerTypes: input.Body.TargetCustomerTypes,
	}

	if err := h.store.UpsertBuyerProfile(ctx, &p); err != nil {
		return nil, huma.Error500InternalServerError("upserting buyer profile: " + err.Error())
	}

	return &PutBuyerProfileOutput{Body: p}, nil
}

// RegisterBuyerRoutes registers buyer profile endpoints with the Huma API.
func RegisterBuyerRoutes(api huma.API, h *BuyersHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-buyer-profiles",
		Method:      http.MethodGet,
		Path:        "/api/v1/buyers",
		Summary:     "List buyer profiles",
		Description: "Returns every stored buyer search profile.",
		Tags:        []string{"buyers"},
	}, h.ListBuyerProfiles)

	huma.Register(api, huma.Operation{
		OperationID: "get-buyer-profile",
		Method:      http.MethodGet,
		Path:        "/api/v1/buyers/{buyer_id}/profile",
		Summary:     "Get a buyer's search profile",
		Description: "Returns one buyer's acquisition search criteria.",
		Tags:        []string{"buyers"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetBuyerProfile)

	huma.Register(api, huma.Operation{
		OperationID: "put-buyer-profile",
		Method:      http.MethodPut,
		Path:        "/api/v1/buyers/{buyer_id}/profile",
		Summary:     "Create or replace a buyer's search profile",
		Description: "Replaces the buyer's search criteria wholesale.",
		Tags:        []string{"buyers"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.PutBuyerProfile)
}
