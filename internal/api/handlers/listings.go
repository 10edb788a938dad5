package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/mpoirier/dealflow/internal/store"
	domain "github.com/mpoirier/dealflow/pkg/types"
)

// ListingsHandler handles marketplace listing endpoints.
type ListingsHandler struct {
	store store.Store
}

// NewListingsHandler creates a new ListingsHandler.
func NewListingsHandler(s store.Store) *ListingsHandler {
	return &ListingsHandler{store: s}
}

// --- Input/Output types ---

// ListListingsInput is the input for listing listings with optional filters.
type ListListingsInput struct {
	Sector     string `query:"sector"     doc:"Filter by industry sector"`
	Department string `query:"department" doc:"Filter by location department code"`
	Status     string `query:"status"     doc:"Filter by marketplace status"  enum:"available,reserved,sold,withdrawn,"`
	Limit      int    `query:"limit"      doc:"Number of results (default 50)" minimum:"1" maximum:"500"`
	Offset     int    `query:"offset"     doc:"Pagination offset"              minimum:"0"`
	OrderBy    string `query:"order_by"   doc:"Sort field"                     enum:"created_at,annual_revenue,employee_count,"`
}

// ListListingsOutput is the response for listing listings.
type ListListingsOutput struct {
	Body struct {
		Listings []domain.Listing `json:"listings"`
		Total    int              `json:"total"`
		Limit    int              `json:"limit"`
		Offset   int              `json:"offset"`
	}
}

// GetListingInput is the input for getting a single listing.
type GetListingInput struct {
	ID string `path:"id" doc:"Listing ID"`
}

// GetListingOutput is the response for getting a single listing.
type GetListingOutput struct {
	Body domain.Listing
}

// UpsertListingInput is the request body for creating or replacing a listing.
type UpsertListingInput struct {
	Body struct {
		ID                 string   `json:"id"                            doc:"Listing ID"               required:"true"`
		SellerID           string   `json:"seller_id"                     doc:"Seller ID"                required:"true"`
		Title              string   `json:"title"                         doc:"Listing title"            required:"true"`
		IndustrySector     string   `json:"industry_sector,omitempty"     doc:"Industry sector"`
		LocationDepartment string   `json:"location_department,omitempty" doc:"Department code"`
		AnnualRevenue      *float64 `json:"annual_revenue,omitempty"      doc:"Annual revenue in EUR"`
		EmployeeCount      *int     `json:"employee_count,omitempty"      doc:"Employee headcount"`
		TransferType       string   `json:"transfer_type,omitempty"       doc:"Type of business transfer"`
		CustomerType       string   `json:"customer_type,omitempty"       doc:"Customer base type"`
		AskingPrice        *float64 `json:"asking_price,omitempty"        doc:"Asking price in EUR"`
		Status             string   `json:"status,omitempty"              doc:"Marketplace status"       enum:"available,reserved,sold,withdrawn,"`
	}
}

// UpsertListingOutput is the response for creating or replacing a listing.
type UpsertListingOutput struct {
	Status int
	Body   domain.Listing
}

// --- Handlers ---

// ListListings returns listings with optional filters for sector, department,
// status, and pagination.
func (h *ListingsHandler) ListListings(
	ctx context.Context,
	input *ListListingsInput,
) (*ListListingsOutput, error) {
	q := &store.ListingQuery{
		Offset:  input.Offset,
		OrderBy: input.OrderBy,
	}

	if input.Sector != "" {
		q.Sector = &input.Sector
	}

	if input.Department != "" {
		q.Department = &input.Department
	}

	if input.Status != "" {
		q.Status = &input.Status
	}

	if input.Limit != 0 {
		q.Limit = input.Limit
	}

	listings, total, err := h.store.ListListings(ctx, q)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing query failed: " + err.Error())
	}

	if listings == nil {
		listings = []domain.Listing{}
	}

	resp := &ListListingsOutput{}
	resp.Body.Listings = listings
	resp.Body.Total = total
	resp.Body.Limit = q.Limit
	resp.Body.Offset = q.Offset

	return resp, nil
}

// GetListing returns a single listing by ID.
func (h *ListingsHandler) GetListing(
	ctx context.Context,
	input *GetListingInput,
) (*GetListingOutput, error) {
	listing, err := h.store.GetListing(ctx, input.ID)
	if err != nil {
		return nil, huma.Error404NotFound("listing not found")
	}

	return &GetListingOutput{Body: *listing}, nil
}

// UpsertListing creates a listing or replaces its attributes if it already
// exists. New listings default to the available status.
func (h *ListingsHandler) UpsertListing(
	ctx context.Context,
	input *UpsertListingInput,
) (*UpsertListingOutput, error) {
	status := domain.ListingStatus(input.Body.Status)
	if status == "" {
		status = domain.ListingAvailable
	}

	l := domain.Listing{
		ID:                 input.Body.ID,
		SellerID:           input.Body.SellerID,
		Title:              input.Body.Title,
		IndustrySector:     input.Body.IndustrySector,
		LocationDepartment: input.Body.LocationDepartment,
		AnnualRevenue:      input.Body.AnnualRevenue,
		EmployeeCount:      input.Body.EmployeeCount,
		TransferType:       input.Body.TransferType,
		CustomerType:       input.Body.CustomerType,
		AskingPrice:        input.Body.AskingPrice,
		Status:             status,
	}

	if err := h.store.UpsertListing(ctx, &l); err != nil {
		return nil, huma.Error500InternalServerError("upserting listing: " + err.Error())
	}

	return &UpsertListingOutput{Status: http.StatusCreated, Body: l}, nil
}

// RegisterListingRoutes registers listing endpoints with the Huma API.
func RegisterListingRoutes(api huma.API, h *ListingsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-listings",
		Method:      http.MethodGet,
		Path:        "/api/v1/listings",
		Summary:     "List listings",
		Description: "Returns listings with optional filters for sector, department, status, and pagination.",
		Tags:        []string{"listings"},
	}, h.ListListings)

	huma.Register(api, huma.Operation{
		OperationID: "get-listing",
		Method:      http.MethodGet,
		Path:        "/api/v1/listings/{id}",
		Summary:     "Get a listing by ID",
		Description: "Returns a single listing by its ID.",
		Tags:        []string{"listings"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetListing)

	huma.Register(api, huma.Operation{
		OperationID:   "upsert-listing",
		Method:        http.MethodPost,
		Path:          "/api/v1/listings",
		Summary:       "Create or replace a listing",
		Description:   "Creates a listing or replaces its attributes if the ID already exists.",
		Tags:          []string{"listings"},
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusInternalServerError},
	}, h.UpsertListing)
}
