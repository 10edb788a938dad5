package client

import (
	"context"
	"net/url"
	"strconv"

	domain "github.com/mpoirier/dealflow/pkg/types"
)

// ListingsResponse wraps a paginated listings response.
type ListingsResponse struct {
	Listings []domain.Listing `json:"listings"`
	Total    int              `json:"total"`
	Limit    int              `json:"limit"`
	Offset   int              `json:"offset"`
}

// ListListingsParams defines query parameters for listing queries.
type ListListingsParams struct {
	Sector     string
	Department string
	Status     string
	Limit      int
	Offset     int
	OrderBy    string
}

// ListListings returns listings matching the given parameters.
func (c *Client) ListListings(
	ctx context.Context,
	params *ListListingsParams,
) (*ListingsResponse, error) {
	q := url.Values{}
	if params.Sector != "" {
		q.Set("sector", params.Sector)
	}
	if params.Department != "" {
		q.Set("department", params.Department)
	}
	if params.Status != "" {
		q.Set("status", params.Status)
	}
	if params.Limit > 0 {
		q.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Offset > 0 {
		q.Set("offset", strconv.Itoa(params.Offset))
	}
	if params.OrderBy != "" {
		q.Set("order_by", params.OrderBy)
	}

	path := "/api/v1/listings"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var resp ListingsResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetListing returns a single listing by ID.
func (c *Client) GetListing(ctx context.Context, id string) (*domain.Listing, error) {
	var l domain.Listing
	if err := c.get(ctx, "/api/v1/listings/"+id, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

// UpsertListing creates or replaces a listing.
func (c *Client) UpsertListing(ctx context.Context, l *domain.Listing) (*domain.Listing, error) {
	body := map[string]any{
		"id":        l.ID,
		"seller_id": l.SellerID,
		"title":     l.Title,
	}
	if l.IndustrySector != "" {
		body["industry_sector"] = l.IndustrySector
	}
	if l.LocationDepartment != "" {
		body["location_department"] = l.LocationDepartment
	}
	if l.AnnualRevenue != nil {
		body["annual_revenue"] = *l.AnnualRevenue
	}
	if l.EmployeeCount != nil {
		body["employee_count"] = *l.EmployeeCount
	}
	if l.TransferType != "" {
		body["transfer_type"] = l.TransferType
	}
	if l.CustomerType != "" {
		body["customer_type"] = l.CustomerType
	}
	if l.AskingPrice != nil {
		body["asking_price"] = *l.AskingPrice
	}
	if l.Status != "" {
		body["status"] = string(l.Status)
	}

	var saved domain.Listing
	if err := c.post(ctx, "/api/v1/listings", body, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}
