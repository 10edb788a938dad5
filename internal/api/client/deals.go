package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	domain "github.com/mpoirier/dealflow/pkg/types"
)

// DealsResponse wraps a paginated deals response.
type DealsResponse struct {
	Deals  []domain.Deal `json:"deals"`
	Total  int           `json:"total"`
	Limit  int           `json:"limit"`
	Offset int           `json:"offset"`
}

// ListDealsParams defines query parameters for deal queries.
type ListDealsParams struct {
	Stage        string
	BuyerID      string
	ListingID    string
	ReservedOnly bool
	Limit        int
	Offset       int
	OrderBy      string
}

// TimerStatus describes a deal's reservation countdown as reported by the API.
type TimerStatus struct {
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

// ListDeals returns deals matching the given parameters.
func (c *Client) ListDeals(ctx context.Context, params *ListDealsParams) (*DealsResponse, error) {
	q := url.Values{}
	if params.Stage != "" {
		q.Set("status", params.Stage)
	}
	if params.BuyerID != "" {
		q.Set("buyer_id", params.BuyerID)
	}
	if params.ListingID != "" {
		q.Set("listing_id", params.ListingID)
	}
	if params.ReservedOnly {
		q.Set("reserved_only", "true")
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

	path := "/api/v1/deals"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var resp DealsResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetDeal returns a single deal by ID.
func (c *Client) GetDeal(ctx context.Context, id string) (*domain.Deal, error) {
	var d domain.Deal
	if err := c.get(ctx, "/api/v1/deals/"+id, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// CreateDeal opens a deal between a buyer and a listing.
func (c *Client) CreateDeal(
	ctx context.Context,
	listingID, buyerID string,
	stage domain.Stage,
) (*domain.Deal, error) {
	body := map[string]any{
		"listing_id": listingID,
		"buyer_id":   buyerID,
	}
	if stage != "" {
		body["stage"] = string(stage)
	}

	var created domain.Deal
	if err := c.post(ctx, "/api/v1/deals", body, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// ChangeStage moves a deal to a new pipeline stage.
func (c *Client) ChangeStage(
	ctx context.Context,
	dealID string,
	stage domain.Stage,
) (*domain.Deal, error) {
	body := map[string]string{"stage": string(stage)}

	var updated domain.Deal
	if err := c.post(ctx, fmt.Sprintf("/api/v1/deals/%s/stage", dealID), body, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// GetTimerStatus returns the reservation countdown for a deal.
func (c *Client) GetTimerStatus(ctx context.Context, dealID string) (*TimerStatus, error) {
	var ts TimerStatus
	if err := c.get(ctx, fmt.Sprintf("/api/v1/deals/%s/timer", dealID), &ts); err != nil {
		return nil, err
	}
	return &ts, nil
}
