package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	domain "github.com/mpoirier/dealflow/pkg/types"
)

// profileRequest contains only the fields the API accepts for a profile replace.
type profileRequest struct {
	TargetSectors       []string `json:"target_sectors,omitempty"`
	TargetLocations     []string `json:"target_locations,omitempty"`
	TargetRevenueMin    *float64 `json:"target_revenue_min,omitempty"`
	TargetRevenueMax    *float64 `json:"target_revenue_max,omitempty"`
	TargetEmployeesMin  *int     `json:"target_employees_min,omitempty"`
	TargetEmployeesMax  *int     `json:"target_employees_max,omitempty"`
	TargetTransferTypes []string `json:"target_transfer_types,omitempty"`
	TargetCustomerTypes []string `json:"target_customer_types,omitempty"`
}

// MatchesResponse wraps a buyer's match query response.
type MatchesResponse struct {
	BuyerID string         `json:"buyer_id"`
	Matches []domain.Match `json:"matches"`
}

// ListBuyerProfiles returns all buyer search profiles.
func (c *Client) ListBuyerProfiles(ctx context.Context) ([]domain.BuyerProfile, error) {
	var profiles []domain.BuyerProfile
	if err := c.get(ctx, "/api/v1/buyers", &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

// GetBuyerProfile returns a single buyer's search profile.
func (c *Client) GetBuyerProfile(ctx context.Context, buyerID string) (*domain.BuyerProfile, error) {
	var p domain.BuyerProfile
	if err := c.get(ctx, fmt.Sprintf("/api/v1/buyers/%s/profile", buyerID), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// PutBuyerProfile replaces a buyer's search profile wholesale.
func (c *Client) PutBuyerProfile(
	ctx context.Context,
	p *domain.BuyerProfile,
) (*domain.BuyerProfile, error) {
	req := profileRequest{
		TargetSectors:       p.TargetSectors,
		TargetLocations:     p.TargetLocations,
		TargetRevenueMin:    p.TargetRevenueMin,
		TargetRevenueMax:    p.TargetRevenueMax,
		TargetEmployeesMin:  p.TargetEmployeesMin,
		TargetEmployeesMax:  p.TargetEmployeesMax,
		TargetTransferTypes: p.TargetTransferTypes,
		TargetCustomerTypes: p.TargetCustomerTypes,
	}

	var saved domain.BuyerProfile
	if err := c.put(ctx, fmt.Sprintf("/api/v1/buyers/%s/profile", p.BuyerID), req, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

// GetMatches returns the scored candidate listings for a buyer, best first.
func (c *Client) GetMatches(ctx context.Context, buyerID string, limit int) (*MatchesResponse, error) {
	path := fmt.Sprintf("/api/v1/buyers/%s/matches", buyerID)
	if limit > 0 {
		q := url.Values{}
		q.Set("limit", strconv.Itoa(limit))
		path += "?" + q.Encode()
	}

	var resp MatchesResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
