package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	domain "github.com/mpoirier/dealflow/pkg/types"
)

// Matcher computes on-demand matches for one buyer.
type Matcher interface {
	Matches(ctx context.Context, buyerID string, limit int) ([]domain.Match, error)
}

// MatchesHandler handles on-demand match queries.
type MatchesHandler struct {
	matcher Matcher
}

// NewMatchesHandler creates a new MatchesHandler.
func NewMatchesHandler(m Matcher) *MatchesHandler {
	return &MatchesHandler{matcher: m}
}

const defaultMatchesLimit = 20

// GetMatchesInput is the input for a buyer's match query.
type GetMatchesInput struct {
	BuyerID string `path:"buyer_id" doc:"Buyer ID"`
	Limit   int    `query:"limit"   doc:"Maximum matches returned (default 20)" minimum:"1" maximum:"100"`
}

// GetMatchesOutput is the response for a buyer's match query.
type GetMatchesOutput struct {
	Body struct {
		BuyerID string         `json:"buyer_id"`
		Matches []domain.Match `json:"matches"`
	}
}

// GetMatches scores every available candidate listing against the buyer's
// profile and returns those at or above the minimum match score, best first.
func (h *MatchesHandler) GetMatches(
	ctx context.Context,
	input *GetMatchesInput,
) (*GetMatchesOutput, error) {
	limit := input.Limit
	if limit == 0 {
		limit = defaultMatchesLimit
	}

	matches, err := h.matcher.Matches(ctx, input.BuyerID, limit)
	if err != nil {
		return nil, huma.Error404NotFound("buyer profile not found")
	}

	if matches == nil {
		matches = []domain.Match{}
	}

	resp := &GetMatchesOutput{}
	resp.Body.BuyerID = input.BuyerID
	resp.Body.Matches = matches

	return resp, nil
}

// RegisterMatchRoutes registers match query endpoints with the Huma API.
func RegisterMatchRoutes(api huma.API, h *MatchesHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-buyer-matches",
		Method:      http.MethodGet,
		Path:        "/api/v1/buyers/{buyer_id}/matches",
		Summary:     "Get matches for a buyer",
		Description: "Scores available listings against the buyer's profile and returns the best matches.",
		Tags:        []string{"matching"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetMatches)
}
