// Package handlers contains the huma operation handlers for the dealflow
// HTTP API. Each handler depends on a small interface describing the slice
// of the store or engine it needs, so tests can swap in mocks.
package handlers

// ErrorResponse is the standard error response body.
type ErrorResponse struct {
	Error string `json:"error" example:"deal not found"`
}

// StatusResponse is a generic status response body.
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}
